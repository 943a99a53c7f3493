package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/ygoproxy/ygoproxy/printer/config"
)

// BaseRepository bounds every query by a timeout and maps driver errors
// onto NotFoundError and RepositoryError.
type BaseRepository struct {
	db      *bun.DB
	timeout time.Duration
}

func NewBaseRepository(db *bun.DB) *BaseRepository {
	return &BaseRepository{db: db, timeout: config.DefaultQueryTimeout}
}

// RepositoryError wraps a failed store operation.
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Entity, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	Entity string
	ID     interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// WrapError turns a driver error into a repository error. sql.ErrNoRows
// and an existing NotFoundError both become NotFoundError for id.
func WrapError(operation, entity string, id interface{}, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) || IsNotFound(err) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return &RepositoryError{Operation: operation, Entity: entity, Err: err}
}

// run executes query under the repository timeout.
func (r *BaseRepository) run(ctx context.Context, operation, entity string, query func(context.Context) error) error {
	return r.runOne(ctx, operation, entity, nil, query)
}

// runOne is run for a query addressing a single record by id.
func (r *BaseRepository) runOne(ctx context.Context, operation, entity string, id interface{}, query func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return WrapError(operation, entity, id, query(ctx))
}

// affectedOne turns a zero-row write into a NotFoundError.
func affectedOne(result sql.Result, entity string, id interface{}) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsRepositoryError(err error) bool {
	var re *RepositoryError
	return errors.As(err, &re)
}
