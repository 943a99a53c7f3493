// Package migration copies stored records from one backend to another.
package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ygoproxy/ygoproxy/printer/database/repositories"
	"github.com/ygoproxy/ygoproxy/printer/interfaces"
)

const (
	tableCustomCards = "custom_cards"
	tableDecks       = "saved_decks"
	tableHistory     = "generation_history"

	// historyBatch bounds the history read per user.
	historyBatch = 10000
)

// Stores is one backend's set of repositories.
type Stores struct {
	CustomCards interfaces.CustomCardRepositoryInterface
	Decks       interfaces.DeckRepositoryInterface
	History     interfaces.HistoryRepositoryInterface
}

// Migrator copies custom cards, and one user's decks and history, from
// source to target. Records already present in target are skipped.
type Migrator struct {
	source Stores
	target Stores
	userID string
	stats  MigrationStats
	now    func() time.Time
}

func NewMigrator(source, target Stores, userID string) *Migrator {
	return &Migrator{
		source: source,
		target: target,
		userID: userID,
		now:    time.Now,
	}
}

// MigrateAll runs every table and returns the collected stats. It stops at
// the first table that cannot be read from source.
func (m *Migrator) MigrateAll(ctx context.Context) (*MigrationStats, error) {
	m.stats = MigrationStats{
		Tables:    make(map[string]*TableStats),
		StartTime: m.now(),
	}

	steps := []struct {
		table string
		run   func(context.Context) error
	}{
		{tableCustomCards, m.migrateCustomCards},
		{tableDecks, m.migrateDecks},
		{tableHistory, m.migrateHistory},
	}
	for _, step := range steps {
		m.stats.Tables[step.table] = &TableStats{TableName: step.table}
		if err := step.run(ctx); err != nil {
			m.finish()
			return &m.stats, fmt.Errorf("failed to migrate %s: %w", step.table, err)
		}
		m.logTable(step.table)
	}

	m.finish()
	return &m.stats, nil
}

func (m *Migrator) migrateCustomCards(ctx context.Context) error {
	rows, err := m.source.CustomCards.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		m.copyRecord(tableCustomCards, row.ID,
			func() error {
				_, err := m.target.CustomCards.GetByID(ctx, row.ID)
				return err
			},
			func() error { return m.target.CustomCards.Create(ctx, row) })
	}
	return nil
}

func (m *Migrator) migrateDecks(ctx context.Context) error {
	decks, err := m.source.Decks.GetByUserID(ctx, m.userID)
	if err != nil {
		return err
	}
	for _, deck := range decks {
		m.copyRecord(tableDecks, deck.ID,
			func() error {
				_, err := m.target.Decks.GetByID(ctx, deck.ID)
				return err
			},
			func() error { return m.target.Decks.Create(ctx, deck) })
	}
	return nil
}

// migrateHistory appends every source entry whose id the target lacks.
func (m *Migrator) migrateHistory(ctx context.Context) error {
	entries, err := m.source.History.GetByUserID(ctx, m.userID, historyBatch)
	if err != nil {
		return err
	}
	existing, err := m.target.History.GetByUserID(ctx, m.userID, historyBatch)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, entry := range existing {
		present[entry.ID] = true
	}

	// Oldest first so the target's insertion order matches.
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		m.copyRecord(tableHistory, entry.ID,
			func() error {
				if present[entry.ID] {
					return nil
				}
				return &repositories.NotFoundError{Entity: tableHistory, ID: entry.ID}
			},
			func() error { return m.target.History.Create(ctx, entry) })
	}
	return nil
}

// copyRecord skips the record when exists reports it present, otherwise
// writes it with create.
func (m *Migrator) copyRecord(table, id string, exists, create func() error) {
	stats := m.stats.Tables[table]
	stats.Processed++

	err := exists()
	switch {
	case err == nil:
		m.recordSkipped(table, "already present in target", id)
		return
	case !repositories.IsNotFound(err):
		m.recordError(table, fmt.Sprintf("lookup failed: %v", err), id)
		return
	}

	if err := create(); err != nil {
		m.recordError(table, err.Error(), id)
		return
	}
	stats.Successful++
}

func (m *Migrator) recordSkipped(table, reason, id string) {
	if stats, exists := m.stats.Tables[table]; exists {
		stats.Skipped++
		stats.SkippedRecords = append(stats.SkippedRecords, SkippedRecord{
			Reason:    reason,
			ID:        id,
			Timestamp: m.now(),
		})
	}
}

func (m *Migrator) recordError(table, errorMsg, id string) {
	if stats, exists := m.stats.Tables[table]; exists {
		stats.Errors++
		stats.ErrorRecords = append(stats.ErrorRecords, ErrorRecord{
			Error:     errorMsg,
			ID:        id,
			Timestamp: m.now(),
		})
	}
}

func (m *Migrator) finish() {
	m.stats.EndTime = m.now()
	m.stats.TotalErrors, m.stats.TotalSkipped, m.stats.TotalProcessed = 0, 0, 0
	for _, stats := range m.stats.Tables {
		m.stats.TotalErrors += stats.Errors
		m.stats.TotalSkipped += stats.Skipped
		m.stats.TotalProcessed += stats.Processed
	}
}

func (m *Migrator) logTable(table string) {
	stats := m.stats.Tables[table]
	slog.Info("Table migrated",
		slog.String("type", "db"),
		slog.String("table", table),
		slog.Int("processed", stats.Processed),
		slog.Int("successful", stats.Successful),
		slog.Int("skipped", stats.Skipped),
		slog.Int("errors", stats.Errors))
}
