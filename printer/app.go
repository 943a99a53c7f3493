package printer

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/internal/domain/layout"
	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/database"
	"github.com/ygoproxy/ygoproxy/printer/database/mongostore"
	"github.com/ygoproxy/ygoproxy/printer/database/repositories"
	"github.com/ygoproxy/ygoproxy/printer/export"
	"github.com/ygoproxy/ygoproxy/printer/interfaces"
	"github.com/ygoproxy/ygoproxy/printer/logger"
	"github.com/ygoproxy/ygoproxy/printer/services"
	"github.com/ygoproxy/ygoproxy/printer/ygoapi"
)

// App holds every wired service. Stores are nil when the store driver is
// "none"; services that need them degrade accordingly.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	API   *ygoapi.Client
	DB    *database.DB
	Mongo *mongostore.Store

	CustomCardRepository interfaces.CustomCardRepositoryInterface
	DeckRepository       interfaces.DeckRepositoryInterface
	HistoryRepository    interfaces.HistoryRepositoryInterface

	SpacesService     *services.SpacesService
	CustomCardService *services.CustomCardService
	SearchService     *services.SearchService
	BanListService    *services.BanListService
	DeckImportService *services.DeckImportService
	DeckService       *services.DeckService
	ExportService     *services.ExportService
}

// New connects the configured store and builds the services.
func New(ctx context.Context, cfg Config, version, commit string) (*App, error) {
	a := &App{Cfg: cfg, Version: version, Commit: commit}

	api, err := ygoapi.NewClient(ygoapi.ClientConfig{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout.Duration,
		MinInterval:       cfg.API.MinInterval.Duration,
		CacheTTL:          cfg.API.CacheTTL.Duration,
		CacheSize:         cfg.API.CacheSize,
		MaxRetries:        cfg.API.MaxRetries,
		RateLimitedDelay:  cfg.API.RateLimitedDelay.Duration,
		ServerErrorDelay:  cfg.API.ServerErrorDelay.Duration,
		NetworkErrorDelay: cfg.API.NetworkErrorDelay.Duration,
	})
	if err != nil {
		return nil, err
	}
	a.API = api

	if err := a.openStore(ctx); err != nil {
		return nil, err
	}

	var images interfaces.ImageStoreInterface
	if cfg.Spaces.Enabled() {
		spaces, err := services.NewSpacesService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.Endpoint,
			cfg.Spaces.PublicBaseURL,
			cfg.Spaces.Root,
		)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.SpacesService = spaces
		images = spaces
	}

	ids := cards.NewIDAllocator()
	if a.CustomCardRepository != nil {
		a.CustomCardService = services.NewCustomCardService(a.CustomCardRepository, images, ids)
	}
	a.SearchService = services.NewSearchService(api, a.CustomCardService)
	a.BanListService = services.NewBanListService(api)
	a.DeckImportService = services.NewDeckImportService(api)
	if a.DeckRepository != nil {
		a.DeckService = services.NewDeckService(a.DeckRepository, cfg.User.ID)
	}

	fetcher, err := export.NewImageFetcher(nil, config.ImageCacheSize, config.ImageFetchWorkers, a.imageHosts()...)
	if err != nil {
		a.Close()
		return nil, err
	}
	renderers := map[layout.Format]export.Renderer{
		layout.FormatPDF:  export.NewPDFRenderer(cfg.Export.ChromeTimeout.Duration),
		layout.FormatDOCX: export.NewWordRenderer(),
	}
	a.ExportService = services.NewExportService(fetcher, renderers, a.HistoryRepository, cfg.User.ID)

	logger.LogSystem("Services initialized",
		slog.String("store", cfg.Store.Driver),
		slog.Bool("image_uploads", images != nil))
	return a, nil
}

func (a *App) openStore(ctx context.Context) error {
	start := time.Now()

	switch a.Cfg.Store.Driver {
	case StorePostgres:
		db, err := database.New(ctx, database.DBConfig{
			Host:     a.Cfg.DB.Host,
			Port:     a.Cfg.DB.Port,
			User:     a.Cfg.DB.User,
			Password: a.Cfg.DB.Password,
			Database: a.Cfg.DB.Database,
			PoolSize: a.Cfg.DB.PoolSize,
		})
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if err := db.InitializeSchema(ctx); err != nil {
			db.Close()
			return fmt.Errorf("failed to initialize database schema: %w", err)
		}
		a.DB = db
		a.CustomCardRepository = repositories.NewCustomCardRepository(db.BunDB())
		a.DeckRepository = repositories.NewDeckRepository(db.BunDB())
		a.HistoryRepository = repositories.NewHistoryRepository(db.BunDB())

	case StoreMongo:
		store, err := mongostore.Connect(ctx, a.Cfg.Store.MongoURI, a.Cfg.Store.MongoDatabase)
		if err != nil {
			return err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(ctx)
			return err
		}
		a.Mongo = store
		a.CustomCardRepository = store.CustomCards()
		a.DeckRepository = store.Decks()
		a.HistoryRepository = store.History()

	case StoreNone:
		return nil

	default:
		return fmt.Errorf("unknown store driver %q", a.Cfg.Store.Driver)
	}

	slog.Info("Store connected",
		slog.String("type", "db"),
		slog.String("driver", a.Cfg.Store.Driver),
		slog.Duration("took", time.Since(start)))
	return nil
}

// imageHosts allows the card database artwork host plus the upload bucket.
func (a *App) imageHosts() []string {
	hosts := append([]string(nil), export.DefaultImageHosts...)
	if a.SpacesService == nil {
		return hosts
	}
	base := a.Cfg.Spaces.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.%s.digitaloceanspaces.com", a.Cfg.Spaces.Bucket, a.Cfg.Spaces.Region)
	}
	if u, err := url.Parse(base); err == nil && u.Hostname() != "" {
		hosts = append(hosts, u.Hostname())
	}
	return hosts
}

// Close releases the store connections.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
	if a.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Mongo.Close(ctx); err != nil {
			slog.Warn("Failed to close mongo connection", slog.Any("error", err))
		}
	}
}
