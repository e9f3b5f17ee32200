// Package app wires configuration into the services shared by the server and
// the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leon37/NetoLedger/internal/config"
	"github.com/leon37/NetoLedger/internal/infrastructure/database"
	"github.com/leon37/NetoLedger/internal/infrastructure/docstore"
	"github.com/leon37/NetoLedger/internal/infrastructure/llm"
	"github.com/leon37/NetoLedger/internal/model"
	"github.com/leon37/NetoLedger/internal/prompt"
	"github.com/leon37/NetoLedger/internal/repository"
	"github.com/leon37/NetoLedger/internal/service"
)

type App struct {
	Classify *service.ClassifyService
	Networth *service.NetworthService

	// StoreErr is set when the asset store could not be opened.
	StoreErr error

	closers []func(context.Context) error
}

// New builds the prompt set, the provider and the asset store named by cfg.
// Only prompt and provider failures are fatal.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	prompts, err := prompt.NewBuilderFromDir(cfg.Prompts.Dir)
	if err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init llm provider: %w", err)
	}
	if provider == nil {
		slog.Warn("no API key configured, running offline", "provider", cfg.LLM.Provider)
	} else {
		slog.Info("llm provider ready", "provider", cfg.LLM.Provider, "model", cfg.Active().Model)
	}

	a := &App{
		Classify: service.NewClassifyService(provider, prompts, cfg.LLM.Timeout),
	}

	// Classification never reads the store, so a store outage only takes
	// the summary path down.
	assets, err := a.openStore(ctx, cfg)
	if err != nil {
		slog.Error("asset store unavailable, net-worth summaries will fail", "driver", cfg.Store.Driver, "error", err)
		a.StoreErr = err
		assets = missingStore{err: err}
	}
	a.Networth = service.NewNetworthService(provider, prompts, assets, cfg.LLM.Timeout)
	return a, nil
}

// missingStore stands in for a store that could not be opened at startup.
type missingStore struct {
	err error
}

func (m missingStore) FindByUser(context.Context, string) ([]model.AssetRecord, error) {
	return nil, fmt.Errorf("%w: %v", repository.ErrUpstreamData, m.err)
}

func (a *App) openStore(ctx context.Context, cfg *config.Config) (repository.AssetRepo, error) {
	switch cfg.Store.Driver {
	case "mysql":
		db, err := database.NewMySQLConnection(cfg.Store.DSN, cfg.Server.Mode == "debug")
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})
		slog.Info("asset store ready", "driver", "mysql")
		return repository.NewAssetRepo(db), nil
	default:
		client, err := docstore.NewMongoClient(ctx, cfg.Store.URI, cfg.Store.Database, cfg.Store.Collection, cfg.Store.CertFile)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(ctx context.Context) error {
			client.Close(ctx)
			return nil
		})
		slog.Info("asset store ready", "driver", "mongo", "database", cfg.Store.Database, "collection", cfg.Store.Collection)
		return docstore.NewMongoAssetRepository(client), nil
	}
}

// Close releases the store connection.
func (a *App) Close(ctx context.Context) error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
