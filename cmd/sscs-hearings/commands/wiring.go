// Package commands provides CLI command implementations.
package commands

import (
	"fmt"
	"time"

	_ "github.com/joho/godotenv/autoload"

	apphearings "github.com/hmcts/sscs-hearings-go/internal/application/hearings"
	"github.com/hmcts/sscs-hearings-go/internal/domain/refdata"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/casestore"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/listings"
	"github.com/hmcts/sscs-hearings-go/pkg/config"
)

// newCaseStore opens the configured case store backend.
func newCaseStore(cfg config.App) (casestore.CaseStore, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		return casestore.NewSQLiteCaseStore(casestore.SQLiteConfig{DatabasePath: cfg.SQLitePath})
	case "postgres":
		return casestore.NewPostgresCaseStore(casestore.PostgresConfig{
			Host:     cfg.PGHost,
			Port:     cfg.PGPort,
			Database: cfg.PGDatabase,
			User:     cfg.PGUser,
			Password: cfg.PGPassword,
			SSLMode:  cfg.PGSSLMode,
		})
	case "memory":
		return casestore.NewInMemoryCaseStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// newService builds the orchestrator from configuration.
func newService(cfg config.App, store casestore.CaseStore, opts ...apphearings.Option) (*apphearings.Service, error) {
	gateway, err := listings.NewClient(listings.Config{
		BaseURL:      cfg.ListingsBaseURL,
		SourceSystem: cfg.ListingsSource,
		TimeoutMs:    cfg.ListingsTimeoutMs,
	}, nil)
	if err != nil {
		return nil, err
	}

	opts = append(opts, apphearings.WithRetryPolicy(apphearings.RetryPolicy{
		MaxAttempts: cfg.RetryMaxAttempts,
		Backoff:     time.Duration(cfg.RetryBackoffMs) * time.Millisecond,
	}))

	return apphearings.NewService(store, gateway, refdata.NewReferenceData(), opts...), nil
}
