package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/course-reg-cli/internal/adapters/assistant"
	"github.com/bnema/course-reg-cli/internal/adapters/catalog/jsoncatalog"
	"github.com/bnema/course-reg-cli/internal/adapters/render/schedule"
	tomlrepo "github.com/bnema/course-reg-cli/internal/adapters/repo/toml"
	"github.com/bnema/course-reg-cli/internal/application"
	"github.com/bnema/course-reg-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const catalogPathKey = "catalog.path"

type app struct {
	registration     *application.RegistrationService
	planner          *application.PlannerService
	catalog          ports.Catalog
	responder        *assistant.Responder
	scheduleRenderer func(application.ScheduleView) (string, error)
}

func wireApp() (*app, error) {
	// Silent until the root command's --verbose flag raises the level.
	zerolog.SetGlobalLevel(zerolog.Disabled)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := viper.New()
	repo, err := tomlrepo.NewRepository(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("wire ledger repository: %w", err)
	}

	catalog, err := wireCatalog(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("wire catalog: %w", err)
	}

	registration := application.NewRegistrationService(catalog, repo, ports.SystemClock{})
	planner := application.NewPlannerService(catalog, repo, registration)

	return &app{
		registration:     registration,
		planner:          planner,
		catalog:          catalog,
		responder:        assistant.NewResponder(registration, planner, catalog),
		scheduleRenderer: schedule.Render,
	}, nil
}

// wireCatalog prefers an external dataset configured via catalog.path
// and falls back to the embedded one.
func wireCatalog(cfg *viper.Viper, logger zerolog.Logger) (ports.Catalog, error) {
	if path := cfg.GetString(catalogPathKey); path != "" {
		return jsoncatalog.NewFromFile(path, logger)
	}

	return jsoncatalog.NewDefault(logger), nil
}
