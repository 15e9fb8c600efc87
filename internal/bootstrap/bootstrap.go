package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	analyticsinadapter "huntlog/internal/modules/analytics/adapter/in"
	analyticsoutadapter "huntlog/internal/modules/analytics/adapter/out"
	analyticsservice "huntlog/internal/modules/analytics/service"
	analyticsusecase "huntlog/internal/modules/analytics/usecase"
	huntinadapter "huntlog/internal/modules/hunt/adapter/in"
	huntoutadapter "huntlog/internal/modules/hunt/adapter/out"
	huntdto "huntlog/internal/modules/hunt/dto"
	huntservice "huntlog/internal/modules/hunt/service"
	huntusecase "huntlog/internal/modules/hunt/usecase"
	"huntlog/internal/platform/clock"
	"huntlog/internal/platform/config"
	"huntlog/internal/platform/id"
	"huntlog/internal/platform/logging"
	"huntlog/internal/platform/numfmt"
	uiapp "huntlog/internal/ui/app"
)

type App struct {
	Config       config.Config
	Log          *logrus.Logger
	HuntCLI      huntinadapter.CLIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler

	repo *huntoutadapter.SQLiteRepository
}

func New(cfg config.Config) (*App, error) {
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return NewWithLogger(cfg, log)
}

func NewWithLogger(cfg config.Config, log *logrus.Logger) (*App, error) {
	repo, err := huntoutadapter.NewSQLiteRepository(cfg.DBPath, cfg.SeedCharacter, log.WithField("component", "repository"))
	if err != nil {
		return nil, fmt.Errorf("open hunt repository: %w", err)
	}

	huntSvc := huntservice.NewHuntService(huntservice.Deps{
		Repo:     repo,
		Roster:   repo,
		Reader:   huntoutadapter.NewFileReportReader(),
		Exporter: huntoutadapter.NewFileExporter(),
		IDGen:    id.UUID{},
		Log:      log.WithField("component", "import"),
		Fallback: huntdto.ImportDefaults{Character: cfg.FallbackCharacter, Location: cfg.DefaultLocation},
	})
	huntUC := huntusecase.NewInteractor(huntSvc, huntoutadapter.NewFSNotifyWatcher(0, log.WithField("component", "watcher")))

	analyticsSvc := analyticsservice.NewAnalyticsService(
		analyticsoutadapter.NewHuntSourceAdapter(huntUC),
		analyticsoutadapter.NewMarkdownReportStore(),
		clock.SystemClock{},
		numfmt.New(cfg.Locale),
		cfg.TopCreatures,
		log.WithField("component", "analytics"),
	)
	analyticsUC := analyticsusecase.NewInteractor(analyticsSvc)

	return &App{
		Config:       cfg,
		Log:          log,
		HuntCLI:      huntinadapter.NewCLIHandler(huntUC),
		AnalyticsCLI: analyticsinadapter.NewCLIHandler(analyticsUC),
		repo:         repo,
	}, nil
}

func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.HuntCLI, app.AnalyticsCLI, app.Config.LogDir)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
