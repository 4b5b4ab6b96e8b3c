package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/sushibar-go/internal/adapters/events"
	"github.com/andrescamacho/sushibar-go/internal/adapters/metrics"
	"github.com/andrescamacho/sushibar-go/internal/adapters/persistence"
	"github.com/andrescamacho/sushibar-go/internal/application/customers"
	"github.com/andrescamacho/sushibar-go/internal/application/game"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/application/orders"
	"github.com/andrescamacho/sushibar-go/internal/application/scripting"
	"github.com/andrescamacho/sushibar-go/internal/application/simulation"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
	"github.com/andrescamacho/sushibar-go/internal/infrastructure/config"
	"github.com/andrescamacho/sushibar-go/internal/infrastructure/database"
	"github.com/andrescamacho/sushibar-go/pkg/utils"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the console logger. The returned closer releases a log file.
func newLogger(cfg config.LoggingConfig) (logging.ServiceLogger, func(), error) {
	var w io.Writer
	closer := func() {}
	switch cfg.Output {
	case "stdout":
		w = os.Stdout
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	default:
		w = os.Stderr
	}
	return logging.NewStdLogger(w, cfg.Level, cfg.Format), closer, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// gameConfigFrom maps the service section onto the game configuration
func gameConfigFrom(cfg *config.Config) game.Config {
	s := cfg.Service
	gc := game.DefaultConfig()
	gc.Orders = orders.Config{
		TimeLimit:              s.OrderTimeLimit,
		CustomOrderProbability: s.CustomOrderProbability,
	}
	gc.Customers = customers.Config{
		SpawnInterval:    s.SpawnInterval,
		RespawnDelay:     s.RespawnDelay,
		Patience:         s.Patience,
		EatDuration:      s.EatDuration,
		OrderingDuration: s.OrderingDuration,
		CurrentDay:       s.CurrentDay,
	}
	gc.SeatCount = s.SeatCount
	gc.MaxActiveSeats = s.MaxActiveSeats
	gc.MaxWaitingParties = s.MaxWaitingParties
	gc.CraftDefaults = sushi.UniformParameters(s.CraftDefault)
	gc.HoldRate = s.HoldRate
	return gc
}

// loadMenu reads recipes and profiles from the database, falling back to
// the built-in menu when db is nil or the tables are empty
func loadMenu(ctx context.Context, db *gorm.DB) (*sushi.Catalog, []*customer.Profile, error) {
	if db == nil {
		return sushi.DefaultCatalog(), customer.DefaultProfiles(), nil
	}
	catalog, err := sushi.LoadCatalog(ctx, persistence.NewGormRecipeRepository(db))
	if err != nil {
		return nil, nil, err
	}
	if catalog.Len() == 0 {
		catalog = sushi.DefaultCatalog()
	}
	profiles, err := persistence.NewGormProfileRepository(db).FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(profiles) == 0 {
		profiles = customer.DefaultProfiles()
	}
	return catalog, profiles, nil
}

type sessionOptions struct {
	persist  bool
	realtime bool
	frames   int
}

// session is one wired service run
type session struct {
	cfg     *config.Config
	runID   string
	seed    uint64
	logger  logging.ServiceLogger
	db      *gorm.DB
	runs    *persistence.GormRunRepository
	service *game.Service
	runner  *simulation.Runner
	closers []func()
}

func newSession(ctx context.Context, cfg *config.Config, opts sessionOptions) (*session, error) {
	s := &session{cfg: cfg, runID: utils.GenerateSessionID("service")}

	console, closeLog, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, closeLog)
	s.logger = console

	s.seed = cfg.Simulation.Seed
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	clock := shared.NewSimulationClock(time.Now().UTC())

	needDB := opts.persist || cfg.Logging.Persist
	if needDB {
		db, err := openDatabase(cfg)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.db = db
		s.closers = append(s.closers, func() { _ = database.Close(db) })
	}

	var notifiers []ports.ViewNotifier
	notifiers = append(notifiers, events.NewLoggingNotifier(console))

	if cfg.Logging.Persist {
		repo := persistence.NewGormServiceLogRepository(s.db, clock, cfg.Logging.DedupWindow)
		s.logger = logging.MultiLogger{console, persistence.NewRunLogger(repo, s.runID)}
	}

	if opts.persist {
		s.runs = persistence.NewGormRunRepository(s.db)
		notifiers = append(notifiers, persistence.NewOutcomeJournal(s.db, s.runID, func(err error) {
			console.Log(logging.LevelWarn, "Failed to journal order outcome", map[string]interface{}{"error": err.Error()})
		}))
	}

	var commandMetrics *metrics.CommandMetricsCollector
	if cfg.Metrics.Enabled {
		if !metrics.IsEnabled() {
			metrics.InitRegistry()
		}
		collector := metrics.NewServiceMetricsCollector()
		if err := collector.Register(); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		notifiers = append(notifiers, collector)

		commandMetrics = metrics.NewCommandMetricsCollector()
		if err := commandMetrics.Register(); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to register command metrics: %w", err)
		}
	}

	if cfg.Events.Enabled {
		pub, err := events.NewNATSPublisher(cfg.Events.URL, cfg.Events.ConnectTimeout)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = pub.Close() })
		guarded := events.NewGuardedPublisher(pub, 5, 30*time.Second, nil)
		notifiers = append(notifiers, events.NewNotifier(guarded, cfg.Events.SubjectPrefix, console))
	}

	catalog, profiles, err := loadMenu(ctx, s.db)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	s.service = game.NewService(gameConfigFrom(cfg), game.Dependencies{
		Catalog:  catalog,
		Profiles: profiles,
		Clock:    clock,
		Random:   shared.NewSeededRandom(s.seed),
		Notifier: ports.NewMultiNotifier(notifiers...),
		Logger:   s.logger,
	})

	pilot := simulation.NewAutopilot(simulation.AutopilotConfig{
		SkillNoise: cfg.Simulation.SkillNoise,
		CookTime:   cfg.Simulation.CookTime,
	}, shared.NewSeededRandom(s.seed+1), s.logger)

	scripts, err := scripting.NewScriptMediator(s.service, s.logger)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to build script mediator: %w", err)
	}
	scripts.Use(metrics.PrometheusMiddleware(commandMetrics))
	pilot.UseScripts(scripts)

	s.runner = simulation.NewRunner(s.service, pilot, simulation.RunnerConfig{
		Frames:       opts.frames,
		FrameDelta:   cfg.Simulation.FrameDelta,
		Realtime:     opts.realtime,
		PublishEvery: cfg.Simulation.PublishEvery,
	}, s.logger)

	return s, nil
}

// Run drives the runner and records the run when persistence is on
func (s *session) Run(ctx context.Context) (game.Snapshot, error) {
	if s.runs != nil {
		if err := s.runs.Start(ctx, s.runID, s.seed, s.cfg.Service.CurrentDay, time.Now().UTC()); err != nil {
			return game.Snapshot{}, err
		}
	}

	final, runErr := s.runner.Run(ctx)

	if s.runs != nil {
		ended := time.Now().UTC()
		summary := persistence.RunSummary{
			ID:             s.runID,
			EndedAt:        &ended,
			Score:          final.Score.Total,
			Completed:      final.Score.Completed,
			Failed:         final.Score.Failed,
			AverageQuality: final.Score.AverageQuality,
			Spawned:        final.Spawned,
		}
		// ctx may already be cancelled; the summary is still worth keeping
		if err := s.runs.Finish(context.Background(), summary); err != nil {
			s.logger.Log(logging.LevelError, "Failed to record run", map[string]interface{}{"error": err.Error()})
		}
	}
	return final, runErr
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
