package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "aulagen/internal/adapter/http"
	"aulagen/internal/adapter/journal/zstdlog"
	metricsinmem "aulagen/internal/adapter/metrics/inmemory"
	"aulagen/internal/adapter/oracle/llm"
	"aulagen/internal/adapter/oracle/scripted"
	gormrepo "aulagen/internal/adapter/repo/gorm"
	"aulagen/internal/adapter/repo/memory"
	"aulagen/internal/adapter/ws"
	"aulagen/internal/app/eventlog"
	"aulagen/internal/app/oracle"
	"aulagen/internal/app/ports"
	"aulagen/internal/app/replay"
	"aulagen/internal/app/roster"
	"aulagen/internal/app/turn"
	"aulagen/internal/config"
	"aulagen/internal/domain/classroom"
	"aulagen/internal/domain/world"
	"aulagen/internal/logger"
	"aulagen/internal/resilience"

	"github.com/cloudwego/hertz/pkg/app/server"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	grid, err := world.LoadLayout(cfg.World.MapFile)
	if err != nil {
		return fmt.Errorf("load classroom map: %w", err)
	}

	store := memory.NewStore()
	if cfg.Server.SeedRoster {
		if err := seedRoster(store, grid); err != nil {
			return err
		}
	}

	hub := ws.NewHub(log)
	sinks := []ports.EventSink{hub}
	var journals []ports.TurnJournal

	if dir := cfg.Journal.ZstdDir; dir != "" {
		events := zstdlog.NewEventJournal(dir)
		turns := zstdlog.NewTurnJournal(dir)
		defer func() { _ = events.Close() }()
		defer func() { _ = turns.Close() }()
		sinks = append(sinks, events)
		journals = append(journals, turns)
	}
	if dsn := cfg.Journal.DSN; dsn != "" {
		db, err := gormrepo.OpenPostgres(ctx, dsn)
		if err != nil {
			return err
		}
		applied, err := gormrepo.ApplyMigrations(ctx, db, cfg.Journal.MigrationsDir)
		if err != nil {
			return fmt.Errorf("migrate journal: %w", err)
		}
		log.Info("journal migrations applied", "versions", applied)
		sinks = append(sinks, gormrepo.NewEventJournal(db))
		journals = append(journals, gormrepo.NewTurnJournal(db))
	}

	kpi := metricsinmem.NewRecorder()
	engine := &turn.Engine{
		Roster: roster.Registry{
			Students: memory.NewStudentRepo(store),
			Grid:     grid,
		},
		Log: eventlog.Log{
			Events: memory.NewEventRepo(store),
			Sinks:  sinks,
			Logger: log,
		},
		Oracle: oracle.Gateway{
			Provider:      buildProvider(cfg.Oracle),
			Grid:          grid,
			HistoryWindow: cfg.Oracle.HistoryWindow,
		},
		Classifier:    classroom.Classifier{Markers: cfg.SpeechMarkers},
		TxManager:     memory.NewTxManager(store),
		Metrics:       kpi,
		Journal:       fanoutJournal(journals),
		Logger:        log,
		OracleTimeout: cfg.Oracle.Timeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	h := httpadapter.Handler{
		Engine:   engine,
		ReplayUC: replay.UseCase{Events: memory.NewEventRepo(store)},
		Grid:     grid,
		KPI:      kpi,
		Logger:   log,
	}
	api := server.New(server.WithHostPorts(cfg.Server.Addr), server.WithExitWaitTime(2*time.Second))
	h.RegisterRoutes(api)

	observer := ws.NewServer(cfg.Server.ObserverAddr, hub)

	g.Go(func() error {
		log.Info("classroom api listening", "addr", cfg.Server.Addr, "oracle_mode", cfg.Oracle.Mode)
		return api.Run()
	})
	g.Go(func() error {
		log.Info("observer stream listening", "addr", cfg.Server.ObserverAddr)
		if err := observer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.Join(api.Shutdown(shutdownCtx), observer.Shutdown(shutdownCtx))
	})
	return g.Wait()
}

// seedRoster enrolls the opening class, reseating students whose default
// seat is not walkable on grid.
func seedRoster(store *memory.Store, grid *world.Grid) error {
	seeds, err := classroom.SeatSeeds(grid, classroom.SeedStudents())
	if err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}
	store.SeedStudents(seeds...)
	return nil
}

func buildProvider(cfg config.Oracle) ports.IntentionProvider {
	if cfg.Mode != config.OracleModeLLM {
		return scripted.Provider{}
	}
	client := llm.NewClient(cfg.URL, cfg.APIKey, cfg.Model, cfg.Temperature)
	client.SetBreaker(resilience.NewBreaker(cfg.Breaker.MaxFailures, cfg.Breaker.Timeout))
	return client
}

type turnJournals []ports.TurnJournal

func (j turnJournals) RecordTurn(ctx context.Context, rec ports.TurnRecord) error {
	var errs []error
	for _, journal := range j {
		if err := journal.RecordTurn(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func fanoutJournal(journals []ports.TurnJournal) ports.TurnJournal {
	if len(journals) == 0 {
		return nil
	}
	return turnJournals(journals)
}
