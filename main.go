package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"fapicker/internal/catalog"
	"fapicker/internal/config"
	"fapicker/internal/eventbus"
	"fapicker/internal/host"
	"fapicker/internal/icons"
	"fapicker/internal/logging"
	"fapicker/internal/ui"
	"fapicker/internal/ui/configscreen"
	"fapicker/internal/ui/field"
)

// readyMarker tells the e2e driver that a screen finished loading
const readyMarker = "__READY__"

func main() {
	cfg, err := config.LoadAppConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging; the terminal belongs to the UI
	log, logFile, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("picker exited with error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, log zerolog.Logger) error {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(log)
	defer bus.Close()

	bus.Subscribe(eventbus.EventParametersSaved, func(eventbus.DomainEvent) {
		log.Info().Str("state_dir", cfg.StateDir).Msg("configuration persisted")
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			log.Error().Err(ev.Err).Msg(ev.Message)
		}
	})

	store, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	h := host.New(store, bus, log)

	go func() {
		if err := h.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("not following outside edits")
		}
	}()

	onReady := func() {
		if cfg.E2E {
			fmt.Fprintln(os.Stderr, readyMarker)
		}
	}

	var (
		model   tea.Model
		program *tea.Program
	)
	switch cfg.Location {
	case config.LocationConfig:
		model = configscreen.New(configscreen.Options{App: h, Log: log, OnReady: onReady})
		program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	default:
		fieldModel, err := newFieldModel(ctx, cfg, h, log, onReady)
		if err != nil {
			return err
		}
		defer fieldModel.Close()
		model = fieldModel
		program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		fieldModel.SetProgram(program)
	}

	log.Info().Str("location", string(cfg.Location)).Str("state_dir", cfg.StateDir).Msg("starting UI")
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	log.Info().Msg("UI exited normally")
	return nil
}

func openStore(cfg *config.AppConfig, log zerolog.Logger) (host.Store, error) {
	if cfg.Ephemeral {
		return host.NewMemoryStore(), nil
	}
	return host.NewFileStore(cfg.StateDir, log)
}

// newFieldModel loads the installation parameters the editor searches with
func newFieldModel(ctx context.Context, cfg *config.AppConfig, h *host.Host, log zerolog.Logger, onReady func()) (*field.Model, error) {
	table, err := icons.Resolve(cfg.IconsPath)
	if err != nil {
		return nil, err
	}
	index := catalog.Build(table)
	log.Debug().Int("suggestions", index.Len()).Msg("catalog built")

	stored, err := h.GetParameters(ctx)
	if err != nil {
		return nil, err
	}

	return field.New(field.Options{
		Field:   h.Field(cfg.FieldID),
		Index:   index,
		Params:  config.ApplyDefaults(stored),
		Log:     log,
		Pager:   ui.NewPager(),
		OnReady: onReady,
	}), nil
}
