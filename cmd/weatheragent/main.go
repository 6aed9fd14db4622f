// Package main answers "what is the weather like today?" for one or more cities
// with a chat model that can call a live weather lookup.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/Cyclone1070/weatheragent/internal/logging"
	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/provider/gemini"
	"github.com/Cyclone1070/weatheragent/internal/provider/openai"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/Cyclone1070/weatheragent/internal/tool/weather"
	"github.com/Cyclone1070/weatheragent/internal/ui"
	uiservices "github.com/Cyclone1070/weatheragent/internal/ui/services"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/Cyclone1070/weatheragent/internal/workflow/loop"
	"github.com/Cyclone1070/weatheragent/internal/workflow/toolmanager"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// chatProvider is a chat-completion backend.
type chatProvider interface {
	Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error)
	Model() string
}

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config      *config.Config
	Provider    chatProvider
	Weather     weather.Looker
	Stdout      io.Writer
	Interactive bool // Render with the TUI instead of plain text
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	// Load configuration (from defaults + ~/.config/weatheragent/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if err := cfg.ValidateCredentials(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	interactive := isTerminal(os.Stdout)

	// The TUI owns the terminal; without a log file, logs are dropped while it runs.
	var logFallback io.Writer = os.Stderr
	if interactive {
		logFallback = io.Discard
	}
	if _, err := logging.Setup(cfg.Logging, logFallback); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set up logging: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := createProvider(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create provider: %v\n", err)
		return 1
	}

	deps := Dependencies{
		Config:      cfg,
		Provider:    p,
		Weather:     weather.NewClient(cfg.Weather, cfg.Credentials.OpenWeatherAPIKey),
		Stdout:      os.Stdout,
		Interactive: interactive,
	}

	if err := runCities(ctx, deps, citiesFrom(args, cfg)); err != nil {
		if !interactive {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// createProvider builds the chat backend selected by cfg.Provider.Backend.
func createProvider(ctx context.Context, cfg *config.Config) (chatProvider, error) {
	timeout := time.Duration(cfg.Provider.TimeoutSeconds) * time.Second

	switch cfg.Provider.Backend {
	case config.BackendOpenAI:
		client, err := openai.Dial(cfg.Credentials.OpenAIAPIKey, cfg.Provider.OpenAIBaseURL, timeout)
		if err != nil {
			return nil, fmt.Errorf("openai: %w", err)
		}
		return openai.New(client, cfg.Provider.OpenAIModel), nil

	case config.BackendGemini:
		client, err := gemini.Dial(ctx, cfg.Credentials.GeminiAPIKey, timeout)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return gemini.New(client, cfg.Provider.GeminiModel), nil

	default:
		return nil, fmt.Errorf("unknown provider backend %q", cfg.Provider.Backend)
	}
}

// citiesFrom returns the positional arguments, or the configured default city when there are none.
func citiesFrom(args []string, cfg *config.Config) []string {
	cities := make([]string, 0, len(args))
	for _, a := range args {
		if a != "" {
			cities = append(cities, a)
		}
	}
	if len(cities) == 0 {
		return []string{cfg.Demo.DefaultCity}
	}
	return cities
}

// runCities answers each city in turn on a worker goroutine while the UI renders
// progress on this one. It stops at the first chat-completion failure.
func runCities(ctx context.Context, deps Dependencies, cities []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logrus.WithFields(logrus.Fields{
		"module": "main",
		"run_id": uuid.NewString(),
	})

	tools, err := toolmanager.NewToolManager(weather.NewTool(deps.Weather))
	if err != nil {
		return err
	}

	events := make(chan workflow.Event, 16)
	agent := loop.NewLoop(deps.Provider, tools, events, deps.Config.Orchestrator)

	var runErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(events)

		for _, city := range cities {
			log.WithField("city", city).Info("answering")
			if _, err := agent.Answer(ctx, city); err != nil {
				log.WithError(err).WithField("city", city).Error("answer failed")
				runErr = err
				return
			}
		}
	}()

	var uiErr error
	if deps.Interactive {
		u := ui.NewUI(events, cancel, uiservices.NewGlamourRenderer(), ui.DefaultSpinner, ui.Options{
			Model: deps.Provider.Model(),
			Total: len(cities),
		})
		uiErr = u.Start()

		// UI exited, trigger shutdown
		cancel()
		for range events {
		}
	} else {
		uiErr = ui.NewPrinter(deps.Stdout, len(cities) > 1).Run(events)
	}

	wg.Wait()

	if runErr != nil {
		return runErr
	}
	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}
	return nil
}
