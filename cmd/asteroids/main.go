package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/clock"
	"github.com/l1jgo/asteroids/internal/data"
	"github.com/l1jgo/asteroids/internal/game"
	"github.com/l1jgo/asteroids/internal/input"
	"github.com/l1jgo/asteroids/internal/render"
	"github.com/l1jgo/asteroids/internal/scripting"
	"github.com/l1jgo/asteroids/internal/system"
	"github.com/l1jgo/asteroids/internal/world"
)

const defaultConfigPath = "config/asteroids.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := defaultConfigPath
	if p := os.Getenv("ASTEROIDS_CONFIG"); p != "" {
		cfgPath = p
	}
	flag.StringVar(&cfgPath, "config", cfgPath, "path to the TOML config file")
	flag.Parse()

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger. The terminal belongs to the renderer, so logs go to a file.
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Data and scripts
	table := data.DefaultAsteroidTable()
	if cfg.Data.AsteroidTable != "" {
		if table, err = data.LoadAsteroidTable(cfg.Data.AsteroidTable); err != nil {
			return fmt.Errorf("asteroid table: %w", err)
		}
	}
	log.Info("asteroid tiers loaded", zap.Int("count", table.Count()))

	var waves system.WaveSizer = system.DefaultWaveSizer{}
	if cfg.Waves.Script != "" {
		eng, err := scripting.NewEngine(cfg.Waves.Script, log.Named("lua"))
		if err != nil {
			return fmt.Errorf("wave script: %w", err)
		}
		defer eng.Close()
		waves = eng
		log.Info("wave script loaded", zap.String("path", cfg.Waves.Script))
	}

	// 4. Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()
	screen.HideCursor()

	// 5. Game
	clk := clock.Real{}
	keys := input.NewKeyboard(clk, input.DefaultHoldWindow)
	factory := world.NewFactory(cfg, table, rand.New(rand.NewSource(time.Now().UnixNano())))
	g := game.New(cfg, factory, keys, waves, clk, log.Named("game"))
	renderer := render.New(screen, cfg.Terminal)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil // screen finalized
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() (err error) {
		// PollEvent only returns once the screen is finalized.
		defer fini()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				log.Error("game loop panic", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = fmt.Errorf("game loop panic: %v", r)
			}
		}()
		return loop(ctx, cfg, g, keys, renderer, screen, events, log)
	})

	err = eg.Wait()
	log.Info("stopped", zap.Error(err))
	return err
}

func loop(
	ctx context.Context,
	cfg *config.Config,
	g *game.Game,
	keys *input.Keyboard,
	renderer *render.Renderer,
	screen tcell.Screen,
	events <-chan tcell.Event,
	log *zap.Logger,
) error {
	ticker := time.NewTicker(cfg.Loop.TickRate.Duration)
	defer ticker.Stop()
	log.Info("game loop started", zap.Duration("tick", cfg.Loop.TickRate.Duration))

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal")
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if quit := handleKey(ev, g, keys, renderer); quit {
					log.Info("quit requested")
					return nil
				}
			}

		case <-ticker.C:
			g.Tick()
			st, ok := g.State()
			renderer.Draw(g.World(), render.Status{State: st, HasGame: ok, Paused: g.Paused()})
		}
	}
}

// handleKey applies control keys and forwards the rest to the keyboard
// adapter. Returns true when the player asked to quit.
func handleKey(ev *tcell.EventKey, g *game.Game, keys *input.Keyboard, renderer *render.Renderer) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'p', 'P':
			g.TogglePause()
			keys.ReleaseAll()
			return false
		case 'r', 'R':
			g.Restart()
			keys.ReleaseAll()
			renderer.Invalidate()
			return false
		}
	}
	if !g.Paused() {
		keys.HandleKey(ev)
	}
	return false
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}

	return zapCfg.Build()
}
