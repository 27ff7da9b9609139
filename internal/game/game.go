package game

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/clock"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	"github.com/l1jgo/asteroids/internal/input"
	"github.com/l1jgo/asteroids/internal/system"
	"github.com/l1jgo/asteroids/internal/world"
)

// Stats are per-session counters collected from gameplay events.
type Stats struct {
	ShotsFired         int
	AsteroidsDestroyed int
	HitsTaken          int
	WavesSpawned       int
}

// Game owns the world and drives it: timing, pause and restart. All
// methods run on the game loop goroutine.
type Game struct {
	cfg     *config.Config
	world   *ecs.World
	bus     *event.Bus
	factory *world.Factory
	waves   system.WaveSizer
	clock   clock.Clock
	log     *zap.Logger

	session uuid.UUID
	stats   Stats
	paused  bool
	last    time.Time
}

// New builds the world, registers the systems and seeds the first game.
// A nil waves uses system.DefaultWaveSizer.
func New(cfg *config.Config, factory *world.Factory, source input.Source, waves system.WaveSizer, clk clock.Clock, log *zap.Logger) *Game {
	if waves == nil {
		waves = system.DefaultWaveSizer{}
	}
	g := &Game{
		cfg:     cfg,
		world:   ecs.NewWorld(),
		bus:     event.NewBus(),
		factory: factory,
		waves:   waves,
		clock:   clk,
		log:     log,
	}

	// Order matters: intent, then motion, then hits, then expiry, then
	// bookkeeping on the settled world.
	g.world.AddSystem(system.NewInputSystem(source, cfg.Ship, factory, g.bus))
	g.world.AddSystem(system.NewMovementSystem(cfg.Arena))
	g.world.AddSystem(system.NewCollisionSystem(factory, cfg.Scoring, cfg.Ship, g.bus, log.Named("collision")))
	g.world.AddSystem(system.NewLifetimeSystem())
	g.world.AddSystem(system.NewGameStateSystem(factory, waves, cfg.Waves, g, g.bus, log.Named("gamestate")))

	event.Subscribe(g.bus, func(event.BulletFired) { g.stats.ShotsFired++ })
	event.Subscribe(g.bus, func(event.AsteroidDestroyed) { g.stats.AsteroidsDestroyed++ })
	event.Subscribe(g.bus, func(event.ShipDamaged) { g.stats.HitsTaken++ })
	event.Subscribe(g.bus, func(event.WaveSpawned) { g.stats.WavesSpawned++ })

	g.seed()
	g.last = clk.Now()
	return g
}

func (g *Game) seed() {
	g.session = uuid.New()
	n := g.waves.WaveSize(0, g.cfg.Waves.BaseCount, g.cfg.Waves.MaxCount)
	g.factory.Seed(g.world, n)
	g.log.Info("game started", zap.Stringer("session", g.session), zap.Int("asteroids", n))
}

// Tick advances the world by the wall-clock time since the previous tick
// and returns that delta. While paused it only moves the reference time.
func (g *Game) Tick() time.Duration {
	now := g.clock.Now()
	dt := now.Sub(g.last)
	g.last = now
	if g.paused {
		return 0
	}
	if dt < 0 {
		dt = 0
	}
	// Last tick's events first, so handlers see a settled world.
	g.bus.SwapBuffers()
	g.bus.DispatchAll()
	g.world.Update(dt)
	return dt
}

func (g *Game) Pause() {
	if g.paused {
		return
	}
	g.paused = true
	g.log.Info("paused", zap.Stringer("session", g.session))
}

func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.paused = false
	g.last = g.clock.Now()
	g.log.Info("resumed", zap.Stringer("session", g.session))
}

func (g *Game) TogglePause() {
	if g.paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

func (g *Game) Paused() bool { return g.paused }

// Restart wipes the world and seeds a fresh game. Systems are reused, so
// their latched state is reset first.
func (g *Game) Restart() {
	prev := g.session
	g.log.Info("session summary", zap.Stringer("session", prev), statsFields(g.stats))
	g.world.Clear()
	g.world.ResetSystems()
	g.bus.Discard()
	g.stats = Stats{}
	g.seed()
	g.paused = false
	g.last = g.clock.Now()
	g.log.Info("restarted", zap.Stringer("previous", prev))
}

// PlayerDefeated pauses the game. The GameState system calls it once per
// death.
func (g *Game) PlayerDefeated() {
	g.log.Info("player defeated", zap.Stringer("session", g.session), statsFields(g.stats))
	g.Pause()
}

// Stats returns the counters delivered so far. Events lag one tick.
func (g *Game) Stats() Stats { return g.stats }

func statsFields(s Stats) zap.Field {
	return zap.Dict("stats",
		zap.Int("shots", s.ShotsFired),
		zap.Int("destroyed", s.AsteroidsDestroyed),
		zap.Int("hits", s.HitsTaken),
		zap.Int("waves", s.WavesSpawned),
	)
}

// State returns a copy of the game's progress record.
func (g *Game) State() (component.GameState, bool) {
	ids := g.world.Query(component.TagGameState)
	if len(ids) == 0 {
		return component.GameState{}, false
	}
	gs, _ := g.world.GameStates.Get(ids[0])
	return *gs, true
}

func (g *Game) World() *ecs.World      { return g.world }
func (g *Game) Session() uuid.UUID     { return g.session }
func (g *Game) Config() *config.Config { return g.cfg }
