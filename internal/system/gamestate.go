package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	"github.com/l1jgo/asteroids/internal/world"
)

// WaveSizer decides how many asteroids a new wave has.
// scripting.Engine satisfies it.
type WaveSizer interface {
	WaveSize(level, base, maxCount int) int
}

// DefaultWaveSizer grows the wave by one per level up to maxCount.
type DefaultWaveSizer struct{}

func (DefaultWaveSizer) WaveSize(level, base, maxCount int) int {
	return min(base+level, maxCount)
}

// DefeatHandler is told once each time the player goes from alive to
// defeated.
type DefeatHandler interface {
	PlayerDefeated()
}

// GameStateSystem keeps the GameState singleton in sync with the world:
// asteroid count, waves and level, lives, and game over.
type GameStateSystem struct {
	factory *world.Factory
	waves   WaveSizer
	cfg     config.WavesConfig
	defeat  DefeatHandler
	bus     *event.Bus
	log     *zap.Logger

	signaled bool // defeat already reported for the current death
}

func NewGameStateSystem(
	factory *world.Factory,
	waves WaveSizer,
	cfg config.WavesConfig,
	defeat DefeatHandler,
	bus *event.Bus,
	log *zap.Logger,
) *GameStateSystem {
	if waves == nil {
		waves = DefaultWaveSizer{}
	}
	return &GameStateSystem{factory: factory, waves: waves, cfg: cfg, defeat: defeat, bus: bus, log: log}
}

func (s *GameStateSystem) Update(w *ecs.World, dt time.Duration) {
	states := w.Query(component.TagGameState)
	if len(states) == 0 {
		return
	}
	// More than one GameState is a bug elsewhere; the lowest ID wins.
	gs, _ := w.GameStates.Get(states[0])

	gs.AsteroidsRemaining = len(w.Query(component.TagAsteroid))
	if gs.AsteroidsRemaining == 0 {
		n := s.waves.WaveSize(gs.Level, s.cfg.BaseCount, s.cfg.MaxCount)
		s.factory.Wave(w, n)
		s.log.Info("wave spawned", zap.Int("level", gs.Level), zap.Int("asteroids", n))
		event.Emit(s.bus, event.WaveSpawned{Level: gs.Level, Count: n})
		gs.Level++
		gs.AsteroidsRemaining = n
	}

	ships := w.Query(component.TagHealth, component.TagInput)
	defeated := len(ships) > 0
	for i, id := range ships {
		h, _ := w.Healths.Get(id)
		if h.InvulnerableRemaining > 0 {
			h.InvulnerableRemaining = max(h.InvulnerableRemaining-dt, 0)
		}
		if i == 0 {
			gs.Lives = max(h.Current, 0)
		}
		if h.Current > 0 {
			defeated = false
		}
	}

	gs.IsGameOver = defeated
	if !defeated {
		s.signaled = false
		return
	}
	if s.signaled {
		return
	}
	s.signaled = true
	s.log.Info("game over", zap.Int("score", gs.Score), zap.Int("level", gs.Level))
	if s.defeat != nil {
		s.defeat.PlayerDefeated()
	}
}

// Reset clears the defeat latch so a new game can report its own death.
func (s *GameStateSystem) Reset() {
	s.signaled = false
}
