package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for wave tuning hooks.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and runs the script at path.
func NewEngine(path string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	if err := vm.DoFile(path); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Debug("loaded lua script", zap.String("file", path))

	return &Engine{vm: vm, log: log}, nil
}

// NewEngineFromString is NewEngine for an in-memory script.
func NewEngineFromString(src string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	return &Engine{vm: vm, log: log}, nil
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// WaveSize calls the Lua wave_size(level, base, max) function. When the
// function is missing or misbehaves it falls back to min(base+level, max).
// The result is clamped to [1, max].
func (e *Engine) WaveSize(level, base, maxCount int) int {
	fallback := min(base+level, maxCount)

	fn := e.vm.GetGlobal("wave_size")
	if fn == lua.LNil {
		return clampWave(fallback, maxCount)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(level), lua.LNumber(base), lua.LNumber(maxCount)); err != nil {
		e.log.Error("lua wave_size error", zap.Error(err))
		return clampWave(fallback, maxCount)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	n, ok := result.(lua.LNumber)
	if !ok {
		e.log.Error("lua wave_size returned non-number", zap.String("type", result.Type().String()))
		return clampWave(fallback, maxCount)
	}
	return clampWave(int(n), maxCount)
}

func clampWave(n, maxCount int) int {
	if n > maxCount {
		n = maxCount
	}
	if n < 1 {
		n = 1
	}
	return n
}
