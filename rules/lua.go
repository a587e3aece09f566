package rules

import (
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// bounceFunc is the global a rule script must define:
//
//	function bounce(from_left, from_top, overlap_x, overlap_y, speed, vx, vy) return new_vy end
const bounceFunc = "bounce"

// LuaRule delegates the vertical bounce to a script function
// Single-goroutine access only (game loop); falls back to ReflectRule when the script errors
type LuaRule struct {
	vm       *lua.LState
	fn       *lua.LFunction
	log      *zap.Logger
	fallback ReflectRule
}

// NewLuaRule loads the script at path
func NewLuaRule(path string, log *zap.Logger) (*LuaRule, error) {
	return newLuaRule(log, func(vm *lua.LState) error {
		return vm.DoFile(path)
	}, path)
}

// NewLuaRuleString loads the script from source
func NewLuaRuleString(source string, log *zap.Logger) (*LuaRule, error) {
	return newLuaRule(log, func(vm *lua.LState) error {
		return vm.DoString(source)
	}, "<string>")
}

func newLuaRule(log *zap.Logger, load func(*lua.LState) error, name string) (*LuaRule, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})

	if err := load(vm); err != nil {
		vm.Close()
		return nil, errors.Wrapf(err, "load bounce script %s", name)
	}

	fn, ok := vm.GetGlobal(bounceFunc).(*lua.LFunction)
	if !ok {
		vm.Close()
		return nil, errors.Errorf("bounce script %s does not define function %q", name, bounceFunc)
	}

	log.Debug("loaded bounce script", zap.String("file", name))
	return &LuaRule{vm: vm, fn: fn, log: log}, nil
}

func (r *LuaRule) Vertical(c Contact) float32 {
	err := r.vm.CallByParam(lua.P{Fn: r.fn, NRet: 1, Protect: true},
		lua.LBool(c.FromLeft),
		lua.LBool(c.FromTop),
		lua.LNumber(c.OverlapX),
		lua.LNumber(c.OverlapY),
		lua.LNumber(c.Speed),
		lua.LNumber(c.Velocity.X),
		lua.LNumber(c.Velocity.Y),
	)
	if err != nil {
		r.log.Warn("bounce script failed, reflecting", zap.Error(err))
		return r.fallback.Vertical(c)
	}

	ret := r.vm.Get(-1)
	r.vm.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		r.log.Warn("bounce script returned non-number, reflecting", zap.String("type", ret.Type().String()))
		return r.fallback.Vertical(c)
	}
	return float32(n)
}

// Close releases the Lua VM
func (r *LuaRule) Close() error {
	r.vm.Close()
	return nil
}
