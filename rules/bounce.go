package rules

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/arkanoid/vmath"
)

// Contact describes a ball/brick overlap at the moment it is resolved
type Contact struct {
	FromLeft bool
	FromTop  bool
	// OverlapX and OverlapY are the chosen (shallower) penetration depths per axis
	OverlapX float32
	OverlapY float32
	Speed    float32
	Velocity vmath.Vec2
}

// BounceRule decides the ball's vertical velocity when a brick hit resolves on the vertical axis
type BounceRule interface {
	Vertical(c Contact) float32
}

// Rule names accepted by New
const (
	NameReflect = "reflect"
	NameLegacy  = "legacy"
	NameScript  = "script"
)

// ReflectRule sends the ball back the way it came: up when it hit the brick's top face
type ReflectRule struct{}

func (ReflectRule) Vertical(c Contact) float32 {
	if c.FromTop {
		return -c.Speed
	}
	return c.Speed
}

// LegacyRule multiplies the from-top flag by the speed. A hit from below yields zero vertical
// velocity, leaving the ball sliding horizontally until it meets a wall or another brick.
type LegacyRule struct{}

func (LegacyRule) Vertical(c Contact) float32 {
	var flag float32
	if c.FromTop {
		flag = 1
	}
	return flag * -c.Speed
}

// New builds the rule named by name; script is the Lua file used by NameScript
func New(name, script string, log *zap.Logger) (BounceRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameReflect:
		return ReflectRule{}, nil
	case NameLegacy:
		return LegacyRule{}, nil
	case NameScript:
		if script == "" {
			return nil, errors.New("script bounce rule requires a script path")
		}
		return NewLuaRule(script, log)
	default:
		return nil, errors.Errorf("unknown bounce rule %q", name)
	}
}
