package problemgen

import (
	"fmt"
	"slices"

	"github.com/abhisek/quickmaths/internal/random"
)

// Mixed-mode dispatch thresholds on a single uniform draw.
const (
	mixedArithmeticBelow = 0.5
	mixedUnitBelow       = 0.75
)

// Generator produces problems from an injected random source. It is not safe
// for concurrent use; give each game its own.
type Generator struct {
	rnd    random.Source
	config Config
}

// New creates a Generator drawing from src.
func New(src random.Source, cfg Config) *Generator {
	return &Generator{rnd: src, config: cfg}
}

// Generate produces one problem for the given mode. level applies to
// arithmetic problems (including those drawn in mixed mode); cfg applies to
// unit problems. All configured validators run before returning.
func (g *Generator) Generate(mode Mode, level Level, cfg UnitConfig) (*Problem, error) {
	if !slices.Contains(Levels(), level) {
		return nil, fmt.Errorf("generate %s: %q: %w", mode, level, ErrUnknownLevel)
	}

	var p *Problem
	switch mode {
	case ModeArithmetic:
		p = g.Arithmetic(level)
	case ModeUnit:
		p = g.UnitConversion(cfg)
	case ModeTimezone:
		p = g.Timezone()
	case ModeMixed:
		p = g.Mixed(level, cfg)
	default:
		return nil, fmt.Errorf("generate: %q: %w", mode, ErrUnknownMode)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(p); verr != nil {
			return nil, verr
		}
	}
	return p, nil
}

// Mixed draws one uniform number and delegates: arithmetic with probability
// 0.5, unit conversion 0.25, timezone 0.25.
func (g *Generator) Mixed(level Level, cfg UnitConfig) *Problem {
	pick := g.rnd.Float64()
	switch {
	case pick < mixedArithmeticBelow:
		return g.Arithmetic(level)
	case pick < mixedUnitBelow:
		return g.UnitConversion(cfg)
	default:
		return g.Timezone()
	}
}
