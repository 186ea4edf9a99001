package config

import (
	"fmt"
	"strings"

	"github.com/abhisek/quickmaths/internal/convert"
	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/session"
)

// Settings is the resolved configuration of one game.
type Settings struct {
	Mode   problemgen.Mode
	Level  problemgen.Level
	Rounds int
	Units  problemgen.UnitConfig
}

// DefaultSettings returns mixed mode at medium level with every unit enabled.
func DefaultSettings() Settings {
	return Settings{
		Mode:   problemgen.ModeMixed,
		Level:  problemgen.LevelMedium,
		Rounds: session.DefaultRounds,
		Units:  problemgen.DefaultUnitConfig(),
	}
}

// Apply overlays the values set in the file onto s.
func (fc FileConfig) Apply(s Settings) (Settings, error) {
	if fc.Game.Mode != nil {
		m, err := problemgen.ParseMode(*fc.Game.Mode)
		if err != nil {
			return s, fmt.Errorf("game.mode: %w", err)
		}
		s.Mode = m
	}
	if fc.Game.Level != nil {
		l, err := problemgen.ParseLevel(*fc.Game.Level)
		if err != nil {
			return s, fmt.Errorf("game.level: %w", err)
		}
		s.Level = l
	}
	if fc.Game.Rounds != nil {
		if err := session.ValidateRounds(*fc.Game.Rounds); err != nil {
			return s, fmt.Errorf("game.rounds: %w", err)
		}
		s.Rounds = *fc.Game.Rounds
	}

	if len(fc.Units.Categories) > 0 {
		enabled, err := ParseCategories(fc.Units.Categories)
		if err != nil {
			return s, fmt.Errorf("units.categories: %w", err)
		}
		s.Units.EnabledCategories = enabled
	}
	for name, units := range fc.Units.Allowed {
		if err := SetAllowedUnits(&s.Units, name, units); err != nil {
			return s, fmt.Errorf("units.allowed: %w", err)
		}
	}
	return s, nil
}

// ParseCategories converts category names into an enabled set.
func ParseCategories(names []string) (map[convert.Category]bool, error) {
	enabled := make(map[convert.Category]bool, len(names))
	for _, n := range names {
		c, err := convert.ParseCategory(strings.TrimSpace(strings.ToLower(n)))
		if err != nil {
			return nil, err
		}
		enabled[c] = true
	}
	return enabled, nil
}

// SetAllowedUnits restricts one category of cfg to the given unit symbols
// after checking they exist.
func SetAllowedUnits(cfg *problemgen.UnitConfig, category string, units []string) error {
	c, err := convert.ParseCategory(strings.TrimSpace(strings.ToLower(category)))
	if err != nil {
		return err
	}
	trimmed := make([]string, 0, len(units))
	for _, u := range units {
		trimmed = append(trimmed, strings.TrimSpace(u))
	}

	allowed := make(map[convert.Category][]string, len(cfg.AllowedUnits)+1)
	for k, v := range cfg.AllowedUnits {
		allowed[k] = v
	}
	allowed[c] = trimmed

	candidate := problemgen.UnitConfig{EnabledCategories: cfg.EnabledCategories, AllowedUnits: allowed}
	if err := candidate.Validate(); err != nil {
		return err
	}
	cfg.AllowedUnits = allowed
	return nil
}
