package config

import "fmt"

// Preset is a named rule set.
type Preset string

const (
	PresetClassic Preset = "classic" // Plain matching, swaps stay applied
	PresetBombs   Preset = "bombs"   // Bomb catalog with promotion and chain clears
	PresetChill   Preset = "chill"   // Unproductive swaps revert, slower playback
)

// Presets lists the known presets.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetBombs, PresetChill}
}

// ApplyPreset modifies the config according to a preset.
func ApplyPreset(cfg *BoardConfig, preset Preset) error {
	switch preset {
	case PresetClassic:
		cfg.Rules.IncludeBombs = false
		cfg.Rules.BombRate = 0
		cfg.Rules.RevertUnproductiveSwap = false
	case PresetBombs:
		cfg.Rules.IncludeBombs = true
		cfg.Rules.BombRate = 0.05
		if len(cfg.Blocks) == 0 {
			cfg.Catalog = "bombs"
		}
	case PresetChill:
		cfg.Rules.RevertUnproductiveSwap = true
		cfg.Timing.SwapMS *= 2
		cfg.Timing.RemoveMS *= 2
		cfg.Timing.StepMS *= 2
	case "":
	default:
		return fmt.Errorf("unknown preset %q (want one of %v)", preset, Presets())
	}
	return nil
}
