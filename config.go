package lpsim

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _lpsimconfig{}
)

// _lpsimconfig is a "hidden" struct, just use `lpsimConfig`
type _lpsimconfig struct {
	outputDir string
	presets   map[string]Preset
	constants map[string]float64
}

// lpsimConfig returns the lpsim configuration. The config file is a
// conf.toml in the directory named by the LPSIM_CONFIG environment variable
// (the working directory when unset). A missing file simply yields the
// built-in defaults: output to the working directory, no presets.
func lpsimConfig() _lpsimconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("LPSIM_CONFIG")
	if confPath == "" {
		confPath = "."
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.SetConfigType("toml")
	v.AddConfigPath(confPath)

	config = _lpsimconfig{outputDir: ".", presets: map[string]Preset{}, constants: map[string]float64{}}
	for name, value := range Constants {
		config.constants[name] = value
	}
	if err := v.ReadInConfig(); err == nil {
		if out := v.GetString("general.output_path"); out != "" {
			config.outputDir = out
		}
		for name, raw := range v.GetStringMap("presets") {
			fields, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			config.presets[name] = Preset(fields)
		}
		// User constants are merged over the built-ins.
		for name, raw := range v.GetStringMap("constants") {
			if value, err := toFloat(raw); err == nil {
				config.constants[name] = value
			}
		}
	}
	cfgLoaded = true
	return config
}

// Preset is a named set of simulation parameters from the config file.
// Values are numbers, or strings naming a constant ("sun_mass",
// "earth_moon_dist", ...) from the built-in or user constants tables.
type Preset map[string]interface{}

// Presets returns the presets defined in the config file.
func Presets() map[string]Preset {
	return lpsimConfig().presets
}

// LoadPreset applies the named preset to the given Simulator through its
// validated setters. Unknown presets, unknown fields, unknown constant names
// and constraint violations are all reported as errors; a failed load may
// leave earlier fields of the preset applied.
func LoadPreset(name string, s *Simulator) error {
	preset, found := lpsimConfig().presets[name]
	if !found {
		return fmt.Errorf("unknown preset %q", name)
	}
	return preset.Apply(s)
}

// Apply sets every field of the preset on the given Simulator.
func (p Preset) Apply(s *Simulator) error {
	for field, raw := range p {
		if field == "lagrange_label" {
			label, ok := raw.(string)
			if !ok {
				return fmt.Errorf("preset field lagrange_label: expected string, got %T", raw)
			}
			if err := s.SetLagrangeLabel(LagrangeLabel(label)); err != nil {
				return err
			}
			continue
		}

		value, err := resolveNumber(raw)
		if err != nil {
			return fmt.Errorf("preset field %s: %v", field, err)
		}
		switch field {
		case "num_years":
			err = s.SetNumYears(value)
		case "time_step":
			err = s.SetTimeStep(value)
		case "perturbation_size":
			err = s.SetPerturbationSize(value)
		case "perturbation_angle":
			err = s.SetPerturbationAngle(Float(value))
		case "speed":
			err = s.SetSpeed(value)
		case "vel_angle":
			err = s.SetVelAngle(Float(value))
		case "star_mass":
			err = s.SetStarMass(value)
		case "planet_mass":
			err = s.SetPlanetMass(value)
		case "planet_distance":
			err = s.SetPlanetDistance(value)
		default:
			err = fmt.Errorf("unknown preset field %q", field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// resolveNumber turns a raw preset value into a float64, looking strings up
// in the constants table.
func resolveNumber(raw interface{}) (float64, error) {
	if name, isString := raw.(string); isString {
		value, found := lpsimConfig().constants[name]
		if !found {
			return 0, fmt.Errorf("unknown constant %q", name)
		}
		return value, nil
	}
	return toFloat(raw)
}

func toFloat(raw interface{}) (float64, error) {
	switch value := raw.(type) {
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", raw)
	}
}
