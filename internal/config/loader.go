package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMEMS loads the MEMS array configuration.
// Search order: customPath -> ~/.scenes/configs/mems.yaml -> ./configs/mems.yaml -> embedded default
func LoadMEMS(customPath string) (MEMSConfig, error) {
	return load("mems", customPath, DefaultMEMSConfig)
}

// LoadOrbit loads the orbiting cone configuration.
func LoadOrbit(customPath string) (OrbitConfig, error) {
	return load("orbit", customPath, DefaultOrbitConfig)
}

// LoadUFO loads the UFO configuration.
func LoadUFO(customPath string) (UFOConfig, error) {
	return load("ufo", customPath, DefaultUFOConfig)
}

// LoadVacuum loads the vacuum chamber configuration.
func LoadVacuum(customPath string) (VacuumConfig, error) {
	return load("vacuum", customPath, DefaultVacuumConfig)
}

// LoadFields loads the containment field configuration.
func LoadFields(customPath string) (FieldsConfig, error) {
	return load("fields", customPath, DefaultFieldsConfig)
}

// LoadXmas loads the Christmas scene configuration.
func LoadXmas(customPath string) (XmasConfig, error) {
	return load("xmas", customPath, DefaultXmasConfig)
}

// Load resolves the configuration of the scene with the given ID.
func Load(id, customPath string) (any, error) {
	switch id {
	case "mems":
		return LoadMEMS(customPath)
	case "orbit":
		return LoadOrbit(customPath)
	case "ufo":
		return LoadUFO(customPath)
	case "vacuum":
		return LoadVacuum(customPath)
	case "fields":
		return LoadFields(customPath)
	case "xmas":
		return LoadXmas(customPath)
	}
	return nil, fmt.Errorf("config: unknown scene %q", id)
}

// validator is implemented by every scene configuration.
type validator interface {
	Validate() error
}

// load resolves a scene configuration.
// Search order: customPath -> ~/.scenes/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Only a custom path is allowed to fail reading or parsing; the other
// locations are skipped when missing or unparsable. Files are decoded over
// the defaults, so a file only needs the keys it changes. A file whose
// values fail validation is an error wherever it was found.
func load[T validator](id, customPath string, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := id + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok, err := tryFile(userCfgPath, defaults); ok {
			return cfg, err
		}
	}

	// Try local configs directory
	if cfg, ok, err := tryFile(filepath.Join("configs", filename), defaults); ok {
		return cfg, err
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(id), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile reports ok when path holds a parsable config. The error is set
// when that config fails validation.
func tryFile[T validator](path string, defaults func() T) (T, bool, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false, nil
	}
	if err := cfg.Validate(); err != nil {
		return cfg, true, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, true, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scenes", "configs", filename)
}

// Marshal encodes a configuration as YAML.
func Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
