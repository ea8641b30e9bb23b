package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andy-moore-energy/energy-storage-optimiser/internal/data"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/model"
)

// Config is the on-disk scenario configuration shape (YAML).
type Config struct {
	Scenario   ScenarioConfig    `yaml:"scenario"`
	Storage    StorageConfig     `yaml:"storage"`
	Renewables []RenewableConfig `yaml:"renewables"`
	Load       LoadConfig        `yaml:"load"`
}

type ScenarioConfig struct {
	Name      string    `yaml:"name"`
	StartDate time.Time `yaml:"start_date"`
	// Steps limits the horizon; 0 means the full profile length.
	Steps int `yaml:"steps"`
}

type StorageConfig struct {
	Efficiency           float64 `yaml:"efficiency"`
	MinimumDurationHours float64 `yaml:"minimum_duration_hours"`
	CapexPower           float64 `yaml:"capex_power"`
	CapexCapacity        float64 `yaml:"capex_capacity"`
}

// RenewableConfig describes one technology. Exactly one of Profile and
// ProfileFile must be set; file paths resolve relative to the config file.
type RenewableConfig struct {
	Name        string    `yaml:"name"`
	CapacityMW  float64   `yaml:"capacity_mw"`
	Profile     []float64 `yaml:"profile"`
	ProfileFile string    `yaml:"profile_file"`
}

type LoadConfig struct {
	CapacityMW  float64   `yaml:"capacity_mw"`
	Profile     []float64 `yaml:"profile"`
	ProfileFile string    `yaml:"profile_file"`
}

// Load reads and validates a scenario configuration, resolving any profile
// files along the way.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if err := c.resolveProfiles(filepath.Dir(path)); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) resolveProfiles(baseDir string) error {
	for i := range c.Renewables {
		r := &c.Renewables[i]
		profile, err := resolveProfile(r.Profile, r.ProfileFile, baseDir)
		if err != nil {
			return fmt.Errorf("renewable %q: %w", r.Name, err)
		}
		r.Profile = profile
	}
	profile, err := resolveProfile(c.Load.Profile, c.Load.ProfileFile, baseDir)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	c.Load.Profile = profile
	return nil
}

func resolveProfile(inline []float64, file, baseDir string) ([]float64, error) {
	if len(inline) > 0 && file != "" {
		return nil, errors.New("profile and profile_file are mutually exclusive")
	}
	if len(inline) > 0 {
		return inline, nil
	}
	if file == "" {
		return nil, errors.New("either profile or profile_file is required")
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(baseDir, file)
	}
	return data.LoadProfileCSV(file)
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Scenario.Name == "" {
		return errors.New("scenario.name is required")
	}
	if len(c.Renewables) == 0 {
		return errors.New("at least one renewable technology is required")
	}
	// Validate storage by constructing the model record.
	if _, err := c.Storage.ToModel(); err != nil {
		return fmt.Errorf("storage config invalid: %w", err)
	}
	return nil
}

func (s StorageConfig) ToModel() (model.Storage, error) {
	return model.NewStorage(s.Efficiency, s.MinimumDurationHours, s.CapexPower, s.CapexCapacity)
}

// ToScenarioInputs assembles the validated model bundle. Steps defaults to
// the shortest profile when unset; profiles longer than the horizon are
// truncated to it.
func (c *Config) ToScenarioInputs() (model.ScenarioInputs, error) {
	storage, err := c.Storage.ToModel()
	if err != nil {
		return model.ScenarioInputs{}, err
	}

	steps := c.Scenario.Steps
	if steps == 0 {
		steps = len(c.Load.Profile)
		for _, r := range c.Renewables {
			if len(r.Profile) < steps {
				steps = len(r.Profile)
			}
		}
	}

	names := make([]string, 0, len(c.Renewables))
	capacities := make(map[string]float64, len(c.Renewables))
	profiles := make(map[string][]float64, len(c.Renewables))
	for _, r := range c.Renewables {
		if len(r.Profile) < steps {
			return model.ScenarioInputs{}, fmt.Errorf("renewable %q: profile has %d steps, horizon needs %d", r.Name, len(r.Profile), steps)
		}
		names = append(names, r.Name)
		capacities[r.Name] = r.CapacityMW
		profiles[r.Name] = r.Profile[:steps]
	}
	renewables, err := model.NewRenewables(names, capacities, profiles)
	if err != nil {
		return model.ScenarioInputs{}, err
	}

	if len(c.Load.Profile) < steps {
		return model.ScenarioInputs{}, fmt.Errorf("load: profile has %d steps, horizon needs %d", len(c.Load.Profile), steps)
	}
	load := model.NewLoad(c.Load.CapacityMW, c.Load.Profile[:steps])

	return model.NewScenarioInputs(
		c.Scenario.Name,
		c.Scenario.StartDate,
		model.TimeIndexFor(steps),
		renewables,
		load,
		storage,
	)
}
