package perfprof

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config controls profile computation.
type Config struct {
	// Boolean column marking feasible records. Absent column = all feasible.
	FeasibilityColumn string `yaml:"feasibility_column" validate:"required"`

	// Explicit τ grid. Empty = every distinct finite ratio.
	Taus []float64 `yaml:"taus" validate:"omitempty,dive,gte=1"`

	// Upper bound on the generated τ grid (0 = unbounded).
	MaxTau float64 `yaml:"max_tau" validate:"omitempty,gte=1"`

	// Report τ as log2(τ) in curves and CSV output.
	LogScale bool `yaml:"log_scale"`

	// Costs below Floor (zero) are raised to Floor before dividing.
	Floor float64 `yaml:"floor" validate:"gt=0"`

	// Receives one WARN record per diagnostic. Nil = slog.Default().
	Logger *slog.Logger `yaml:"-" validate:"-"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		FeasibilityColumn: "feas",
		Floor:             1e-10,
	}
}

var configValidate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)",
				ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Fields missing from the document keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file.
//
// Example file:
//
//	feasibility_column: converged
//	max_tau: 64
//	log_scale: true
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
