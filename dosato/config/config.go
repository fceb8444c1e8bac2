package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dosato-lang/dosato/dosato/process"
	"github.com/dosato-lang/dosato/dosato/value"
)

// FileName is looked up in the working directory by the CLI.
const FileName = "dosato.yml"

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func (self ColorMode) IsValid() bool {
	switch self {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Enabled decides whether diagnostics are colored. `isTerminal` is only consulted in auto mode.
func (self ColorMode) Enabled(isTerminal bool) bool {
	switch self {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// Config represents the parsed contents of dosato.yml.
type Config struct {
	CallStackLimit int            `yaml:"call_stack_limit"`
	Color          ColorMode      `yaml:"color"`
	Trace          bool           `yaml:"trace"`
	Constants      map[string]any `yaml:"constants"`
}

// ValidationError aggregates configuration failures.
type ValidationError struct {
	Issues []string
}

func (self *ValidationError) Error() string {
	if len(self.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range self.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func Default() Config {
	return Config{
		CallStackLimit: process.DefaultCallStackLimit,
		Color:          ColorAuto,
		Trace:          false,
		Constants: map[string]any{
			"PI": math.Pi,
			"E":  math.E,
		},
	}
}

// LoadFile reads a configuration file. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	config, err := Load(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return config, nil
}

// Load decodes and validates a configuration. Omitted keys keep their default.
func Load(reader io.Reader) (Config, error) {
	config := Default()
	// a configured map replaces the default constants instead of being merged into them
	config.Constants = nil

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if config.Constants == nil {
		config.Constants = Default().Constants
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate collects every problem of the configuration into a ValidationError.
func (self Config) Validate() error {
	var errs ValidationError

	switch {
	case self.CallStackLimit <= 0:
		errs.Issues = append(errs.Issues, fmt.Sprintf("call_stack_limit must be positive, found %d", self.CallStackLimit))
	case self.CallStackLimit > process.MaxCallStackLimit:
		errs.Issues = append(errs.Issues, fmt.Sprintf("call_stack_limit must not exceed %d, found %d", process.MaxCallStackLimit, self.CallStackLimit))
	}
	if !self.Color.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("color must be one of auto, always or never, found %q", self.Color))
	}

	for _, name := range self.constantNames() {
		if !identifierPattern.MatchString(name) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("constants.%s: name is not a valid identifier", name))
		}
		if _, err := toValue(self.Constants[name]); err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("constants.%s: %s", name, err.Error()))
		}
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (self Config) constantNames() []string {
	names := make([]string, 0, len(self.Constants))
	for name := range self.Constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConstantValues converts the configured constants into runtime values.
func (self Config) ConstantValues() (map[string]value.Value, error) {
	values := make(map[string]value.Value, len(self.Constants))
	for name, raw := range self.Constants {
		converted, err := toValue(raw)
		if err != nil {
			return nil, fmt.Errorf("constants.%s: %w", name, err)
		}
		values[name] = converted
	}
	return values, nil
}

func toValue(raw any) (value.Value, error) {
	switch typed := raw.(type) {
	case int:
		return value.ValueLong{Inner: int64(typed)}, nil
	case int64:
		return value.ValueLong{Inner: typed}, nil
	case uint64:
		return value.ValueULong{Inner: typed}, nil
	case float64:
		return value.ValueDouble{Inner: typed}, nil
	case bool:
		return value.ValueBool{Inner: typed}, nil
	case string:
		return value.ValueString{Inner: typed}, nil
	case nil:
		return nil, fmt.Errorf("value must not be empty")
	default:
		return nil, fmt.Errorf("unsupported value of type %T, only scalars are allowed", raw)
	}
}
