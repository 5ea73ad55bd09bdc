package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"github.com/kelseyhightower/envconfig"
	"github.com/weberc2/prelude/guard"
	"github.com/weberc2/prelude/internal/log"
	"github.com/weberc2/prelude/option"
	"github.com/weberc2/prelude/seq"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "ROTATE"
	appName      = "rotate"
)

const (
	FormatLines = "lines"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

type Config struct {
	Places  option.Option[int] `envconfig:"ROTATE_PLACES"  yaml:"places"`
	Format  string             `envconfig:"ROTATE_FORMAT"  yaml:"format"`
	Verbose bool               `envconfig:"ROTATE_VERBOSE" yaml:"verbose"`
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName+".yaml")
}

// LoadConfig reads the YAML file at `configFile` (if it exists) and then
// applies `ROTATE_*` environment variables on top.
func LoadConfig(configFile string) (*Config, error) {
	c := Config{Format: FormatLines}
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf(
					"reading config file `%s`: %w",
					configFile,
					err,
				)
			}
		} else if err := yaml.UnmarshalStrict(data, &c); err != nil {
			return nil, fmt.Errorf(
				"unmarshaling config file `%s`: %w",
				configFile,
				err,
			)
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if err := guard.OneOf(
		"format",
		c.Format,
		FormatLines,
		FormatYAML,
		FormatJSON,
	); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	return nil
}

// Run rotates `items` by the configured number of places (zero if unset)
// and writes them to `w` in the configured format.
func (c *Config) Run(ctx context.Context, items []string, w io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	places := c.Places.ValueOrDefault()
	log.FromContext(ctx).Debug(
		"rotating items",
		"items", len(items),
		"places", c.Places.String(),
		"format", c.Format,
	)

	rotated, err := seq.Rotate(slices.Values(items), places)
	if err != nil {
		return fmt.Errorf("rotating `%d` items: %w", len(items), err)
	}

	switch c.Format {
	case FormatYAML:
		data, err := yaml.Marshal(collect(rotated))
		if err != nil {
			return fmt.Errorf("marshaling rotated items: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing rotated items: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(collect(rotated)); err != nil {
			return fmt.Errorf("writing rotated items: %w", err)
		}
	default:
		for item := range rotated {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return fmt.Errorf("writing rotated items: %w", err)
			}
		}
	}
	return nil
}

// collect never returns nil so empty input marshals as an empty list.
func collect[T any](items iter.Seq[T]) []T {
	out := []T{}
	for item := range items {
		out = append(out, item)
	}
	return out
}
