// Package config loads docindex settings from a YAML file, a .env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/itsmostafa/docindex/internal/index"
	"github.com/itsmostafa/docindex/internal/render"
)

// EnvPrefix prefixes every environment variable docindex reads.
const EnvPrefix = "DOCINDEX_"

// Config holds the generator settings. Zero values mean "use the default".
type Config struct {
	DocRoot         string `yaml:"doc_root,omitempty"`
	Output          string `yaml:"output,omitempty"`
	IndexPage       string `yaml:"index_page,omitempty"`
	CollapseImage   string `yaml:"collapse_image,omitempty"`
	Collapsed       bool   `yaml:"collapsed,omitempty"`
	StrictCrossRefs bool   `yaml:"strict_xrefs,omitempty"`
	LogLevel        string `yaml:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat       string `yaml:"log_format,omitempty"` // text, json
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		IndexPage:     index.DefaultIndexPage,
		CollapseImage: render.DefaultCollapseImage,
		LogLevel:      string(LogLevelWarn),
		LogFormat:     string(LogFormatText),
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none
// are given) into the process environment. Variables already set are kept and
// missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from DOCINDEX_* environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s%s %q: %w", EnvPrefix, name, v, err)
		}
		*dst = b
		return nil
	}

	str("DOC_ROOT", &c.DocRoot)
	str("OUTPUT", &c.Output)
	str("INDEX_PAGE", &c.IndexPage)
	str("COLLAPSE_IMAGE", &c.CollapseImage)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	if err := boolean("COLLAPSED", &c.Collapsed); err != nil {
		return err
	}
	return boolean("STRICT_XREFS", &c.StrictCrossRefs)
}

// RenderOptions converts the config into emitter options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		DocRoot:         c.DocRoot,
		IndexPage:       c.IndexPage,
		CollapseImage:   c.CollapseImage,
		Collapsed:       c.Collapsed,
		StrictCrossRefs: c.StrictCrossRefs,
	}
}
