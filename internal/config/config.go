// Package config loads redfish-gen settings from defaults, an optional YAML
// file, REDFISHGEN_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andrewkroh/go-redfish-gen/internal/generator"
	"github.com/andrewkroh/go-redfish-gen/internal/render"
)

// EnvPrefix is prepended to environment variable names, e.g.
// REDFISHGEN_COMMENT_WIDTH.
const EnvPrefix = "REDFISHGEN"

// CommentConfig controls how schema descriptions become comments.
type CommentConfig struct {
	CutPoint string `yaml:"cut_point" mapstructure:"cut_point"`
	LinkWord string `yaml:"link_word" mapstructure:"link_word"`
	Width    int    `yaml:"width"     mapstructure:"width"`
}

// Config is the merged redfish-gen configuration.
type Config struct {
	RedfishBaseURL   string        `yaml:"redfish_base_url"   mapstructure:"redfish_base_url"`
	SwordfishBaseURL string        `yaml:"swordfish_base_url" mapstructure:"swordfish_base_url"`
	CommonPackage    string        `yaml:"common_package"     mapstructure:"common_package"`
	Comment          CommentConfig `yaml:"comment"            mapstructure:"comment"`
	ReservedWords    []string      `yaml:"reserved_words"     mapstructure:"reserved_words"`
	Concurrency      int           `yaml:"concurrency"        mapstructure:"concurrency"`
	HTTPTimeout      time.Duration `yaml:"http_timeout"       mapstructure:"http_timeout"`
	LogLevel         string        `yaml:"log_level"          mapstructure:"log_level"`
	LogFormat        string        `yaml:"log_format"         mapstructure:"log_format"`
}

// New returns a viper instance with every key defaulted and environment
// lookups enabled. Keys must have a default to be picked up from the
// environment by Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("redfish_base_url", generator.DefaultRedfishBaseURL)
	v.SetDefault("swordfish_base_url", generator.DefaultSwordfishBaseURL)
	v.SetDefault("common_package", render.DefaultCommonPackage)

	v.SetDefault("comment.cut_point", generator.DefaultCutPoint)
	v.SetDefault("comment.link_word", "")
	v.SetDefault("comment.width", generator.DefaultWrapWidth)

	v.SetDefault("reserved_words", []string{})
	v.SetDefault("concurrency", 4)
	v.SetDefault("http_timeout", 30*time.Second)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds command line flags to configuration keys. The map is
// keyed by configuration key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, flag := range keys {
		f := flags.Lookup(flag)
		if f == nil {
			return fmt.Errorf("binding %s: no flag named %q", key, flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// Load reads the optional config file and decodes the merged settings.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Comment.Width < 0 {
		errs = append(errs, fmt.Errorf("comment.width must not be negative, got %d", c.Comment.Width))
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if !validFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("unknown log format %q (valid: %s)", c.LogFormat, strings.Join(logFormats, ", ")))
	}
	return errors.Join(errs...)
}

// Options returns the naming and comment options for the mapper.
func (c *Config) Options() generator.Options {
	opts := generator.Options{
		Comments: generator.CommentFormatter{
			CutPoint: c.Comment.CutPoint,
			LinkWord: c.Comment.LinkWord,
			Width:    c.Comment.Width,
		},
	}
	// An empty list keeps the Go keyword default.
	if len(c.ReservedWords) > 0 {
		opts.ReservedWords = c.ReservedWords
	}
	return opts
}

// Apply copies the settings shared by every run into a generator config.
func (c *Config) Apply(gc *generator.Config) {
	gc.RedfishBaseURL = c.RedfishBaseURL
	gc.SwordfishBaseURL = c.SwordfishBaseURL
	gc.CommonPackage = c.CommonPackage
	gc.Options = c.Options()
}
