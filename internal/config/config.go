// Package config is for app wide settings that are unmarshalled from Viper:
// defaults, then an optional kmerkit.yaml, then KMERKIT_* env, then bound flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Output formats understood by the writers.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// OutputConfig controls how results are serialized
type OutputConfig struct {
	// text | json | jsonl | yaml
	Format string `mapstructure:"format"`

	// whether text output starts with a header line
	Header bool `mapstructure:"header"`

	// styled table instead of plain TSV (text only)
	Pretty bool `mapstructure:"pretty"`
}

// ReadsConfig is settings for read sampling
type ReadsConfig struct {
	// reads drawn per input genome
	Count int `mapstructure:"count"`

	// exact length of every read
	Length int `mapstructure:"length"`

	// seed for the random source; negative means seed from the clock
	Seed int64 `mapstructure:"seed"`
}

// KmersConfig is settings for k-mer counting
type KmersConfig struct {
	// the k-mer length
	K int `mapstructure:"k"`

	// fold each k-mer onto min(kmer, revcomp(kmer))
	Canonical bool `mapstructure:"canonical"`

	// only report the N most frequent k-mers (0 = all, first-seen order)
	Top int `mapstructure:"top"`
}

// LogConfig is settings for the slog logger
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Config is the root-level settings struct and is a mix of settings
// available in kmerkit.yaml, the environment, and the command line
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Reads  ReadsConfig  `mapstructure:"reads"`
	Kmers  KmersConfig  `mapstructure:"kmers"`
	Log    LogConfig    `mapstructure:"log"`
}

// EnvPrefix is prepended to every environment override, e.g. KMERKIT_KMERS_K.
const EnvPrefix = "KMERKIT"

// SetDefaults registers every key so env and flags can override it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.header", true)
	v.SetDefault("output.pretty", false)
	v.SetDefault("reads.count", 10)
	v.SetDefault("reads.length", 50)
	v.SetDefault("reads.seed", -1)
	v.SetDefault("kmers.k", 3)
	v.SetDefault("kmers.canonical", false)
	v.SetDefault("kmers.top", 0)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
}

// Load reads configuration into a Config. An explicit path must exist; without
// one, kmerkit.yaml in the working directory is used when present.
func Load(v *viper.Viper, path string) (Config, error) {
	var c Config

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("kmerkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return c, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode config: %w", err)
	}
	return c, c.Validate()
}

// Validate rejects settings no command could run with.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatJSONL, FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q (want text | json | jsonl | yaml)", c.Output.Format)
	}
	if c.Reads.Count < 0 {
		return errors.New("reads.count must be ≥ 0")
	}
	if c.Reads.Length <= 0 {
		return errors.New("reads.length must be > 0")
	}
	if c.Kmers.K <= 0 {
		return errors.New("kmers.k must be > 0")
	}
	if c.Kmers.Top < 0 {
		return errors.New("kmers.top must be ≥ 0")
	}
	return nil
}
