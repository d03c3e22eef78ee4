package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func writeYAML(t *testing.T, v any) string {
	t.Helper()
	b, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	fn := filepath.Join(t.TempDir(), "kmerkit.yaml")
	if err := os.WriteFile(fn, b, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	c, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Output.Format != FormatText || !c.Output.Header || c.Kmers.K != 3 || c.Reads.Seed != -1 {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestFileThenEnvThenFlag(t *testing.T) {
	fn := writeYAML(t, map[string]any{
		"output": map[string]any{"format": "json"},
		"kmers":  map[string]any{"k": 5, "top": 2},
		"reads":  map[string]any{"length": 12, "seed": 9},
	})
	t.Setenv("KMERKIT_KMERS_TOP", "4")

	v := viper.New()
	fs := pflag.NewFlagSet("t", pflag.ContinueOnError)
	fs.Int("k", 0, "")
	if err := fs.Parse([]string{"--k", "7"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := v.BindPFlag("kmers.k", fs.Lookup("k")); err != nil {
		t.Fatalf("bind: %v", err)
	}

	c, err := Load(v, fn)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Output.Format != FormatJSON {
		t.Errorf("file format not applied: %q", c.Output.Format)
	}
	if c.Kmers.Top != 4 {
		t.Errorf("env override not applied: top=%d", c.Kmers.Top)
	}
	if c.Kmers.K != 7 {
		t.Errorf("flag override not applied: k=%d", c.Kmers.K)
	}
	if c.Reads.Length != 12 || c.Reads.Seed != 9 {
		t.Errorf("reads section not decoded: %+v", c.Reads)
	}
}

func TestMissingExplicitFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Output: OutputConfig{Format: FormatText},
		Reads:  ReadsConfig{Count: 1, Length: 1},
		Kmers:  KmersConfig{K: 1},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	bad := []func(*Config){
		func(c *Config) { c.Output.Format = "xml" },
		func(c *Config) { c.Reads.Count = -1 },
		func(c *Config) { c.Reads.Length = 0 },
		func(c *Config) { c.Kmers.K = 0 },
		func(c *Config) { c.Kmers.Top = -1 },
	}
	for i, mut := range bad {
		c := base
		mut(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
