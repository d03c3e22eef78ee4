// Package cli wires the kmerkit command tree.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kmerkit/internal/config"
	"kmerkit/internal/logger"
	"kmerkit/internal/version"
	"kmerkit/internal/writers"
)

// state is shared by the commands of one invocation.
type state struct {
	v      *viper.Viper
	cfg    config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer

	configPath string
	noHeader   bool
	quiet      bool
	seqs       []string
}

func (s *state) writerOptions() writers.Options {
	return writers.Options{Header: s.cfg.Output.Header, Pretty: s.cfg.Output.Pretty}
}

// NewRootCmd builds a fresh command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	st := &state{v: viper.New(), stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "kmerkit",
		Short: "Reverse complements, simulated reads and k-mer counts",
		Long: `kmerkit: elementary DNA sequence utilities

Inputs are files holding one sequence per line (gzip ok, '-' for stdin),
globs, or literal sequences passed with --seq. Symbols must be upper-case
A, C, G, T or N.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return st.load(c)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("kmerkit version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageErr(err, c.UsageString())
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "", "config file (default ./kmerkit.yaml if present)")
	pf.StringP("output", "o", config.FormatText, "output: text | json | jsonl | yaml")
	pf.Bool("pretty", false, "styled table instead of TSV (text, kmers)")
	pf.BoolVar(&st.noHeader, "no-header", false, "suppress header line in text output")
	pf.String("log-level", "warn", "log level: debug | info | warn | error")
	pf.Bool("log-json", false, "log as JSON lines")
	pf.BoolVarP(&st.quiet, "quiet", "q", false, "suppress non-essential warnings")
	pf.StringArrayVar(&st.seqs, "seq", nil, "literal input sequence (repeatable)")

	mustBind(st.v, "output.format", pf.Lookup("output"))
	mustBind(st.v, "output.pretty", pf.Lookup("pretty"))
	mustBind(st.v, "log.level", pf.Lookup("log-level"))
	mustBind(st.v, "log.json", pf.Lookup("log-json"))

	cmd.AddCommand(
		newRevCompCmd(st),
		newReadsCmd(st),
		newKmersCmd(st),
		newVersionCmd(),
	)
	return cmd
}

// load resolves configuration and installs the logger before any command runs.
func (s *state) load(c *cobra.Command) error {
	cfg, err := config.Load(s.v, s.configPath)
	if err != nil {
		return usageErr(err, "")
	}
	if c.Flags().Changed("no-header") {
		cfg.Output.Header = !s.noHeader
	}
	level := cfg.Log.Level
	if s.quiet {
		level = "error"
	}
	l, err := logger.Setup(logger.Config{Level: level, JSON: cfg.Log.JSON, Out: s.stderr})
	if err != nil {
		return usageErr(err, "")
	}
	s.cfg = cfg
	s.log = l
	l.Debug("config.loaded", "file", s.v.ConfigFileUsed(), "format", cfg.Output.Format)
	return nil
}

func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic("cli: bind " + key + ": " + err.Error())
	}
}
