// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"kmotif/internal/config"
	"kmotif/internal/log"
	"kmotif/internal/version"
	"kmotif/internal/writers"
)

const (
	exitUsage    = 2
	exitIO       = 3
	exitCanceled = 130
)

// errNoMatch signals an empty result after the output has been written.
var errNoMatch = errors.New("no match")

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error { return &exitError{code: exitUsage, err: err} }
func ioErr(err error) error    { return &exitError{code: exitIO, err: err} }

// runner carries per-invocation state; a fresh one backs every Run.
type runner struct {
	stdout, stderr io.Writer

	configPath string
	flags      config.Config // raw flag values, applied only when set
	cfg        config.Config // effective settings after setup
}

// Run executes one kmotif invocation and returns its exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	r := &runner{stdout: stdout, stderr: stderr, cfg: config.Default()}
	root := r.rootCmd()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return r.exitCode(root.ExecuteContext(ctx))
}

func (r *runner) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kmotif",
		Short: "Approximate k-mer motif finding over DNA text",
		Long: `kmotif finds frequent and clumped k-mers in DNA text, tolerating up to
d substitutions, and offers the usual small sequence utilities.

Every problem command accepts either explicit flags or --input FILE holding
the classic line-oriented problem layout.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}
	root.SetVersionTemplate("kmotif version {{.Version}}\n")
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageErr(fmt.Errorf("%w\nRun '%s --help' for usage.", err, c.CommandPath()))
	})

	d := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&r.configPath, "config", "", "YAML config `file`")
	pf.StringVarP(&r.flags.Output, "output", "o", d.Output, "output format: text | json")
	pf.IntVarP(&r.flags.Threads, "threads", "j", d.Threads, "worker goroutines (0 = all CPUs)")
	pf.BoolVarP(&r.flags.Quiet, "quiet", "q", false, "suppress warnings")
	pf.BoolVar(&r.flags.Verbose, "verbose", false, "enable debug logging")
	pf.StringVar(&r.flags.Alphabet, "alphabet", d.Alphabet, "substitution alphabet")
	pf.IntVar(&r.flags.NoMatchExitCode, "no-match-exit-code", d.NoMatchExitCode, "exit code when the result is empty")

	root.AddCommand(
		r.matchCmd(),
		r.searchCmd(),
		r.countCmd(),
		r.frequentCmd(),
		r.clumpsCmd(),
		r.compositionCmd(),
		r.revcompCmd(),
		r.transcribeCmd(),
		r.nucleotidesCmd(),
		r.gcCmd(),
		r.versionCmd(),
	)
	return root
}

// setup resolves the effective config: defaults, then --config, then any
// flag set on the command line.
func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if r.configPath != "" {
		c, err := config.Load(r.configPath)
		if err != nil {
			var pe *fs.PathError
			if errors.As(err, &pe) {
				return ioErr(err)
			}
			return usageErr(err)
		}
		cfg = c
	}
	fl := cmd.Flags()
	if fl.Changed("output") {
		cfg.Output = r.flags.Output
	}
	if fl.Changed("threads") {
		cfg.Threads = r.flags.Threads
	}
	if fl.Changed("quiet") {
		cfg.Quiet = r.flags.Quiet
	}
	if fl.Changed("verbose") {
		cfg.Verbose = r.flags.Verbose
	}
	if fl.Changed("alphabet") {
		cfg.Alphabet = r.flags.Alphabet
	}
	if fl.Changed("no-match-exit-code") {
		cfg.NoMatchExitCode = r.flags.NoMatchExitCode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.cfg = cfg

	level := log.LevelWarn
	switch {
	case cfg.Quiet:
		level = log.LevelError
	case cfg.Verbose:
		level = log.LevelDebug
	}
	log.SetLogger(log.NewWriterLogger(r.stderr, level))
	log.Debugf("%s: alphabet=%s threads=%d output=%s", cmd.Name(), cfg.Alphabet, cfg.Threads, cfg.Output)
	return nil
}

// exitCode maps an Execute error to the process exit code and reports it.
func (r *runner) exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch):
		return r.cfg.NoMatchExitCode
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		_, _ = fmt.Fprintln(r.stderr, "kmotif: cancelled")
		return exitCanceled
	case writers.IsBrokenPipe(err):
		return 0
	}
	_, _ = fmt.Fprintln(r.stderr, "kmotif:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Core parameter sentinels and cobra's own errors (unknown commands,
	// flag groups, argument counts) are usage errors.
	return exitUsage
}

// emit writes payload in the configured format. An empty result turns into
// errNoMatch when a no-match exit code is configured.
func (r *runner) emit(payload any, empty bool) error {
	if err := writers.Write(r.cfg.Output, r.stdout, payload); err != nil {
		if writers.IsBrokenPipe(err) {
			return nil
		}
		return ioErr(err)
	}
	if empty && r.cfg.NoMatchExitCode != 0 {
		return errNoMatch
	}
	return nil
}

// warnSymbols logs once when s holds symbols outside the configured alphabet.
func (r *runner) warnSymbols(what, s string) {
	a := r.cfg.Alpha()
	var in [256]bool
	for _, b := range a.Symbols {
		in[b] = true
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !in[s[i]] {
			n++
		}
	}
	if n > 0 {
		log.Warnf("%s: %d symbol(s) outside alphabet %s", what, n, a)
	}
}
