// Recipe Book: a single-user recipe manager with ingredient cost totals.
//
// Usage:
//
//	recipebook [--store file|sqlite|memory] [--data DIR] [--verbose] [--quiet]
//	recipebook list | show N | add --name NAME [--ingredient "name|amount|unit|price"]... | export [--to yaml]
package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/spf13/cobra"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/engine"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/recipe"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/storage"
)

func main() {
	root, state := newRootCmd()
	err := root.Execute()
	state.Close()
	if err != nil {
		os.Exit(1)
	}
}

// deps is everything a command needs, built from the resolved config.
type deps struct {
	cfg   config
	log   *logger.Logger
	store *recipe.Store
	book  *engine.Book
	close func()
}

// rootState carries the wired dependencies from the pre-run hook to the
// command that runs, and releases them afterwards.
type rootState struct {
	d *deps
}

func (s *rootState) deps() *deps { return s.d }

// Close releases the store and log file. Safe to call more than once.
func (s *rootState) Close() {
	if s.d != nil {
		s.d.close()
		s.d = nil
	}
}

func newRootCmd() (*cobra.Command, *rootState) {
	var flagCfg config
	state := &rootState{}

	cmd := &cobra.Command{
		Use:          "recipebook",
		Short:        "Recipe Book: keep recipes and what their ingredients cost",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg := applyFlags(loadEnv(defaultConfig()), c.Flags(), flagCfg)
			built, err := setup(c.Context(), cfg)
			if err != nil {
				return err
			}
			state.d = built
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return runInteractive(c.Context(), state.deps())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flagCfg.Store, "store", "", "slot backend: file, sqlite or memory (env "+EnvStore+")")
	pf.StringVar(&flagCfg.Data, "data", "", "directory holding the recipe data (env "+EnvData+")")
	pf.StringVar(&flagCfg.Format, "format", "", "storage format: json or yaml (env "+EnvFormat+")")
	pf.StringVar(&flagCfg.Currency, "currency", "", "ISO currency code for prices (env "+EnvCurrency+")")
	pf.StringVar(&flagCfg.LogFile, "log-file", "", "file to write logs to, or \"stderr\" (env "+EnvLogFile+")")
	pf.BoolVar(&flagCfg.Verbose, "verbose", false, "enable verbose/debug logging")
	pf.BoolVar(&flagCfg.Quiet, "quiet", false, "disable all logging")

	cmd.AddCommand(
		newListCmd(state.deps),
		newShowCmd(state.deps),
		newAddCmd(state.deps),
		newExportCmd(state.deps),
	)
	return cmd, state
}

// setup wires logger, slot, store and book, and opens the book.
func setup(ctx context.Context, cfg config) (*deps, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logLevel := logger.LevelNormal
	if cfg.Verbose {
		logLevel = logger.LevelVerbose
	}
	if cfg.Quiet {
		logLevel = logger.LevelOff
	}

	// Logs go to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	closeLog := func() error { return nil }
	if logLevel != logger.LevelOff {
		w, closeFn, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (falling back to stderr)\n", err)
		}
		logOut, closeLog = w, closeFn
	}

	// Third-party libraries using the standard log package write to the
	// same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	codec, err := recipe.CodecFor(cfg.Format)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	slot, slotCloser, err := storage.Open(cfg.Store, cfg.Data, codec.Name(), log)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store, err)
	}

	store := recipe.NewStore(slot, log, recipe.WithCodec(codec))
	book := engine.New(store, log)
	if err := book.Open(ctx); err != nil {
		_ = slotCloser.Close()
		_ = closeLog()
		return nil, err
	}
	log.Debug("using %s store at %s (%s, %s)", cfg.Store, cfg.Data, codec.Name(), cfg.Currency)

	return &deps{
		cfg:   cfg,
		log:   log,
		store: store,
		book:  book,
		close: func() {
			if err := slotCloser.Close(); err != nil {
				log.Error("closing store: %v", err)
			}
			_ = closeLog()
		},
	}, nil
}
