// Package main provides the substrseq CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/richinex/substrseq/cli"
	"github.com/richinex/substrseq/config"
	"github.com/richinex/substrseq/storage"
	"github.com/richinex/substrseq/substr"
)

// rootFlags holds the persistent flags shared by all commands.
type rootFlags struct {
	mode    string
	dbPath  string
	verbose bool
}

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "substrseq",
		Short: "K-th character of the sorted distinct-substring sequence",
		Long: `Find the K-th character of the concatenation of all distinct substrings
of a word, taken in lexicographic order, without building the sequence.

Block modes:
- distinct: block lengths count each distinct substring once (default)
- closed-form: block lengths count every start position; overstates blocks
  of words with repeated substrings`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.mode, "mode", "", "Block mode (distinct, closed-form); overrides SUBSEQ_BLOCK_MODE")
	rootCmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite answer cache path; overrides SUBSEQ_DB_PATH")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show debug logging")

	rootCmd.AddCommand(solveCmd(flags))
	rootCmd.AddCommand(queryCmd(flags))
	rootCmd.AddCommand(verifyCmd(flags))
	rootCmd.AddCommand(historyCmd(flags))

	return rootCmd
}

// session bundles the resolved settings for one command invocation.
type session struct {
	settings config.Settings
	opts     cli.Options
	store    *storage.SqliteStorage
}

func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
}

// openSession merges environment settings with flags and opens the answer
// cache when a database path is configured.
func openSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	settings, err := config.New()
	if err != nil {
		return nil, err
	}
	if flags.mode != "" {
		mode, err := substr.ParseBlockMode(flags.mode)
		if err != nil {
			return nil, err
		}
		settings.Solver.Mode = mode
	}
	if flags.dbPath != "" {
		settings.Storage.DBPath = flags.dbPath
	}

	level := settings.Output.LogLevel
	if flags.verbose {
		level = slog.LevelDebug
	}

	s := &session{settings: settings}
	s.opts = cli.Options{
		Mode:       settings.Solver.Mode,
		Format:     settings.Output.Format,
		MaxWordLen: settings.Solver.MaxWordLen,
		Logger:     cli.NewLogger(cmd.ErrOrStderr(), level),
	}

	if settings.Storage.DBPath != "" {
		store, err := storage.OpenSqlite(settings.Storage.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		s.store = store
		s.opts.Store = store
	}
	return s, nil
}

func solveCmd(flags *rootFlags) *cobra.Command {
	var inputPath string
	var outputPath string
	var format string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Answer a batch of queries",
		Long: `Read a query count T followed by T (word, K) pairs and print one result
per query. Failed queries print "error: <kind>" in place; the command exits
non-zero if any query failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.Close()

			if format != "" {
				f, err := config.ParseFormat(format)
				if err != nil {
					return err
				}
				s.opts.Format = f
			}

			var in io.Reader = cmd.InOrStdin()
			if inputPath != "" && inputPath != "-" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			var out io.Writer = cmd.OutOrStdout()
			if outputPath != "" && outputPath != "-" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			queries, err := cli.ReadQueries(in, s.opts.MaxWordLen)
			if err != nil {
				return err
			}

			summary, err := cli.NewRunner(s.opts).RunBatch(contextOf(cmd), queries, out)
			if err != nil {
				return err
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d queries failed", summary.Failed, summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file (default stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json); overrides SUBSEQ_OUTPUT")
	return cmd
}

func queryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [word] [k]",
		Short: "Answer a single query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid k %q: %w", args[1], err)
			}

			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.Close()

			res := cli.NewRunner(s.opts).Solve(contextOf(cmd), cli.Query{Word: args[0], K: k})
			if res.Err != nil {
				return res.Err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%c\n", res.Char)
			return nil
		},
	}
	return cmd
}

func verifyCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [word]",
		Short: "Compare the solver with brute force for every K",
		Long: fmt.Sprintf(`Compare the solver with a brute-force enumeration of the sequence for
every K and report disagreements. Words are limited to %d bytes.`, cli.MaxVerifyWordLen),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := substr.Distinct
			if flags.mode != "" {
				m, err := substr.ParseBlockMode(flags.mode)
				if err != nil {
					return err
				}
				mode = m
			}

			divs, err := cli.Verify(args[0], mode)
			if err != nil {
				return err
			}
			cli.PrintDivergences(cmd.OutOrStdout(), args[0], mode, divs)
			if len(divs) > 0 {
				return fmt.Errorf("%d divergences", len(divs))
			}
			return nil
		},
	}
	return cmd
}

func historyCmd(flags *rootFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded batch runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.Close()

			if s.store == nil {
				return fmt.Errorf("no database configured: set --db or %s", config.EnvDBPath)
			}
			return cli.PrintHistory(contextOf(cmd), s.store, cmd.OutOrStdout(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
