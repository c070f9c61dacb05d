// Command i18nlint checks locale dictionaries and source files.
//
// Usage:
//
//	i18nlint keys [--base zh-CN.ts] [--target en-US.ts] [--fail]
//	i18nlint scan [--root app/src] [--verbose]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lifei6671/i18nlint/cmd/i18nlint/checker"
	"github.com/lifei6671/i18nlint/cmd/i18nlint/config"
	"github.com/lifei6671/i18nlint/cmd/i18nlint/scanner"
	"github.com/lifei6671/i18nlint/internal/logger"
)

// errIssues makes `keys --fail` exit non-zero after the report is printed.
var errIssues = errors.New("dictionary issues found")

type app struct {
	loader     *config.Loader
	configFile string
	cfg        *config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	os.Exit(exitCode(err, os.Stderr))
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, scanner.ErrFindings), errors.Is(err, errIssues):
		// the report already says everything
		return 1
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
}

func newRootCmd() *cobra.Command {
	a := &app{loader: config.NewLoader()}

	root := &cobra.Command{
		Use:   "i18nlint",
		Short: "Locale dictionary and hardcoded text checks",
		Long: `i18nlint compares two locale dictionaries for missing keys and
untranslated values, and scans source files for hardcoded text that
should go through the i18n dictionary.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default "+config.DefaultFileName+" if present)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "log format: console or json")
	a.mustBind("log.level", root.PersistentFlags().Lookup("log-level"))
	a.mustBind("log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(a.newKeysCmd(), a.newScanCmd())
	return root
}

// mustBind panics on a programming error: the flag is defined right above.
func (a *app) mustBind(key string, flag *pflag.Flag) {
	if err := a.loader.BindFlag(key, flag); err != nil {
		panic(err)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loader.Load(a.configFile)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	if used := a.loader.ConfigFileUsed(); used != "" {
		logger.L().Debug("loaded config", zap.String("file", used))
	}
	a.cfg = cfg
	return nil
}

func (a *app) newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Compare two locale dictionaries",
		Long: `Compare the base and target dictionaries and report keys missing on
either side, values that are empty or equal to their own key, {param}
mismatches and template syntax errors.

Dictionaries may be TypeScript/JavaScript files exporting one object
literal, YAML files or JSON files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := checker.Run(cmd.Context(), a.cfg.Keys, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if res != nil && a.cfg.Keys.Fail && res.HasIssues() {
				return errIssues
			}
			return nil
		},
	}
	cmd.Flags().String("base", "", "base dictionary file")
	cmd.Flags().String("target", "", "target dictionary file")
	cmd.Flags().Bool("fail", false, "exit with code 1 if any issue found")
	a.mustBind("keys.base.path", cmd.Flags().Lookup("base"))
	a.mustBind("keys.target.path", cmd.Flags().Lookup("target"))
	a.mustBind("keys.fail", cmd.Flags().Lookup("fail"))
	return cmd
}

func (a *app) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find hardcoded non-Latin text in source files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := scanner.Scan(cmd.Context(), a.cfg.Scan)
			if err != nil {
				return err
			}
			scanner.WriteReport(cmd.OutOrStdout(), report, a.cfg.Scan.Verbose)
			if report.Total() > 0 {
				return scanner.ErrFindings
			}
			return nil
		},
	}
	cmd.Flags().String("root", "", "directory to scan")
	cmd.Flags().BoolP("verbose", "v", false, "list matched substrings")
	a.mustBind("scan.root", cmd.Flags().Lookup("root"))
	a.mustBind("scan.verbose", cmd.Flags().Lookup("verbose"))
	return cmd
}
