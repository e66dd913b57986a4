package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopak/minigrep/internal/assets"
	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/grep"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/ui/console"
	"github.com/spf13/cobra"
)

var cfgFile string
var verbose bool
var caseInsensitive bool
var lineNumbers bool
var format string
var interactive bool
var version = "dev"

var settings config.Settings

var rootCmd = newRootCmd()

func Execute() error { return rootCmd.Execute() }

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep [flags] [--] <query> <file-path> [--case-insensitive|-i]",
		Short: "Print the lines of a file that contain a query",
		Args:  cobra.ArbitraryArgs,

		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version,
		PersistentPreRunE: loadSettings,
		RunE:              runSearch,
	}
	// Flags are only read before the query; anything after it is positional
	// and the builder decides the mode from it.
	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w (put -- before a query that starts with '-')", err)
	})
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the settings directory (default dir: ~/.config/minigrep); all *.yaml in that directory are merged")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show diagnostic log on stderr")
	cmd.Flags().BoolVarP(&caseInsensitive, "case-insensitive", "i", false, "ignore case when matching")
	cmd.Flags().BoolVarP(&lineNumbers, "line-number", "n", false, "prefix each line with its line number")
	cmd.Flags().StringVar(&format, "format", config.FormatPlain, "output format: plain or table")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for a missing query or file path")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	if interactive && len(args) < 2 {
		var err error
		if args, err = console.AskMissing(args); err != nil {
			return err
		}
	}
	raw := append([]string{cmd.Root().Name()}, args...)
	cfg, err := config.NewBuilder().WithArgs(raw).WithCaseInsensitive(caseInsensitive).Build()
	if err != nil {
		return err
	}
	ui := console.NewConsoleUI(cmd.OutOrStdout(), settings)
	return grep.New(cfg).Run(ui)
}

func loadSettings(cmd *cobra.Command, args []string) error {
	var files []string
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		fs, err := config.FilesInDir(filepath.Dir(cfgFile))
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		files = fs
	} else if dir, err := os.UserConfigDir(); err == nil {
		fs, err := config.FilesInDir(filepath.Join(dir, "minigrep"))
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		files = fs
	}
	s, err := config.LoadDefaultsAndFiles(assets.DefaultSettings, files)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if cmd.Flags().Changed("format") {
		s.OverrideFormat(format)
	}
	if cmd.Flags().Changed("line-number") {
		s.OverrideLineNumbers(lineNumbers)
	}
	if err := config.ValidateAgainstSchema(s); err != nil {
		return fmt.Errorf("schema error: %w", err)
	}
	settings = s
	logging.Init(s.Log.Level)
	logging.SetVerbose(verbose)
	logging.Info(fmt.Sprintf("settings loaded from %d file(s): format=%s line_numbers=%t", len(files), s.Output.Format, s.Output.LineNumbers))
	return nil
}
