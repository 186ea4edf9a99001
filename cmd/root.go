package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/config"
	"github.com/abhisek/quickmaths/internal/logging"
	"github.com/abhisek/quickmaths/internal/problemgen"
)

var rootCmd = &cobra.Command{
	Use:   "quickmaths",
	Short: "Mental math challenge in the terminal",
	Long: `QuickMaths: timed mental-math rounds of arithmetic, unit conversion and
timezone questions. Each answer is scored from 0 to 100 by how close it is,
how fast it came, and how hard the problem was.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (overrides "+config.EnvConfigPath+" env var)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultLevel, "Diagnostic log level: trace, debug, info, warn, error, off")

	f := rootCmd.Flags()
	f.String("mode", string(problemgen.ModeMixed), "Game mode: "+joinModes())
	f.String("level", string(problemgen.LevelMedium), "Arithmetic level: easy, medium, hard")
	f.Int("rounds", 10, "Number of rounds (1-100)")
	f.Uint64("seed", 0, "Random seed for a reproducible game (default: time-based)")
	f.StringSlice("categories", nil, "Unit categories to draw from (default: all)")
	f.StringArray("units", nil, "Restrict a category's units, e.g. --units length=m,km,mi (repeatable)")
	f.Bool("plain", false, "Line-based quiz instead of the full-screen interface")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveSettings layers defaults, the config file and explicitly set flags,
// in increasing priority.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	explicit, _ := cmd.Flags().GetString("config")
	path := config.ResolvePath(explicit)

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load config %s: %w", path, err)
	}
	s, err := fileCfg.Apply(config.DefaultSettings())
	if err != nil {
		return config.Settings{}, fmt.Errorf("config %s: %w", path, err)
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		v, _ := flags.GetString("mode")
		if s.Mode, err = problemgen.ParseMode(v); err != nil {
			return s, fmt.Errorf("--mode: %w", err)
		}
	}
	if flags.Changed("level") {
		v, _ := flags.GetString("level")
		if s.Level, err = problemgen.ParseLevel(v); err != nil {
			return s, fmt.Errorf("--level: %w", err)
		}
	}
	if flags.Changed("rounds") {
		s.Rounds, _ = flags.GetInt("rounds")
	}
	if flags.Changed("categories") {
		names, _ := flags.GetStringSlice("categories")
		enabled, err := config.ParseCategories(names)
		if err != nil {
			return s, fmt.Errorf("--categories: %w", err)
		}
		s.Units.EnabledCategories = enabled
	}
	if flags.Changed("units") {
		entries, _ := flags.GetStringArray("units")
		for _, entry := range entries {
			cat, list, ok := strings.Cut(entry, "=")
			if !ok {
				return s, fmt.Errorf("--units %q: want category=unit,unit", entry)
			}
			if err := config.SetAllowedUnits(&s.Units, cat, strings.Split(list, ",")); err != nil {
				return s, fmt.Errorf("--units %q: %w", entry, err)
			}
		}
	}
	return s, nil
}

func joinModes() string {
	names := make([]string, 0, len(problemgen.Modes()))
	for _, m := range problemgen.Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func warn(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
}
