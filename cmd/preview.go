package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/random"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated problems with their answers",
	Long: `Generate problems and print each with its correct answer, difficulty and
tolerance. Nothing is scored.

Mode, level and unit restrictions come from the config file unless set by
flags, as for a game. With the same --seed and settings, preview prints the
problems that game would ask.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.String("mode", string(problemgen.ModeMixed), "Game mode: "+joinModes())
	f.String("level", string(problemgen.LevelMedium), "Arithmetic level: easy, medium, hard")
	f.Int("count", 5, "Number of problems to generate")
	f.Uint64("seed", 0, "Random seed, same as the game's --seed (default: time-based)")
	f.StringSlice("categories", nil, "Unit categories to draw from (default: all)")
	f.StringArray("units", nil, "Restrict a category's units, e.g. --units length=m,km,mi (repeatable)")
	f.Bool("json", false, "Print problems as JSON")
}

// previewItem is the JSON shape of one previewed problem.
type previewItem struct {
	Mode       problemgen.Mode `json:"mode"`
	Prompt     string          `json:"prompt"`
	Answer     string          `json:"answer"`
	Value      float64         `json:"value"`
	UnitHint   string          `json:"unit_hint,omitempty"`
	Difficulty float64         `json:"difficulty"`
	Tolerance  float64         `json:"tolerance"`
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	asJSON, _ := cmd.Flags().GetBool("json")

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	src := random.NewTimeSeeded()
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		src = random.New(seed)
	}
	gen := problemgen.New(src, problemgen.DefaultConfig())

	items := make([]previewItem, 0, count)
	for i := 0; i < count; i++ {
		p, err := gen.Generate(settings.Mode, settings.Level, settings.Units)
		if err != nil {
			return fmt.Errorf("problem %d: %w", i+1, err)
		}
		items = append(items, previewItem{
			Mode:       p.Mode,
			Prompt:     p.Prompt,
			Answer:     p.FormatValue(p.CorrectValue),
			Value:      p.CorrectValue,
			UnitHint:   p.UnitHint,
			Difficulty: p.Difficulty,
			Tolerance:  p.Tolerance,
		})
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	for i, it := range items {
		fmt.Fprintf(out, "%2d. [%s] %s\n", i+1, it.Mode, it.Prompt)
		fmt.Fprintf(out, "    answer %s  difficulty %.2f  tolerance %.3g\n", it.Answer, it.Difficulty, it.Tolerance)
	}
	return nil
}
