package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer from its error, tolerance, difficulty and time",
	Long: `Compute the 0-100 score of a single answer without playing a game.

Use --error inf for an answer that could not be parsed.`,
	Example: `  quickmaths score --error 0 --tolerance 0.598 --difficulty 1.2 --time 2`,
	Args:    cobra.NoArgs,
	RunE:    runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.Float64("error", 0, "Absolute error of the answer (inf if unparseable)")
	f.Float64("tolerance", 0, "Tolerance of the problem (required)")
	f.Float64("difficulty", 0, "Difficulty of the problem (required)")
	f.Float64("time", 0, "Response time in seconds")
	f.Bool("json", false, "Print the result as JSON")
	_ = scoreCmd.MarkFlagRequired("tolerance")
	_ = scoreCmd.MarkFlagRequired("difficulty")
}

func runScore(cmd *cobra.Command, args []string) error {
	absErr, _ := cmd.Flags().GetFloat64("error")
	tolerance, _ := cmd.Flags().GetFloat64("tolerance")
	difficulty, _ := cmd.Flags().GetFloat64("difficulty")
	elapsed, _ := cmd.Flags().GetFloat64("time")
	asJSON, _ := cmd.Flags().GetBool("json")

	if tolerance <= 0 {
		return fmt.Errorf("--tolerance must be positive, got %v", tolerance)
	}
	if difficulty <= 0 {
		return fmt.Errorf("--difficulty must be positive, got %v", difficulty)
	}
	if absErr < 0 {
		return fmt.Errorf("--error must not be negative, got %v", absErr)
	}

	r := scoring.Score(absErr, tolerance, difficulty, elapsed)
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	b := r.Breakdown
	fmt.Fprintf(out, "Score: %d\n", r.Score)
	fmt.Fprintf(out, "  accuracy factor  %.4f  (weight %.4f)\n", b.AccuracyFactor, b.WAcc)
	fmt.Fprintf(out, "  speed factor     %.4f  (weight %.4f, damped x%.4f)\n", b.SpeedFactor, b.WSpeed, b.SpdAccWeight)
	fmt.Fprintf(out, "  tolerance %.3g, time %.2fs\n", b.Tolerance, b.TimeS)
	return nil
}
