package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/logging"
	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/quiz"
	"github.com/abhisek/quickmaths/internal/random"
	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/tui"
)

// runApp resolves settings, builds the engine and plays a game in the chosen
// front end.
func runApp(cmd *cobra.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("level") && settings.Mode != problemgen.ModeArithmetic && settings.Mode != problemgen.ModeMixed {
		warn("Note: --level only affects arithmetic questions; ignored in", settings.Mode, "mode.")
	}
	sess, err := session.NewSession(settings.Mode, settings.Level, settings.Rounds)
	if err != nil {
		return err
	}

	src := random.NewTimeSeeded()
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		src = random.New(seed)
	}
	gen := problemgen.New(src, problemgen.DefaultConfig())

	log.Debug("starting game",
		"session", sess.ID,
		"mode", sess.Mode,
		"level", sess.Level,
		"rounds", sess.TotalRounds,
		"categories", fmt.Sprint(settings.Units.Categories()))

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		q, err := quiz.New(quiz.Options{
			In:        cmd.InOrStdin(),
			Out:       colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ()),
			Generator: gen,
			Session:   sess,
			Units:     settings.Units,
			Logger:    log,
		})
		if err != nil {
			return err
		}
		return q.Run(cmd.Context())
	}

	final, err := tui.Run(tui.Options{
		Generator: gen,
		Session:   sess,
		Units:     settings.Units,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Total score: %d out of %d\n", final.TotalScore, final.MaxScore())
	return nil
}

func newLogger(cmd *cobra.Command) (hclog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	log, err := logging.New(level, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return log, nil
}
