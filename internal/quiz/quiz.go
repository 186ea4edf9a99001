// Package quiz runs a game over plain line-based input and output, for
// terminals without full-screen support and for scripted play.
package quiz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/abhisek/quickmaths/internal/convert"
	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

const (
	banner = "QuickMaths — Mental Math Challenge"
	width  = 60
)

// Options are the dependencies of a line-based game.
type Options struct {
	In        io.Reader
	Out       io.Writer
	Generator *problemgen.Generator
	Session   *session.Session
	Units     problemgen.UnitConfig
	Logger    hclog.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Quiz plays one session, one problem per input line.
type Quiz struct {
	in    *bufio.Scanner
	out   io.Writer
	gen   *problemgen.Generator
	sess  *session.Session
	units problemgen.UnitConfig
	log   hclog.Logger
	clock func() time.Time
}

// New validates opts and creates a Quiz.
func New(opts Options) (*Quiz, error) {
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("quiz: input and output are required")
	}
	if opts.Generator == nil || opts.Session == nil {
		return nil, errors.New("quiz: generator and session are required")
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Quiz{
		in:    bufio.NewScanner(opts.In),
		out:   opts.Out,
		gen:   opts.Generator,
		sess:  opts.Session,
		units: opts.Units,
		log:   opts.Logger.Named("quiz"),
		clock: opts.Clock,
	}, nil
}

// Run plays every remaining round. Running out of input ends the game early
// with the rounds played so far; the summary is printed either way.
func (q *Quiz) Run(ctx context.Context) error {
	q.printIntro()

	var runErr error
	for !q.sess.Done() {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		ok, err := q.playRound()
		if err != nil {
			runErr = err
			break
		}
		if !ok {
			fmt.Fprintln(q.out)
			fmt.Fprintln(q.out, theme.Hint.Render("Input closed. Ending the game."))
			break
		}
	}

	q.printSummary()
	q.log.Info("game over",
		"session", q.sess.ID,
		"rounds", q.sess.Round,
		"total", q.sess.TotalScore,
		"max", q.sess.MaxScore())
	return runErr
}

// playRound asks one problem. It returns false when input is exhausted.
func (q *Quiz) playRound() (bool, error) {
	p, err := q.gen.Generate(q.sess.Mode, q.sess.Level, q.units)
	if err != nil {
		return false, fmt.Errorf("generate problem: %w", err)
	}
	q.log.Debug("problem generated",
		"session", q.sess.ID,
		"round", q.sess.CurrentRound(),
		"mode", p.Mode,
		"prompt", p.Prompt,
		"difficulty", p.Difficulty,
		"tolerance", p.Tolerance)

	fmt.Fprintf(q.out, "[%d/%d] %s\n", q.sess.CurrentRound(), q.sess.TotalRounds, theme.Prompt.Render(p.Prompt))
	fmt.Fprintln(q.out, theme.Hint.Render(p.AnswerHint()))
	fmt.Fprint(q.out, "> ")

	start := q.clock()
	if !q.in.Scan() {
		if err := q.in.Err(); err != nil {
			return false, fmt.Errorf("read answer: %w", err)
		}
		return false, nil
	}
	r := session.Grade(p, q.in.Text(), q.clock().Sub(start))
	if err := q.sess.Record(r); err != nil {
		return false, err
	}
	q.log.Debug("answer graded",
		"session", q.sess.ID,
		"answer", r.Answer,
		"abs_error", r.ErrorDisplay(),
		"score", r.Score,
		"time_s", r.TimeS)

	switch {
	case r.Skipped:
		fmt.Fprintln(q.out, theme.Hint.Render("Skipped. Counting as incorrect."))
	case !r.Parsed():
		fmt.Fprintln(q.out, theme.Hint.Render("Could not parse answer. Counting as incorrect."))
	}
	fmt.Fprintln(q.out, r.CorrectLine())
	fmt.Fprintln(q.out, theme.ScoreStyle(r.Score).Render(r.ScoreLine()))
	fmt.Fprintln(q.out, theme.Rule.Render(strings.Repeat("-", width)))
	return true, nil
}

func (q *Quiz) printIntro() {
	rule := strings.Repeat("=", width)
	fmt.Fprintln(q.out, rule)
	fmt.Fprintln(q.out, theme.Title.Render(banner))
	fmt.Fprintln(q.out, "Multiple modes. Accuracy + Speed scoring.")
	fmt.Fprintln(q.out, rule)
	fmt.Fprintln(q.out)

	switch q.sess.Mode {
	case problemgen.ModeUnit:
		fmt.Fprintln(q.out, "Units: "+convert.UnitList())
	case problemgen.ModeTimezone:
		fmt.Fprintln(q.out, "Timezones used (no DST): "+convert.ZoneList())
	case problemgen.ModeMixed:
		fmt.Fprintln(q.out, "Mixed mode combines arithmetic, unit conversion, and timezone questions.")
		fmt.Fprintln(q.out, "Timezones used (no DST): "+convert.ZoneList())
	case problemgen.ModeArithmetic:
		fmt.Fprintf(q.out, "Arithmetic, %s level.\n", q.sess.Level)
	}
	fmt.Fprintln(q.out)
	fmt.Fprintln(q.out, theme.Hint.Render(
		"Scoring note: simple problems demand higher accuracy and reward speed more. "+
			"Hard ones allow more tolerance and de-emphasize speed."))
	fmt.Fprintln(q.out, theme.Hint.Render("Press Enter on an empty line to skip."))
	fmt.Fprintln(q.out)
}

func (q *Quiz) printSummary() {
	sum := q.sess.Summary()
	fmt.Fprintln(q.out, theme.Title.Render("Final Results"))
	fmt.Fprintln(q.out, strings.Repeat("=", width))
	fmt.Fprintf(q.out, "Total score: %d out of %d\n", sum.TotalScore, sum.MaxScore)
	if sum.Answered > 0 {
		fmt.Fprintf(q.out, "Answered %d/%d · mean %.1f · %d within tolerance · %.2fs per answer\n",
			sum.Answered, sum.Rounds, sum.MeanScore, sum.Perfect, sum.MeanTimeS)
	}
	fmt.Fprintln(q.out, "Thanks for playing QuickMaths!")
}
