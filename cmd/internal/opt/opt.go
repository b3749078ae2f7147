package opt

import (
	"flag"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bkktimber/AIND-Isolation/ai"
)

// Agent holds the flags shared by every command that constructs a
// search agent.
type Agent struct {
	Eval    string
	Timeout time.Duration
	Debug   int
}

func (o *Agent) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.Eval, "eval", "diff", "evaluation function: diff, ratio, logratio")
	flags.DurationVar(&o.Timeout, "timeout", 10*time.Millisecond, "margin to leave on the clock when aborting search")
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
}

func (o *Agent) Evaluator() (ai.EvaluationFunc, error) {
	switch o.Eval {
	case "diff":
		return ai.MoveDifference, nil
	case "ratio":
		return ai.MoveRatio, nil
	case "logratio":
		return ai.LogMoveRatio, nil
	}
	return nil, errors.Errorf("unknown evaluation function: %q", o.Eval)
}

// BuildPlayer constructs a search agent from a spec string:
// "alphabeta", "minimax", "minimax:DEPTH", or "random[:SEED]".
func (o *Agent) BuildPlayer(spec string) (ai.Player, error) {
	eval, err := o.Evaluator()
	if err != nil {
		return nil, err
	}
	switch {
	case spec == "alphabeta":
		return ai.NewAlphaBeta(ai.AlphaBetaConfig{
			Timeout:  o.Timeout,
			Debug:    o.Debug,
			Evaluate: eval,
		}), nil
	case spec == "minimax" || strings.HasPrefix(spec, "minimax:"):
		var depth int
		if i := strings.IndexRune(spec, ':'); i > 0 {
			depth, err = strconv.Atoi(spec[i+1:])
			if err != nil || depth < 1 {
				return nil, errors.Errorf("bad minimax depth: %q", spec)
			}
		}
		return ai.NewMinimax(ai.MinimaxConfig{
			Depth:    depth,
			Timeout:  o.Timeout,
			Debug:    o.Debug,
			Evaluate: eval,
		}), nil
	case spec == "random" || strings.HasPrefix(spec, "random:"):
		seed := time.Now().UnixNano()
		if i := strings.IndexRune(spec, ':'); i > 0 {
			seed, err = strconv.ParseInt(spec[i+1:], 10, 64)
			if err != nil {
				return nil, errors.Errorf("bad random seed: %q", spec)
			}
		}
		return ai.NewRandom(seed), nil
	}
	return nil, errors.Errorf("unknown player: %q", spec)
}
