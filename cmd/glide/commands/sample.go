package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/phanxgames/glide"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// retarget changes the simulated property's target at a point in time.
type retarget struct {
	At    float64 `json:"at"`
	Value float64 `json:"value"`
}

// sample is one row of simulation output.
type sample struct {
	Time     float64 `json:"time"`
	Value    float64 `json:"value"`
	Target   float64 `json:"target"`
	Phase    string  `json:"phase"`
	Progress float64 `json:"progress"`
	Factor   float64 `json:"factor"`
}

func newSampleCommand() *cobra.Command {
	var (
		transition string
		from       float64
		to         float64
		step       float64
		until      float64
		retargets  []string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample a transitioning value over time",
		Long: `Simulate one numeric property on a fixed-step clock and print its value
at every step.

Retargets change the target mid-flight, which exercises the reversal and
restart rules. Each --retarget takes TIME=VALUE in seconds.`,
		Example: `  # Linear 0 -> 10 over one second
  glide sample --transition "1s linear" --to 10

  # Reverse a quarter of the way through
  glide sample --transition "1s linear" --to 10 --retarget 0.25=0 --step 0.125`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := glide.ParseTransition(transition)
			if err != nil {
				return err
			}
			if step <= 0 {
				return fmt.Errorf("step must be positive, got %g", step)
			}
			rts, err := parseRetargets(retargets)
			if err != nil {
				return err
			}

			log.Debug().
				Str("transition", transition).
				Float64("from", from).
				Float64("to", to).
				Int("retargets", len(rts)).
				Msg("Simulating transition")

			rows := simulate(data, from, to, step, until, rts)
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			return writeSamples(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVarP(&transition, "transition", "t", "1s ease", "transition shorthand: duration [curve] [delay]")
	cmd.Flags().Float64Var(&from, "from", 0, "starting value")
	cmd.Flags().Float64Var(&to, "to", 1, "target value")
	cmd.Flags().Float64Var(&step, "step", 0.05, "seconds between samples")
	cmd.Flags().Float64Var(&until, "until", 0, "last sample time in seconds (0 = until settled)")
	cmd.Flags().StringArrayVarP(&retargets, "retarget", "r", nil, "TIME=VALUE target change, repeatable")

	return cmd
}

func parseRetargets(flags []string) ([]retarget, error) {
	rts := make([]retarget, 0, len(flags))
	for _, f := range flags {
		at, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("retarget %q: want TIME=VALUE", f)
		}
		t, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(at), "s"), 64)
		if err != nil {
			return nil, fmt.Errorf("retarget %q: bad time: %w", f, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("retarget %q: bad value: %w", f, err)
		}
		rts = append(rts, retarget{At: t, Value: v})
	}
	sort.SliceStable(rts, func(i, j int) bool { return rts[i].At < rts[j].At })
	return rts, nil
}

// simulate drives a single property on a manual clock, sampling every step
// seconds from 0 through until.
func simulate(data *glide.TransitionData, from, to, step, until float64, rts []retarget) []sample {
	if until <= 0 {
		last := 0.0
		if len(rts) > 0 {
			last = rts[len(rts)-1].At
		}
		until = last + math.Max(data.Delay(), 0) + data.Duration()
	}

	value := from
	prop := glide.NewNumber("value", glide.Field(&value))
	clock := glide.NewManualClock(0)
	prop.SetClock(clock)
	prop.SetTarget(to, data)

	var rows []sample
	next := 0
	for i := 0; ; i++ {
		now := float64(i) * step
		if now > until+step/2 {
			break
		}
		clock.Set(now)
		// Bring the value up to now first so a retarget starts from it.
		prop.Update()
		for next < len(rts) && rts[next].At <= now+1e-9 {
			log.Debug().Float64("at", now).Float64("value", rts[next].Value).Msg("Retarget")
			prop.SetTarget(rts[next].Value, data)
			prop.Update()
			next++
		}
		rows = append(rows, describeSample(prop, now))
	}
	return rows
}

func describeSample(prop *glide.Property[float64], now float64) sample {
	s := sample{Time: now, Value: prop.Value(), Target: prop.Target(), Phase: "idle", Progress: 1, Factor: 1}
	tr := prop.Transition()
	if tr == nil {
		return s
	}
	s.Progress = tr.Progress(now)
	s.Factor = tr.ShortFactor()
	switch {
	case tr.Finished(now):
		s.Phase = "done"
	case now < tr.StartTime():
		s.Phase = "delay"
	default:
		s.Phase = "running"
	}
	return s
}

func writeSamples(w io.Writer, rows []sample) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tVALUE\tTARGET\tPHASE\tPROGRESS\tFACTOR")
	for _, r := range rows {
		fmt.Fprintf(tw, "%.3f\t%.4f\t%g\t%s\t%.3f\t%.3f\n",
			r.Time, r.Value, r.Target, r.Phase, r.Progress, r.Factor)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
