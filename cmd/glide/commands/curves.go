package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/phanxgames/glide"
	"github.com/spf13/cobra"
)

type curveSamples struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values,omitempty"`
}

func newCurvesCommand() *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "curves [name...]",
		Short: "List easing curves",
		Long: `List the named easing curves. With --samples, evaluate each curve at
evenly spaced points from 0 to 1. Names may also be CSS functions such as
"cubic-bezier(0.1, 0.7, 1, 0.1)" or "steps(4, start)".`,
		Example: `  glide curves
  glide curves --samples 5 ease outBounce`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = glide.CurveNames()
			}
			if samples < 0 || samples == 1 {
				return fmt.Errorf("samples must be 0 or at least 2, got %d", samples)
			}

			out := make([]curveSamples, 0, len(names))
			for _, name := range names {
				c, err := glide.ParseCurve(name)
				if err != nil {
					return err
				}
				cs := curveSamples{Name: name}
				for i := 0; i < samples; i++ {
					cs.Values = append(cs.Values, c.Solve(float64(i)/float64(samples-1)))
				}
				out = append(out, cs)
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return writeCurves(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "number of evenly spaced samples per curve")
	return cmd
}

func writeCurves(w io.Writer, curves []curveSamples) error {
	for _, c := range curves {
		if len(c.Values) == 0 {
			if _, err := fmt.Fprintln(w, c.Name); err != nil {
				return err
			}
			continue
		}
		vals := make([]string, len(c.Values))
		for i, v := range c.Values {
			vals[i] = fmt.Sprintf("%.3f", v)
		}
		if _, err := fmt.Fprintf(w, "%-14s %s\n", c.Name, strings.Join(vals, " ")); err != nil {
			return err
		}
	}
	return nil
}
