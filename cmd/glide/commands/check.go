package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/phanxgames/glide"
	"github.com/phanxgames/glide/sheet"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type checkedEntry struct {
	State     string  `json:"state"`
	Property  string  `json:"property"`
	Kind      string  `json:"kind"`
	Value     string  `json:"value"`
	Duration  float64 `json:"duration"`
	Delay     float64 `json:"delay"`
	Inherited bool    `json:"inherited"`
}

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <sheet.yaml>",
		Short: "Validate a transition stylesheet",
		Long: `Load a YAML stylesheet and report every state's targets after
inheritance from the default state.

This command checks:
  - YAML syntax and known fields
  - Property kinds (number, color)
  - Value types, colors and transition shorthands
  - That the default state sets every property`,
		Example: `  glide check examples/switch/track.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			log.Debug().Str("path", path).Msg("Checking stylesheet")

			s, err := sheet.LoadFile(path)
			if err != nil {
				return err
			}
			entries := flatten(s)

			log.Info().
				Str("path", path).
				Int("states", len(s.StateNames())).
				Int("properties", len(s.PropertyNames())).
				Msg("Stylesheet OK")

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			return writeEntries(cmd.OutOrStdout(), entries)
		},
	}
	return cmd
}

// flatten lists every (state, property) pair, filling gaps from the default
// state the way a group does when the state is registered.
func flatten(s *sheet.Sheet) []checkedEntry {
	def := s.Default()
	var out []checkedEntry
	for _, stateName := range s.StateNames() {
		st, _ := s.State(stateName)
		for _, prop := range s.PropertyNames() {
			t, ok := st.Lookup(prop)
			inherited := !ok
			if inherited {
				t, _ = def.Lookup(prop)
			}
			kind, _ := s.Kind(prop)
			out = append(out, checkedEntry{
				State:     stateName,
				Property:  prop,
				Kind:      string(kind),
				Value:     formatValue(t.Value),
				Duration:  t.Data.Duration(),
				Delay:     t.Data.Delay(),
				Inherited: inherited,
			})
		}
	}
	return out
}

func formatValue(v any) string {
	switch v := v.(type) {
	case glide.Color:
		return v.String()
	case float64:
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprint(v)
}

func writeEntries(w io.Writer, entries []checkedEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tPROPERTY\tKIND\tVALUE\tDURATION\tDELAY\tSOURCE")
	for _, e := range entries {
		source := "own"
		if e.Inherited {
			source = "default"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%gs\t%gs\t%s\n",
			e.State, e.Property, e.Kind, e.Value, e.Duration, e.Delay, source)
	}
	return tw.Flush()
}
