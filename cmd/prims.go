package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/YoutacRandS-VA/uiua/prim"
)

var primsAll bool

// primsCmd represents the prims command
var primsCmd = &cobra.Command{
	Use:   "prims",
	Short: "List the primitives",
	Run: func(cmd *cobra.Command, args []string) {
		prims := prim.NonDeprecated()
		if primsAll {
			prims = prim.All()
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()
		fmt.Fprintln(w, "GLYPH\tASCII\tNAME\tCLASS\tARGS")
		for _, p := range prims {
			glyph := ""
			if r := p.Glyph(); r != 0 {
				glyph = string(r)
			}
			arity := "-"
			if m, ok := p.ModifierArgs(); ok {
				arity = fmt.Sprintf("%d fns", m)
			} else if a, ok := p.Args(); ok {
				arity = fmt.Sprintf("%d", a)
			}
			name := p.Name()
			if sug, ok := p.DeprecationSuggestion(); ok {
				name += " (deprecated"
				if sug != "" {
					name += "; " + sug
				}
				name += ")"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				glyph, p.ASCII(), name, p.Class(), arity)
		}
	},
}

func init() {
	rootCmd.AddCommand(primsCmd)

	primsCmd.Flags().BoolVarP(&primsAll, "all", "a", false,
		"Include deprecated primitives")
}
