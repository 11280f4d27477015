package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trailcut/internal/vibes"
)

func newVibesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "vibes",
		Short:       "List the available editing vibes",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(vibes.Names()))
			for _, name := range vibes.Names() {
				p, err := vibes.Lookup(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					p.Name,
					fmt.Sprintf("%d–%d", p.ClipCountMin, p.ClipCountMax),
					fmt.Sprintf("%.1f / %.1f / %.1f", p.Act1AvgCutS, p.Act2AvgCutS, p.Act3AvgCutS),
					string(p.PrimaryTransition),
					string(p.SecondaryTransition),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Vibe", "Clips", "Cut targets (s)", "Primary", "Secondary"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
