package cmd

import (
	"context"
	"fmt"

	"github.com/aviadshiber/wot/pkg/wgapi"
	"github.com/spf13/cobra"
)

func newEncyclopediaCmd() *cobra.Command {
	encyclopediaCmd := &cobra.Command{
		Use:     "encyclopedia",
		Aliases: []string{"tankopedia"},
		Short:   "Browse the vehicle encyclopedia",
	}

	encyclopediaCmd.AddCommand(newEncyclopediaVehiclesCmd())
	return encyclopediaCmd
}

func newEncyclopediaVehiclesCmd() *cobra.Command {
	var (
		tankIDs string
		nations string
		tiers   string
		types   string
		fields  string
		csv     bool
		jsonl   bool
	)

	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List vehicles, optionally filtered",
		Example: `  # German tier X heavies
  wot encyclopedia vehicles --nation germany --tier 10 --type heavyTank

  wot encyclopedia vehicles --tank-id 1,17 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := wgapi.VehicleFilter{
				Nations: splitCSV(nations),
				Types:   splitCSV(types),
				Fields:  responseFields(cmd, fields),
			}

			var err error
			if tankIDs != "" {
				if filter.TankIDs, err = parseIDs([]string{tankIDs}); err != nil {
					return err
				}
			}
			if filter.Tiers, err = splitInts(tiers); err != nil {
				return fmt.Errorf("--tier: %w", err)
			}

			c, err := newAPIClient()
			if err != nil {
				return err
			}

			body, err := c.ListVehicles(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("listing vehicles: %w", err)
			}

			return render(cmd, getIO(), body, view{
				columns: []string{"tank_id", "name", "tier", "nation", "type"},
				csv:     csv,
				jsonl:   jsonl,
			})
		},
	}

	cmd.Flags().StringVar(&tankIDs, "tank-id", "", "Comma-separated vehicle IDs")
	cmd.Flags().StringVar(&nations, "nation", "", "Comma-separated nations, e.g. germany,ussr")
	cmd.Flags().StringVar(&tiers, "tier", "", "Comma-separated tiers (1-10)")
	cmd.Flags().StringVar(&types, "type", "", "Comma-separated classes: lightTank, mediumTank, heavyTank, AT-SPG, SPG")
	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")
	cmd.Flags().BoolVar(&csv, "csv", false, "Output as CSV")
	cmd.Flags().BoolVar(&jsonl, "jsonl", false, "Output one JSON object per result line")

	return cmd
}
