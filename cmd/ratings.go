package cmd

import (
	"context"
	"fmt"

	"github.com/aviadshiber/wot/pkg/wgapi"
	"github.com/spf13/cobra"
)

func newRatingsCmd() *cobra.Command {
	ratingsCmd := &cobra.Command{
		Use:   "ratings",
		Short: "Inspect player rating dictionaries",
	}

	ratingsCmd.AddCommand(newRatingsTypesCmd())
	return ratingsCmd
}

func newRatingsTypesCmd() *cobra.Command {
	var (
		period string
		fields string
	)

	cmd := &cobra.Command{
		Use:     "types",
		Short:   "List rating categories for a period",
		Example: `  wot ratings types --period 28 --json --jq '.data | keys'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			body, err := c.GetRatingTypes(context.Background(), period, responseFields(cmd, fields))
			if err != nil {
				return fmt.Errorf("getting rating types: %w", err)
			}

			return render(cmd, getIO(), body, view{})
		},
	}

	cmd.Flags().StringVar(&period, "period", wgapi.RatingPeriodAll, "Rating period: 1, 7, 28 or all")
	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")

	return cmd
}
