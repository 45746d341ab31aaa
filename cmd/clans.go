package cmd

import (
	"context"
	"fmt"

	"github.com/aviadshiber/wot/pkg/wgapi"
	"github.com/spf13/cobra"
)

func newClansCmd() *cobra.Command {
	clansCmd := &cobra.Command{
		Use:     "clans",
		Aliases: []string{"clan"},
		Short:   "Search clans and show clan details",
	}

	clansCmd.AddCommand(newClansListCmd())
	clansCmd.AddCommand(newClansInfoCmd())
	return clansCmd
}

func newClansListCmd() *cobra.Command {
	var (
		limit   int
		orderBy string
		page    int
		fields  string
		csv     bool
		jsonl   bool
	)

	cmd := &cobra.Command{
		Use:   "list <search>",
		Short: "Search clans by name or tag prefix",
		Long: `Search clans whose name or tag starts with <search> (clan/list).

--limit accepts 1-100; anything else falls back to 100.`,
		Example: `  # Clans starting with "Panzer" on the EU server
  wot clans list Panzer -r eu

  # Largest clans first, as CSV
  wot clans list RED --order-by -members_count --csv

  # Only tags, via jq
  wot clans list RED --json --jq '.data[].tag'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			body, err := c.ListClans(context.Background(), args[0], wgapi.ClanListOptions{
				Limit:   limit,
				OrderBy: orderBy,
				Page:    page,
				Fields:  responseFields(cmd, fields),
			})
			if err != nil {
				return fmt.Errorf("listing clans: %w", err)
			}

			return render(cmd, getIO(), body, view{
				columns: []string{"clan_id", "tag", "name", "members_count"},
				csv:     csv,
				jsonl:   jsonl,
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of clans (max 100)")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "Sort order, e.g. name, -members_count, created_at")
	cmd.Flags().IntVar(&page, "page", 0, "Result page number")
	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")
	cmd.Flags().BoolVar(&csv, "csv", false, "Output as CSV")
	cmd.Flags().BoolVar(&jsonl, "jsonl", false, "Output one JSON object per result line")

	return cmd
}

func newClansInfoCmd() *cobra.Command {
	var (
		accessToken string
		fields      string
	)

	cmd := &cobra.Command{
		Use:   "info <clan-id>...",
		Short: "Show clan details",
		Long:  "Show details of one or more clans by ID (clan/info).",
		Example: `  wot clans info 500000001
  wot clans info 500000001,500000002 --json --jq '.data[] | {tag, members_count}'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			c, err := newAPIClient()
			if err != nil {
				return err
			}

			body, err := c.GetClanInfo(context.Background(), ids, wgapi.ClanInfoOptions{
				AccessToken: accessToken,
				Fields:      responseFields(cmd, fields),
			})
			if err != nil {
				return fmt.Errorf("getting clan info: %w", err)
			}

			return render(cmd, getIO(), body, view{
				columns: []string{"clan_id", "tag", "name", "members_count", "leader_name"},
			})
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "Player access token")
	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")

	return cmd
}
