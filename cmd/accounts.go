package cmd

import (
	"context"
	"fmt"

	"github.com/aviadshiber/wot/pkg/wgapi"
	"github.com/spf13/cobra"
)

func newAccountsCmd() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "players"},
		Short:   "Search players and show player details",
	}

	accountsCmd.AddCommand(newAccountsListCmd())
	accountsCmd.AddCommand(newAccountsInfoCmd())
	return accountsCmd
}

func newAccountsListCmd() *cobra.Command {
	var (
		limit  int
		exact  bool
		fields string
		csv    bool
		jsonl  bool
	)

	cmd := &cobra.Command{
		Use:   "list <nickname>",
		Short: "Search players by nickname",
		Example: `  wot accounts list tanker -r eu
  wot accounts list Tanker_1 --exact --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			opts := wgapi.AccountListOptions{
				Limit:  limit,
				Fields: responseFields(cmd, fields),
			}
			if exact {
				opts.Type = wgapi.SearchExact
			}

			body, err := c.ListAccounts(context.Background(), args[0], opts)
			if err != nil {
				return fmt.Errorf("listing accounts: %w", err)
			}

			return render(cmd, getIO(), body, view{
				columns: []string{"account_id", "nickname"},
				csv:     csv,
				jsonl:   jsonl,
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of players (max 100)")
	cmd.Flags().BoolVar(&exact, "exact", false, "Match the nickname exactly")
	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")
	cmd.Flags().BoolVar(&csv, "csv", false, "Output as CSV")
	cmd.Flags().BoolVar(&jsonl, "jsonl", false, "Output one JSON object per result line")

	return cmd
}

func newAccountsInfoCmd() *cobra.Command {
	var (
		accessToken string
		extra       string
		fields      string
	)

	cmd := &cobra.Command{
		Use:   "info <account-id>...",
		Short: "Show player details",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			c, err := newAPIClient()
			if err != nil {
				return err
			}

			body, err := c.GetAccountInfo(context.Background(), ids, wgapi.AccountInfoOptions{
				AccessToken: accessToken,
				Extra:       splitCSV(extra),
				Fields:      responseFields(cmd, fields),
			})
			if err != nil {
				return fmt.Errorf("getting account info: %w", err)
			}

			return render(cmd, getIO(), body, view{
				columns: []string{"account_id", "nickname", "global_rating", "last_battle_time"},
			})
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "Player access token (needed for private data)")
	cmd.Flags().StringVar(&extra, "extra", "", "Comma-separated extra blocks, e.g. private.rented")
	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")

	return cmd
}
