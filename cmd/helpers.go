package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aviadshiber/wot/internal/config"
	"github.com/aviadshiber/wot/internal/iostreams"
	"github.com/aviadshiber/wot/internal/output"
	"github.com/aviadshiber/wot/pkg/wgapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newAPIClient is swapped out in tests.
var newAPIClient = func() (*wgapi.Client, error) { return newClient() }

// newClient creates an API client from the current configuration state
// (viper config + env vars + flags). extra is applied last.
func newClient(extra ...wgapi.Option) (*wgapi.Client, error) {
	appID := viper.GetString(config.KeyApplicationID)
	if appID == "" {
		return nil, fmt.Errorf("application ID is required; set via `--application-id`, `WOT_APPLICATION_ID` env, or `wot config set application_id <id>`")
	}

	opts := []wgapi.Option{
		wgapi.WithLogger(logger),
		wgapi.WithUserAgent("wot-cli/" + versionInfo.version),
		wgapi.WithLocale(viper.GetString(config.KeyLanguage)),
		wgapi.WithMethod(strings.ToUpper(viper.GetString(config.KeyMethod))),
	}
	if viper.GetBool(config.KeyHTTPS) {
		opts = append(opts, wgapi.WithHTTPS())
	}
	if viper.GetBool("insecure") && viper.GetBool(config.KeyHTTPS) {
		opts = append(opts, wgapi.WithInsecureSkipVerify())
	}
	if t := viper.GetDuration("timeout"); t > 0 {
		opts = append(opts, wgapi.WithTimeout(t))
	}
	opts = append(opts, extra...)

	return wgapi.New(appID, viper.GetString(config.KeyRegion), opts...)
}

// handleJSONOutput processes a parsed JSON value through --jq or --template
// filters, or prints it as pretty JSON. It returns true if JSON output was
// handled (i.e., --json was requested), false otherwise.
func handleJSONOutput(cmd *cobra.Command, s *iostreams.IOStreams, data any) (bool, error) {
	if !jsonOutputRequested(cmd) {
		return false, nil
	}

	jqExpr, _ := cmd.Flags().GetString("jq")
	tmpl, _ := cmd.Flags().GetString("template")

	switch {
	case jqExpr != "":
		return true, output.ApplyJQ(s.Out, data, jqExpr)
	case tmpl != "":
		return true, output.ApplyTemplate(s.Out, data, tmpl)
	default:
		return true, output.PrintJSON(s.Out, data)
	}
}

// view describes how a response is rendered without --json.
type view struct {
	// columns of the table view; nil prints the response as JSON.
	columns []string
	csv     bool
	jsonl   bool
}

// render decodes body, reports API-level errors and prints the result.
func render(cmd *cobra.Command, s *iostreams.IOStreams, body []byte, v view) error {
	data, err := output.Decode(body)
	if err != nil {
		return err
	}
	if err := checkStatus(data); err != nil {
		return err
	}

	handled, err := handleJSONOutput(cmd, s, data)
	if err != nil || handled {
		return err
	}

	if v.columns == nil {
		return output.PrintJSON(s.Out, data)
	}

	rows := records(data)
	if v.jsonl {
		return output.PrintJSONL(s.Out, rows)
	}

	t := output.TableFromRecords(rows, v.columns)
	if v.csv {
		return output.PrintCSV(s.Out, t)
	}
	if len(t.Rows) == 0 {
		s.Printf("%s\n", s.Muted("No results."))
		return nil
	}
	output.PrintTable(s.Out, t, s.IsTerminal())
	return nil
}

// checkStatus turns the API error envelope into an error:
//
//	{"status":"error","error":{"code":402,"message":"SEARCH_NOT_SPECIFIED","field":"search"}}
func checkStatus(data any) error {
	obj, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected response shape %T", data)
	}
	if obj["status"] != "error" {
		return nil
	}

	e, _ := obj["error"].(map[string]any)
	msg := fmt.Sprintf("API error %v: %v", e["code"], e["message"])
	if field, ok := e["field"].(string); ok && field != "" {
		msg += fmt.Sprintf(" (field %s", field)
		if value, ok := e["value"]; ok && value != nil {
			msg += fmt.Sprintf(", value %v", value)
		}
		msg += ")"
	}
	return fmt.Errorf("%s", msg)
}

// records extracts the result objects from the "data" member. List endpoints
// return an array; info endpoints return an object keyed by ID, which is
// flattened in key order. Null entries (unknown IDs) are skipped.
func records(data any) []any {
	obj, _ := data.(map[string]any)
	switch d := obj["data"].(type) {
	case []any:
		return d
	case map[string]any:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]any, 0, len(d))
		for _, k := range keys {
			if d[k] != nil {
				out = append(out, d[k])
			}
		}
		return out
	default:
		return nil
	}
}

// responseFields returns the API fields requested via --fields, falling back
// to the optional field list of --json.
func responseFields(cmd *cobra.Command, fields string) []string {
	if fields != "" {
		return splitCSV(fields)
	}
	if jsonOutputRequested(cmd) {
		j, _ := cmd.Flags().GetString("json")
		return splitCSV(strings.TrimSpace(j))
	}
	return nil
}

// parseIDs parses positional numeric identifiers. Each argument may itself be
// a comma-separated list.
func parseIDs(args []string) ([]int64, error) {
	var ids []int64
	for _, arg := range args {
		for _, part := range splitCSV(arg) {
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid ID %q; must be a positive integer", part)
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one ID is required")
	}
	return ids, nil
}

// splitCSV splits a comma-separated string into trimmed, non-empty parts.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// splitInts splits a comma-separated list of integers.
func splitInts(s string) ([]int, error) {
	var out []int
	for _, p := range splitCSV(s) {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}
