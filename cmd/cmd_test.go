package cmd

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/aviadshiber/wot/internal/iostreams"
	"github.com/aviadshiber/wot/pkg/wgapi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

type stringBody struct{ *strings.Reader }

func (stringBody) Close() error { return nil }

// resetFlags restores every flag to its default so runs do not leak into
// each other through the shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type result struct {
	out      string
	errOut   string
	requests []*http.Request
	err      error
}

// run executes the CLI with args against a fake API answering body.
func run(t *testing.T, body string, args ...string) result {
	t.Helper()

	var out, errOut bytes.Buffer
	var res result

	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		res.requests = append(res.requests, r)
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       stringBody{strings.NewReader(body)},
			Request:    r,
		}, nil
	})}

	prev := newAPIClient
	newAPIClient = func() (*wgapi.Client, error) { return newClient(wgapi.WithHTTPClient(hc)) }
	io = iostreams.Test(strings.NewReader(""), &out, &errOut)
	resetFlags(rootCmd)
	t.Cleanup(func() {
		newAPIClient = prev
		io = nil
		resetFlags(rootCmd)
	})

	rootCmd.SetArgs(append([]string{"--application-id", "K"}, args...))
	res.err = Execute()
	res.out = out.String()
	res.errOut = errOut.String()
	return res
}

const clanListBody = `{"status":"ok","meta":{"count":2},"data":[
	{"clan_id":500000001,"tag":"PZR","name":"Panzer Corps","members_count":97},
	{"clan_id":500000002,"tag":"PZ2","name":"Panzer Two","members_count":12}]}`

func TestClansListTable(t *testing.T) {
	res := run(t, clanListBody, "clans", "list", "Panzer", "-r", "eu")
	require.NoError(t, res.err)
	require.Len(t, res.requests, 1)

	assert.Equal(t,
		"http://api.worldoftanks.eu/wot/clan/list/?search=Panzer&application_id=K&language=en",
		res.requests[0].URL.String())
	assert.Equal(t,
		"CLAN_ID\tTAG\tNAME\tMEMBERS_COUNT\n"+
			"500000001\tPZR\tPanzer Corps\t97\n"+
			"500000002\tPZ2\tPanzer Two\t12\n",
		res.out)
}

func TestClansListCSVAndJSONL(t *testing.T) {
	res := run(t, clanListBody, "clans", "list", "Panzer", "--csv", "--limit", "500", "--order-by", "-members_count")
	require.NoError(t, res.err)
	assert.Equal(t,
		"CLAN_ID,TAG,NAME,MEMBERS_COUNT\n500000001,PZR,Panzer Corps,97\n500000002,PZ2,Panzer Two,12\n",
		res.out)

	q := res.requests[0].URL.Query()
	assert.Equal(t, "100", q.Get("limit"))
	assert.Equal(t, "-members_count", q.Get("order_by"))

	res = run(t, clanListBody, "clans", "list", "Panzer", "--jsonl")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"tag":"PZR"`)
}

func TestClansListJQ(t *testing.T) {
	res := run(t, clanListBody, "clans", "list", "Panzer", "--json", "--jq", ".data[].tag")
	require.NoError(t, res.err)
	assert.Equal(t, "\"PZR\"\n\"PZ2\"\n", res.out)
}

func TestClansInfoJSONFields(t *testing.T) {
	body := `{"status":"ok","data":{"1":{"clan_id":1,"tag":"A"},"2":null}}`
	res := run(t, body, "clans", "info", "1,2", "--json", "clan_id,tag")
	require.NoError(t, res.err)

	q := res.requests[0].URL.Query()
	assert.Equal(t, "1,2", q.Get("clan_id"))
	assert.Equal(t, "clan_id,tag", q.Get("fields"))
	assert.Contains(t, res.out, `"tag": "A"`)
}

func TestAccountsInfoSkipsUnknownIDs(t *testing.T) {
	body := `{"status":"ok","data":{
		"2":null,
		"1":{"account_id":1,"nickname":"tanker","global_rating":5000,"last_battle_time":1700000000}}}`
	res := run(t, body, "accounts", "info", "1", "2", "--extra", "private.rented")
	require.NoError(t, res.err)

	assert.Equal(t, "private.rented", res.requests[0].URL.Query().Get("extra"))
	assert.Equal(t,
		"ACCOUNT_ID\tNICKNAME\tGLOBAL_RATING\tLAST_BATTLE_TIME\n1\ttanker\t5000\t1700000000\n",
		res.out)
}

func TestAccountsListExact(t *testing.T) {
	res := run(t, `{"status":"ok","data":[]}`, "accounts", "list", "tanker", "--exact")
	require.NoError(t, res.err)

	assert.Equal(t, "exact", res.requests[0].URL.Query().Get("type"))
	assert.Equal(t, "No results.\n", res.out)
}

func TestRatingsTypesPrintsJSON(t *testing.T) {
	res := run(t, `{"status":"ok","data":{"28":{"type":"28"}}}`, "ratings", "types", "--period", "28")
	require.NoError(t, res.err)

	assert.Equal(t, "28", res.requests[0].URL.Query().Get("type"))
	assert.Contains(t, res.out, `"type": "28"`)
}

func TestVehiclesRejectsBadTierBeforeRequest(t *testing.T) {
	res := run(t, `{}`, "encyclopedia", "vehicles", "--tier", "11")
	require.ErrorIs(t, res.err, wgapi.ErrInvalidArgument)
	assert.Empty(t, res.requests)
	assert.Contains(t, res.errOut, "Error:")
}

func TestAPIErrorEnvelope(t *testing.T) {
	body := `{"status":"error","error":{"code":402,"message":"SEARCH_NOT_SPECIFIED","field":"search","value":null}}`
	res := run(t, body, "clans", "list", "x")
	require.Error(t, res.err)
	assert.Equal(t, "API error 402: SEARCH_NOT_SPECIFIED (field search)", res.err.Error())
}

func TestInvalidRegion(t *testing.T) {
	res := run(t, `{}`, "clans", "list", "x", "-r", "mars")
	require.ErrorIs(t, res.err, wgapi.ErrInvalidConfiguration)
	assert.Empty(t, res.requests)
}

func TestPostMethod(t *testing.T) {
	res := run(t, clanListBody, "clans", "list", "Panzer", "--method", "post", "--https")
	require.NoError(t, res.err)

	req := res.requests[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://api.worldoftanks.com/wot/clan/list/", req.URL.String())
}

func TestInsecureWithoutHTTPSWarns(t *testing.T) {
	res := run(t, clanListBody, "clans", "list", "Panzer", "--insecure")
	require.NoError(t, res.err)
	assert.Contains(t, res.errOut, "--insecure has no effect without --https")
	assert.Equal(t, "http", res.requests[0].URL.Scheme)
}

func TestVersionJSON(t *testing.T) {
	res := run(t, "", "version", "--json")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `"version": "dev"`)
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a, ,b ,"))
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1,2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	for _, bad := range [][]string{{"x"}, {"0"}, {"-4"}, {","}} {
		_, err := parseIDs(bad)
		assert.Error(t, err, "%v", bad)
	}
}

func TestSplitInts(t *testing.T) {
	n, err := splitInts("1, 10")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10}, n)

	n, err = splitInts("")
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = splitInts("ten")
	assert.Error(t, err)
}

func TestCheckStatus(t *testing.T) {
	assert.NoError(t, checkStatus(map[string]any{"status": "ok"}))
	assert.Error(t, checkStatus([]any{}))

	err := checkStatus(map[string]any{
		"status": "error",
		"error":  map[string]any{"code": 407, "message": "INVALID_LIMIT", "field": "limit", "value": "500"},
	})
	require.Error(t, err)
	assert.Equal(t, "API error 407: INVALID_LIMIT (field limit, value 500)", err.Error())
}

func TestRecords(t *testing.T) {
	list := []any{map[string]any{"a": 1}}
	assert.Equal(t, list, records(map[string]any{"data": list}))

	byID := map[string]any{"data": map[string]any{
		"2": map[string]any{"id": 2},
		"1": map[string]any{"id": 1},
		"3": nil,
	}}
	assert.Equal(t, []any{map[string]any{"id": 1}, map[string]any{"id": 2}}, records(byID))

	assert.Nil(t, records(map[string]any{}))
}
