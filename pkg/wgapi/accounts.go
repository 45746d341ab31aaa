package wgapi

import (
	"context"
	"fmt"
)

// Search types accepted by ListAccounts.
const (
	SearchStartsWith = "startswith"
	SearchExact      = "exact"
)

type AccountListOptions struct {
	Limit int
	// Type is SearchStartsWith (API default) or SearchExact.
	Type   string
	Fields []string
}

// ListAccounts searches players by nickname (account/list).
func (c *Client) ListAccounts(ctx context.Context, search string, opts AccountListOptions) ([]byte, error) {
	if search == "" {
		return nil, fmt.Errorf("%w: search may not be empty", ErrInvalidArgument)
	}
	switch opts.Type {
	case "", SearchStartsWith, SearchExact:
	default:
		return nil, fmt.Errorf("%w: invalid search type %q; must be %s or %s",
			ErrInvalidArgument, opts.Type, SearchStartsWith, SearchExact)
	}

	p := NewParams()
	p.Set("search", search)
	if opts.Limit != 0 {
		p.SetInt("limit", ClampLimit(opts.Limit))
	}
	if opts.Type != "" {
		p.Set("type", opts.Type)
	}
	setFields(p, opts.Fields)

	return c.do(ctx, "account", "list", p)
}

type AccountInfoOptions struct {
	AccessToken string
	// Extra requests additional response blocks, e.g. "private.rented".
	Extra  []string
	Fields []string
}

// GetAccountInfo returns player details (account/info).
func (c *Client) GetAccountInfo(ctx context.Context, accountIDs []int64, opts AccountInfoOptions) ([]byte, error) {
	if err := validateIDs("account_id", accountIDs); err != nil {
		return nil, err
	}

	p := NewParams()
	p.SetList("account_id", int64List(accountIDs))
	if opts.AccessToken != "" {
		p.Set("access_token", opts.AccessToken)
	}
	if extra := cleanList(opts.Extra); len(extra) > 0 {
		p.SetList("extra", extra)
	}
	setFields(p, opts.Fields)

	return c.do(ctx, "account", "info", p)
}
