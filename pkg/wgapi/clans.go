package wgapi

import (
	"context"
	"fmt"
)

// ClanListOptions holds the optional parameters of ListClans.
type ClanListOptions struct {
	// Limit is the number of returned entries. Zero leaves it to the API
	// default; other values go through ClampLimit.
	Limit int
	// OrderBy is a sort expression, e.g. "name" or "-members_count".
	OrderBy string
	// Page selects the result page, starting at 1. Zero omits it.
	Page int
	// Fields restricts the response fields.
	Fields []string
}

// ListClans searches clans by the initial characters of their name or tag
// (clan/list).
func (c *Client) ListClans(ctx context.Context, search string, opts ClanListOptions) ([]byte, error) {
	if search == "" {
		return nil, fmt.Errorf("%w: search may not be empty", ErrInvalidArgument)
	}

	p := NewParams()
	p.Set("search", search)
	if opts.Limit != 0 {
		p.SetInt("limit", ClampLimit(opts.Limit))
	}
	if opts.OrderBy != "" {
		p.Set("order_by", opts.OrderBy)
	}
	if opts.Page > 0 {
		p.SetInt("page_no", opts.Page)
	}
	setFields(p, opts.Fields)

	return c.do(ctx, "clan", "list", p)
}

// ClanInfoOptions holds the optional parameters of GetClanInfo.
type ClanInfoOptions struct {
	// AccessToken is the player token obtained through OpenID authentication.
	AccessToken string
	Fields      []string
}

// GetClanInfo returns the details of one or more clans (clan/info).
func (c *Client) GetClanInfo(ctx context.Context, clanIDs []int64, opts ClanInfoOptions) ([]byte, error) {
	if err := validateIDs("clan_id", clanIDs); err != nil {
		return nil, err
	}

	p := NewParams()
	p.SetList("clan_id", int64List(clanIDs))
	if opts.AccessToken != "" {
		p.Set("access_token", opts.AccessToken)
	}
	setFields(p, opts.Fields)

	return c.do(ctx, "clan", "info", p)
}

// validateIDs requires at least one identifier, all of them positive.
func validateIDs(name string, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: %s may not be empty", ErrInvalidArgument, name)
	}
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: invalid %s %d", ErrInvalidArgument, name, id)
		}
	}
	return nil
}
