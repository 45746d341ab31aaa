package wgapi

import (
	"context"
	"fmt"
)

// Rating periods accepted by GetRatingTypes.
const (
	RatingPeriod1Day   = "1"
	RatingPeriod7Days  = "7"
	RatingPeriod28Days = "28"
	RatingPeriodAll    = "all"
)

// GetRatingTypes returns the dictionary of rating categories for a rating
// period (ratings/types).
func (c *Client) GetRatingTypes(ctx context.Context, period string, fields []string) ([]byte, error) {
	switch period {
	case RatingPeriod1Day, RatingPeriod7Days, RatingPeriod28Days, RatingPeriodAll:
	default:
		return nil, fmt.Errorf("%w: invalid rating period %q; must be 1, 7, 28 or all", ErrInvalidArgument, period)
	}

	p := NewParams()
	p.Set("type", period)
	setFields(p, fields)

	return c.do(ctx, "ratings", "types", p)
}
