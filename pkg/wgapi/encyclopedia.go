package wgapi

import (
	"context"
	"fmt"
	"strconv"
)

// VehicleFilter narrows ListVehicles. Empty lists are not sent.
type VehicleFilter struct {
	TankIDs []int64
	Nations []string
	Tiers   []int
	// Types are vehicle classes: lightTank, mediumTank, heavyTank, AT-SPG, SPG.
	Types  []string
	Fields []string
}

// ListVehicles returns encyclopedia entries for vehicles (encyclopedia/vehicles).
func (c *Client) ListVehicles(ctx context.Context, filter VehicleFilter) ([]byte, error) {
	p := NewParams()

	if len(filter.TankIDs) > 0 {
		if err := validateIDs("tank_id", filter.TankIDs); err != nil {
			return nil, err
		}
		p.SetList("tank_id", int64List(filter.TankIDs))
	}
	if nations := cleanList(filter.Nations); len(nations) > 0 {
		p.SetList("nation", nations)
	}
	if len(filter.Tiers) > 0 {
		tiers := make([]string, len(filter.Tiers))
		for i, t := range filter.Tiers {
			if t < 1 || t > 10 {
				return nil, fmt.Errorf("%w: tier %d out of range 1-10", ErrInvalidArgument, t)
			}
			tiers[i] = strconv.Itoa(t)
		}
		p.SetList("tier", tiers)
	}
	if types := cleanList(filter.Types); len(types) > 0 {
		p.SetList("type", types)
	}
	setFields(p, filter.Fields)

	return c.do(ctx, "encyclopedia", "vehicles", p)
}
