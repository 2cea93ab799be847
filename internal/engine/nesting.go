package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/PipeStack/internal/model"
)

// TypeStock tracks how many loose pipes of one type remain available
// while bundles are being built.
type TypeStock struct {
	Pipe      model.PipeType
	Remaining int
}

// GuestSelector picks the next pipe to slide inside a host. Implementations
// return the index into stock of the chosen guest, or -1 when nothing fits.
type GuestSelector interface {
	SelectGuest(host model.PipeType, stock []TypeStock, s model.LoadSettings) int
}

// greedySelector picks the largest compatible guest, preferring the same
// SDR class when several candidates share a diameter. This maximizes the
// space consumed per nesting level, which empirically yields the fewest
// trucks for mixed-diameter orders.
type greedySelector struct{}

func (greedySelector) SelectGuest(host model.PipeType, stock []TypeStock, s model.LoadSettings) int {
	best := -1
	for i, ts := range stock {
		if ts.Remaining <= 0 {
			continue
		}
		if !s.AllowMixedSDR && ts.Pipe.SDR != host.SDR {
			continue
		}
		if !Compatible(host, ts.Pipe, s) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		cur := stock[best].Pipe
		cand := ts.Pipe
		switch {
		case cand.DN > cur.DN:
			best = i
		case cand.DN == cur.DN && s.PreferSameSDR:
			if cand.SDR == host.SDR && cur.SDR != host.SDR {
				best = i
			}
		}
	}
	return best
}

// BuildBundles turns order lines into Matryoshka bundles. Each bundle is a
// single chain: host, guest, guest-of-guest, down to the depth cap. Hosts
// are consumed largest first so big pipes become carriers rather than
// cargo. The same pipe count always comes back out: every input pipe ends
// up in exactly one bundle, nested or alone.
func BuildBundles(lines []model.OrderLine, s model.LoadSettings) ([]model.Bundle, []string) {
	stock := aggregateStock(lines)
	var bundles []model.Bundle
	var warnings []string

	if !s.EnableNesting {
		for i := range stock {
			for stock[i].Remaining > 0 {
				stock[i].Remaining--
				bundles = append(bundles, model.NewBundle([]model.PipeType{stock[i].Pipe}))
			}
		}
		return bundles, warnings
	}

	sel := greedySelector{}
	maxDepth := s.MaxNestingLevels
	if maxDepth < 1 {
		maxDepth = 1
	}

	for i := range stock {
		for stock[i].Remaining > 0 {
			stock[i].Remaining--
			chain := []model.PipeType{stock[i].Pipe}

			host := stock[i].Pipe
			for len(chain) < maxDepth {
				g := sel.SelectGuest(host, stock, s)
				if g < 0 {
					break
				}
				stock[g].Remaining--
				chain = append(chain, stock[g].Pipe)
				host = stock[g].Pipe
			}
			bundles = append(bundles, model.NewBundle(chain))
		}
	}

	nested := 0
	for _, b := range bundles {
		nested += b.Depth() - 1
	}
	if nested == 0 && len(bundles) > 1 {
		warnings = append(warnings,
			fmt.Sprintf("no nesting opportunities found across %d pipes", len(bundles)))
	}
	return bundles, warnings
}

// aggregateStock merges order lines by pipe code and sorts the pool so the
// largest, heaviest pipes are taken as hosts first. Code is the final
// tie-break to keep bundle IDs deterministic run to run.
func aggregateStock(lines []model.OrderLine) []TypeStock {
	byCode := make(map[string]*TypeStock)
	var order []string
	for _, line := range lines {
		if ts, ok := byCode[line.Pipe.Code]; ok {
			ts.Remaining += line.Quantity
			continue
		}
		byCode[line.Pipe.Code] = &TypeStock{Pipe: line.Pipe, Remaining: line.Quantity}
		order = append(order, line.Pipe.Code)
	}

	stock := make([]TypeStock, 0, len(order))
	for _, code := range order {
		stock = append(stock, *byCode[code])
	}
	sort.Slice(stock, func(i, j int) bool {
		a, b := stock[i].Pipe, stock[j].Pipe
		if a.DN != b.DN {
			return a.DN > b.DN
		}
		if a.WeightPerMeter != b.WeightPerMeter {
			return a.WeightPerMeter > b.WeightPerMeter
		}
		return a.Code < b.Code
	})
	return stock
}
