package calculator

import (
	"math"
	"sort"
)

const (
	// FeeRate is the card processing fee deducted from credit tips before any split.
	FeeRate = 0.03

	// ExpoRate is the fraction of a shift's net tips paid to each expo.
	// It is a per-head rate: two expos each receive ExpoRate, not half of it.
	ExpoRate = 0.10
)

// Shift is the snapshot of one shift's tips and staffing used by the calculator.
type Shift struct {
	Date         string
	CashTips     float64
	CreditTips   float64
	BartenderIDs []string
	Hours        map[string]float64
	ExpoIDs      []string
}

// Roster is the set of employee IDs known at calculation time.
type Roster map[string]struct{}

// NewRoster builds a roster from employee IDs.
func NewRoster(ids ...string) Roster {
	r := make(Roster, len(ids))
	for _, id := range ids {
		r[id] = struct{}{}
	}
	return r
}

// Has reports whether id is on the roster.
func (r Roster) Has(id string) bool {
	_, ok := r[id]
	return ok
}

// IDs returns the roster's IDs in sorted order.
func (r Roster) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Distribution maps employee ID to the amount paid out for one shift.
type Distribution map[string]float64

// Total returns the sum of all payouts.
func (d Distribution) Total() float64 {
	var total float64
	for _, amount := range d {
		total += amount
	}
	return total
}

// ShiftPool holds the intermediate values of a shift's split.
type ShiftPool struct {
	CashTips      float64
	CreditTips    float64
	CreditFee     float64
	NetCredit     float64
	TotalTips     float64
	ExpoPool      float64
	BartenderPool float64
	TotalHours    float64
	HourlyRate    float64
	ExpoShare     float64 // what each expo receives

	// Bartenders and Expos are the shift's staff that resolved against the roster.
	Bartenders []string
	Expos      []string

	// Undistributed is the bartender pool that nobody receives because no
	// bartender hours were recorded. It is reported, never reassigned.
	Undistributed float64
}

// Detail computes the pool arithmetic for a shift without building a distribution.
func Detail(shift Shift, roster Roster) ShiftPool {
	p := ShiftPool{
		CashTips:   num(shift.CashTips),
		CreditTips: num(shift.CreditTips),
		Bartenders: resolve(shift.BartenderIDs, roster),
		Expos:      resolve(shift.ExpoIDs, roster),
	}

	p.CreditFee = p.CreditTips * FeeRate
	p.NetCredit = p.CreditTips * (1 - FeeRate)
	p.TotalTips = p.CashTips + p.NetCredit

	p.ExpoShare = p.TotalTips * ExpoRate
	p.ExpoPool = p.ExpoShare * float64(len(p.Expos))
	p.BartenderPool = p.TotalTips - p.ExpoPool

	for _, id := range p.Bartenders {
		p.TotalHours += hoursFor(shift, id)
	}

	if p.TotalHours > 0 {
		p.HourlyRate = p.BartenderPool / p.TotalHours
	} else if p.BartenderPool > 0 {
		p.Undistributed = p.BartenderPool
	}

	return p
}

// Distribute splits one shift's tips between its bartenders and expos.
//
// Credit tips lose FeeRate first. Each expo receives a flat ExpoRate of the net
// pool; bartenders share what is left in proportion to their hours. IDs that are
// not on the roster are skipped. If no bartender hours were recorded the bartender
// pool is left undistributed (see ShiftPool.Undistributed).
func Distribute(shift Shift, roster Roster) Distribution {
	p := Detail(shift, roster)

	dist := make(Distribution, len(p.Bartenders)+len(p.Expos))
	for _, id := range p.Bartenders {
		dist[id] = hoursFor(shift, id) * p.HourlyRate
	}
	// Expos are written last; an ID listed under both roles gets the expo payout.
	for _, id := range p.Expos {
		dist[id] = p.ExpoShare
	}

	return dist
}

// DanglingIDs returns the staff IDs of a shift that are missing from the roster.
func DanglingIDs(shift Shift, roster Roster) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, ids := range [][]string{shift.BartenderIDs, shift.ExpoIDs} {
		for _, id := range ids {
			if seen[id] || roster.Has(id) {
				continue
			}
			seen[id] = true
			missing = append(missing, id)
		}
	}
	return missing
}

// resolve keeps the IDs present on the roster, dropping repeats.
func resolve(ids []string, roster Roster) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] || !roster.Has(id) {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func hoursFor(shift Shift, id string) float64 {
	if shift.Hours == nil {
		return 0
	}
	return num(shift.Hours[id])
}

// num coerces values that cannot take part in arithmetic to zero.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
