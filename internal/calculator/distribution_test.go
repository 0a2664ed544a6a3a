package calculator

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestDistribute(t *testing.T) {
	roster := NewRoster("A", "B", "C", "E", "E1", "E2")

	tests := []struct {
		name         string
		shift        Shift
		validateFunc func(t *testing.T, dist Distribution)
	}{
		{
			name: "two bartenders and one expo",
			shift: Shift{
				CashTips:     100,
				CreditTips:   100,
				BartenderIDs: []string{"A", "B"},
				Hours:        map[string]float64{"A": 4, "B": 6},
				ExpoIDs:      []string{"E"},
			},
			validateFunc: func(t *testing.T, dist Distribution) {
				// net credit 97, pool 197, expo 19.70, bartenders 177.30 at 17.73/h
				want := map[string]float64{"A": 70.92, "B": 106.38, "E": 19.70}
				for id, amount := range want {
					if !approx(dist[id], amount) {
						t.Errorf("%s = %v, want %v", id, dist[id], amount)
					}
				}
				if len(dist) != 3 {
					t.Errorf("expected 3 payouts, got %d", len(dist))
				}
				if !approx(dist.Total(), 197) {
					t.Errorf("total = %v, want 197", dist.Total())
				}
			},
		},
		{
			name: "each expo gets the flat rate",
			shift: Shift{
				CashTips:     100,
				CreditTips:   100,
				BartenderIDs: []string{"A", "B"},
				Hours:        map[string]float64{"A": 4, "B": 6},
				ExpoIDs:      []string{"E1", "E2"},
			},
			validateFunc: func(t *testing.T, dist Distribution) {
				for _, id := range []string{"E1", "E2"} {
					if !approx(dist[id], 19.70) {
						t.Errorf("%s = %v, want 19.70", id, dist[id])
					}
				}
				// bartenders share 157.60 at 15.76/h
				if !approx(dist["A"], 63.04) {
					t.Errorf("A = %v, want 63.04", dist["A"])
				}
				if !approx(dist["B"], 94.56) {
					t.Errorf("B = %v, want 94.56", dist["B"])
				}
				if !approx(dist.Total(), 197) {
					t.Errorf("total = %v, want 197", dist.Total())
				}
			},
		},
		{
			name: "no expos pass the whole pool to bartenders",
			shift: Shift{
				CashTips:     60,
				CreditTips:   0,
				BartenderIDs: []string{"A", "B"},
				Hours:        map[string]float64{"A": 1, "B": 2},
			},
			validateFunc: func(t *testing.T, dist Distribution) {
				if !approx(dist["A"], 20) || !approx(dist["B"], 40) {
					t.Errorf("got A=%v B=%v, want 20 and 40", dist["A"], dist["B"])
				}
			},
		},
		{
			name: "zero tips pay zero",
			shift: Shift{
				BartenderIDs: []string{"A"},
				Hours:        map[string]float64{"A": 8},
				ExpoIDs:      []string{"E"},
			},
			validateFunc: func(t *testing.T, dist Distribution) {
				for id, amount := range dist {
					if amount != 0 {
						t.Errorf("%s = %v, want 0", id, amount)
					}
				}
			},
		},
		{
			name: "bartenders without hours receive nothing",
			shift: Shift{
				CashTips:     100,
				BartenderIDs: []string{"A", "B"},
				ExpoIDs:      []string{"E"},
			},
			validateFunc: func(t *testing.T, dist Distribution) {
				if dist["A"] != 0 || dist["B"] != 0 {
					t.Errorf("expected zero bartender payouts, got A=%v B=%v", dist["A"], dist["B"])
				}
				if !approx(dist["E"], 10) {
					t.Errorf("E = %v, want 10", dist["E"])
				}
				if !approx(dist.Total(), 10) {
					t.Errorf("total = %v, want 10 (bartender pool stays undistributed)", dist.Total())
				}
			},
		},
		{
			name: "unknown employees are skipped",
			shift: Shift{
				CashTips:     100,
				BartenderIDs: []string{"A", "ghost"},
				Hours:        map[string]float64{"A": 5, "ghost": 5},
				ExpoIDs:      []string{"phantom"},
			},
			validateFunc: func(t *testing.T, dist Distribution) {
				if _, ok := dist["ghost"]; ok {
					t.Error("ghost should not be paid")
				}
				if _, ok := dist["phantom"]; ok {
					t.Error("phantom should not be paid")
				}
				// phantom does not count as an expo, so A takes everything
				if !approx(dist["A"], 100) {
					t.Errorf("A = %v, want 100", dist["A"])
				}
			},
		},
		{
			name: "non-numeric amounts count as zero",
			shift: Shift{
				CashTips:     math.NaN(),
				CreditTips:   100,
				BartenderIDs: []string{"A", "B"},
				Hours:        map[string]float64{"A": math.Inf(1), "B": 2},
			},
			validateFunc: func(t *testing.T, dist Distribution) {
				if dist["A"] != 0 {
					t.Errorf("A = %v, want 0", dist["A"])
				}
				if !approx(dist["B"], 97) {
					t.Errorf("B = %v, want 97", dist["B"])
				}
			},
		},
		{
			name: "repeated ids are counted once",
			shift: Shift{
				CashTips:     90,
				BartenderIDs: []string{"A", "A", "B"},
				Hours:        map[string]float64{"A": 1, "B": 2},
			},
			validateFunc: func(t *testing.T, dist Distribution) {
				if !approx(dist["A"], 30) || !approx(dist["B"], 60) {
					t.Errorf("got A=%v B=%v, want 30 and 60", dist["A"], dist["B"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Distribute(tt.shift, roster))
		})
	}
}

func TestDistributeConservesTips(t *testing.T) {
	roster := NewRoster("A", "B", "C", "E1", "E2", "E3")
	shifts := []Shift{
		{CashTips: 312.5, CreditTips: 811.25, BartenderIDs: []string{"A", "B", "C"},
			Hours: map[string]float64{"A": 7.5, "B": 3.2, "C": 6}, ExpoIDs: []string{"E1", "E2", "E3"}},
		{CashTips: 0, CreditTips: 45, BartenderIDs: []string{"C"},
			Hours: map[string]float64{"C": 0.5}},
		{CashTips: 1000, CreditTips: 0, BartenderIDs: []string{"A", "B"},
			Hours: map[string]float64{"A": 12, "B": 0}, ExpoIDs: []string{"E2"}},
	}

	for _, shift := range shifts {
		p := Detail(shift, roster)
		dist := Distribute(shift, roster)
		if math.Abs(dist.Total()-p.TotalTips) > 1e-9 {
			t.Errorf("distributed %v of %v", dist.Total(), p.TotalTips)
		}
	}
}

func TestDetail(t *testing.T) {
	roster := NewRoster("A", "B", "E")

	t.Run("pool arithmetic", func(t *testing.T) {
		p := Detail(Shift{
			CashTips:     100,
			CreditTips:   100,
			BartenderIDs: []string{"A", "B"},
			Hours:        map[string]float64{"A": 4, "B": 6},
			ExpoIDs:      []string{"E"},
		}, roster)

		checks := []struct {
			name      string
			got, want float64
		}{
			{"credit fee", p.CreditFee, 3},
			{"net credit", p.NetCredit, 97},
			{"total tips", p.TotalTips, 197},
			{"expo pool", p.ExpoPool, 19.7},
			{"bartender pool", p.BartenderPool, 177.3},
			{"total hours", p.TotalHours, 10},
			{"hourly rate", p.HourlyRate, 17.73},
			{"undistributed", p.Undistributed, 0},
		}
		for _, c := range checks {
			if !approx(c.got, c.want) {
				t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
			}
		}
	})

	t.Run("zero credit has no fee", func(t *testing.T) {
		p := Detail(Shift{CashTips: 80, BartenderIDs: []string{"A"}, Hours: map[string]float64{"A": 3}}, roster)
		if p.CreditFee != 0 || p.NetCredit != 0 {
			t.Errorf("fee = %v, net credit = %v, want 0 and 0", p.CreditFee, p.NetCredit)
		}
	})

	t.Run("no expos means no expo pool", func(t *testing.T) {
		p := Detail(Shift{CashTips: 80, CreditTips: 20, BartenderIDs: []string{"A"}, Hours: map[string]float64{"A": 3}}, roster)
		if p.ExpoPool != 0 {
			t.Errorf("expo pool = %v, want 0", p.ExpoPool)
		}
		if p.BartenderPool != p.TotalTips {
			t.Errorf("bartender pool = %v, want %v", p.BartenderPool, p.TotalTips)
		}
	})

	t.Run("starved hours are reported as undistributed", func(t *testing.T) {
		p := Detail(Shift{CashTips: 100, BartenderIDs: []string{"A", "B"}, ExpoIDs: []string{"E"}}, roster)
		if p.HourlyRate != 0 {
			t.Errorf("hourly rate = %v, want 0", p.HourlyRate)
		}
		if !approx(p.Undistributed, 90) {
			t.Errorf("undistributed = %v, want 90", p.Undistributed)
		}
	})
}

func TestDanglingIDs(t *testing.T) {
	roster := NewRoster("A", "E")
	got := DanglingIDs(Shift{
		BartenderIDs: []string{"A", "ghost", "ghost"},
		ExpoIDs:      []string{"E", "phantom"},
	}, roster)

	if len(got) != 2 || got[0] != "ghost" || got[1] != "phantom" {
		t.Errorf("DanglingIDs() = %v, want [ghost phantom]", got)
	}
}
