package report

import (
	"sort"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
)

// Attribute selects which flag triple a condition breakdown sums.
type Attribute string

const (
	AttributeParks    Attribute = "parks"
	AttributeLighting Attribute = "lighting"
)

// ParseAttribute validates an attribute name from an API query.
func ParseAttribute(s string) (Attribute, bool) {
	switch Attribute(s) {
	case AttributeParks, AttributeLighting:
		return Attribute(s), true
	default:
		return "", false
	}
}

// ConditionRow is one area's summed condition flags. The Pct fields are
// populated only on normalized reports and sum to ~100 per area (all zeros
// when the area's total is zero).
type ConditionRow struct {
	Area          string  `json:"area"`
	Bad           int     `json:"bad"`
	Acceptable    int     `json:"acceptable"`
	Good          int     `json:"good"`
	Total         int     `json:"total"`
	BadPct        float64 `json:"bad_pct,omitempty"`
	AcceptablePct float64 `json:"acceptable_pct,omitempty"`
	GoodPct       float64 `json:"good_pct,omitempty"`
}

// AreaShare names an area together with a share percentage, used for the
// best/worst insights.
type AreaShare struct {
	Area string  `json:"area"`
	Pct  float64 `json:"pct"`
}

// ConditionReport is the stacked-bar breakdown of condition flags by area,
// with rows in display order (largest first).
type ConditionReport struct {
	HasData    bool           `json:"has_data"`
	Message    string         `json:"message,omitempty"`
	Attribute  Attribute      `json:"attribute"`
	Normalized bool           `json:"normalized"`
	Rows       []ConditionRow `json:"rows,omitempty"`
	BestGood   *AreaShare     `json:"best_good,omitempty"`
	WorstBad   *AreaShare     `json:"worst_bad,omitempty"`
}

// ConditionBreakdown sums an attribute's bad/acceptable/good flags per area
// over the filtered records. When normalize is set, each area's triple is
// expressed as percentages of that area's total; a zero total yields 0 for
// every category rather than a division error. Display order is by
// descending total of the displayed values.
func ConditionBreakdown(records []domain.SurveyRecord, cols domain.Columns, f Filter, attr Attribute, normalize bool) ConditionReport {
	base := ConditionReport{Attribute: attr, Normalized: normalize}

	if !tripleAvailable(cols, attr) {
		base.Message = conditionColumnsMissing(attr)
		return base
	}

	rows := filtered(records, f)
	if len(rows) == 0 {
		base.Message = "No records match the current filter."
		return base
	}

	groups := make(map[string]*ConditionRow)
	for _, rec := range rows {
		g := groups[rec.Area]
		if g == nil {
			g = &ConditionRow{Area: rec.Area}
			groups[rec.Area] = g
		}
		bad, acceptable, good := attributeFlags(rec, attr)
		g.Bad += bad
		g.Acceptable += acceptable
		g.Good += good
	}

	out := make([]ConditionRow, 0, len(groups))
	for _, g := range groups {
		g.Total = g.Bad + g.Acceptable + g.Good
		if normalize {
			total := float64(g.Total)
			g.BadPct = SafePct2(float64(g.Bad), total)
			g.AcceptablePct = SafePct2(float64(g.Acceptable), total)
			g.GoodPct = SafePct2(float64(g.Good), total)
		}
		out = append(out, *g)
	}

	sort.Slice(out, func(i, j int) bool {
		vi, vj := displayedTotal(out[i], normalize), displayedTotal(out[j], normalize)
		if vi != vj {
			return vi > vj
		}
		return out[i].Area < out[j].Area
	})

	base.HasData = true
	base.Rows = out
	base.BestGood = bestShare(out, func(r ConditionRow) int { return r.Good })
	base.WorstBad = bestShare(out, func(r ConditionRow) int { return r.Bad })
	return base
}

func tripleAvailable(cols domain.Columns, attr Attribute) bool {
	if attr == AttributeLighting {
		return cols.LightingTriple
	}
	return cols.ParksTriple
}

func conditionColumnsMissing(attr Attribute) string {
	if attr == AttributeLighting {
		return "Lighting condition columns not found."
	}
	return "Park condition columns not found."
}

func attributeFlags(rec domain.SurveyRecord, attr Attribute) (bad, acceptable, good int) {
	if attr == AttributeLighting {
		return rec.LightBad, rec.LightAcceptable, rec.LightGood
	}
	return rec.ParksBad, rec.ParksAcceptable, rec.ParksGood
}

func displayedTotal(r ConditionRow, normalized bool) float64 {
	if normalized {
		return r.BadPct + r.AcceptablePct + r.GoodPct
	}
	return float64(r.Total)
}

// bestShare finds the area whose selected flag makes up the largest share of
// its total. Zero-total areas count as 0 share; ties keep the first area in
// area-name order.
func bestShare(rows []ConditionRow, flag func(ConditionRow) int) *AreaShare {
	ordered := make([]ConditionRow, len(rows))
	copy(ordered, rows)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Area < ordered[j].Area })

	best := -1.0
	var result *AreaShare
	for _, row := range ordered {
		var share float64
		if row.Total > 0 {
			share = float64(flag(row)) / float64(row.Total)
		}
		if share > best {
			best = share
			result = &AreaShare{Area: row.Area, Pct: SafePct(float64(flag(row)), float64(row.Total))}
		}
	}
	return result
}
