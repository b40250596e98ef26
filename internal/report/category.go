package report

import (
	"sort"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
)

// Split selects the categorical dimension of the treemap-style breakdown.
type Split string

const (
	SplitExistence         Split = "existence"
	SplitParkCondition     Split = "park_condition"
	SplitLightingCondition Split = "lighting_condition"
)

// ParseSplit validates a split name from an API query.
func ParseSplit(s string) (Split, bool) {
	switch Split(s) {
	case SplitExistence, SplitParkCondition, SplitLightingCondition:
		return Split(s), true
	default:
		return "", false
	}
}

// Existence split categories.
const (
	CategoryParksExist = "Parks exist"
	CategoryNoParks    = "No parks"
	CategoryNoData     = "No data"
)

// CategoryCell is one (area, category) tile: the number of filtered records
// for that area falling into the category.
type CategoryCell struct {
	AreaShort string `json:"area_short"`
	Category  string `json:"category"`
	Count     int    `json:"count"`
}

// CategoryTotal is a category's overall count and share of the filtered rows.
type CategoryTotal struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Pct      float64 `json:"pct"`
}

// CategoryReport is the treemap breakdown: cells per (area, category) pair,
// per-category totals, and the leading area of the notable category
// ("Parks exist" for the existence split, "Good" for condition splits).
type CategoryReport struct {
	HasData         bool            `json:"has_data"`
	Message         string          `json:"message,omitempty"`
	Split           Split           `json:"split"`
	Cells           []CategoryCell  `json:"cells,omitempty"`
	Totals          []CategoryTotal `json:"totals,omitempty"`
	NotableCategory string          `json:"notable_category,omitempty"`
	LeadingArea     string          `json:"leading_area,omitempty"`
	LeadingCount    int             `json:"leading_count,omitempty"`
}

// CategoryBreakdown counts filtered records per (AreaShort, category) pair
// for the chosen split. For the existence split every record is "No data"
// when the parks_exist column is absent from the source file; with the
// column present the clamped indicator maps 1 → "Parks exist", 0 → "No parks".
func CategoryBreakdown(records []domain.SurveyRecord, cols domain.Columns, f Filter, split Split) CategoryReport {
	base := CategoryReport{Split: split}

	rows := filtered(records, f)
	if len(rows) == 0 {
		base.Message = "No records match the current filter."
		return base
	}

	type pair struct{ area, category string }
	counts := make(map[pair]int)
	totals := make(map[string]int)
	for _, rec := range rows {
		category := categoryFor(rec, cols, split)
		counts[pair{rec.AreaShort, category}]++
		totals[category]++
	}

	cells := make([]CategoryCell, 0, len(counts))
	for p, n := range counts {
		cells = append(cells, CategoryCell{AreaShort: p.area, Category: p.category, Count: n})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Count != cells[j].Count {
			return cells[i].Count > cells[j].Count
		}
		if cells[i].AreaShort != cells[j].AreaShort {
			return cells[i].AreaShort < cells[j].AreaShort
		}
		return cells[i].Category < cells[j].Category
	})

	totalRows := len(rows)
	catTotals := make([]CategoryTotal, 0, len(totals))
	for category, n := range totals {
		catTotals = append(catTotals, CategoryTotal{
			Category: category,
			Count:    n,
			Pct:      SafePct(float64(n), float64(totalRows)),
		})
	}
	sort.Slice(catTotals, func(i, j int) bool {
		if catTotals[i].Count != catTotals[j].Count {
			return catTotals[i].Count > catTotals[j].Count
		}
		return catTotals[i].Category < catTotals[j].Category
	})

	base.HasData = true
	base.Cells = cells
	base.Totals = catTotals
	base.NotableCategory = notableCategory(split)
	base.LeadingArea, base.LeadingCount = leadingArea(cells, base.NotableCategory)
	return base
}

func categoryFor(rec domain.SurveyRecord, cols domain.Columns, split Split) string {
	switch split {
	case SplitParkCondition:
		return string(rec.ParkCondition)
	case SplitLightingCondition:
		return string(rec.LightingCondition)
	default:
		if !cols.ParksExist {
			return CategoryNoData
		}
		if rec.ParksExist >= 1 {
			return CategoryParksExist
		}
		return CategoryNoParks
	}
}

func notableCategory(split Split) string {
	if split == SplitExistence {
		return CategoryParksExist
	}
	return string(domain.ConditionGood)
}

// leadingArea picks the largest cell of the notable category. Cells arrive
// count-sorted with name tie-breaks, so the first match wins.
func leadingArea(cells []CategoryCell, category string) (string, int) {
	for _, cell := range cells {
		if cell.Category == category {
			return cell.AreaShort, cell.Count
		}
	}
	return "", 0
}
