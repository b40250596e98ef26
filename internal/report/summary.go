package report

import (
	"github.com/samber/lo"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
)

// SummaryReport is the dashboard KPI block for a filter selection.
type SummaryReport struct {
	HasData       bool         `json:"has_data"`
	Level         domain.Level `json:"level"`
	Towns         int          `json:"towns"`
	ParksPct      float64      `json:"parks_pct"`
	AreasSelected int          `json:"areas_selected"`
}

// Summary computes the KPI block: filtered row count, percentage of rows
// with a park, and the number of selected areas (all areas at the level when
// the filter carries no explicit selection).
func Summary(records []domain.SurveyRecord, f Filter) SummaryReport {
	rows := filtered(records, f)

	areasSelected := len(f.Areas)
	if f.Areas == nil {
		areasSelected = len(lo.UniqBy(
			lo.Filter(records, func(rec domain.SurveyRecord, _ int) bool { return rec.Level == f.Level }),
			func(rec domain.SurveyRecord) string { return rec.Area },
		))
	}

	parks := 0
	for _, rec := range rows {
		parks += rec.ParksExist
	}

	return SummaryReport{
		HasData:       len(rows) > 0,
		Level:         f.Level,
		Towns:         len(rows),
		ParksPct:      SafePct(float64(parks), float64(len(rows))),
		AreasSelected: areasSelected,
	}
}
