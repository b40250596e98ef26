package report

import (
	"sort"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
	"github.com/couchcryptid/parks-dashboard/internal/geo"
)

// GovernorateRank is one governorate's park-existence standing: how many
// towns it contains and how many of them have a park.
type GovernorateRank struct {
	Governorate string  `json:"governorate"`
	Towns       int     `json:"towns"`
	Parks       int     `json:"parks"`
	ParksPct    float64 `json:"parks_pct"`
}

// ExistenceReport ranks governorates by the percentage of their towns with a
// park. Rows are sorted best-first; Order lists governorates bottom-to-top
// for a horizontal bar axis.
type ExistenceReport struct {
	HasData bool              `json:"has_data"`
	Message string            `json:"message,omitempty"`
	Rows    []GovernorateRank `json:"rows,omitempty"`
	Order   []string          `json:"order,omitempty"`
	Best    *GovernorateRank  `json:"best,omitempty"`
	Worst   *GovernorateRank  `json:"worst,omitempty"`
}

// ExistenceRanking groups the town mapping by governorate and ranks by park
// existence. A governorate-level filter restricts the towns to the selected
// governorates; a district-level filter does not restrict the ranking (the
// chart always spans all governorates). Towns with no inferred governorate
// are excluded.
func ExistenceRanking(mapping *geo.Mapping, records []domain.SurveyRecord, f Filter) ExistenceReport {
	selected := selectedGovernorates(records, f)

	type agg struct {
		towns int
		parks int
	}
	groups := make(map[string]*agg)
	for _, town := range mapping.Towns {
		if town.Governorate == "" {
			continue
		}
		if len(selected) > 0 {
			if _, ok := selected[town.Governorate]; !ok {
				continue
			}
		}
		g := groups[town.Governorate]
		if g == nil {
			g = &agg{}
			groups[town.Governorate] = g
		}
		g.towns++
		g.parks += town.ParksExist
	}

	if len(groups) == 0 {
		return ExistenceReport{Message: "No data to compute governorate rankings with current settings."}
	}

	rows := make([]GovernorateRank, 0, len(groups))
	for gov, g := range groups {
		rows = append(rows, GovernorateRank{
			Governorate: gov,
			Towns:       g.towns,
			Parks:       g.parks,
			ParksPct:    SafePct(float64(g.parks), float64(g.towns)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ParksPct != rows[j].ParksPct {
			return rows[i].ParksPct > rows[j].ParksPct
		}
		if rows[i].Towns != rows[j].Towns {
			return rows[i].Towns > rows[j].Towns
		}
		return rows[i].Governorate < rows[j].Governorate
	})

	order := make([]string, len(rows))
	for i, row := range rows {
		order[len(rows)-1-i] = row.Governorate
	}

	best := rows[0]
	worst := rows[len(rows)-1]
	return ExistenceReport{
		HasData: true,
		Rows:    rows,
		Order:   order,
		Best:    &best,
		Worst:   &worst,
	}
}

// selectedGovernorates maps a governorate-level area selection to the
// AreaShort labels the town mapping uses. An empty result (district-level
// filter, or a selection matching nothing) means no restriction.
func selectedGovernorates(records []domain.SurveyRecord, f Filter) map[string]struct{} {
	if f.Level != domain.LevelGovernorate || f.Areas == nil {
		return nil
	}
	areas := f.areaSet()
	selected := make(map[string]struct{})
	for _, rec := range records {
		if rec.Level != domain.LevelGovernorate || rec.AreaShort == "" {
			continue
		}
		if _, ok := areas[rec.Area]; ok {
			selected[rec.AreaShort] = struct{}{}
		}
	}
	return selected
}
