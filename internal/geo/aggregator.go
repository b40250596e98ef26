// Package geo derives the per-town geography mapping from the enriched
// record set. Towns appear once per containing area level, so their district
// and governorate are inferred as the most frequent AreaShort among rows at
// that level, and park existence is the max across all duplicate rows.
package geo

import (
	"sort"

	"github.com/samber/lo"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
)

// TownRow is one town with its inferred containing areas. A side the data
// never names is left empty; a town with no parks_exist rows reports 0.
type TownRow struct {
	Town        string `json:"town"`
	District    string `json:"district"`
	Governorate string `json:"governorate"`
	ParksExist  int    `json:"parks_exist"`
}

// Mapping is the town geography table, one row per distinct town name,
// ordered by town name. Immutable after construction.
type Mapping struct {
	Towns []TownRow

	byTown map[string]int
}

// Lookup returns the row for a town name.
func (m *Mapping) Lookup(town string) (TownRow, bool) {
	i, ok := m.byTown[town]
	if !ok {
		return TownRow{}, false
	}
	return m.Towns[i], true
}

// BuildTownMapping computes the town table: district and governorate modes
// per town plus the per-town park-existence indicator.
func BuildTownMapping(records []domain.SurveyRecord) *Mapping {
	districts := modeByTown(records, domain.LevelDistrict)
	governorates := modeByTown(records, domain.LevelGovernorate)

	parksExist := make(map[string]int)
	for _, rec := range records {
		if rec.Town == "" {
			continue
		}
		if rec.ParksExist > parksExist[rec.Town] {
			parksExist[rec.Town] = rec.ParksExist
		}
	}

	names := lo.Uniq(append(lo.Keys(districts), lo.Keys(governorates)...))
	sort.Strings(names)

	m := &Mapping{
		Towns:  make([]TownRow, 0, len(names)),
		byTown: make(map[string]int, len(names)),
	}
	for _, town := range names {
		m.byTown[town] = len(m.Towns)
		m.Towns = append(m.Towns, TownRow{
			Town:        town,
			District:    districts[town],
			Governorate: governorates[town],
			ParksExist:  parksExist[town],
		})
	}
	return m
}

// Governorates returns the sorted distinct AreaShort labels of all
// governorate-level rows.
func Governorates(records []domain.SurveyRecord) []string {
	shorts := lo.FilterMap(records, func(rec domain.SurveyRecord, _ int) (string, bool) {
		return rec.AreaShort, rec.Level == domain.LevelGovernorate && rec.AreaShort != ""
	})
	shorts = lo.Uniq(shorts)
	sort.Strings(shorts)
	return shorts
}

// modeByTown maps each town to its most frequent non-empty AreaShort among
// rows at the given level. Ties take the lexicographically smallest label;
// the first value seen is the fallback for the degenerate single-row case.
func modeByTown(records []domain.SurveyRecord, level domain.Level) map[string]string {
	counts := make(map[string]map[string]int)
	first := make(map[string]string)

	for _, rec := range records {
		if rec.Level != level || rec.AreaShort == "" || rec.Town == "" {
			continue
		}
		if counts[rec.Town] == nil {
			counts[rec.Town] = make(map[string]int)
			first[rec.Town] = rec.AreaShort
		}
		counts[rec.Town][rec.AreaShort]++
	}

	modes := make(map[string]string, len(counts))
	for town, areaCounts := range counts {
		best := first[town]
		bestCount := 0
		areas := lo.Keys(areaCounts)
		sort.Strings(areas)
		for _, area := range areas {
			if areaCounts[area] > bestCount {
				best = area
				bestCount = areaCounts[area]
			}
		}
		modes[town] = best
	}
	return modes
}
