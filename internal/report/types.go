// Package report computes the dashboard aggregates: the governorate
// existence ranking, the per-area condition breakdown, the treemap-style
// category breakdown, and the KPI summary. All computation functions are
// pure and deterministic; Reports wraps them with an LRU result cache keyed
// by the filter signature.
package report

import (
	"math"
	"sort"
	"strings"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
)

// Filter selects the records a report operates on: an administrative level
// and a set of area labels at that level. A nil Areas slice means every area
// at the level; an empty non-nil slice means the user deselected everything.
type Filter struct {
	Level domain.Level
	Areas []string
}

// matches reports whether a record passes the filter.
func (f Filter) matches(rec domain.SurveyRecord, areas map[string]struct{}) bool {
	if rec.Level != f.Level {
		return false
	}
	if f.Areas == nil {
		return true
	}
	_, ok := areas[rec.Area]
	return ok
}

func (f Filter) areaSet() map[string]struct{} {
	if f.Areas == nil {
		return nil
	}
	set := make(map[string]struct{}, len(f.Areas))
	for _, a := range f.Areas {
		set[a] = struct{}{}
	}
	return set
}

// key is the cache signature of the filter. Area order must not matter.
func (f Filter) key() string {
	if f.Areas == nil {
		return string(f.Level) + "|*"
	}
	areas := make([]string, len(f.Areas))
	copy(areas, f.Areas)
	sort.Strings(areas)
	return string(f.Level) + "|" + strings.Join(areas, ",")
}

// filtered returns the records passing the filter, in input order.
func filtered(records []domain.SurveyRecord, f Filter) []domain.SurveyRecord {
	areas := f.areaSet()
	out := make([]domain.SurveyRecord, 0, len(records))
	for _, rec := range records {
		if f.matches(rec, areas) {
			out = append(out, rec)
		}
	}
	return out
}

// SafePct is the safe-division percentage rule used across the dashboard:
// 0.0 when the denominator is 0, otherwise 100·n/d rounded to 1 decimal.
func SafePct(n, d float64) float64 {
	if d == 0 {
		return 0.0
	}
	return math.Round(100*n/d*10) / 10
}

// SafePct2 is SafePct at 2-decimal granularity, used where the dashboard
// shows normalized stacked bars.
func SafePct2(n, d float64) float64 {
	if d == 0 {
		return 0.0
	}
	return math.Round(100*n/d*100) / 100
}
