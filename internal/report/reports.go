package report

import (
	"fmt"
	"time"

	"github.com/couchcryptid/parks-dashboard/internal/dataset"
	"github.com/couchcryptid/parks-dashboard/internal/geo"
	"github.com/couchcryptid/parks-dashboard/internal/observability"
)

// Reports serves the dashboard aggregates from an immutable snapshot,
// memoizing results per filter signature. Safe for concurrent readers; the
// underlying data never changes after construction.
type Reports struct {
	snapshot *dataset.Snapshot
	mapping  *geo.Mapping
	metrics  *observability.Metrics
	cache    *lruCache
}

// New wires a Reports handle over a loaded snapshot and its town mapping.
func New(snapshot *dataset.Snapshot, mapping *geo.Mapping, cacheSize int, metrics *observability.Metrics) *Reports {
	return &Reports{
		snapshot: snapshot,
		mapping:  mapping,
		metrics:  metrics,
		cache:    newLRUCache(cacheSize),
	}
}

// Summary returns the KPI block for a filter.
func (r *Reports) Summary(f Filter) SummaryReport {
	return viaCache(r, "summary", "summary|"+f.key(), func() SummaryReport {
		return Summary(r.snapshot.Records, f)
	})
}

// Existence returns the governorate park-existence ranking for a filter.
func (r *Reports) Existence(f Filter) ExistenceReport {
	return viaCache(r, "existence", "existence|"+f.key(), func() ExistenceReport {
		return ExistenceRanking(r.mapping, r.snapshot.Records, f)
	})
}

// Conditions returns the per-area condition breakdown for a filter.
func (r *Reports) Conditions(f Filter, attr Attribute, normalize bool) ConditionReport {
	key := fmt.Sprintf("conditions|%s|%s|%t", f.key(), attr, normalize)
	return viaCache(r, "conditions", key, func() ConditionReport {
		return ConditionBreakdown(r.snapshot.Records, r.snapshot.Columns, f, attr, normalize)
	})
}

// Breakdown returns the treemap category breakdown for a filter.
func (r *Reports) Breakdown(f Filter, split Split) CategoryReport {
	key := fmt.Sprintf("breakdown|%s|%s", f.key(), split)
	return viaCache(r, "breakdown", key, func() CategoryReport {
		return CategoryBreakdown(r.snapshot.Records, r.snapshot.Columns, f, split)
	})
}

// viaCache wraps a report computation with request/cache/duration metrics
// and LRU memoization.
func viaCache[T any](r *Reports, chart, key string, compute func() T) T {
	r.metrics.ReportRequests.WithLabelValues(chart).Inc()

	if v, ok := r.cache.get(key); ok {
		if typed, ok := v.(T); ok {
			r.metrics.ReportCache.WithLabelValues(chart, "hit").Inc()
			return typed
		}
	}
	r.metrics.ReportCache.WithLabelValues(chart, "miss").Inc()

	start := time.Now()
	v := compute()
	r.metrics.ReportDuration.WithLabelValues(chart).Observe(time.Since(start).Seconds())

	r.cache.put(key, v)
	return v
}
