package server

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
	"github.com/couchcryptid/parks-dashboard/internal/geo"
	"github.com/couchcryptid/parks-dashboard/internal/report"
)

// parseFilter reads the level and areas query parameters. A missing areas
// parameter selects every area at the level; an explicitly empty one is an
// empty selection (the dashboard's deselect-all state).
func parseFilter(c *gin.Context) (report.Filter, bool) {
	f := report.Filter{Level: domain.LevelGovernorate}

	if raw := c.Query("level"); raw != "" {
		level, ok := domain.ParseLevel(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "level must be Governorate, District, or Other"})
			return report.Filter{}, false
		}
		f.Level = level
	}

	if values, present := c.Request.URL.Query()["areas"]; present {
		areas := []string{}
		for _, v := range values {
			for _, area := range strings.Split(v, ",") {
				if area = strings.TrimSpace(area); area != "" {
					areas = append(areas, area)
				}
			}
		}
		f.Areas = areas
	}

	return f, true
}

func (s *Server) handleDataset(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"source":    s.snapshot.Source,
		"rows":      len(s.snapshot.Records),
		"loaded_at": s.snapshot.LoadedAt,
		"columns": gin.H{
			"town":            s.snapshot.Columns.Town,
			"parks_exist":     s.snapshot.Columns.ParksExist,
			"parks_triple":    s.snapshot.Columns.ParksTriple,
			"lighting_triple": s.snapshot.Columns.LightingTriple,
		},
	})
}

// handleAreas lists the distinct Area labels at a level, the source of the
// dashboard's area multi-select.
func (s *Server) handleAreas(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	areas := lo.FilterMap(s.snapshot.Records, func(rec domain.SurveyRecord, _ int) (string, bool) {
		return rec.Area, rec.Level == f.Level && rec.Area != ""
	})
	areas = lo.Uniq(areas)
	sort.Strings(areas)

	c.JSON(http.StatusOK, gin.H{"level": f.Level, "areas": areas})
}

func (s *Server) handleGovernorates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"governorates": geo.Governorates(s.snapshot.Records)})
}

func (s *Server) handleTowns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"towns": s.mapping.Towns})
}

func (s *Server) handleSummary(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.reports.Summary(f))
}

func (s *Server) handleExistence(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.reports.Existence(f))
}

func (s *Server) handleConditions(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	attr := report.AttributeParks
	if raw := c.Query("attribute"); raw != "" {
		parsed, ok := report.ParseAttribute(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "attribute must be parks or lighting"})
			return
		}
		attr = parsed
	}

	normalize := c.Query("normalize") == "true"

	c.JSON(http.StatusOK, s.reports.Conditions(f, attr, normalize))
}

func (s *Server) handleBreakdown(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	split := report.SplitExistence
	if raw := c.Query("split"); raw != "" {
		parsed, ok := report.ParseSplit(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "split must be existence, park_condition, or lighting_condition"})
			return
		}
		split = parsed
	}

	c.JSON(http.StatusOK, s.reports.Breakdown(f, split))
}
