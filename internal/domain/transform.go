package domain

import (
	"strconv"
	"strings"
)

// AreaLabel extracts the human-readable area name from a refArea URI:
// the last path segment with underscores replaced by spaces.
// Empty (missing) references are returned unchanged.
func AreaLabel(ref string) string {
	if ref == "" {
		return ref
	}
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		ref = ref[i+1:]
	}
	return strings.ReplaceAll(ref, "_", " ")
}

// LevelFromArea classifies an area label by substring containment.
// Containment rather than exact match is load-bearing: district labels come
// in forms like "Baabda District" and "Matn District, Lebanon".
func LevelFromArea(area string) Level {
	if strings.Contains(area, "Governorate") {
		return LevelGovernorate
	}
	if strings.Contains(area, "District") {
		return LevelDistrict
	}
	return LevelOther
}

// ShortArea strips administrative-level suffix words from an area label for
// compact display: "Mount Lebanon Governorate" → "Mount Lebanon". The
// "District, Lebanon" form must be removed before the bare "District" to take
// the trailing ", Lebanon" with it.
func ShortArea(area string) string {
	area = strings.ReplaceAll(area, "Governorate", "")
	area = strings.ReplaceAll(area, "District, Lebanon", "")
	area = strings.ReplaceAll(area, "District", "")
	return strings.TrimSpace(area)
}

// ParseFlag coerces a raw survey flag cell to a non-negative integer.
// Blanks, unparseable values, and negatives all map to 0; fractional values
// truncate toward zero.
func ParseFlag(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	n := int(v)
	if n < 0 {
		return 0
	}
	return n
}

// ClampBinary forces an indicator into {0,1}. Applied to parks_exist, where
// dirty source rows occasionally carry values above 1.
func ClampBinary(v int) int {
	if v >= 1 {
		return 1
	}
	return 0
}

// ClassifyCondition collapses a bad/acceptable/good flag triple into one
// label. All zeros means the attribute was not surveyed. Ties at the maximum
// break in the fixed order Bad, Acceptable, Good; the ordered comparisons
// below are the contract, tested directly.
func ClassifyCondition(bad, acceptable, good int) Condition {
	if bad == 0 && acceptable == 0 && good == 0 {
		return ConditionUnknown
	}
	if bad >= acceptable && bad >= good {
		return ConditionBad
	}
	if acceptable >= good {
		return ConditionAcceptable
	}
	return ConditionGood
}

// EnrichRecord derives the full SurveyRecord from a raw row: area parsing,
// flag normalization, and condition classification. Condition fields are
// uniformly Unknown when the source file lacks the full flag triple.
func EnrichRecord(raw RawRecord, cols Columns) SurveyRecord {
	area := AreaLabel(raw.RefArea)

	rec := SurveyRecord{
		RefArea:   raw.RefArea,
		Town:      strings.TrimSpace(raw.Town),
		Area:      area,
		Level:     LevelFromArea(area),
		AreaShort: ShortArea(area),

		ParksExist:      ClampBinary(ParseFlag(raw.ParksExist)),
		ParksBad:        ParseFlag(raw.ParksBad),
		ParksAcceptable: ParseFlag(raw.ParksAcceptable),
		ParksGood:       ParseFlag(raw.ParksGood),
		LightBad:        ParseFlag(raw.LightBad),
		LightAcceptable: ParseFlag(raw.LightAcceptable),
		LightGood:       ParseFlag(raw.LightGood),

		ParkCondition:     ConditionUnknown,
		LightingCondition: ConditionUnknown,
	}

	if cols.ParksTriple {
		rec.ParkCondition = ClassifyCondition(rec.ParksBad, rec.ParksAcceptable, rec.ParksGood)
	}
	if cols.LightingTriple {
		rec.LightingCondition = ClassifyCondition(rec.LightBad, rec.LightAcceptable, rec.LightGood)
	}

	return rec
}
