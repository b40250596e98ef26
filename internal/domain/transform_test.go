package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const refMountLebanon = "http://dbpedia.org/resource/Mount_Lebanon_Governorate"

func TestAreaLabel(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{"governorate URI", refMountLebanon, "Mount Lebanon Governorate"},
		{"district URI", "http://dbpedia.org/resource/Baabda_District", "Baabda District"},
		{"district with country suffix", "http://dbpedia.org/resource/Matn_District,_Lebanon", "Matn District, Lebanon"},
		{"country URI", "http://dbpedia.org/resource/Lebanon", "Lebanon"},
		{"no slashes", "Akkar_Governorate", "Akkar Governorate"},
		{"trailing slash", "http://dbpedia.org/resource/", ""},
		{"empty string unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AreaLabel(tt.ref))
		})
	}
}

func TestLevelFromArea(t *testing.T) {
	tests := []struct {
		name     string
		area     string
		expected Level
	}{
		{"governorate", "Mount Lebanon Governorate", LevelGovernorate},
		{"district", "Baabda District", LevelDistrict},
		{"district with country suffix", "Matn District, Lebanon", LevelDistrict},
		{"country", "Lebanon", LevelOther},
		{"empty", "", LevelOther},
		{"governorate wins over district", "Governorate District", LevelGovernorate},
		{"substring not word match", "Districtish", LevelDistrict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelFromArea(tt.area))
		})
	}
}

// Every refArea, whatever its shape, must land in one of the three levels.
func TestLevelFromAreaIsTotal(t *testing.T) {
	refs := []string{refMountLebanon, "", "not a uri at all", "///", "12345"}
	for _, ref := range refs {
		level := LevelFromArea(AreaLabel(ref))
		assert.Contains(t, []Level{LevelGovernorate, LevelDistrict, LevelOther}, level)
	}
}

func TestShortArea(t *testing.T) {
	tests := []struct {
		name     string
		area     string
		expected string
	}{
		{"governorate suffix", "Mount Lebanon Governorate", "Mount Lebanon"},
		{"district suffix", "Baabda District", "Baabda"},
		{"district country suffix", "Matn District, Lebanon", "Matn"},
		{"no suffix", "Lebanon", "Lebanon"},
		{"empty", "", ""},
		{"suffix only", "Governorate", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShortArea(tt.area))
		})
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{"one", "1", 1},
		{"zero", "0", 0},
		{"padded", "  1 ", 1},
		{"float truncates", "1.9", 1},
		{"float string zero", "0.0", 0},
		{"empty", "", 0},
		{"blank", "   ", 0},
		{"junk", "yes", 0},
		{"negative clamped", "-3", 0},
		{"large", "12", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFlag(tt.raw))
		})
	}
}

func TestClampBinary(t *testing.T) {
	assert.Equal(t, 0, ClampBinary(0))
	assert.Equal(t, 1, ClampBinary(1))
	assert.Equal(t, 1, ClampBinary(7))
}

func TestClassifyCondition(t *testing.T) {
	tests := []struct {
		name           string
		bad, acc, good int
		expected       Condition
	}{
		{"all zero is unknown", 0, 0, 0, ConditionUnknown},
		{"bad wins", 2, 1, 0, ConditionBad},
		{"acceptable wins", 0, 3, 1, ConditionAcceptable},
		{"good wins", 0, 0, 1, ConditionGood},
		{"bad acceptable tie breaks bad", 2, 2, 1, ConditionBad},
		{"bad good tie breaks bad", 1, 0, 1, ConditionBad},
		{"acceptable good tie breaks acceptable", 0, 1, 1, ConditionAcceptable},
		{"three way tie breaks bad", 1, 1, 1, ConditionBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyCondition(tt.bad, tt.acc, tt.good))
		})
	}
}

func TestEnrichRecord(t *testing.T) {
	allCols := Columns{Town: true, ParksExist: true, ParksTriple: true, LightingTriple: true}

	t.Run("full row", func(t *testing.T) {
		raw := RawRecord{
			RefArea:         refMountLebanon,
			Town:            " Jounieh ",
			ParksExist:      "1",
			ParksBad:        "0",
			ParksAcceptable: "0",
			ParksGood:       "1",
			LightBad:        "1",
			LightAcceptable: "0",
			LightGood:       "0",
		}

		rec := EnrichRecord(raw, allCols)

		assert.Equal(t, "Jounieh", rec.Town)
		assert.Equal(t, "Mount Lebanon Governorate", rec.Area)
		assert.Equal(t, LevelGovernorate, rec.Level)
		assert.Equal(t, "Mount Lebanon", rec.AreaShort)
		assert.Equal(t, 1, rec.ParksExist)
		assert.Equal(t, ConditionGood, rec.ParkCondition)
		assert.Equal(t, ConditionBad, rec.LightingCondition)
	})

	t.Run("all park flags zero is unknown", func(t *testing.T) {
		raw := RawRecord{RefArea: refMountLebanon, Town: "A"}
		rec := EnrichRecord(raw, allCols)
		assert.Equal(t, ConditionUnknown, rec.ParkCondition)
	})

	t.Run("tie between bad and acceptable breaks bad", func(t *testing.T) {
		raw := RawRecord{
			RefArea:         refMountLebanon,
			ParksBad:        "2",
			ParksAcceptable: "2",
			ParksGood:       "1",
		}
		rec := EnrichRecord(raw, allCols)
		assert.Equal(t, ConditionBad, rec.ParkCondition)
	})

	t.Run("missing triple forces unknown", func(t *testing.T) {
		raw := RawRecord{RefArea: refMountLebanon, ParksBad: "1", ParksGood: "1"}
		rec := EnrichRecord(raw, Columns{Town: true, ParksExist: true})
		assert.Equal(t, ConditionUnknown, rec.ParkCondition)
		assert.Equal(t, ConditionUnknown, rec.LightingCondition)
		// Individual flags still normalize even when the triple is incomplete.
		assert.Equal(t, 1, rec.ParksBad)
	})

	t.Run("dirty parks_exist clamps to one", func(t *testing.T) {
		raw := RawRecord{RefArea: refMountLebanon, ParksExist: "3"}
		rec := EnrichRecord(raw, allCols)
		assert.Equal(t, 1, rec.ParksExist)
	})

	t.Run("deterministic", func(t *testing.T) {
		raw := RawRecord{RefArea: refMountLebanon, Town: "B", ParksExist: "1", ParksGood: "1"}
		assert.Equal(t, EnrichRecord(raw, allCols), EnrichRecord(raw, allCols))
	})
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("Governorate")
	assert.True(t, ok)
	assert.Equal(t, LevelGovernorate, level)

	_, ok = ParseLevel("governorate")
	assert.False(t, ok)

	_, ok = ParseLevel("")
	assert.False(t, ok)
}
