package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
)

func rec(town, areaShort string, level domain.Level, parksExist int) domain.SurveyRecord {
	return domain.SurveyRecord{
		Town:       town,
		Area:       areaShort + " " + string(level),
		AreaShort:  areaShort,
		Level:      level,
		ParksExist: parksExist,
	}
}

func TestBuildTownMapping(t *testing.T) {
	records := []domain.SurveyRecord{
		rec("Jounieh", "Keserwan", domain.LevelDistrict, 0),
		rec("Jounieh", "Mount Lebanon", domain.LevelGovernorate, 1),
		rec("Jounieh", "Keserwan", domain.LevelDistrict, 0),
		rec("Halba", "Akkar", domain.LevelGovernorate, 0),
	}

	m := BuildTownMapping(records)
	require.Len(t, m.Towns, 2)

	// Rows are town-name ordered.
	assert.Equal(t, "Halba", m.Towns[0].Town)
	assert.Equal(t, "Jounieh", m.Towns[1].Town)

	jounieh, ok := m.Lookup("Jounieh")
	require.True(t, ok)
	assert.Equal(t, "Keserwan", jounieh.District)
	assert.Equal(t, "Mount Lebanon", jounieh.Governorate)
	// Max across duplicate rows, not the last value seen.
	assert.Equal(t, 1, jounieh.ParksExist)

	halba, ok := m.Lookup("Halba")
	require.True(t, ok)
	assert.Equal(t, "", halba.District)
	assert.Equal(t, "Akkar", halba.Governorate)
	assert.Equal(t, 0, halba.ParksExist)
}

func TestBuildTownMappingMode(t *testing.T) {
	records := []domain.SurveyRecord{
		rec("A", "Baabda", domain.LevelDistrict, 0),
		rec("A", "Matn", domain.LevelDistrict, 0),
		rec("A", "Matn", domain.LevelDistrict, 0),
	}

	m := BuildTownMapping(records)
	row, ok := m.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "Matn", row.District)
}

func TestBuildTownMappingModeTie(t *testing.T) {
	records := []domain.SurveyRecord{
		rec("A", "Matn", domain.LevelDistrict, 0),
		rec("A", "Baabda", domain.LevelDistrict, 0),
	}

	m := BuildTownMapping(records)
	row, ok := m.Lookup("A")
	require.True(t, ok)
	// Deterministic tie-break: lexicographically smallest label.
	assert.Equal(t, "Baabda", row.District)
}

func TestBuildTownMappingSkipsBlankRows(t *testing.T) {
	records := []domain.SurveyRecord{
		rec("", "Akkar", domain.LevelGovernorate, 1),
		rec("A", "", domain.LevelGovernorate, 0),
		{Town: "A", Level: domain.LevelOther, AreaShort: "Lebanon", ParksExist: 1},
	}

	m := BuildTownMapping(records)
	// The blank-town row contributes nothing; town A has no leveled rows with
	// a usable AreaShort, so it appears in neither grouping.
	assert.Empty(t, m.Towns)

	_, ok := m.Lookup("A")
	assert.False(t, ok)
}

func TestBuildTownMappingParksExistAnyLevel(t *testing.T) {
	records := []domain.SurveyRecord{
		rec("A", "Akkar", domain.LevelGovernorate, 0),
		{Town: "A", Level: domain.LevelOther, AreaShort: "Lebanon", ParksExist: 1},
	}

	m := BuildTownMapping(records)
	row, ok := m.Lookup("A")
	require.True(t, ok)
	// The existence indicator considers rows of any level.
	assert.Equal(t, 1, row.ParksExist)
}

func TestGovernorates(t *testing.T) {
	records := []domain.SurveyRecord{
		rec("A", "North", domain.LevelGovernorate, 0),
		rec("B", "Akkar", domain.LevelGovernorate, 0),
		rec("C", "North", domain.LevelGovernorate, 0),
		rec("D", "Baabda", domain.LevelDistrict, 0),
		rec("E", "", domain.LevelGovernorate, 0),
	}

	assert.Equal(t, []string{"Akkar", "North"}, Governorates(records))
}

func TestGovernoratesEmpty(t *testing.T) {
	assert.Empty(t, Governorates(nil))
}
