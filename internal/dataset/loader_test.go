package dataset

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
)

const fixtureCSV = `refArea, Town ,Existence of public parks - exists,State of public parks - bad,State of public parks - acceptable,State of public parks - good,State of the lighting network - bad,State of the lighting network - acceptable,State of the lighting network - good
http://dbpedia.org/resource/Mount_Lebanon_Governorate,Jounieh,1,0,0,1,0,1,0
http://dbpedia.org/resource/Baabda_District,Jounieh,0,0,0,0,1,0,0
http://dbpedia.org/resource/North_Governorate,Tripoli,0,1,1,0,0,0,1
`

func TestRead(t *testing.T) {
	fixed := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	snap, err := Read(strings.NewReader(fixtureCSV), "fixture")
	require.NoError(t, err)

	assert.Equal(t, "fixture", snap.Source)
	assert.Equal(t, fixed, snap.LoadedAt)
	require.Len(t, snap.Records, 3)

	assert.True(t, snap.Columns.Town)
	assert.True(t, snap.Columns.ParksExist)
	assert.True(t, snap.Columns.ParksTriple)
	assert.True(t, snap.Columns.LightingTriple)

	first := snap.Records[0]
	assert.Equal(t, "Mount Lebanon Governorate", first.Area)
	assert.Equal(t, domain.LevelGovernorate, first.Level)
	assert.Equal(t, "Mount Lebanon", first.AreaShort)
	assert.Equal(t, "Jounieh", first.Town)
	assert.Equal(t, 1, first.ParksExist)
	assert.Equal(t, domain.ConditionGood, first.ParkCondition)
	assert.Equal(t, domain.ConditionAcceptable, first.LightingCondition)

	second := snap.Records[1]
	assert.Equal(t, domain.LevelDistrict, second.Level)
	assert.Equal(t, domain.ConditionUnknown, second.ParkCondition)
	assert.Equal(t, domain.ConditionBad, second.LightingCondition)

	// bad/acceptable tie in the third row breaks toward Bad.
	assert.Equal(t, domain.ConditionBad, snap.Records[2].ParkCondition)
}

func TestReadIdempotent(t *testing.T) {
	a, err := Read(strings.NewReader(fixtureCSV), "fixture")
	require.NoError(t, err)
	b, err := Read(strings.NewReader(fixtureCSV), "fixture")
	require.NoError(t, err)

	assert.Equal(t, a.Records, b.Records)
	assert.Equal(t, a.Columns, b.Columns)
}

func TestReadMissingRefArea(t *testing.T) {
	csvData := "Town,Existence of public parks - exists\nJounieh,1\n"

	_, err := Read(strings.NewReader(csvData), "fixture")
	require.Error(t, err)

	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "refArea", missing.Column)
	assert.Contains(t, err.Error(), "refArea")
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""), "fixture")

	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
}

func TestReadOptionalColumnsDegrade(t *testing.T) {
	// No flag columns at all: flags zero, conditions Unknown, no crash.
	csvData := "refArea,Town\nhttp://dbpedia.org/resource/Akkar_Governorate,Halba\n"

	snap, err := Read(strings.NewReader(csvData), "fixture")
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)

	rec := snap.Records[0]
	assert.False(t, snap.Columns.ParksExist)
	assert.False(t, snap.Columns.ParksTriple)
	assert.Equal(t, 0, rec.ParksExist)
	assert.Equal(t, domain.ConditionUnknown, rec.ParkCondition)
	assert.Equal(t, domain.ConditionUnknown, rec.LightingCondition)
}

func TestReadRaggedRow(t *testing.T) {
	csvData := "refArea,Town,Existence of public parks - exists\nhttp://dbpedia.org/resource/Akkar_Governorate\n"

	snap, err := Read(strings.NewReader(csvData), "fixture")
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "", snap.Records[0].Town)
	assert.Equal(t, 0, snap.Records[0].ParksExist)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "DATA_FILE")
}

func TestSnapshotCheckReadiness(t *testing.T) {
	snap, err := Read(strings.NewReader(fixtureCSV), "fixture")
	require.NoError(t, err)
	assert.NoError(t, snap.CheckReadiness(context.Background()))

	empty := &Snapshot{}
	assert.Error(t, empty.CheckReadiness(context.Background()))
}
