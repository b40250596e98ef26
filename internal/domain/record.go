package domain

// Level is the administrative subdivision level derived from an area label.
type Level string

const (
	LevelGovernorate Level = "Governorate"
	LevelDistrict    Level = "District"
	LevelOther       Level = "Other"
)

// ParseLevel validates a level name coming from an API query.
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelGovernorate, LevelDistrict, LevelOther:
		return Level(s), true
	default:
		return "", false
	}
}

// Condition is the collapsed bad/acceptable/good survey label.
type Condition string

const (
	ConditionBad        Condition = "Bad"
	ConditionAcceptable Condition = "Acceptable"
	ConditionGood       Condition = "Good"
	ConditionUnknown    Condition = "Unknown"
)

// RawRecord is one CSV row after header renaming, all fields still strings.
// Absent columns read as empty strings; Columns tracks real presence.
type RawRecord struct {
	RefArea         string
	Town            string
	ParksExist      string
	ParksBad        string
	ParksAcceptable string
	ParksGood       string
	LightBad        string
	LightAcceptable string
	LightGood       string
}

// Columns records which optional column groups were present in the source
// file. Condition fields stay Unknown when their triple is incomplete, and
// the existence split reports "No data" when parks_exist is absent.
type Columns struct {
	Town           bool
	ParksExist     bool
	ParksTriple    bool
	LightingTriple bool
}

// SurveyRecord is the enriched, immutable representation of one row.
type SurveyRecord struct {
	RefArea   string `json:"ref_area"`
	Town      string `json:"town"`
	Area      string `json:"area"`
	Level     Level  `json:"level"`
	AreaShort string `json:"area_short"`

	ParksExist      int `json:"parks_exist"`
	ParksBad        int `json:"parks_bad"`
	ParksAcceptable int `json:"parks_acceptable"`
	ParksGood       int `json:"parks_good"`
	LightBad        int `json:"light_bad"`
	LightAcceptable int `json:"light_acceptable"`
	LightGood       int `json:"light_good"`

	ParkCondition     Condition `json:"park_condition"`
	LightingCondition Condition `json:"lighting_condition"`
}
