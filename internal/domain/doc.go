// Package domain models the Lebanese municipal public-spaces survey data
// (Public_spaces-Lebanon-2023, PKGCube).
//
// # Data Source
//
// The dataset is a single CSV, one row per town/area survey entry. Rows carry
// a hierarchical area reference, a town name, and 0/1 indicator columns for
// park existence and for the surveyed condition of parks and street lighting.
//
// # Dataset Conventions
//
// Area references ("refArea" column):
//
//	Linked-data style URIs whose last path segment names the administrative
//	area with underscores for spaces, e.g.
//	"http://dbpedia.org/resource/Mount_Lebanon_Governorate"
//	→ area label "Mount Lebanon Governorate".
//	The administrative level is encoded in the label itself: labels containing
//	"Governorate" are governorates, labels containing "District" are districts,
//	anything else (e.g. "Lebanon") is classified as Other. Substring matching
//	is deliberate — several district labels carry a ", Lebanon" suffix.
//
// Survey flags:
//
//	Seven indicator columns, nominally 0 or 1:
//	  "Existence of public parks - exists"            → parks_exist
//	  "State of public parks - bad/acceptable/good"   → parks_bad/acceptable/good
//	  "State of the lighting network - bad/..."       → light_bad/acceptable/good
//	Values are parsed leniently: blanks, non-numeric junk, and negatives all
//	coerce to 0; fractional values truncate toward zero. parks_exist is
//	additionally clamped to {0,1} since dirty rows occasionally carry larger
//	integers.
//
// Condition classification:
//
//	Each bad/acceptable/good triple collapses to a single label. All three
//	zero means the attribute was not surveyed → Unknown. Otherwise the label
//	with the largest flag wins, with ties broken in the fixed order
//	Bad, Acceptable, Good. The tie-break is an explicit contract, implemented
//	as ordered comparisons in [ClassifyCondition] rather than a map argmax.
//
// Towns appear in multiple rows (once per containing area level), so any
// per-town fact has to be reduced across duplicates; see the geo package.
package domain
