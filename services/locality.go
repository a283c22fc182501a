package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cuisine-scene/models"
)

// ErrRejectedInput is returned when a region name is not one of the known
// states. Callers are expected to ask again.
var ErrRejectedInput = errors.New("unknown state")

// StateCapitals maps each of the 50 U.S. states to its capital city.
var StateCapitals = map[string]string{
	"Alabama":        "Montgomery",
	"Alaska":         "Juneau",
	"Arizona":        "Phoenix",
	"Arkansas":       "Little Rock",
	"California":     "Sacramento",
	"Colorado":       "Denver",
	"Connecticut":    "Hartford",
	"Delaware":       "Dover",
	"Florida":        "Tallahassee",
	"Georgia":        "Atlanta",
	"Hawaii":         "Honolulu",
	"Idaho":          "Boise",
	"Illinois":       "Springfield",
	"Indiana":        "Indianapolis",
	"Iowa":           "Des Moines",
	"Kansas":         "Topeka",
	"Kentucky":       "Frankfort",
	"Louisiana":      "Baton Rouge",
	"Maine":          "Augusta",
	"Maryland":       "Annapolis",
	"Massachusetts":  "Boston",
	"Michigan":       "Lansing",
	"Minnesota":      "Saint Paul",
	"Mississippi":    "Jackson",
	"Missouri":       "Jefferson City",
	"Montana":        "Helena",
	"Nebraska":       "Lincoln",
	"Nevada":         "Carson City",
	"New Hampshire":  "Concord",
	"New Jersey":     "Trenton",
	"New Mexico":     "Santa Fe",
	"New York":       "Albany",
	"North Carolina": "Raleigh",
	"North Dakota":   "Bismarck",
	"Ohio":           "Columbus",
	"Oklahoma":       "Oklahoma City",
	"Oregon":         "Salem",
	"Pennsylvania":   "Harrisburg",
	"Rhode Island":   "Providence",
	"South Carolina": "Columbia",
	"South Dakota":   "Pierre",
	"Tennessee":      "Nashville",
	"Texas":          "Austin",
	"Utah":           "Salt Lake City",
	"Vermont":        "Montpelier",
	"Virginia":       "Richmond",
	"Washington":     "Olympia",
	"West Virginia":  "Charleston",
	"Wisconsin":      "Madison",
	"Wyoming":        "Cheyenne",
}

// LocalityResolver maps a state name onto its capital.
type LocalityResolver struct {
	capitals map[string]string
	caser    cases.Caser
}

// NewLocalityResolver copies capitals, so later changes to the argument do
// not affect the resolver.
func NewLocalityResolver(capitals map[string]string) *LocalityResolver {
	table := make(map[string]string, len(capitals))
	for state, city := range capitals {
		table[state] = city
	}
	return &LocalityResolver{
		capitals: table,
		caser:    cases.Title(language.English),
	}
}

// Normalize trims surrounding whitespace and title-cases every word.
func (r *LocalityResolver) Normalize(name string) string {
	return r.caser.String(strings.TrimSpace(name))
}

// Resolve looks up the normalized region name. It never matches partially.
func (r *LocalityResolver) Resolve(regionName string) (models.Locality, error) {
	state := r.Normalize(regionName)
	city, ok := r.capitals[state]
	if !ok {
		return models.Locality{}, fmt.Errorf("%w: %q", ErrRejectedInput, regionName)
	}
	return models.Locality{Region: state, City: city}, nil
}

// States returns the known state names in alphabetical order.
func (r *LocalityResolver) States() []string {
	states := make([]string, 0, len(r.capitals))
	for s := range r.capitals {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}
