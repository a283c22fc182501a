package models

// Locality is a resolved search scope: a state and its capital city.
type Locality struct {
	Region string
	City   string
}

// String returns the canonical "City, Region" search string.
func (l Locality) String() string {
	return l.City + ", " + l.Region
}
