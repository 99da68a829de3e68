package model

// City is a bundled catalog entry: localized name, map center and a fixed
// set of hand-authored landmarks. Loaded once at process start, immutable.
type City struct {
	Name      LocalizedText `json:"name"`
	Lat       float64       `json:"lat"`
	Lng       float64       `json:"lng"`
	Landmarks []Landmark    `json:"locations"`
}
