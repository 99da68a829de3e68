package model

import (
	"errors"
	"fmt"
	"math"
)

// MaxReviews is the number of grounding review snippets retained per landmark.
const MaxReviews = 2

// Landmark is a real-world place associated with a literary work.
// ID and CoverURL are assigned by the caller, not by provider adapters.
type Landmark struct {
	ID            string        `json:"id"`
	Name          LocalizedText `json:"name"`
	Lat           float64       `json:"lat"`
	Lng           float64       `json:"lng"`
	BookTitle     LocalizedText `json:"bookTitle"`
	Author        LocalizedText `json:"author"`
	Quote         LocalizedText `json:"quote"`
	TravelerNote  LocalizedText `json:"travelerNote"`
	CoverURL      string        `json:"coverUrl,omitempty"`
	Reviews       []string      `json:"reviews,omitempty"`
	GoogleMapsURI string        `json:"googleMapsUri,omitempty"`
}

var ErrInvalidLandmark = errors.New("invalid landmark")

// Validate checks the landmark invariant: all five localized text fields
// present in both languages and coordinates finite within WGS84 bounds.
// A failing record is a hard error for the producing adapter, never
// silently dropped.
func (l Landmark) Validate() error {
	fields := []struct {
		name string
		text LocalizedText
	}{
		{"name", l.Name},
		{"bookTitle", l.BookTitle},
		{"author", l.Author},
		{"quote", l.Quote},
		{"travelerNote", l.TravelerNote},
	}
	for _, f := range fields {
		if !f.text.Complete() {
			return fmt.Errorf("%w: missing %s", ErrInvalidLandmark, f.name)
		}
	}
	if math.IsNaN(l.Lat) || math.IsInf(l.Lat, 0) || l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidLandmark, l.Lat)
	}
	if math.IsNaN(l.Lng) || math.IsInf(l.Lng, 0) || l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidLandmark, l.Lng)
	}
	return nil
}
