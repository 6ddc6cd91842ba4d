// ABOUTME: Location element renders an op-geotag GeoJSON script block
// ABOUTME: Latitude and longitude are required, styling is optional

package elements

import (
	"encoding/json"
	"strings"

	"fbiarss/core/errors"
)

// StyleHybrid and StyleSatellite are the valid map styles.
const (
	StyleHybrid    = "hybrid"
	StyleSatellite = "satellite"
)

// geoJSON mirrors the geotag payload shape. Struct fields keep the key
// order deterministic.
type geoJSON struct {
	Type     string       `json:"type"`
	Geometry geoGeometry  `json:"geometry"`
	Props    *geoProperty `json:"properties,omitempty"`
}

type geoGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type geoProperty struct {
	Title  string `json:"title,omitempty"`
	Radius int    `json:"radius,omitempty"`
	Pivot  *bool  `json:"pivot,omitempty"`
	Style  string `json:"style,omitempty"`
}

// Location pins a geographic point, standalone or attached to a Media or
// Map element.
type Location struct {
	latitude  float64
	longitude float64
	hasCoords bool
	title     string
	radius    int
	pivot     *bool
	style     string
}

// NewLocation creates an empty Location.
func NewLocation() *Location {
	return &Location{}
}

// SetCoordinates sets the point's latitude and longitude. No range
// validation is applied.
func (l *Location) SetCoordinates(latitude, longitude float64) *Location {
	l.latitude = latitude
	l.longitude = longitude
	l.hasCoords = true
	return l
}

// Latitude returns the point's latitude.
func (l *Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the point's longitude.
func (l *Location) Longitude() float64 {
	return l.longitude
}

// SetTitle names the location.
func (l *Location) SetTitle(title string) *Location {
	l.title = title
	return l
}

// SetRadius sets the map boundary radius.
func (l *Location) SetRadius(radius int) *Location {
	l.radius = radius
	return l
}

// SetPivot centers the point in the geotag view. Unset means the viewer
// decides.
func (l *Location) SetPivot(pivot bool) *Location {
	l.pivot = &pivot
	return l
}

// SetStyle sets the map style. Anything but hybrid or satellite is
// ignored.
func (l *Location) SetStyle(style string) *Location {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == StyleHybrid || style == StyleSatellite {
		l.style = style
	}
	return l
}

// Style returns the map style, empty if unset.
func (l *Location) Style() string {
	return l.style
}

// Validate reports missing coordinates.
func (l *Location) Validate() error {
	if !l.hasCoords {
		return errors.NewRequired("locations", "latitude and longitude")
	}
	return nil
}

// Render returns the op-geotag script fragment.
func (l *Location) Render() (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}

	payload := geoJSON{
		Type: "Feature",
		Geometry: geoGeometry{
			Type:        "Point",
			Coordinates: [2]float64{l.latitude, l.longitude},
		},
	}

	if l.title != "" || l.radius != 0 || l.pivot != nil || l.style != "" {
		payload.Props = &geoProperty{
			Title:  l.title,
			Radius: l.radius,
			Pivot:  l.pivot,
			Style:  l.style,
		}
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	return `<script type="application/json" class="op-geotag">` + string(encoded) + `</script>`, nil
}
