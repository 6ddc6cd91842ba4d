// ABOUTME: Map element renders an op-map figure pinned to a geotagged location
// ABOUTME: Optionally carries a caption and an audio annotation

package elements

import (
	"strings"

	"fbiarss/core/errors"
)

// Map is a geographic map with a pinned location.
type Map struct {
	caption  *Caption
	audio    *Audio
	location *Location
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{}
}

// SetCaption attaches a descriptive caption.
func (m *Map) SetCaption(caption *Caption) *Map {
	m.caption = caption
	return m
}

// CreateCaption attaches a new caption with the given title and returns
// it for further configuration.
func (m *Map) CreateCaption(title string) *Caption {
	caption := NewCaption().SetTitle(title)
	m.caption = caption
	return caption
}

// SetAudio attaches a pre-configured audio annotation.
func (m *Map) SetAudio(audio *Audio) *Map {
	m.audio = audio
	return m
}

// CreateAudio attaches a new audio annotation with the given source and
// returns it for further configuration.
func (m *Map) CreateAudio(source string) *Audio {
	audio := NewAudio().SetSource(source)
	m.audio = audio
	return audio
}

// SetLocation attaches a pre-configured location.
func (m *Map) SetLocation(location *Location) *Map {
	m.location = location
	return m
}

// CreateLocation attaches a new location at the given coordinates and
// returns it for further configuration.
func (m *Map) CreateLocation(latitude, longitude float64) *Location {
	location := NewLocation().SetCoordinates(latitude, longitude)
	m.location = location
	return location
}

// Validate reports a missing location.
func (m *Map) Validate() error {
	if m.location == nil {
		return errors.NewRequired("maps", "location")
	}
	return nil
}

// Render returns the figure fragment: caption, audio annotation and the
// geotag script, in that order.
func (m *Map) Render() (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<figure class="op-map">`)

	if m.caption != nil {
		rendered, err := m.caption.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}
	if m.audio != nil {
		rendered, err := m.audio.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}

	rendered, err := m.location.Render()
	if err != nil {
		return "", err
	}
	b.WriteString(rendered)

	b.WriteString("</figure>")
	return b.String(), nil
}
