// ABOUTME: Media base shared by Image and Video figures
// ABOUTME: Carries source, captions, audio, location, feedback and presentation

package elements

import (
	"fmt"
	"strings"

	"fbiarss/core/errors"
	"fbiarss/pkg/utils/urlutil"
)

// presentations maps accepted presentation tokens (including short codes)
// to canonical data-mode values.
var presentations = map[string]string{
	"fit":             "aspect-fit",
	"fit-only":        "aspect-fit-only",
	"fullscreen":      "fullscreen",
	"non-interactive": "non-interactive",
	"f":               "aspect-fit",
	"fo":              "aspect-fit-only",
	"fs":              "fullscreen",
	"ni":              "non-interactive",
}

// FigureMedia is satisfied by Image and Video, the two element types a
// Header accepts as its top media.
type FigureMedia interface {
	ContentElement
	figureMedia()
}

// Media holds the fields Image and Video share. It is embedded, never used
// on its own.
type Media struct {
	source          string
	captions        []*Caption
	audio           *Audio
	location        *Location
	likesEnabled    bool
	commentsEnabled bool
	presentation    string
}

func (m *Media) figureMedia() {}

// SetSource sets the media source URL. Validity is checked at render.
func (m *Media) SetSource(source string) *Media {
	m.source = source
	return m
}

// Source returns the media source URL.
func (m *Media) Source() string {
	return m.source
}

// AddCaption appends a caption.
func (m *Media) AddCaption(caption *Caption) *Media {
	m.captions = append(m.captions, caption)
	return m
}

// CreateCaption builds a caption with the given title, attaches it and
// returns it for further styling.
func (m *Media) CreateCaption(title string) *Caption {
	caption := NewCaption().SetTitle(title)
	m.AddCaption(caption)
	return caption
}

// SetAudio attaches a pre-configured audio annotation.
func (m *Media) SetAudio(audio *Audio) *Media {
	m.audio = audio
	return m
}

// SetLocation attaches a geographic location.
func (m *Media) SetLocation(location *Location) *Media {
	m.location = location
	return m
}

// SetLikesEnabled toggles reader likes on this media.
func (m *Media) SetLikesEnabled(enabled bool) *Media {
	m.likesEnabled = enabled
	return m
}

// SetCommentsEnabled toggles reader comments on this media.
func (m *Media) SetCommentsEnabled(enabled bool) *Media {
	m.commentsEnabled = enabled
	return m
}

// SetPresentation sets the presentation mode (fit, fit-only, fullscreen,
// non-interactive, or the short codes f, fo, fs, ni). Unrecognized values
// normalize to empty.
func (m *Media) SetPresentation(presentation string) *Media {
	m.presentation = normalizeToken(presentations, presentation)
	return m
}

// Presentation returns the canonical presentation mode, empty if unset.
func (m *Media) Presentation() string {
	return m.presentation
}

// feedback returns the enabled feedback tokens, comma separated.
func (m *Media) feedback() string {
	var tokens []string
	if m.likesEnabled {
		tokens = append(tokens, "fb:likes")
	}
	if m.commentsEnabled {
		tokens = append(tokens, "fb:comments")
	}
	return strings.Join(tokens, ",")
}

// figureAttrs renders the data-feedback and data-mode attributes, each
// with a leading space, for the opening figure tag.
func (m *Media) figureAttrs() string {
	var b strings.Builder
	if feedback := m.feedback(); feedback != "" {
		fmt.Fprintf(&b, ` data-feedback="%s"`, feedback)
	}
	if m.presentation != "" {
		fmt.Fprintf(&b, ` data-mode="%s"`, m.presentation)
	}
	return b.String()
}

// renderAttachments renders the captions, audio and location fragments in
// that order.
func (m *Media) renderAttachments() (string, error) {
	var b strings.Builder

	for _, caption := range m.captions {
		fragment, err := caption.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}

	if m.audio != nil {
		fragment, err := m.audio.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}

	if m.location != nil {
		fragment, err := m.location.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}

	return b.String(), nil
}

// validateSource reports a missing or invalid source, phrased for the
// concrete element type.
func (m *Media) validateSource(element string) error {
	if m.source == "" {
		return errors.NewRequired(element, "source")
	}
	if !urlutil.IsValidURL(m.source) {
		return errors.NewInvalid(element, "source",
			fmt.Sprintf("source (%s) must be a valid URL for all %s", m.source, element))
	}
	return nil
}
