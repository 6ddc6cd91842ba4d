// ABOUTME: Audio element renders an <audio> annotation with a source URL
// ABOUTME: Play mode is restricted to autoplay or muted

package elements

import (
	"fmt"
	"html"
	"strings"

	"fbiarss/core/errors"
	"fbiarss/pkg/utils/urlutil"
)

// PlayModeAutoplay and PlayModeMuted are the valid audio play modes.
const (
	PlayModeAutoplay = "autoplay"
	PlayModeMuted    = "muted"
)

// Audio is an audio annotation, standalone or attached to a Media or Map.
type Audio struct {
	source   string
	title    string
	playMode string
}

// NewAudio creates an empty Audio element.
func NewAudio() *Audio {
	return &Audio{}
}

// SetSource sets the audio source. Must be a valid URL by render time.
func (a *Audio) SetSource(source string) *Audio {
	a.source = source
	return a
}

// Source returns the audio source.
func (a *Audio) Source() string {
	return a.source
}

// SetTitle sets the annotation title, HTML-escaped into an attribute on
// render.
func (a *Audio) SetTitle(title string) *Audio {
	a.title = title
	return a
}

// SetPlayMode sets the playback mode. The value is kept as given and
// checked at render time; anything but autoplay or muted fails there.
func (a *Audio) SetPlayMode(playMode string) *Audio {
	a.playMode = strings.ToLower(strings.TrimSpace(playMode))
	return a
}

// SetMuted sets the muted play mode.
func (a *Audio) SetMuted() *Audio {
	a.playMode = PlayModeMuted
	return a
}

// SetAutoPlay sets the autoplay play mode.
func (a *Audio) SetAutoPlay() *Audio {
	a.playMode = PlayModeAutoplay
	return a
}

// Validate reports a missing or invalid source, or an unrecognized play
// mode.
func (a *Audio) Validate() error {
	if a.source == "" {
		return errors.NewRequired("audio", "source")
	}
	if !urlutil.IsValidURL(a.source) {
		return errors.NewInvalid("audio", "source",
			fmt.Sprintf("source (%s) must be a valid URL for all audio", a.source))
	}
	if a.playMode != "" && a.playMode != PlayModeAutoplay && a.playMode != PlayModeMuted {
		return errors.NewInvalidOption("audio", "play mode", a.playMode)
	}
	return nil
}

// Render returns the audio fragment.
func (a *Audio) Render() (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<audio")
	if a.playMode != "" {
		b.WriteString(" " + a.playMode)
	}
	if a.title != "" {
		fmt.Fprintf(&b, ` title="%s"`, html.EscapeString(a.title))
	}
	fmt.Fprintf(&b, `><source src="%s"></audio>`, a.source)

	return b.String(), nil
}
