// ABOUTME: Video element renders a figure with a video player and attachments
// ABOUTME: Adds loop mode, autoplay/controls toggles and a poster frame

package elements

import (
	"fmt"
	"strings"

	"fbiarss/core/errors"
	"fbiarss/pkg/utils/urlutil"
)

// loopModes maps accepted loop tokens to the canonical attribute value.
// The empty key allows explicitly clearing the mode.
var loopModes = map[string]string{
	"":     "",
	"loop": "loop",
	"fade": "data-fade",
}

// Video is a video displayed in the article body or header.
type Video struct {
	Media

	videoType       string
	posterFrame     string
	posterFrameErr  error
	loopMode        string
	autoPlay        bool
	controlsEnabled bool
}

// NewVideo creates a Video with looping, autoplay and player controls
// enabled.
func NewVideo() *Video {
	return &Video{
		loopMode:        "loop",
		autoPlay:        true,
		controlsEnabled: true,
	}
}

// SetType sets the MIME type emitted on the <source> element.
func (v *Video) SetType(videoType string) *Video {
	v.videoType = videoType
	return v
}

// SetLoopMode sets the looping behavior: loop, fade, or the empty string
// to clear. Unrecognized values leave the prior mode unchanged.
func (v *Video) SetLoopMode(loopMode string) *Video {
	key := strings.ToLower(strings.TrimSpace(loopMode))
	if canonical, ok := loopModes[key]; ok {
		v.loopMode = canonical
	} else if key == "data-fade" {
		v.loopMode = key
	}
	return v
}

// LoopMode returns the canonical loop mode.
func (v *Video) LoopMode() string {
	return v.loopMode
}

// SetAutoPlayEnabled re-enables autoplay.
func (v *Video) SetAutoPlayEnabled() *Video {
	v.autoPlay = true
	return v
}

// SetAutoPlayDisabled disables autoplay.
func (v *Video) SetAutoPlayDisabled() *Video {
	v.autoPlay = false
	return v
}

// SetControlsEnabled re-enables the player controls.
func (v *Video) SetControlsEnabled() *Video {
	v.controlsEnabled = true
	return v
}

// SetControlsDisabled hides the player controls.
func (v *Video) SetControlsDisabled() *Video {
	v.controlsEnabled = false
	return v
}

// SetPosterFrame sets the poster image shown before playback. The value
// must be a valid URL; an invalid one is recorded and surfaces at render.
func (v *Video) SetPosterFrame(posterFrame string) *Video {
	if !urlutil.IsValidURL(posterFrame) {
		v.posterFrameErr = errors.NewInvalid("videos", "poster frame",
			fmt.Sprintf("poster frame (%s) must be a valid URL for all videos", posterFrame))
		return v
	}
	v.posterFrame = posterFrame
	v.posterFrameErr = nil
	return v
}

// Validate reports a missing or invalid source, or a bad poster frame.
func (v *Video) Validate() error {
	if err := v.validateSource("videos"); err != nil {
		return err
	}
	return v.posterFrameErr
}

// Render returns the figure fragment.
func (v *Video) Render() (string, error) {
	if err := v.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<figure" + v.figureAttrs() + ">")

	b.WriteString("<video")
	if v.loopMode != "" {
		b.WriteString(" " + v.loopMode)
	}
	if !v.autoPlay {
		b.WriteString(" data-fb-disable-autoplay")
	}
	if !v.controlsEnabled {
		b.WriteString(" data-fb-disable-controls")
	}
	b.WriteString(">")

	fmt.Fprintf(&b, `<source src="%s"`, v.source)
	if v.videoType != "" {
		fmt.Fprintf(&b, ` type="%s"`, v.videoType)
	}
	b.WriteString("/></video>")

	if v.posterFrame != "" {
		fmt.Fprintf(&b, `<img src="%s"/>`, v.posterFrame)
	}

	attachments, err := v.renderAttachments()
	if err != nil {
		return "", err
	}
	b.WriteString(attachments)

	b.WriteString("</figure>")
	return b.String(), nil
}
