package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideo_RenderDefaults(t *testing.T) {
	video := NewVideo()
	video.SetSource("https://video.example.com/a.mp4")

	got, err := video.Render()
	require.NoError(t, err)

	// loop on, autoplay and controls enabled by default
	assert.Equal(t,
		`<figure><video loop><source src="https://video.example.com/a.mp4"/></video></figure>`,
		got)
}

func TestVideo_RenderFullyConfigured(t *testing.T) {
	video := NewVideo().
		SetType("video/mp4").
		SetLoopMode("fade").
		SetAutoPlayDisabled().
		SetControlsDisabled().
		SetPosterFrame("https://img.example.com/poster.jpg")
	video.SetSource("https://video.example.com/a.mp4").
		SetLikesEnabled(true).
		SetPresentation("fit")

	got, err := video.Render()
	require.NoError(t, err)

	assert.Equal(t,
		`<figure data-feedback="fb:likes" data-mode="aspect-fit">`+
			`<video data-fade data-fb-disable-autoplay data-fb-disable-controls>`+
			`<source src="https://video.example.com/a.mp4" type="video/mp4"/></video>`+
			`<img src="https://img.example.com/poster.jpg"/>`+
			`</figure>`,
		got)
}

func TestVideo_LoopModeUnrecognizedKeepsPrior(t *testing.T) {
	video := NewVideo()
	assert.Equal(t, "loop", video.LoopMode())

	video.SetLoopMode("bounce")
	assert.Equal(t, "loop", video.LoopMode(), "unrecognized mode should not change the prior value")

	video.SetLoopMode("fade")
	assert.Equal(t, "data-fade", video.LoopMode())

	video.SetLoopMode("")
	assert.Equal(t, "", video.LoopMode(), "explicit empty clears the mode")
}

func TestVideo_RenderNoLoopMode(t *testing.T) {
	video := NewVideo().SetLoopMode("")
	video.SetSource("https://video.example.com/a.mp4")

	got, err := video.Render()
	require.NoError(t, err)

	assert.Equal(t,
		`<figure><video><source src="https://video.example.com/a.mp4"/></video></figure>`,
		got)
}

func TestVideo_InvalidPosterFrameFailsAtRender(t *testing.T) {
	video := NewVideo().SetPosterFrame("not a url")
	video.SetSource("https://video.example.com/a.mp4")

	_, err := video.Render()
	require.Error(t, err)
	assert.Equal(t, "poster frame (not a url) must be a valid URL for all videos", err.Error())

	// a later valid poster frame clears the recorded failure
	video.SetPosterFrame("https://img.example.com/poster.jpg")
	_, err = video.Render()
	require.NoError(t, err)
}
