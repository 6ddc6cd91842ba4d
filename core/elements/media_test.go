package elements

import (
	"strings"
	"testing"

	"fbiarss/core/errors"
)

func TestImage_RenderMinimal(t *testing.T) {
	image := NewImage()
	image.SetSource("https://img.example.com/skyline.jpg")

	got, err := image.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := `<figure><img src="https://img.example.com/skyline.jpg"/></figure>`
	if got != expected {
		t.Errorf("Render = %v, want %v", got, expected)
	}
}

func TestImage_RenderWithFeedbackAndPresentation(t *testing.T) {
	image := NewImage()
	image.SetSource("https://img.example.com/skyline.jpg").
		SetLikesEnabled(true).
		SetCommentsEnabled(true).
		SetPresentation("fullscreen")

	got, err := image.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := `<figure data-feedback="fb:likes,fb:comments" data-mode="fullscreen">` +
		`<img src="https://img.example.com/skyline.jpg"/></figure>`
	if got != expected {
		t.Errorf("Render = %v, want %v", got, expected)
	}
}

func TestImage_RenderWithAttachments(t *testing.T) {
	image := NewImage()
	image.SetSource("https://img.example.com/skyline.jpg")
	image.CreateCaption("The skyline")
	image.SetAudio(NewAudio().SetSource("https://cdn.example.com/ambient.mp3"))
	image.SetLocation(NewLocation().SetCoordinates(40.7128, -74.006))

	got, err := image.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// caption, then audio, then location
	wantOrder := []string{
		`<img src="https://img.example.com/skyline.jpg"/>`,
		"<figcaption><h1>The skyline</h1></figcaption>",
		`<audio><source src="https://cdn.example.com/ambient.mp3"></audio>`,
		`class="op-geotag"`,
	}
	last := -1
	for _, fragment := range wantOrder {
		idx := strings.Index(got, fragment)
		if idx < 0 {
			t.Fatalf("Render missing fragment %q in %v", fragment, got)
		}
		if idx < last {
			t.Errorf("fragment %q out of order in %v", fragment, got)
		}
		last = idx
	}
}

func TestImage_AttachmentErrorPropagates(t *testing.T) {
	image := NewImage()
	image.SetSource("https://img.example.com/skyline.jpg")
	image.AddCaption(NewCaption()) // no title

	_, err := image.Render()
	if err == nil {
		t.Fatal("Render should surface the caption's validation failure")
	}
	if !errors.IsValidation(err) {
		t.Errorf("Render error = %T, want ValidationError", err)
	}
}

func TestMedia_PresentationAliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fit", "aspect-fit"},
		{"f", "aspect-fit"},
		{"fit-only", "aspect-fit-only"},
		{"fo", "aspect-fit-only"},
		{"fullscreen", "fullscreen"},
		{"fs", "fullscreen"},
		{"non-interactive", "non-interactive"},
		{"ni", "non-interactive"},
		{"cinematic", ""},
	}

	for _, tt := range tests {
		media := &Media{}
		media.SetPresentation(tt.input)
		if got := media.Presentation(); got != tt.want {
			t.Errorf("SetPresentation(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestImage_InvalidSourceURL(t *testing.T) {
	image := NewImage()
	image.SetSource("not a url")

	_, err := image.Render()
	if err == nil {
		t.Fatal("Render should fail for a non-URL source")
	}

	expected := "source (not a url) must be a valid URL for all media"
	if err.Error() != expected {
		t.Errorf("Render error = %v, want %v", err.Error(), expected)
	}
}
