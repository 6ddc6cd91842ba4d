package elements

import "testing"

func TestMap_RenderLocationOnly(t *testing.T) {
	element := NewMap()
	element.CreateLocation(51.5072, -0.1276)

	got, err := element.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := `<figure class="op-map">` +
		`<script type="application/json" class="op-geotag">` +
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[51.5072,-0.1276]}}` +
		`</script></figure>`
	if got != expected {
		t.Errorf("Render = %v, want %v", got, expected)
	}
}

func TestMap_RenderCaptionAudioLocationOrder(t *testing.T) {
	element := NewMap()
	element.CreateCaption("Central London")
	element.CreateAudio("https://cdn.example.com/street.mp3")
	element.CreateLocation(51.5072, -0.1276)

	got, err := element.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := `<figure class="op-map">` +
		"<figcaption><h1>Central London</h1></figcaption>" +
		`<audio><source src="https://cdn.example.com/street.mp3"></audio>` +
		`<script type="application/json" class="op-geotag">` +
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[51.5072,-0.1276]}}` +
		`</script></figure>`
	if got != expected {
		t.Errorf("Render = %v, want %v", got, expected)
	}
}

func TestMap_AttachmentErrorPropagates(t *testing.T) {
	element := NewMap()
	element.CreateLocation(51.5072, -0.1276)
	element.SetAudio(NewAudio()) // no source

	if _, err := element.Render(); err == nil {
		t.Error("Render should surface the audio's validation failure")
	}
}
