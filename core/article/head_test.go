package article

import (
	"strings"
	"testing"

	"fbiarss/core/render"
)

func TestHead_RenderDefaults(t *testing.T) {
	got := NewHead().Render(render.Default())

	expected := "<head>" +
		`<meta charset="UTF-8">` +
		`<meta property="op:markup_version" content="v1.0">` +
		`<meta property="fb:use_automatic_ad_placement" content="false">` +
		"</head>"
	if got != expected {
		t.Errorf("Render = %v, want %v", got, expected)
	}
}

func TestHead_RenderFullyConfigured(t *testing.T) {
	head := NewHead().
		SetCanonicalLink("https://news.example.com/articles/42").
		SetArticleStyle("myStyle").
		SetUseAutomaticAdPlacement(true).
		SetTags("politics", "economy")

	got := head.Render(render.Default())

	expected := "<head>" +
		`<meta charset="UTF-8">` +
		`<link rel="canonical" href="https://news.example.com/articles/42">` +
		`<meta property="op:markup_version" content="v1.0">` +
		`<meta property="fb:use_automatic_ad_placement" content="true">` +
		`<meta property="fb:article_style" content="myStyle">` +
		`<meta property="op:tags" content="politics;economy">` +
		"</head>"
	if got != expected {
		t.Errorf("Render = %v, want %v", got, expected)
	}
}

func TestHead_NoCanonicalLinkByDefault(t *testing.T) {
	got := NewHead().Render(render.Default())

	if strings.Contains(got, "canonical") {
		t.Errorf("Render = %v, want no canonical link while unset", got)
	}
}

func TestHead_TagsSplitAndDeduplicated(t *testing.T) {
	head := NewHead().SetTags("a,b", "b", "c")

	got := head.Render(render.Default())
	if !strings.Contains(got, `<meta property="op:tags" content="a;b;c">`) {
		t.Errorf("Render = %v, want tags split on the default separator and de-duplicated", got)
	}
}

// The settings' list separator drives how tag input is split.
func TestHead_TagsUseSettingsListSeparator(t *testing.T) {
	head := NewHead().SetTags("a|b|a", "c")

	s := render.Default()
	s.ListSeparator = "|"

	got := head.Render(s)
	if !strings.Contains(got, `<meta property="op:tags" content="a;b;c">`) {
		t.Errorf("Render = %v, want tags split on the configured separator", got)
	}

	// with the default comma separator the same input stays unsplit
	got = head.Render(render.Default())
	if !strings.Contains(got, `<meta property="op:tags" content="a|b|a;c">`) {
		t.Errorf("Render = %v, want pipe-delimited input left whole under a comma separator", got)
	}
}

func TestHead_AddTagsAppends(t *testing.T) {
	head := NewHead().SetTags("a").AddTags("b", "a")

	got := head.Render(render.Default())
	if !strings.Contains(got, `<meta property="op:tags" content="a;b">`) {
		t.Errorf("Render = %v, want appended tags de-duplicated", got)
	}
}
