package markup

import "testing"

func TestStripBeginEndParagraphs_Wrapper(t *testing.T) {
	got := StripBeginEndParagraphs("<p>hello</p>", true, true)
	if got != "hello" {
		t.Errorf("StripBeginEndParagraphs = %q, want %q", got, "hello")
	}
}

func TestStripBeginEndParagraphs_OnlyOutermost(t *testing.T) {
	got := StripBeginEndParagraphs("<p>a</p><p>b</p>", true, true)
	if got != "a</p><p>b" {
		t.Errorf("StripBeginEndParagraphs = %q, want %q", got, "a</p><p>b")
	}
}

func TestStripBeginEndParagraphs_CaseInsensitive(t *testing.T) {
	got := StripBeginEndParagraphs("<P>shout</P>", true, true)
	if got != "shout" {
		t.Errorf("StripBeginEndParagraphs = %q, want %q", got, "shout")
	}
}

func TestStripBeginEndParagraphs_StartOnly(t *testing.T) {
	got := StripBeginEndParagraphs("<p>keep tail</p>", true, false)
	if got != "keep tail</p>" {
		t.Errorf("StripBeginEndParagraphs = %q, want %q", got, "keep tail</p>")
	}
}

func TestStripBeginEndParagraphs_EndOnly(t *testing.T) {
	got := StripBeginEndParagraphs("<p>keep head</p>", false, true)
	if got != "<p>keep head" {
		t.Errorf("StripBeginEndParagraphs = %q, want %q", got, "<p>keep head")
	}
}

func TestStripBeginEndParagraphs_NoWrapper(t *testing.T) {
	got := StripBeginEndParagraphs("plain text", true, true)
	if got != "plain text" {
		t.Errorf("StripBeginEndParagraphs = %q, want %q", got, "plain text")
	}
}

func TestStripBeginEndParagraphs_EmptyWrapperPair(t *testing.T) {
	// Both prefixes strip in sequence.
	got := StripBeginEndParagraphs("<p></p>x", true, false)
	if got != "x" {
		t.Errorf("StripBeginEndParagraphs = %q, want %q", got, "x")
	}
}

func TestBalancedParagraphs_Balanced(t *testing.T) {
	if !BalancedParagraphs("<p>a</p><p>b</p>") {
		t.Error("BalancedParagraphs should be true for matched tags")
	}
}

func TestBalancedParagraphs_Unbalanced(t *testing.T) {
	if BalancedParagraphs("<p>a<p>b</p>") {
		t.Error("BalancedParagraphs should be false for an extra opener")
	}
}

func TestBalancedParagraphs_NoParagraphs(t *testing.T) {
	if !BalancedParagraphs("<div>no paragraphs here</div>") {
		t.Error("BalancedParagraphs should be true with zero p tags")
	}
}

func TestStripParagraphTags(t *testing.T) {
	got := StripParagraphTags(`<p class="lead">a<p>b</p>`)
	if got != "ab" {
		t.Errorf("StripParagraphTags = %q, want %q", got, "ab")
	}
}
