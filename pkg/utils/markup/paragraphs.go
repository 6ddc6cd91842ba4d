// ABOUTME: Paragraph-tag helpers for normalizing caller-supplied rich text
// ABOUTME: Strips wrapper tags and detects unbalanced <p> markup

package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var paragraphTag = regexp.MustCompile(`(?i)</?p(\s[^>]*)?>`)

// Prefixes tried, in order, at each end of the text. Both may strip, so a
// leading "<p></p>" disappears entirely.
var (
	beginPrefixes = []string{"<p>", "</p>"}
	endSuffixes   = []string{"</p>", "<p>"}
)

// StripBeginEndParagraphs trims a single leading and/or trailing <p> or </p>
// wrapper, case-insensitively, without touching interior structure.
func StripBeginEndParagraphs(text string, stripStart, stripEnd bool) string {
	if stripStart {
		for _, prefix := range beginPrefixes {
			if len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix) {
				text = text[len(prefix):]
			}
		}
	}

	if stripEnd {
		for _, suffix := range endSuffixes {
			if len(text) >= len(suffix) && strings.EqualFold(text[len(text)-len(suffix):], suffix) {
				text = text[:len(text)-len(suffix)]
			}
		}
	}

	return text
}

// StripWrapper is StripBeginEndParagraphs with both ends enabled.
func StripWrapper(text string) string {
	return StripBeginEndParagraphs(text, true, true)
}

// BalancedParagraphs reports whether fragment contains as many <p> opening
// tags as </p> closing tags. Self-closing tags are ignored.
func BalancedParagraphs(fragment string) bool {
	z := html.NewTokenizer(strings.NewReader(fragment))

	opens, closes := 0, 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		name, _ := z.TagName()
		if string(name) != "p" {
			continue
		}

		switch tt {
		case html.StartTagToken:
			opens++
		case html.EndTagToken:
			closes++
		}
	}

	return opens == closes
}

// StripParagraphTags removes every <p ...> and </p> occurrence from s. Used
// to repair fragments whose paragraph markup is unbalanced.
func StripParagraphTags(s string) string {
	return paragraphTag.ReplaceAllString(s, "")
}
