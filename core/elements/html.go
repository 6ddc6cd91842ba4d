// ABOUTME: Html element passes pre-formatted HTML fragments through verbatim
// ABOUTME: Items with unbalanced <p> markup are repaired on add

package elements

import (
	"strings"

	"fbiarss/pkg/utils/markup"
)

// Html holds an ordered sequence of pre-formatted HTML strings, joined on
// render. It never fails validation: an empty Html renders to nothing.
type Html struct {
	items []string
}

// NewHtml creates an empty Html element.
func NewHtml() *Html {
	return &Html{}
}

// AddItem appends one HTML fragment. If the fragment's <p> tags are
// unbalanced, every paragraph tag is stripped from that item only.
func (h *Html) AddItem(item string) *Html {
	item = strings.TrimSpace(item)
	if item == "" {
		return h
	}

	if !markup.BalancedParagraphs(item) {
		item = markup.StripParagraphTags(item)
	}

	h.items = append(h.items, item)
	return h
}

// SetItems replaces the fragment sequence. Items are taken as given.
func (h *Html) SetItems(items []string) *Html {
	h.items = items
	return h
}

// Items returns the fragment sequence.
func (h *Html) Items() []string {
	return h.items
}

// Validate always succeeds; Html has no required fields.
func (h *Html) Validate() error {
	return nil
}

// Render joins the non-empty fragments.
func (h *Html) Render() (string, error) {
	var b strings.Builder
	for _, item := range h.items {
		if item == "" {
			continue
		}
		b.WriteString(item)
	}
	return b.String(), nil
}
