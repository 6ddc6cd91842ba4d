// ABOUTME: Listing element renders an ordered or unordered list

package elements

import "strings"

// Listing is a list of content items, ordered or unordered. An empty
// listing renders to nothing.
type Listing struct {
	items   []string
	ordered bool
}

// NewListing creates an empty unordered Listing.
func NewListing() *Listing {
	return &Listing{}
}

// AddItem appends one list item.
func (l *Listing) AddItem(item string) *Listing {
	l.items = append(l.items, item)
	return l
}

// SetItems replaces the list items.
func (l *Listing) SetItems(items []string) *Listing {
	l.items = items
	return l
}

// Items returns the list items.
func (l *Listing) Items() []string {
	return l.items
}

// SetOrdered chooses between <ol> and <ul>.
func (l *Listing) SetOrdered(ordered bool) *Listing {
	l.ordered = ordered
	return l
}

// Validate always succeeds; an empty listing is simply skipped.
func (l *Listing) Validate() error {
	return nil
}

// Render returns the list fragment.
func (l *Listing) Render() (string, error) {
	if len(l.items) == 0 {
		return "", nil
	}

	opening, closing := "<ul>", "</ul>"
	if l.ordered {
		opening, closing = "<ol>", "</ol>"
	}

	var b strings.Builder
	b.WriteString(opening)
	for _, item := range l.items {
		b.WriteString("<li>" + item + "</li>")
	}
	b.WriteString(closing)

	return b.String(), nil
}
