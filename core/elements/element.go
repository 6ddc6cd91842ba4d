// ABOUTME: ContentElement contract and the element kind registry
// ABOUTME: Maps kind identifiers to constructors for factory-based creation

package elements

import (
	"sort"
	"strings"

	"fbiarss/core/errors"
)

// ContentElement is one renderable building block of an article body.
// Render must be idempotent and side-effect-free on the element; it returns
// the element's HTML fragment or the first validation failure. Validate
// reports that failure without rendering.
type ContentElement interface {
	Render() (string, error)
	Validate() error
}

// registry maps kind identifiers to constructors. The set is closed: the
// kinds here are exactly the element types this package defines.
var registry = map[string]func() ContentElement{
	"ad":          func() ContentElement { return NewAd() },
	"analytics":   func() ContentElement { return NewAnalytics() },
	"audio":       func() ContentElement { return NewAudio() },
	"author":      func() ContentElement { return NewAuthor() },
	"blockquote":  func() ContentElement { return NewBlockQuote() },
	"bodytext":    func() ContentElement { return NewBodyText() },
	"caption":     func() ContentElement { return NewCaption() },
	"footer":      func() ContentElement { return NewFooter() },
	"html":        func() ContentElement { return NewHtml() },
	"image":       func() ContentElement { return NewImage() },
	"interactive": func() ContentElement { return NewInteractive() },
	"listing":     func() ContentElement { return NewListing() },
	"location":    func() ContentElement { return NewLocation() },
	"map":         func() ContentElement { return NewMap() },
	"pullquote":   func() ContentElement { return NewPullQuote() },
	"socialembed": func() ContentElement { return NewSocialEmbed() },
	"video":       func() ContentElement { return NewVideo() },
}

// New creates a content element by kind identifier. Unknown kinds return a
// ConfigurationError.
func New(kind string) (ContentElement, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, errors.NewUnknownElement(kind)
	}
	return ctor(), nil
}

// Kinds returns the known kind identifiers, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
