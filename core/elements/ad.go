// ABOUTME: Ad element renders an op-ad figure with an iframe
// ABOUTME: Dual mode: iframe src for URLs, inline body for raw embed markup

package elements

import (
	"fmt"
	"strings"

	"fbiarss/core/errors"
	"fbiarss/pkg/utils/markup"
	"fbiarss/pkg/utils/urlutil"
)

// Ad is an advertisement placed in the article body or declared in the
// header as an auto-placement template.
type Ad struct {
	source    string
	width     int
	height    int
	isDefault bool
}

// NewAd creates an empty Ad.
func NewAd() *Ad {
	return &Ad{}
}

// SetSource sets the ad source: either a URL or raw embed markup. A single
// paragraph wrapper around pasted markup is stripped.
func (a *Ad) SetSource(source string) *Ad {
	source = markup.StripWrapper(source)
	if source != "" {
		a.source = source
	}
	return a
}

// Source returns the ad source.
func (a *Ad) Source() string {
	return a.source
}

// SetWidth sets the iframe width in pixels.
func (a *Ad) SetWidth(width int) *Ad {
	a.width = width
	return a
}

// SetHeight sets the iframe height in pixels.
func (a *Ad) SetHeight(height int) *Ad {
	a.height = height
	return a
}

// SetDefault marks this ad as the default template among the header's
// auto-placement ads.
func (a *Ad) SetDefault(isDefault bool) *Ad {
	a.isDefault = isDefault
	return a
}

// Validate reports a missing source.
func (a *Ad) Validate() error {
	if a.source == "" {
		return errors.NewRequired("ads", "source")
	}
	return nil
}

// Render returns the op-ad figure fragment.
func (a *Ad) Render() (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	class := "op-ad"
	if a.isDefault {
		class += " op-ad-default"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<figure class="%s"><iframe`, class)

	if a.height > 0 {
		fmt.Fprintf(&b, ` height="%d"`, a.height)
	}

	if urlutil.IsValidURL(a.source) {
		if a.width > 0 {
			fmt.Fprintf(&b, ` width="%d"`, a.width)
		}
		fmt.Fprintf(&b, ` src="%s">`, a.source)
	} else {
		b.WriteString(">")
		b.WriteString(a.source)
	}

	b.WriteString("</iframe></figure>")
	return b.String(), nil
}
