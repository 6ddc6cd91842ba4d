// ABOUTME: Analytics element renders an op-tracker figure with an iframe
// ABOUTME: Same URL-vs-raw-markup dual mode as Ad

package elements

import (
	"fmt"

	"fbiarss/core/errors"
	"fbiarss/pkg/utils/urlutil"
)

// Analytics embeds a tracking pixel or script in the article.
type Analytics struct {
	source string
}

// NewAnalytics creates an empty Analytics element.
func NewAnalytics() *Analytics {
	return &Analytics{}
}

// SetSource sets the tracker source: a URL or raw markup.
func (a *Analytics) SetSource(source string) *Analytics {
	a.source = source
	return a
}

// Source returns the tracker source.
func (a *Analytics) Source() string {
	return a.source
}

// Validate reports a missing source.
func (a *Analytics) Validate() error {
	if a.source == "" {
		return errors.NewRequired("analytics", "source")
	}
	return nil
}

// Render returns the op-tracker figure fragment.
func (a *Analytics) Render() (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	if urlutil.IsValidURL(a.source) {
		return fmt.Sprintf(`<figure class="op-tracker"><iframe src="%s"></iframe></figure>`, a.source), nil
	}
	return fmt.Sprintf(`<figure class="op-tracker"><iframe>%s</iframe></figure>`, a.source), nil
}
