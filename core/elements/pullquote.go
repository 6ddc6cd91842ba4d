// ABOUTME: PullQuote element renders an op-pull-quote figure
// ABOUTME: Carries the quoted text and an optional attribution

package elements

import (
	"fmt"
	"strings"

	"fbiarss/core/errors"
	"fbiarss/pkg/utils/markup"
)

// PullQuote is a quote pulled out of the body for emphasis.
type PullQuote struct {
	text        string
	attribution string
}

// NewPullQuote creates an empty PullQuote.
func NewPullQuote() *PullQuote {
	return &PullQuote{}
}

// SetText sets the quoted text, stripping any wrapping paragraph tags.
func (p *PullQuote) SetText(text string) *PullQuote {
	p.text = markup.StripWrapper(text)
	return p
}

// SetAttribution sets who the quote is attributed to.
func (p *PullQuote) SetAttribution(attribution string) *PullQuote {
	p.attribution = attribution
	return p
}

// Validate reports a missing quote text.
func (p *PullQuote) Validate() error {
	if p.text == "" {
		return errors.NewRequired("pull quotes", "text")
	}
	return nil
}

// Render returns the figure fragment.
func (p *PullQuote) Render() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<figure class="op-pull-quote"><aside>`)
	b.WriteString(p.text)
	if p.attribution != "" {
		fmt.Fprintf(&b, "<cite>%s</cite>", p.attribution)
	}
	b.WriteString("</aside></figure>")
	return b.String(), nil
}
