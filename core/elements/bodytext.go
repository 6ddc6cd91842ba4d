// ABOUTME: BodyText element renders one paragraph of article text

package elements

import (
	"fbiarss/core/errors"
	"fbiarss/pkg/utils/markup"
)

// BodyText is one paragraph of the article body.
type BodyText struct {
	text string
}

// NewBodyText creates an empty BodyText.
func NewBodyText() *BodyText {
	return &BodyText{}
}

// SetText sets the paragraph text. A single outer <p> wrapper is stripped
// so caller-supplied rich text nests cleanly.
func (t *BodyText) SetText(text string) *BodyText {
	t.text = markup.StripWrapper(text)
	return t
}

// Text returns the paragraph text.
func (t *BodyText) Text() string {
	return t.text
}

// Validate reports missing text.
func (t *BodyText) Validate() error {
	if t.text == "" {
		return errors.NewRequired("body texts", "text")
	}
	return nil
}

// Render returns the paragraph fragment.
func (t *BodyText) Render() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return "<p>" + t.text + "</p>", nil
}
