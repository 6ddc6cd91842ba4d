// ABOUTME: BlockQuote element renders quoted rich text

package elements

import "fbiarss/core/errors"

// BlockQuote is a quoted passage in the article body.
type BlockQuote struct {
	text string
}

// NewBlockQuote creates an empty BlockQuote.
func NewBlockQuote() *BlockQuote {
	return &BlockQuote{}
}

// SetText sets the quoted text.
func (q *BlockQuote) SetText(text string) *BlockQuote {
	q.text = text
	return q
}

// Text returns the quoted text.
func (q *BlockQuote) Text() string {
	return q.text
}

// Validate reports missing text.
func (q *BlockQuote) Validate() error {
	if q.text == "" {
		return errors.NewRequired("block quotes", "text")
	}
	return nil
}

// Render returns the blockquote fragment.
func (q *BlockQuote) Render() (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}
	return "<blockquote>" + q.text + "</blockquote>", nil
}
