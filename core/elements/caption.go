// ABOUTME: Caption element renders a figcaption with tiered styling classes
// ABOUTME: Unrecognized style tokens normalize to empty instead of failing

package elements

import (
	"strings"

	"fbiarss/core/errors"
)

// Style token tables. Keys are the accepted aliases, values the canonical
// op-* classes. Canonical classes are also accepted as input.
var (
	fontSizes = map[string]string{
		"medium":      "op-medium",
		"large":       "op-large",
		"extra-large": "op-extra-large",
		"extralarge":  "op-extra-large",
		"m":           "op-medium",
		"l":           "op-large",
		"xl":          "op-extra-large",
	}

	positionings = map[string]string{
		"below":           "op-vertical-below",
		"above":           "op-vertical-above",
		"center":          "op-vertical-center",
		"vertical-below":  "op-vertical-below",
		"vertical-above":  "op-vertical-above",
		"vertical-center": "op-vertical-center",
	}

	horizontalAlignments = map[string]string{
		"left":   "op-left",
		"center": "op-center",
		"right":  "op-right",
	}

	verticalAlignments = map[string]string{
		"bottom":          "op-vertical-bottom",
		"center":          "op-vertical-center",
		"top":             "op-vertical-top",
		"vertical-bottom": "op-vertical-bottom",
		"vertical-center": "op-vertical-center",
		"vertical-top":    "op-vertical-top",
	}
)

// normalizeToken resolves value against the table, accepting canonical
// classes as-is. Unrecognized input yields the empty string, never an
// error: style tokens are best-effort-discard.
func normalizeToken(table map[string]string, value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if canonical, ok := table[value]; ok {
		return canonical
	}
	for _, canonical := range table {
		if value == canonical {
			return value
		}
	}
	return ""
}

// captionTier groups the style tokens of one caption tier.
type captionTier struct {
	positioning         string
	horizontalAlignment string
	verticalAlignment   string
}

func (t captionTier) classes(extra ...string) string {
	tokens := make([]string, 0, 4)
	for _, token := range append([]string{t.positioning, t.horizontalAlignment, t.verticalAlignment}, extra...) {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}

// Caption annotates a media-bearing element with a title, optional body
// and credit, each tier independently styled.
type Caption struct {
	title  string
	body   string
	credit string

	fontSize   string
	bodyTier   captionTier
	titleTier  captionTier
	creditTier captionTier
}

// NewCaption creates an empty Caption.
func NewCaption() *Caption {
	return &Caption{}
}

// SetTitle sets the caption title.
func (c *Caption) SetTitle(title string) *Caption {
	c.title = title
	return c
}

// Title returns the caption title.
func (c *Caption) Title() string {
	return c.title
}

// SetBody sets the caption body, rendered between title and credit.
func (c *Caption) SetBody(body string) *Caption {
	c.body = body
	return c
}

// SetCredit sets the attribution to the content's originator.
func (c *Caption) SetCredit(credit string) *Caption {
	c.credit = credit
	return c
}

// SetFontSize sets the caption font size (medium, large, extra-large, or
// the short codes m, l, xl).
func (c *Caption) SetFontSize(fontSize string) *Caption {
	c.fontSize = normalizeToken(fontSizes, fontSize)
	return c
}

// FontSize returns the canonical font size class, empty if unset.
func (c *Caption) FontSize() string {
	return c.fontSize
}

// SetPositioning sets the caption positioning (above, below, center, or
// their vertical-* spellings).
func (c *Caption) SetPositioning(positioning string) *Caption {
	c.bodyTier.positioning = normalizeToken(positionings, positioning)
	return c
}

// Positioning returns the canonical positioning class, empty if unset.
func (c *Caption) Positioning() string {
	return c.bodyTier.positioning
}

// SetHorizontalAlignment sets the caption text alignment (left, center,
// right).
func (c *Caption) SetHorizontalAlignment(alignment string) *Caption {
	c.bodyTier.horizontalAlignment = normalizeToken(horizontalAlignments, alignment)
	return c
}

// SetVerticalAlignment sets the caption vertical alignment (top, center,
// bottom, or their vertical-* spellings).
func (c *Caption) SetVerticalAlignment(alignment string) *Caption {
	c.bodyTier.verticalAlignment = normalizeToken(verticalAlignments, alignment)
	return c
}

// SetTitlePositioning styles the title tier independently.
func (c *Caption) SetTitlePositioning(positioning string) *Caption {
	c.titleTier.positioning = normalizeToken(positionings, positioning)
	return c
}

// SetTitleHorizontalAlignment styles the title tier independently.
func (c *Caption) SetTitleHorizontalAlignment(alignment string) *Caption {
	c.titleTier.horizontalAlignment = normalizeToken(horizontalAlignments, alignment)
	return c
}

// SetTitleVerticalAlignment styles the title tier independently.
func (c *Caption) SetTitleVerticalAlignment(alignment string) *Caption {
	c.titleTier.verticalAlignment = normalizeToken(verticalAlignments, alignment)
	return c
}

// SetCreditPositioning styles the credit tier independently.
func (c *Caption) SetCreditPositioning(positioning string) *Caption {
	c.creditTier.positioning = normalizeToken(positionings, positioning)
	return c
}

// SetCreditHorizontalAlignment styles the credit tier independently.
func (c *Caption) SetCreditHorizontalAlignment(alignment string) *Caption {
	c.creditTier.horizontalAlignment = normalizeToken(horizontalAlignments, alignment)
	return c
}

// SetCreditVerticalAlignment styles the credit tier independently.
func (c *Caption) SetCreditVerticalAlignment(alignment string) *Caption {
	c.creditTier.verticalAlignment = normalizeToken(verticalAlignments, alignment)
	return c
}

// Validate reports a missing title.
func (c *Caption) Validate() error {
	if c.title == "" {
		return errors.NewRequired("captions", "title")
	}
	return nil
}

// Render returns the figcaption fragment.
func (c *Caption) Render() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString("<figcaption")
	if classes := c.bodyTier.classes(c.fontSize); classes != "" {
		b.WriteString(` class="` + classes + `"`)
	}
	b.WriteString(">")

	b.WriteString("<h1")
	if classes := c.titleTier.classes(); classes != "" {
		b.WriteString(` class="` + classes + `"`)
	}
	b.WriteString(">" + c.title + "</h1>")

	b.WriteString(c.body)

	if c.credit != "" {
		b.WriteString("<cite")
		if classes := c.creditTier.classes(); classes != "" {
			b.WriteString(` class="` + classes + `"`)
		}
		b.WriteString(">" + c.credit + "</cite>")
	}

	b.WriteString("</figcaption>")
	return b.String(), nil
}
