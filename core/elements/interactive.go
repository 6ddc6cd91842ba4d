// ABOUTME: Interactive element renders an op-interactive figure with an iframe
// ABOUTME: Width is restricted to no-margin or column-width

package elements

import (
	"fmt"
	"strings"

	"fbiarss/core/errors"
	"fbiarss/pkg/utils/urlutil"
)

// WidthNoMargin and WidthColumnWidth are the valid interactive widths.
const (
	WidthNoMargin    = "no-margin"
	WidthColumnWidth = "column-width"
)

// Interactive embeds an interactive graphic.
type Interactive struct {
	source   string
	width    string
	height   int
	captions []*Caption
}

// NewInteractive creates an Interactive with the default no-margin width.
func NewInteractive() *Interactive {
	return &Interactive{width: WidthNoMargin}
}

// SetSource sets the graphic source: a URL or raw markup.
func (i *Interactive) SetSource(source string) *Interactive {
	i.source = source
	return i
}

// Source returns the graphic source.
func (i *Interactive) Source() string {
	return i.source
}

// SetWidth sets the width token. Anything but column-width falls back to
// no-margin.
func (i *Interactive) SetWidth(width string) *Interactive {
	if width == WidthColumnWidth {
		i.width = WidthColumnWidth
	} else {
		i.width = WidthNoMargin
	}
	return i
}

// Width returns the width token.
func (i *Interactive) Width() string {
	return i.width
}

// SetHeight sets the iframe height in pixels.
func (i *Interactive) SetHeight(height int) *Interactive {
	i.height = height
	return i
}

// AddCaption appends a caption below the graphic.
func (i *Interactive) AddCaption(caption *Caption) *Interactive {
	i.captions = append(i.captions, caption)
	return i
}

// Validate reports a missing source.
func (i *Interactive) Validate() error {
	if i.source == "" {
		return errors.NewRequired("interactives", "source")
	}
	return nil
}

// Render returns the op-interactive figure fragment.
func (i *Interactive) Render() (string, error) {
	if err := i.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<figure class="op-interactive">`)

	height := ""
	if i.height > 0 {
		height = fmt.Sprintf(` height="%d"`, i.height)
	}

	if urlutil.IsValidURL(i.source) {
		fmt.Fprintf(&b, `<iframe src="%s" width="%s"%s></iframe>`, i.source, i.width, height)
	} else {
		fmt.Fprintf(&b, `<iframe width="%s"%s>%s</iframe>`, i.width, height, i.source)
	}

	for _, caption := range i.captions {
		fragment, err := caption.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}

	b.WriteString("</figure>")
	return b.String(), nil
}
