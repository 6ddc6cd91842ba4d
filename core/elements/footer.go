// ABOUTME: Footer element renders article credits and copyright
// ABOUTME: Requires at least one of copyright or credits

package elements

import (
	"strings"

	"fbiarss/core/errors"
)

// Footer closes the article with credits and copyright details.
type Footer struct {
	credits   []string
	copyright string
}

// NewFooter creates an empty Footer.
func NewFooter() *Footer {
	return &Footer{}
}

// AddCredit appends one credit line.
func (f *Footer) AddCredit(credit string) *Footer {
	f.credits = append(f.credits, credit)
	return f
}

// SetCredits replaces the credit lines.
func (f *Footer) SetCredits(credits []string) *Footer {
	f.credits = credits
	return f
}

// Credits returns the non-empty credit lines.
func (f *Footer) Credits() []string {
	var out []string
	for _, credit := range f.credits {
		if credit != "" {
			out = append(out, credit)
		}
	}
	return out
}

// SetCopyright sets the copyright line.
func (f *Footer) SetCopyright(copyright string) *Footer {
	f.copyright = copyright
	return f
}

// Validate reports a footer with neither copyright nor credits.
func (f *Footer) Validate() error {
	if len(f.Credits()) == 0 && f.copyright == "" {
		return errors.NewInvalid("footers", "credits",
			"either copyright or credits are required for all footers")
	}
	return nil
}

// Render returns the footer fragment. A single credit is inlined; multiple
// credits are individually paragraph-wrapped.
func (f *Footer) Render() (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<footer>")

	if f.copyright != "" {
		b.WriteString("<small>" + f.copyright + "</small>")
	}

	if credits := f.Credits(); len(credits) > 0 {
		b.WriteString("<aside>")
		if len(credits) > 1 {
			for _, credit := range credits {
				b.WriteString("<p>" + credit + "</p>")
			}
		} else {
			b.WriteString(credits[0])
		}
		b.WriteString("</aside>")
	}

	b.WriteString("</footer>")
	return b.String(), nil
}
