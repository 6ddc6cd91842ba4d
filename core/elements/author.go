// ABOUTME: Author element renders an <address> byline block
// ABOUTME: Role and contribution combine into the link's title attribute

package elements

import (
	"fmt"
	"html"
	"strings"

	"fbiarss/core/errors"
)

// Author is one contributor to the article.
type Author struct {
	name         string
	role         string
	contribution string
	bio          string
}

// NewAuthor creates an empty Author.
func NewAuthor() *Author {
	return &Author{}
}

// SetName sets the author's name.
func (a *Author) SetName(name string) *Author {
	a.name = name
	return a
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name
}

// SetRole sets the author's title or role.
func (a *Author) SetRole(role string) *Author {
	a.role = role
	return a
}

// SetContribution sets the author's contribution to this article.
func (a *Author) SetContribution(contribution string) *Author {
	a.contribution = contribution
	return a
}

// SetBio sets a short bio rendered after the byline link.
func (a *Author) SetBio(bio string) *Author {
	a.bio = bio
	return a
}

// Validate reports a missing name.
func (a *Author) Validate() error {
	if a.name == "" {
		return errors.NewRequired("authors", "name")
	}
	return nil
}

// Render returns the address fragment.
func (a *Author) Render() (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	title := a.role
	if a.contribution != "" {
		title += " (" + a.contribution + ")"
	}
	title = strings.TrimSpace(title)

	var b strings.Builder
	b.WriteString("<address>")
	if title != "" {
		fmt.Fprintf(&b, `<a title="%s">%s</a>`, html.EscapeString(title), a.name)
	} else {
		fmt.Fprintf(&b, "<a>%s</a>", a.name)
	}
	b.WriteString(a.bio)
	b.WriteString("</address>")

	return b.String(), nil
}
