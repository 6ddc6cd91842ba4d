// ABOUTME: SocialEmbed element renders an op-social figure for third-party embeds
// ABOUTME: Supports Instagram, Facebook, Twitter, Vine and YouTube content

package elements

import (
	"fmt"
	"strings"

	"fbiarss/core/errors"
	"fbiarss/pkg/utils/urlutil"
)

// SocialEmbed is an embedded social-media post.
type SocialEmbed struct {
	source  string
	caption *Caption
}

// NewSocialEmbed creates an empty SocialEmbed.
func NewSocialEmbed() *SocialEmbed {
	return &SocialEmbed{}
}

// SetSource sets the embed source: either a URL or raw embed markup.
func (s *SocialEmbed) SetSource(source string) *SocialEmbed {
	s.source = source
	return s
}

// SetCaption attaches a descriptive caption.
func (s *SocialEmbed) SetCaption(caption *Caption) *SocialEmbed {
	s.caption = caption
	return s
}

// CreateCaption attaches a new caption with the given title and returns
// it for further configuration.
func (s *SocialEmbed) CreateCaption(title string) *Caption {
	caption := NewCaption().SetTitle(title)
	s.caption = caption
	return caption
}

// Validate reports a missing source.
func (s *SocialEmbed) Validate() error {
	if s.source == "" {
		return errors.NewRequired("social embeds", "source")
	}
	return nil
}

// Render returns the figure fragment. A URL source becomes the iframe
// src attribute; raw markup is enclosed as the iframe body.
func (s *SocialEmbed) Render() (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<figure class="op-social">`)
	if urlutil.IsValidURL(s.source) {
		fmt.Fprintf(&b, `<iframe src="%s"></iframe>`, s.source)
	} else {
		b.WriteString("<iframe>" + s.source + "</iframe>")
	}
	if s.caption != nil {
		rendered, err := s.caption.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}
	b.WriteString("</figure>")
	return b.String(), nil
}
