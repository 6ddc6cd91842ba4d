// ABOUTME: Header aggregates title, byline, dates, media and ad templates
// ABOUTME: Renders the <header> fragment of the embedded HTML document

package article

import (
	"fmt"
	"strings"
	"time"

	"fbiarss/core/elements"
	"fbiarss/core/errors"
	"fbiarss/core/render"
	"fbiarss/pkg/utils/dates"
)

// Header is the headline block of one article's embedded HTML document.
type Header struct {
	title         string
	subTitle      string
	kicker        string
	authors       []*elements.Author
	media         elements.FigureMedia
	ads           []*elements.Ad
	modifiedDate  time.Time
	publishedDate time.Time
}

// NewHeader creates an empty Header.
func NewHeader() *Header {
	return &Header{}
}

// SetTitle sets the article headline.
func (h *Header) SetTitle(title string) *Header {
	h.title = title
	return h
}

// Title returns the article headline.
func (h *Header) Title() string {
	return h.title
}

// SetSubTitle sets the secondary headline.
func (h *Header) SetSubTitle(subTitle string) *Header {
	h.subTitle = subTitle
	return h
}

// SetKicker sets the kicker line shown above the headline.
func (h *Header) SetKicker(kicker string) *Header {
	h.kicker = kicker
	return h
}

// AddAuthor appends a pre-configured author to the byline.
func (h *Header) AddAuthor(author *elements.Author) *Header {
	h.authors = append(h.authors, author)
	return h
}

// CreateAuthor appends a new author built from the given fields and
// returns it for further configuration.
func (h *Header) CreateAuthor(name, role, contribution, bio string) *elements.Author {
	author := elements.NewAuthor().
		SetName(name).
		SetRole(role).
		SetContribution(contribution).
		SetBio(bio)
	h.AddAuthor(author)
	return author
}

// Authors returns the byline authors in attachment order.
func (h *Header) Authors() []*elements.Author {
	return h.authors
}

// SetMedia sets the cover image or video.
func (h *Header) SetMedia(media elements.FigureMedia) *Header {
	h.media = media
	return h
}

// CreateMedia sets a new cover image or video of the given kind with the
// given source and returns it. Only image and video are valid kinds.
func (h *Header) CreateMedia(kind, source string) (elements.FigureMedia, error) {
	element, err := elements.New(kind)
	if err != nil {
		return nil, err
	}
	media, ok := element.(elements.FigureMedia)
	if !ok {
		return nil, errors.NewInvalidOption("headers", "media kind", kind)
	}
	switch m := media.(type) {
	case *elements.Image:
		m.SetSource(source)
	case *elements.Video:
		m.SetSource(source)
	}
	h.media = media
	return media, nil
}

// AddAd appends an auto-placement ad template.
func (h *Header) AddAd(ad *elements.Ad) *Header {
	h.ads = append(h.ads, ad)
	return h
}

// CreateAd appends a new ad template with the given source and returns it
// for further configuration.
func (h *Header) CreateAd(source string) *elements.Ad {
	ad := elements.NewAd().SetSource(source)
	h.AddAd(ad)
	return ad
}

// SetModifiedTime sets the last-modified instant. If the published date is
// still unset it is set to the same instant; once both are set, later
// calls leave the published date alone.
func (h *Header) SetModifiedTime(t time.Time) *Header {
	h.modifiedDate = t
	if h.publishedDate.IsZero() {
		h.publishedDate = t
	}
	return h
}

// SetModifiedDate parses value (epoch seconds, date string, or empty for
// now) and applies SetModifiedTime.
func (h *Header) SetModifiedDate(value string) *Header {
	return h.SetModifiedTime(dates.ParseOrNow(value))
}

// ModifiedTime returns the last-modified instant, zero if unset.
func (h *Header) ModifiedTime() time.Time {
	return h.modifiedDate
}

// SetPublishedTime sets the published instant, mirroring it into an unset
// modified date the same way SetModifiedTime mirrors the other direction.
func (h *Header) SetPublishedTime(t time.Time) *Header {
	h.publishedDate = t
	if h.modifiedDate.IsZero() {
		h.modifiedDate = t
	}
	return h
}

// SetPublishedDate parses value and applies SetPublishedTime.
func (h *Header) SetPublishedDate(value string) *Header {
	return h.SetPublishedTime(dates.ParseOrNow(value))
}

// PublishedTime returns the published instant, zero if unset.
func (h *Header) PublishedTime() time.Time {
	return h.publishedDate
}

// Render returns the <header> fragment: media, titles, byline, the two
// <time> elements and the ad template section, in that order.
func (h *Header) Render(s *render.Settings) (string, error) {
	var b strings.Builder
	b.WriteString("<header>")

	if h.media != nil {
		fragment, err := h.media.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}

	if h.title != "" {
		b.WriteString("<h1>" + h.title + "</h1>")
	}
	if h.subTitle != "" {
		b.WriteString("<h2>" + h.subTitle + "</h2>")
	}
	if h.kicker != "" {
		b.WriteString(`<h3 class="op-kicker">` + h.kicker + "</h3>")
	}

	for _, author := range h.authors {
		fragment, err := author.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}

	if !h.modifiedDate.IsZero() {
		fmt.Fprintf(&b, `<time class="op-modified" dateTime="%s">%s</time>`,
			s.FormatRSSTime(h.modifiedDate), s.FormatDisplayTime(h.modifiedDate))
	}
	if !h.publishedDate.IsZero() {
		fmt.Fprintf(&b, `<time class="op-published" dateTime="%s">%s</time>`,
			s.FormatRSSTime(h.publishedDate), s.FormatDisplayTime(h.publishedDate))
	}

	if len(h.ads) > 0 {
		b.WriteString(`<section class="op-ad-template">`)
		for _, ad := range h.ads {
			fragment, err := ad.Render()
			if err != nil {
				return "", err
			}
			b.WriteString(fragment)
		}
		b.WriteString("</section>")
	}

	b.WriteString("</header>")
	return b.String(), nil
}
