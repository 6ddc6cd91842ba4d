// ABOUTME: Article assembles head, header and content elements into one item
// ABOUTME: Renders the embedded HTML document and the RSS item fields

package article

import (
	"strings"

	"fbiarss/core/elements"
	"fbiarss/core/errors"
	"fbiarss/core/interfaces"
	"fbiarss/core/render"
	"fbiarss/pkg/utils/urlutil"
)

// Article is one Instant Article: RSS item fields plus the element tree
// that becomes the CDATA-embedded HTML document. Validation is lazy; any
// missing required field surfaces at render time.
type Article struct {
	title       string
	link        string
	guid        string
	description string
	pubDate     string
	authors     []string

	head   *Head
	header *Header
	elems  []elements.ContentElement

	manualContent string
	autoRender    bool
}

// NewArticle creates an Article with empty Head and Header.
func NewArticle() *Article {
	return &Article{
		head:       NewHead(),
		header:     NewHeader(),
		autoRender: true,
	}
}

// Head returns the article's metadata block.
func (a *Article) Head() *Head {
	return a.head
}

// Header returns the article's headline block.
func (a *Article) Header() *Header {
	return a.header
}

// SetTitle sets the item title and mirrors it into the header headline.
func (a *Article) SetTitle(title string) *Article {
	a.title = title
	a.header.SetTitle(title)
	return a
}

// Title returns the item title.
func (a *Article) Title() string {
	return a.title
}

// SetLink sets the item link and mirrors it into the head's canonical
// link.
func (a *Article) SetLink(link string) *Article {
	a.link = link
	a.head.SetCanonicalLink(link)
	return a
}

// Link returns the item link.
func (a *Article) Link() string {
	return a.link
}

// SetCanonicalLink sets the head's canonical link; a valid URL also
// becomes the item link.
func (a *Article) SetCanonicalLink(link string) *Article {
	a.head.SetCanonicalLink(link)
	if urlutil.IsValidURL(link) {
		a.link = link
	}
	return a
}

// SetGuid sets the item guid.
func (a *Article) SetGuid(guid string) *Article {
	a.guid = guid
	return a
}

// SetDescription sets the item description.
func (a *Article) SetDescription(description string) *Article {
	a.description = description
	return a
}

// SetPubDate sets the item publication date (epoch seconds or date
// string) and mirrors it into the header's published date.
func (a *Article) SetPubDate(value string) *Article {
	a.pubDate = value
	a.header.SetPublishedDate(value)
	return a
}

// SetModifiedDate sets the header's last-modified date.
func (a *Article) SetModifiedDate(value string) *Article {
	a.header.SetModifiedDate(value)
	return a
}

// AddAuthor appends an item-level author name.
func (a *Article) AddAuthor(author string) *Article {
	a.authors = append(a.authors, author)
	return a
}

// SetAuthors replaces the item-level author names.
func (a *Article) SetAuthors(authors []string) *Article {
	a.authors = authors
	return a
}

// SetTags replaces the head's tag set. Values may be individual tags or
// strings delimited by the settings' list separator.
func (a *Article) SetTags(tags ...string) *Article {
	a.head.SetTags(tags...)
	return a
}

// SetArticleStyle sets the head's named article style.
func (a *Article) SetArticleStyle(style string) *Article {
	a.head.SetArticleStyle(style)
	return a
}

// SetUseAutomaticAdPlacement toggles the head's automatic ad placement.
func (a *Article) SetUseAutomaticAdPlacement(use bool) *Article {
	a.head.SetUseAutomaticAdPlacement(use)
	return a
}

// AttachElement appends an externally configured content element.
func (a *Article) AttachElement(element elements.ContentElement) *Article {
	a.elems = append(a.elems, element)
	return a
}

// CreateElement creates a content element by kind, attaches it and
// returns it for configuration. Unknown kinds return a
// ConfigurationError.
func (a *Article) CreateElement(kind string) (elements.ContentElement, error) {
	element, err := elements.New(kind)
	if err != nil {
		return nil, err
	}
	a.AttachElement(element)
	return element, nil
}

// Elements returns the attached content elements in order.
func (a *Article) Elements() []elements.ContentElement {
	return a.elems
}

// SetContentEncoded supplies the full HTML document directly, disabling
// auto-generation entirely.
func (a *Article) SetContentEncoded(content string) *Article {
	a.manualContent = content
	a.autoRender = false
	return a
}

// ContentHTML returns the HTML document embedded in the item: either the
// caller-supplied content or the synthesized document built from head,
// header and the attached elements.
func (a *Article) ContentHTML(s *render.Settings) (string, error) {
	if !a.autoRender {
		return a.manualContent, nil
	}

	var b strings.Builder
	b.WriteString(`<!doctype html><html lang="en" prefix="op: http://media.facebook.com/op#">`)
	b.WriteString(a.head.Render(s))
	b.WriteString("<body><article>")

	fragment, err := a.header.Render(s)
	if err != nil {
		return "", err
	}
	b.WriteString(fragment)

	for _, element := range a.elems {
		fragment, err := element.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}

	b.WriteString("</article></body></html>")
	return b.String(), nil
}

// Render validates the article, then writes the item fields and the
// CDATA-wrapped content document onto item.
func (a *Article) Render(item interfaces.XMLNode, s *render.Settings) error {
	// build the document first so any element failure surfaces before the
	// item is partially written
	content, err := a.ContentHTML(s)
	if err != nil {
		return err
	}

	if a.title == "" {
		return errors.NewRequired("articles", "title")
	}
	if a.link == "" {
		return errors.NewRequired("articles", "link")
	}

	item.AddChild("title", a.title)
	item.AddChild("link", a.link)

	if a.guid != "" {
		item.AddChild("guid", a.guid)
	}
	if a.description != "" {
		item.AddChild("description", a.description)
	}
	if a.pubDate != "" {
		item.AddChild("pubDate", s.FormatRSSDate(a.pubDate))
	}
	for _, author := range a.authors {
		item.AddChild("author", author)
	}

	item.AddCDATAChild("content:encoded", content)
	return nil
}
