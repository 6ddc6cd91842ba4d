// ABOUTME: Head holds the per-article metadata rendered into the HTML <head>
// ABOUTME: Charset and markup version carry Instant Article defaults

package article

import (
	"fmt"
	"strings"

	"fbiarss/core/render"
	"fbiarss/pkg/utils/strutil"
)

// Head is the metadata block of one article's embedded HTML document.
type Head struct {
	charset                 string
	canonicalLink           string
	markupVersion           string
	articleStyle            string
	useAutomaticAdPlacement bool
	tags                    []string
}

// NewHead returns a Head with the Instant Article defaults.
func NewHead() *Head {
	return &Head{
		charset:       "UTF-8",
		markupVersion: "v1.0",
	}
}

// SetCharset sets the document charset.
func (h *Head) SetCharset(charset string) *Head {
	h.charset = charset
	return h
}

// SetCanonicalLink sets the canonical article URL.
func (h *Head) SetCanonicalLink(link string) *Head {
	h.canonicalLink = link
	return h
}

// CanonicalLink returns the canonical article URL, empty if unset.
func (h *Head) CanonicalLink() string {
	return h.canonicalLink
}

// SetMarkupVersion sets the Instant Article markup version.
func (h *Head) SetMarkupVersion(version string) *Head {
	h.markupVersion = version
	return h
}

// SetArticleStyle sets the named article style.
func (h *Head) SetArticleStyle(style string) *Head {
	h.articleStyle = style
	return h
}

// ArticleStyle returns the named article style.
func (h *Head) ArticleStyle() string {
	return h.articleStyle
}

// SetUseAutomaticAdPlacement toggles Facebook's automatic ad placement.
func (h *Head) SetUseAutomaticAdPlacement(use bool) *Head {
	h.useAutomaticAdPlacement = use
	return h
}

// UseAutomaticAdPlacement reports whether automatic ad placement is on.
func (h *Head) UseAutomaticAdPlacement() bool {
	return h.useAutomaticAdPlacement
}

// SetTags replaces the article tags. Values may be individual tags or
// separator-delimited strings; they are split and de-duplicated at render
// time using the settings' list separator.
func (h *Head) SetTags(tags ...string) *Head {
	h.tags = tags
	return h
}

// AddTags appends tag values.
func (h *Head) AddTags(tags ...string) *Head {
	h.tags = append(h.tags, tags...)
	return h
}

// Tags returns the tag values as given.
func (h *Head) Tags() []string {
	return h.tags
}

// Render returns the <head> fragment. The meta order is fixed: charset,
// canonical link, markup version, ad placement (always emitted), article
// style, tags.
func (h *Head) Render(s *render.Settings) string {
	var b strings.Builder
	b.WriteString("<head>")

	if h.charset != "" {
		fmt.Fprintf(&b, `<meta charset="%s">`, h.charset)
	}
	if h.canonicalLink != "" {
		fmt.Fprintf(&b, `<link rel="canonical" href="%s">`, h.canonicalLink)
	}
	if h.markupVersion != "" {
		fmt.Fprintf(&b, `<meta property="op:markup_version" content="%s">`, h.markupVersion)
	}

	fmt.Fprintf(&b, `<meta property="fb:use_automatic_ad_placement" content="%t">`, h.useAutomaticAdPlacement)

	if h.articleStyle != "" {
		fmt.Fprintf(&b, `<meta property="fb:article_style" content="%s">`, h.articleStyle)
	}
	if tags := strutil.SplitUnique(s.ListSeparator, h.tags...); len(tags) > 0 {
		fmt.Fprintf(&b, `<meta property="op:tags" content="%s">`, strings.Join(tags, ";"))
	}

	b.WriteString("</head>")
	return b.String()
}
