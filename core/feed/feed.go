// ABOUTME: Feed builds the outer RSS skeleton and renders article items
// ABOUTME: Serializes through the injected XML builder capability

package feed

import (
	"sort"
	"time"

	"fbiarss/core/article"
	"fbiarss/core/errors"
	"fbiarss/core/interfaces"
	"fbiarss/core/render"
)

// channelKeys are the channel elements with a fixed position; anything
// else the caller supplies is appended after them in sorted order.
var channelKeys = []string{"title", "link", "description", "language", "lastBuildDate"}

// namespaces carried on the <rss> root, beyond the content module the
// embedded documents require.
var rootNamespaces = []interfaces.XMLAttr{
	{Key: "xmlns:content", Value: "http://purl.org/rss/1.0/modules/content/"},
	{Key: "xmlns:wfw", Value: "http://wellformedweb.org/CommentAPI/"},
	{Key: "xmlns:dc", Value: "http://purl.org/dc/elements/1.1/"},
	{Key: "xmlns:atom", Value: "http://www.w3.org/2005/Atom"},
	{Key: "xmlns:sy", Value: "http://purl.org/rss/1.0/modules/syndication/"},
	{Key: "xmlns:slash", Value: "http://purl.org/rss/1.0/modules/slash/"},
}

// Feed aggregates article items into one RSS 2.0 document. It is not safe
// for concurrent mutation; build and render a feed from a single
// goroutine.
type Feed struct {
	builder  interfaces.XMLBuilder
	logger   interfaces.Logger
	settings *render.Settings

	version  string
	encoding string

	channelMeta map[string]string
	items       []*article.ArticleItem
	limit       int
}

// NewFeed creates a Feed with RSS 2.0 / UTF-8 defaults. A nil logger in
// deps falls back to a no-op logger; the builder stays required and is
// checked at render time.
func NewFeed(deps interfaces.Dependencies) *Feed {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Feed{
		builder:  deps.Builder,
		logger:   logger,
		settings: render.Default(),
		version:  "2.0",
		encoding: "UTF-8",
	}
}

// SetVersion overrides the RSS version attribute.
func (f *Feed) SetVersion(version string) *Feed {
	f.version = version
	return f
}

// SetEncoding overrides the XML declaration encoding.
func (f *Feed) SetEncoding(encoding string) *Feed {
	f.encoding = encoding
	return f
}

// SetSettings overrides the render settings threaded through article and
// header renders.
func (f *Feed) SetSettings(settings *render.Settings) *Feed {
	if settings != nil {
		f.settings = settings
	}
	return f
}

// Settings returns the feed's render settings.
func (f *Feed) Settings() *render.Settings {
	return f.settings
}

// Channel sets the channel metadata. Title, link and description are
// required; any other keys become additional channel elements.
func (f *Feed) Channel(meta map[string]string) error {
	if meta["title"] == "" || meta["description"] == "" || meta["link"] == "" {
		return errors.NewFormat("required channel parameter missing: title, description or link")
	}

	f.channelMeta = make(map[string]string, len(meta))
	for key, value := range meta {
		f.channelMeta[key] = value
	}
	return nil
}

// CreateArticle appends a new article item and returns it for
// configuration.
func (f *Feed) CreateArticle() *article.ArticleItem {
	item := article.NewArticleItem()
	f.items = append(f.items, item)
	return item
}

// CompleteArticle appends an externally built article item.
func (f *Feed) CompleteArticle(item *article.ArticleItem) *Feed {
	if item != nil {
		f.items = append(f.items, item)
	}
	return f
}

// Items returns every attached article item, regardless of any limit.
func (f *Feed) Items() []*article.ArticleItem {
	return f.items
}

// Limit caps how many items are rendered, preserving attachment order.
// Zero or negative clears the cap. The item list itself is never
// truncated.
func (f *Feed) Limit(limit int) *Feed {
	if limit < 0 {
		limit = 0
	}
	f.limit = limit
	return f
}

// renderedItems returns the items the cap allows.
func (f *Feed) renderedItems() []*article.ArticleItem {
	if f.limit > 0 && f.limit < len(f.items) {
		return f.items[:f.limit]
	}
	return f.items
}

// document builds the full XML tree.
func (f *Feed) document() (interfaces.XMLDocument, error) {
	if f.builder == nil {
		return nil, errors.NewFormat("an XML builder is required to render a feed")
	}
	if f.channelMeta == nil {
		return nil, errors.NewFormat("required channel parameter missing: title, description or link")
	}

	attrs := append([]interfaces.XMLAttr{{Key: "version", Value: f.version}}, rootNamespaces...)
	doc := f.builder.CreateDocument(f.encoding, "rss", attrs)
	channel := doc.Root().AddChild("channel", "")

	f.writeChannelMeta(channel)

	items := f.renderedItems()
	f.logger.Debug("rendering feed", map[string]interface{}{
		"items":    len(items),
		"attached": len(f.items),
	})

	for _, item := range items {
		if err := item.Render(channel, f.settings); err != nil {
			return nil, errors.WrapError(err, "failed to render feed item")
		}
	}

	return doc, nil
}

// writeChannelMeta emits the fixed-position channel elements first, then
// any extra keys in sorted order. A missing lastBuildDate is filled with
// the current instant.
func (f *Feed) writeChannelMeta(channel interfaces.XMLNode) {
	written := make(map[string]bool, len(channelKeys))

	for _, key := range channelKeys {
		value := f.channelMeta[key]
		if key == "lastBuildDate" && value == "" {
			value = f.settings.FormatRSSTime(time.Now())
		}
		if value != "" {
			channel.AddChild(key, value)
		}
		written[key] = true
	}

	extras := make([]string, 0, len(f.channelMeta))
	for key := range f.channelMeta {
		if !written[key] && f.channelMeta[key] != "" {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		channel.AddChild(key, f.channelMeta[key])
	}
}

// Render serializes the feed to an XML string.
func (f *Feed) Render() (string, error) {
	doc, err := f.document()
	if err != nil {
		return "", err
	}
	return doc.Serialize()
}

// Save renders the feed and writes it to the named file.
func (f *Feed) Save(path string) error {
	doc, err := f.document()
	if err != nil {
		return err
	}
	if err := doc.SerializeToFile(path); err != nil {
		return errors.WrapError(err, "failed to save feed")
	}

	f.logger.Info("feed saved", map[string]interface{}{"path": path})
	return nil
}
