// ABOUTME: ArticleItem wraps one Article as a channel <item> node

package article

import (
	"fbiarss/core/interfaces"
	"fbiarss/core/render"
)

// ArticleItem pairs an Article with its position as a channel item.
type ArticleItem struct {
	article *Article
}

// NewArticleItem creates an item wrapping a fresh Article.
func NewArticleItem() *ArticleItem {
	return &ArticleItem{article: NewArticle()}
}

// Article returns the wrapped article.
func (i *ArticleItem) Article() *Article {
	return i.article
}

// Render appends an <item> element to channel and renders the article
// into it.
func (i *ArticleItem) Render(channel interfaces.XMLNode, s *render.Settings) error {
	item := channel.AddChild("item", "")
	return i.article.Render(item, s)
}
