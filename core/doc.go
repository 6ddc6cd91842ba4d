// Package core contains the rendering logic for Facebook Instant Article
// RSS feeds. It is framework-agnostic and can be used independently of any
// output or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - elements: Content elements (Ad, Audio, Caption, Image, Video, etc.)
// - article: Head, Header, Article and ArticleItem assembly
// - feed: RSS feed aggregation and serialization
// - render: Per-document formatting settings
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (XML builder, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Rendering logic is testable in isolation
// - Validation is lazy: errors surface at render time, not per setter
//
// # Usage Example
//
//	import (
//	    "fbiarss/core/feed"
//	    "fbiarss/core/interfaces"
//	    xmletree "fbiarss/infrastructure/xml/etree"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Builder: xmletree.NewBuilder(),
//	    Logger:  myLogger, // implements interfaces.Logger
//	}
//
//	// Build a feed
//	f := feed.NewFeed(deps)
//	f.Channel(map[string]string{
//	    "title":       "Example News",
//	    "link":        "https://news.example.com",
//	    "description": "All the news",
//	})
//
//	item := f.CreateArticle()
//	item.Article().
//	    SetTitle("Big Story").
//	    SetLink("https://news.example.com/articles/42")
//
//	out, err := f.Render()
package core
