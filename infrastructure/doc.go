// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as XML serialization and logging.
//
// The infrastructure package is organized by technical concern:
//
// - xml/etree: XML document builder backed by beevik/etree
// - logger/logrus: Structured logger backed by sirupsen/logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Testable: Include unit tests against the core contracts
// - Minimal: Expose only what the rendering core consumes
//
// # XML Builder
//
//	builder := etree.NewBuilder()
//	doc := builder.CreateDocument("UTF-8", "rss", []interfaces.XMLAttr{
//	    {Key: "version", Value: "2.0"},
//	})
//	channel := doc.Root().AddChild("channel", "")
//	out, err := doc.Serialize()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger(nil)
//	logger.Info("feed saved", map[string]interface{}{
//	    "path": "/tmp/feed.xml",
//	})
package infrastructure
