// ABOUTME: etree implementation of the XML builder capability
// ABOUTME: Wraps beevik/etree documents and elements behind the core interfaces

package etree

import (
	"github.com/beevik/etree"

	"fbiarss/core/interfaces"
)

// Builder creates etree-backed XML documents.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// CreateDocument returns a document with an XML declaration in the given
// encoding and a root element carrying the given attributes.
func (b *Builder) CreateDocument(encoding, root string, attrs []interfaces.XMLAttr) interfaces.XMLDocument {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="`+encoding+`"`)

	rootEl := doc.CreateElement(root)
	for _, attr := range attrs {
		rootEl.CreateAttr(attr.Key, attr.Value)
	}

	return &document{doc: doc, root: rootEl}
}

type document struct {
	doc  *etree.Document
	root *etree.Element
}

func (d *document) Root() interfaces.XMLNode {
	return &node{el: d.root}
}

func (d *document) Serialize() (string, error) {
	return d.doc.WriteToString()
}

func (d *document) SerializeToFile(path string) error {
	return d.doc.WriteToFile(path)
}

type node struct {
	el *etree.Element
}

func (n *node) AddChild(name, value string) interfaces.XMLNode {
	child := n.el.CreateElement(name)
	if value != "" {
		child.SetText(value)
	}
	return &node{el: child}
}

func (n *node) AddCDATAChild(name, value string) interfaces.XMLNode {
	child := n.el.CreateElement(name)
	child.CreateCData(value)
	return &node{el: child}
}
