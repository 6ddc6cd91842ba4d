// ABOUTME: XML writer capability consumed by the feed renderer
// ABOUTME: Abstracts document creation, child/CDATA insertion and serialization

package interfaces

// XMLAttr is a single attribute on the document's root element.
type XMLAttr struct {
	Key   string
	Value string
}

// XMLBuilder creates XML documents. The rendering core only ever builds a
// tree top-down and serializes it, so this is the entire surface it needs
// from an XML library.
type XMLBuilder interface {
	// CreateDocument returns a new document with an XML declaration using
	// the given encoding, and a root element carrying the given attributes.
	CreateDocument(encoding, root string, attrs []XMLAttr) XMLDocument
}

// XMLDocument is a buildable, serializable XML tree.
type XMLDocument interface {
	// Root returns the root element of the document.
	Root() XMLNode

	// Serialize renders the whole document to a string.
	Serialize() (string, error)

	// SerializeToFile writes the document to the named file.
	SerializeToFile(path string) error
}

// XMLNode is one element in the tree. Child values are escaped by the
// implementation; CDATA children are emitted verbatim inside a CDATA
// section.
type XMLNode interface {
	// AddChild appends a child element. An empty value produces an empty
	// element usable as a container.
	AddChild(name, value string) XMLNode

	// AddCDATAChild appends a child element whose content is a CDATA
	// section holding value untouched.
	AddCDATAChild(name, value string) XMLNode
}
