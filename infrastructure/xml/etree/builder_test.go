package etree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fbiarss/core/interfaces"
)

func TestBuilder_CreateDocument(t *testing.T) {
	builder := NewBuilder()

	doc := builder.CreateDocument("UTF-8", "rss", []interfaces.XMLAttr{
		{Key: "version", Value: "2.0"},
	})

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("output %q missing XML declaration", out)
	}
	if !strings.Contains(out, `<rss version="2.0"/>`) {
		t.Errorf("output %q missing root element", out)
	}
}

func TestNode_AddChild(t *testing.T) {
	builder := NewBuilder()
	doc := builder.CreateDocument("UTF-8", "rss", nil)

	channel := doc.Root().AddChild("channel", "")
	channel.AddChild("title", "Example Feed")

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(out, "<channel><title>Example Feed</title></channel>") {
		t.Errorf("output %q missing channel tree", out)
	}
}

func TestNode_AddChildEscapesText(t *testing.T) {
	builder := NewBuilder()
	doc := builder.CreateDocument("UTF-8", "rss", nil)

	doc.Root().AddChild("title", "Fish & Chips")

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(out, "Fish &amp; Chips") {
		t.Errorf("output %q should escape element text", out)
	}
}

func TestNode_AddCDATAChild(t *testing.T) {
	builder := NewBuilder()
	doc := builder.CreateDocument("UTF-8", "rss", nil)

	doc.Root().AddChild("item", "").
		AddCDATAChild("content:encoded", "<p>raw & unescaped</p>")

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(out, "<![CDATA[<p>raw & unescaped</p>]]>") {
		t.Errorf("output %q should hold the markup in a CDATA section", out)
	}
}

func TestDocument_SerializeToFile(t *testing.T) {
	builder := NewBuilder()
	doc := builder.CreateDocument("UTF-8", "rss", nil)
	doc.Root().AddChild("channel", "")

	path := filepath.Join(t.TempDir(), "feed.xml")
	if err := doc.SerializeToFile(path); err != nil {
		t.Fatalf("SerializeToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back file failed: %v", err)
	}
	if !strings.Contains(string(data), "<channel/>") {
		t.Errorf("file contents %q missing channel element", data)
	}
}
