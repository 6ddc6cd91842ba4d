// ABOUTME: Dependencies container provides dependency injection for the feed renderer
// ABOUTME: Defines the contract for collaborators required by the rendering core

package interfaces

// Dependencies holds the external collaborators the rendering core consumes
type Dependencies struct {
	// Builder provides the XML tree/writer primitive
	Builder XMLBuilder

	// Logger provides structured logging
	Logger Logger
}
