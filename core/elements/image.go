// ABOUTME: Image element renders a figure with an img and media attachments

package elements

// Image is a picture displayed in the article body or header.
type Image struct {
	Media
}

// NewImage creates an empty Image.
func NewImage() *Image {
	return &Image{}
}

// Validate reports a missing or invalid source.
func (i *Image) Validate() error {
	return i.validateSource("media")
}

// Render returns the figure fragment.
func (i *Image) Render() (string, error) {
	if err := i.Validate(); err != nil {
		return "", err
	}

	attachments, err := i.renderAttachments()
	if err != nil {
		return "", err
	}

	return "<figure" + i.figureAttrs() + `><img src="` + i.source + `"/>` +
		attachments + "</figure>", nil
}
