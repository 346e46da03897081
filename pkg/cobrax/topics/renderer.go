package topics

// Renderer formats topic content for terminal display. The format
// argument is the topic file's extension, e.g. ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer is the default renderer; it returns content unchanged
// regardless of format.
type PlainRenderer struct{}

// Render returns the content as-is
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
