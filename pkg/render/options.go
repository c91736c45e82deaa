package render

// RenderOptions describe per-request data renderers can use without touching
// the view description.
type RenderOptions struct {
	// Title labels the output (HTML document title, tree header).
	Title string
	// Session identifies the session the description was built for.
	Session string
	// Source names the document the description was built from.
	Source string
}

// Header returns the best available label for the output.
func (o RenderOptions) Header() string {
	switch {
	case o.Title != "":
		return o.Title
	case o.Source != "":
		return o.Source
	}
	return "view"
}
