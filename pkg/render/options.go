package render

// RenderOptions describe per-request data that renderers can use without
// touching the form session.
type RenderOptions struct {
	// Action is the URL a browser form posts back to. Renderers that do not
	// emit forms ignore it.
	Action string
	// Title overrides the page or panel heading.
	Title string
	// Hidden carries extra name/value pairs emitted as hidden inputs, for
	// example a CSRF token. Order is preserved.
	Hidden []HiddenField
}

// HiddenField is a hidden form input emitted alongside the visible fields.
type HiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
