package render

// RenderOptions carry the literal display strings of the surrounding chrome.
// Renderers ignore what they have no place for.
type RenderOptions struct {
	// Title is shown above the parameter rows.
	Title string
	// ActionLabel names the control that hands the model back to the owner.
	ActionLabel string
	// Standalone asks markup renderers for a complete document instead of a
	// fragment.
	Standalone bool
}
