package vanilla

// ChromeClass is a typed identifier for the CSS classes the templates emit.
type ChromeClass string

const (
	ClassEditor  ChromeClass = "param-editor"
	ClassRow     ChromeClass = "param-row"
	ClassLabel   ChromeClass = "param-label"
	ClassInput   ChromeClass = "param-input"
	ClassActions ChromeClass = "get-model-button"
	ClassPage    ChromeClass = "example-container"
)

func chromeClasses() map[string]string {
	return map[string]string{
		"editor":  string(ClassEditor),
		"row":     string(ClassRow),
		"label":   string(ClassLabel),
		"input":   string(ClassInput),
		"actions": string(ClassActions),
		"page":    string(ClassPage),
	}
}
