package vanilla

import (
	"html"
	"strconv"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// labelHTML returns a param name as HTML text. The name is escaped before the
// strict policy runs, so it survives verbatim and no element can reach the
// page.
func labelHTML(name string) string {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy.Sanitize(html.EscapeString(name))
}

func inputID(paramID int) string {
	return "param-" + strconv.Itoa(paramID)
}
