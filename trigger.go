package classcomplete

import "strings"

// TriggerCharacters are the characters after which an editor should ask for
// completions: an opening quote, and a space between class names.
var TriggerCharacters = []string{`"`, " "}

// ShouldTrigger reports whether the text of the current line up to the cursor
// sits inside a className string: the line mentions className and at most one
// double quote follows that mention.
func ShouldTrigger(linePrefix string) bool {
	i := strings.Index(linePrefix, "className")
	if i < 0 {
		return false
	}
	return strings.Count(linePrefix[i:], `"`) <= 1
}
