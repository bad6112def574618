package translator

import "strings"

var braceStripper = strings.NewReplacer("{", "", "}", "")

// postProcess runs the end-of-invocation cleanup over one invocation's text:
// any brace left behind as an artifact is removed, then trailing blanks and
// a trailing terminator are dropped from every line.
func postProcess(text string) string {
	lines := strings.Split(braceStripper.Replace(text), "\n")
	for i, l := range lines {
		l = strings.TrimRight(l, " \t")
		l = strings.TrimSuffix(l, terminator)
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}
