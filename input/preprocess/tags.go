package preprocess

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// latexTags maps LaTeX text commands to HTML elements. The closing brace
// closes the most recently opened element.
var latexTags = []struct {
	latex, html string
}{
	{`\textbf{`, "b"},
	{`\textit{`, "i"},
	{"}", ""},
}

// TagStack holds HTML elements opened but not yet closed.
type TagStack struct {
	stack *arraystack.Stack
}

// NewTagStack creates an empty stack of open tags.
func NewTagStack() *TagStack {
	return &TagStack{stack: arraystack.New()}
}

// Len returns the number of open tags.
func (ts *TagStack) Len() int {
	return ts.stack.Size()
}

func (ts *TagStack) push(tag string) {
	ts.stack.Push(tag)
}

func (ts *TagStack) pop() (string, bool) {
	tag, ok := ts.stack.Pop()
	if !ok {
		return "", false
	}
	return tag.(string), true
}

// ReplaceLatexTags replaces \textbf{…} by <b>…</b> and \textit{…} by
// <i>…</i>. Open tags are kept on a stack, which allows a tag opened in
// one bit of text to be closed in a later bit. A closing brace without an
// open tag is kept as is.
func ReplaceLatexTags(bit string, tags *TagStack) string {
	var out strings.Builder
	for bit != "" {
		first, at := -1, len(bit)
		for i, t := range latexTags {
			if idx := strings.Index(bit, t.latex); idx >= 0 && idx < at {
				first, at = i, idx
			}
		}
		if first < 0 {
			out.WriteString(bit)
			break
		}
		out.WriteString(bit[:at])
		bit = bit[at+len(latexTags[first].latex):]
		if tag := latexTags[first].html; tag != "" {
			out.WriteString("<" + tag + ">")
			tags.push(tag)
		} else if open, ok := tags.pop(); ok {
			out.WriteString("</" + open + ">")
		} else {
			out.WriteString("}")
		}
	}
	return out.String()
}
