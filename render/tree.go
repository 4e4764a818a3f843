package render

import (
	"fmt"

	asciitree "github.com/thediveo/go-asciitree"

	"seqlist/list"
)

type asciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []asciiNode `asciitree:"children"`
}

// Sequence is what Tree needs from a list.
type Sequence[T any] interface {
	Len() int
	Strings() []string
	ForEach(consumer list.Consumer[T])
}

func convertToTree[T any](label string, seq Sequence[T]) asciiNode {
	labels := seq.Strings()
	root := asciiNode{Label: fmt.Sprintf("%s (%d)", label, seq.Len())}
	seq.ForEach(func(idx int, v *T) bool {
		root.Children = append(root.Children, asciiNode{
			Label: fmt.Sprintf("#%d %s", idx, labels[idx]),
			Props: properties(v),
		})
		return true
	})
	return root
}

// Tree draws the sequence as a tree, one child per element, labelled by the
// element's own renderer with its fields as properties.
func Tree[T any](label string, seq Sequence[T]) string {
	return asciitree.RenderFancy(convertToTree(label, seq))
}
