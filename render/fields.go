package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/structs"

	"seqlist/list"
)

// Fields renders a struct element as {key:value ...} with keys sorted, using
// the structs tag names. Anything that is not a struct prints with %v.
func Fields[T any]() list.Renderer[T] {
	return func(v *T) string {
		props := properties(v)
		if props == nil {
			return fmt.Sprintf("%v", *v)
		}
		return "{" + strings.Join(props, " ") + "}"
	}
}

func properties(v any) []string {
	if !structs.IsStruct(v) {
		return nil
	}
	m := structs.Map(v)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	props := make([]string, 0, len(keys))
	for _, k := range keys {
		props = append(props, fmt.Sprintf("%s:%v", k, m[k]))
	}
	return props
}
