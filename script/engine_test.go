package script

import (
	"bytes"
	"strings"
	"testing"

	"seqlist/list"
	"seqlist/model"
)

func people() *list.Sequence[model.Person] {
	l := list.Make[model.Person]()
	for _, p := range []model.Person{{Name: "Alice", Age: 25}, {Name: "Bob", Age: 17}, {Name: "Charlie", Age: 30}} {
		_, _ = l.Append(p, list.WithRenderer(model.RenderPerson))
	}
	return l
}

func TestPredicate(t *testing.T) {
	e := New()
	adult, err := Predicate[model.Person](e, "e.age >= 18")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, m := range people().Filter(adult) {
		names = append(names, m.Value.Name)
	}
	if strings.Join(names, ",") != "Alice,Charlie" {
		t.Errorf("Filter(script) = %v", names)
	}
}

func TestMutatorWithPredicate(t *testing.T) {
	e := New()
	adult, err := Predicate[model.Person](e, "e.age >= 18")
	if err != nil {
		t.Fatal(err)
	}
	birthday, err := Mutator[model.Person](e, "e.age++")
	if err != nil {
		t.Fatal(err)
	}
	l := people()
	if n := l.ApplyToAll(adult, birthday); n != 2 {
		t.Errorf("ApplyToAll() = %d, want 2", n)
	}
	if got := l.String(); got != "[Alice(26), Bob(17), Charlie(31)]" {
		t.Errorf("String() = %q", got)
	}
}

func TestRenderer(t *testing.T) {
	e := New()
	r, err := Renderer[model.Product](e, `e.name + " #" + e.id`)
	if err != nil {
		t.Fatal(err)
	}
	l := list.Make[model.Product]()
	_, _ = l.Append(model.Product{ID: 1, Name: "Laptop", Price: 999.99}, list.WithRenderer(r))
	if got := l.String(); got != "[Laptop #1]" {
		t.Errorf("String() = %q", got)
	}
}

func TestComparator(t *testing.T) {
	e := New()
	byID, err := Comparator[model.Product](e, "a.id - b.id")
	if err != nil {
		t.Fatal(err)
	}
	l := list.Make(
		model.Product{ID: 1, Name: "Laptop"},
		model.Product{ID: 2, Name: "Mouse"},
	)
	m, ok := l.Find(model.Product{ID: 2}, byID)
	if !ok || m.Value.Name != "Mouse" {
		t.Errorf("Find(2) = %+v, %v", m, ok)
	}
	if _, ok := l.Find(model.Product{ID: 9}, byID); ok {
		t.Error("Find(9) matched")
	}
}

func TestComparatorNaNIsNotEqual(t *testing.T) {
	e := New()
	l := list.Make(
		model.Product{ID: 1, Name: "Laptop"},
		model.Product{ID: 2, Name: "Mouse"},
	)
	tests := []struct {
		name string
		src  string
	}{
		{"undefined field", "a.id - b.nope"},
		{"go field name", "a.id - b.ID"},
		{"string arithmetic", `a.name - b.name`},
		{"undefined result", "undefined"},
		{"null result", "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := Comparator[model.Product](e, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if m, ok := l.Find(model.Product{ID: 9}, cmp); ok {
				t.Errorf("Find(9) with %q matched %+v", tt.src, m.Value)
			}
			if ms := l.FindAll(model.Product{ID: 9}, cmp); ms != nil {
				t.Errorf("FindAll(9) with %q = %d matches", tt.src, len(ms))
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	e := New()
	if _, err := Predicate[model.Person](e, "e.age >="); err == nil {
		t.Error("expected a syntax error")
	}
	if _, err := Mutator[model.Person](e, "e.age++ )"); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestRuntimeErrorIsFalse(t *testing.T) {
	e := New()
	p, err := Predicate[model.Person](e, "e.missing.field > 1")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(people().Filter(p)); n != 0 {
		t.Errorf("failing predicate matched %d elements", n)
	}
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	e := New(WithOutput(&buf))
	m, err := Mutator[model.Person](e, `console.log("happy birthday %s", e.name)`)
	if err != nil {
		t.Fatal(err)
	}
	people().ApplyToAll(nil, m)
	want := "happy birthday Alice\nhappy birthday Bob\nhappy birthday Charlie\n"
	if buf.String() != want {
		t.Errorf("console output = %q", buf.String())
	}
}
