package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seqlist/list"
	"seqlist/model"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the demo data set.
type Fixtures struct {
	People   []model.Person  `yaml:"people"`
	Products []model.Product `yaml:"products"`
}

// Default returns the built-in fixtures.
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// Load reads fixtures from a YAML file.
func Load(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fx, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fx, nil
}

func Parse(data []byte) (*Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, err
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

func (fx *Fixtures) Validate() error {
	var errs []error
	for i, p := range fx.People {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("people[%d]: empty name", i))
		}
		if p.Age < 0 {
			errs = append(errs, fmt.Errorf("people[%d]: negative age %d", i, p.Age))
		}
	}
	for i, p := range fx.Products {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("products[%d]: empty name", i))
		}
		if p.Price < 0 {
			errs = append(errs, fmt.Errorf("products[%d]: negative price %.2f", i, p.Price))
		}
	}
	return errors.Join(errs...)
}

// People builds a sequence of the given people, each rendered with
// model.RenderPerson plus whatever opts add. Handles come back in order.
func People(people []model.Person, opts ...list.Option[model.Person]) (*list.Sequence[model.Person], []list.Handle, error) {
	return build(people, append([]list.Option[model.Person]{list.WithRenderer(model.RenderPerson)}, opts...))
}

// Products is People for model.Product.
func Products(products []model.Product, opts ...list.Option[model.Product]) (*list.Sequence[model.Product], []list.Handle, error) {
	return build(products, append([]list.Option[model.Product]{list.WithRenderer(model.RenderProduct)}, opts...))
}

func build[T any](values []T, opts []list.Option[T]) (*list.Sequence[T], []list.Handle, error) {
	l := list.Make[T]()
	hs := make([]list.Handle, 0, len(values))
	for i := range values {
		h, err := l.AppendFrom(&values[i], opts...)
		if err != nil {
			l.Destroy()
			return nil, nil, err
		}
		hs = append(hs, h)
	}
	return l, hs, nil
}
