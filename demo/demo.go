package demo

import (
	"fmt"
	"io"
	"strings"

	"seqlist/config"
	"seqlist/dataset"
	"seqlist/list"
	"seqlist/logger"
	"seqlist/model"
	"seqlist/render"
	"seqlist/script"
)

// Demo replays the person and product walkthroughs against a fixture set.
type Demo struct {
	cfg    *config.Config
	fx     *dataset.Fixtures
	out    io.Writer
	engine *script.Engine
}

func New(cfg *config.Config, fx *dataset.Fixtures, out io.Writer) *Demo {
	d := &Demo{cfg: cfg, fx: fx, out: out}
	if cfg.Where != "" || cfg.Apply != "" {
		d.engine = script.New()
	}
	return d
}

func (d *Demo) Run() error {
	if err := d.People(); err != nil {
		return err
	}
	return d.Products()
}

func show[T any](d *Demo, label string, l *list.Sequence[T]) {
	switch strings.ToLower(d.cfg.Format) {
	case config.FormatTree:
		fmt.Fprintf(d.out, "%s:\n%s", label, render.Tree[T](label, l))
	case config.FormatFields:
		var parts []string
		r := render.Fields[T]()
		l.ForEach(func(idx int, v *T) bool {
			parts = append(parts, r(v))
			return true
		})
		fmt.Fprintf(d.out, "%s: [%s]\n", label, strings.Join(parts, ", "))
	default:
		fmt.Fprintf(d.out, "%s: %s\n", label, l.String())
	}
}

func showMatches[T any](d *Demo, label string, ms []list.Match[T], r list.Renderer[T]) {
	parts := make([]string, 0, len(ms))
	for _, m := range ms {
		parts = append(parts, r(m.Value))
	}
	fmt.Fprintf(d.out, "%s (%d): %s\n", label, len(ms), strings.Join(parts, ", "))
}

func (d *Demo) adults() (list.Predicate[model.Person], error) {
	if d.cfg.Where == "" {
		return model.IsAdult, nil
	}
	return script.Predicate[model.Person](d.engine, d.cfg.Where)
}

func (d *Demo) birthday() (list.Mutator[model.Person], error) {
	if d.cfg.Apply == "" {
		return model.MakeBirthday, nil
	}
	return script.Mutator[model.Person](d.engine, d.cfg.Apply)
}

func (d *Demo) People() error {
	fmt.Fprintln(d.out, "=== PERSON LIST DEMONSTRATION ===")
	var released model.Releases
	people, _, err := dataset.People(d.fx.People, list.WithDestructor(released.Person))
	if err != nil {
		return fmt.Errorf("build person list: %w", err)
	}
	defer func() {
		n := people.Len()
		people.Destroy()
		logger.Info(fmt.Sprintf("person list destroyed: %d elements, %d copies released", n, released.Count()))
	}()
	adults, err := d.adults()
	if err != nil {
		return err
	}
	birthday, err := d.birthday()
	if err != nil {
		return err
	}
	show(d, "Initial person list", people)

	fmt.Fprintln(d.out, "\n--- Search Operations ---")
	bob, found := people.Find(model.Person{Name: "Bob"}, model.ComparePersonByName)
	if found {
		fmt.Fprintf(d.out, "Found person: %s\n", model.RenderPerson(bob.Value))
	} else {
		fmt.Fprintln(d.out, "Not found")
	}
	showMatches(d, "Adults", people.Filter(adults), model.RenderPerson)

	fmt.Fprintln(d.out, "\n--- Modification Operations ---")
	if found {
		if _, err := people.Update(bob.Handle, model.Person{Name: "Bob", Age: 18}); err != nil {
			logger.Warn("update Bob:", err)
		} else {
			show(d, "After updating Bob", people)
		}
	}
	fmt.Fprint(d.out, "Applying birthdays: ")
	n := people.ApplyToAll(nil, func(p *model.Person) {
		birthday(p)
		fmt.Fprintf(d.out, "[Happy birthday %s!] ", p.Name)
	})
	fmt.Fprintln(d.out)
	logger.Debug(fmt.Sprintf("birthdays applied to %d people", n))
	show(d, "After birthdays", people)
	return nil
}

func (d *Demo) Products() error {
	fmt.Fprintln(d.out, "\n=== PRODUCT LIST DEMONSTRATION ===")
	var released model.Releases
	products, _, err := dataset.Products(d.fx.Products, list.WithDestructor(released.Product))
	if err != nil {
		return fmt.Errorf("build product list: %w", err)
	}
	defer func() {
		n := products.Len()
		products.Destroy()
		logger.Info(fmt.Sprintf("product list destroyed: %d elements, %d copies released", n, released.Count()))
	}()
	expensive := model.ExpensiveOver(d.cfg.ExpensiveOver)
	show(d, "Initial product list", products)

	fmt.Fprintln(d.out, "\n--- Search Operations ---")
	if m, ok := products.Find(model.Product{ID: 2}, model.CompareProductByID); ok {
		fmt.Fprintf(d.out, "Found product: %s\n", model.RenderProduct(m.Value))
	}
	showMatches(d, "Expensive products", products.Filter(expensive), model.RenderProduct)

	fmt.Fprintln(d.out, "\n--- Modification Operations ---")
	fmt.Fprint(d.out, "Applying discounts: ")
	n := products.ApplyToAll(expensive, func(p *model.Product) {
		model.ApplyDiscount(p)
		fmt.Fprintf(d.out, "[Applied discount to %s] ", p.Name)
	})
	fmt.Fprintln(d.out)
	logger.Debug(fmt.Sprintf("discount applied to %d products", n))
	show(d, "After discounts", products)
	showMatches(d, "Still expensive after discount", products.Filter(expensive), model.RenderProduct)
	return nil
}
