package model

import (
	"cmp"
	"fmt"
)

// DefaultExpensiveOver is the price above which a product counts as expensive.
const DefaultExpensiveOver = 50.0

// Discount is the multiplier ApplyDiscount uses, i.e. 10% off.
const Discount = 0.9

type Product struct {
	ID    int     `json:"id" yaml:"id" structs:"id"`
	Name  string  `json:"name" yaml:"name" structs:"name"`
	Price float64 `json:"price" yaml:"price" structs:"price"`
}

func RenderProduct(p *Product) string {
	return fmt.Sprintf("%s:$%.2f", p.Name, p.Price)
}

func CompareProductByID(a, b *Product) int {
	return cmp.Compare(a.ID, b.ID)
}

// ExpensiveOver returns a predicate matching products priced strictly above limit.
func ExpensiveOver(limit float64) func(p *Product) bool {
	return func(p *Product) bool {
		return p.Price > limit
	}
}

func IsExpensive(p *Product) bool {
	return p.Price > DefaultExpensiveOver
}

func ApplyDiscount(p *Product) {
	p.Price *= Discount
}
