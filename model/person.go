package model

import (
	"fmt"
	"strings"
)

const (
	Name  = "name"
	Age   = "age"
	ID    = "id"
	Price = "price"
)

const AdultAge = 18

type Person struct {
	Name string `json:"name" yaml:"name" structs:"name"`
	Age  int    `json:"age" yaml:"age" structs:"age"`
}

func RenderPerson(p *Person) string {
	return fmt.Sprintf("%s(%d)", p.Name, p.Age)
}

// ComparePersonByName orders people by name only.
func ComparePersonByName(a, b *Person) int {
	return strings.Compare(a.Name, b.Name)
}

func IsAdult(p *Person) bool {
	return p.Age >= AdultAge
}

func MakeBirthday(p *Person) {
	p.Age++
}
