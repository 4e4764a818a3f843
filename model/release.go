package model

import "sync/atomic"

// Releases counts destructor calls; demos and tests read it to check that
// every element-copy was released exactly once.
type Releases struct {
	n atomic.Int64
}

func (r *Releases) Count() int64 {
	return r.n.Load()
}

// Person is a destructor for Person elements.
func (r *Releases) Person(*Person) {
	r.n.Add(1)
}

// Product is a destructor for Product elements.
func (r *Releases) Product(*Product) {
	r.n.Add(1)
}
