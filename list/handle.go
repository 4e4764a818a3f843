package list

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle identifies one element-copy of one sequence. Updating the element
// issues a new handle; the previous one no longer resolves.
type Handle struct {
	owner uuid.UUID
	id    uint64
	gen   uint32
}

// IsZero reports whether h was never issued by a sequence.
func (h Handle) IsZero() bool {
	return h.owner == uuid.Nil
}

func (h Handle) String() string {
	if h.IsZero() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%s#%d.%d)", h.owner.String()[:8], h.id, h.gen)
}
