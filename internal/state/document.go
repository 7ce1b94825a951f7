package state

// Document is the canonical ordered element list for one whiteboard
// session plus its revision counter. Revision strictly increases on every
// locally committed mutation; peers reconcile by accepting the higher
// revision wholesale.
type Document struct {
	Revision uint64    `json:"revision"`
	Elements []Element `json:"elements"`
}

// Clone returns a deep-enough copy: the element slice is copied so callers
// can hold a snapshot across later mutations. Element payloads are treated
// as immutable after creation, so they are shared.
func (d Document) Clone() Document {
	out := Document{Revision: d.Revision}
	if d.Elements != nil {
		out.Elements = make([]Element, len(d.Elements))
		copy(out.Elements, d.Elements)
	}
	return out
}

// Find returns the element with the given id and whether it exists.
func (d Document) Find(id string) (Element, bool) {
	for _, el := range d.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}
