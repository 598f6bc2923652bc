// Package section holds the navigable section registry, the active-section
// state and the visible-area geometry shared by the scroll subsystem.
package section

import "github.com/kastheco/folio/content"

// Well-known section ids in document order.
const (
	Home       = "home"
	Projects   = "projects"
	Experience = "experience"
	Hobbies    = "hobbies"
	Contact    = "contact"
)

// Icon is an opaque glyph reference rendered by the navigation surfaces.
type Icon string

const (
	IconHome       Icon = "⌂"
	IconProjects   Icon = "◈"
	IconExperience Icon = "▣"
	IconHobbies    Icon = "◉"
	IconContact    Icon = "✉"
)

// Descriptor describes one navigable section.
type Descriptor struct {
	ID    string
	Label string
	Icon  Icon
}

// Registry is the ordered, immutable list of sections for one page mount.
type Registry struct {
	items []Descriptor
	index map[string]int
}

// NewRegistry builds a registry from descriptors. Duplicate ids keep their
// first occurrence.
func NewRegistry(items ...Descriptor) *Registry {
	r := &Registry{index: make(map[string]int, len(items))}
	for _, d := range items {
		if _, dup := r.index[d.ID]; dup || d.ID == "" {
			continue
		}
		r.index[d.ID] = len(r.items)
		r.items = append(r.items, d)
	}
	return r
}

// Build derives the registry from which content groups are populated. The
// home section is always present and always first.
func Build(data *content.Data) *Registry {
	items := []Descriptor{{ID: Home, Label: "Home", Icon: IconHome}}
	if data == nil {
		return NewRegistry(items...)
	}
	if data.HasProjects() {
		items = append(items, Descriptor{ID: Projects, Label: "Projects", Icon: IconProjects})
	}
	if data.HasExperience() {
		items = append(items, Descriptor{ID: Experience, Label: "Experience", Icon: IconExperience})
	}
	if data.HasHobbies() {
		items = append(items, Descriptor{ID: Hobbies, Label: "Hobbies", Icon: IconHobbies})
	}
	if data.HasContact() {
		items = append(items, Descriptor{ID: Contact, Label: "Contact", Icon: IconContact})
	}
	return NewRegistry(items...)
}

func (r *Registry) Len() int { return len(r.items) }

func (r *Registry) At(i int) Descriptor { return r.items[i] }

// All returns a copy of the descriptors in order.
func (r *Registry) All() []Descriptor {
	return append([]Descriptor(nil), r.items...)
}

// IDs returns the section ids in order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.items))
	for i, d := range r.items {
		ids[i] = d.ID
	}
	return ids
}

func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Index returns the position of id, or -1.
func (r *Registry) Index(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// First returns the first section id, or "" for an empty registry.
func (r *Registry) First() string {
	if len(r.items) == 0 {
		return ""
	}
	return r.items[0].ID
}

// Get returns the descriptor for id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	i, ok := r.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.items[i], true
}

// Next returns the id after id, clamped to the last section.
func (r *Registry) Next(id string) string {
	return r.offset(id, 1)
}

// Prev returns the id before id, clamped to the first section.
func (r *Registry) Prev(id string) string {
	return r.offset(id, -1)
}

func (r *Registry) offset(id string, delta int) string {
	if len(r.items) == 0 {
		return ""
	}
	i := r.Index(id)
	if i < 0 {
		return r.First()
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i >= len(r.items) {
		i = len(r.items) - 1
	}
	return r.items[i].ID
}
