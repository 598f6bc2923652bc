package section

// Active is the single current section id for a page view. It always holds a
// registry member and starts at the first section.
type Active struct {
	registry *Registry
	current  string
	onChange []func(id string)
}

// NewActive returns state positioned at the registry's first section.
func NewActive(r *Registry) *Active {
	return &Active{registry: r, current: r.First()}
}

// Current returns the active section id.
func (a *Active) Current() string {
	return a.current
}

// OnChange registers a callback invoked once per real change.
func (a *Active) OnChange(fn func(id string)) {
	a.onChange = append(a.onChange, fn)
}

// Set makes id active. Repeating the current id or naming an id outside the
// registry is a no-op. Reports whether the state changed.
func (a *Active) Set(id string) bool {
	if id == a.current || !a.registry.Has(id) {
		return false
	}
	a.current = id
	for _, fn := range a.onChange {
		fn(id)
	}
	return true
}

// Has reports whether id can become active.
func (a *Active) Has(id string) bool {
	return a.registry.Has(id)
}
