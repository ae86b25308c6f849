package legal

import "sort"

// Registry provides read-only access to the firm's legal practice areas and
// the vocabulary associated with each of them. The data is fixed at process
// start and never mutated.
type Registry struct {
	names []string
	terms map[string][]string
}

// NewRegistry returns a registry over the built-in practice area table.
func NewRegistry() *Registry {
	names := make([]string, 0, len(domainTerms))
	for name := range domainTerms {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Registry{
		names: names,
		terms: domainTerms,
	}
}

// Names returns all domain names in a stable alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Terms returns the term vocabulary for the given domain name.
func (r *Registry) Terms(name string) ([]string, bool) {
	terms, ok := r.terms[name]
	return terms, ok
}

// Contains reports whether the registry knows the given domain name.
func (r *Registry) Contains(name string) bool {
	_, ok := r.terms[name]
	return ok
}

// Len returns the number of registered domains.
func (r *Registry) Len() int {
	return len(r.names)
}
