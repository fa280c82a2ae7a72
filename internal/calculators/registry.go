package calculators

import (
	"sort"

	"github.com/mortcalc/mortcalc/internal/domain"
)

// Field describes one input a calculator accepts, enough for a shell (CLI
// help, TUI form, HTTP API listing) to collect it without knowing the
// calculator's typed input struct.
type Field struct {
	Key      string      `json:"key"`
	Label    string      `json:"label"`
	Unit     domain.Unit `json:"unit"`
	Default  string      `json:"default,omitempty"`
	Required bool        `json:"required,omitempty"`
}

// Descriptor is a calculator's registry entry: identity, input metadata and
// a runner that decodes a flat parameter map into the typed inputs.
type Descriptor struct {
	Slug        string                      `json:"slug"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Fields      []Field                     `json:"fields"`
	Run         func(Params) *domain.Result `json:"-"`
}

// Registry holds the built-in calculators in display order.
type Registry struct {
	ordered []*Descriptor
	bySlug  map[string]*Descriptor
}

// NewRegistry builds a registry from descriptors, preserving order.
func NewRegistry(descriptors ...*Descriptor) *Registry {
	r := &Registry{bySlug: make(map[string]*Descriptor, len(descriptors))}
	for _, d := range descriptors {
		r.ordered = append(r.ordered, d)
		r.bySlug[d.Slug] = d
	}
	return r
}

// BuiltIn returns the full calculator registry.
func BuiltIn() *Registry {
	return NewRegistry(
		affordabilityDescriptor(),
		mortgageCostDescriptor(),
		downPaymentDescriptor(),
		refinanceDescriptor(),
		cashOutDescriptor(),
		recastVsRefiDescriptor(),
		pointsDescriptor(),
		armVsFixedDescriptor(),
		timelineDescriptor(),
		extraPaymentDescriptor(),
		accelerationDescriptor(),
		biweeklyDescriptor(),
		interestSensitivityDescriptor(),
		amortizationTableDescriptor(),
		dtiDescriptor(),
		closingCostsDescriptor(),
		pmiDescriptor(),
		fhaDescriptor(),
		vaDescriptor(),
		rentVsBuyDescriptor(),
	)
}

// All returns the descriptors in display order.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Lookup returns the descriptor for a slug.
func (r *Registry) Lookup(slug string) (*Descriptor, bool) {
	d, ok := r.bySlug[slug]
	return d, ok
}

// Slugs returns all registered slugs, sorted.
func (r *Registry) Slugs() []string {
	out := make([]string, 0, len(r.bySlug))
	for slug := range r.bySlug {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// MissingRequired returns the keys of required fields absent from params.
func (d *Descriptor) MissingRequired(p Params) []string {
	var missing []string
	for _, f := range d.Fields {
		if !f.Required {
			continue
		}
		if _, ok := p[f.Key]; !ok {
			missing = append(missing, f.Key)
		}
	}
	return missing
}
