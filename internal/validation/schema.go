package validation

import (
	"sort"
	"strings"
)

// IDField is the store-assigned identifier key. It is never client settable.
const IDField = "id"

// Mode selects how a payload is validated.
type Mode int

const (
	// ModeCreate validates a full record: absent or null fields stay empty and
	// unrecognized keys fail the whole payload.
	ModeCreate Mode = iota
	// ModePartial validates only the keys present in the payload.
	ModePartial
)

// Values holds normalized field values keyed by field name.
type Values map[string]interface{}

// FieldErrors maps a field name to a client facing message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

// NotAllowedError names payload keys outside the accepted set.
type NotAllowedError struct {
	Fields []string
}

func (e *NotAllowedError) Error() string {
	return "Campos no permitidos: " + strings.Join(e.Fields, ", ")
}

// FieldSet is a whitelist of payload keys.
type FieldSet map[string]struct{}

// NewFieldSet builds a FieldSet from names.
func NewFieldSet(names ...string) FieldSet {
	set := make(FieldSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Has reports whether name is in the set.
func (s FieldSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Target receives validated values during a merge.
type Target interface {
	SetField(name string, value interface{})
}

// Rule binds a field to its validator and rejection message.
type Rule struct {
	Field   string
	Message string
	Check   func(Value) (interface{}, bool)
}

// Schema is an ordered list of rules for one record kind.
type Schema struct {
	rules []Rule
	known FieldSet
}

// NewSchema keeps the rules in the given order, which is also the merge order.
func NewSchema(rules ...Rule) *Schema {
	known := make(FieldSet, len(rules))
	for _, r := range rules {
		known[r.Field] = struct{}{}
	}
	return &Schema{rules: rules, known: known}
}

// Validate checks every applicable field independently. The error is nil,
// FieldErrors or *NotAllowedError.
func (s *Schema) Validate(p Payload, mode Mode) (Values, error) {
	if mode == ModeCreate {
		var unknown []string
		for _, key := range p.Keys() {
			if key != IDField && !s.known.Has(key) {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			return nil, &NotAllowedError{Fields: unknown}
		}
	}

	values := make(Values)
	errs := make(FieldErrors)
	for _, rule := range s.rules {
		raw, present := p[rule.Field]
		if !present || (mode == ModeCreate && raw.IsNull()) {
			continue
		}
		normalized, ok := rule.Check(raw)
		if !ok {
			errs[rule.Field] = rule.Message
			continue
		}
		values[rule.Field] = normalized
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

// PrepareUpdate guards the whitelist, strips the identifier and validates the
// remaining keys in partial mode.
func (s *Schema) PrepareUpdate(p Payload, allowed FieldSet) (Values, error) {
	var unknown []string
	for _, key := range p.Keys() {
		if !allowed.Has(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return nil, &NotAllowedError{Fields: unknown}
	}

	stripped := make(Payload, len(p))
	for k, v := range p {
		if k != IDField {
			stripped[k] = v
		}
	}
	return s.Validate(stripped, ModePartial)
}

// ApplyUpdate merges a payload into target. Nothing is written unless every
// present field validates. Services that must reject a payload before loading
// the target call PrepareUpdate and Merge separately, which is equivalent.
func (s *Schema) ApplyUpdate(target Target, p Payload, allowed FieldSet) error {
	values, err := s.PrepareUpdate(p, allowed)
	if err != nil {
		return err
	}
	s.Merge(target, values)
	return nil
}

// Merge writes already validated values into target in rule order.
func (s *Schema) Merge(target Target, values Values) {
	for _, rule := range s.rules {
		if v, ok := values[rule.Field]; ok {
			target.SetField(rule.Field, v)
		}
	}
}
