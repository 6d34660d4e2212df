package control

import "fmt"

// Registry maps law names to factories over the instance attributes.
type Registry struct {
	laws map[string]func(Attrs) Law
}

// NewRegistry returns a registry with the built-in laws. The "pdff"
// law is the default an instance gets when its attributes name none.
func NewRegistry() *Registry {
	r := &Registry{laws: make(map[string]func(Attrs) Law)}

	r.laws["pdff"] = func(a Attrs) Law {
		return NewPDFF(a.Float("kp", 0), a.Float("kd", 0))
	}
	r.laws["pidff"] = func(a Attrs) Law {
		return NewPIDFF(
			a.Float("kp", 0), a.Float("ki", 0),
			a.Float("kd", 0), a.Float("tf", 0))
	}
	r.laws["spring"] = func(a Attrs) Law {
		return NewSpringDamper(
			a.Float("stiffness", 100.0), a.Float("damping", 10.0),
			a.Float("restlength", 0))
	}

	return r
}

// Register adds or replaces a law factory.
func (r *Registry) Register(name string, fn func(Attrs) Law) {
	r.laws[name] = fn
}

// Make builds the law the attributes ask for. An empty "law" attribute
// means pdff. Unknown names are a configuration error.
func (r *Registry) Make(attrs Attrs) (Law, error) {
	name := attrs.Str("law")
	if name == "" {
		name = "pdff"
	}
	fn, ok := r.laws[name]
	if !ok {
		return nil, fmt.Errorf("unknown control law: %s", name)
	}
	return fn(attrs), nil
}

// Names lists the registered law names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.laws))
	for name := range r.laws {
		names = append(names, name)
	}
	return names
}
