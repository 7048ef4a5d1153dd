package scene

import (
	"fmt"
)

// Handle identifies an object inside a Registry. The zero Handle is never valid.
type Handle int

// Object is a snapshot of one registered object.
type Object struct {
	Handle Handle
	Kind   Kind
	Attributes
}

// Registry is the ordered collection of scene objects.
// It is owned by a single goroutine (the tick loop) and is not safe for
// concurrent use.
type Registry struct {
	objects []Object
	sealed  bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Create validates the attributes and adds a new object.
// Creation is rejected once the registry is sealed.
func (r *Registry) Create(kind Kind, a Attributes) (Handle, error) {
	if r.sealed {
		return 0, ErrSealed
	}
	if err := a.Validate(kind); err != nil {
		return 0, err
	}

	h := Handle(len(r.objects) + 1)
	r.objects = append(r.objects, Object{Handle: h, Kind: kind, Attributes: a})
	return h, nil
}

// Get returns the current attributes of an object.
func (r *Registry) Get(h Handle) (Attributes, error) {
	obj, err := r.lookup(h)
	if err != nil {
		return Attributes{}, err
	}
	return obj.Attributes, nil
}

// Kind returns the kind of an object.
func (r *Registry) Kind(h Handle) (Kind, error) {
	obj, err := r.lookup(h)
	if err != nil {
		return 0, err
	}
	return obj.Kind, nil
}

// Set replaces the attributes of an object.
// Invalid attributes are rejected and the object keeps its previous state.
func (r *Registry) Set(h Handle, a Attributes) error {
	obj, err := r.lookup(h)
	if err != nil {
		return err
	}
	if err := a.Validate(obj.Kind); err != nil {
		return err
	}
	obj.Attributes = a
	return nil
}

// Seal fixes the set of objects. Called when the animation loop starts.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Len returns the number of objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// Handles returns the handles of all objects in creation order.
func (r *Registry) Handles() []Handle {
	hs := make([]Handle, len(r.objects))
	for i, o := range r.objects {
		hs[i] = o.Handle
	}
	return hs
}

// Snapshot returns a copy of every object in creation order.
func (r *Registry) Snapshot() []Object {
	out := make([]Object, len(r.objects))
	copy(out, r.objects)
	return out
}

func (r *Registry) lookup(h Handle) (*Object, error) {
	if h <= 0 || int(h) > len(r.objects) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return &r.objects[h-1], nil
}
