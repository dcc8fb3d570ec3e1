package gpi

import "fmt"

// Registry owns the ordered list of registered backends and is the only
// place multi-backend dispatch logic lives (spec.md §4.F). It is
// process-global in a real bootstrap; mutations (Register, interning,
// extension loading) only ever happen during startup, before any
// callback fires, so no locking is required under the single-threaded
// cooperative model of §5.
type Registry struct {
	backends []Backend
	intern   map[string]Object
	runtime  UserRuntime
}

// NewRegistry creates an empty registry. When internByPath is true,
// every handle this registry hands back for a given fully-qualified path
// is pointer-identical across repeated lookups (spec.md §3 "interned").
func NewRegistry(internByPath bool) *Registry {
	r := &Registry{}
	if internByPath {
		r.intern = make(map[string]Object)
	}
	return r
}

// SetUserRuntime attaches the collaborator that ReportCritical and the
// startup/shutdown callbacks notify. It is out of this spec's scope
// beyond the narrow hook it exposes (spec.md §1, §6).
func (r *Registry) SetUserRuntime(rt UserRuntime) { r.runtime = rt }

// Register adds a backend, rejecting a duplicate by name.
func (r *Registry) Register(b Backend) error {
	for _, existing := range r.backends {
		if existing.Name() == b.Name() {
			return fmt.Errorf("gpi: backend %q already registered", b.Name())
		}
	}
	r.backends = append(r.backends, b)
	return nil
}

// Backends returns the registered backends in registration order.
func (r *Registry) Backends() []Backend {
	out := make([]Backend, len(r.backends))
	copy(out, r.backends)
	return out
}

// GetRoot queries each backend in order and returns the first hit.
func (r *Registry) GetRoot(name string) (Object, bool) {
	for _, b := range r.backends {
		if obj, ok := b.GetRootHandle(name); ok {
			return r.maybeIntern(obj), true
		}
	}
	return nil, false
}

// LookupByName asks every backend except skip (if non-nil) to resolve
// localName under parent, in registration order, returning the first
// success. parent belongs to skip's backend (or to no backend at all),
// never to the backend being asked, so it cannot be handed across the
// trait boundary as-is: CheckCreateByName immediately type-asserts its
// parent argument against its own concrete Object type and would reject
// a foreign one. Instead this builds the fully-qualified candidate from
// parent's own full path (spec.md §4.F) and asks each candidate backend
// to resolve that absolute path from its own root, with no parent at
// all — the same way CheckCreateByRaw never needs a same-backend parent
// either.
func (r *Registry) LookupByName(parent Object, localName string, skip Backend) (Object, bool) {
	fqName := localName
	if parent != nil && parent.FullName() != "" {
		fqName = parent.FullName() + "." + localName
	}
	for _, b := range r.backends {
		if skip != nil && b.Name() == skip.Name() {
			continue
		}
		if obj, ok := b.CheckCreateByName(fqName, nil); ok {
			return r.maybeIntern(obj), true
		}
	}
	return nil, false
}

// LookupByIndex dispatches only to parent's owning backend; indexing
// never crosses backends.
func (r *Registry) LookupByIndex(parent Object, index int64) (Object, bool) {
	if parent == nil || parent.Backend() == nil {
		return nil, false
	}
	if obj, ok := parent.Backend().CheckCreateByIndex(index, parent); ok {
		return r.maybeIntern(obj), true
	}
	return nil, false
}

// LookupByRaw asks every backend except skip to adopt a raw native
// pointer surfaced by another backend's iterator.
func (r *Registry) LookupByRaw(parent Object, raw RawHandle, skip Backend) (Object, bool) {
	for _, b := range r.backends {
		if skip != nil && b.Name() == skip.Name() {
			continue
		}
		if obj, ok := b.CheckCreateByRaw(raw, parent); ok {
			return r.maybeIntern(obj), true
		}
	}
	return nil, false
}

// Next drives one iterator step to completion, delegating
// StepNotNative/StepNotNativeNoName results to the other backends via
// LookupByName/LookupByRaw, and silently skipping StepNativeNoName
// results, per spec.md §4.F.
func (r *Registry) Next(it Iterator) (Object, bool) {
	for {
		status, obj, name, raw := it.Next()
		switch status {
		case StepNative:
			return r.maybeIntern(obj), true
		case StepNativeNoName:
			continue
		case StepNotNative:
			if resolved, ok := r.LookupByName(it.Parent(), name, it.Owner()); ok {
				return resolved, true
			}
			continue
		case StepNotNativeNoName:
			if resolved, ok := r.LookupByRaw(it.Parent(), raw, it.Owner()); ok {
				return resolved, true
			}
			continue
		default: // StepEnd
			return nil, false
		}
	}
}

func (r *Registry) maybeIntern(obj Object) Object {
	if obj == nil || r.intern == nil {
		return obj
	}
	path := obj.FullName()
	if path == "" {
		return obj
	}
	if existing, ok := r.intern[path]; ok {
		return existing
	}
	r.intern[path] = obj
	return obj
}

// ReportCritical logs and, per spec.md §7, tears the simulation down for
// a Critical-severity error: it notifies the user runtime and ends every
// registered backend's simulation.
func (r *Registry) ReportCritical(err *SimError) {
	if r.runtime != nil {
		r.runtime.EmbedSimEvent(EventTestFail, err.Error())
	}
	for _, b := range r.backends {
		b.SimEnd()
	}
}
