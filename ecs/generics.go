package ecs

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, handle ComponentHandle[T], value *T) error {
	if w == nil || !w.IsAlive(e) {
		return ErrEntityNotAlive
	}
	if !handle.Kind().Valid() {
		return ErrInvalidComponentKind
	}
	if value == nil {
		return ErrNilComponent
	}
	w.store(handle.Kind().ID(), true).Set(e.id(), value)
	return nil
}

// Remove detaches the component from e. It reports whether one was present.
func Remove[T any](w *World, e Entity, handle ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Remove(e.id())
}

// Has reports whether e carries the component.
func Has[T any](w *World, e Entity, handle ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Has(e.id())
}

// Get returns a pointer to e's component. Mutations through the pointer are
// visible to every later reader.
func Get[T any](w *World, e Entity, handle ComponentHandle[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.store(handle.Kind().ID(), false).Get(e.id()).(*T)
	return v, ok
}

// ForEach calls fn for every entity carrying the component, in id order.
func ForEach[T any](w *World, handle ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(handle.Kind()) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}

// Singleton returns the component from the first entity that has it.
func Singleton[T any](w *World, handle ComponentHandle[T]) (*T, bool) {
	e, ok := w.First(handle.Kind())
	if !ok {
		return nil, false
	}
	return Get(w, e, handle)
}
