package scene

// Resource tracks disposal of GPU-backed data (geometry, material).
// Renderers register release hooks with OnDispose; Dispose runs them once.
type Resource struct {
	disposed bool
	hooks    []func()
}

// OnDispose registers fn to run when the resource is disposed. If the
// resource is already disposed, fn runs immediately.
func (r *Resource) OnDispose(fn func()) {
	if r.disposed {
		fn()
		return
	}
	r.hooks = append(r.hooks, fn)
}

// Dispose releases the resource. Calling it again does nothing.
func (r *Resource) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	hooks := r.hooks
	r.hooks = nil
	for _, fn := range hooks {
		fn()
	}
}

// Disposed reports whether Dispose has been called.
func (r *Resource) Disposed() bool {
	return r.disposed
}
