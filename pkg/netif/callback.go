package netif

import "reflect"

// StateChangedHandler receives the accumulated change flags and the
// context supplied at registration.
//
// Handlers are matched with ==, so the dynamic type must be comparable.
// Pointer handlers match by identity.
type StateChangedHandler interface {
	HandleStateChanged(flags Flags, context any)
}

// StateChangedFunc is the function form of a handler. Wrap it with
// HandlerFunc to register it.
type StateChangedFunc func(flags Flags, context any)

// FuncHandler adapts a StateChangedFunc to StateChangedHandler.
type FuncHandler struct {
	fn StateChangedFunc
}

// HandlerFunc wraps fn in a handler with its own identity. Wrapping the
// same fn twice gives two distinct handlers; keep the result to remove the
// registration later. It returns nil for a nil fn.
func HandlerFunc(fn StateChangedFunc) *FuncHandler {
	if fn == nil {
		return nil
	}
	return &FuncHandler{fn: fn}
}

// HandleStateChanged calls the wrapped function.
func (h *FuncHandler) HandleStateChanged(flags Flags, context any) {
	h.fn(flags, context)
}

// ValidHandler reports whether h can be bound to a slot: it must be
// non-nil, hold no nil pointer and have a comparable dynamic type.
func ValidHandler(h StateChangedHandler) bool {
	if h == nil {
		return false
	}
	v := reflect.ValueOf(h)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	return v.Type().Comparable()
}

// Callback is a state-changed callback slot. The zero value is a free slot.
type Callback struct {
	handler StateChangedHandler
	context any
}

// Set binds the slot to a handler and context. The caller checks the
// handler with ValidHandler first.
func (c *Callback) Set(handler StateChangedHandler, context any) {
	c.handler = handler
	c.context = context
}

// Free releases the slot.
func (c *Callback) Free() {
	c.handler = nil
	c.context = nil
}

// IsFree reports whether the slot is unbound.
func (c *Callback) IsFree() bool {
	return c.handler == nil
}

// IsServing reports whether the slot is bound to exactly this handler and
// context. Handlers match with ==, contexts by value for comparable types
// and by identity for maps, funcs and slices.
func (c *Callback) IsServing(handler StateChangedHandler, context any) bool {
	if c.handler == nil || !ValidHandler(handler) {
		return false
	}
	return c.handler == handler && sameContext(c.context, context)
}

// Invoke calls the bound handler. It does nothing on a free slot.
func (c *Callback) Invoke(flags Flags) {
	if c.handler != nil {
		c.handler.HandleStateChanged(flags, c.context)
	}
}

// sameContext compares contexts without panicking. Maps, funcs and slices
// match by identity; other uncomparable values never match.
func sameContext(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}
