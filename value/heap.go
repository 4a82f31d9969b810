package value

// Heap owns every object allocated during one VM lifetime: the
// intrusive object list and the string intern table that indexes into
// it. spec.md describes the intern table as "owned by the VM" and
// consulted by both the compiler (for string-literal constants) and
// the VM (for runtime string concatenation); Heap is that shared
// owner, constructed once by vm.New and handed by reference to
// compiler.Compile so both sides intern into the same table and the
// same object list, matching the design note's "two explicitly passed
// context records" replacement for clox's globals.
type Heap struct {
	objects  *Object
	interner *InternTable
}

// NewHeap returns an empty heap: no objects, no interned strings.
func NewHeap() *Heap {
	return &Heap{interner: NewInternTable()}
}

// link prepends obj to the intrusive object list and returns it, per
// spec.md §3's "every allocation path must link the new object into
// that list before returning it."
func (h *Heap) link(obj *Object) *Object {
	obj.Next = h.objects
	h.objects = obj
	return obj
}

// CopyString interns chars, copying it into a fresh String object on
// a miss. Since Go strings are already immutable value types, "copy"
// here means what it means in spec.md: the caller's chars may be a
// transient slice (e.g. of scanner source text) that Heap must not
// assume stays alive or unchanged — which a Go string already
// guarantees by value, so no byte copy is needed, only the intern
// lookup/allocate decision clox's copyString performs.
func (h *Heap) CopyString(chars string) *String {
	hash := hashString(chars)
	if interned := h.interner.FindString(chars, hash); interned != nil {
		return interned
	}
	return h.internNewString(chars, hash)
}

// TakeString interns owned, a buffer the caller produced expressly to
// hand off (e.g. the result of string concatenation in vm.run's
// OP_ADD case). On an intern hit it discards owned — mirroring
// clox's takeString, which frees the passed-in buffer in that case —
// which in Go is simply letting it become garbage.
func (h *Heap) TakeString(owned string) *String {
	hash := hashString(owned)
	if interned := h.interner.FindString(owned, hash); interned != nil {
		return interned
	}
	return h.internNewString(owned, hash)
}

func (h *Heap) internNewString(chars string, hash uint32) *String {
	s := &String{Chars: chars, Hash: hash}
	obj := h.link(&Object{Type: ObjString, str: s})
	s.obj = obj
	h.interner.Set(s, Nil)
	return s
}

// ValueForString wraps an already-interned String in a Value, reusing
// its owning Object's identity so Value equality (handle identity)
// agrees with content equality for interned strings (spec.md §8
// invariant 5).
func ValueForString(s *String) Value {
	return Value{Kind: KindObject, Obj: s.obj}
}

// Free drops every reference this heap holds. Objects become
// unreachable garbage for Go's collector to reclaim; spec.md §3/§5's
// "walk the list freeing each object" has no manual-free equivalent
// in Go, so Free's job is solely to sever the references that would
// otherwise keep the objects and intern table reachable, satisfying
// spec.md §8 invariant 8 ("no object allocated during its lifetime
// remains reachable" from the heap itself, post-Free).
func (h *Heap) Free() {
	h.objects = nil
	h.interner = NewInternTable()
}

// Objects exposes the intrusive list head, for tests asserting
// teardown behavior without reaching into Heap's internals.
func (h *Heap) Objects() *Object {
	return h.objects
}
