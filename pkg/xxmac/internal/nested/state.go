package nested

// State is an incremental MAC computation. States must be created with NewState; the zero value
// has no width and cannot be used.
//
// A State moves from fresh (after Reset) to accumulating (after Write) to finalized (after
// Digest). Writes to a finalized State panic until it is Reset again.
type State[D any] struct {
	w     *Width[D]
	h     Hasher[D]
	outer D
	final bool
}

// NewState returns a State keyed with the given key.
func NewState[D any](w *Width[D], key D) *State[D] {
	s := &State[D]{w: w}
	s.Reset(key)

	return s
}

// Reset re-keys the State, discarding any data written to it.
func (s *State[D]) Reset(key D) {
	if s.w == nil {
		panic(ErrNoWidth)
	}

	if s.h == nil {
		s.h = s.w.New()
	} else {
		s.h.Reset()
	}

	inner, outer := Keys(s.w, key)
	writeKey(s.w, s.h, inner)

	s.outer = outer
	s.final = false
}

// Write adds p to the message.
func (s *State[D]) Write(p []byte) (int, error) {
	s.check()

	return s.h.Write(p)
}

// WriteString adds str to the message.
func (s *State[D]) WriteString(str string) (int, error) {
	s.check()

	return s.h.WriteString(str)
}

// Digest returns the MAC of the message written so far and finalizes the State. It may be called
// repeatedly and always returns the same value until the next Reset.
func (s *State[D]) Digest() D {
	if s.h == nil {
		panic(ErrUninitialized)
	}

	s.final = true

	return finish(s.w, s.outer, s.h.Digest())
}

// Finalized returns true if Digest has been called since the last Reset.
func (s *State[D]) Finalized() bool {
	return s.final
}

func (s *State[D]) check() {
	if s.h == nil {
		panic(ErrUninitialized)
	}

	if s.final {
		panic(ErrFinalized)
	}
}
