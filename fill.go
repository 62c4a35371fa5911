package kv

// Filler produces a Value on demand. Fill must call slot.Fill exactly once,
// before it returns.
type Filler interface {
	Fill(slot *Slot) error
}

// Slot accepts the single Value a Filler produces and dispatches it into the
// pending visitor. A Slot is only active for the duration of the Fill call
// it was handed to; the zero Slot is never active.
type Slot struct {
	filled  bool
	visitor visitor
}

// Fill dispatches value. Filling a slot twice, or outside its Fill call, is
// an error.
func (s *Slot) Fill(value Value) error {
	if s == nil || s.visitor == nil {
		return errorMsg("slot is not active")
	}
	if s.filled {
		return errorMsg("slot already filled")
	}
	s.filled = true
	return value.visit(s.visitor)
}

func fillInto(f Filler, vis visitor) error {
	slot := &Slot{visitor: vis}
	err := f.Fill(slot)
	filled := slot.filled
	slot.visitor = nil
	slot.filled = true
	if err != nil {
		return err
	}
	if !filled {
		return errorMsg("slot was not filled")
	}
	return nil
}
