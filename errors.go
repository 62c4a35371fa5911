package kv

// Error is the single error kind produced while visiting a Value. Callers see
// a message and, for writer failures, the underlying cause via errors.Unwrap.
type Error struct {
	msg   string
	cause error
}

func errorMsg(msg string) *Error {
	return &Error{msg: msg}
}

func errorWrap(msg string, cause error) *Error {
	return &Error{msg: msg, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "kv: <nil>"
	}
	if e.cause != nil {
		return "kv: " + e.msg + ": " + e.cause.Error()
	}
	return "kv: " + e.msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

