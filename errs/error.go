package errs

import "fmt"

// IllegalArgument - Custom error to inform that an argument was outside its permitted range
type IllegalArgument struct {
	msg string
}

// NewIllegalArgument - Returns an IllegalArgument error with a formatted message
func NewIllegalArgument(format string, a ...any) IllegalArgument {
	return IllegalArgument{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that an argument was illegal
func (E IllegalArgument) Error() string {
	if E.msg == "" {
		return "illegal argument"
	}
	return E.msg
}

// Is - Matches any IllegalArgument regardless of message
func (E IllegalArgument) Is(target error) bool {
	_, ok := target.(IllegalArgument)
	return ok
}

// NullArgument - Custom error to inform that a nil element was given where it is not permitted
type NullArgument struct {
	msg string
}

// NewNullArgument - Returns a NullArgument error with a formatted message
func NewNullArgument(format string, a ...any) NullArgument {
	return NullArgument{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that a nil argument was given
func (E NullArgument) Error() string {
	if E.msg == "" {
		return "nil argument"
	}
	return E.msg
}

// Is - Matches any NullArgument regardless of message
func (E NullArgument) Is(target error) bool {
	_, ok := target.(NullArgument)
	return ok
}

// IllegalState - Custom error to inform that a call was made out of protocol order
type IllegalState struct {
	msg string
}

// NewIllegalState - Returns an IllegalState error with a formatted message
func NewIllegalState(format string, a ...any) IllegalState {
	return IllegalState{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify an illegal state
func (E IllegalState) Error() string {
	if E.msg == "" {
		return "illegal state"
	}
	return E.msg
}

// Is - Matches any IllegalState regardless of message
func (E IllegalState) Is(target error) bool {
	_, ok := target.(IllegalState)
	return ok
}

// ConcurrentModification - Custom error to inform that a container was structurally modified
// while being iterated, by other means than the iterator itself.
// Detection is best-effort only and must never be relied upon for correctness.
type ConcurrentModification struct {
	msg string
}

// Error - Used to notify that a concurrent modification was detected
func (E ConcurrentModification) Error() string {
	if E.msg == "" {
		return "concurrent modification"
	}
	return E.msg
}

// Is - Matches any ConcurrentModification regardless of message
func (E ConcurrentModification) Is(target error) bool {
	_, ok := target.(ConcurrentModification)
	return ok
}

// NoSuchElement - Custom error to inform that there are no more elements to fetch
type NoSuchElement struct {
	msg string
}

// Error - Used to notify that no element was found
func (E NoSuchElement) Error() string {
	if E.msg == "" {
		return "no such element"
	}
	return E.msg
}

// Is - Matches any NoSuchElement regardless of message
func (E NoSuchElement) Is(target error) bool {
	_, ok := target.(NoSuchElement)
	return ok
}
