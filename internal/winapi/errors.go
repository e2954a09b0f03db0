package winapi

import "fmt"

// CallError describes a failed Win32 call. It keeps the system error
// code separate from the message so callers can act on the code while
// still getting the canonical "<message> (Error=<code>)" rendering.
type CallError struct {
	// Op is the name of the API that failed, e.g. "GetWindowRect".
	Op string
	// Code is the GetLastError value at the time of failure.
	Code uint32
	// Message is the system-supplied description of Code.
	Message string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s (Error=%d)", e.Message, e.Code)
}
