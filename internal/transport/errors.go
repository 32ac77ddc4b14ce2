package transport

import (
	"fmt"
	"net"
	"syscall"

	"github.com/pkg/errors"
)

// Error is returned when a request never produced a response: the
// connection failed, timed out, or the HTTP stack gave up.
type Error struct {
	// Code is the OS error number when one is available, otherwise 0.
	Code    int
	Message string
	Timeout bool
	Err     error
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("transport error %d: %s", e.Code, e.Message)
	}
	return "transport error: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsError reports whether err is (or wraps) a transport error.
func IsError(err error) bool {
	var te *Error
	return errors.As(err, &te)
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Timeout
	}
	return false
}

func newError(err error) *Error {
	e := &Error{Message: err.Error(), Err: err}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Code = int(errno)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		e.Timeout = true
	}
	return e
}
