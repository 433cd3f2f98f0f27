package errorx

import "fmt"

type Error struct {
	Code    Code
	Message string

	// Fields holds per-field messages of a failed validation, keyed by the
	// json name of the field.
	Fields map[string]string

	// Redirect is the path of the resource the client should be sent to
	// instead of showing an error page.
	Redirect string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func NewValidation(fields map[string]string) Error {
	return Error{Code: BadRequest, Message: "Invalid input", Fields: fields}
}

func (e Error) WithRedirect(path string) Error {
	e.Redirect = path
	return e
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether target is an Error with the same code.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}

	return e.Code == t.Code
}
