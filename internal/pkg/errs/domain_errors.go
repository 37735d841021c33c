package errs

// Failure categories shared by every use case. Concrete errors are marked with
// exactly one of these so transports can map them without knowing the details.
var (
	ErrNotFound       = New("not found")
	ErrInvalidRequest = New("invalid request")
	ErrConflict       = New("conflict")
)

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func InvalidRequest(msg string) error {
	return Mark(New(msg), ErrInvalidRequest)
}

func Conflict(msg string) error {
	return Mark(New(msg), ErrConflict)
}
