package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Category reports which failure category err belongs to, or "" when none.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case cr.Is(err, ErrNotFound):
		return "not_found"
	case cr.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case cr.Is(err, ErrConflict):
		return "conflict"
	default:
		return ""
	}
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
