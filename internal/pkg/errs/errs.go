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

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark tags err so that errors.Is matches every given mark while the
// original message and stack stay intact. Both the standard library and
// cockroachdb's Is resolve the marks.
func Mark(err error, marks ...error) error {
	if len(marks) == 0 {
		return err
	}
	if err == nil {
		err, marks = marks[0], marks[1:]
		if len(marks) == 0 {
			return err
		}
	}
	for _, m := range marks {
		err = cr.Mark(err, m)
	}
	return &marked{cause: err, marks: marks}
}

type marked struct {
	cause error
	marks []error
}

func (m *marked) Error() string { return m.cause.Error() }
func (m *marked) Unwrap() error { return m.cause }

func (m *marked) Is(target error) bool {
	for _, mk := range m.marks {
		if mk == target {
			return true
		}
	}
	return false
}

func (m *marked) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", m.cause)
		return
	}
	fmt.Fprint(s, m.cause.Error())
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// IsAny reports whether err matches any of the references.
func IsAny(err error, refs ...error) bool {
	return cr.IsAny(err, refs...)
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
