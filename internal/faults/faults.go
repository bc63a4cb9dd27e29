package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIO            = errors.New("io error")
	ErrParse         = errors.New("parse error")
	ErrInvalidKey    = errors.New("invalid key")
	ErrMergeConflict = errors.New("merge conflict")
	ErrNotFound      = errors.New("not found")
	ErrConfig        = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether an error must abort a launch attempt rather than be
// skipped with a warning. Merge conflicts and configuration errors are
// all-or-nothing; the game must never start against partial state.
func Fatal(err error) bool {
	return errors.Is(err, ErrMergeConflict) || errors.Is(err, ErrConfig)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "launcher failure"
	}
	return strings.Join(parts, ": ")
}
