package entities

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
)

// VerificationError is a single manifest-shape problem.
type VerificationError struct {
	Text string
}

func (e VerificationError) Error() string { return e.Text }

// NewVerificationError formats a VerificationError.
func NewVerificationError(format string, args ...any) VerificationError {
	return VerificationError{Text: fmt.Sprintf(format, args...)}
}

// VerificationErrorList collects every problem found in a verification pass, in
// the order they were found.
type VerificationErrorList struct {
	items []VerificationError
}

// Append adds the results of one check to the list.
func (l *VerificationErrorList) Append(errs ...VerificationError) {
	for _, err := range errs {
		logger.Debugf("Pushing error: %s", err.Text)
	}
	l.items = append(l.items, errs...)
}

// Items returns a copy of the collected errors.
func (l *VerificationErrorList) Items() []VerificationError {
	if l == nil {
		return nil
	}
	return append([]VerificationError(nil), l.items...)
}

// Len is nil-safe; a nil list holds no errors.
func (l *VerificationErrorList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Err returns nil when nothing was collected, ErrVerificationFailed otherwise.
func (l *VerificationErrorList) Err() error {
	if l.Len() == 0 {
		return nil
	}
	return fmt.Errorf("%w: found %d errors", ErrVerificationFailed, l.Len())
}
