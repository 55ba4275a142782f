package indexrun

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidReporter indicates a reporter token outside the known set.
var ErrInvalidReporter = errors.New("invalid reporter")

// ReporterKind selects the progress reporter the pipeline should use.
type ReporterKind string

// ReporterKind values, in declaration order.
const (
	ReporterRich  ReporterKind = "rich"
	ReporterPrint ReporterKind = "print"
	ReporterNone  ReporterKind = "none"
)

// ReporterKinds returns every reporter kind in declaration order.
func ReporterKinds() []ReporterKind {
	return []ReporterKind{ReporterRich, ReporterPrint, ReporterNone}
}

// ParseReporterKind parses a case-sensitive reporter token.
func ParseReporterKind(s string) (ReporterKind, error) {
	for _, k := range ReporterKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (choose from %s)", ErrInvalidReporter, s, reporterChoices())
}

// String returns the token for the reporter kind.
func (k ReporterKind) String() string {
	return string(k)
}

func reporterChoices() string {
	kinds := ReporterKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
