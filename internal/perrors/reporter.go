package perrors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter formats PropagationErrors for a terminal, colorizing by
// kind.
type Reporter struct{}

// NewReporter creates a Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Format renders err as a single colorized, human-readable line (plus a
// dim context line when Context is set).
func (r *Reporter) Format(err *PropagationError) string {
	var b strings.Builder

	kindColor := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(&b, "%s: %s\n", kindColor(string(err.Kind)), err.Message)
	if err.Context != "" {
		fmt.Fprintf(&b, "  %s %s\n", dim("at"), dim(err.Context))
	}
	return b.String()
}
