package retime

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// ConfirmQuestion closes the preview.
const ConfirmQuestion = "Do you want to proceed? (y/n)"

// instantLayout is RFC 3339 with fractional seconds shown only when present.
const instantLayout = "2006-01-02T15:04:05.999999999Z07:00"

// FormatInstant renders t in its own location.
func FormatInstant(t time.Time) string {
	return t.Format(instantLayout)
}

// WritePreview prints every planned change in order, followed by the
// confirmation question. Current modification times are shown in the zone of
// the planned instants.
func WritePreview(w io.Writer, plan *Plan) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Files to be updated (in this order):")
	for _, c := range plan.Changes {
		current := c.Entry.ModTime().In(c.Target.Location())
		fmt.Fprintf(bw, "%s: %s -> %s\n", c.Entry.Name(), FormatInstant(current), FormatInstant(c.Target))
	}
	fmt.Fprintln(bw, ConfirmQuestion)
	return bw.Flush()
}

// Confirm reads a single line from r and reports whether it is "y" or "yes",
// ignoring case and surrounding whitespace. A read failure counts as no.
func Confirm(r io.Reader) bool {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false
	}
	return IsAffirmative(line)
}

// IsAffirmative reports whether answer is "y" or "yes" after case folding and trimming.
func IsAffirmative(answer string) bool {
	switch strings.TrimSpace(strings.ToLower(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
