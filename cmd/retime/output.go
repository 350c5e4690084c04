package main

import (
	"fmt"
	"io"
	"time"

	"retime/internal/retime"
)

// writeRuns prints one line per run: #<id> <started> <status> <changes> <dir>.
func writeRuns(w io.Writer, runs []*retime.Run, loc *time.Location) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	for _, r := range runs {
		fmt.Fprintf(w, "#%s %s %s %d %s\n",
			r.ID,
			retime.FormatInstant(r.StartedAt.In(loc)),
			r.Status,
			r.Changes,
			r.Dir,
		)
	}
}

// writeChanges prints one line per applied change: <name>: <previous> -> <new>.
func writeChanges(w io.Writer, changes []*retime.AppliedChange, loc *time.Location) {
	if len(changes) == 0 {
		fmt.Fprintln(w, "No changes recorded.")
		return
	}
	for _, c := range changes {
		fmt.Fprintf(w, "%s: %s -> %s\n",
			c.Name,
			retime.FormatInstant(c.Previous.In(loc)),
			retime.FormatInstant(c.Target.In(loc)),
		)
	}
}
