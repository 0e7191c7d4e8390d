package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/richinex/substrseq/storage"
)

// PrintHistory lists recent batch runs.
func PrintHistory(ctx context.Context, store storage.AnswerStore, w io.Writer, limit int) error {
	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		status := "running"
		if !r.FinishedAt.IsZero() {
			status = r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
		}
		fmt.Fprintf(w, "%s  %s  %-11s total=%d failed=%d cached=%d  %s\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.Mode, r.Total, r.Failed, r.Cached, status)
	}
	return nil
}
