package importer

import (
	"context"
	"io"

	"termcal/internal"
)

// Importer mirrors a provider's events into the local store: every
// event in the stream is upserted under its provider id, and imported
// events missing from the stream are pruned afterwards. Manually
// created events are never touched.
type Importer struct {
	w     io.Writer
	store internal.ImportStore
}

func New(w io.Writer, store internal.ImportStore) *Importer {
	return &Importer{
		w:     w,
		store: store,
	}
}

func (i *Importer) Run(ctx context.Context, events internal.Iterator) error {
	var (
		keep     []string
		imported int
	)
	for events.Next() {
		ev := events.Event()
		if err := i.store.UpsertImported(ctx, ev); err != nil {
			return err
		}
		keep = append(keep, ev.GoogleID)
		imported++
	}
	if err := events.Err(); err != nil {
		return err
	}

	pruned, err := i.store.PruneImported(ctx, keep)
	if err != nil {
		return err
	}

	internal.Logf(i.w, "import:", "%d events imported, %d stale removed", imported, pruned)
	return nil
}
