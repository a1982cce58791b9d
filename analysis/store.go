package analysis

import (
	"context"
	"fmt"
)

// Store is the persistence collaborator. Implementations persist analysis
// records keyed by spectrum ID and method name and must return an error on
// any durability failure; storage errors are the one error class the engine
// propagates unchanged.
type Store interface {
	Save(ctx context.Context, spectrumID int, rec Record) error
	Load(ctx context.Context, spectrumID int, method string) (Record, error)
}

// Persist saves a record for the spectrum through the collaborator, wrapping
// any failure with the spectrum and method identity.
func Persist(ctx context.Context, store Store, spectrumID int, rec Record) error {
	if store == nil {
		return fmt.Errorf("persist %s for spectrum %d: no store configured", rec.MethodName, spectrumID)
	}

	if err := store.Save(ctx, spectrumID, rec); err != nil {
		return fmt.Errorf("persist %s for spectrum %d: %w", rec.MethodName, spectrumID, err)
	}

	return nil
}

// Reload fetches a persisted record for the spectrum, wrapping any failure
// with the spectrum and method identity.
func Reload(ctx context.Context, store Store, spectrumID int, method string) (Record, error) {
	if store == nil {
		return Record{}, fmt.Errorf("reload %s for spectrum %d: no store configured", method, spectrumID)
	}

	rec, err := store.Load(ctx, spectrumID, method)
	if err != nil {
		return Record{}, fmt.Errorf("reload %s for spectrum %d: %w", method, spectrumID, err)
	}

	return rec, nil
}
