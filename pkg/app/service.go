package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/picklist/pkg/lists"
)

// Store is the writable side of a catalog.
type Store interface {
	Lists(ctx context.Context) ([]lists.Record, error)
	Put(rec *lists.Record) error
	Delete(id string) error
}

// Service provides catalog mutations shared by the CLI commands.
type Service struct {
	Store Store
}

// Import stores every record and returns them with their final IDs.
func (s *Service) Import(ctx context.Context, records []lists.Record) ([]lists.Record, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	out := make([]lists.Record, 0, len(records))
	for i := range records {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		rec := records[i]
		if rec.Name == "" {
			return out, fmt.Errorf("app: record %d has no name", i)
		}
		if err := s.Store.Put(&rec); err != nil {
			return out, fmt.Errorf("app: store %q: %w", rec.Name, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Remove deletes the list with the given ID, or the first list called id when
// no ID matches.
func (s *Service) Remove(ctx context.Context, id string) (lists.Record, error) {
	if s.Store == nil {
		return lists.Record{}, errors.New("app: no store configured")
	}
	all, err := s.Store.Lists(ctx)
	if err != nil {
		return lists.Record{}, err
	}
	var target *lists.Record
	for i := range all {
		if all[i].ID == id {
			target = &all[i]
			break
		}
	}
	if target == nil {
		for i := range all {
			if all[i].Name == id {
				target = &all[i]
				break
			}
		}
	}
	if target == nil {
		return lists.Record{}, errors.New("app: list not found")
	}
	if err := s.Store.Delete(target.ID); err != nil {
		return lists.Record{}, err
	}
	return *target, nil
}
