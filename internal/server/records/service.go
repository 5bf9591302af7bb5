// Package records holds the development backend's record store.
package records

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return items, nil
}

func (s *Service) Add(ctx context.Context, content string) (Record, error) {
	rec, err := s.repo.Create(ctx, content)
	if err != nil {
		return Record{}, fmt.Errorf("error creating record: %w", err)
	}
	return rec, nil
}

// Seed adds each content in order. Used to start the backend with data.
func (s *Service) Seed(ctx context.Context, contents []string) error {
	for _, c := range contents {
		if _, err := s.Add(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
