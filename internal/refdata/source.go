package refdata

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	domain "github.com/preston-bernstein/league-fixtures-service/internal/domain/refdata"
)

// Source fetches the reference lists a fixture form needs.
type Source interface {
	Seasons(ctx context.Context) ([]domain.Season, error)
	AgeGroups(ctx context.Context) ([]domain.AgeGroup, error)
	MatchTypes(ctx context.Context) ([]domain.MatchType, error)
	Divisions(ctx context.Context) ([]domain.Division, error)
	Teams(ctx context.Context) ([]domain.Team, error)
}

// Load fetches every list concurrently. The first failure cancels the rest.
func Load(ctx context.Context, src Source) (domain.Catalog, error) {
	var cat domain.Catalog
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := src.Seasons(gctx)
		if err != nil {
			return fmt.Errorf("load seasons: %w", err)
		}
		cat.Seasons = v
		return nil
	})
	g.Go(func() error {
		v, err := src.AgeGroups(gctx)
		if err != nil {
			return fmt.Errorf("load age groups: %w", err)
		}
		cat.AgeGroups = v
		return nil
	})
	g.Go(func() error {
		v, err := src.MatchTypes(gctx)
		if err != nil {
			return fmt.Errorf("load match types: %w", err)
		}
		cat.MatchTypes = v
		return nil
	})
	g.Go(func() error {
		v, err := src.Divisions(gctx)
		if err != nil {
			return fmt.Errorf("load divisions: %w", err)
		}
		cat.Divisions = v
		return nil
	})
	g.Go(func() error {
		v, err := src.Teams(gctx)
		if err != nil {
			return fmt.Errorf("load teams: %w", err)
		}
		cat.Teams = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Catalog{}, err
	}
	return cat, nil
}
