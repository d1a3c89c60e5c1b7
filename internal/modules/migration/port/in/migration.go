package in

import (
	"context"

	"goalt/internal/modules/migration/domain"
	"goalt/internal/modules/migration/dto"
)

type Usecase interface {
	// Run migrates a legacy-shape store to the current shape. It is a no-op
	// when the store is already current, so startup can call it every time.
	Run(ctx context.Context) (dto.Result, error)

	// Load is the write phase on its own: it fills the current shape from a
	// staged value inside one transaction. Run extracts and then calls it;
	// the staged value is the only input the write side gets.
	Load(ctx context.Context, staged domain.Staged) (dto.Result, error)
}
