package in

import (
	"context"

	"goalt/internal/modules/migration/dto"
	migrationin "goalt/internal/modules/migration/port/in"
)

type CLIHandler struct {
	usecase migrationin.Usecase
}

func NewCLIHandler(usecase migrationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context) (dto.Result, error) {
	return h.usecase.Run(ctx)
}
