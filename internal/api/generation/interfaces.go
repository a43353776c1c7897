package generation

import (
	"context"

	"github.com/futig/sitegen-backend/internal/entity"
)

type GenerationUsecase interface {
	GenerateSite(ctx context.Context, req *entity.GenerationRequest) (*entity.SiteBundle, error)
	GenerateBusinessSite(ctx context.Context, description string) (*entity.SiteBundle, error)
}
