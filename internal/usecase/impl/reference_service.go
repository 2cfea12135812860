package impl

import (
	"context"

	"tetatete/internal/domain/entity"
	"tetatete/internal/domain/repository"
	"tetatete/internal/usecase"
)

// referenceService implements the ReferenceUsecase interface.
type referenceService struct {
	referenceRepo repository.ReferenceRepository
}

// NewReferenceService is the constructor for referenceService.
func NewReferenceService(referenceRepo repository.ReferenceRepository) usecase.ReferenceUsecase {
	return &referenceService{
		referenceRepo: referenceRepo,
	}
}

func (srv *referenceService) ListGenders(ctx context.Context) ([]*entity.Gender, error) {
	return srv.referenceRepo.ListGenders(ctx)
}

func (srv *referenceService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	return srv.referenceRepo.ListLocations(ctx)
}

func (srv *referenceService) ListLanguages(ctx context.Context) ([]*entity.Language, error) {
	return srv.referenceRepo.ListLanguages(ctx)
}
