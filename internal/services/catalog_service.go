package services

import (
	"context"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type catalogService struct {
	catalogs repositories.CatalogRepository
}

func NewCatalogService(catalogs repositories.CatalogRepository) CatalogService {
	return &catalogService{catalogs: catalogs}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.catalogs.ListCategories(ctx)
}
