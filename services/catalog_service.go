package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/billing"
	"hairlab-backoffice/models"
)

type CatalogService struct {
	client *backend.Client
}

func NewCatalogService(client *backend.Client) *CatalogService {
	return &CatalogService{client: client}
}

// Load fetches staff, services and products concurrently and returns once
// all three have answered. The first failure fails the whole load.
func (s *CatalogService) Load(ctx context.Context, token string) (*billing.Catalog, error) {
	client := s.client.WithToken(token)
	g, ctx := errgroup.WithContext(ctx)

	var (
		staff    []models.StaffMember
		services []models.ServiceCatalogEntry
		products []models.ProductCatalogEntry
	)
	g.Go(func() (err error) {
		staff, err = client.Staff().List(ctx, nil)
		return err
	})
	g.Go(func() (err error) {
		services, err = client.Services().List(ctx, nil)
		return err
	})
	g.Go(func() (err error) {
		products, err = client.Products().List(ctx, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return billing.NewCatalog(staff, services, products), nil
}
