package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
)

type resourceService struct {
	resources repository.ResourceRepo
	opts      options
}

func NewResourceService(resources repository.ResourceRepo, opts ...Option) ResourceService {
	return &resourceService{resources: resources, opts: buildOptions(opts)}
}

func (s *resourceService) Create(ctx context.Context, r *domain.Resource) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return app.InvalidArgument("resource name is required")
	}
	if r.HourlyRate.IsNegative() {
		return app.InvalidArgument("hourly rate must not be negative, got %s", r.HourlyRate)
	}
	if r.ID == "" {
		r.ID = s.opts.newID()
	}
	now := s.opts.clock()
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.resources.Create(ctx, r); err != nil {
		return app.Internal(err, "creating resource")
	}
	return nil
}

func (s *resourceService) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	r, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "resource", id)
	}
	return r, nil
}

func (s *resourceService) List(ctx context.Context) ([]*domain.Resource, error) {
	resources, err := s.resources.List(ctx)
	if err != nil {
		return nil, app.Internal(err, "listing resources")
	}
	return resources, nil
}
