package salarycomponent

import (
	"context"
	"strings"

	salarycomponenterrors "go-hrms/internal/salarycomponent/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=salarycomponent_service.go -destination=mock/salarycomponent_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error)
	Update(ctx context.Context, id string, req UpdateComponentRequest) (ComponentResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (ComponentResponse, error)
	List(ctx context.Context) ([]ComponentResponse, error)
	FindByIDs(ctx context.Context, ids []string) ([]Component, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarycomponent.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarycomponent.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ComponentResponse{}, salarycomponenterrors.ErrInvalidName
	}
	if !IsValidCategory(req.Category) {
		return ComponentResponse{}, salarycomponenterrors.ErrInvalidCategory
	}

	c := &Component{
		ID:          uuid.New(),
		Name:        name,
		Category:    req.Category,
		ProRata:     req.ProRata,
		Taxable:     req.Taxable,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Warn("create salary component failed", zap.String("name", name), zap.Error(err))
		return ComponentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("salary component created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("component_id", c.ID.String()),
		zap.String("name", name),
	)
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateComponentRequest) (ComponentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ComponentResponse{}, salarycomponenterrors.ErrInvalidName
	}
	if !IsValidCategory(req.Category) {
		return ComponentResponse{}, salarycomponenterrors.ErrInvalidCategory
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ComponentResponse{}, mapRepositoryError(err)
	}
	c.Name = name
	c.Category = req.Category
	c.ProRata = req.ProRata
	c.Taxable = req.Taxable
	c.Description = req.Description

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Warn("update salary component failed", zap.String("component_id", id), zap.Error(err))
		return ComponentResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("salary component updated", zap.String("component_id", id))
	return mapToResponse(*c), nil
}

// Delete refuses while any salary profile still assigns the component. The
// foreign key on salary_profile_components backs the pre-check.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return salarycomponenterrors.ErrComponentNotFound
	}
	used, err := s.repo.IsReferenced(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if used {
		s.logger.Warn("delete salary component in use", zap.String("component_id", id))
		return salarycomponenterrors.ErrComponentInUse
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("salary component deleted", zap.String("component_id", id))
	return nil
}

func (s *service) Get(ctx context.Context, id string) (ComponentResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ComponentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) List(ctx context.Context) ([]ComponentResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]ComponentResponse, len(rows))
	for i, c := range rows {
		out[i] = mapToResponse(c)
	}
	return out, nil
}

func (s *service) FindByIDs(ctx context.Context, ids []string) ([]Component, error) {
	rows, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rows, nil
}

func mapToResponse(c Component) ComponentResponse {
	return ComponentResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Category:    c.Category,
		ProRata:     c.ProRata,
		Taxable:     c.Taxable,
		Description: c.Description,
	}
}
