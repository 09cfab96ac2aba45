package salaryprofile

import (
	"context"
	"database/sql"

	"go-hrms/internal/salarycomponent"
	salaryprofileerrors "go-hrms/internal/salaryprofile/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ComponentCatalog resolves salary component ids against the catalog.
type ComponentCatalog interface {
	FindByIDs(ctx context.Context, ids []string) ([]salarycomponent.Component, error)
}

//go:generate mockgen -source=salaryprofile_service.go -destination=mock/salaryprofile_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, employeeID string) (ProfileResponse, error)
	Upsert(ctx context.Context, employeeID string, req UpsertProfileRequest) (ProfileResponse, error)
	Hydrated(ctx context.Context, employeeID string) ([]HydratedComponent, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	catalog ComponentCatalog
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, catalog ComponentCatalog, logger ...*zap.Logger) Service {
	l := zap.L().Named("salaryprofile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryprofile.service")
	}
	return &service{db: db, repo: repo, catalog: catalog, logger: l}
}

func (s *service) Get(ctx context.Context, employeeID string) (ProfileResponse, error) {
	components, err := s.Hydrated(ctx, employeeID)
	if err != nil {
		return ProfileResponse{}, err
	}
	if len(components) == 0 {
		return ProfileResponse{}, salaryprofileerrors.ErrProfileNotFound
	}
	return mapToResponse(employeeID, components), nil
}

func (s *service) Hydrated(ctx context.Context, employeeID string) ([]HydratedComponent, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, salaryprofileerrors.ErrInvalidEmployeeID
	}
	components, err := s.repo.FindHydratedByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return components, nil
}

// Upsert replaces the employee's component list wholesale. Cycles spanning
// several components are reported by the payroll engine, not here.
func (s *service) Upsert(ctx context.Context, employeeID string, req UpsertProfileRequest) (ProfileResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("upsert salary profile requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("components", len(req.Components)),
	)

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return ProfileResponse{}, salaryprofileerrors.ErrInvalidEmployeeID
	}

	assigned, err := buildComponents(req.Components)
	if err != nil {
		s.logger.Warn("upsert salary profile rejected", zap.String("employee_id", employeeID), zap.Error(err))
		return ProfileResponse{}, err
	}

	ids := make([]string, len(assigned))
	for i, a := range assigned {
		ids[i] = a.SalaryComponentID.String()
	}
	catalog, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return ProfileResponse{}, err
	}
	if len(catalog) != len(ids) {
		return ProfileResponse{}, salaryprofileerrors.ErrComponentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert salary profile begin tx failed", zap.Error(err))
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	profile := &Profile{ID: uuid.New(), EmployeeID: empID}
	if err := qtx.Upsert(ctx, profile); err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}
	for i := range assigned {
		assigned[i].SalaryProfileID = profile.ID
	}
	if err := qtx.ReplaceComponents(ctx, profile.ID.String(), assigned); err != nil {
		s.logger.Error("upsert salary profile components failed", zap.String("employee_id", employeeID), zap.Error(err))
		return ProfileResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert salary profile commit failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	s.logger.Info("salary profile saved",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("profile_id", profile.ID.String()),
		zap.Int("components", len(assigned)),
	)
	return mapToResponse(employeeID, hydrate(assigned, catalog)), nil
}

// buildComponents checks the profile-local rules: unique components,
// well-formed percentage bases, and references that stay inside the profile.
func buildComponents(reqs []AssignedComponentRequest) ([]AssignedComponent, error) {
	out := make([]AssignedComponent, 0, len(reqs))
	seen := make(map[uuid.UUID]bool, len(reqs))

	for i, r := range reqs {
		id, err := uuid.Parse(r.ComponentID)
		if err != nil {
			return nil, salaryprofileerrors.ErrInvalidComponentID
		}
		if seen[id] {
			return nil, salaryprofileerrors.ErrDuplicateComponent
		}
		seen[id] = true

		if r.Value.IsNegative() {
			return nil, salaryprofileerrors.ErrNegativeValue
		}

		a := AssignedComponent{
			ID:                uuid.New(),
			SalaryComponentID: id,
			Position:          i,
			CalculationType:   r.CalculationType,
			Value:             r.Value,
			PercentageOf:      []uuid.UUID{},
		}

		switch r.CalculationType {
		case CalculationFixed:
			if len(r.PercentageOf) > 0 {
				return nil, salaryprofileerrors.ErrPercentageOfNotAllowed
			}
		case CalculationPercentage:
			if len(r.PercentageOf) == 0 {
				return nil, salaryprofileerrors.ErrPercentageOfRequired
			}
			for _, raw := range r.PercentageOf {
				ref, err := uuid.Parse(raw)
				if err != nil {
					return nil, salaryprofileerrors.ErrInvalidComponentID
				}
				if ref == id {
					return nil, salaryprofileerrors.ErrSelfReference
				}
				a.PercentageOf = append(a.PercentageOf, ref)
			}
		default:
			return nil, salaryprofileerrors.ErrInvalidCalculationType
		}
		out = append(out, a)
	}

	for _, a := range out {
		for _, ref := range a.PercentageOf {
			if !seen[ref] {
				return nil, salaryprofileerrors.ErrUnassignedReference
			}
		}
	}
	return out, nil
}

func hydrate(assigned []AssignedComponent, catalog []salarycomponent.Component) []HydratedComponent {
	byID := make(map[uuid.UUID]salarycomponent.Component, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}
	out := make([]HydratedComponent, len(assigned))
	for i, a := range assigned {
		c := byID[a.SalaryComponentID]
		out[i] = HydratedComponent{
			SalaryComponentID: a.SalaryComponentID,
			Name:              c.Name,
			Category:          c.Category,
			ProRata:           c.ProRata,
			CalculationType:   a.CalculationType,
			Value:             a.Value,
			PercentageOf:      a.PercentageOf,
		}
	}
	return out
}

func mapToResponse(employeeID string, components []HydratedComponent) ProfileResponse {
	resp := ProfileResponse{
		EmployeeID: employeeID,
		Components: make([]AssignedComponentResponse, len(components)),
	}
	for i, c := range components {
		refs := make([]string, len(c.PercentageOf))
		for j, ref := range c.PercentageOf {
			refs[j] = ref.String()
		}
		resp.Components[i] = AssignedComponentResponse{
			ComponentID:     c.SalaryComponentID.String(),
			Name:            c.Name,
			Category:        c.Category,
			ProRata:         c.ProRata,
			CalculationType: c.CalculationType,
			Value:           c.Value,
			PercentageOf:    refs,
		}
	}
	return resp
}
