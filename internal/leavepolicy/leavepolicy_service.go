package leavepolicy

import (
	"context"
	"strings"

	leavepolicyerrors "go-hrms/internal/leavepolicy/errors"
	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=leavepolicy_service.go -destination=mock/leavepolicy_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error)
	Update(ctx context.Context, leaveType string, req UpdatePolicyRequest) (PolicyResponse, error)
	Delete(ctx context.Context, leaveType string) error
	Get(ctx context.Context, leaveType string) (PolicyResponse, error)
	List(ctx context.Context) ([]PolicyResponse, error)
	Find(ctx context.Context, leaveType string) (Policy, error)
	ActivePaidYearly(ctx context.Context) ([]Policy, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavepolicy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavepolicy.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.LeaveType))
	if !ValidLeaveType(code) {
		return PolicyResponse{}, leavepolicyerrors.ErrInvalidLeaveType
	}

	rule, err := NewRule(RuleInput{
		Category:         req.Category,
		Renewal:          req.Renewal,
		TotalDaysPerYear: req.TotalDaysPerYear,
		MonthlyCap:       req.MonthlyCap,
		MonthlyGrant:     req.MonthlyGrant,
	})
	if err != nil {
		s.logger.Warn("create leave policy rejected", zap.String("leave_type", code), zap.Error(err))
		return PolicyResponse{}, err
	}

	p := &Policy{
		LeaveType:   code,
		Name:        req.Name,
		Description: req.Description,
		Rule:        rule,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create leave policy failed", zap.String("leave_type", code), zap.Error(err))
		return PolicyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("leave policy created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("leave_type", code),
		zap.String("category", rule.Category()),
		zap.String("renewal", rule.Renewal()),
	)
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, leaveType string, req UpdatePolicyRequest) (PolicyResponse, error) {
	current, err := s.repo.FindByType(ctx, strings.ToUpper(leaveType))
	if err != nil {
		return PolicyResponse{}, mapRepositoryError(err)
	}

	rule, err := NewRule(RuleInput{
		Category:         req.Category,
		Renewal:          req.Renewal,
		TotalDaysPerYear: req.TotalDaysPerYear,
		MonthlyCap:       req.MonthlyCap,
		MonthlyGrant:     req.MonthlyGrant,
	})
	if err != nil {
		s.logger.Warn("update leave policy rejected", zap.String("leave_type", leaveType), zap.Error(err))
		return PolicyResponse{}, err
	}

	current.Name = req.Name
	current.Description = req.Description
	current.Rule = rule
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, current); err != nil {
		s.logger.Error("update leave policy failed", zap.String("leave_type", leaveType), zap.Error(err))
		return PolicyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("leave policy updated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("leave_type", current.LeaveType),
		zap.String("category", rule.Category()),
	)
	return mapToResponse(*current), nil
}

func (s *service) Delete(ctx context.Context, leaveType string) error {
	if err := s.repo.Delete(ctx, strings.ToUpper(leaveType)); err != nil {
		s.logger.Warn("delete leave policy failed", zap.String("leave_type", leaveType), zap.Error(err))
		return mapRepositoryError(err)
	}
	s.logger.Info("leave policy deleted", zap.String("leave_type", leaveType))
	return nil
}

func (s *service) Get(ctx context.Context, leaveType string) (PolicyResponse, error) {
	p, err := s.Find(ctx, leaveType)
	if err != nil {
		return PolicyResponse{}, err
	}
	return mapToResponse(p), nil
}

func (s *service) List(ctx context.Context) ([]PolicyResponse, error) {
	policies, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]PolicyResponse, len(policies))
	for i, p := range policies {
		out[i] = mapToResponse(p)
	}
	return out, nil
}

func (s *service) Find(ctx context.Context, leaveType string) (Policy, error) {
	p, err := s.repo.FindByType(ctx, strings.ToUpper(leaveType))
	if err != nil {
		return Policy{}, mapRepositoryError(err)
	}
	return *p, nil
}

func (s *service) ActivePaidYearly(ctx context.Context) ([]Policy, error) {
	policies, err := s.repo.ListActivePaidYearly(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return policies, nil
}

func mapToResponse(p Policy) PolicyResponse {
	flat := Flatten(p.Rule)
	return PolicyResponse{
		LeaveType:        p.LeaveType,
		Name:             p.Name,
		Description:      p.Description,
		Category:         flat.Category,
		Renewal:          flat.Renewal,
		TotalDaysPerYear: flat.TotalDaysPerYear,
		MonthlyCap:       flat.MonthlyCap,
		MonthlyGrant:     flat.MonthlyGrant,
		IsActive:         p.IsActive,
	}
}
