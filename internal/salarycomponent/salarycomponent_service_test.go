package salarycomponent_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/salarycomponent"
	salarycomponenterrors "go-hrms/internal/salarycomponent/errors"
	salarycomponentMock "go-hrms/internal/salarycomponent/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (salarycomponent.Service, *salarycomponentMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := salarycomponentMock.NewMockRepository(ctrl)
	return salarycomponent.NewService(repo), repo
}

func TestService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, c *salarycomponent.Component) error {
			assert.Equal(t, "Basic Salary", c.Name)
			assert.NotEqual(t, uuid.Nil, c.ID)
			return nil
		})

		resp, err := svc.Create(context.Background(), salarycomponent.CreateComponentRequest{
			Name:     "  Basic Salary ",
			Category: salarycomponent.CategoryEarning,
			ProRata:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Basic Salary", resp.Name)
		assert.True(t, resp.ProRata)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_components_name"})

		_, err := svc.Create(context.Background(), salarycomponent.CreateComponentRequest{Name: "HRA", Category: "Earning"})
		assert.ErrorIs(t, err, salarycomponenterrors.ErrComponentNameExists)
	})

	t.Run("invalid category", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Create(context.Background(), salarycomponent.CreateComponentRequest{Name: "HRA", Category: "Bonus"})
		assert.ErrorIs(t, err, salarycomponenterrors.ErrInvalidCategory)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Create(context.Background(), salarycomponent.CreateComponentRequest{Name: "   ", Category: "Earning"})
		assert.ErrorIs(t, err, salarycomponenterrors.ErrInvalidName)
	})
}

func TestService_Update(t *testing.T) {
	svc, repo := setupService(t)
	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&salarycomponent.Component{ID: id, Name: "PF", Category: "Deduction"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := svc.Update(context.Background(), id.String(), salarycomponent.UpdateComponentRequest{
		Name:        "Provident Fund",
		Category:    "Deduction",
		Description: "12% of basic",
	})
	require.NoError(t, err)
	assert.Equal(t, "Provident Fund", resp.Name)
	assert.Equal(t, "12% of basic", resp.Description)

	repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.Update(context.Background(), "missing", salarycomponent.UpdateComponentRequest{Name: "x", Category: "Earning"})
	assert.ErrorIs(t, err, salarycomponenterrors.ErrComponentNotFound)
}

func TestService_Delete(t *testing.T) {
	id := uuid.New().String()

	t.Run("referenced", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().IsReferenced(gomock.Any(), id).Return(true, nil)

		err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, salarycomponenterrors.ErrComponentInUse)
	})

	t.Run("foreign key race", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().IsReferenced(gomock.Any(), id).Return(false, nil)
		repo.EXPECT().Delete(gomock.Any(), id).Return(&pgconn.PgError{Code: "23503"})

		err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, salarycomponenterrors.ErrComponentInUse)
	})

	t.Run("unreferenced", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().IsReferenced(gomock.Any(), id).Return(false, nil)
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), id))
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := setupService(t)
		assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), salarycomponenterrors.ErrComponentNotFound)
	})
}

func TestService_List_PropagatesUnexpectedErrors(t *testing.T) {
	svc, repo := setupService(t)
	boom := errors.New("connection reset")
	repo.EXPECT().List(gomock.Any()).Return(nil, boom)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, boom)
}
