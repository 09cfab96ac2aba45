package salaryprofile_test

import (
	"context"
	"testing"

	"go-hrms/internal/salarycomponent"
	"go-hrms/internal/salaryprofile"
	salaryprofileerrors "go-hrms/internal/salaryprofile/errors"
	salaryprofileMock "go-hrms/internal/salaryprofile/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *salaryprofileMock.MockRepository
	catalog *salaryprofileMock.MockComponentCatalog
	service salaryprofile.Service
}

func setup(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := &testDeps{
		sqlMock: sqlMock,
		repo:    salaryprofileMock.NewMockRepository(ctrl),
		catalog: salaryprofileMock.NewMockComponentCatalog(ctrl),
	}
	d.service = salaryprofile.NewService(db, d.repo, d.catalog)
	return d
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

var (
	basicID = uuid.New()
	hraID   = uuid.New()
	pfID    = uuid.New()
)

func catalogFor(ids ...uuid.UUID) []salarycomponent.Component {
	names := map[uuid.UUID]string{basicID: "Basic Salary", hraID: "HRA", pfID: "Provident Fund"}
	out := make([]salarycomponent.Component, len(ids))
	for i, id := range ids {
		cat := salarycomponent.CategoryEarning
		if id == pfID {
			cat = salarycomponent.CategoryDeduction
		}
		out[i] = salarycomponent.Component{ID: id, Name: names[id], Category: cat, ProRata: true}
	}
	return out
}

func validRequest() salaryprofile.UpsertProfileRequest {
	return salaryprofile.UpsertProfileRequest{Components: []salaryprofile.AssignedComponentRequest{
		{ComponentID: basicID.String(), CalculationType: "Fixed", Value: decimal.NewFromInt(30000)},
		{ComponentID: hraID.String(), CalculationType: "Percentage", Value: decimal.NewFromInt(40), PercentageOf: []string{basicID.String()}},
		{ComponentID: pfID.String(), CalculationType: "Percentage", Value: decimal.NewFromInt(12), PercentageOf: []string{basicID.String()}},
	}}
}

func TestService_Upsert_Success(t *testing.T) {
	d := setup(t)
	employeeID := uuid.New()
	profileID := uuid.New()

	d.catalog.EXPECT().FindByIDs(gomock.Any(), []string{basicID.String(), hraID.String(), pfID.String()}).
		Return(catalogFor(basicID, hraID, pfID), nil)
	expectTx(t, d.sqlMock, true)
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *salaryprofile.Profile) error {
		assert.Equal(t, employeeID, p.EmployeeID)
		p.ID = profileID
		return nil
	})
	d.repo.EXPECT().ReplaceComponents(gomock.Any(), profileID.String(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, components []salaryprofile.AssignedComponent) error {
			require.Len(t, components, 3)
			for i, c := range components {
				assert.Equal(t, i, c.Position)
				assert.Equal(t, profileID, c.SalaryProfileID)
			}
			assert.Empty(t, components[0].PercentageOf)
			assert.Equal(t, []uuid.UUID{basicID}, components[1].PercentageOf)
			return nil
		})

	resp, err := d.service.Upsert(context.Background(), employeeID.String(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Components, 3)
	assert.Equal(t, "HRA", resp.Components[1].Name)
	assert.Equal(t, []string{basicID.String()}, resp.Components[1].PercentageOf)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestService_Upsert_Validation(t *testing.T) {
	employeeID := uuid.NewString()

	cases := []struct {
		name   string
		mutate func(r *salaryprofile.UpsertProfileRequest)
		want   error
	}{
		{"duplicate component", func(r *salaryprofile.UpsertProfileRequest) {
			r.Components[2].ComponentID = basicID.String()
			r.Components[2].CalculationType = "Fixed"
			r.Components[2].PercentageOf = nil
		}, salaryprofileerrors.ErrDuplicateComponent},
		{"self reference", func(r *salaryprofile.UpsertProfileRequest) {
			r.Components[1].PercentageOf = []string{hraID.String()}
		}, salaryprofileerrors.ErrSelfReference},
		{"reference outside profile", func(r *salaryprofile.UpsertProfileRequest) {
			r.Components[1].PercentageOf = []string{uuid.NewString()}
		}, salaryprofileerrors.ErrUnassignedReference},
		{"percentage without base", func(r *salaryprofile.UpsertProfileRequest) {
			r.Components[1].PercentageOf = nil
		}, salaryprofileerrors.ErrPercentageOfRequired},
		{"fixed with base", func(r *salaryprofile.UpsertProfileRequest) {
			r.Components[0].PercentageOf = []string{hraID.String()}
		}, salaryprofileerrors.ErrPercentageOfNotAllowed},
		{"negative value", func(r *salaryprofile.UpsertProfileRequest) {
			r.Components[0].Value = decimal.NewFromInt(-1)
		}, salaryprofileerrors.ErrNegativeValue},
		{"malformed component id", func(r *salaryprofile.UpsertProfileRequest) {
			r.Components[0].ComponentID = "basic"
		}, salaryprofileerrors.ErrInvalidComponentID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := setup(t)
			req := validRequest()
			tc.mutate(&req)

			_, err := d.service.Upsert(context.Background(), employeeID, req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_Upsert_UnknownComponent(t *testing.T) {
	d := setup(t)
	d.catalog.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return(catalogFor(basicID, hraID), nil)

	_, err := d.service.Upsert(context.Background(), uuid.NewString(), validRequest())
	assert.ErrorIs(t, err, salaryprofileerrors.ErrComponentNotFound)
}

func TestService_Upsert_UnknownEmployee(t *testing.T) {
	d := setup(t)
	d.catalog.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return(catalogFor(basicID, hraID, pfID), nil)
	expectTx(t, d.sqlMock, false)
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23503", ConstraintName: "salary_profiles_employee_id_fkey"})

	_, err := d.service.Upsert(context.Background(), uuid.NewString(), validRequest())
	assert.ErrorIs(t, err, salaryprofileerrors.ErrEmployeeNotFound)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestService_Get(t *testing.T) {
	d := setup(t)
	employeeID := uuid.NewString()

	d.repo.EXPECT().FindHydratedByEmployee(gomock.Any(), employeeID).Return(nil, nil)
	_, err := d.service.Get(context.Background(), employeeID)
	assert.ErrorIs(t, err, salaryprofileerrors.ErrProfileNotFound)

	_, err = d.service.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, salaryprofileerrors.ErrInvalidEmployeeID)
}
