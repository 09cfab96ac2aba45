package attendance_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrms/internal/attendance"
	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	checkInFn  func(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error)
	checkOutFn func(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error)
	updateFn   func(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error)
	markFn     func(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error)
	listMineFn func(ctx context.Context, employeeID string, from, to *time.Time) ([]attendance.AttendanceResponse, error)
	reportFn   func(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error)
}

func (f *fakeService) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	return f.checkInFn(ctx, employeeID)
}
func (f *fakeService) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	return f.checkOutFn(ctx, employeeID)
}
func (f *fakeService) UpdateRecord(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.markFn(ctx, req)
}
func (f *fakeService) ListMine(ctx context.Context, employeeID string, from, to *time.Time) ([]attendance.AttendanceResponse, error) {
	return f.listMineFn(ctx, employeeID, from, to)
}
func (f *fakeService) Report(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	return f.reportFn(ctx, filter)
}
func (f *fakeService) MonthRecords(ctx context.Context, employeeID string, year, month int) ([]attendance.DayRecord, error) {
	return nil, nil
}

func (f *fakeService) MarkLeaveDays(ctx context.Context, tx *sql.Tx, employeeID, leaveRequestID uuid.UUID, days []time.Time) error {
	return nil
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestHandler_CheckIn(t *testing.T) {
	employeeID := uuid.New().String()

	t.Run("uses the caller's employee id", func(t *testing.T) {
		svc := &fakeService{
			checkInFn: func(ctx context.Context, eid string) (attendance.AttendanceResponse, error) {
				assert.Equal(t, employeeID, eid)
				return attendance.AttendanceResponse{ID: uuid.New().String(), EmployeeID: eid, Status: attendance.StatusPresent}, nil
			},
		}
		c, w := newContext(http.MethodPost, "/attendances/check-in", "")
		c.Set(middleware.KeyEmployeeID, employeeID)

		attendance.NewHandler(svc).CheckIn(c)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("state conflict maps to 409", func(t *testing.T) {
		svc := &fakeService{
			checkInFn: func(ctx context.Context, eid string) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
			},
		}
		c, w := newContext(http.MethodPost, "/attendances/check-in", "")
		c.Set(middleware.KeyEmployeeID, employeeID)

		attendance.NewHandler(svc).CheckIn(c)
		assert.Equal(t, http.StatusConflict, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "INVALID_STATE", errObj["code"])
	})
}

func TestHandler_Report(t *testing.T) {
	var got attendance.ListFilter
	svc := &fakeService{
		reportFn: func(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
			got = filter
			return []attendance.AttendanceResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
		},
	}
	c, w := newContext(http.MethodGet, "/attendances?date=2024-06-03&status=Absent&page=1&page_size=2", "")

	attendance.NewHandler(svc).Report(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.Date)
	assert.Equal(t, "2024-06-03", got.Date.Format("2006-01-02"))
	assert.Equal(t, "Absent", got.Status)

	var body struct {
		Data []attendance.AttendanceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}

func TestHandler_Report_BadDate(t *testing.T) {
	c, w := newContext(http.MethodGet, "/attendances?from=03-06-2024", "")
	attendance.NewHandler(&fakeService{}).Report(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Mark_Validation(t *testing.T) {
	c, w := newContext(http.MethodPost, "/attendances", `{"employee_id":"x","status":"Present"}`)
	attendance.NewHandler(&fakeService{}).Mark(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Update(t *testing.T) {
	svc := &fakeService{
		updateFn: func(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, "rec-1", id)
			require.NotNil(t, req.Status)
			return attendance.AttendanceResponse{ID: id, Status: *req.Status}, nil
		},
	}
	c, w := newContext(http.MethodPut, "/attendances/rec-1", `{"status":"Half Day"}`)
	c.Params = gin.Params{{Key: "id", Value: "rec-1"}}

	attendance.NewHandler(svc).Update(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
