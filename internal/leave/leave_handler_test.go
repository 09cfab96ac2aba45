package leave_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"
	leaveMock "go-hrms/internal/leave/mock"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	employeeID := uuid.New().String()

	svc.EXPECT().Create(gomock.Any(), employeeID, leave.CreateLeaveRequest{
		LeaveType: "EL", FromDate: "2024-06-13", ToDate: "2024-06-14",
	}).Return(leave.LeaveResponse{ID: "l-1", Status: leave.StatusPending}, nil)

	c, w := newTestContext(http.MethodPost, "/leave-requests", `{"leave_type":"EL","from_date":"2024-06-13","to_date":"2024-06-14"}`)
	c.Set(middleware.KeyEmployeeID, employeeID)

	leave.NewHandler(svc).Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, w := newTestContext(http.MethodPost, "/leave-requests", `{"leave_type":"EL"}`)

	leave.NewHandler(leaveMock.NewMockService(ctrl)).Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	actorID := uuid.New().String()

	t.Run("without body", func(t *testing.T) {
		svc.EXPECT().Approve(gomock.Any(), actorID, "l-1", leave.ActionRequest{}).
			Return(leave.LeaveResponse{ID: "l-1", Status: leave.StatusApproved}, nil)

		c, w := newTestContext(http.MethodPost, "/leave-requests/l-1/approve", "")
		c.Set(middleware.KeyUserID, actorID)
		c.Params = gin.Params{{Key: "id", Value: "l-1"}}

		leave.NewHandler(svc).Approve(c)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already processed", func(t *testing.T) {
		svc.EXPECT().Reject(gomock.Any(), actorID, "l-2", leave.ActionRequest{Remarks: "no"}).
			Return(leave.LeaveResponse{}, leaveerrors.ErrNotPending)

		c, w := newTestContext(http.MethodPost, "/leave-requests/l-2/reject", `{"remarks":"no"}`)
		c.Set(middleware.KeyUserID, actorID)
		c.Params = gin.Params{{Key: "id", Value: "l-2"}}

		leave.NewHandler(svc).Reject(c)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
