package leavebalance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/leavebalance"
	leavebalanceerrors "go-hrms/internal/leavebalance/errors"
	leavebalanceMock "go-hrms/internal/leavebalance/mock"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leavebalanceMock.NewMockService(ctrl)
	h := leavebalance.NewHandler(svc, zap.NewNop())

	svc.EXPECT().GetBalance(gomock.Any(), "emp-1", 2024).Return([]leavebalance.BalanceResponse{
		{LeaveType: "CL", Year: 2024, Total: 12, Used: 2, Available: 10},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/leave-balances/me?year=2024", "")
	c.Set(middleware.KeyEmployeeID, "emp-1")
	h.GetMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var got []leavebalance.BalanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].Available)
}

func TestHandler_GetForEmployee_BadYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leavebalanceMock.NewMockService(ctrl)
	h := leavebalance.NewHandler(svc, zap.NewNop())

	c, w := newTestContext(http.MethodGet, "/leave-balances/employees/e1?year=twenty", "")
	c.Params = gin.Params{{Key: "employeeId", Value: "e1"}}
	h.GetForEmployee(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decode(t, w).Ok)
}

func TestHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leavebalanceMock.NewMockService(ctrl)
	h := leavebalance.NewHandler(svc, zap.NewNop())

	t.Run("missing used is rejected before the service", func(t *testing.T) {
		c, w := newTestContext(http.MethodPut, "/leave-balances",
			`{"employee_id":"9b2f3c1e-3a7d-4d55-8a0e-0c6a7b1e2f10","leave_type":"CL","year":2024,"total":12}`)
		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
	})

	t.Run("used above total", func(t *testing.T) {
		svc.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(leavebalance.BalanceResponse{}, leavebalanceerrors.ErrInvalidAmounts)

		c, w := newTestContext(http.MethodPut, "/leave-balances",
			`{"employee_id":"9b2f3c1e-3a7d-4d55-8a0e-0c6a7b1e2f10","leave_type":"CL","year":2024,"total":5,"used":6}`)
		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListAndReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leavebalanceMock.NewMockService(ctrl)
	h := leavebalance.NewHandler(svc, zap.NewNop())

	svc.EXPECT().ListForYear(gomock.Any(), 0).Return([]leavebalance.BalanceResponse{
		{LeaveType: "CL"}, {LeaveType: "EL"}, {LeaveType: "SL"},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/leave-balances?page=2&page_size=2", "")
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var items []leavebalance.BalanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "SL", items[0].LeaveType)

	svc.EXPECT().ResetForYear(gomock.Any(), 2025).Return(leavebalance.ResetResult{Year: 2025, Employees: 2, Rows: 6}, nil)

	c, w = newTestContext(http.MethodPost, "/leave-balances/reset", `{"year":2025}`)
	h.Reset(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var res leavebalance.ResetResult
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &res))
	assert.Equal(t, 6, res.Rows)
}
