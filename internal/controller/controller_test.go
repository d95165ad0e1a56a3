package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/middleware"
	"mall_query_v1/internal/repository"
	"mall_query_v1/internal/service"
	"mall_query_v1/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

func setupCtlRouter(t *testing.T, db *gorm.DB) (*gin.Engine, *test.Hook) {
	log, hook := test.NewNullLogger()
	opts := service.QueryOptions{
		Timeout:  time.Second,
		Location: time.UTC,
		Log:      log,
		Now:      time.Now,
	}

	shopCtl := NewShopController(service.NewShopService(repository.NewShopRepository(db), opts), log)
	employeeCtl := NewEmployeeController(service.NewEmployeeService(repository.NewEmployeeRepository(db), opts), log)
	promotionCtl := NewPromotionController(service.NewPromotionService(repository.NewPromotionRepository(db), opts), log)
	purchaseCtl := NewPurchaseController(service.NewPurchaseService(repository.NewPurchaseRepository(db), opts), log)
	revenueCtl := NewRevenueController(service.NewRevenueService(repository.NewRevenueRepository(db), opts), log)
	transactionCtl := NewTransactionController(service.NewTransactionService(repository.NewTransactionRepository(db), opts), log)
	healthCtl := NewHealthController(service.NewHealthService(db, time.Second), log)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery(log))
	r.GET("/", healthCtl.Index)
	r.GET("/healthz", healthCtl.Healthz)
	r.GET("/branches/store", shopCtl.ListBranchStores)
	r.GET("/shop/goods", shopCtl.ListGoods)
	r.GET("/supplier", shopCtl.GetSupplier)
	r.GET("/shop/employees", employeeCtl.ListShopEmployees)
	r.GET("/shop/employees/time", employeeCtl.ListOnDuty)
	r.GET("/branch/employees", employeeCtl.ListBranchEmployees)
	r.GET("/shop/promotions", promotionCtl.ListShopPromotions)
	r.GET("/promotions-by-date", promotionCtl.ListByDate)
	r.GET("/shop/purchase-details", purchaseCtl.ListShopPurchases)
	r.GET("/revenue/top-stores", revenueCtl.TopStores)
	r.GET("/revenue/branch", revenueCtl.BranchTotal)
	r.GET("/transactions-by-date", transactionCtl.ListByDate)
	r.GET("/transactions-by-payment", transactionCtl.ListByPayment)
	return r, hook
}

func doGet(r *gin.Engine, path string, params url.Values) *httptest.ResponseRecorder {
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

// body 去掉 encoder 追加的换行
func body(w *httptest.ResponseRecorder) string {
	return strings.TrimSpace(w.Body.String())
}

// ==================== 参数校验 ====================

func TestController_Validation(t *testing.T) {
	r, _ := setupCtlRouter(t, testutil.NewSeededDB(t))

	tests := []struct {
		name    string
		path    string
		params  url.Values
		wantErr string
	}{
		{"缺少 shop_name", "/shop/goods", nil, "Shop name is required"},
		{"shop_name 为空", "/shop/employees", url.Values{"shop_name": {""}}, "Shop name is required"},
		{"缺少 time", "/shop/employees/time", url.Values{"shop_name": {"商店1"}}, "Time is required"},
		{"time 格式错误", "/shop/employees/time", url.Values{"shop_name": {"商店1"}, "time": {"9点"}}, "Time must be in HH:MM format"},
		{"缺少 branch", "/branch/employees", nil, "Branch name is required"},
		{"date 格式错误", "/transactions-by-date", url.Values{"date": {"2023/01/01"}}, "Date must be in YYYY-MM-DD format"},
		{"缺少 payment", "/transactions-by-payment", nil, "Payment method is required"},
		{"缺少 supplier_name", "/supplier", nil, "Supplier name is required"},
		{"upcoming 非布尔", "/shop/promotions", url.Values{"shop_name": {"商店1"}, "upcoming": {"soon"}}, "Upcoming must be true or false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.path, tt.params)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.wantErr+`"}`, w.Body.String())
		})
	}
}

func TestBindingValidatorUsesLabels(t *testing.T) {
	tests := []struct {
		req     interface{}
		wantErr string
	}{
		{&dto.OnDutyQuery{ShopName: "商店1", Time: "9点"}, "Time must be in HH:MM format"},
		{&dto.DateQuery{}, "Date is required"},
		{&dto.PaymentQuery{}, "Payment method is required"},
		{&dto.ShopPromotionQuery{ShopName: "商店1", Upcoming: "soon"}, "Upcoming must be true or false"},
	}

	for _, tt := range tests {
		err := binding.Validator.ValidateStruct(tt.req)
		require.Error(t, err)

		var ve *service.ValidationError
		require.True(t, errors.As(translate(err), &ve))
		assert.Equal(t, tt.wantErr, ve.Message)
	}

	assert.NoError(t, binding.Validator.ValidateStruct(&dto.DateQuery{Date: "2023-01-01"}))
}

// ==================== 正常查询 ====================

func TestController_TransactionRoundTrip(t *testing.T) {
	r, _ := setupCtlRouter(t, testutil.NewSeededDB(t))

	w := doGet(r, "/transactions-by-date", url.Values{"date": {"2023-01-01"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, JSONContentType, w.Header().Get("Content-Type"))

	// 中文原样输出，金额保留两位小数
	assert.Equal(t,
		`[{"store_name":"商店1","time":"2023-01-01 10:00:00","price":100.00,"payment":"cash"}]`,
		body(w))
}

func TestController_EmptyListIsArray(t *testing.T) {
	r, _ := setupCtlRouter(t, testutil.NewSeededDB(t))

	for _, path := range []string{"/shop/goods", "/shop/employees", "/shop/promotions", "/shop/purchase-details"} {
		w := doGet(r, path, url.Values{"shop_name": {"不存在的商店"}})
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "[]", body(w), path)
	}

	w := doGet(r, "/branches/store", url.Values{"branch": {"不存在"}})
	assert.Equal(t, "[]", body(w))
}

func TestController_NotFound(t *testing.T) {
	r, _ := setupCtlRouter(t, testutil.NewSeededDB(t))

	w := doGet(r, "/branch/employees", url.Values{"branch": {"台中廣三"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No employee data found for branch: 台中廣三"}`, w.Body.String())

	w = doGet(r, "/supplier", url.Values{"supplier_name": {"不存在"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Supplier not found"}`, w.Body.String())

	w = doGet(r, "/promotions-by-date", url.Values{"date": {"2020-01-01"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestController_OnDuty(t *testing.T) {
	r, _ := setupCtlRouter(t, testutil.NewSeededDB(t))

	names := func(clock string) []string {
		w := doGet(r, "/shop/employees/time", url.Values{"shop_name": {"商店1"}, "time": {clock}})
		require.Equal(t, http.StatusOK, w.Code)
		var list []map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		out := make([]string, 0, len(list))
		for _, e := range list {
			out = append(out, e["name"])
		}
		return out
	}

	assert.Contains(t, names("12:00"), "王小明")
	assert.Contains(t, names("18:00"), "王小明")
	assert.NotContains(t, names("18:01"), "王小明")
}

func TestController_SupplierAndRevenue(t *testing.T) {
	r, _ := setupCtlRouter(t, testutil.NewSeededDB(t))

	w := doGet(r, "/supplier", url.Values{"supplier_name": {"統一企業"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"統一企業","address":"台南市永康區中正路301號","contact":"06-2532121"}`, w.Body.String())

	w = doGet(r, "/revenue/branch", url.Values{"branch": {"台中廣三"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"branch_name":"台中廣三","total_revenue":0.00}`, body(w))

	w = doGet(r, "/revenue/top-stores", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ranks []struct {
		Rank      int     `json:"rank"`
		StoreName string  `json:"store_name"`
		Revenue   float64 `json:"revenue"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ranks))
	require.Len(t, ranks, 3)
	for i, item := range ranks {
		assert.Equal(t, i+1, item.Rank)
	}
	assert.Equal(t, 300.5, ranks[0].Revenue)
}

// ==================== 数据库故障 ====================

func TestController_StoreFailure(t *testing.T) {
	db := testutil.NewSeededDB(t)
	r, hook := setupCtlRouter(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := doGet(r, "/shop/goods", url.Values{"shop_name": {"商店1"}})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotEmpty(t, body["details"])

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "ListGoods", hook.LastEntry().Data["funcName"])
	assert.NotEmpty(t, hook.LastEntry().Data["request_id"])

	w = doGet(r, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestController_Health(t *testing.T) {
	r, _ := setupCtlRouter(t, testutil.NewDB(t))

	w := doGet(r, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, World!", w.Body.String())

	w = doGet(r, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// ==================== 错误映射 ====================

func TestRenderError(t *testing.T) {
	log, _ := test.NewNullLogger()

	tests := []struct {
		err        error
		wantStatus int
	}{
		{service.Required("Date"), http.StatusBadRequest},
		{service.NotFound("transactions", "payment", "cash"), http.StatusNotFound},
		{service.ErrSupplierNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		renderError(c, log, "TestRenderError", tt.err)
		assert.Equal(t, tt.wantStatus, w.Code, tt.err.Error())
	}
}
