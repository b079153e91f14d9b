package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	httpadapter "showcase/internal/adapters/in/http"
	"showcase/internal/core/application/usecases/commands"
	"showcase/internal/core/application/usecases/queries"
	"showcase/internal/core/domain/model/kernel"
	"showcase/internal/core/domain/model/order"
	"showcase/internal/core/ports"
	"showcase/internal/pkg/errs"
	"showcase/internal/pkg/journal"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOrderRepository keeps orders in a map; it ignores transactions.
type memoryOrderRepository struct {
	mu     sync.Mutex
	orders map[kernel.UUID]order.Status
}

func (r *memoryOrderRepository) Add(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID()] = o.Status()
	return nil
}

func (r *memoryOrderRepository) Update(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	r.orders[o.ID()] = o.Status()
	return nil
}

func (r *memoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	status, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(id, status)
}

func (r *memoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, nil
}

type memoryUoW struct {
	repo *memoryOrderRepository
}

func (u memoryUoW) Begin(context.Context) error            { return nil }
func (u memoryUoW) Commit(context.Context) error           { return nil }
func (u memoryUoW) Rollback(context.Context) error         { return nil }
func (u memoryUoW) OrderRepository() ports.OrderRepository { return u.repo }

type memoryUoWFactory struct {
	repo *memoryOrderRepository
}

func (f memoryUoWFactory) Create() commands.OrderUoW {
	return memoryUoW{repo: f.repo}
}

func newTestServer(t *testing.T) (*echo.Echo, *memoryOrderRepository) {
	t.Helper()

	e, repo, _ := newTestServerWithJournal(t)
	return e, repo
}

func newTestServerWithJournal(t *testing.T) (*echo.Echo, *memoryOrderRepository, *journal.Journal) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(new(bytes.Buffer), nil))
	repo := &memoryOrderRepository{orders: map[kernel.UUID]order.Status{}}
	factory := memoryUoWFactory{repo: repo}
	j := journal.New()

	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory),
		commands.NewSetOrderStatusCommandHandler(factory, logger),
		commands.NewProcessTextCommandHandler(),
		queries.NewGetOrderQueryHandler(nil),
		queries.NewGetAllOrdersQueryHandler(nil),
		j,
		logger,
	)

	e := echo.New()
	server.Register(e)
	return e, repo, j
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestOpenAPI(t *testing.T) {
	doc, err := httpadapter.LoadOpenAPI(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Value("/api/v1/orders/{id}/status"))

	e, _ := newTestServer(t)
	rec := do(t, e, http.MethodGet, "/api/v1/openapi.json", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi": "3.0.3"`)
}

func TestCreateOrder(t *testing.T) {
	e, repo := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/orders", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[httpadapter.Order](t, rec)
	assert.Equal(t, "New", created.Status)

	id, err := kernel.UUIDFromBytes(created.ID[:])
	require.NoError(t, err)
	assert.Equal(t, order.New, repo.orders[id])
}

func TestSetOrderStatus_Walkthrough(t *testing.T) {
	e, repo := newTestServer(t)
	id := kernel.NewUUID()
	repo.orders[id] = order.New
	target := "/api/v1/orders/" + id.String() + "/status"

	steps := []struct {
		requested string
		status    string
		applied   bool
	}{
		{"Delivered", "Delivered", true},
		{"CANCELLED", "Delivered", false},
		{"new", "New", true},
		{"in_progress", "InProgress", true},
		{"cancelled", "Cancelled", true},
	}

	for _, step := range steps {
		rec := do(t, e, http.MethodPut, target, `{"status":"`+step.requested+`"}`)

		require.Equal(t, http.StatusOK, rec.Code, step.requested)
		result := decode[httpadapter.StatusChangeResult](t, rec)
		assert.Equal(t, step.status, result.Status, step.requested)
		assert.Equal(t, step.applied, result.Applied, step.requested)
		assert.Equal(t, id.String(), result.ID.String())
	}
}

func TestSetOrderStatus_Errors(t *testing.T) {
	e, repo := newTestServer(t)
	id := kernel.NewUUID()
	repo.orders[id] = order.New

	testCases := []struct {
		name   string
		target string
		body   string
		code   int
	}{
		{"bad id", "/api/v1/orders/not-a-uuid/status", `{"status":"New"}`, http.StatusBadRequest},
		{"unknown status", "/api/v1/orders/" + id.String() + "/status", `{"status":"Lost"}`, http.StatusBadRequest},
		{"malformed body", "/api/v1/orders/" + id.String() + "/status", `{"status":`, http.StatusBadRequest},
		{"unknown order", "/api/v1/orders/" + kernel.NewUUID().String() + "/status", `{"status":"New"}`, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPut, tc.target, tc.body)

			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.code, decode[httpadapter.Error](t, rec).Code)
		})
	}
	assert.Equal(t, order.New, repo.orders[id])
}

func TestGetOrder_BadID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/orders/00000000-0000-0000-0000-000000000000", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSeasonName(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/seasons/summer", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, httpadapter.SeasonName{Season: "Summer", Name: "Лето"}, decode[httpadapter.SeasonName](t, rec))

	rec = do(t, e, http.MethodGet, "/api/v1/seasons/monsoon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessText(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/text/process",
		`{"stages":["trim","upper","replace_spaces"],"text":"  hello big world  "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HELLO_BIG_WORLD", decode[httpadapter.TextResult](t, rec).Result)

	rec = do(t, e, http.MethodPost, "/api/v1/text/process", `{"stages":["reverse"],"text":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[httpadapter.Error](t, rec).Message, "reverse")
}

func TestGetMetrics(t *testing.T) {
	e, repo := newTestServer(t)
	id := kernel.NewUUID()
	repo.orders[id] = order.InProgress
	target := "/api/v1/orders/" + id.String() + "/status"

	rec := do(t, e, http.MethodGet, "/api/v1/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, httpadapter.Metrics{}, decode[httpadapter.Metrics](t, rec))

	require.Equal(t, http.StatusOK, do(t, e, http.MethodPut, target, `{"status":"Delivered"}`).Code)
	require.Equal(t, http.StatusOK, do(t, e, http.MethodPut, target, `{"status":"Cancelled"}`).Code)
	require.Equal(t, http.StatusOK, do(t, e, http.MethodPut, target, `{"status":"Cancelled"}`).Code)

	rec = do(t, e, http.MethodGet, "/api/v1/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, httpadapter.Metrics{StatusApplied: 1, StatusRefused: 2}, decode[httpadapter.Metrics](t, rec))
}

func TestGetJournal(t *testing.T) {
	e, _, j := newTestServerWithJournal(t)

	rec := do(t, e, http.MethodGet, "/api/v1/journal", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[httpadapter.Journal](t, rec).Entries)

	j.Log("Текущая дата и время: 05-06-2024 10:00:00")
	j.Log("Test message")

	rec = do(t, e, http.MethodGet, "/api/v1/journal", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Текущая дата и время: 05-06-2024 10:00:00", "Test message"},
		decode[httpadapter.Journal](t, rec).Entries)
}

func TestGetOrder_PathParameter(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/orders/%20", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[httpadapter.Error](t, rec).Message, "Invalid order id")
}

func TestSwaggerUI(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/swagger/index.html", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")

	rec = do(t, e, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"setOrderStatus"`)
}
