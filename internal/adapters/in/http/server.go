package http

import (
	"errors"
	"log/slog"
	"net/http"

	"showcase/internal/core/application/usecases/commands"
	"showcase/internal/core/application/usecases/queries"
	"showcase/internal/core/domain/model/kernel"
	"showcase/internal/core/domain/model/order"
	"showcase/internal/core/domain/model/season"
	"showcase/internal/pkg/errs"
	"showcase/internal/pkg/journal"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server handles HTTP requests by delegating to application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	setOrderStatusHandler commands.SetOrderStatusCommandHandler
	processTextHandler    commands.ProcessTextCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler

	journal *journal.Journal
	logger  *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	processTextHandler commands.ProcessTextCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	j *journal.Journal,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		setOrderStatusHandler: setOrderStatusHandler,
		processTextHandler:    processTextHandler,
		getOrderHandler:       getOrderHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		journal:               j,
		logger:                logger.With("component", "http_server"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/v1/openapi.json")))

	v1 := e.Group("/api/v1")
	v1.GET("/openapi.json", s.GetOpenAPI)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id/status", s.SetOrderStatus)
	v1.GET("/seasons/:season", s.GetSeasonName)
	v1.POST("/text/process", s.ProcessText)
	v1.GET("/journal", s.GetJournal)
	v1.GET("/metrics", s.GetMetrics)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOpenAPI handles GET /api/v1/openapi.json - serves the API description.
func (s *Server) GetOpenAPI(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, openapiDocument)
}

// CreateOrder handles POST /api/v1/orders - creates an order in the New status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, Order{ID: orderID.Bytes(), Status: order.New.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// SetOrderStatus handles PUT /api/v1/orders/:id/status. A refused transition
// is answered with 200 and applied=false.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status")
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status change")
	}

	result, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to change order status")
	}

	return ctx.JSON(http.StatusOK, StatusChangeResult{
		ID:      orderID.Bytes(),
		Status:  result.Status.String(),
		Applied: result.Applied,
	})
}

// GetSeasonName handles GET /api/v1/seasons/:season.
func (s *Server) GetSeasonName(ctx echo.Context) error {
	value, err := season.Parse(ctx.Param("season"))
	if err != nil {
		return s.fail(ctx, err, "Invalid season")
	}

	return ctx.JSON(http.StatusOK, SeasonName{Season: value.String(), Name: value.Name()})
}

// ProcessText handles POST /api/v1/text/process.
func (s *Server) ProcessText(ctx echo.Context) error {
	var body TextProcessing
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewProcessTextCommand(body.Stages, body.Text)
	if err != nil {
		return s.fail(ctx, err, "Invalid pipeline")
	}

	result, err := s.processTextHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to process text")
	}

	return ctx.JSON(http.StatusOK, TextResult{Result: result})
}

// GetJournal handles GET /api/v1/journal - returns the recorded messages, oldest first.
func (s *Server) GetJournal(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Journal{Entries: s.journal.Entries()})
}

// GetMetrics handles GET /api/v1/metrics - returns the status change counters.
func (s *Server) GetMetrics(ctx echo.Context) error {
	metrics := s.setOrderStatusHandler.Metrics()

	return ctx.JSON(http.StatusOK, Metrics{
		StatusApplied: int64(metrics.Counter(commands.StatusAppliedTotal).Value()),
		StatusRefused: int64(metrics.Counter(commands.StatusRefusedTotal).Value()),
	})
}

// bindOrderID reads the :id path parameter the way the OpenAPI "simple" style defines it.
func bindOrderID(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return kernel.UUIDFromString(raw)
}

// fail maps err to a status code: 404 for missing objects, 400 for invalid
// input and 500 for everything else. Details of 500s are logged, not returned.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
	} else {
		message += ": " + err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
