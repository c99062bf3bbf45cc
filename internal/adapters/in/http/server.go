// Package http provides the echo adapter that dispatches requests to the
// pipeline+handler units. It owns envelope decoding and response rendering;
// all validation and mutation logic lives in the use case handlers.
package http

import (
	"errors"
	"net/http"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/usecases/dishes"
	"grubdash/internal/core/application/usecases/orders"
	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the dish and order handlers.
type Server struct {
	listDishes dishes.ListDishesHandler
	getDish    dishes.GetDishHandler
	createDish dishes.CreateDishHandler
	updateDish dishes.UpdateDishHandler

	listOrders  orders.ListOrdersHandler
	getOrder    orders.GetOrderHandler
	createOrder orders.CreateOrderHandler
	updateOrder orders.UpdateOrderHandler
	deleteOrder orders.DeleteOrderHandler
}

// NewServer creates the HTTP server with the required operation handlers.
func NewServer(
	listDishes dishes.ListDishesHandler,
	getDish dishes.GetDishHandler,
	createDish dishes.CreateDishHandler,
	updateDish dishes.UpdateDishHandler,
	listOrders orders.ListOrdersHandler,
	getOrder orders.GetOrderHandler,
	createOrder orders.CreateOrderHandler,
	updateOrder orders.UpdateOrderHandler,
	deleteOrder orders.DeleteOrderHandler,
) *Server {
	return &Server{
		listDishes:  listDishes,
		getDish:     getDish,
		createDish:  createDish,
		updateDish:  updateDish,
		listOrders:  listOrders,
		getOrder:    getOrder,
		createOrder: createOrder,
		updateOrder: updateOrder,
		deleteOrder: deleteOrder,
	}
}

// RegisterRoutes attaches all routes to the echo instance. Unlisted verbs on
// these paths get echo's default 405.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/dishes", s.ListDishes)
	e.POST("/dishes", s.CreateDish)
	e.GET("/dishes/:dishId", s.GetDish)
	e.PUT("/dishes/:dishId", s.UpdateDish)

	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:orderId", s.GetOrder)
	e.PUT("/orders/:orderId", s.UpdateOrder)
	e.DELETE("/orders/:orderId", s.DeleteOrder)
}

// dataResponse is the success envelope: every body the API returns wraps its
// payload in a data field, mirroring the envelope clients submit.
type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// envelope is the expected shape of every request body.
type envelope struct {
	Data map[string]any `json:"data"`
}

// bindRequest decodes the body envelope and builds the pipeline request.
// Bodyless requests (GET, DELETE) use newRequest instead.
func bindRequest(c echo.Context, param string) (*pipeline.Request, error) {
	var body envelope
	if err := c.Bind(&body); err != nil {
		return nil, errs.NewBadRequestError("Invalid request body")
	}
	return &pipeline.Request{RouteID: c.Param(param), Data: body.Data}, nil
}

func newRequest(c echo.Context, param string) *pipeline.Request {
	return &pipeline.Request{RouteID: c.Param(param)}
}

// renderError maps a handler failure to its response. Pipeline failures carry
// their own status and message; anything else is an internal fault.
func renderError(c echo.Context, err error) error {
	var reqErr *errs.RequestError
	if errors.As(err, &reqErr) {
		return c.JSON(reqErr.Status, errorResponse{Error: reqErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Something went wrong!"})
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(c echo.Context) error {
	all, err := s.listDishes.Handle(c.Request().Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, dataResponse{Data: all})
}

// GetDish handles GET /dishes/:dishId.
func (s *Server) GetDish(c echo.Context) error {
	d, err := s.getDish.Handle(c.Request().Context(), newRequest(c, "dishId"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, dataResponse{Data: d})
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(c echo.Context) error {
	req, err := bindRequest(c, "dishId")
	if err != nil {
		return renderError(c, err)
	}

	d, err := s.createDish.Handle(c.Request().Context(), req)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusCreated, dataResponse{Data: d})
}

// UpdateDish handles PUT /dishes/:dishId.
func (s *Server) UpdateDish(c echo.Context) error {
	req, err := bindRequest(c, "dishId")
	if err != nil {
		return renderError(c, err)
	}

	d, err := s.updateDish.Handle(c.Request().Context(), req)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, dataResponse{Data: d})
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(c echo.Context) error {
	all, err := s.listOrders.Handle(c.Request().Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, dataResponse{Data: all})
}

// GetOrder handles GET /orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	o, err := s.getOrder.Handle(c.Request().Context(), newRequest(c, "orderId"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, dataResponse{Data: o})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(c echo.Context) error {
	req, err := bindRequest(c, "orderId")
	if err != nil {
		return renderError(c, err)
	}

	o, err := s.createOrder.Handle(c.Request().Context(), req)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusCreated, dataResponse{Data: o})
}

// UpdateOrder handles PUT /orders/:orderId.
func (s *Server) UpdateOrder(c echo.Context) error {
	req, err := bindRequest(c, "orderId")
	if err != nil {
		return renderError(c, err)
	}

	o, err := s.updateOrder.Handle(c.Request().Context(), req)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, dataResponse{Data: o})
}

// DeleteOrder handles DELETE /orders/:orderId.
func (s *Server) DeleteOrder(c echo.Context) error {
	if err := s.deleteOrder.Handle(c.Request().Context(), newRequest(c, "orderId")); err != nil {
		return renderError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
