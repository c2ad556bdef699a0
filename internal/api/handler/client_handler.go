package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

// ClientHandler serves the client dashboard screens: home, posted orders,
// and the account page.
type ClientHandler struct {
	accounts ports.AccountService
	orders   ports.OrderService
}

func NewClientHandler(accounts ports.AccountService, orders ports.OrderService) *ClientHandler {
	return &ClientHandler{accounts: accounts, orders: orders}
}

type createOrderRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Urgency     string `json:"urgency" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

type cancelOrderRequest struct {
	// Orders is the list currently displayed; the response returns it with
	// the cancelled entry removed so the screen updates without a re-fetch.
	Orders []domain.Service `json:"orders"`
}

type cancelOrderResponse struct {
	RemovedID string           `json:"removedId"`
	Orders    []domain.Service `json:"orders"`
}

// Home renders the client dashboard landing view.
//
// @Summary      Client dashboard home
// @Tags         client
// @Produce      json
// @Success      200  {object}  ports.ClientHome
// @Failure      401  {object}  map[string]string
// @Router       /client [get]
func (h *ClientHandler) Home(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	home, err := h.accounts.ClientHome(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, home)
}

// Orders lists the client's posted service requests.
//
// @Summary      List posted orders
// @Tags         client
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /client/pedidos [get]
func (h *ClientHandler) Orders(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.Orders(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// CreateOrder posts a new service request.
//
// @Summary      Post a service request
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Router       /client/pedidos [post]
func (h *ClientHandler) CreateOrder(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.orders.Create(c.Request().Context(), sess.Token, ports.CreateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Urgency:     req.Urgency,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// CancelOrder deletes an order and echoes back the displayed list minus the
// cancelled entry.
//
// @Summary      Cancel a posted order
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Service id"
// @Param        body  body      cancelOrderRequest  true  "Currently displayed orders"
// @Success      200   {object}  cancelOrderResponse
// @Failure      404   {object}  map[string]string
// @Router       /client/pedidos/{id}/cancelar [post]
func (h *ClientHandler) CancelOrder(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	serviceID := c.Param("id")

	var req cancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	remaining, err := h.orders.Cancel(c.Request().Context(), sess.Token, serviceID, req.Orders)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cancelOrderResponse{RemovedID: serviceID, Orders: remaining})
}

// UnlockedOrders lists the client's posted orders that professionals have
// unlocked, so the client can contact them back.
//
// @Summary      Orders unlocked by professionals
// @Tags         client
// @Produce      json
// @Success      200  {array}  ports.UnlockedOrder
// @Failure      401  {object}  map[string]string
// @Router       /client/desbloqueados [get]
func (h *ClientHandler) UnlockedOrders(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	orders, err := h.accounts.UnlockedOrders(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Account renders the client account screen.
//
// @Summary      Client account
// @Tags         client
// @Produce      json
// @Success      200  {object}  domain.User
// @Router       /client/conta [get]
func (h *ClientHandler) Account(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Profile(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
