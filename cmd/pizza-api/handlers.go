package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pizzeria-api/internal/catalog"
	"github.com/MikeMC777/pizzeria-api/internal/contact"
	"github.com/MikeMC777/pizzeria-api/internal/httpx"
	"github.com/MikeMC777/pizzeria-api/internal/order"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// rootHandler lists the API surface.
func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name": "pizza-api",
			"endpoints": []string{
				"GET /api/pizzas",
				"GET /api/pizza-of-the-day",
				"GET /api/orders",
				"GET /api/order?id=",
				"POST /api/order",
				"GET /api/past-orders?page=",
				"GET /api/past-order/:orderId",
				"POST /api/contact",
			},
		})
	}
}

func healthHandler(db pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.String(http.StatusServiceUnavailable, "db unavailable")
			return
		}
		c.String(http.StatusOK, "ok")
	}
}

// listPizzasHandler godoc
// @Summary  List pizzas with their size prices
// @Tags     pizzas
// @Produce  json
// @Success  200 {array}  catalog.Pizza
// @Failure  500 {object} httpx.HTTPError
// @Router   /api/pizzas [get]
func listPizzasHandler(svc *catalog.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		pizzas, err := svc.List(c.Request.Context())
		if err != nil {
			log.Error("list pizzas", "rid", httpx.RID(c), "error", err)
			httpx.Error(c, http.StatusInternalServerError, "failed to load pizzas")
			return
		}
		c.JSON(http.StatusOK, pizzas)
	}
}

// pizzaOfTheDayHandler godoc
// @Summary  Pizza of the day
// @Tags     pizzas
// @Produce  json
// @Success  200 {object} catalog.Pizza
// @Failure  500 {object} httpx.HTTPError
// @Failure  503 {object} httpx.HTTPError
// @Router   /api/pizza-of-the-day [get]
func pizzaOfTheDayHandler(svc *catalog.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.PizzaOfTheDay(c.Request.Context(), time.Now())
		switch {
		case errors.Is(err, catalog.ErrEmptyCatalog):
			httpx.Error(c, http.StatusServiceUnavailable, err.Error())
			return
		case err != nil:
			log.Error("pizza of the day", "rid", httpx.RID(c), "error", err)
			httpx.Error(c, http.StatusInternalServerError, "failed to load pizza of the day")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// listOrdersHandler godoc
// @Summary  List all orders
// @Tags     orders
// @Produce  json
// @Success  200 {array}  order.Order
// @Failure  500 {object} httpx.HTTPError
// @Router   /api/orders [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "failed to load orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// getOrderHandler godoc
// @Summary  Get an order by query id
// @Tags     orders
// @Produce  json
// @Param    id  query    int true "Order ID"
// @Success  200 {object} order.Receipt
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Failure  500 {object} httpx.HTTPError
// @Router   /api/order [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeReceipt(c, svc, c.Query("id"))
	}
}

// pastOrderHandler godoc
// @Summary  Get a past order
// @Tags     orders
// @Produce  json
// @Param    orderId path     int true "Order ID"
// @Success  200     {object} order.Receipt
// @Failure  400     {object} httpx.HTTPError
// @Failure  404     {object} httpx.HTTPError
// @Failure  500     {object} httpx.HTTPError
// @Router   /api/past-order/{orderId} [get]
func pastOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeReceipt(c, svc, c.Param("orderId"))
	}
}

func writeReceipt(c *gin.Context, svc *order.Service, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id < 1 {
		httpx.Error(c, http.StatusBadRequest, "order id must be a positive integer")
		return
	}
	r, err := svc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, order.ErrNotFound):
		httpx.Error(c, http.StatusNotFound, err.Error())
		return
	case err != nil:
		httpx.Error(c, http.StatusInternalServerError, "failed to load order")
		return
	}
	c.JSON(http.StatusOK, r)
}

// createOrderHandler godoc
// @Summary  Place an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body     order.CreateOrderRequest true "Cart"
// @Success  201  {object} order.CreateOrderResponse
// @Failure  400  {object} httpx.HTTPError
// @Failure  500  {object} httpx.HTTPError
// @Router   /api/order [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, order.ErrInvalidOrder.Error())
			return
		}

		id, err := svc.Create(c.Request.Context(), req.Cart, time.Now())
		switch {
		case errors.Is(err, order.ErrInvalidOrder), errors.Is(err, order.ErrInvalidItem):
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			httpx.Error(c, http.StatusInternalServerError, order.ErrCreationFailed.Error())
			return
		}
		c.JSON(http.StatusCreated, order.CreateOrderResponse{OrderID: id})
	}
}

// pastOrdersHandler godoc
// @Summary  Recent orders, 20 per page, newest first
// @Tags     orders
// @Produce  json
// @Param    page query    int false "Page (1-based)" default(1)
// @Success  200  {array}  order.Order
// @Failure  400  {object} httpx.HTTPError
// @Failure  500  {object} httpx.HTTPError
// @Router   /api/past-orders [get]
func pastOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, order.ErrInvalidPage.Error())
			return
		}
		orders, err := svc.PastOrders(c.Request.Context(), page)
		switch {
		case errors.Is(err, order.ErrInvalidPage):
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			httpx.Error(c, http.StatusInternalServerError, "failed to load past orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// contactHandler godoc
// @Summary  Submit the contact form
// @Tags     contact
// @Accept   json
// @Produce  json
// @Param    body body     contact.Message true "Message"
// @Success  200  {object} map[string]bool
// @Failure  400  {object} httpx.HTTPError
// @Router   /api/contact [post]
func contactHandler(svc *contact.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m contact.Message
		if err := c.ShouldBindJSON(&m); err != nil {
			httpx.Error(c, http.StatusBadRequest, contact.ErrMissingField.Error())
			return
		}
		if err := svc.Submit(c.Request.Context(), m); err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
