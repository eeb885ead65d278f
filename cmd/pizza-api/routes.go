package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/pizzeria-api/docs"
	"github.com/MikeMC777/pizzeria-api/internal/catalog"
	"github.com/MikeMC777/pizzeria-api/internal/contact"
	"github.com/MikeMC777/pizzeria-api/internal/httpx"
	"github.com/MikeMC777/pizzeria-api/internal/order"
)

type deps struct {
	catalog   *catalog.Service
	orders    *order.Service
	contact   *contact.Service
	db        pinger
	log       *slog.Logger
	publicDir string
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(d.log))

	r.GET("/", rootHandler())
	r.GET("/healthz", healthHandler(d.db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if d.publicDir != "" {
		r.Static("/public", d.publicDir)
	}

	api := r.Group("/api")
	api.GET("/pizzas", listPizzasHandler(d.catalog, d.log))
	api.GET("/pizza-of-the-day", pizzaOfTheDayHandler(d.catalog, d.log))
	api.GET("/orders", listOrdersHandler(d.orders))
	api.GET("/order", getOrderHandler(d.orders))
	api.POST("/order", createOrderHandler(d.orders))
	api.GET("/past-orders", pastOrdersHandler(d.orders))
	api.GET("/past-order/:orderId", pastOrderHandler(d.orders))
	api.POST("/contact", contactHandler(d.contact))
	return r
}
