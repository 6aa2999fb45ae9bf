package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/micromarket/backend/internal/middleware"
	"github.com/micromarket/backend/internal/repo"
)

type Deps struct {
	Repo           *repo.GormRepo
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	DemoHandler    *DemoHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)

	api.GET("/suppliers", d.CatalogHandler.ListSuppliers)
	api.GET("/suppliers/:id/products", d.CatalogHandler.ListSupplierProducts)

	cart := api.Group("/cart", middleware.BearerAuth(d.JWTSecret, d.Repo))
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/add", d.CartHandler.AddToCart)

	api.POST("/demo/init", d.DemoHandler.Init)
}
