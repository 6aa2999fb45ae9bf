package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/micromarket/backend/internal/logging"
	"github.com/micromarket/backend/internal/service"
)

type DemoHTTP struct {
	Svc *service.DemoService
}

func (h *DemoHTTP) Init(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "demo.init")

	created, err := h.Svc.Init(ctx)
	if err != nil {
		l.Error("demo_init_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	msg := "Demo data already exists"
	if created {
		msg = "Demo data initialized successfully"
	}
	return c.JSON(http.StatusOK, echo.Map{"message": msg})
}
