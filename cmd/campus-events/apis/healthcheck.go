package apis

import (
	"net/http"

	"campus-events-backend/cmd/campus-events/model"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCheckAPI struct {
	db *gorm.DB
}

func NewHealthCheckAPI(db *gorm.DB) *HealthCheckAPI {
	return &HealthCheckAPI{
		db: db,
	}
}

func (a *HealthCheckAPI) Setup(g *echo.Group) {
	g.GET("/healthz", a.healthCheck)
}

// healthCheck reports unhealthy when the datastore holding events and the
// policy cannot be reached.
func (a *HealthCheckAPI) healthCheck(c echo.Context) error {

	db, err := a.db.DB()
	if err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	err = db.PingContext(c.Request().Context())
	if err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "healthy",
		},
	)
}
