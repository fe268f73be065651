package apis

import (
	"context"
	"net/http"

	"campus-events-backend/cmd/campus-events/model"

	"github.com/labstack/echo/v4"
)

type IModerationService interface {
	ListPending(ctx context.Context) ([]model.Event, error)
	Approve(ctx context.Context, id string) (*model.Event, error)
	Reject(ctx context.Context, id, note string) (*model.Event, error)
}

type ModerationAPI struct {
	moderation IModerationService
}

func NewModerationAPI(moderation IModerationService) *ModerationAPI {
	return &ModerationAPI{
		moderation: moderation,
	}
}

// Setup expects g to be guarded by the auth and moderator role middleware.
func (a *ModerationAPI) Setup(g *echo.Group) {
	g.GET("/events", a.listPending)
	g.POST("/events/:id/approve", a.approve)
	g.POST("/events/:id/reject", a.reject)
}

func (a *ModerationAPI) listPending(c echo.Context) error {

	events, err := a.moderation.ListPending(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    events,
		},
	)
}

func (a *ModerationAPI) approve(c echo.Context) error {

	event, err := a.moderation.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "approved",
			Data:    event,
		},
	)
}

func (a *ModerationAPI) reject(c echo.Context) error {

	var req model.EventRejectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "note is required",
			},
		)
	}

	event, err := a.moderation.Reject(c.Request().Context(), c.Param("id"), req.Note)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "rejected",
			Data:    event,
		},
	)
}
