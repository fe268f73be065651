package apis

import (
	"context"
	"net/http"

	"campus-events-backend/cmd/campus-events/model"

	"github.com/goforj/godump"
	"github.com/labstack/echo/v4"
)

type IEventService interface {
	Create(ctx context.Context, in model.CreateEventInput, who model.Identity) (*model.Event, model.ValidationResult, error)
	Get(ctx context.Context, id string) (*model.Event, error)
	ListApproved(ctx context.Context) ([]model.Event, error)
	ListByClub(ctx context.Context, clubID string) ([]model.Event, error)
}

type EventAPI struct {
	events       IEventService
	auth         echo.MiddlewareFunc
	optionalAuth echo.MiddlewareFunc
	debug        bool
}

// NewEventAPI guards creation with auth; optionalAuth identifies callers of
// the single event route so moderators can see events under review.
func NewEventAPI(events IEventService, auth, optionalAuth echo.MiddlewareFunc, debug bool) *EventAPI {

	return &EventAPI{
		events:       events,
		auth:         auth,
		optionalAuth: optionalAuth,
		debug:        debug,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.GET("/events", a.listEvents)
	g.GET("/events/:id", a.getEvent, a.optionalAuth)
	g.GET("/clubs/:clubId/events", a.listClubEvents)
	g.POST("/event", a.createEvent, a.auth)
}

func (a *EventAPI) listEvents(c echo.Context) error {

	ctx := c.Request().Context()

	events, err := a.events.ListApproved(ctx)
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

func (a *EventAPI) listClubEvents(c echo.Context) error {

	ctx := c.Request().Context()

	events, err := a.events.ListByClub(ctx, c.Param("clubId"))
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

// getEvent exposes approved events to everyone and events in any status to
// moderators and admins.
func (a *EventAPI) getEvent(c echo.Context) error {

	ctx := c.Request().Context()

	event, err := a.events.Get(ctx, c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	who, _ := identityFrom(c)
	if event.Status != model.Approved && !isModerator(who) {
		return errorResponse(c, model.ErrNotFound)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    event,
		},
	)
}

func (a *EventAPI) createEvent(c echo.Context) error {

	ctx := c.Request().Context()

	who, ok := identityFrom(c)
	if !ok {
		return c.JSON(
			http.StatusUnauthorized,
			model.BaseResponse{
				Message: "missing identity",
			},
		)
	}

	var req model.EventCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if a.debug {
		godump.Dump(req)
	}

	event, result, err := a.events.Create(ctx, req.Input(), who)
	if err != nil {
		return errorResponse(c, err)
	}
	if !result.OK {
		return c.JSON(
			http.StatusUnprocessableEntity,
			model.BaseResponse{
				Message: "validation failed",
				Errors:  result.Errors,
			},
		)
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    event,
		},
	)
}
