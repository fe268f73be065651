package apis

import (
	"context"
	"net/http"

	"campus-events-backend/cmd/campus-events/model"

	"github.com/labstack/echo/v4"
)

type IPolicyStore interface {
	Get(ctx context.Context) model.EventPolicy
	Set(ctx context.Context, p model.EventPolicy) error
	IsCreationEnabledForClub(ctx context.Context, clubID string) bool
}

type PolicyAPI struct {
	policies IPolicyStore
	auth     echo.MiddlewareFunc
}

func NewPolicyAPI(policies IPolicyStore, auth echo.MiddlewareFunc) *PolicyAPI {
	return &PolicyAPI{
		policies: policies,
		auth:     auth,
	}
}

func (a *PolicyAPI) Setup(g *echo.Group) {
	g.GET("/policy", a.getPolicy, a.auth)
	g.PUT("/policy", a.setPolicy, a.auth, RequireRole(RoleAdmin))
	g.GET("/policy/clubs/:clubId", a.clubEnabled, a.auth)
}

func (a *PolicyAPI) getPolicy(c echo.Context) error {
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    a.policies.Get(c.Request().Context()),
		},
	)
}

func (a *PolicyAPI) setPolicy(c echo.Context) error {

	var p model.EventPolicy
	if err := c.Bind(&p); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if err := a.policies.Set(c.Request().Context(), p); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    p,
		},
	)
}

func (a *PolicyAPI) clubEnabled(c echo.Context) error {

	clubID := c.Param("clubId")

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data: model.ClubEnabledResponse{
				ClubID:  clubID,
				Enabled: a.policies.IsCreationEnabledForClub(c.Request().Context(), clubID),
			},
		},
	)
}
