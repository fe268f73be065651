package apis

import (
	"net/http"

	"campus-events-backend/cmd/campus-events/model"
	"campus-events-backend/cmd/campus-events/profanity"

	"github.com/labstack/echo/v4"
)

type IDenylistHolder interface {
	Snapshot() profanity.Denylist
	Replace(list profanity.Denylist)
}

type DenylistAPI struct {
	holder IDenylistHolder
}

func NewDenylistAPI(holder IDenylistHolder) *DenylistAPI {
	return &DenylistAPI{
		holder: holder,
	}
}

// Setup expects g to be guarded by the auth and admin role middleware.
func (a *DenylistAPI) Setup(g *echo.Group) {
	g.GET("/denylist", a.getDenylist)
	g.POST("/denylist", a.uploadDenylist)
}

func (a *DenylistAPI) getDenylist(c echo.Context) error {
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    a.holder.Snapshot(),
		},
	)
}

func (a *DenylistAPI) uploadDenylist(c echo.Context) error {

	csvfile, err := c.FormFile("csvfile")
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	cf, err := csvfile.Open()
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	defer cf.Close()

	list, err := profanity.LoadDenylistCSV(cf)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	a.holder.Replace(list)

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    map[string]int{"words": len(list)},
		},
	)
}
