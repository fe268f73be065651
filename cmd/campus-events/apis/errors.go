package apis

import (
	"errors"
	"net/http"

	"campus-events-backend/cmd/campus-events/model"
	"campus-events-backend/cmd/campus-events/moderation"
	"campus-events-backend/cmd/campus-events/policy"

	"github.com/labstack/echo/v4"
)

func errorStatus(err error) int {
	var storageErr *model.StorageError
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, moderation.ErrNoteRequired), errors.Is(err, policy.ErrInvalidPolicy):
		return http.StatusBadRequest
	case errors.As(err, &storageErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(c echo.Context, err error) error {
	return c.JSON(
		errorStatus(err),
		model.BaseResponse{
			Message: err.Error(),
		},
	)
}
