package http

import (
	"errors"
	"net/http"

	"burgercounter/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// errorResponse maps domain errors onto HTTP statuses:
// validation failures are 400, missing objects 404, lost races 409,
// everything else 500 with the detail kept out of the body.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidStatusTransition),
		errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
