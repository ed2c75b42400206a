package handlers

import (
	"errors"
	"net/http"

	"pizza-storefront-api/errs"

	"github.com/gin-gonic/gin"
)

// fail writes the JSON failure shape the storefront front end expects. The
// message comes from the error taxonomy, never from raw storage errors.
func fail(c *gin.Context, err error) {
	status, message := httpError(err)
	c.JSON(status, gin.H{"success": false, "message": message})
}

func httpError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, "Please log in"
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, errs.ErrInvalidQuantity):
		return http.StatusBadRequest, "Invalid quantity"
	case errors.Is(err, errs.ErrItemNotAvailable):
		return http.StatusBadRequest, "Food item not found or not available"
	case errors.Is(err, errs.ErrEmptyCart):
		return http.StatusBadRequest, "Your cart is empty. Please add items before checkout."
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "Invalid status change"
	case errors.Is(err, errs.ErrStorageConflict):
		return http.StatusConflict, "Please try again"
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again later."
	}
}
