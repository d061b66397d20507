package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/laundry-app/services"
	"github.com/yeremiapane/laundry-app/utils"
)

var errInvalidID = errors.New("Invalid id or user_id")

// statusFor maps a service error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(c *gin.Context, err error) {
	utils.RespondMessage(c, statusFor(err), services.PublicMessage(err))
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// requesterID returns the user_id query parameter, falling back to the
// bearer token identity set by OptionalAuth. present is false when neither
// source supplied a value; ok is false when the supplied value is malformed.
func requesterID(c *gin.Context) (id uint, present, ok bool) {
	if raw := c.Query("user_id"); raw != "" {
		id, ok = parseID(raw)
		return id, true, ok
	}
	if v, exists := c.Get("user_id"); exists {
		if uid, isUint := v.(uint); isUint && uid != 0 {
			return uid, true, true
		}
	}
	return 0, false, false
}
