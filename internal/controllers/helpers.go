package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads the :id path parameter. On failure it writes a 400 response
// naming the entity and returns false. Ids below 1 come back as 0, which the
// services report as not found.
func parseID(ctx *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid " + entity + " ID format"})
		return 0, false
	}
	return toID(id), true
}

// toID narrows a decoded id to a key; anything below 1 becomes the unused key 0
func toID(id int64) uint {
	if id < 1 {
		return 0
	}
	return uint(id)
}

// toPrice accepts whole numbers only, so 5 and 5.0 are the same price
func toPrice(price float64) (int, bool) {
	if price != math.Trunc(price) || math.Abs(price) > math.MaxInt32 {
		return 0, false
	}
	return int(price), true
}

// serverError logs err and writes a 500 response with message
func serverError(ctx *gin.Context, message string, err error) {
	logRequestError(ctx, message, err)
	ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: message})
}

func logRequestError(ctx *gin.Context, message string, err error) {
	log.WithFields(log.Fields{
		"path":       ctx.FullPath(),
		"request_id": ctx.GetString("requestID"),
	}).WithError(err).Error(message)
}

func toMaps[T interface{ ToMap(...string) map[string]any }](items []T, exclude ...string) []map[string]any {
	result := make([]map[string]any, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToMap(exclude...))
	}
	return result
}
