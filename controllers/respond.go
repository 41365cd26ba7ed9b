// Package controllers holds the gin handlers. Handlers bind and validate
// requests, call a service, and map taxonomy errors to status codes; they
// contain no business logic of their own.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/apperrors"
	"socialnet/logger"
)

var validate = validator.New()

// respondError maps a taxonomy error to its status code and a
// {"message": ...} body. Anything outside the taxonomy is logged and
// returned as an opaque 500.
func respondError(c *gin.Context, err error) {
	kind, ok := apperrors.KindOf(err)
	if !ok {
		logger.FromContext(c).Error().Err(err).Msg("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch kind {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindAuth:
		status = http.StatusUnauthorized
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

// pathID parses an ObjectID path parameter, answering 400 on bad input.
func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}
