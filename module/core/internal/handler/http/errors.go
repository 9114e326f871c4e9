package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.WithError(err).Error("store query failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		log.WithError(err).Error("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
