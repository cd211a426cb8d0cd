package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/utils"
)

func parseIdParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return 0, false
	}
	return id, true
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Data tidak valid",
		"fields": utils.ProcessValidationErrors(err),
	})
}

// serviceError maps model errors onto HTTP statuses. Validation failures
// come back as plain errors.New values from the models package.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrorRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
	case errors.Is(err, utils.ErrorInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Perubahan status tidak diizinkan"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
