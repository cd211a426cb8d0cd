package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func GetStockSummary(c *gin.Context) {
	summary, err := models.GetStockSummary(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

func GetFinanceSummary(c *gin.Context) {
	summary, err := models.GetFinanceSummary(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}
