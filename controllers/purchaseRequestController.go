package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func CreatePurchaseRequest(c *gin.Context) {
	var input models.NewPurchaseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	request, err := models.CreatePurchaseRequest(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase request berhasil dibuat", "data": request})
}

func GetAllPurchaseRequests(c *gin.Context) {
	requests, err := models.GetPurchaseRequestsAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": requests})
}

func GetPurchaseRequestByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	request, err := models.GetPurchaseRequest(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": request})
}

func UpdatePurchaseRequest(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewPurchaseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	request, err := models.UpdatePurchaseRequest(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase request berhasil diperbarui", "data": request})
}

func DeletePurchaseRequest(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeletePurchaseRequest(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase request berhasil dihapus"})
}

// ApprovePurchaseRequest records the approval checklist and the quantities
// actually approved per product.
func ApprovePurchaseRequest(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.ApprovePurchaseRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	request, err := models.ApprovePurchaseRequest(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase request disetujui", "data": request})
}

func RejectPurchaseRequest(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.RejectPurchaseRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	request, err := models.RejectPurchaseRequest(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase request ditolak", "data": request})
}
