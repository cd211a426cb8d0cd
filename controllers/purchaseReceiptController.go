package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
	"github.com/amirrdn/acounting-api/workflow"
)

func CreatePurchaseReceipt(c *gin.Context) {
	var input models.NewPurchaseReceipt
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	receipt, err := models.CreatePurchaseReceipt(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Penerimaan barang berhasil dibuat", "data": receipt})
}

func GetAllPurchaseReceipts(c *gin.Context) {
	receipts, err := models.GetPurchaseReceiptsAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": receipts})
}

func GetPurchaseReceiptByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	receipt, err := models.GetPurchaseReceipt(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": receipt})
}

func UpdatePurchaseReceipt(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewPurchaseReceipt
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	receipt, err := models.UpdatePurchaseReceipt(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Penerimaan barang berhasil diperbarui", "data": receipt})
}

func DeletePurchaseReceipt(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeletePurchaseReceipt(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Penerimaan barang berhasil dihapus"})
}

// UpdatePurchaseReceiptStatus completes or reopens a receipt. Completion
// posts stock and rolls the purchase order status up.
func UpdatePurchaseReceiptStatus(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status models.PurchaseReceiptStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	receipt, err := workflow.UpdatePurchaseReceiptStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status penerimaan barang diperbarui", "data": receipt})
}
