package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
	"github.com/amirrdn/acounting-api/workflow"
)

func CreatePurchasePayment(c *gin.Context) {
	var input models.NewPurchasePayment
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	payment, err := workflow.CreatePurchasePayment(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pembayaran berhasil dicatat", "data": payment})
}

func GetAllPurchasePayments(c *gin.Context) {
	payments, err := models.GetPurchasePaymentsAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payments})
}

func GetPurchasePaymentByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	payment, err := models.GetPurchasePayment(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payment})
}

func DeletePurchasePayment(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := workflow.DeletePurchasePayment(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pembayaran berhasil dihapus"})
}

func GetUnpaidInvoicesBySupplier(c *gin.Context) {
	supplierId, ok := parseIdParam(c, "supplierId")
	if !ok {
		return
	}

	invoices, err := models.GetUnpaidInvoicesBySupplier(c.Request.Context(), supplierId)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

func GeneratePaymentNumber(c *gin.Context) {
	number, err := models.GeneratePaymentNumber(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"payment_number": number}})
}
