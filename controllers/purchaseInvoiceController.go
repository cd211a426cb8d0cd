package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func CreatePurchaseInvoice(c *gin.Context) {
	var input models.NewPurchaseInvoice
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := models.CreatePurchaseInvoice(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice pembelian berhasil dibuat", "data": invoice})
}

func GetAllPurchaseInvoices(c *gin.Context) {
	invoices, err := models.GetPurchaseInvoicesAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

func GetPurchaseInvoiceByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	invoice, err := models.GetPurchaseInvoice(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func UpdatePurchaseInvoice(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewPurchaseInvoice
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := models.UpdatePurchaseInvoice(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice pembelian berhasil diperbarui", "data": invoice})
}

func DeletePurchaseInvoice(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeletePurchaseInvoice(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice pembelian berhasil dihapus"})
}
