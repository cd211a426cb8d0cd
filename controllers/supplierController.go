package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func CreateSupplier(c *gin.Context) {
	var input models.NewSupplier
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	supplier, err := models.CreateSupplier(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier berhasil ditambahkan", "data": supplier})
}

func GetAllSuppliers(c *gin.Context) {
	suppliers, err := models.GetSuppliersAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": suppliers})
}

func GetSupplierByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	supplier, err := models.GetSupplier(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": supplier})
}

func UpdateSupplier(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewSupplier
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	supplier, err := models.UpdateSupplier(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier berhasil diperbarui", "data": supplier})
}

func DeleteSupplier(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeleteSupplier(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier berhasil dihapus"})
}
