package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func CreateCustomer(c *gin.Context) {
	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	customer, err := models.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer berhasil ditambahkan", "data": customer})
}

func GetAllCustomers(c *gin.Context) {
	customers, err := models.GetCustomersAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}

func GetCustomerByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	customer, err := models.GetCustomer(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customer})
}

func UpdateCustomer(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	customer, err := models.UpdateCustomer(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer berhasil diperbarui", "data": customer})
}

func DeleteCustomer(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeleteCustomer(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer berhasil dihapus"})
}
