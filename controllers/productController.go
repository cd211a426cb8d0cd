package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func CreateProduct(c *gin.Context) {
	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	product, err := models.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produk berhasil ditambahkan", "data": product})
}

func GetAllProducts(c *gin.Context) {
	products, err := models.GetProductsAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func GetProductByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	product, err := models.GetProduct(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func UpdateProduct(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	product, err := models.UpdateProduct(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produk berhasil diperbarui", "data": product})
}

func DeleteProduct(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeleteProduct(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produk berhasil dihapus"})
}
