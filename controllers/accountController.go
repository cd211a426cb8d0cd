package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func CreateAccount(c *gin.Context) {
	var input models.NewAccount
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	account, err := models.CreateAccount(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Akun berhasil ditambahkan", "data": account})
}

// GetAllAccounts optionally filters by one or more ?type= query values.
func GetAllAccounts(c *gin.Context) {
	var accountTypes []models.AccountType
	for _, value := range c.QueryArray("type") {
		accountTypes = append(accountTypes, models.AccountType(value))
	}

	accounts, err := models.GetAccountsAll(c.Request.Context(), accountTypes)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": accounts})
}

func GetAccountByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	account, err := models.GetAccount(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account})
}

func UpdateAccount(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewAccount
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	account, err := models.UpdateAccount(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Akun berhasil diperbarui", "data": account})
}

func DeleteAccount(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeleteAccount(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Akun berhasil dihapus"})
}
