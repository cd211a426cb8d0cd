package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	result, err := models.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username atau password salah"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login berhasil", "data": result})
}

func RegisterUser(c *gin.Context) {
	var input models.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	user, err := models.CreateUser(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User berhasil ditambahkan", "data": user})
}

func ChangePassword(c *gin.Context) {
	var input struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	if _, err := models.ChangePassword(c.Request.Context(), input.OldPassword, input.NewPassword); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password berhasil diubah"})
}

func GetUsers(c *gin.Context) {
	users, err := models.GetUsersAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}
