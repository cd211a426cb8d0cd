package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

// branch, department and warehouse share the same small CRUD surface

func CreateBranch(c *gin.Context) {
	var input models.NewBranch
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	branch, err := models.CreateBranch(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cabang berhasil ditambahkan", "data": branch})
}

func GetAllBranches(c *gin.Context) {
	branches, err := models.GetBranchesAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": branches})
}

func GetBranchByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	branch, err := models.GetBranch(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": branch})
}

func UpdateBranch(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewBranch
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	branch, err := models.UpdateBranch(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cabang berhasil diperbarui", "data": branch})
}

func DeleteBranch(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeleteBranch(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cabang berhasil dihapus"})
}

func CreateDepartment(c *gin.Context) {
	var input models.NewDepartment
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	department, err := models.CreateDepartment(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Departemen berhasil ditambahkan", "data": department})
}

func GetAllDepartments(c *gin.Context) {
	departments, err := models.GetDepartmentsAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": departments})
}

func GetDepartmentByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	department, err := models.GetDepartment(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": department})
}

func UpdateDepartment(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewDepartment
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	department, err := models.UpdateDepartment(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Departemen berhasil diperbarui", "data": department})
}

func DeleteDepartment(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeleteDepartment(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Departemen berhasil dihapus"})
}

func CreateWarehouse(c *gin.Context) {
	var input models.NewWarehouse
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	warehouse, err := models.CreateWarehouse(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gudang berhasil ditambahkan", "data": warehouse})
}

func GetAllWarehouses(c *gin.Context) {
	warehouses, err := models.GetWarehousesAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": warehouses})
}

func GetWarehouseByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	warehouse, err := models.GetWarehouse(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": warehouse})
}

func UpdateWarehouse(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewWarehouse
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	warehouse, err := models.UpdateWarehouse(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gudang berhasil diperbarui", "data": warehouse})
}

func DeleteWarehouse(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeleteWarehouse(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gudang berhasil dihapus"})
}
