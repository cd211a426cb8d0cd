package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
	"github.com/amirrdn/acounting-api/models/reports"
)

func CreateBudget(c *gin.Context) {
	var input models.NewBudget
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	budget, err := models.CreateBudget(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Anggaran berhasil dibuat", "data": budget})
}

func GetAllBudgets(c *gin.Context) {
	budgets, err := models.GetBudgetsAll(c.Request.Context(), queryIntPtr(c, "year"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": budgets})
}

func GetBudgetByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	budget, err := models.GetBudget(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": budget})
}

func UpdateBudget(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input models.NewBudget
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	budget, err := models.UpdateBudget(c.Request.Context(), id, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Anggaran berhasil diperbarui", "data": budget})
}

func DeleteBudget(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeleteBudget(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Anggaran berhasil dihapus"})
}

// GetBudgetDetails serves both /budget/:id/details and /budget/details
// filtered by ?budget_id.
func GetBudgetDetails(c *gin.Context) {
	budgetId := queryIntPtr(c, "budget_id")
	if raw := c.Param("id"); raw != "" {
		id, ok := parseIdParam(c, "id")
		if !ok {
			return
		}
		budgetId = &id
	}

	details, err := models.GetBudgetDetailsAll(c.Request.Context(), budgetId)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": details})
}

func GetBudgetReport(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tahun tidak valid"})
		return
	}

	report, err := reports.GetBudgetReport(c.Request.Context(), year)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// ExportBudgetReport streams the yearly report as an xlsx download when
// ?format=excel is set, JSON otherwise.
func ExportBudgetReport(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tahun tidak valid"})
		return
	}
	if c.Query("format") != "excel" {
		GetBudgetReport(c)
		return
	}

	f, err := reports.ExportBudgetReportExcel(c.Request.Context(), year)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=budget-report-%d.xlsx", year))
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menulis file"})
	}
}
