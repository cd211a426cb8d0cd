package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func queryIntPtr(c *gin.Context, name string) *int {
	if value := c.Query(name); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return &parsed
		}
	}
	return nil
}

func GetProductStocks(c *gin.Context) {
	stocks, err := models.GetProductStocksAll(c.Request.Context(), queryIntPtr(c, "warehouse_id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stocks})
}

func GetProductStockByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	stock, err := models.GetProductStock(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stock})
}

func GetStockMovements(c *gin.Context) {
	filter := models.StockMovementFilter{
		ProductId:   queryIntPtr(c, "product_id"),
		WarehouseId: queryIntPtr(c, "warehouse_id"),
	}
	if value := c.Query("type"); value != "" {
		movementType := models.StockMovementType(value)
		filter.Type = &movementType
	}
	if value := c.Query("start_date"); value != "" {
		if startDate, err := time.Parse("2006-01-02", value); err == nil {
			filter.StartDate = &startDate
		}
	}
	if value := c.Query("end_date"); value != "" {
		if endDate, err := time.Parse("2006-01-02", value); err == nil {
			filter.EndDate = &endDate
		}
	}

	movements, err := models.GetStockMovementsAll(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": movements})
}

func GetStockCard(c *gin.Context) {
	productId, ok := parseIdParam(c, "productId")
	if !ok {
		return
	}

	entries, err := models.GetStockCard(c.Request.Context(), productId, queryIntPtr(c, "warehouse_id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func CreateStockTransfer(c *gin.Context) {
	var input models.NewStockTransfer
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	transfer, err := models.CreateStockTransfer(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transfer stok berhasil dibuat", "data": transfer})
}

func GetAllStockTransfers(c *gin.Context) {
	transfers, err := models.GetStockTransfersAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": transfers})
}

func ApproveStockTransfer(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	transfer, err := models.ApproveStockTransfer(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transfer stok disetujui", "data": transfer})
}

func CreateStockOpname(c *gin.Context) {
	var input models.NewStockOpname
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	opname, err := models.CreateStockOpname(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock opname berhasil dibuat", "data": opname})
}

func GetAllStockOpnames(c *gin.Context) {
	opnames, err := models.GetStockOpnamesAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": opnames})
}

func ApproveStockOpname(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	opname, err := models.ApproveStockOpname(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock opname disetujui", "data": opname})
}

func CreateStockAdjustment(c *gin.Context) {
	var input models.NewStockAdjustment
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	adjustment, err := models.CreateStockAdjustment(c.Request.Context(), &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Penyesuaian stok berhasil dibuat", "data": adjustment})
}

func GetAllStockAdjustments(c *gin.Context) {
	adjustments, err := models.GetStockAdjustmentsAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": adjustments})
}

func ApproveStockAdjustment(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	adjustment, err := models.ApproveStockAdjustment(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Penyesuaian stok disetujui", "data": adjustment})
}
