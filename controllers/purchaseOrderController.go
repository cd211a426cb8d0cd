package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

// bindPurchaseOrder accepts either plain JSON or a multipart form carrying
// the order as a "data" field plus an optional "attachment" file.
func bindPurchaseOrder(c *gin.Context) (*models.NewPurchaseOrder, string, bool) {
	var input models.NewPurchaseOrder

	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return nil, "", false
		}
		return &input, "", true
	}

	data := c.PostForm("data")
	if data == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return nil, "", false
	}
	if err := json.Unmarshal([]byte(data), &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return nil, "", false
	}

	attachmentUrl := ""
	if file, err := c.FormFile("attachment"); err == nil {
		url, err := saveAttachment(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, "", false
		}
		attachmentUrl = url
	}
	return &input, attachmentUrl, true
}

func CreatePurchaseOrder(c *gin.Context) {
	input, attachmentUrl, ok := bindPurchaseOrder(c)
	if !ok {
		return
	}

	order, err := models.CreatePurchaseOrder(c.Request.Context(), input, attachmentUrl)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order berhasil dibuat", "data": order})
}

func GetAllPurchaseOrders(c *gin.Context) {
	orders, err := models.GetPurchaseOrdersAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func GetPurchaseOrderByID(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	order, err := models.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

func UpdatePurchaseOrder(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	input, attachmentUrl, ok := bindPurchaseOrder(c)
	if !ok {
		return
	}

	order, err := models.UpdatePurchaseOrder(c.Request.Context(), id, input, attachmentUrl)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order berhasil diperbarui", "data": order})
}

func DeletePurchaseOrder(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if _, err := models.DeletePurchaseOrder(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order berhasil dihapus"})
}

func UpdatePurchaseOrderStatus(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status        models.PurchaseOrderStatus `json:"status" binding:"required"`
		ApprovalNotes string                     `json:"approval_notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	order, err := models.UpdatePurchaseOrderStatus(c.Request.Context(), id, input.Status, input.ApprovalNotes)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status purchase order diperbarui", "data": order})
}

func ApprovePurchaseOrder(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		ApprovalNotes string `json:"approval_notes"`
	}
	_ = c.ShouldBindJSON(&input)

	order, err := models.UpdatePurchaseOrderStatus(c.Request.Context(), id, models.PurchaseOrderStatusApproved, input.ApprovalNotes)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order disetujui", "data": order})
}

func SendPurchaseOrder(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	order, err := models.UpdatePurchaseOrderStatus(c.Request.Context(), id, models.PurchaseOrderStatusSent, "")
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order dikirim ke supplier", "data": order})
}
