package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/models"
)

func CashIn(c *gin.Context) {
	createCashBankTransaction(c, models.CashBankTypeIn, "Kas masuk berhasil dicatat")
}

func CashOut(c *gin.Context) {
	createCashBankTransaction(c, models.CashBankTypeOut, "Kas keluar berhasil dicatat")
}

func CashTransfer(c *gin.Context) {
	createCashBankTransaction(c, models.CashBankTypeTransfer, "Transfer berhasil dicatat")
}

func createCashBankTransaction(c *gin.Context, transactionType models.CashBankType, message string) {
	var input models.NewCashBankTransaction
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	transaction, err := models.CreateCashBankTransaction(c.Request.Context(), transactionType, &input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "data": transaction})
}

func cashBankFilterFromQuery(c *gin.Context) models.CashBankFilter {
	var filter models.CashBankFilter
	if value := c.Query("type"); value != "" {
		transactionType := models.CashBankType(value)
		filter.Type = &transactionType
	}
	if value := c.Query("account_id"); value != "" {
		if accountId, err := strconv.Atoi(value); err == nil {
			filter.AccountId = &accountId
		}
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
	return filter
}

func GetCashBankTransactions(c *gin.Context) {
	transactions, err := models.GetCashBankTransactionsAll(c.Request.Context(), cashBankFilterFromQuery(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": transactions})
}

func GetCashflow(c *gin.Context) {
	summary, err := models.GetCashflow(c.Request.Context(), cashBankFilterFromQuery(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

func ApproveCashBankTransaction(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	transaction, err := models.ApproveCashBankTransaction(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaksi kas disetujui", "data": transaction})
}
