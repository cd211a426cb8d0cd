package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/controllers"
	"github.com/amirrdn/acounting-api/middlewares"
	"github.com/amirrdn/acounting-api/models"
)

func roles(list ...models.Role) gin.HandlerFunc {
	names := make([]string, 0, len(list))
	for _, role := range list {
		names = append(names, string(role))
	}
	return middlewares.RequireRoles(names...)
}

func RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/register", roles(models.RoleAdmin), controllers.RegisterUser)
		auth.POST("/change-password", roles(), controllers.ChangePassword)
	}

	users := r.Group("/users", roles(models.RoleAdmin))
	{
		users.GET("", controllers.GetUsers)
	}

	accounts := r.Group("/accounts", roles(models.RoleAdmin, models.RoleAccounting, models.RoleFinance))
	{
		accounts.POST("", controllers.CreateAccount)
		accounts.GET("", controllers.GetAllAccounts)
		accounts.GET("/:id", controllers.GetAccountByID)
		accounts.PATCH("/:id", controllers.UpdateAccount)
		accounts.DELETE("/:id", controllers.DeleteAccount)
	}

	customers := r.Group("/customers", roles(models.RoleAdmin, models.RoleSales))
	{
		customers.POST("", controllers.CreateCustomer)
		customers.GET("", controllers.GetAllCustomers)
		customers.GET("/:id", controllers.GetCustomerByID)
		customers.PUT("/:id", controllers.UpdateCustomer)
		customers.DELETE("/:id", controllers.DeleteCustomer)
	}

	suppliers := r.Group("/suppliers", roles(models.RoleAdmin, models.RolePurchase, models.RoleFinance))
	{
		suppliers.POST("", controllers.CreateSupplier)
		suppliers.GET("", controllers.GetAllSuppliers)
		suppliers.GET("/:id", controllers.GetSupplierByID)
		suppliers.PUT("/:id", controllers.UpdateSupplier)
		suppliers.DELETE("/:id", controllers.DeleteSupplier)
	}

	products := r.Group("/products", roles(models.RoleAdmin, models.RoleInventory, models.RolePurchase))
	{
		products.POST("", controllers.CreateProduct)
		products.GET("", controllers.GetAllProducts)
		products.GET("/:id", controllers.GetProductByID)
		products.PUT("/:id", controllers.UpdateProduct)
		products.DELETE("/:id", controllers.DeleteProduct)
	}

	branches := r.Group("/branches", roles(models.RoleAdmin))
	{
		branches.POST("", controllers.CreateBranch)
		branches.GET("", controllers.GetAllBranches)
		branches.GET("/:id", controllers.GetBranchByID)
		branches.PUT("/:id", controllers.UpdateBranch)
		branches.DELETE("/:id", controllers.DeleteBranch)
	}

	departments := r.Group("/departments", roles(models.RoleAdmin))
	{
		departments.POST("", controllers.CreateDepartment)
		departments.GET("", controllers.GetAllDepartments)
		departments.GET("/:id", controllers.GetDepartmentByID)
		departments.PUT("/:id", controllers.UpdateDepartment)
		departments.DELETE("/:id", controllers.DeleteDepartment)
	}

	warehouses := r.Group("/warehouses", roles(models.RoleAdmin, models.RoleInventory))
	{
		warehouses.POST("", controllers.CreateWarehouse)
		warehouses.GET("", controllers.GetAllWarehouses)
		warehouses.GET("/:id", controllers.GetWarehouseByID)
		warehouses.PUT("/:id", controllers.UpdateWarehouse)
		warehouses.DELETE("/:id", controllers.DeleteWarehouse)
	}

	purchase := r.Group("/purchase")
	{
		requests := purchase.Group("/request", roles(models.RoleAdmin, models.RolePurchase, models.RoleManager, models.RoleFinance))
		{
			requests.POST("", controllers.CreatePurchaseRequest)
			requests.GET("", controllers.GetAllPurchaseRequests)
			requests.GET("/:id", controllers.GetPurchaseRequestByID)
			requests.PUT("/:id", controllers.UpdatePurchaseRequest)
			requests.DELETE("/:id", controllers.DeletePurchaseRequest)
			requests.POST("/:id/approve", roles(models.RoleAdmin, models.RoleManager), controllers.ApprovePurchaseRequest)
			requests.POST("/:id/reject", roles(models.RoleAdmin, models.RoleManager), controllers.RejectPurchaseRequest)
		}

		orders := purchase.Group("/orders", roles(models.RoleAdmin, models.RolePurchase, models.RoleManager, models.RoleFinance))
		{
			orders.POST("", controllers.CreatePurchaseOrder)
			orders.GET("", controllers.GetAllPurchaseOrders)
			orders.GET("/:id", controllers.GetPurchaseOrderByID)
			orders.PUT("/:id", controllers.UpdatePurchaseOrder)
			orders.DELETE("/:id", controllers.DeletePurchaseOrder)
			orders.PATCH("/:id/status", controllers.UpdatePurchaseOrderStatus)
			orders.POST("/:id/approve", roles(models.RoleAdmin, models.RoleManager, models.RoleFinance), controllers.ApprovePurchaseOrder)
			orders.POST("/:id/send", controllers.SendPurchaseOrder)
		}

		receipts := purchase.Group("/receipts", roles(models.RoleAdmin, models.RolePurchase, models.RoleManager, models.RoleFinance))
		{
			receipts.POST("", controllers.CreatePurchaseReceipt)
			receipts.GET("", controllers.GetAllPurchaseReceipts)
			receipts.GET("/:id", controllers.GetPurchaseReceiptByID)
			receipts.PUT("/:id", controllers.UpdatePurchaseReceipt)
			receipts.DELETE("/:id", controllers.DeletePurchaseReceipt)
			receipts.PATCH("/:id/status", controllers.UpdatePurchaseReceiptStatus)
		}

		invoices := purchase.Group("/invoices", roles(models.RoleAdmin, models.RoleFinance))
		{
			invoices.POST("", controllers.CreatePurchaseInvoice)
			invoices.GET("", controllers.GetAllPurchaseInvoices)
			invoices.GET("/:id", controllers.GetPurchaseInvoiceByID)
			invoices.PATCH("/:id", controllers.UpdatePurchaseInvoice)
			invoices.DELETE("/:id", controllers.DeletePurchaseInvoice)
		}

		payments := purchase.Group("/payments", roles(models.RoleAdmin, models.RolePurchase))
		{
			payments.POST("", controllers.CreatePurchasePayment)
			payments.GET("", controllers.GetAllPurchasePayments)
			payments.GET("/generate-number", controllers.GeneratePaymentNumber)
			payments.GET("/unpaid-invoices/:supplierId", controllers.GetUnpaidInvoicesBySupplier)
			payments.GET("/:id", controllers.GetPurchasePaymentByID)
			payments.DELETE("/:id", controllers.DeletePurchasePayment)
		}
	}

	cashbank := r.Group("/cashbank", roles(models.RoleAdmin, models.RoleCashier, models.RoleFinance))
	{
		cashbank.POST("/in", controllers.CashIn)
		cashbank.POST("/out", controllers.CashOut)
		cashbank.POST("/transfer", controllers.CashTransfer)
		cashbank.GET("/transactions", controllers.GetCashBankTransactions)
		cashbank.GET("/cashflow", controllers.GetCashflow)
		cashbank.POST("/approve/:id", roles(models.RoleAdmin, models.RoleFinance, models.RoleManager), controllers.ApproveCashBankTransaction)
	}

	inventory := r.Group("/inventory", roles(models.RoleAdmin, models.RoleInventory, models.RoleManager))
	{
		inventory.GET("/stocks", controllers.GetProductStocks)
		inventory.GET("/stocks/:id", controllers.GetProductStockByID)
		inventory.GET("/mutations", controllers.GetStockMovements)
	}

	transfers := r.Group("/stock-transfer", roles(models.RoleAdmin, models.RoleInventory))
	{
		transfers.POST("", controllers.CreateStockTransfer)
		transfers.GET("", controllers.GetAllStockTransfers)
		transfers.POST("/:id/approve", roles(models.RoleAdmin, models.RoleInventory, models.RoleManager), controllers.ApproveStockTransfer)
	}

	opnames := r.Group("/stock-opname", roles(models.RoleAdmin, models.RoleInventory))
	{
		opnames.POST("", controllers.CreateStockOpname)
		opnames.GET("", controllers.GetAllStockOpnames)
		opnames.POST("/:id/approve", roles(models.RoleAdmin, models.RoleInventory, models.RoleManager), controllers.ApproveStockOpname)
	}

	adjustments := r.Group("/stock-adjustment", roles(models.RoleAdmin, models.RoleInventory))
	{
		adjustments.POST("", controllers.CreateStockAdjustment)
		adjustments.GET("", controllers.GetAllStockAdjustments)
		adjustments.POST("/:id/approve", roles(models.RoleAdmin, models.RoleInventory, models.RoleManager), controllers.ApproveStockAdjustment)
	}

	stock := r.Group("/stock", roles())
	{
		stock.GET("/stock-card/:productId", controllers.GetStockCard)
	}

	budget := r.Group("/budget", roles(models.RoleAdmin, models.RoleAccounting, models.RoleFinance, models.RoleManager))
	{
		budget.POST("", controllers.CreateBudget)
		budget.GET("", controllers.GetAllBudgets)
		budget.GET("/details", controllers.GetBudgetDetails)
		budget.GET("/report/:year", controllers.ExportBudgetReport)
		budget.GET("/:id", controllers.GetBudgetByID)
		budget.GET("/:id/details", controllers.GetBudgetDetails)
		budget.PUT("/:id", controllers.UpdateBudget)
		budget.DELETE("/:id", controllers.DeleteBudget)
	}

	dashboard := r.Group("/dashboard", roles())
	{
		dashboard.GET("/stock-summary", controllers.GetStockSummary)
		dashboard.GET("/finance-summary", controllers.GetFinanceSummary)
	}
}
