package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type PurchaseRequest struct {
	ID            int                   `gorm:"primary_key" json:"id"`
	RequestNumber string                `gorm:"size:50;uniqueIndex;not null" json:"request_number"`
	RequestDate   time.Time             `gorm:"not null" json:"request_date"`
	Department    string                `gorm:"size:100" json:"department"`
	BranchId      int                   `gorm:"index;not null" json:"branch_id"`
	Branch        *Branch               `json:"branch,omitempty"`
	WarehouseId   int                   `gorm:"index;not null" json:"warehouse_id"`
	Warehouse     *Warehouse            `json:"warehouse,omitempty"`
	Status        PurchaseRequestStatus `gorm:"type:enum('DRAFT','PENDING','APPROVED','REJECTED');not null;default:'DRAFT'" json:"status"`
	Notes         string                `gorm:"type:text" json:"notes"`
	RequestedById int                   `gorm:"index" json:"requested_by_id"`
	RequestedBy   *User                 `gorm:"foreignKey:RequestedById" json:"requested_by,omitempty"`

	// approval / rejection trail
	ApprovalNotes   string           `gorm:"type:text" json:"approval_notes"`
	ApprovalDate    *time.Time       `json:"approval_date"`
	ApprovedById    int              `json:"approved_by_id"`
	BudgetCheck     CheckResult      `gorm:"size:10" json:"budget_check"`
	StockCheck      CheckResult      `gorm:"size:10" json:"stock_check"`
	SupplierCheck   CheckResult      `gorm:"size:10" json:"supplier_check"`
	RejectionNotes  string           `gorm:"type:text" json:"rejection_notes"`
	RejectionDate   *time.Time       `json:"rejection_date"`
	RejectionReason *RejectionReason `gorm:"size:30" json:"rejection_reason"`

	Items     []PurchaseRequestItem `gorm:"foreignKey:PurchaseRequestId" json:"items"`
	CreatedAt time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

type PurchaseRequestItem struct {
	ID                int             `gorm:"primary_key" json:"id"`
	PurchaseRequestId int             `gorm:"index;not null" json:"purchase_request_id"`
	ProductId         int             `gorm:"index;not null" json:"product_id"`
	Product           *Product        `json:"product,omitempty"`
	Quantity          decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	Unit              string          `gorm:"size:20" json:"unit"`
	Notes             string          `gorm:"size:255" json:"notes"`
}

type NewPurchaseRequest struct {
	RequestDate time.Time                `json:"request_date" binding:"required"`
	Department  string                   `json:"department"`
	BranchId    int                      `json:"branch_id" binding:"required"`
	WarehouseId int                      `json:"warehouse_id" binding:"required"`
	Status      PurchaseRequestStatus    `json:"status"`
	Notes       string                   `json:"notes"`
	Items       []NewPurchaseRequestItem `json:"items" binding:"required,dive"`
}

type NewPurchaseRequestItem struct {
	ProductId int             `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Unit      string          `json:"unit"`
	Notes     string          `json:"notes"`
}

// ApprovePurchaseRequestInput carries the manager's checklist. All three
// checks are mandatory; the product list overwrites the requested quantities.
type ApprovePurchaseRequestInput struct {
	ApprovalNotes string                 `json:"approvalNotes" binding:"required"`
	ApprovalDate  time.Time              `json:"approvalDate" binding:"required"`
	BudgetCheck   CheckResult            `json:"budgetCheck" binding:"required"`
	StockCheck    CheckResult            `json:"stockCheck" binding:"required"`
	SupplierCheck CheckResult            `json:"supplierCheck" binding:"required"`
	Products      []ApprovedProductInput `json:"products" binding:"required,dive"`
}

type ApprovedProductInput struct {
	ID       int             `json:"id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

type RejectPurchaseRequestInput struct {
	RejectionNotes  string          `json:"rejectionNotes" binding:"required"`
	RejectionDate   time.Time       `json:"rejectionDate" binding:"required"`
	RejectionReason RejectionReason `json:"rejectionReason" binding:"required"`
}

func (input *NewPurchaseRequest) validate(ctx context.Context) error {
	if len(input.Items) == 0 {
		return errors.New("at least one item is required")
	}
	if err := utils.ValidateResourceId[Branch](ctx, input.BranchId); err != nil {
		return errors.New("branch not found")
	}
	if err := utils.ValidateResourceId[Warehouse](ctx, input.WarehouseId); err != nil {
		return errors.New("warehouse not found")
	}
	productIds := make([]int, 0, len(input.Items))
	for _, item := range input.Items {
		if !item.Quantity.IsPositive() {
			return errors.New("item quantity must be positive")
		}
		productIds = append(productIds, item.ProductId)
	}
	if err := utils.ValidateResourcesId[Product](ctx, productIds); err != nil {
		return errors.New("product not found")
	}
	return nil
}

func mapPurchaseRequestItems(input []NewPurchaseRequestItem) []PurchaseRequestItem {
	items := make([]PurchaseRequestItem, 0, len(input))
	for _, item := range input {
		items = append(items, PurchaseRequestItem{
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Notes:     item.Notes,
		})
	}
	return items
}

func CreatePurchaseRequest(ctx context.Context, input *NewPurchaseRequest) (*PurchaseRequest, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = PurchaseRequestStatusDraft
	}
	if status != PurchaseRequestStatusDraft && status != PurchaseRequestStatusPending {
		return nil, utils.ErrorInvalidTransition
	}

	userId, _ := utils.GetUserIdFromContext(ctx)

	request := PurchaseRequest{
		RequestDate:   input.RequestDate,
		Department:    input.Department,
		BranchId:      input.BranchId,
		WarehouseId:   input.WarehouseId,
		Status:        status,
		Notes:         input.Notes,
		RequestedById: userId,
		Items:         mapPurchaseRequestItems(input.Items),
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := NextDocumentNumber(tx, SeriesModulePurchaseRequest)
		if err != nil {
			return err
		}
		request.RequestNumber = number
		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func UpdatePurchaseRequest(ctx context.Context, id int, input *NewPurchaseRequest) (*PurchaseRequest, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	request, err := utils.FetchModel[PurchaseRequest](ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != PurchaseRequestStatusDraft && request.Status != PurchaseRequestStatusPending {
		return nil, errors.New("only draft or pending requests can be edited")
	}
	if input.Status != "" && input.Status != request.Status && !request.Status.CanTransition(input.Status) {
		return nil, utils.ErrorInvalidTransition
	}

	items := mapPurchaseRequestItems(input.Items)

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"RequestDate": input.RequestDate,
			"Department":  input.Department,
			"BranchId":    input.BranchId,
			"WarehouseId": input.WarehouseId,
			"Notes":       input.Notes,
		}
		if input.Status != "" {
			updates["Status"] = input.Status
		}
		if err := tx.Model(request).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("purchase_request_id = ?", request.ID).Delete(&PurchaseRequestItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseRequestId = request.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return GetPurchaseRequest(ctx, id)
}

func DeletePurchaseRequest(ctx context.Context, id int) (*PurchaseRequest, error) {
	request, err := utils.FetchModel[PurchaseRequest](ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status == PurchaseRequestStatusApproved {
		// an approved request may already be referenced by an order
		var count int64
		db := config.GetDB()
		if err := db.WithContext(ctx).Model(&PurchaseOrder{}).Where("purchase_request_id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("request is referenced by a purchase order")
		}
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_request_id = ?", id).Delete(&PurchaseRequestItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&request).Error
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func GetPurchaseRequest(ctx context.Context, id int) (*PurchaseRequest, error) {
	return utils.FetchModel[PurchaseRequest](ctx, id, "Items", "Items.Product", "Branch", "Warehouse", "RequestedBy")
}

func GetPurchaseRequestsAll(ctx context.Context) ([]*PurchaseRequest, error) {
	db := config.GetDB()
	var results []*PurchaseRequest
	err := db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Preload("Branch").Preload("Warehouse").Preload("RequestedBy").
		Order("request_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		if r.RequestedBy != nil {
			r.RequestedBy.PrepareGive()
		}
	}
	return results, nil
}

// ApprovePurchaseRequest moves a PENDING request to APPROVED and stores the
// checklist. Approved quantities overwrite the requested ones.
func ApprovePurchaseRequest(ctx context.Context, id int, input *ApprovePurchaseRequestInput) (*PurchaseRequest, error) {
	request, err := utils.FetchModel[PurchaseRequest](ctx, id, "Items")
	if err != nil {
		return nil, err
	}
	if !request.Status.CanTransition(PurchaseRequestStatusApproved) {
		return nil, utils.ErrorInvalidTransition
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	approvalDate := input.ApprovalDate

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(request).Updates(map[string]interface{}{
			"Status":        PurchaseRequestStatusApproved,
			"ApprovalNotes": input.ApprovalNotes,
			"ApprovalDate":  &approvalDate,
			"ApprovedById":  userId,
			"BudgetCheck":   input.BudgetCheck,
			"StockCheck":    input.StockCheck,
			"SupplierCheck": input.SupplierCheck,
		}).Error; err != nil {
			return err
		}
		for _, p := range input.Products {
			if !p.Quantity.IsPositive() {
				return errors.New("approved quantity must be positive")
			}
			if err := tx.Model(&PurchaseRequestItem{}).
				Where("purchase_request_id = ? AND product_id = ?", request.ID, p.ID).
				Update("quantity", p.Quantity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetPurchaseRequest(ctx, id)
}

func RejectPurchaseRequest(ctx context.Context, id int, input *RejectPurchaseRequestInput) (*PurchaseRequest, error) {
	request, err := utils.FetchModel[PurchaseRequest](ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.Status.CanTransition(PurchaseRequestStatusRejected) {
		return nil, utils.ErrorInvalidTransition
	}

	rejectionDate := input.RejectionDate
	reason := input.RejectionReason

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(request).Updates(map[string]interface{}{
		"Status":          PurchaseRequestStatusRejected,
		"RejectionNotes":  input.RejectionNotes,
		"RejectionDate":   &rejectionDate,
		"RejectionReason": &reason,
	}).Error; err != nil {
		return nil, err
	}

	return GetPurchaseRequest(ctx, id)
}
