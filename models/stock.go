package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type ProductStock struct {
	ID          int             `gorm:"primary_key" json:"id"`
	ProductId   int             `gorm:"uniqueIndex:idx_product_warehouse;not null" json:"product_id"`
	Product     *Product        `json:"product,omitempty"`
	WarehouseId int             `gorm:"uniqueIndex:idx_product_warehouse;not null" json:"warehouse_id"`
	Warehouse   *Warehouse      `json:"warehouse,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"quantity"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// StockMovement is the append-only mutation ledger. Quantity is signed,
// BalanceAfter is the warehouse balance after applying it.
type StockMovement struct {
	ID            int               `gorm:"primary_key" json:"id"`
	ProductId     int               `gorm:"index;not null" json:"product_id"`
	Product       *Product          `json:"product,omitempty"`
	WarehouseId   int               `gorm:"index;not null" json:"warehouse_id"`
	Warehouse     *Warehouse        `json:"warehouse,omitempty"`
	Type          StockMovementType `gorm:"size:20;not null" json:"type"`
	Quantity      decimal.Decimal   `gorm:"type:decimal(20,4);not null" json:"quantity"`
	BalanceAfter  decimal.Decimal   `gorm:"type:decimal(20,4);not null" json:"balance_after"`
	ReferenceType string            `gorm:"size:30" json:"reference_type"`
	ReferenceId   int               `json:"reference_id"`
	MovementDate  time.Time         `gorm:"not null" json:"movement_date"`
	Notes         string            `gorm:"size:255" json:"notes"`
	CreatedById   int               `json:"created_by_id"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

type StockTransfer struct {
	ID                     int                 `gorm:"primary_key" json:"id"`
	TransferNumber         string              `gorm:"size:50;uniqueIndex;not null" json:"transfer_number"`
	SourceWarehouseId      int                 `gorm:"index;not null" json:"source_warehouse_id"`
	SourceWarehouse        *Warehouse          `json:"source_warehouse,omitempty"`
	DestinationWarehouseId int                 `gorm:"index;not null" json:"destination_warehouse_id"`
	DestinationWarehouse   *Warehouse          `json:"destination_warehouse,omitempty"`
	TransferDate           time.Time           `gorm:"not null" json:"transfer_date"`
	Status                 StockDocumentStatus `gorm:"size:20;not null;default:'DRAFT'" json:"status"`
	Notes                  string              `gorm:"type:text" json:"notes"`
	CreatedById            int                 `json:"created_by_id"`
	ApprovedById           int                 `json:"approved_by_id"`
	ApprovedAt             *time.Time          `json:"approved_at"`
	Items                  []StockTransferItem `gorm:"foreignKey:StockTransferId" json:"items"`
	CreatedAt              time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

type StockTransferItem struct {
	ID              int             `gorm:"primary_key" json:"id"`
	StockTransferId int             `gorm:"index;not null" json:"stock_transfer_id"`
	ProductId       int             `gorm:"index;not null" json:"product_id"`
	Product         *Product        `json:"product,omitempty"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
}

type StockOpname struct {
	ID           int                 `gorm:"primary_key" json:"id"`
	OpnameNumber string              `gorm:"size:50;uniqueIndex;not null" json:"opname_number"`
	WarehouseId  int                 `gorm:"index;not null" json:"warehouse_id"`
	Warehouse    *Warehouse          `json:"warehouse,omitempty"`
	OpnameDate   time.Time           `gorm:"not null" json:"opname_date"`
	Status       StockDocumentStatus `gorm:"size:20;not null;default:'DRAFT'" json:"status"`
	Notes        string              `gorm:"type:text" json:"notes"`
	CreatedById  int                 `json:"created_by_id"`
	ApprovedById int                 `json:"approved_by_id"`
	ApprovedAt   *time.Time          `json:"approved_at"`
	Items        []StockOpnameItem   `gorm:"foreignKey:StockOpnameId" json:"items"`
	CreatedAt    time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

type StockOpnameItem struct {
	ID               int             `gorm:"primary_key" json:"id"`
	StockOpnameId    int             `gorm:"index;not null" json:"stock_opname_id"`
	ProductId        int             `gorm:"index;not null" json:"product_id"`
	Product          *Product        `json:"product,omitempty"`
	SystemQuantity   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"system_quantity"`
	PhysicalQuantity decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"physical_quantity"`
	Difference       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"difference"`
	Notes            string          `gorm:"size:255" json:"notes"`
}

type StockAdjustment struct {
	ID               int                 `gorm:"primary_key" json:"id"`
	AdjustmentNumber string              `gorm:"size:50;uniqueIndex;not null" json:"adjustment_number"`
	ProductId        int                 `gorm:"index;not null" json:"product_id"`
	Product          *Product            `json:"product,omitempty"`
	WarehouseId      int                 `gorm:"index;not null" json:"warehouse_id"`
	Warehouse        *Warehouse          `json:"warehouse,omitempty"`
	AdjustmentDate   time.Time           `gorm:"not null" json:"adjustment_date"`
	Quantity         decimal.Decimal     `gorm:"type:decimal(20,4);not null" json:"quantity"`
	Reason           string              `gorm:"size:255" json:"reason"`
	Status           StockDocumentStatus `gorm:"size:20;not null;default:'DRAFT'" json:"status"`
	CreatedById      int                 `json:"created_by_id"`
	ApprovedById     int                 `json:"approved_by_id"`
	ApprovedAt       *time.Time          `json:"approved_at"`
	CreatedAt        time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewStockTransfer struct {
	SourceWarehouseId      int                    `json:"source_warehouse_id" binding:"required"`
	DestinationWarehouseId int                    `json:"destination_warehouse_id" binding:"required"`
	TransferDate           time.Time              `json:"transfer_date" binding:"required"`
	Notes                  string                 `json:"notes"`
	Items                  []NewStockTransferItem `json:"items" binding:"required,dive"`
}

type NewStockTransferItem struct {
	ProductId int             `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

type NewStockOpname struct {
	WarehouseId int                  `json:"warehouse_id" binding:"required"`
	OpnameDate  time.Time            `json:"opname_date" binding:"required"`
	Notes       string               `json:"notes"`
	Items       []NewStockOpnameItem `json:"items" binding:"required,dive"`
}

type NewStockOpnameItem struct {
	ProductId        int             `json:"product_id" binding:"required"`
	PhysicalQuantity decimal.Decimal `json:"physical_quantity"`
	Notes            string          `json:"notes"`
}

type NewStockAdjustment struct {
	ProductId      int             `json:"product_id" binding:"required"`
	WarehouseId    int             `json:"warehouse_id" binding:"required"`
	AdjustmentDate time.Time       `json:"adjustment_date" binding:"required"`
	Quantity       decimal.Decimal `json:"quantity" binding:"required"`
	Reason         string          `json:"reason" binding:"required"`
}

type StockMovementFilter struct {
	ProductId   *int
	WarehouseId *int
	Type        *StockMovementType
	StartDate   *time.Time
	EndDate     *time.Time
}

// StockCardEntry is one row of the per-product mutation history, with a
// running balance.
type StockCardEntry struct {
	MovementDate  time.Time         `json:"movement_date"`
	Type          StockMovementType `json:"type"`
	ReferenceType string            `json:"reference_type"`
	ReferenceId   int               `json:"reference_id"`
	WarehouseId   int               `json:"warehouse_id"`
	In            decimal.Decimal   `json:"in"`
	Out           decimal.Decimal   `json:"out"`
	Balance       decimal.Decimal   `json:"balance"`
	Notes         string            `json:"notes"`
}

// ApplyStockMovement records one mutation and updates the warehouse balance
// inside the caller's transaction. Quantity is signed. Negative balances
// are rejected.
func ApplyStockMovement(ctx context.Context, tx *gorm.DB, movement *StockMovement) error {
	var stock ProductStock
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ? AND warehouse_id = ?", movement.ProductId, movement.WarehouseId).
		First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stock = ProductStock{
			ProductId:   movement.ProductId,
			WarehouseId: movement.WarehouseId,
			Quantity:    decimal.Zero,
		}
		if err := tx.Create(&stock).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	balance := stock.Quantity.Add(movement.Quantity)
	if balance.IsNegative() {
		return errors.New("insufficient stock")
	}
	if err := tx.Model(&stock).Update("Quantity", balance).Error; err != nil {
		return err
	}

	if userId, ok := utils.GetUserIdFromContext(ctx); ok && movement.CreatedById == 0 {
		movement.CreatedById = userId
	}
	movement.BalanceAfter = balance
	return tx.Create(movement).Error
}

func GetProductStock(ctx context.Context, id int) (*ProductStock, error) {
	return utils.FetchModel[ProductStock](ctx, id, "Product", "Warehouse")
}

func GetProductStocksAll(ctx context.Context, warehouseId *int) ([]*ProductStock, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Product").Preload("Warehouse")
	if warehouseId != nil {
		dbCtx = dbCtx.Where("warehouse_id = ?", *warehouseId)
	}
	var results []*ProductStock
	if err := dbCtx.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func GetStockMovementsAll(ctx context.Context, filter StockMovementFilter) ([]*StockMovement, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Product").Preload("Warehouse")
	if filter.ProductId != nil {
		dbCtx = dbCtx.Where("product_id = ?", *filter.ProductId)
	}
	if filter.WarehouseId != nil {
		dbCtx = dbCtx.Where("warehouse_id = ?", *filter.WarehouseId)
	}
	if filter.Type != nil {
		dbCtx = dbCtx.Where("type = ?", *filter.Type)
	}
	if filter.StartDate != nil {
		dbCtx = dbCtx.Where("movement_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		dbCtx = dbCtx.Where("movement_date <= ?", *filter.EndDate)
	}

	var results []*StockMovement
	if err := dbCtx.Order("movement_date DESC, id DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetStockCard rebuilds the running balance from the oldest movement up.
func GetStockCard(ctx context.Context, productId int, warehouseId *int) ([]StockCardEntry, error) {
	if err := utils.ValidateResourceId[Product](ctx, productId); err != nil {
		return nil, errors.New("product not found")
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("product_id = ?", productId)
	if warehouseId != nil {
		dbCtx = dbCtx.Where("warehouse_id = ?", *warehouseId)
	}
	var movements []StockMovement
	if err := dbCtx.Order("movement_date ASC, id ASC").Find(&movements).Error; err != nil {
		return nil, err
	}

	entries := make([]StockCardEntry, 0, len(movements))
	balance := decimal.Zero
	for _, movement := range movements {
		entry := StockCardEntry{
			MovementDate:  movement.MovementDate,
			Type:          movement.Type,
			ReferenceType: movement.ReferenceType,
			ReferenceId:   movement.ReferenceId,
			WarehouseId:   movement.WarehouseId,
			Notes:         movement.Notes,
		}
		if movement.Quantity.IsNegative() {
			entry.Out = movement.Quantity.Neg()
		} else {
			entry.In = movement.Quantity
		}
		balance = balance.Add(movement.Quantity)
		entry.Balance = balance
		entries = append(entries, entry)
	}
	return entries, nil
}

func (input *NewStockTransfer) validate(ctx context.Context) error {
	if len(input.Items) == 0 {
		return errors.New("at least one item is required")
	}
	if input.SourceWarehouseId == input.DestinationWarehouseId {
		return errors.New("destination warehouse must differ from source warehouse")
	}
	if err := utils.ValidateResourceId[Warehouse](ctx, input.SourceWarehouseId); err != nil {
		return errors.New("source warehouse not found")
	}
	if err := utils.ValidateResourceId[Warehouse](ctx, input.DestinationWarehouseId); err != nil {
		return errors.New("destination warehouse not found")
	}
	productIds := make([]int, 0, len(input.Items))
	for _, item := range input.Items {
		if !item.Quantity.IsPositive() {
			return errors.New("item quantity must be positive")
		}
		productIds = append(productIds, item.ProductId)
	}
	return utils.ValidateResourcesId[Product](ctx, productIds)
}

func CreateStockTransfer(ctx context.Context, input *NewStockTransfer) (*StockTransfer, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	transfer := StockTransfer{
		SourceWarehouseId:      input.SourceWarehouseId,
		DestinationWarehouseId: input.DestinationWarehouseId,
		TransferDate:           input.TransferDate,
		Status:                 StockDocumentStatusDraft,
		Notes:                  input.Notes,
		CreatedById:            userId,
	}
	for _, item := range input.Items {
		transfer.Items = append(transfer.Items, StockTransferItem{
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
		})
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := NextDocumentNumber(tx, SeriesModuleStockTransfer)
		if err != nil {
			return err
		}
		transfer.TransferNumber = number
		return tx.Create(&transfer).Error
	})
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// ApproveStockTransfer posts the paired out/in movements. Source stock must
// cover every line or the whole transfer rolls back.
func ApproveStockTransfer(ctx context.Context, id int) (*StockTransfer, error) {
	transfer, err := utils.FetchModel[StockTransfer](ctx, id, "Items")
	if err != nil {
		return nil, err
	}
	if transfer.Status != StockDocumentStatusDraft {
		return nil, errors.New("transfer is already approved")
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	now := time.Now()
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range transfer.Items {
			out := StockMovement{
				ProductId:     item.ProductId,
				WarehouseId:   transfer.SourceWarehouseId,
				Type:          StockMovementTypeTransferOut,
				Quantity:      item.Quantity.Neg(),
				ReferenceType: "STOCK_TRANSFER",
				ReferenceId:   transfer.ID,
				MovementDate:  transfer.TransferDate,
			}
			if err := ApplyStockMovement(ctx, tx, &out); err != nil {
				return err
			}
			in := StockMovement{
				ProductId:     item.ProductId,
				WarehouseId:   transfer.DestinationWarehouseId,
				Type:          StockMovementTypeTransferIn,
				Quantity:      item.Quantity,
				ReferenceType: "STOCK_TRANSFER",
				ReferenceId:   transfer.ID,
				MovementDate:  transfer.TransferDate,
			}
			if err := ApplyStockMovement(ctx, tx, &in); err != nil {
				return err
			}
		}
		return tx.Model(transfer).Updates(map[string]interface{}{
			"Status":       StockDocumentStatusApproved,
			"ApprovedById": userId,
			"ApprovedAt":   &now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

func GetStockTransfersAll(ctx context.Context) ([]*StockTransfer, error) {
	db := config.GetDB()
	var results []*StockTransfer
	err := db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Preload("SourceWarehouse").Preload("DestinationWarehouse").
		Order("transfer_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (input *NewStockOpname) validate(ctx context.Context) error {
	if len(input.Items) == 0 {
		return errors.New("at least one item is required")
	}
	if err := utils.ValidateResourceId[Warehouse](ctx, input.WarehouseId); err != nil {
		return errors.New("warehouse not found")
	}
	productIds := make([]int, 0, len(input.Items))
	for _, item := range input.Items {
		if item.PhysicalQuantity.IsNegative() {
			return errors.New("physical quantity cannot be negative")
		}
		productIds = append(productIds, item.ProductId)
	}
	return utils.ValidateResourcesId[Product](ctx, productIds)
}

// CreateStockOpname snapshots the system quantity per line at entry time
// so the difference is fixed when the count is taken, not when approved.
func CreateStockOpname(ctx context.Context, input *NewStockOpname) (*StockOpname, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	db := config.GetDB()
	userId, _ := utils.GetUserIdFromContext(ctx)
	opname := StockOpname{
		WarehouseId: input.WarehouseId,
		OpnameDate:  input.OpnameDate,
		Status:      StockDocumentStatusDraft,
		Notes:       input.Notes,
		CreatedById: userId,
	}
	for _, item := range input.Items {
		var stock ProductStock
		systemQuantity := decimal.Zero
		err := db.WithContext(ctx).
			Where("product_id = ? AND warehouse_id = ?", item.ProductId, input.WarehouseId).
			First(&stock).Error
		if err == nil {
			systemQuantity = stock.Quantity
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		opname.Items = append(opname.Items, StockOpnameItem{
			ProductId:        item.ProductId,
			SystemQuantity:   systemQuantity,
			PhysicalQuantity: item.PhysicalQuantity,
			Difference:       item.PhysicalQuantity.Sub(systemQuantity),
			Notes:            item.Notes,
		})
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := NextDocumentNumber(tx, SeriesModuleStockOpname)
		if err != nil {
			return err
		}
		opname.OpnameNumber = number
		return tx.Create(&opname).Error
	})
	if err != nil {
		return nil, err
	}
	return &opname, nil
}

func ApproveStockOpname(ctx context.Context, id int) (*StockOpname, error) {
	opname, err := utils.FetchModel[StockOpname](ctx, id, "Items")
	if err != nil {
		return nil, err
	}
	if opname.Status != StockDocumentStatusDraft {
		return nil, errors.New("opname is already approved")
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	now := time.Now()
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range opname.Items {
			if item.Difference.IsZero() {
				continue
			}
			movement := StockMovement{
				ProductId:     item.ProductId,
				WarehouseId:   opname.WarehouseId,
				Type:          StockMovementTypeOpname,
				Quantity:      item.Difference,
				ReferenceType: "STOCK_OPNAME",
				ReferenceId:   opname.ID,
				MovementDate:  opname.OpnameDate,
			}
			if err := ApplyStockMovement(ctx, tx, &movement); err != nil {
				return err
			}
		}
		return tx.Model(opname).Updates(map[string]interface{}{
			"Status":       StockDocumentStatusApproved,
			"ApprovedById": userId,
			"ApprovedAt":   &now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return opname, nil
}

func GetStockOpnamesAll(ctx context.Context) ([]*StockOpname, error) {
	db := config.GetDB()
	var results []*StockOpname
	err := db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Preload("Warehouse").
		Order("opname_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (input *NewStockAdjustment) validate(ctx context.Context) error {
	if input.Quantity.IsZero() {
		return errors.New("quantity cannot be zero")
	}
	if err := utils.ValidateResourceId[Product](ctx, input.ProductId); err != nil {
		return errors.New("product not found")
	}
	if err := utils.ValidateResourceId[Warehouse](ctx, input.WarehouseId); err != nil {
		return errors.New("warehouse not found")
	}
	return nil
}

func CreateStockAdjustment(ctx context.Context, input *NewStockAdjustment) (*StockAdjustment, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	adjustment := StockAdjustment{
		ProductId:      input.ProductId,
		WarehouseId:    input.WarehouseId,
		AdjustmentDate: input.AdjustmentDate,
		Quantity:       input.Quantity,
		Reason:         input.Reason,
		Status:         StockDocumentStatusDraft,
		CreatedById:    userId,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := NextDocumentNumber(tx, SeriesModuleStockAdjustment)
		if err != nil {
			return err
		}
		adjustment.AdjustmentNumber = number
		return tx.Create(&adjustment).Error
	})
	if err != nil {
		return nil, err
	}
	return &adjustment, nil
}

func ApproveStockAdjustment(ctx context.Context, id int) (*StockAdjustment, error) {
	adjustment, err := utils.FetchModel[StockAdjustment](ctx, id)
	if err != nil {
		return nil, err
	}
	if adjustment.Status != StockDocumentStatusDraft {
		return nil, errors.New("adjustment is already approved")
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	now := time.Now()
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		movement := StockMovement{
			ProductId:     adjustment.ProductId,
			WarehouseId:   adjustment.WarehouseId,
			Type:          StockMovementTypeAdjustment,
			Quantity:      adjustment.Quantity,
			ReferenceType: "STOCK_ADJUSTMENT",
			ReferenceId:   adjustment.ID,
			MovementDate:  adjustment.AdjustmentDate,
			Notes:         adjustment.Reason,
		}
		if err := ApplyStockMovement(ctx, tx, &movement); err != nil {
			return err
		}
		return tx.Model(adjustment).Updates(map[string]interface{}{
			"Status":       StockDocumentStatusApproved,
			"ApprovedById": userId,
			"ApprovedAt":   &now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return adjustment, nil
}

func GetStockAdjustmentsAll(ctx context.Context) ([]*StockAdjustment, error) {
	db := config.GetDB()
	var results []*StockAdjustment
	err := db.WithContext(ctx).
		Preload("Product").Preload("Warehouse").
		Order("adjustment_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
