package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/listview"
	"helpdesk-app/models"
)

var sparePartColumns = []listview.Column{
	{ID: "part_code", Label: "Part Code", Visible: true},
	{ID: "part_name", Label: "Part Name", Visible: true},
	{ID: "product_code", Label: "Product", Visible: true},
	{ID: "unit_price", Label: "Unit Price", Visible: true},
	{ID: "stock_qty", Label: "Stock", Visible: true},
	{ID: "min_stock_qty", Label: "Min Stock", Visible: false},
	{ID: "status", Label: "Status", Visible: true, Format: listview.FormatStatus},
}

func NewSparePartController(db *gorm.DB) *MasterController[models.SparePart] {
	return NewMasterController(db, MasterConfig[models.SparePart]{
		Screen:     "SparePartMaster",
		ItemKey:    "sparePartMaster",
		ListKey:    "sparePartMasterList",
		Label:      "Spare Part Master",
		FilterKeys: []string{"part_code", "part_name", "product_code"},
		Columns:    sparePartColumns,
		Decode:     decodeSparePart,
		ApplyUpdate: func(dst *models.SparePart, src models.SparePart) {
			dst.PartCode = src.PartCode
			dst.PartName = src.PartName
			dst.ProductCode = src.ProductCode
			dst.UnitPrice = src.UnitPrice
			dst.StockQty = src.StockQty
			dst.MinStockQty = src.MinStockQty
			dst.Description = src.Description
			dst.Status = src.Status
		},
	})
}

func decodeSparePart(db *gorm.DB, ctx *fiber.Ctx) (models.SparePart, map[string]string, error) {
	var input struct {
		PartCode    string  `json:"part_code" validate:"required,min=3"`
		PartName    string  `json:"part_name" validate:"required,min=3"`
		ProductCode string  `json:"product_code" validate:"required"`
		UnitPrice   float64 `json:"unit_price"`
		StockQty    int     `json:"stock_qty"`
		MinStockQty int     `json:"min_stock_qty"`
		Description string  `json:"description"`
		Status      *bool   `json:"status"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return models.SparePart{}, nil, err
	}
	if fields := ValidateStruct(input); fields != nil {
		return models.SparePart{}, fields, nil
	}

	var product models.Product
	if err := db.Where("product_code = ?", input.ProductCode).First(&product).Error; err != nil {
		return models.SparePart{}, map[string]string{"product_code": "product does not exist"}, nil
	}

	part := models.SparePart{
		PartCode:    input.PartCode,
		PartName:    input.PartName,
		ProductCode: input.ProductCode,
		UnitPrice:   input.UnitPrice,
		StockQty:    input.StockQty,
		MinStockQty: input.MinStockQty,
		Description: input.Description,
		Status:      true,
	}
	if input.Status != nil {
		part.Status = *input.Status
	}
	return part, nil, nil
}
