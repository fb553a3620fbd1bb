package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/listview"
	"helpdesk-app/models"
)

var productColumns = []listview.Column{
	{ID: "product_code", Label: "Product Code", Visible: true},
	{ID: "product_name", Label: "Product Name", Visible: true},
	{ID: "category", Label: "Category", Visible: true},
	{ID: "brand", Label: "Brand", Visible: true},
	{ID: "model_number", Label: "Model", Visible: false},
	{ID: "warranty_month", Label: "Warranty (months)", Visible: true},
	{ID: "status", Label: "Status", Visible: true, Format: listview.FormatStatus},
}

func NewProductController(db *gorm.DB) *MasterController[models.Product] {
	return NewMasterController(db, MasterConfig[models.Product]{
		Screen:     "ProductMaster",
		ItemKey:    "productMaster",
		ListKey:    "productMasterList",
		Label:      "Product Master",
		FilterKeys: []string{"product_code", "product_name", "category", "brand"},
		Columns:    productColumns,
		Decode:     decodeProduct,
		ApplyUpdate: func(dst *models.Product, src models.Product) {
			dst.ProductCode = src.ProductCode
			dst.ProductName = src.ProductName
			dst.Category = src.Category
			dst.Brand = src.Brand
			dst.ModelNumber = src.ModelNumber
			dst.SerialNumber = src.SerialNumber
			dst.WarrantyMnth = src.WarrantyMnth
			dst.Description = src.Description
			dst.Status = src.Status
		},
	})
}

func decodeProduct(db *gorm.DB, ctx *fiber.Ctx) (models.Product, map[string]string, error) {
	var input struct {
		ProductCode  string `json:"product_code" validate:"required,min=3"`
		ProductName  string `json:"product_name" validate:"required,min=3"`
		Category     string `json:"category" validate:"required"`
		Brand        string `json:"brand"`
		ModelNumber  string `json:"model_number"`
		SerialNumber string `json:"serial_number"`
		WarrantyMnth int    `json:"warranty_month"`
		Description  string `json:"description"`
		Status       *bool  `json:"status"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return models.Product{}, nil, err
	}
	if fields := ValidateStruct(input); fields != nil {
		return models.Product{}, fields, nil
	}

	product := models.Product{
		ProductCode:  input.ProductCode,
		ProductName:  input.ProductName,
		Category:     input.Category,
		Brand:        input.Brand,
		ModelNumber:  input.ModelNumber,
		SerialNumber: input.SerialNumber,
		WarrantyMnth: input.WarrantyMnth,
		Description:  input.Description,
		Status:       true,
	}
	if input.Status != nil {
		product.Status = *input.Status
	}
	return product, nil, nil
}
