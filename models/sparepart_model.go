package models

import "gorm.io/gorm"

type SparePart struct {
	gorm.Model
	PartCode    string  `json:"part_code" gorm:"unique"`
	PartName    string  `json:"part_name"`
	ProductCode string  `json:"product_code"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:decimal(12,2);default:0"`
	StockQty    int     `json:"stock_qty" gorm:"default:0"`
	MinStockQty int     `json:"min_stock_qty" gorm:"default:0"`
	Description string  `json:"description"`
	Status      bool    `json:"status" gorm:"default:true"`
	CreatedBy   int     `json:"created_by"`
	UpdatedBy   int     `json:"updated_by"`
	DeletedBy   int     `json:"-"`
}
