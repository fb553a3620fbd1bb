package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	ProductCode  string `json:"product_code" gorm:"unique"`
	ProductName  string `json:"product_name"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
	ModelNumber  string `json:"model_number"`
	SerialNumber string `json:"serial_number"`
	WarrantyMnth int    `json:"warranty_month"`
	Description  string `json:"description"`
	Status       bool   `json:"status" gorm:"default:true"`
	CreatedBy    int    `json:"created_by"`
	UpdatedBy    int    `json:"updated_by"`
	DeletedBy    int    `json:"-"`
}
