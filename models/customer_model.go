package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	CustomerCode  string `json:"customer_code" gorm:"unique"`
	CustomerName  string `json:"customer_name"`
	ContactPerson string `json:"contact_person"`
	CustAddr1     string `json:"cust_addr1"`
	CustAddr2     string `json:"cust_addr2"`
	CustCity      string `json:"cust_city"`
	CustCountry   string `json:"cust_country"`
	CustPhone     string `json:"cust_phone"`
	CustEmail     string `json:"cust_email"`
	Status        bool   `json:"status" gorm:"default:true"`
	CreatedBy     int    `json:"created_by"`
	UpdatedBy     int    `json:"updated_by"`
	DeletedBy     int    `json:"-"`
}
