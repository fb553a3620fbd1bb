package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/listview"
	"helpdesk-app/models"
)

var customerColumns = []listview.Column{
	{ID: "customer_code", Label: "Customer Code", Visible: true},
	{ID: "customer_name", Label: "Customer Name", Visible: true},
	{ID: "contact_person", Label: "Contact Person", Visible: true},
	{ID: "cust_city", Label: "City", Visible: true},
	{ID: "cust_country", Label: "Country", Visible: false},
	{ID: "cust_phone", Label: "Phone", Visible: true},
	{ID: "cust_email", Label: "Email", Visible: true},
	{ID: "status", Label: "Status", Visible: true, Format: listview.FormatStatus},
}

func NewCustomerController(db *gorm.DB) *MasterController[models.Customer] {
	return NewMasterController(db, MasterConfig[models.Customer]{
		Screen:     "CustomerMaster",
		ItemKey:    "customerMaster",
		ListKey:    "customerMasterList",
		Label:      "Customer Master",
		FilterKeys: []string{"customer_code", "customer_name", "cust_city", "cust_phone"},
		Columns:    customerColumns,
		Decode:     decodeCustomer,
		ApplyUpdate: func(dst *models.Customer, src models.Customer) {
			dst.CustomerCode = src.CustomerCode
			dst.CustomerName = src.CustomerName
			dst.ContactPerson = src.ContactPerson
			dst.CustAddr1 = src.CustAddr1
			dst.CustAddr2 = src.CustAddr2
			dst.CustCity = src.CustCity
			dst.CustCountry = src.CustCountry
			dst.CustPhone = src.CustPhone
			dst.CustEmail = src.CustEmail
			dst.Status = src.Status
		},
	})
}

func decodeCustomer(db *gorm.DB, ctx *fiber.Ctx) (models.Customer, map[string]string, error) {
	var input struct {
		CustomerCode  string `json:"customer_code" validate:"required,min=3"`
		CustomerName  string `json:"customer_name" validate:"required,min=3"`
		ContactPerson string `json:"contact_person"`
		CustAddr1     string `json:"cust_addr1"`
		CustAddr2     string `json:"cust_addr2"`
		CustCity      string `json:"cust_city"`
		CustCountry   string `json:"cust_country"`
		CustPhone     string `json:"cust_phone"`
		CustEmail     string `json:"cust_email" validate:"omitempty,email"`
		Status        *bool  `json:"status"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return models.Customer{}, nil, err
	}
	if fields := ValidateStruct(input); fields != nil {
		return models.Customer{}, fields, nil
	}

	cust := models.Customer{
		CustomerCode:  input.CustomerCode,
		CustomerName:  input.CustomerName,
		ContactPerson: input.ContactPerson,
		CustAddr1:     input.CustAddr1,
		CustAddr2:     input.CustAddr2,
		CustCity:      input.CustCity,
		CustCountry:   input.CustCountry,
		CustPhone:     input.CustPhone,
		CustEmail:     input.CustEmail,
		Status:        true,
	}
	if input.Status != nil {
		cust.Status = *input.Status
	}
	return cust, nil, nil
}
