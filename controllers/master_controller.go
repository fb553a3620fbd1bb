package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/listview"
	"helpdesk-app/logger"
)

// Auditable lets the generic handlers stamp audit fields without knowing
// the concrete entity type.
type Auditable interface {
	SetCreatedBy(userID int)
	SetUpdatedBy(userID int)
}

// MasterConfig parameterizes one master-data screen: its wire names, its
// column set, its filterable fields and its decode/apply hooks. Every
// master screen is an instance of this one component.
type MasterConfig[T any] struct {
	// Screen is the view-state key, e.g. "EmployeeMaster".
	Screen string
	// ItemKey / ListKey are the envelope data keys, e.g. "employeeMaster"
	// and "employeeMasterList".
	ItemKey string
	ListKey string
	// Label is the human name used in messages and export file names.
	Label string
	// FilterKeys are the query fields the search form may send.
	FilterKeys []string
	// Columns is the default column set of the list table.
	Columns []listview.Column
	// Decode parses and validates the request body. Field-level failures
	// come back in the map; a non-nil error means the body was unreadable.
	Decode func(db *gorm.DB, ctx *fiber.Ctx) (T, map[string]string, error)
	// ApplyUpdate copies the editable fields onto the stored record,
	// leaving keys and audit fields alone.
	ApplyUpdate func(dst *T, src T)
}

type MasterController[T any] struct {
	DB  *gorm.DB
	Cfg MasterConfig[T]
}

func NewMasterController[T any](db *gorm.DB, cfg MasterConfig[T]) *MasterController[T] {
	return &MasterController[T]{DB: db, Cfg: cfg}
}

func (c *MasterController[T]) userID(ctx *fiber.Ctx) int {
	if id, ok := ctx.Locals("userID").(float64); ok {
		return int(id)
	}
	return 0
}

// GetList serves one page of records. A failed fetch is logged and reported
// in the envelope; the screen keeps whatever it was showing.
func (c *MasterController[T]) GetList(ctx *fiber.Ctx) error {
	params := listview.ParseParams(ctx, c.Cfg.FilterKeys...)

	records := make([]T, 0, params.Limit)
	var model T
	total, err := listview.Paginate(c.DB, &model, params, &records)
	if err != nil {
		logger.Errorf("%s list fetch failed: %v", c.Cfg.Screen, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to fetch " + c.Cfg.Label))
	}

	return ctx.JSON(listview.OKList(c.Cfg.ListKey, records, total))
}

func (c *MasterController[T]) GetByID(ctx *fiber.Ctx) error {
	var record T
	if err := c.DB.First(&record, "id = ?", ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(listview.Fail(c.Cfg.Label + " not found"))
		}
		logger.Errorf("%s fetch failed: %v", c.Cfg.Screen, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to fetch " + c.Cfg.Label))
	}
	return ctx.JSON(listview.OK(c.Cfg.ItemKey, record))
}

func (c *MasterController[T]) Create(ctx *fiber.Ctx) error {
	record, fieldErrs, err := c.Cfg.Decode(c.DB, ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail(err.Error()))
	}
	if len(fieldErrs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(fieldErrs))
	}

	if a, ok := any(&record).(Auditable); ok {
		a.SetCreatedBy(c.userID(ctx))
	}

	if err := c.DB.Create(&record).Error; err != nil {
		logger.Errorf("%s create failed: %v", c.Cfg.Screen, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail(err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"isSuccess":   true,
		"message":     c.Cfg.Label + " created successfully",
		c.Cfg.ItemKey: record,
	})
}

func (c *MasterController[T]) Update(ctx *fiber.Ctx) error {
	var existing T
	if err := c.DB.First(&existing, "id = ?", ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(listview.Fail(c.Cfg.Label + " not found"))
		}
		logger.Errorf("%s fetch failed: %v", c.Cfg.Screen, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to fetch " + c.Cfg.Label))
	}

	incoming, fieldErrs, err := c.Cfg.Decode(c.DB, ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail(err.Error()))
	}
	if len(fieldErrs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(fieldErrs))
	}

	// created-by/created-date stay as first written; only updated-by moves
	c.Cfg.ApplyUpdate(&existing, incoming)
	if a, ok := any(&existing).(Auditable); ok {
		a.SetUpdatedBy(c.userID(ctx))
	}

	if err := c.DB.Save(&existing).Error; err != nil {
		logger.Errorf("%s update failed: %v", c.Cfg.Screen, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail(err.Error()))
	}

	return ctx.JSON(fiber.Map{
		"isSuccess":   true,
		"message":     c.Cfg.Label + " updated successfully",
		c.Cfg.ItemKey: existing,
	})
}

// ExportCSV writes the currently fetched page as CSV. The export reflects
// the in-memory page only, not the full filtered collection.
func (c *MasterController[T]) ExportCSV(ctx *fiber.Ctx) error {
	records, err := c.exportPage(ctx)
	if err != nil {
		logger.Errorf("%s export failed: %v", c.Cfg.Screen, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to export " + c.Cfg.Label))
	}
	return listview.WriteCSV(ctx, c.Cfg.Label+".csv", c.columnsFor(ctx), records)
}

// ExportExcel writes the currently fetched page as an .xlsx workbook.
func (c *MasterController[T]) ExportExcel(ctx *fiber.Ctx) error {
	records, err := c.exportPage(ctx)
	if err != nil {
		logger.Errorf("%s export failed: %v", c.Cfg.Screen, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to export " + c.Cfg.Label))
	}
	return listview.WriteExcel(ctx, c.Cfg.Label+".xlsx", c.columnsFor(ctx), records)
}

func (c *MasterController[T]) exportPage(ctx *fiber.Ctx) ([]T, error) {
	params := listview.ParseParams(ctx, c.Cfg.FilterKeys...)
	records := make([]T, 0, params.Limit)
	var model T
	if _, err := listview.Paginate(c.DB, &model, params, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// columnsFor honors the session's dragged column order when view state is
// available, falling back to the screen defaults.
func (c *MasterController[T]) columnsFor(ctx *fiber.Ctx) []listview.Column {
	sessionID, _ := ctx.Locals("sessionID").(string)
	if viewStates != nil && sessionID != "" {
		if st, err := viewStates.Get(sessionID, c.Cfg.Screen); err == nil {
			return st.Columns
		}
	}
	return c.Cfg.Columns
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs the shared validator and turns failures into the
// per-field message map the forms render inline.
func ValidateStruct(input interface{}) map[string]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return fields
	}
	fields["_"] = err.Error()
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
