package listview

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/config"
)

// Params carries the paging and filter state of one list fetch.
type Params struct {
	Page    int
	Limit   int
	Order   string
	Filters map[string]string
}

// ParseParams reads page/limit plus the screen's filter fields from the
// query string. Page is 1-based; anything invalid falls back to page 1
// with the configured page size.
func ParseParams(ctx *fiber.Ctx, filterKeys ...string) Params {
	page, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.Query("limit", strconv.Itoa(config.PageSize)))
	if err != nil || limit < 1 {
		limit = config.PageSize
	}

	filters := make(map[string]string)
	for _, key := range filterKeys {
		if v := ctx.Query(key); v != "" {
			filters[key] = v
		}
	}

	return Params{
		Page:    page,
		Limit:   limit,
		Order:   "created_at DESC",
		Filters: filters,
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(totalCount / limit).
func TotalPages(totalCount int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	return (totalCount + int64(limit) - 1) / int64(limit)
}

// Paginate counts the filtered set and loads one page into dest. Filters
// are matched with LIKE on their column. A page past the end yields an
// empty dest and no error.
func Paginate(db *gorm.DB, model interface{}, p Params, dest interface{}) (int64, error) {
	query := db.Model(model)
	for column, value := range p.Filters {
		query = query.Where(column+" LIKE ?", "%"+value+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}

	if err := query.Offset(p.Offset()).Limit(p.Limit).Order(p.Order).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// OK wraps a single record in the response envelope.
func OK(dataKey string, data interface{}) fiber.Map {
	return fiber.Map{"isSuccess": true, dataKey: data}
}

// OKList wraps one page of records plus the filtered total.
func OKList(dataKey string, records interface{}, totalCount int64) fiber.Map {
	return fiber.Map{"isSuccess": true, dataKey: records, "totalCount": totalCount}
}

// Message wraps a transient human-readable message, shown once by the
// screen that receives it.
func Message(message string) fiber.Map {
	return fiber.Map{"isSuccess": true, "message": message}
}

func Fail(message string) fiber.Map {
	return fiber.Map{"isSuccess": false, "message": message}
}

// FailFields reports per-field validation messages; nothing was submitted.
func FailFields(fields map[string]string) fiber.Map {
	return fiber.Map{"isSuccess": false, "message": "Validation failed", "errors": fields}
}
