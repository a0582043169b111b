package pagination

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Page   int
	Limit  int
	Offset int
	Total  int64
}

// ParseFromRequest reads page and limit from the query string. Invalid
// values fall back to page 1 and defaultLimit; limit is capped at maxLimit.
func ParseFromRequest(c *fiber.Ctx, defaultLimit, maxLimit int) Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	// Keeps (page-1)*limit from overflowing.
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Window returns the [start, end) bounds of the current page over total items.
func (p *Pagination) Window(total int) (int, int) {
	p.Total = int64(total)
	start := p.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total || end < start {
		end = total
	}
	return start, end
}

// Meta describes the page for the response body.
func Meta(p Pagination) fiber.Map {
	totalPages := p.Total / int64(p.Limit)
	if p.Total%int64(p.Limit) > 0 {
		totalPages++
	}

	return fiber.Map{
		"current_page": p.Page,
		"per_page":     p.Limit,
		"total_items":  p.Total,
		"total_pages":  totalPages,
	}
}
