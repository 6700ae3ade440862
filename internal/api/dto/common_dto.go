package dto

// PageQuery 分页查询参数
type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Normalize 填充分页默认值
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}
}

// Skip 计算 OFFSET
func (q *PageQuery) Skip() int {
	return (q.Page - 1) * q.Limit
}

// PageMeta 分页元信息
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewPageMeta 根据总数和分页参数计算元信息
func NewPageMeta(total int64, page, limit int) PageMeta {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return PageMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    int64(page)*int64(limit) < total,
		HasPrev:    page > 1,
	}
}

// PageData 分页响应数据
type PageData struct {
	Items interface{} `json:"items"`
	PageMeta
}

// NewPageData 组装分页响应
func NewPageData(items interface{}, total int64, page, limit int) *PageData {
	return &PageData{
		Items:    items,
		PageMeta: NewPageMeta(total, page, limit),
	}
}
