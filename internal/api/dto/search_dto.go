package dto

// SearchVideoRequest 视频搜索请求参数
type SearchVideoRequest struct {
	Q     string `form:"q" binding:"required,min=1,max=200"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}
