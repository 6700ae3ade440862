package dto

// RegisterRequest 注册请求（multipart/form-data，头像文件必传、封面可选）
type RegisterRequest struct {
	UserName string `form:"user_name" binding:"required,min=1,max=255"`
	Email    string `form:"email" binding:"required,email,max=255"`
	FullName string `form:"full_name" binding:"required,min=1,max=255"`
	Password string `form:"password" binding:"required,min=6,max=255"`
}

// LoginRequest 登录请求，user_name 和 email 至少填一个
type LoginRequest struct {
	UserName string `json:"user_name" binding:"omitempty,max=255"`
	Email    string `json:"email" binding:"omitempty,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// Identifier 登录标识，优先用户名
func (r *LoginRequest) Identifier() string {
	if r.UserName != "" {
		return r.UserName
	}
	return r.Email
}

// RefreshRequest 刷新令牌请求，令牌也可经 Cookie 传递
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"omitempty"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required,min=6,max=255"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=255"`
}

// TokenPair 登录/刷新成功返回的令牌对
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *UserInfo `json:"user,omitempty"`
}
