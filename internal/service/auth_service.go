package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/model"
	"playtube-go/internal/repository"
	"playtube-go/pkg/logger"
	"playtube-go/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserExists          = errors.New("用户名或邮箱已被占用")
	ErrInvalidCredential   = errors.New("用户名或密码错误")
	ErrInvalidRefreshToken = errors.New("刷新令牌无效或已失效")
	ErrAvatarRequired      = errors.New("头像文件不能为空")
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 用户注册，头像必传、封面可选，上传后保存公开 URL
func (s *AuthService) Register(req *dto.RegisterRequest, avatarPath, coverPath string) (*dto.UserInfo, error) {
	exists, err := s.userRepo.ExistsByUserNameOrEmail(req.UserName, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	if avatarPath == "" {
		return nil, ErrAvatarRequired
	}

	avatarURL, err := uploadLocalImage("avatars", req.UserName, avatarPath)
	if err != nil {
		return nil, fmt.Errorf("上传头像失败: %w", err)
	}

	coverURL := ""
	if coverPath != "" {
		coverURL, err = uploadLocalImage("covers", req.UserName, coverPath)
		if err != nil {
			return nil, fmt.Errorf("上传封面失败: %w", err)
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserName:   req.UserName,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   hashedPassword,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		// 预检与写入之间并发注册同名用户时，由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("user_name", user.UserName),
	)

	return toUserInfo(user), nil
}

// Login 用户登录，支持用户名或邮箱，签发令牌对并持久化刷新令牌
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenPair, error) {
	user, err := s.userRepo.GetByIdentifier(req.Identifier())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	pair, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, err
	}
	pair.User = toUserInfo(user)

	return pair, nil
}

// Refresh 刷新令牌轮换：验签通过后还需与库中令牌逐字节一致，
// 一次性使用，旧令牌被新令牌整体替换
func (s *AuthService) Refresh(refreshToken string) (*dto.TokenPair, error) {
	claims, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	return s.issueTokenPair(user.ID)
}

// Logout 注销，撤销持久化的刷新令牌
func (s *AuthService) Logout(userID int64) error {
	err := s.userRepo.SetRefreshToken(userID, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// GetCurrent 获取当前登录用户信息
func (s *AuthService) GetCurrent(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// ChangePassword 修改密码，旧密码校验通过后重置
func (s *AuthService) ChangePassword(userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !utils.VerifyPassword(req.OldPassword, user.Password) {
		return ErrInvalidCredential
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	_, err = s.userRepo.Update(userID, map[string]interface{}{"password": hashed})
	return err
}

func (s *AuthService) issueTokenPair(userID int64) (*dto.TokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetRefreshToken(userID, &refreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// uploadLocalImage 上传本地图片文件到媒体 bucket，返回公开 URL。
// 变量形式，测试中可替换为假实现
var uploadLocalImage = func(prefix, owner, path string) (string, error) {
	objectName := fmt.Sprintf("%s/%s_%d%s", prefix, owner, time.Now().UnixNano(), filepath.Ext(path))
	return uploadLocalFile(objectName, path, imageContentType(path))
}
