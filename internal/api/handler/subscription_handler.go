package handler

import (
	"errors"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/api/middleware"
	"playtube-go/internal/api/response"
	"playtube-go/internal/service"
	"playtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subService *service.SubscriptionService
}

func NewSubscriptionHandler(subService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService}
}

// Toggle POST /api/v1/subscriptions/toggle/:channelId
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	channelID, ok := parseIDParam(c, "channelId", "无效的频道ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	subscribed, err := h.subService.Toggle(currentUserID, channelID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "切换订阅成功", dto.SubscriptionToggleData{Subscribed: subscribed})
}

// ListSubscribers GET /api/v1/subscriptions/channel/:channelId/subscribers
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	channelID, ok := parseIDParam(c, "channelId", "无效的频道ID")
	if !ok {
		return
	}

	data, err := h.subService.ListSubscribers(channelID, parsePageQuery(c))
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "获取订阅者列表成功", data)
}

// ListSubscribedChannels GET /api/v1/subscriptions/user/:userId/channels
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "无效的用户ID")
	if !ok {
		return
	}

	data, err := h.subService.ListSubscribedChannels(userID, parsePageQuery(c))
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "获取订阅频道列表成功", data)
}

func handleSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCannotSubscribeSelf):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrChannelNotFound), errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Subscription operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
