package router

import (
	"playtube-go/internal/api/handler"
	"playtube-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	playlistHandler *handler.PlaylistHandler,
	tweetHandler *handler.TweetHandler,
	searchHandler *handler.SearchHandler,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.POST("/logout", authHandler.Logout)
			authRequired.GET("/me", authHandler.GetCurrent)
			authRequired.POST("/change-password", authHandler.ChangePassword)
		}
	}

	// --- 用户模块 ---
	users := v1.Group("/users")
	{
		// 公开接口，登录后附带观察者相关字段
		users.GET("/channel/:userName", middleware.OptionalAuth(), userHandler.GetChannelProfile)

		me := users.Group("/me", middleware.AuthRequired())
		{
			me.PATCH("", userHandler.UpdateAccount)
			me.PATCH("/avatar", userHandler.UpdateAvatar)
			me.PATCH("/cover-image", userHandler.UpdateCoverImage)
			me.GET("/watch-history", userHandler.ListWatchHistory)
		}
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		videos.GET("", middleware.OptionalAuth(), videoHandler.List)
		videos.GET("/search", searchHandler.SearchVideos)
		videos.GET("/:id", middleware.OptionalAuth(), videoHandler.GetDetail)
		videos.GET("/:id/comments", middleware.OptionalAuth(), commentHandler.ListByVideo)

		videosAuth := videos.Group("", middleware.AuthRequired())
		{
			videosAuth.POST("", videoHandler.Publish)
			videosAuth.PATCH("/:id", videoHandler.Update)
			videosAuth.DELETE("/:id", videoHandler.Delete)
			videosAuth.PATCH("/:id/toggle-publish", videoHandler.TogglePublish)
			videosAuth.POST("/:id/comments", commentHandler.Create)
		}
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments", middleware.AuthRequired())
	{
		comments.PATCH("/:id", commentHandler.Update)
		comments.DELETE("/:id", commentHandler.Delete)
	}

	// --- 点赞模块 ---
	likes := v1.Group("/likes", middleware.AuthRequired())
	{
		likes.POST("/toggle/video/:id", likeHandler.ToggleVideoLike)
		likes.POST("/toggle/comment/:id", likeHandler.ToggleCommentLike)
		likes.POST("/toggle/tweet/:id", likeHandler.ToggleTweetLike)
		likes.GET("/videos", likeHandler.ListLikedVideos)
	}

	// --- 订阅模块 ---
	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.GET("/channel/:channelId/subscribers", subscriptionHandler.ListSubscribers)
		subscriptions.GET("/user/:userId/channels", subscriptionHandler.ListSubscribedChannels)

		subscriptions.POST("/toggle/:channelId", middleware.AuthRequired(), subscriptionHandler.Toggle)
	}

	// --- 播放列表模块 ---
	playlists := v1.Group("/playlists")
	{
		playlists.GET("/:id", playlistHandler.GetDetail)
		playlists.GET("/user/:userId", playlistHandler.ListByOwner)

		playlistsAuth := playlists.Group("", middleware.AuthRequired())
		{
			playlistsAuth.POST("", playlistHandler.Create)
			playlistsAuth.PATCH("/:id", playlistHandler.Update)
			playlistsAuth.DELETE("/:id", playlistHandler.Delete)
			playlistsAuth.POST("/:id/videos/:videoId", playlistHandler.AddVideo)
			playlistsAuth.DELETE("/:id/videos/:videoId", playlistHandler.RemoveVideo)
		}
	}

	// --- 动态模块 ---
	tweets := v1.Group("/tweets")
	{
		tweets.GET("/user/:userId", middleware.OptionalAuth(), tweetHandler.ListByOwner)

		tweetsAuth := tweets.Group("", middleware.AuthRequired())
		{
			tweetsAuth.POST("", tweetHandler.Create)
			tweetsAuth.PATCH("/:id", tweetHandler.Update)
			tweetsAuth.DELETE("/:id", tweetHandler.Delete)
		}
	}
}
