package api

import (
	"Stride/internal/api/middleware"
	"Stride/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/:user_id", group.UserHandler.GetUser)
			userGroup.GET("/:user_id/followers", group.UserFollowHandler.GetFollowers)
			userGroup.GET("/:user_id/following", group.UserFollowHandler.GetFollowing)
			userGroup.GET("/:user_id/follow-stats", group.UserFollowHandler.GetFollowStats)
			userGroup.GET("/:user_id/activity", group.ActivityHandler.GetHistory)
			userGroup.GET("/:user_id/ranking", group.ActivityHandler.GetRanking)
			userGroup.GET("/search", group.SearchHandler.SearchUsers)

			authed := userGroup.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.GET("/me", group.UserHandler.GetMe)
				authed.PUT("/me", group.UserHandler.UpdateMe)
			}

			postsGroup := userGroup.Group("")
			postsGroup.Use(middleware.OptionalAuthMiddleware())
			{
				postsGroup.GET("/:user_id/posts", group.PostHandler.GetUserPosts)
			}
		}

		profileGroup := apiGroup.Group("/profiles")
		profileGroup.Use(middleware.AuthMiddleware())
		{
			profileGroup.POST("/individual", group.ProfileHandler.CreateIndividualProfile)
			profileGroup.PUT("/individual", group.ProfileHandler.UpdateIndividualProfile)
			profileGroup.POST("/gym", group.ProfileHandler.CreateGymProfile)
			profileGroup.PUT("/gym", group.ProfileHandler.UpdateGymProfile)
			profileGroup.POST("/brand", group.ProfileHandler.CreateBrandProfile)
			profileGroup.PUT("/brand", group.ProfileHandler.UpdateBrandProfile)
		}

		followGroup := apiGroup.Group("/follows")
		followGroup.Use(middleware.AuthMiddleware())
		{
			followGroup.POST("/:following_id", group.UserFollowHandler.Follow)
			followGroup.DELETE("/:following_id", group.UserFollowHandler.Unfollow)
			followGroup.GET("/:following_id", group.UserFollowHandler.IsFollowing)
			followGroup.POST("/recount", group.UserFollowHandler.Recount)
		}

		activityGroup := apiGroup.Group("/activity")
		{
			activityGroup.GET("/leaderboard", group.ActivityHandler.GetLeaderboard)

			authed := activityGroup.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.POST("", group.ActivityHandler.RecordActivity)
			}
		}

		trainingGroup := apiGroup.Group("/training-requests")
		trainingGroup.Use(middleware.AuthMiddleware())
		{
			trainingGroup.POST("", group.TrainingHandler.CreateRequest)
			trainingGroup.PUT("/:request_id", group.TrainingHandler.DecideRequest)
			trainingGroup.GET("/incoming", group.TrainingHandler.GetIncoming)
			trainingGroup.GET("/outgoing", group.TrainingHandler.GetOutgoing)
		}

		postGroup := apiGroup.Group("/posts")
		{
			optGroup := postGroup.Group("")
			optGroup.Use(middleware.OptionalAuthMiddleware())
			{
				optGroup.GET("/feed/public", group.PostHandler.GetPublicFeed)
				optGroup.GET("/:post_id", group.PostHandler.GetPost)
				optGroup.GET("/:post_id/comments", group.PostActionHandler.GetComments)
			}

			authed := postGroup.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.POST("", group.PostHandler.CreatePost)
				authed.GET("/feed", group.PostHandler.GetFeed)
				authed.PUT("/:post_id", group.PostHandler.UpdatePost)
				authed.DELETE("/:post_id", group.PostHandler.DeletePost)
				authed.POST("/:post_id/like", group.PostActionHandler.ToggleLike)
				authed.POST("/:post_id/comments", group.PostActionHandler.AddComment)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.DELETE("/:comment_id", group.PostActionHandler.DeleteComment)
		}

		imGroup := apiGroup.Group("/im")
		imGroup.Use(middleware.AuthMiddleware())
		{
			imGroup.POST("/messages", group.IMHandler.SendMessage)
			imGroup.GET("/conversations", group.IMHandler.GetConversations)
			imGroup.GET("/conversations/:conversation_id/history", group.IMHandler.GetHistory)
			imGroup.GET("/conversations/:conversation_id/new", group.IMHandler.GetNewMessages)
			imGroup.PUT("/conversations/:conversation_id/read", group.IMHandler.MarkRead)
		}
	}

	return r
}
