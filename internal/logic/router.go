package logic

import (
	"liiuxue-backend/internal/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter 路由入口
func SetupRouter() *gin.Engine {
	r := gin.Default()

	// 允许跨域请求（前端为独立的Vite应用）
	r.Use(cors.Default())

	// 上传的图片直接静态托管
	r.Static(common.UploadURLPrefix, common.UploadDir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to Liiuxue API"})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 用户相关接口
	r.POST("/api/register", RegisterHandler)
	r.POST("/api/login", LoginHandler)
	r.PUT("/api/users/:id/password", ChangePasswordHandler)
	r.GET("/api/users", GetUsersHandler)
	r.GET("/api/users/:id", GetUserHandler)
	r.PUT("/api/users/:id", UpdateUserHandler)
	r.DELETE("/api/users/:id", DeleteUserHandler)

	// 新闻相关接口
	r.GET("/api/news", GetNewsListHandler)
	r.GET("/api/news/:id", GetNewsDetailHandler)
	r.POST("/api/news", CreateNewsHandler)
	r.PUT("/api/news/:id", UpdateNewsHandler)
	r.DELETE("/api/news/:id", DeleteNewsHandler)

	// 政策相关接口
	r.GET("/api/policies", GetPolicyListHandler)
	r.GET("/api/policies/:id", GetPolicyDetailHandler)
	r.POST("/api/policies", CreatePolicyHandler)
	r.PUT("/api/policies/:id", UpdatePolicyHandler)
	r.DELETE("/api/policies/:id", DeletePolicyHandler)

	// 搜索
	r.GET("/api/search", SearchHandler)

	// 图片上传
	r.POST("/api/upload-image", UploadImageHandler)

	// 可视化类型
	r.GET("/api/visualization-types", GetVizTypesHandler)
	r.POST("/api/visualization-types", CreateVizTypeHandler)
	r.PUT("/api/visualization-types/:id", UpdateVizTypeHandler)
	r.DELETE("/api/visualization-types/:id", DeleteVizTypeHandler)

	// 可视化图表
	r.GET("/api/visualizations", GetVisualizationsHandler)
	r.GET("/api/visualizations/:id", GetVisualizationHandler)
	r.POST("/api/visualizations", CreateVisualizationHandler)
	r.PUT("/api/visualizations/:id", UpdateVisualizationHandler)
	r.DELETE("/api/visualizations/:id", DeleteVisualizationHandler)

	// 政策主题（写操作仅管理员）
	r.GET("/api/policy-topics", GetTopicsHandler)
	r.POST("/api/policy-topics", CreateTopicHandler)
	r.PUT("/api/policy-topics/:id", UpdateTopicHandler)
	r.DELETE("/api/policy-topics/:id", DeleteTopicHandler)

	// AI问答
	r.POST("/api/chat", ChatHandler)
	r.GET("/api/chat/history", ChatHistoryHandler)
	r.GET("/api/chat/ws", ChatStreamHandler)

	return r
}
