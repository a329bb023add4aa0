package logic

import (
	"strconv"

	"liiuxue-backend/internal/db"

	"github.com/gin-gonic/gin"
)

// GetTopicsHandler 获取政策主题列表
func GetTopicsHandler(c *gin.Context) {
	var topics []db.PolicyTopic
	if err := db.GetDB().Find(&topics).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"topics": topics})
}

// CreateTopicHandler 添加主题，仅管理员。topic_id 取当前最大值+1，空表从0开始
func CreateTopicHandler(c *gin.Context) {
	var req struct {
		UserID    uint   `json:"user_id"`
		TopicName string `json:"topic_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "请求格式错误"})
		return
	}
	if !requireAdmin(c, req.UserID) {
		return
	}
	if req.TopicName == "" {
		c.JSON(400, gin.H{"error": "主题名称不能为空"})
		return
	}

	var maxTopic db.PolicyTopic
	nextID := uint(0)
	if err := db.GetDB().Order("topic_id desc").First(&maxTopic).Error; err == nil {
		nextID = maxTopic.TopicID + 1
	}

	topic := db.PolicyTopic{TopicID: nextID, TopicName: req.TopicName}
	if err := db.GetDB().Create(&topic).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(201, gin.H{"message": "主题添加成功", "topic": topic})
}

// UpdateTopicHandler 更新主题名称，仅管理员
func UpdateTopicHandler(c *gin.Context) {
	topicID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req struct {
		UserID    uint   `json:"user_id"`
		TopicName string `json:"topic_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "请求格式错误"})
		return
	}
	if !requireAdmin(c, req.UserID) {
		return
	}

	var topic db.PolicyTopic
	if err := db.GetDB().Where("topic_id = ?", topicID).First(&topic).Error; err != nil {
		c.JSON(404, gin.H{"error": "主题不存在"})
		return
	}
	if req.TopicName == "" {
		c.JSON(400, gin.H{"error": "主题名称不能为空"})
		return
	}

	topic.TopicName = req.TopicName
	if err := db.GetDB().Save(&topic).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": "主题更新成功", "topic": topic})
}

// DeleteTopicHandler 删除主题，仅管理员；主题下还有文章时拒绝
func DeleteTopicHandler(c *gin.Context) {
	topicID, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, _ := strconv.Atoi(c.Query("user_id"))
	if !requireAdmin(c, uint(userID)) {
		return
	}

	inUse, err := topicInUse(topicID)
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	if inUse {
		c.JSON(400, gin.H{"error": "该主题下有文章，无法删除"})
		return
	}

	var topic db.PolicyTopic
	if err := db.GetDB().Where("topic_id = ?", topicID).First(&topic).Error; err != nil {
		c.JSON(404, gin.H{"error": "主题不存在"})
		return
	}
	if err := db.GetDB().Delete(&topic).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": "主题删除成功"})
}
