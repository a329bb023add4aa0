package logic

import (
	"time"

	"liiuxue-backend/internal/common"
	"liiuxue-backend/internal/db"

	"github.com/gin-gonic/gin"
)

// 新闻和政策共用 policy_documents 表，仅 category 不同；
// 各接口由下面的公共实现完成，新闻/政策处理器只是薄封装。

type documentRequest struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	SourceName    *string `json:"source_name"`
	SourceURL     *string `json:"source_url"`
	ImageURL      *string `json:"image_url"`
	TopicID       *uint   `json:"topic_id"`
	UnitPublished *string `json:"unit_published"`
	DatePublished *string `json:"date_published"`
}

// parsePublishDate 校验 yyyy-mm-dd 格式
func parsePublishDate(s string) (string, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

func listDocuments(c *gin.Context, category db.Category, key string) {
	var docs []db.PolicyDocument
	if err := db.GetDB().Where("category = ?", category).
		Order("last_updated desc").Find(&docs).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{key: docs})
}

// getDocument 按ID+分类查找；ID存在但分类不符同样按不存在处理
func getDocument(c *gin.Context, category db.Category, key string) {
	docID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var doc db.PolicyDocument
	if err := db.GetDB().Where("policy_id = ? AND category = ?", docID, category).
		First(&doc).Error; err != nil {
		c.JSON(404, gin.H{"error": "资源不存在"})
		return
	}
	c.JSON(200, gin.H{key: doc})
}

func createDocument(c *gin.Context, category db.Category, defaultTopicID uint, key, okMsg string) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "请求格式错误"})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(400, gin.H{"error": "标题和内容不能为空"})
		return
	}

	// 处理日期：缺省为当天，否则必须是 yyyy-mm-dd
	datePublished := time.Now().Format("2006-01-02")
	if req.DatePublished != nil {
		parsed, ok := parsePublishDate(*req.DatePublished)
		if !ok {
			c.JSON(400, gin.H{"error": "日期格式不正确，请使用YYYY-MM-DD格式"})
			return
		}
		datePublished = parsed
	}

	topicID := defaultTopicID
	if req.TopicID != nil {
		topicID = *req.TopicID
	}
	exists, err := topicExists(topicID)
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	if !exists {
		c.JSON(400, gin.H{"error": "无效的主题ID"})
		return
	}

	doc := db.PolicyDocument{
		Title:         req.Title,
		Content:       req.Content,
		Category:      category,
		TopicID:       topicID,
		DatePublished: datePublished,
	}
	if req.SourceName != nil {
		doc.SourceName = *req.SourceName
	}
	if req.SourceURL != nil {
		doc.SourceURL = *req.SourceURL
	}
	if req.ImageURL != nil {
		doc.ImageURL = *req.ImageURL
	}
	if req.UnitPublished != nil {
		doc.UnitPublished = *req.UnitPublished
	}

	if err := db.GetDB().Create(&doc).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(201, gin.H{"message": okMsg, key: doc})
}

// updateDocument 标题和内容每次必传，其余字段传了才更新
func updateDocument(c *gin.Context, category db.Category, key, okMsg string) {
	docID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var doc db.PolicyDocument
	if err := db.GetDB().Where("policy_id = ? AND category = ?", docID, category).
		First(&doc).Error; err != nil {
		c.JSON(404, gin.H{"error": "资源不存在"})
		return
	}

	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "请求格式错误"})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(400, gin.H{"error": "标题和内容不能为空"})
		return
	}

	if req.DatePublished != nil {
		parsed, ok := parsePublishDate(*req.DatePublished)
		if !ok {
			c.JSON(400, gin.H{"error": "日期格式不正确，请使用YYYY-MM-DD格式"})
			return
		}
		doc.DatePublished = parsed
	}
	if req.TopicID != nil {
		exists, err := topicExists(*req.TopicID)
		if err != nil {
			c.JSON(500, gin.H{"error": "db error"})
			return
		}
		if !exists {
			c.JSON(400, gin.H{"error": "无效的主题ID"})
			return
		}
		doc.TopicID = *req.TopicID
	}

	doc.Title = req.Title
	doc.Content = req.Content
	if req.SourceName != nil {
		doc.SourceName = *req.SourceName
	}
	if req.SourceURL != nil {
		doc.SourceURL = *req.SourceURL
	}
	if req.ImageURL != nil {
		doc.ImageURL = *req.ImageURL
	}
	if req.UnitPublished != nil {
		doc.UnitPublished = *req.UnitPublished
	}

	if err := db.GetDB().Save(&doc).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": okMsg, key: doc})
}

func deleteDocument(c *gin.Context, category db.Category, okMsg string) {
	docID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var doc db.PolicyDocument
	if err := db.GetDB().Where("policy_id = ? AND category = ?", docID, category).
		First(&doc).Error; err != nil {
		c.JSON(404, gin.H{"error": "资源不存在"})
		return
	}
	if err := db.GetDB().Delete(&doc).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": okMsg})
}

// GetNewsListHandler 拉取新闻列表
func GetNewsListHandler(c *gin.Context) {
	listDocuments(c, db.CategoryNews, "news")
}

// GetNewsDetailHandler 新闻详情
func GetNewsDetailHandler(c *gin.Context) {
	getDocument(c, db.CategoryNews, "news")
}

// CreateNewsHandler 添加新闻
func CreateNewsHandler(c *gin.Context) {
	createDocument(c, db.CategoryNews, common.DefaultNewsTopicID, "news", "新闻添加成功")
}

// UpdateNewsHandler 更新新闻
func UpdateNewsHandler(c *gin.Context) {
	updateDocument(c, db.CategoryNews, "news", "新闻更新成功")
}

// DeleteNewsHandler 删除新闻
func DeleteNewsHandler(c *gin.Context) {
	deleteDocument(c, db.CategoryNews, "新闻删除成功")
}

// GetPolicyListHandler 拉取政策列表
func GetPolicyListHandler(c *gin.Context) {
	listDocuments(c, db.CategoryPolicy, "policies")
}

// GetPolicyDetailHandler 政策详情
func GetPolicyDetailHandler(c *gin.Context) {
	getDocument(c, db.CategoryPolicy, "policy")
}

// CreatePolicyHandler 添加政策
func CreatePolicyHandler(c *gin.Context) {
	createDocument(c, db.CategoryPolicy, common.DefaultPolicyTopicID, "policy", "政策添加成功")
}

// UpdatePolicyHandler 更新政策
func UpdatePolicyHandler(c *gin.Context) {
	updateDocument(c, db.CategoryPolicy, "policy", "政策更新成功")
}

// DeletePolicyHandler 删除政策
func DeletePolicyHandler(c *gin.Context) {
	deleteDocument(c, db.CategoryPolicy, "政策删除成功")
}

// SearchHandler 按关键词搜索新闻/政策，type 取 all/news/policy
func SearchHandler(c *gin.Context) {
	keyword := c.Query("keyword")
	searchType := c.DefaultQuery("type", "all")

	if keyword == "" {
		c.JSON(400, gin.H{"error": "搜索关键词不能为空"})
		return
	}

	pattern := "%" + keyword + "%"
	results := []gin.H{}

	if searchType == "all" || searchType == "news" {
		var docs []db.PolicyDocument
		if err := db.GetDB().
			Where("category = ? AND (title LIKE ? OR content LIKE ?)", db.CategoryNews, pattern, pattern).
			Order("policy_id asc").Find(&docs).Error; err != nil {
			c.JSON(500, gin.H{"error": "db error"})
			return
		}
		for _, doc := range docs {
			results = append(results, taggedDocument("news", doc))
		}
	}

	if searchType == "all" || searchType == "policy" {
		var docs []db.PolicyDocument
		if err := db.GetDB().
			Where("category = ? AND (title LIKE ? OR content LIKE ?)", db.CategoryPolicy, pattern, pattern).
			Order("policy_id asc").Find(&docs).Error; err != nil {
			c.JSON(500, gin.H{"error": "db error"})
			return
		}
		for _, doc := range docs {
			results = append(results, taggedDocument("policy", doc))
		}
	}

	c.JSON(200, gin.H{"results": results})
}

// taggedDocument 搜索结果带上来源分区标记
func taggedDocument(tag string, doc db.PolicyDocument) gin.H {
	return gin.H{
		"type":           tag,
		"policy_id":      doc.PolicyID,
		"source_name":    doc.SourceName,
		"source_url":     doc.SourceURL,
		"title":          doc.Title,
		"date_published": doc.DatePublished,
		"unit_published": doc.UnitPublished,
		"content":        doc.Content,
		"image_url":      doc.ImageURL,
		"topic_id":       doc.TopicID,
		"category":       doc.Category,
		"last_updated":   doc.LastUpdated,
	}
}
