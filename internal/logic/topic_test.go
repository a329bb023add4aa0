package logic

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// 测试主题列表 - 返回内置的10个LDA主题
func TestGetTopicsHandler(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, "GET", "/api/policy-topics", nil)
	assert.Equal(t, 200, w.Code)
	topics := decodeBody(t, w)["topics"].([]interface{})
	assert.Len(t, topics, 10)
}

// 测试添加主题 - 缺少用户ID
func TestCreateTopicMissingUserID(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, "POST", "/api/policy-topics", gin.H{"topic_name": "新主题"})
	assert.Equal(t, 400, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "需要用户ID", response["error"])
}

// 测试添加主题 - 非管理员被拒
func TestCreateTopicForbidden(t *testing.T) {
	router := setupTestRouter(t)
	userID := registerUser(t, router, "alice", "secret123")

	w := performRequest(router, "POST", "/api/policy-topics", gin.H{
		"user_id": userID, "topic_name": "新主题",
	})
	assert.Equal(t, 403, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "权限不足", response["error"])
}

// 测试添加主题 - 管理员创建，topic_id 为最大值+1
func TestCreateTopicHandler(t *testing.T) {
	router := setupTestRouter(t)
	adminID := adminUserID(t)

	w := performRequest(router, "POST", "/api/policy-topics", gin.H{
		"user_id": adminID, "topic_name": "签证政策",
	})
	assert.Equal(t, 201, w.Code)
	topic := decodeBody(t, w)["topic"].(map[string]interface{})
	// 内置主题0-9，新主题应为10
	assert.Equal(t, float64(10), topic["topic_id"])
	assert.Equal(t, "签证政策", topic["topic_name"])

	// 名称必填
	w = performRequest(router, "POST", "/api/policy-topics", gin.H{"user_id": adminID})
	assert.Equal(t, 400, w.Code)
}

// 测试更新主题
func TestUpdateTopicHandler(t *testing.T) {
	router := setupTestRouter(t)
	adminID := adminUserID(t)

	w := performRequest(router, "PUT", "/api/policy-topics/3", gin.H{
		"user_id": adminID, "topic_name": "政策解读",
	})
	assert.Equal(t, 200, w.Code)
	topic := decodeBody(t, w)["topic"].(map[string]interface{})
	assert.Equal(t, "政策解读", topic["topic_name"])

	// 不存在的主题
	w = performRequest(router, "PUT", "/api/policy-topics/999", gin.H{
		"user_id": adminID, "topic_name": "x",
	})
	assert.Equal(t, 404, w.Code)

	// 非管理员
	userID := registerUser(t, router, "bob", "secret123")
	w = performRequest(router, "PUT", "/api/policy-topics/3", gin.H{
		"user_id": userID, "topic_name": "x",
	})
	assert.Equal(t, 403, w.Code)
}

// 测试删除主题 - 被文章引用时拒绝，未引用可删
func TestDeleteTopicReferentialConflict(t *testing.T) {
	router := setupTestRouter(t)
	adminID := adminUserID(t)

	// 0号主题下挂一篇新闻
	createNews(t, router, gin.H{"title": "新闻", "content": "正文", "topic_id": 0})

	w := performRequest(router, "DELETE",
		fmt.Sprintf("/api/policy-topics/0?user_id=%d", adminID), nil)
	assert.Equal(t, 400, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "该主题下有文章，无法删除", response["error"])

	// 9号主题无引用，可以删除
	w = performRequest(router, "DELETE",
		fmt.Sprintf("/api/policy-topics/9?user_id=%d", adminID), nil)
	assert.Equal(t, 200, w.Code)

	// 再删一次应404
	w = performRequest(router, "DELETE",
		fmt.Sprintf("/api/policy-topics/9?user_id=%d", adminID), nil)
	assert.Equal(t, 404, w.Code)
}

// 测试删除主题 - 缺少用户ID
func TestDeleteTopicMissingUserID(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, "DELETE", "/api/policy-topics/9", nil)
	assert.Equal(t, 400, w.Code)
}
