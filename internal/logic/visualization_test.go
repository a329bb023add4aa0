package logic

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func createVisualization(t *testing.T, router *gin.Engine, body gin.H) map[string]interface{} {
	w := performRequest(router, "POST", "/api/visualizations", body)
	assert.Equal(t, 201, w.Code)
	return decodeBody(t, w)["visualization"].(map[string]interface{})
}

// 测试可视化类型列表 - 返回内置的4个类型
func TestGetVizTypesHandler(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, "GET", "/api/visualization-types", nil)
	assert.Equal(t, 200, w.Code)
	types := decodeBody(t, w)["types"].([]interface{})
	assert.Len(t, types, 4)
}

// 测试添加可视化类型 - 重名拒绝（精确匹配）
func TestCreateVizTypeDuplicate(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, "POST", "/api/visualization-types", gin.H{
		"type_name": "Trend_Chart",
	})
	assert.Equal(t, 400, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "已存在同名可视化类型", response["error"])

	// 名称必填
	w = performRequest(router, "POST", "/api/visualization-types", gin.H{})
	assert.Equal(t, 400, w.Code)

	// 新名称可以创建
	w = performRequest(router, "POST", "/api/visualization-types", gin.H{
		"type_name": "Heat_Map",
	})
	assert.Equal(t, 201, w.Code)
}

// 测试更新可视化类型 - 重名检查排除自身
func TestUpdateVizTypeSelfRename(t *testing.T) {
	router := setupTestRouter(t)

	// 改成自己当前的名字应当成功
	w := performRequest(router, "PUT", "/api/visualization-types/1", gin.H{
		"type_name": "Trend_Chart",
	})
	assert.Equal(t, 200, w.Code)

	// 改成其他类型已占用的名字应当失败
	w = performRequest(router, "PUT", "/api/visualization-types/1", gin.H{
		"type_name": "Timeline",
	})
	assert.Equal(t, 400, w.Code)

	// 不存在的类型
	w = performRequest(router, "PUT", "/api/visualization-types/999", gin.H{
		"type_name": "x",
	})
	assert.Equal(t, 404, w.Code)
}

// 测试删除可视化类型 - 被引用时拒绝
func TestDeleteVizTypeReferentialConflict(t *testing.T) {
	router := setupTestRouter(t)

	createVisualization(t, router, gin.H{
		"viz_name": "趋势图", "category": "News", "viz_type_id": 1,
	})

	w := performRequest(router, "DELETE", "/api/visualization-types/1", nil)
	assert.Equal(t, 400, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "该类型下有可视化数据，无法删除", response["error"])

	// 未引用的类型可删
	w = performRequest(router, "DELETE", "/api/visualization-types/2", nil)
	assert.Equal(t, 200, w.Code)

	w = performRequest(router, "DELETE", "/api/visualization-types/2", nil)
	assert.Equal(t, 404, w.Code)
}

// 测试添加可视化 - 校验必填项、分类枚举和类型引用
func TestCreateVisualizationValidation(t *testing.T) {
	router := setupTestRouter(t)

	// 缺必填项
	w := performRequest(router, "POST", "/api/visualizations", gin.H{"viz_name": "图"})
	assert.Equal(t, 400, w.Code)

	// 未知分类
	w = performRequest(router, "POST", "/api/visualizations", gin.H{
		"viz_name": "图", "category": "Unknown", "viz_type_id": 1,
	})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "无效的分类", decodeBody(t, w)["error"])

	// 不存在的类型ID
	w = performRequest(router, "POST", "/api/visualizations", gin.H{
		"viz_name": "图", "category": "News", "viz_type_id": 999,
	})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "无效的可视化类型ID", decodeBody(t, w)["error"])

	// 正常创建，响应携带类型名
	viz := createVisualization(t, router, gin.H{
		"viz_name": "就业趋势", "category": "Employment_Entrepreneurship",
		"viz_type_id": 1, "viz_analysis": "逐年上升",
	})
	assert.Equal(t, "Trend_Chart", viz["viz_type_name"])
	assert.Equal(t, "Employment_Entrepreneurship", viz["category"])
}

// 测试可视化列表 - 条件筛选可叠加，非法参数报400
func TestGetVisualizationsFilters(t *testing.T) {
	router := setupTestRouter(t)

	createVisualization(t, router, gin.H{
		"viz_name": "新闻趋势", "category": "News", "viz_type_id": 1,
	})
	createVisualization(t, router, gin.H{
		"viz_name": "新闻时间线", "category": "News", "viz_type_id": 2,
	})
	createVisualization(t, router, gin.H{
		"viz_name": "政策趋势", "category": "Official_Policy", "viz_type_id": 1,
	})

	w := performRequest(router, "GET", "/api/visualizations", nil)
	assert.Equal(t, 200, w.Code)
	assert.Len(t, decodeBody(t, w)["visualizations"].([]interface{}), 3)

	w = performRequest(router, "GET", "/api/visualizations?category=News", nil)
	assert.Len(t, decodeBody(t, w)["visualizations"].([]interface{}), 2)

	// 两个条件同时生效
	w = performRequest(router, "GET", "/api/visualizations?category=News&viz_type_id=1", nil)
	result := decodeBody(t, w)["visualizations"].([]interface{})
	assert.Len(t, result, 1)
	assert.Equal(t, "新闻趋势", result[0].(map[string]interface{})["viz_name"])

	// 非法分类
	w = performRequest(router, "GET", "/api/visualizations?category=Bogus", nil)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "无效的分类参数", decodeBody(t, w)["error"])

	// 非数字类型ID
	w = performRequest(router, "GET", "/api/visualizations?viz_type_id=abc", nil)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "无效的类型ID参数", decodeBody(t, w)["error"])
}

// 测试单个可视化的获取、更新与删除
func TestVisualizationLifecycle(t *testing.T) {
	router := setupTestRouter(t)

	viz := createVisualization(t, router, gin.H{
		"viz_name": "态度图", "category": "News", "viz_type_id": 3,
	})
	vizID := int(viz["viz_id"].(float64))
	path := fmt.Sprintf("/api/visualizations/%d", vizID)

	w := performRequest(router, "GET", path, nil)
	assert.Equal(t, 200, w.Code)

	// 更新为另一个类型
	w = performRequest(router, "PUT", path, gin.H{
		"viz_name": "态度图v2", "category": "News", "viz_type_id": 4,
	})
	assert.Equal(t, 200, w.Code)
	updated := decodeBody(t, w)["visualization"].(map[string]interface{})
	assert.Equal(t, "态度图v2", updated["viz_name"])
	assert.Equal(t, "Keyword_Cloud", updated["viz_type_name"])

	w = performRequest(router, "DELETE", path, nil)
	assert.Equal(t, 200, w.Code)

	w = performRequest(router, "GET", path, nil)
	assert.Equal(t, 404, w.Code)
}
