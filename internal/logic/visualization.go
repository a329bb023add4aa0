package logic

import (
	"strconv"

	"liiuxue-backend/internal/db"

	"github.com/gin-gonic/gin"
)

// vizJSON 可视化响应带上类型名称，需预加载 Type
func vizJSON(v db.Visualization) gin.H {
	return gin.H{
		"viz_id":        v.VizID,
		"viz_name":      v.VizName,
		"image_url":     v.ImageURL,
		"viz_analysis":  v.VizAnalysis,
		"category":      v.Category,
		"viz_type_id":   v.VizTypeID,
		"viz_type_name": v.Type.TypeName,
		"last_updated":  v.LastUpdated,
	}
}

// GetVizTypesHandler 获取可视化类型列表
func GetVizTypesHandler(c *gin.Context) {
	var types []db.VisualizationType
	if err := db.GetDB().Find(&types).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"types": types})
}

// CreateVizTypeHandler 添加可视化类型，名称不可重复
func CreateVizTypeHandler(c *gin.Context) {
	var req struct {
		TypeName string `json:"type_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.TypeName == "" {
		c.JSON(400, gin.H{"error": "类型名称不能为空"})
		return
	}

	var existing db.VisualizationType
	if err := db.GetDB().Where("type_name = ?", req.TypeName).First(&existing).Error; err == nil {
		c.JSON(400, gin.H{"error": "已存在同名可视化类型"})
		return
	}

	vizType := db.VisualizationType{TypeName: req.TypeName}
	if err := db.GetDB().Create(&vizType).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(201, gin.H{"message": "可视化类型添加成功", "type": vizType})
}

// UpdateVizTypeHandler 更新可视化类型，重名检查排除自身
func UpdateVizTypeHandler(c *gin.Context) {
	typeID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req struct {
		TypeName string `json:"type_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.TypeName == "" {
		c.JSON(400, gin.H{"error": "类型名称不能为空"})
		return
	}

	var vizType db.VisualizationType
	if err := db.GetDB().Where("viz_type_id = ?", typeID).First(&vizType).Error; err != nil {
		c.JSON(404, gin.H{"error": "可视化类型不存在"})
		return
	}

	var existing db.VisualizationType
	if err := db.GetDB().Where("type_name = ?", req.TypeName).First(&existing).Error; err == nil &&
		existing.VizTypeID != typeID {
		c.JSON(400, gin.H{"error": "已存在同名可视化类型"})
		return
	}

	vizType.TypeName = req.TypeName
	if err := db.GetDB().Save(&vizType).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": "可视化类型更新成功", "type": vizType})
}

// DeleteVizTypeHandler 删除可视化类型，类型下还有可视化时拒绝
func DeleteVizTypeHandler(c *gin.Context) {
	typeID, ok := parseIDParam(c)
	if !ok {
		return
	}

	inUse, err := vizTypeInUse(typeID)
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	if inUse {
		c.JSON(400, gin.H{"error": "该类型下有可视化数据，无法删除"})
		return
	}

	var vizType db.VisualizationType
	if err := db.GetDB().Where("viz_type_id = ?", typeID).First(&vizType).Error; err != nil {
		c.JSON(404, gin.H{"error": "可视化类型不存在"})
		return
	}
	if err := db.GetDB().Delete(&vizType).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": "可视化类型删除成功"})
}

// GetVisualizationsHandler 获取可视化列表，category 与 viz_type_id 筛选条件可叠加
func GetVisualizationsHandler(c *gin.Context) {
	query := db.GetDB().Preload("Type")

	if categoryParam := c.Query("category"); categoryParam != "" {
		category, ok := db.ParseCategory(categoryParam)
		if !ok {
			c.JSON(400, gin.H{"error": "无效的分类参数"})
			return
		}
		query = query.Where("category = ?", category)
	}
	if typeParam := c.Query("viz_type_id"); typeParam != "" {
		typeID, err := strconv.Atoi(typeParam)
		if err != nil {
			c.JSON(400, gin.H{"error": "无效的类型ID参数"})
			return
		}
		query = query.Where("viz_type_id = ?", typeID)
	}

	var visualizations []db.Visualization
	if err := query.Order("last_updated desc").Find(&visualizations).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	result := []gin.H{}
	for _, v := range visualizations {
		result = append(result, vizJSON(v))
	}
	c.JSON(200, gin.H{"visualizations": result})
}

// GetVisualizationHandler 获取单个可视化
func GetVisualizationHandler(c *gin.Context) {
	vizID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var viz db.Visualization
	if err := db.GetDB().Preload("Type").Where("viz_id = ?", vizID).First(&viz).Error; err != nil {
		c.JSON(404, gin.H{"error": "可视化不存在"})
		return
	}
	c.JSON(200, gin.H{"visualization": vizJSON(viz)})
}

type visualizationRequest struct {
	VizName     string `json:"viz_name"`
	VizAnalysis string `json:"viz_analysis"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	VizTypeID   uint   `json:"viz_type_id"`
}

// validateVizRequest 必填项、分类枚举、类型ID引用三道检查
func validateVizRequest(c *gin.Context, req visualizationRequest) (db.Category, bool) {
	if req.VizName == "" || req.Category == "" || req.VizTypeID == 0 {
		c.JSON(400, gin.H{"error": "名称、分类和类型不能为空"})
		return "", false
	}
	category, ok := db.ParseCategory(req.Category)
	if !ok {
		c.JSON(400, gin.H{"error": "无效的分类"})
		return "", false
	}
	exists, err := vizTypeExists(req.VizTypeID)
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return "", false
	}
	if !exists {
		c.JSON(400, gin.H{"error": "无效的可视化类型ID"})
		return "", false
	}
	return category, true
}

// CreateVisualizationHandler 添加可视化
func CreateVisualizationHandler(c *gin.Context) {
	var req visualizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "请求格式错误"})
		return
	}
	category, ok := validateVizRequest(c, req)
	if !ok {
		return
	}

	viz := db.Visualization{
		VizName:     req.VizName,
		VizAnalysis: req.VizAnalysis,
		ImageURL:    req.ImageURL,
		Category:    category,
		VizTypeID:   req.VizTypeID,
	}
	if err := db.GetDB().Create(&viz).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	db.GetDB().Preload("Type").First(&viz, viz.VizID)
	c.JSON(201, gin.H{"message": "可视化添加成功", "visualization": vizJSON(viz)})
}

// UpdateVisualizationHandler 更新可视化，五个字段整体覆盖
func UpdateVisualizationHandler(c *gin.Context) {
	vizID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req visualizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "请求格式错误"})
		return
	}

	if req.VizName == "" || req.Category == "" || req.VizTypeID == 0 {
		c.JSON(400, gin.H{"error": "名称、分类和类型不能为空"})
		return
	}

	var viz db.Visualization
	if err := db.GetDB().Where("viz_id = ?", vizID).First(&viz).Error; err != nil {
		c.JSON(404, gin.H{"error": "可视化不存在"})
		return
	}

	category, ok := db.ParseCategory(req.Category)
	if !ok {
		c.JSON(400, gin.H{"error": "无效的分类"})
		return
	}
	exists, err := vizTypeExists(req.VizTypeID)
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	if !exists {
		c.JSON(400, gin.H{"error": "无效的可视化类型ID"})
		return
	}

	viz.VizName = req.VizName
	viz.VizAnalysis = req.VizAnalysis
	viz.ImageURL = req.ImageURL
	viz.Category = category
	viz.VizTypeID = req.VizTypeID
	if err := db.GetDB().Save(&viz).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	db.GetDB().Preload("Type").First(&viz, viz.VizID)
	c.JSON(200, gin.H{"message": "可视化更新成功", "visualization": vizJSON(viz)})
}

// DeleteVisualizationHandler 删除可视化
func DeleteVisualizationHandler(c *gin.Context) {
	vizID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var viz db.Visualization
	if err := db.GetDB().Where("viz_id = ?", vizID).First(&viz).Error; err != nil {
		c.JSON(404, gin.H{"error": "可视化不存在"})
		return
	}
	if err := db.GetDB().Delete(&viz).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": "可视化删除成功"})
}
