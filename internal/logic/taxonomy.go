package logic

import (
	"liiuxue-backend/internal/db"

	"gorm.io/gorm"
)

// 引用校验：写入前确认外键目标存在，删除前确认没有下游引用。
// 只读检查，发现问题直接报错，不做任何修正。

func topicExists(topicID uint) (bool, error) {
	var topic db.PolicyTopic
	err := db.GetDB().Where("topic_id = ?", topicID).First(&topic).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func vizTypeExists(typeID uint) (bool, error) {
	var vizType db.VisualizationType
	err := db.GetDB().Where("viz_type_id = ?", typeID).First(&vizType).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// topicInUse 主题下是否还有文章
func topicInUse(topicID uint) (bool, error) {
	var count int64
	err := db.GetDB().Model(&db.PolicyDocument{}).Where("topic_id = ?", topicID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// vizTypeInUse 类型下是否还有可视化
func vizTypeInUse(typeID uint) (bool, error) {
	var count int64
	err := db.GetDB().Model(&db.Visualization{}).Where("viz_type_id = ?", typeID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
