package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaults 初始化默认数据（可视化类型、LDA主题、管理员账号）。
// 启动时执行一次，带存在性检查，可重复调用。
func SeedDefaults(d *gorm.DB) error {
	if err := seedVisualizationTypes(d); err != nil {
		return err
	}
	if err := seedPolicyTopics(d); err != nil {
		return err
	}
	return seedAdminUser(d)
}

func seedVisualizationTypes(d *gorm.DB) error {
	var count int64
	if err := d.Model(&VisualizationType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	types := []VisualizationType{
		{VizTypeID: 1, TypeName: "Trend_Chart"},
		{VizTypeID: 2, TypeName: "Timeline"},
		{VizTypeID: 3, TypeName: "Attitude_Chart"},
		{VizTypeID: 4, TypeName: "Keyword_Cloud"},
	}
	if err := d.Create(&types).Error; err != nil {
		return err
	}
	log.Println("可视化类型初始数据已创建")
	return nil
}

func seedPolicyTopics(d *gorm.DB) error {
	topics := []PolicyTopic{
		{TopicID: 0, TopicName: "教育咨询", TopicKeywords: "教育 咨询 留学 海外 指导"},
		{TopicID: 1, TopicName: "国际合作", TopicKeywords: "国际 合作 交流 项目 协议"},
		{TopicID: 2, TopicName: "全球化与来华留学", TopicKeywords: "全球化 来华 留学 国际学生 文化"},
		{TopicID: 3, TopicName: "教育政策解读", TopicKeywords: "教育 政策 解读 法规 规定"},
		{TopicID: 4, TopicName: "在华发展机遇", TopicKeywords: "发展 机遇 就业 创业 前景"},
		{TopicID: 5, TopicName: "学生服务与支持", TopicKeywords: "服务 支持 帮助 资源 辅导"},
		{TopicID: 6, TopicName: "教育与学习", TopicKeywords: "教育 学习 课程 培训 技能"},
		{TopicID: 7, TopicName: "政策与建设", TopicKeywords: "政策 建设 改革 发展 规划"},
		{TopicID: 8, TopicName: "国际关系与交流", TopicKeywords: "国际 关系 交流 合作 外交"},
		{TopicID: 9, TopicName: "就业与工作", TopicKeywords: "就业 工作 职业 求职 实习"},
	}
	// 逐条插入，已存在的主题跳过
	for _, topic := range topics {
		var existing PolicyTopic
		err := d.Where("topic_id = ?", topic.TopicID).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := d.Create(&topic).Error; err != nil {
			return err
		}
	}
	log.Println("政策LDA主题初始数据已创建")
	return nil
}

func seedAdminUser(d *gorm.DB) error {
	var admin User
	err := d.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		log.Println("管理员账号已存在")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin = User{
		Username: "admin",
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := d.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("管理员账号创建成功")
	return nil
}
