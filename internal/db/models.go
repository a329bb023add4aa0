package db

import (
	"time"
)

// Category 新闻与政策共用的封闭分类枚举
type Category string

const (
	CategoryNews       Category = "News"
	CategoryPolicy     Category = "Official_Policy"
	CategoryEmployment Category = "Employment_Entrepreneurship"
)

// ParseCategory 解析分类标签，未知标签返回 false
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryNews, CategoryPolicy, CategoryEmployment:
		return Category(s), true
	}
	return "", false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:256;not null" json:"-"` // bcrypt哈希，不出现在响应中
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// PolicyTopic LDA主题表，topic_id 由业务侧分配（max+1），不自增
type PolicyTopic struct {
	TopicID       uint   `gorm:"column:topic_id;primaryKey;autoIncrement:false" json:"topic_id"`
	TopicName     string `gorm:"size:255;not null" json:"topic_name"`
	TopicKeywords string `gorm:"size:255" json:"topic_keywords"`
}

func (PolicyTopic) TableName() string {
	return "policy_lda_topics"
}

// PolicyDocument 新闻与政策统一存储，按 category 区分
type PolicyDocument struct {
	PolicyID      uint        `gorm:"column:policy_id;primaryKey" json:"policy_id"`
	SourceName    string      `gorm:"size:255" json:"source_name"`
	SourceURL     string      `gorm:"size:255" json:"source_url"`
	Title         string      `gorm:"size:255;not null" json:"title"`
	DatePublished string      `gorm:"size:10" json:"date_published"` // yyyy-mm-dd
	UnitPublished string      `gorm:"size:225" json:"unit_published"`
	Content       string      `gorm:"type:text" json:"content"`
	ImageURL      string      `gorm:"type:text" json:"image_url"`
	TopicID       uint        `gorm:"not null;index" json:"topic_id"`
	Topic         PolicyTopic `gorm:"foreignKey:TopicID;references:TopicID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Category      Category    `gorm:"size:64;not null;index" json:"category"`
	LastUpdated   time.Time   `gorm:"autoUpdateTime" json:"last_updated"`
}

func (PolicyDocument) TableName() string {
	return "policy_documents"
}

type VisualizationType struct {
	VizTypeID uint   `gorm:"column:viz_type_id;primaryKey" json:"viz_type_id"`
	TypeName  string `gorm:"size:50;uniqueIndex;not null" json:"type_name"`
}

func (VisualizationType) TableName() string {
	return "visualization_types"
}

type Visualization struct {
	VizID       uint              `gorm:"column:viz_id;primaryKey" json:"viz_id"`
	VizName     string            `gorm:"size:50;not null" json:"viz_name"`
	ImageURL    string            `gorm:"size:255" json:"image_url"`
	VizAnalysis string            `gorm:"type:text" json:"viz_analysis"`
	Category    Category          `gorm:"size:64;not null" json:"category"`
	VizTypeID   uint              `gorm:"not null;index" json:"viz_type_id"`
	Type        VisualizationType `gorm:"foreignKey:VizTypeID;references:VizTypeID" json:"-"`
	LastUpdated time.Time         `gorm:"autoUpdateTime" json:"last_updated"`
}

func (Visualization) TableName() string {
	return "visualizations"
}

// ChatRecord AI问答记录表，一行保存一次问答
type ChatRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	UserMessage string    `gorm:"type:text;not null" json:"user_message"`
	AIResponse  string    `gorm:"type:text;not null" json:"ai_response"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ChatRecord) TableName() string {
	return "chat_records"
}
