package common

import "os"

const (
	RolePrompt = "你是一位来华留学咨询顾问，熟悉中国的留学政策、就业创业政策和高校资讯；请根据用户的提问，用简明的中文给出准确、实用的建议。"
)

// 新建新闻/政策时的默认主题
const (
	DefaultNewsTopicID   = 0 // 教育咨询
	DefaultPolicyTopicID = 7 // 政策与建设
)

// 图片上传限制
const (
	MaxUploadSize   = 5 * 1024 * 1024 // 5MB
	UploadURLPrefix = "/static/uploads"
)

var LLMToken string
var LLMModel = "hunyuan-turbos-latest"
var LLMBaseURL = "https://api.hunyuan.cloud.tencent.com/v1"

var UploadDir = "static/uploads"

func init() {
	LLMToken = os.Getenv("LLM_TOKEN")
	if v := os.Getenv("LLM_MODEL"); v != "" {
		LLMModel = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		LLMBaseURL = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		UploadDir = v
	}
}
