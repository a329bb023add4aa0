package logic

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"liiuxue-backend/internal/common"
	"liiuxue-backend/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/tmc/langchaingo/chains"
	langopenai "github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/memory"
)

const fallbackReply = "抱歉，AI服务暂时不可用，请稍后再试。"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// buildConversation 用历史问答记录组装会话链
func buildConversation(ctx context.Context, userID uint) (chains.Chain, error) {
	if common.LLMToken == "" {
		return nil, errors.New("LLM token not configured")
	}

	chatMemory := memory.NewConversationWindowBuffer(10)
	chatMemory.ChatHistory.AddUserMessage(ctx, common.RolePrompt)
	if userID != 0 {
		var history []db.ChatRecord
		db.GetDB().Where("user_id = ?", userID).Order("created_at asc").Find(&history)
		for _, h := range history {
			chatMemory.ChatHistory.AddUserMessage(ctx, h.UserMessage)
			chatMemory.ChatHistory.AddAIMessage(ctx, h.AIResponse)
		}
	}

	llm, err := langopenai.New(
		langopenai.WithToken(common.LLMToken),
		langopenai.WithModel(common.LLMModel),
		langopenai.WithBaseURL(common.LLMBaseURL))
	if err != nil {
		return nil, err
	}
	return chains.NewConversation(llm, chatMemory), nil
}

func saveChatRecord(userID uint, message, response string) {
	if userID == 0 {
		return
	}
	record := db.ChatRecord{UserID: userID, UserMessage: message, AIResponse: response}
	if err := db.GetDB().Create(&record).Error; err != nil {
		log.Printf("保存聊天记录失败: %v", err)
	}
}

// ChatHandler AI问答接口。LLM不可用时返回兜底话术而不是报错
func ChatHandler(c *gin.Context) {
	var req struct {
		UserID  uint   `json:"user_id"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(400, gin.H{"error": "消息不能为空"})
		return
	}

	ctx := c.Request.Context()
	response := fallbackReply
	chain, err := buildConversation(ctx, req.UserID)
	if err == nil {
		resp, runErr := chains.Run(ctx, chain, req.Message, chains.WithMaxTokens(500))
		if runErr != nil {
			log.Printf("AI聊天错误: %v", runErr)
		} else {
			response = resp
		}
	} else {
		log.Printf("AI聊天错误: %v", err)
	}

	saveChatRecord(req.UserID, req.Message, response)
	c.JSON(200, gin.H{"message": response})
}

// ChatHistoryHandler 按用户拉取聊天历史，旧的在前
func ChatHistoryHandler(c *gin.Context) {
	userIDParam := c.Query("user_id")
	if userIDParam == "" {
		c.JSON(400, gin.H{"error": "用户ID不能为空"})
		return
	}
	userID, err := strconv.Atoi(userIDParam)
	if err != nil {
		c.JSON(400, gin.H{"error": "用户ID不能为空"})
		return
	}

	var history []db.ChatRecord
	if err := db.GetDB().Where("user_id = ?", userID).
		Order("created_at asc").Find(&history).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"history": history})
}

// ChatStreamHandler websocket流式问答：先逐段回传 delta，结束发 done 帧
func ChatStreamHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket升级失败: %v", err)
		return
	}
	defer conn.Close()

	var req struct {
		UserID  uint   `json:"user_id"`
		Message string `json:"message"`
	}
	if err := conn.ReadJSON(&req); err != nil || req.Message == "" {
		conn.WriteJSON(gin.H{"error": "消息不能为空"})
		return
	}

	ctx := c.Request.Context()
	chain, err := buildConversation(ctx, req.UserID)
	if err != nil {
		log.Printf("AI聊天错误: %v", err)
		conn.WriteJSON(gin.H{"done": true, "message": fallbackReply})
		saveChatRecord(req.UserID, req.Message, fallbackReply)
		return
	}

	response, err := chains.Run(ctx, chain, req.Message,
		chains.WithMaxTokens(500),
		chains.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			return conn.WriteJSON(gin.H{"delta": string(chunk)})
		}))
	if err != nil {
		log.Printf("AI聊天错误: %v", err)
		response = fallbackReply
	}

	conn.WriteJSON(gin.H{"done": true, "message": response})
	saveChatRecord(req.UserID, req.Message, response)
}
