package logic

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"liiuxue-backend/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestRouter 用内存sqlite搭一套完整环境：建表、灌默认数据、注册路由
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// 内存库跟着连接走，必须限制为单连接
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.SeedDefaults(gormDB); err != nil {
		t.Fatalf("seed: %v", err)
	}
	db.SetDB(gormDB)

	return SetupRouter()
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reader = bytes.NewBuffer(jsonBody)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

// adminUserID 启动时内置的管理员账号ID
func adminUserID(t *testing.T) uint {
	var admin db.User
	err := db.GetDB().Where("username = ?", "admin").First(&admin).Error
	assert.NoError(t, err)
	return admin.ID
}

// 测试健康检查接口
func TestPingHandler(t *testing.T) {
	router := setupTestRouter(t)
	w := performRequest(router, "GET", "/ping", nil)

	assert.Equal(t, 200, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "pong", response["message"])
}

// 测试首页
func TestWelcomeHandler(t *testing.T) {
	router := setupTestRouter(t)
	w := performRequest(router, "GET", "/", nil)

	assert.Equal(t, 200, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "Welcome to Liiuxue API", response["message"])
}
