package logic

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"liiuxue-backend/internal/common"

	"github.com/gin-gonic/gin"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// sanitizeFilename 只保留字母、数字、点、横线和下划线
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, name)
}

// UploadImageHandler 图片上传接口，限制类型与大小，文件名加时间戳防冲突
func UploadImageHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "没有文件"})
		return
	}
	if file.Filename == "" {
		c.JSON(400, gin.H{"error": "没有选择文件"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(400, gin.H{"error": "不支持的文件类型"})
		return
	}
	if file.Size > common.MaxUploadSize {
		c.JSON(400, gin.H{"error": "文件大小超过5MB限制"})
		return
	}

	if err := os.MkdirAll(common.UploadDir, 0o755); err != nil {
		log.Printf("创建上传目录失败: %v", err)
		c.JSON(500, gin.H{"error": "上传失败"})
		return
	}

	timestamp := time.Now().Format("20060102150405")
	newName := timestamp + "_" + sanitizeFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(common.UploadDir, newName)); err != nil {
		log.Printf("图片上传错误: %v", err)
		c.JSON(500, gin.H{"error": "上传失败"})
		return
	}

	c.JSON(200, gin.H{
		"message": "图片上传成功",
		"url":     common.UploadURLPrefix + "/" + newName,
	})
}
