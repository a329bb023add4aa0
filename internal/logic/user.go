package logic

import (
	"strconv"

	"liiuxue-backend/internal/db"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// parseIDParam 解析路径中的数字ID，非法ID视为资源不存在
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(404, gin.H{"error": "资源不存在"})
		return 0, false
	}
	return uint(id), true
}

// RegisterHandler 用户注册
func RegisterHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(400, gin.H{"error": "用户名和密码不能为空"})
		return
	}

	var existing db.User
	if err := db.GetDB().Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(400, gin.H{"error": "用户名已存在"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "密码处理失败"})
		return
	}
	user := db.User{Username: req.Username, Password: string(hashed)}
	if err := db.GetDB().Create(&user).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	c.JSON(201, gin.H{"message": "注册成功", "user": user})
}

// LoginHandler 用户登录。用户不存在与密码错误返回同一个401，不泄露哪一项错了
func LoginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(401, gin.H{"error": "用户名或密码错误"})
		return
	}

	var user db.User
	err := db.GetDB().Where("username = ?", req.Username).First(&user).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(401, gin.H{"error": "用户名或密码错误"})
		return
	}

	c.JSON(200, gin.H{"message": "登录成功", "user": user})
}

// ChangePasswordHandler 修改密码，旧密码校验通过后才接受新密码
func ChangePasswordHandler(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OldPassword == "" || req.NewPassword == "" {
		c.JSON(400, gin.H{"error": "旧密码和新密码不能为空"})
		return
	}

	var user db.User
	if err := db.GetDB().First(&user, userID).Error; err != nil {
		c.JSON(404, gin.H{"error": "用户不存在"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		c.JSON(401, gin.H{"error": "旧密码不正确"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "密码处理失败"})
		return
	}
	user.Password = string(hashed)
	if err := db.GetDB().Save(&user).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	c.JSON(200, gin.H{"message": "密码修改成功"})
}

// GetUsersHandler 返回所有用户，包括管理员
func GetUsersHandler(c *gin.Context) {
	var users []db.User
	if err := db.GetDB().Find(&users).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"users": users})
}

// GetUserHandler 获取单个用户信息
func GetUserHandler(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var user db.User
	if err := db.GetDB().First(&user, userID).Error; err != nil {
		c.JSON(404, gin.H{"error": "用户不存在"})
		return
	}
	c.JSON(200, gin.H{"user": user})
}

// UpdateUserHandler 更新用户管理员状态（仅 is_admin 字段，传了才更新）
func UpdateUserHandler(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req struct {
		IsAdmin *bool `json:"is_admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "请求格式错误"})
		return
	}

	var user db.User
	if err := db.GetDB().First(&user, userID).Error; err != nil {
		c.JSON(404, gin.H{"error": "用户不存在"})
		return
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
		if err := db.GetDB().Model(&user).Update("is_admin", *req.IsAdmin).Error; err != nil {
			c.JSON(500, gin.H{"error": "db error"})
			return
		}
	}

	c.JSON(200, gin.H{"message": "用户更新成功", "user": user})
}

// DeleteUserHandler 删除用户
func DeleteUserHandler(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var user db.User
	if err := db.GetDB().First(&user, userID).Error; err != nil {
		c.JSON(404, gin.H{"error": "用户不存在"})
		return
	}
	if err := db.GetDB().Delete(&user).Error; err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": "用户删除成功"})
}

// requireAdmin 按调用方用户ID校验管理员身份，用于主题写接口
func requireAdmin(c *gin.Context, userID uint) bool {
	if userID == 0 {
		c.JSON(400, gin.H{"error": "需要用户ID"})
		return false
	}
	var user db.User
	err := db.GetDB().First(&user, userID).Error
	if err == gorm.ErrRecordNotFound || (err == nil && !user.IsAdmin) {
		c.JSON(403, gin.H{"error": "权限不足"})
		return false
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return false
	}
	return true
}
