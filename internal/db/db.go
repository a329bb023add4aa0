package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var db *gorm.DB

func GetDB() *gorm.DB {
	return db
}

// SetDB 供测试注入内存数据库
func SetDB(d *gorm.DB) {
	db = d
}

func InitDB() {
	cfg := LoadConfig()
	cfg.Print()

	var err error
	db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	fmt.Println("Connected to MySQL!")

	// 自动迁移表结构
	if err := Migrate(db); err != nil {
		panic("failed to migrate database: " + err.Error())
	}
}

// Migrate 建表，测试库与正式库共用
func Migrate(d *gorm.DB) error {
	return d.AutoMigrate(
		&User{},
		&PolicyTopic{},
		&PolicyDocument{},
		&VisualizationType{},
		&Visualization{},
		&ChatRecord{},
	)
}
