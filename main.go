package main

import (
	"log"
	"os"

	"liiuxue-backend/internal/db"
	"liiuxue-backend/internal/logic"
)

func main() {
	db.InitDB()

	// 初始化默认数据（幂等，重复启动无副作用）
	if err := db.SeedDefaults(db.GetDB()); err != nil {
		log.Fatalf("初始化默认数据失败: %v", err)
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// 启动Gin路由
	router := logic.SetupRouter()
	router.Run(addr)
}
