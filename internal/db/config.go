package db

import (
	"fmt"
	"os"
)

type Config struct {
	MySQLDSN string
}

func LoadConfig() *Config {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(127.0.0.1:3306)/liiuxue?charset=utf8mb4&parseTime=True&loc=Local"
	}
	return &Config{
		MySQLDSN: dsn,
	}
}

func (c *Config) Print() {
	fmt.Println("MySQL DSN:", c.MySQLDSN)
}
