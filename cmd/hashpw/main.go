// File: cmd/hashpw/main.go
// 產生 ADMIN_PASSWORD_HASH 用的 bcrypt 哈希
package main

import (
	"fmt"
	"log"
	"os"

	"motofix-admin/internal/service"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("用法: hashpw <password>")
	}
	hash, err := service.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("哈希失敗: %v", err)
	}
	fmt.Println(hash)
}
