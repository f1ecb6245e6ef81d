// Генерирует bcrypt-хеш для ADMIN_PASSWORD_HASH.
//
// Использование: go run ./cmd/hashpw <password>
package main

import (
	"fmt"
	"os"

	"github.com/Deesus/Swiss-Tournament-Planner/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(1)
	}

	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
