// Command hash_password prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hash_password -password 's3cret'
//	echo 's3cret' | go run ./cmd/hash_password
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/repair_shop_app/internal/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	password := flag.String("password", "", "admin password; read from stdin when empty")
	flag.Parse()

	if *password == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logger.Error("Failed to read password from stdin", slog.String("error", err.Error()))
			os.Exit(1)
		}
		*password = strings.TrimRight(line, "\r\n")
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(hash)
}
