package main

import (
	"log"

	"github.com/liyedanpdx/WEB602-Project-2/internal/transport/http"
)

func main() {
	if err := http.Run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
