package main

import (
	"log"

	"github.com/resfinder/resfinder/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ resfinder failed to start: %v", err)
	}
}
