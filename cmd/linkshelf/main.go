package main

import (
	"context"
	"log"

	"github.com/MrSnakeDoc/linkshelf/internal/app"
)

func main() {
	a, err := app.New(context.Background())
	if err != nil {
		log.Fatalf("❌ linkshelf failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ linkshelf failed: %v", err)
	}
}
