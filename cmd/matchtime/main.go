package main

import (
	"context"
	"os"

	"github.com/agbru/matchtime/internal/app"
)

func main() {
	application := app.New(os.Stderr)
	os.Exit(application.Run(context.Background(), os.Args[1:], os.Stdout))
}
