package main

import (
	"github.com/joho/godotenv"

	"foodfinder/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
