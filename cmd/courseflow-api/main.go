package main

import (
	"log"
	"os"

	app "github.com/courseflow/courseflow-api/pkg/api"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Can't load .env: %s", err)
	}

	a := app.NewApp()
	a.RunForever()
}
