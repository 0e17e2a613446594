package main

import (
	stdLog "log"

	"github.com/joho/godotenv"

	"github.com/shareit-lab/shareit-service/server/app"
	"github.com/shareit-lab/shareit-service/server/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", err)
	}
	cfg := config.NewConfig()

	app.Run(cfg)
}
