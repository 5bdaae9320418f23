package main

import (
	"flag"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/app"
	"github.com/Astemirdum/lab-lending/lending/config"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	opts := []config.Option{config.WithWriteTimeout(time.Minute)}
	if *configFile != "" {
		opts = append(opts, config.WithFile(*configFile))
	}
	cfg := config.NewConfig(opts...)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", err)
	}
}
