package main

import (
	"context"
	"log"
	"os"

	"github.com/UkralStul/posts-service/internal/app"
	"github.com/UkralStul/posts-service/internal/config"
	"github.com/UkralStul/posts-service/internal/lambdaproxy"
	"github.com/UkralStul/posts-service/internal/logging"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	// В Lambda нет аргументов командной строки, только окружение.
	cfg, err := config.LoadConfig(nil, os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.NewJSON(os.Stdout, level)

	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	lambda.Start(lambdaproxy.New(a.Handler()).ProxyWithContext)
}
