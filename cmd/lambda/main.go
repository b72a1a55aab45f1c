package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/config"
	"github.com/saulo-duarte/grammar-quiz-lambda/internal/container"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}

	adapter := chiadapter.New(c.Router)
	lambda.Start(adapter.ProxyWithContext)
}
