package main

import (
	"context"
	"log"

	"rogsuchak-api/api/internal/config"
	handle "rogsuchak-api/api/internal/handle"
	"rogsuchak-api/api/internal/httpserver"
	"rogsuchak-api/api/internal/llm/gemini"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

func main() {
	cfg := config.Load()

	cl, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}
	defer cl.Close()

	h := handle.New(gemini.New(cl, cfg.GeminiModel))

	addr := "0.0.0.0:" + cfg.Port
	log.Fatal(httpserver.Start(addr, httpserver.New(h)))
}
