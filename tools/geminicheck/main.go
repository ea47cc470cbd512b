// geminicheck 检查Gemini API Key和模型是否可用，并用示例问题跑一次完整的推荐流程
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"educator_ai/config"
	"educator_ai/repository"
	"educator_ai/services"
)

func main() {
	query := flag.String("query", "How can I make my online classes more engaging?", "示例问题")
	timeout := flag.Duration("timeout", 2*time.Minute, "整体超时")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := services.NewGeminiClient(cfg)

	// 列出可用模型
	models, err := client.ListModels(ctx)
	if err != nil {
		fmt.Printf("Error listing models: %v\n", err)
	} else {
		fmt.Println("\nAvailable models:")
		for _, m := range models {
			fmt.Printf("- %s\n", m)
		}
	}

	// 简单生成测试，失败时改用备用模型
	fmt.Printf("\nAttempting to use model: %s\n", client.Model())
	text, model, err := client.GenerateWithFallback(ctx, "Explain how AI works in a few words")
	if err != nil {
		log.Fatalf("Error generating content: %v", err)
	}
	fmt.Printf("\nResponse from %s:\n%s\n", model, text)

	// 完整推荐流程
	assembler := services.NewRecommendationAssembler(client, repository.ListResources())
	result := assembler.GetRecommendations(ctx, *query)
	fmt.Println("\nInsight:", result.Insight)
	fmt.Println("\nRecommendations:")
	for _, rec := range result.Recommendations {
		fmt.Printf("- %s (%v): %v\n", rec.Title(), rec["type"], rec["description"])
	}
}
