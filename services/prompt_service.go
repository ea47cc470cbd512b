package services

import (
	"educator_ai/models"
	"fmt"
	"strings"
)

// formatResources 将资源目录格式化为提示词中的资源列表，每行一个资源，保持目录顺序
func formatResources(resources []models.Resource) string {
	lines := make([]string, 0, len(resources))
	for _, r := range resources {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s", r.Title, r.Type, r.Description))
	}
	return strings.Join(lines, "\n")
}

// buildRecommendationPrompt 构建教学建议提示词
func buildRecommendationPrompt(userInput, resources string) string {
	return fmt.Sprintf(`You are an AI teaching assistant helping educators improve their teaching methods and find resources.

User's question: %s

Based on the user's question, provide:
1. A brief, helpful insight or advice (2-3 sentences)
2. 3-5 specific resource recommendations from the available resources

Format your response as a JSON object with the following structure:
{
    "insight": "Your teaching insight here...",
    "recommendations": [
        {
            "title": "Resource Title",
            "type": "Resource Type",
            "description": "Brief description of the resource",
            "link": "URL or reference to the resource"
        }
    ]
}

Available resources:
%s

Response:
`, userInput, resources)
}
