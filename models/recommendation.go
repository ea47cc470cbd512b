package models

// Resource 教学资源条目
type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"` // Workshop / EdTech Tool / Teaching Strategy
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Recommendation 推荐条目，模型返回的字段原样保留（包括目录之外的字段）
type Recommendation map[string]any

// ToRecommendation 将资源转换为推荐条目
func (r Resource) ToRecommendation() Recommendation {
	return Recommendation{
		"title":       r.Title,
		"type":        r.Type,
		"description": r.Description,
		"link":        r.Link,
	}
}

// Title 返回推荐条目的标题，标题不是字符串时返回空串
func (r Recommendation) Title() string {
	title, _ := r["title"].(string)
	return title
}

// RecommendationResult 推荐结果：一段教学建议加若干资源推荐
type RecommendationResult struct {
	Insight         string           `json:"insight"`
	Recommendations []Recommendation `json:"recommendations"`
}
