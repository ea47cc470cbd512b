package repository

import "educator_ai/models"

// educationResources 内置教学资源目录，进程启动时初始化，之后只读
var educationResources = []models.Resource{
	{
		Title:       "Workshop: Digital Pedagogy for Modern Classrooms",
		Type:        "Workshop",
		Description: "Learn how to effectively integrate technology into your teaching practice with hands-on activities and real-world examples.",
		Link:        "https://example.com/digital-pedagogy",
	},
	{
		Title:       "Tool: Nearpod",
		Type:        "EdTech Tool",
		Description: "Interactive lessons, videos, and activities to engage students in any learning environment.",
		Link:        "https://nearpod.com",
	},
	{
		Title:       "Strategy: Think-Pair-Share",
		Type:        "Teaching Strategy",
		Description: "A collaborative learning strategy that encourages student participation through structured discussion.",
		Link:        "https://example.com/think-pair-share",
	},
	{
		Title:       "Workshop: Flipped Classroom Techniques",
		Type:        "Workshop",
		Description: "Learn how to implement flipped classroom strategies to make the most of in-class time.",
		Link:        "https://example.com/flipped-classroom",
	},
	{
		Title:       "Tool: Kahoot!",
		Type:        "EdTech Tool",
		Description: "Game-based learning platform that makes it easy to create, share and play learning games or trivia quizzes.",
		Link:        "https://kahoot.com",
	},
}

// ListResources 返回资源目录的副本，调用方修改返回值不会影响目录本身
func ListResources() []models.Resource {
	resources := make([]models.Resource, len(educationResources))
	copy(resources, educationResources)
	return resources
}
