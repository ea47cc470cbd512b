package docs

import "github.com/swaggo/swag"

// @title 教师AI助手 API
// @version 1.0
// @description 基于大模型的教学建议和教学资源推荐服务
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /
// @schemes http https

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/chat": {
            "post": {
                "description": "将用户问题发送给大模型，返回一段教学建议和3-5个资源推荐。模型调用或解析失败时返回兜底内容，状态仍为success",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["聊天"],
                "summary": "获取教学建议和资源推荐",
                "parameters": [
                    {
                        "description": "用户消息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ChatRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "成功", "schema": {"$ref": "#/definitions/models.ChatResponse"}},
                    "400": {"description": "参数错误", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "服务器错误", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "服务存活检查",
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "成功", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ChatRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "How can I make my online classes more engaging?"}
            }
        },
        "models.ChatResponse": {
            "type": "object",
            "properties": {
                "insight": {"type": "string", "example": "Try gamified quizzes."},
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/models.Recommendation"}},
                "status": {"type": "string", "example": "success"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "No message provided"},
                "message": {"type": "string"},
                "status": {"type": "string", "example": "error"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Educator AI API is running"},
                "status": {"type": "string", "example": "healthy"}
            }
        },
        "models.Recommendation": {
            "type": "object",
            "additionalProperties": true,
            "properties": {
                "description": {"type": "string"},
                "link": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "教师AI助手 API",
	Description:      "基于大模型的教学建议和教学资源推荐服务",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
