// Package docs registers the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/creator/{draftId}/first": {
            "get": {
                "produces": ["application/json"],
                "tags": ["creator"],
                "summary": "Get basic course information",
                "parameters": [{"type": "integer", "description": "Draft ID", "name": "draftId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/creator.BasicInfo"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates the draft or overwrites its category, difficulty, name, price, sale and images.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["creator"],
                "summary": "Save basic course information",
                "parameters": [
                    {"type": "integer", "description": "Draft ID", "name": "draftId", "in": "path", "required": true},
                    {"type": "string", "description": "creator.BasicInfoRequest as JSON", "name": "body", "in": "formData", "required": true},
                    {"type": "file", "description": "Course images, in display order", "name": "files", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/creator/{draftId}/second": {
            "get": {
                "produces": ["application/json"],
                "tags": ["creator"],
                "summary": "Get chapters and lectures",
                "parameters": [{"type": "integer", "description": "Draft ID", "name": "draftId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/creator.Outline"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Replaces every chapter and lecture of the draft. One thumbnail file per chapter.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["creator"],
                "summary": "Save chapters and lectures",
                "parameters": [
                    {"type": "integer", "description": "Draft ID", "name": "draftId", "in": "path", "required": true},
                    {"type": "string", "description": "creator.OutlineRequest as JSON", "name": "body", "in": "formData", "required": true},
                    {"type": "file", "description": "Chapter thumbnails, one per chapter", "name": "files", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/creator/{draftId}/third": {
            "get": {
                "produces": ["application/json"],
                "tags": ["creator"],
                "summary": "Get lecture videos and contents",
                "parameters": [{"type": "integer", "description": "Draft ID", "name": "draftId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/creator.LectureContents"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Replaces every lecture video and content item of the draft. lecture_id is the lecture's position in the stage-2 outline.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["creator"],
                "summary": "Save lecture videos and contents",
                "parameters": [
                    {"type": "integer", "description": "Draft ID", "name": "draftId", "in": "path", "required": true},
                    {"type": "string", "description": "creator.LectureContentsRequest as JSON", "name": "body", "in": "formData", "required": true},
                    {"type": "file", "description": "One video per lecture entry", "name": "videos", "in": "formData", "required": true},
                    {"type": "file", "description": "One image per content item, flattened", "name": "images", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/creator/{draftId}/fourth": {
            "get": {
                "produces": ["application/json"],
                "tags": ["creator"],
                "summary": "Get kits",
                "parameters": [{"type": "integer", "description": "Draft ID", "name": "draftId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/creator.Kits"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["creator"],
                "summary": "Save kits",
                "parameters": [
                    {"type": "integer", "description": "Draft ID", "name": "draftId", "in": "path", "required": true},
                    {"type": "string", "description": "creator.KitsRequest as JSON", "name": "body", "in": "formData", "required": true},
                    {"type": "file", "description": "One image per kit", "name": "files", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/creator/{draftId}/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Copies the draft into a published product and deletes the draft.",
                "produces": ["application/json"],
                "tags": ["creator"],
                "summary": "Publish the draft",
                "parameters": [{"type": "integer", "description": "Draft ID", "name": "draftId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/creator.PromoteResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "creator.SubCategory": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}
        },
        "creator.Difficulty": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}
        },
        "creator.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "subCategories": {"type": "array", "items": {"$ref": "#/definitions/creator.SubCategory"}}
            }
        },
        "creator.TemporaryInformation": {
            "type": "object",
            "properties": {
                "mainCategoryId": {"type": "integer"},
                "subCategoryId": {"type": "integer"},
                "difficultyId": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "integer"},
                "sale": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}}
            }
        },
        "creator.BasicInfo": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/creator.Category"}},
                "difficulties": {"type": "array", "items": {"$ref": "#/definitions/creator.Difficulty"}},
                "temporaryInformation": {"$ref": "#/definitions/creator.TemporaryInformation"}
            }
        },
        "creator.LectureOutline": {
            "type": "object",
            "properties": {"lectureId": {"type": "integer"}, "name": {"type": "string"}, "order": {"type": "integer"}}
        },
        "creator.ChapterOutline": {
            "type": "object",
            "properties": {
                "chapterId": {"type": "integer"},
                "name": {"type": "string"},
                "mainImage": {"type": "string"},
                "lectures": {"type": "array", "items": {"$ref": "#/definitions/creator.LectureOutline"}}
            }
        },
        "creator.Outline": {
            "type": "object",
            "properties": {"chapters": {"type": "array", "items": {"$ref": "#/definitions/creator.ChapterOutline"}}}
        },
        "creator.ContentItem": {
            "type": "object",
            "properties": {"image": {"type": "string"}, "description": {"type": "string"}, "order": {"type": "integer"}}
        },
        "creator.LectureContent": {
            "type": "object",
            "properties": {
                "lecture_id": {"type": "integer"},
                "name": {"type": "string"},
                "videoUrl": {"type": "string"},
                "order": {"type": "integer"},
                "content": {"type": "array", "items": {"$ref": "#/definitions/creator.ContentItem"}}
            }
        },
        "creator.ChapterContents": {
            "type": "object",
            "properties": {
                "chapter_id": {"type": "integer"},
                "chapterName": {"type": "string"},
                "chapterOrder": {"type": "integer"},
                "lectures": {"type": "array", "items": {"$ref": "#/definitions/creator.LectureContent"}}
            }
        },
        "creator.LectureContents": {
            "type": "object",
            "properties": {"products": {"type": "array", "items": {"$ref": "#/definitions/creator.ChapterContents"}}}
        },
        "creator.Kit": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "imageUrls": {"type": "array", "items": {"type": "string"}}
            }
        },
        "creator.Kits": {
            "type": "object",
            "properties": {"kits": {"type": "array", "items": {"$ref": "#/definitions/creator.Kit"}}}
        },
        "creator.PromoteResult": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "productId": {"type": "integer"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Creator Service API",
	Description:      "Four-stage course creation wizard with draft promotion.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
