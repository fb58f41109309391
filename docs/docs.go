// Package docs registers the OpenAPI description of the JSON API with swag.
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
        "/ratelimits": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Live namespaces of the caller's workspace.",
                "produces": ["application/json"],
                "tags": ["ratelimits"],
                "summary": "List rate limit namespaces",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.namespaceListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ratelimits"],
                "summary": "Create a rate limit namespace",
                "parameters": [
                    {
                        "description": "Namespace",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.namespaceRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.namespaceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/ratelimits/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["ratelimits"],
                "summary": "Delete a rate limit namespace",
                "parameters": [
                    {"type": "string", "description": "Namespace ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.namespaceRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "handler.namespaceResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}}
        },
        "handler.namespaceListResponse": {
            "type": "object",
            "properties": {
                "workspaceId": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.namespaceResponse"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Unkey Dashboard API",
	Description:      "Rate limit namespace management for the dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
