// Package docs хранит OpenAPI-описание в формате swag. Файл ведется вручную
// и должен совпадать с аннотациями @Router в internal/handlers.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Service info",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Static liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/users/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Account and optional profile", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Email already registered", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/users/login": {
            "post": {
                "description": "OAuth2 password form. The email goes in the username field.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Obtain an access token",
                "parameters": [
                    {"type": "string", "description": "Email", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/upload/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "List the caller's uploads",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UploadResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload a .fit file with session metadata",
                "parameters": [
                    {"type": "file", "description": ".fit activity file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "race, training or recovery", "name": "session_type", "in": "formData"},
                    {"type": "string", "description": "Race name", "name": "race_name", "in": "formData"},
                    {"type": "string", "description": "Free text", "name": "notes", "in": "formData"},
                    {"type": "integer", "description": "1-5", "name": "fatigue_level", "in": "formData"},
                    {"type": "integer", "description": "1-5", "name": "general_sensation", "in": "formData"},
                    {"type": "integer", "description": "1-5", "name": "sleep_quality", "in": "formData"},
                    {"type": "string", "description": "well_hydrated, mildly_dehydrated or uncertain", "name": "hydration_status", "in": "formData"},
                    {"type": "string", "description": "sunny, cloudy, rain, fog, snow or windy", "name": "weather_condition", "in": "formData"},
                    {"type": "string", "description": "dry, muddy, icy, rocky or mixed", "name": "trail_condition", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UploadResponse"}},
                    "400": {"description": "Only .fit files are allowed", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperrors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "domain": {"type": "string"},
                "message": {"type": "string"},
                "details": {}
            }
        },
        "apperrors.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "error": {"$ref": "#/definitions/apperrors.AppError"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8, "description": "8+ characters, at most 72 bytes"},
                "body_weight": {"type": "number"},
                "age": {"type": "integer", "minimum": 1, "maximum": 120},
                "gender": {"type": "string", "enum": ["male", "female", "other", "prefer_not_to_say"]},
                "vo2max": {"type": "number"}
            }
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "body_weight": {"type": "number"},
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "vo2max": {"type": "number"},
                "created_at": {"type": "string"}
            }
        },
        "dto.UploadResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "filename": {"type": "string"},
                "filepath": {"type": "string"},
                "upload_date": {"type": "string"},
                "session_type": {"type": "string"},
                "race_name": {"type": "string"},
                "notes": {"type": "string"},
                "fatigue_level": {"type": "integer"},
                "general_sensation": {"type": "integer"},
                "sleep_quality": {"type": "integer"},
                "hydration_status": {"type": "string"},
                "weather_condition": {"type": "string"},
                "trail_condition": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Trail Fit Uploader API",
	Description:      "Upload and catalogue .fit activity files with session metadata.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
