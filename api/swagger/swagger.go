package swagger

import (
	"strings"

	"github.com/swaggo/swag"
)

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": {{ marshal .Title }},
        "description": {{ marshal .Description }},
        "version": {{ marshal .Version }}
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student registration and active listing"},
        {"name": "System", "description": "Liveness and readiness probes"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "{{ .BasePath }}/students": {
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/StudentEnvelope"}},
                    "400": {"description": "Invalid payload or student", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Student id already taken", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "{{ .BasePath }}/students/active": {
            "get": {
                "tags": ["Students"],
                "summary": "List active students",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer", "default": 1, "minimum": 1},
                    {"name": "size", "in": "query", "type": "integer", "default": 10, "minimum": 1, "maximum": 100}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentListEnvelope"}},
                    "400": {"description": "Invalid pagination", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateStudentRequest": {
            "type": "object",
            "required": ["id", "first_name", "last_name", "status", "age"],
            "properties": {
                "id": {"type": "integer", "format": "int64", "example": 1},
                "first_name": {"type": "string", "example": "Juan"},
                "last_name": {"type": "string", "example": "Pérez"},
                "status": {"type": "string", "enum": ["ACTIVE", "INACTIVE"], "example": "ACTIVE"},
                "age": {"type": "integer", "minimum": 1, "maximum": 150, "example": 25}
            }
        },
        "StudentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "status": {"type": "string", "enum": ["ACTIVE", "INACTIVE"]},
                "age": {"type": "integer"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "enum": ["INVALID_STUDENT", "STUDENT_ALREADY_EXISTS", "INVALID_PAGINATION", "INVALID_PAYLOAD", "NOT_FOUND", "SERVICE_UNAVAILABLE", "INTERNAL_ERROR"]},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "StudentEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/StudentResponse"},
                "meta": {"type": "object"}
            }
        },
        "StudentListEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/StudentResponse"}
                },
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds the values rendered into the document. BasePath is the
// API prefix of the student routes; probes are served from the root, so the
// document's own basePath stays "/".
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Students API",
	Description:      "Registers students and lists the active ones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

// SetAPIPrefix points the documented student routes at prefix.
func SetAPIPrefix(prefix string) {
	SwaggerInfo.BasePath = ""
	if trimmed := strings.Trim(prefix, "/"); trimmed != "" {
		SwaggerInfo.BasePath = "/" + trimmed
	}
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
