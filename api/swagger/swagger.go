package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SICEI API",
        "description": "Student and professor records with sessions, profile photos and notifications.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student records"},
        {"name": "Professors", "description": "Professor records"},
        {"name": "Sessions", "description": "Student login sessions"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "description": "Any supplied id is ignored. Unknown keys reject the whole payload.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/FieldErrors"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "description": "Partial update. Allowed keys: id, nombres, apellidos, matricula, promedio.",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/students/{id}/profile-photo": {
            "post": {
                "tags": ["Students"],
                "summary": "Upload profile photo",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "foto", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Invalid file", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}},
                    "503": {"description": "Storage disabled", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/students/{id}/notify": {
            "post": {
                "tags": ["Students"],
                "summary": "Broadcast student summary",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/NotificationResult"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}},
                    "503": {"description": "Publisher disabled", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/students/{id}/session/login": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Open a session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SessionLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionLoginResponse"}},
                    "400": {"description": "Invalid credential", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/students/{id}/session/verify": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Verify a session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SessionStringRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionStatus"}},
                    "400": {"description": "Invalid session", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/students/{id}/session/logout": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Close a session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SessionStringRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Invalid session", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/professors": {
            "get": {
                "tags": ["Professors"],
                "summary": "List professors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Professor"}}}
                }
            },
            "post": {
                "tags": ["Professors"],
                "summary": "Create professor",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Professor"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Professor"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/FieldErrors"}}
                }
            }
        },
        "/professors/{id}": {
            "get": {
                "tags": ["Professors"],
                "summary": "Get professor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Professor"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["Professors"],
                "summary": "Update professor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Professor"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Professor"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["Professors"],
                "summary": "Delete professor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombres": {"type": "string", "x-nullable": true},
                "apellidos": {"type": "string", "x-nullable": true},
                "matricula": {"type": "string", "x-nullable": true},
                "promedio": {"type": "number", "x-nullable": true},
                "fotoPerfilUrl": {"type": "string", "x-nullable": true},
                "password": {"type": "string", "x-nullable": true, "description": "Always null in responses"}
            }
        },
        "StudentInput": {
            "type": "object",
            "properties": {
                "nombres": {"type": "string"},
                "apellidos": {"type": "string"},
                "matricula": {"type": "string", "example": "A123"},
                "promedio": {"type": "number", "minimum": 0, "maximum": 100},
                "password": {"type": "string"}
            }
        },
        "Professor": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "numeroEmpleado": {"type": "integer", "x-nullable": true},
                "nombres": {"type": "string", "x-nullable": true},
                "apellidos": {"type": "string", "x-nullable": true},
                "horasClase": {"type": "integer", "x-nullable": true}
            }
        },
        "SessionLoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"}
            }
        },
        "SessionStringRequest": {
            "type": "object",
            "properties": {
                "sessionString": {"type": "string"}
            }
        },
        "SessionLoginResponse": {
            "type": "object",
            "properties": {
                "sessionString": {"type": "string"},
                "sessionId": {"type": "string"},
                "studentId": {"type": "integer"},
                "timestamp": {"type": "integer"}
            }
        },
        "SessionStatus": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "studentId": {"type": "integer"},
                "timestamp": {"type": "integer"},
                "active": {"type": "boolean"}
            }
        },
        "NotificationResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "messageId": {"type": "string"}
            }
        },
        "Message": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "FieldErrors": {
            "type": "object",
            "properties": {
                "errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
