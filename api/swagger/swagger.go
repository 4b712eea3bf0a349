package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Toppers Admin Console API",
        "description": "Operator console for the Toppers learning platform",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Operator sign-in and preferences"},
        {"name": "Content", "description": "Subject, folder and material tree"},
        {"name": "Operators", "description": "Operator registry"},
        {"name": "Dashboard", "description": "Aggregate statistics"},
        {"name": "Students", "description": "Read-only roster"},
        {"name": "Settings", "description": "Maintenance mode"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {"200": {"description": "Ready"}}
            }
        },
        "/status": {
            "get": {
                "tags": ["Settings"],
                "summary": "Public platform status probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Operator sign-in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"},
                    "403": {"description": "Not an operator"}
                }
            }
        },
        "/auth/session": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current operator session",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current session",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Revoked"}}
            }
        },
        "/auth/preferences/theme": {
            "get": {
                "tags": ["Auth"],
                "summary": "Get theme preference",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["Auth"],
                "summary": "Update theme preference",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ThemePreference"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/content/subjects": {
            "get": {
                "tags": ["Content"],
                "summary": "List subjects",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Content"],
                "summary": "Create subject",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubjectDraft"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/content/subjects/{id}": {
            "put": {
                "tags": ["Content"],
                "summary": "Update subject",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubjectDraft"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Content"],
                "summary": "Delete subject and its content tree",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/content/subjects/{id}/reorder": {
            "post": {
                "tags": ["Content"],
                "summary": "Move subject one position",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReorderRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/content/subjects/{id}/children": {
            "get": {
                "tags": ["Content"],
                "summary": "List folders and materials of a scope",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "parent_id", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/content/folders": {
            "post": {
                "tags": ["Content"],
                "summary": "Create folder",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFolderRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/content/folders/{id}": {
            "put": {
                "tags": ["Content"],
                "summary": "Rename folder",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RenameFolderRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Content"],
                "summary": "Delete folder and nested content",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/content/folders/{id}/move": {
            "post": {
                "tags": ["Content"],
                "summary": "Move folder to a new parent",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MoveFolderRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/content/folders/{id}/reorder": {
            "post": {
                "tags": ["Content"],
                "summary": "Move folder one position among siblings",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReorderRequest"}}
                ],
                "responses": {"200": {"description": "Reloaded sibling folders"}}
            }
        },
        "/content/materials": {
            "post": {
                "tags": ["Content"],
                "summary": "Create material",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMaterialRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/content/materials/{id}": {
            "put": {
                "tags": ["Content"],
                "summary": "Update material title and URL",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateMaterialRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Content"],
                "summary": "Delete material",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/content/materials/{id}/reorder": {
            "post": {
                "tags": ["Content"],
                "summary": "Move material one position among siblings",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReorderRequest"}}
                ],
                "responses": {"200": {"description": "Reloaded sibling materials"}}
            }
        },
        "/content/materials/{id}/download": {
            "get": {
                "tags": ["Content"],
                "summary": "Resolve the direct-download link of a PDF material",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "422": {"description": "Material is not a PDF"}
                }
            }
        },
        "/operators": {
            "get": {
                "tags": ["Operators"],
                "summary": "List operators",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Operators"],
                "summary": "Register operator",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOperatorRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/operators/{id}": {
            "delete": {
                "tags": ["Operators"],
                "summary": "Remove operator",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Removed"},
                    "403": {"description": "Operators cannot remove their own account"}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard statistics",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export the student roster",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "File"}}
            }
        },
        "/settings/maintenance": {
            "get": {
                "tags": ["Settings"],
                "summary": "Maintenance settings with effective state",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Save maintenance configuration",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateMaintenanceRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/settings/maintenance/toggle": {
            "post": {
                "tags": ["Settings"],
                "summary": "Flip maintenance mode",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "ThemePreference": {
            "type": "object",
            "required": ["theme"],
            "properties": {
                "theme": {"type": "string", "enum": ["light", "dark"]}
            }
        },
        "SubjectDraft": {
            "type": "object",
            "required": ["name", "code", "category", "target_classes"],
            "properties": {
                "name": {"type": "string"},
                "code": {"type": "string"},
                "category": {"type": "string", "enum": ["Core", "Additional"]},
                "target_classes": {"type": "array", "items": {"type": "string"}},
                "target_streams": {"type": "array", "items": {"type": "string"}},
                "target_exams": {"type": "array", "items": {"type": "string"}},
                "icon_url": {"type": "string"}
            }
        },
        "CreateFolderRequest": {
            "type": "object",
            "required": ["subject_id", "name"],
            "properties": {
                "subject_id": {"type": "string"},
                "parent_id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "RenameFolderRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "MoveFolderRequest": {
            "type": "object",
            "properties": {
                "parent_id": {"type": "string"}
            }
        },
        "CreateMaterialRequest": {
            "type": "object",
            "required": ["subject_id", "title", "type", "url"],
            "properties": {
                "subject_id": {"type": "string"},
                "folder_id": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["pdf", "image", "video"]},
                "url": {"type": "string"}
            }
        },
        "UpdateMaterialRequest": {
            "type": "object",
            "required": ["title", "url"],
            "properties": {
                "title": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "ReorderRequest": {
            "type": "object",
            "required": ["direction"],
            "properties": {
                "direction": {"type": "string", "enum": ["up", "down"]}
            }
        },
        "CreateOperatorRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["founder", "ceo", "owner"]}
            }
        },
        "UpdateMaintenanceRequest": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "message": {"type": "string"},
                "opening_date": {"type": "string", "format": "date-time"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
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

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
