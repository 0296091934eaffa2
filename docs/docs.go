// Package docs registra a especificação OpenAPI servida em /swagger/doc.json.
// Mantida à mão a partir das anotações dos handlers em internal/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": [],
    "swagger": "2.0",
    "info": {
        "description": "{{.Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Autentica um administrador e retorna um JWT",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/domain.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LoginResult"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Identidade do token atual",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.MeResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/setup": {
            "get": {
                "tags": ["auth"],
                "summary": "Instruções de provisionamento",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SetupInfo"}}}
            }
        },
        "/stats": {
            "get": {
                "tags": ["stats"],
                "summary": "Contagem de sellers, categorias e eventos",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Stats"}},
                    "401": {"description": "Não autorizado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/analytics": {
            "get": {
                "tags": ["stats"],
                "summary": "Contagens gerais e receita de pedidos recebidos",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Analytics"}},
                    "401": {"description": "Não autorizado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/upload": {
            "post": {
                "tags": ["upload"],
                "summary": "Envia um arquivo para o storage",
                "consumes": ["multipart/form-data"],
                "security": [{"ApiKeyAuth": []}],
                "parameters": [
                    {"in": "formData", "name": "file", "type": "file", "required": true},
                    {"in": "formData", "name": "bucket", "type": "string"},
                    {"in": "formData", "name": "folder", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UploadResult"}},
                    "400": {"description": "Arquivo ausente", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/{resource}": {
            "get": {
                "tags": ["resources"],
                "summary": "Lista registros (mais recentes primeiro)",
                "description": "sellers, categories e events são públicos; admins, seller-deletion-requests, seller-balances e seller-balance-transactions exigem token. O ledger devolve no máximo 100 linhas.",
                "parameters": [{"in": "path", "name": "resource", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Não autorizado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}
            },
            "post": {
                "tags": ["resources"],
                "summary": "Cria um registro",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [
                    {"in": "path", "name": "resource", "type": "string", "required": true},
                    {"in": "body", "name": "record", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Criado"},
                    "400": {"description": "Validação", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Não autorizado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/{resource}/{id}": {
            "get": {
                "tags": ["resources"],
                "summary": "Busca um registro",
                "parameters": [
                    {"in": "path", "name": "resource", "type": "string", "required": true},
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}
            },
            "put": {
                "tags": ["resources"],
                "summary": "Atualização parcial",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [
                    {"in": "path", "name": "resource", "type": "string", "required": true},
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "patch", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}
            },
            "delete": {
                "tags": ["resources"],
                "summary": "Remove um registro",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [
                    {"in": "path", "name": "resource", "type": "string", "required": true},
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SuccessResponse"}},
                    "404": {"description": "Não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "category": {"type": "string"}}},
        "domain.SuccessResponse": {"type": "object", "properties": {"success": {"type": "boolean"}}},
        "domain.LoginRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "domain.Principal": {"type": "object", "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}}},
        "domain.LoginResult": {"type": "object", "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/domain.Principal"}}},
        "domain.MeResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/domain.Principal"}}},
        "domain.SetupInfo": {"type": "object", "properties": {"message": {"type": "string"}, "instructions": {"type": "array", "items": {"type": "string"}}, "migrate": {"type": "string"}}},
        "domain.Stats": {"type": "object", "properties": {"sellers": {"type": "integer"}, "categories": {"type": "integer"}, "events": {"type": "integer"}}},
        "domain.Analytics": {"type": "object", "properties": {"sellers": {"type": "integer"}, "categories": {"type": "integer"}, "events": {"type": "integer"}, "users": {"type": "integer"}, "products": {"type": "integer"}, "variants": {"type": "integer"}, "orders": {"type": "integer"}, "revenue": {"type": "number"}}},
        "domain.UploadResult": {"type": "object", "properties": {"success": {"type": "boolean"}, "url": {"type": "string"}, "path": {"type": "string"}}}
    }
}`

// SwaggerInfo guarda os metadados exportados da especificação.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Back-office API",
	Description:      "CRUD administrativo do marketplace com autenticação JWT.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
