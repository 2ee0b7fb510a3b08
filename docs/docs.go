// Package docs holds the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/get-balance": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Read a balance",
                "parameters": [
                    {"description": "Username", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.getBalanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.balanceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/save-spin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["spins"],
                "summary": "Save a spin result",
                "parameters": [
                    {"description": "Winning number", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.saveSpinRequest"}}
                ],
                "responses": {
                    "201": {"description": "Spin result saved.", "schema": {"type": "string"}},
                    "400": {"description": "Winning number is required.", "schema": {"type": "string"}},
                    "500": {"description": "Error saving spin result.", "schema": {"type": "string"}}
                }
            }
        },
        "/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["accounts"],
                "summary": "Register a new player",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signupRequest"}}
                ],
                "responses": {
                    "201": {"description": "User created successfully", "schema": {"type": "string"}},
                    "400": {"description": "Username already exists", "schema": {"type": "string"}},
                    "500": {"description": "Error inserting user", "schema": {"type": "string"}}
                }
            }
        },
        "/spin-history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["spins"],
                "summary": "Recent spin history",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.spinResponse"}}},
                    "500": {"description": "Error retrieving spin history.", "schema": {"type": "string"}}
                }
            }
        },
        "/update-balance": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Adjust a balance",
                "parameters": [
                    {"description": "Adjustment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateBalanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.updateBalanceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.balanceResponse": {"type": "object", "properties": {"balance": {"type": "integer"}}},
        "handler.getBalanceRequest": {"type": "object", "required": ["username"], "properties": {"username": {"type": "string"}}},
        "handler.loginRequest": {"type": "object", "required": ["password", "username"], "properties": {"password": {"type": "string"}, "username": {"type": "string"}}},
        "handler.loginResponse": {"type": "object", "properties": {"balance": {"type": "integer"}, "message": {"type": "string"}, "token": {"type": "string"}}},
        "handler.messageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handler.saveSpinRequest": {"type": "object", "required": ["winningNumber"], "properties": {"winningNumber": {"type": "integer"}}},
        "handler.signupRequest": {"type": "object", "properties": {"password": {"type": "string"}, "username": {"type": "string"}}},
        "handler.spinResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "spin_time": {"type": "string"}, "winning_number": {"type": "integer"}}},
        "handler.updateBalanceRequest": {"type": "object", "properties": {"amount": {"type": "integer"}, "isAdd": {"type": "boolean"}, "username": {"type": "string"}}},
        "handler.updateBalanceResponse": {"type": "object", "properties": {"balance": {"type": "integer"}, "message": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Roulette API",
	Description:      "Player accounts, balances and spin history for the roulette table.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
