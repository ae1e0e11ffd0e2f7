// Package docs registers the OpenAPI document served at /swagger. It mirrors
// the swag annotations on the handlers and must be kept in step with them.
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
        "/register": {
            "post": {
                "description": "Register a USER account and receive a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"description": "User registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "200": {"description": "User registered and token generated", "schema": {"$ref": "#/definitions/response.TokenBody"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Authenticate a user and get a token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [{"description": "User login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "User authenticated and token generated", "schema": {"$ref": "#/definitions/response.TokenBody"}},
                    "401": {"description": "Password did not match", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Email not found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/login/admin": {
            "post": {
                "description": "Authenticate an ADMIN user and get a token. No user record is returned.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login admin",
                "parameters": [{"description": "Admin login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "Admin authenticated and token generated", "schema": {"$ref": "#/definitions/response.TokenBody"}},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/users": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Create a USER account on behalf of someone else. Requires an ADMIN token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create a user",
                "parameters": [{"description": "User data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "200": {"description": "User created", "schema": {"$ref": "#/definitions/response.Body"}},
                    "403": {"description": "Not an admin", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get the authenticated user's profile information",
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Get user profile",
                "responses": {
                    "200": {"description": "User profile", "schema": {"$ref": "#/definitions/response.Body"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Update the authenticated user's name and/or picture",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Edit user profile",
                "parameters": [{"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProfileRequest"}}],
                "responses": {
                    "200": {"description": "Updated profile", "schema": {"$ref": "#/definitions/response.Body"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/categories": {
            "get": {
                "description": "List live categories, newest first, optionally filtered by name prefix and type",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "parameters": [
                    {"type": "string", "description": "Name prefix", "name": "name", "in": "query"},
                    {"type": "string", "description": "Category type (income/expense)", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "List of categories", "schema": {"$ref": "#/definitions/response.Body"}}
                }
            },
            "post": {
                "description": "Create a category. The slug is derived from the name.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [{"description": "Category details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateCategoryRequest"}}],
                "responses": {
                    "200": {"description": "Category created", "schema": {"$ref": "#/definitions/response.Body"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Soft-delete the listed categories owned by the caller (admins may also delete system categories). Returns the number of rows deleted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Delete categories",
                "parameters": [{"description": "Category IDs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.DeleteRequest"}}],
                "responses": {
                    "200": {"description": "Number of categories deleted", "schema": {"$ref": "#/definitions/response.Body"}}
                }
            }
        },
        "/categories/bulk": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Copy every predefined category to the authenticated user in one step",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create predefined categories",
                "responses": {
                    "200": {"description": "Categories created", "schema": {"$ref": "#/definitions/response.Body"}}
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "description": "Get a live category with its budget sub-categories",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get a category",
                "parameters": [{"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Category", "schema": {"$ref": "#/definitions/response.Body"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Patch a category owned by the caller (admins may also patch system categories). A new name regenerates the slug.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Update a category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateCategoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "Category updated", "schema": {"$ref": "#/definitions/response.Body"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List the authenticated user's live transactions, newest first",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Items per page", "name": "page_size", "in": "query"},
                    {"type": "string", "description": "Description prefix", "name": "description", "in": "query"},
                    {"type": "string", "description": "Category ID", "name": "category_id", "in": "query"},
                    {"type": "string", "description": "Wallet ID", "name": "wallet_id", "in": "query"},
                    {"type": "string", "description": "Earliest date (YYYY-MM-DD or RFC 3339)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Latest date, inclusive (YYYY-MM-DD covers the whole day, or RFC 3339)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Page of transactions", "schema": {"$ref": "#/definitions/response.Body"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Record a transaction. Amount is in minor currency units; date defaults to now.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "parameters": [{"description": "Transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}],
                "responses": {
                    "200": {"description": "Transaction created", "schema": {"$ref": "#/definitions/response.Body"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Soft-delete the listed transactions of the authenticated user. Returns the number of rows deleted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Delete transactions",
                "parameters": [{"description": "Transaction IDs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.DeleteRequest"}}],
                "responses": {
                    "200": {"description": "Number of transactions deleted", "schema": {"$ref": "#/definitions/response.Body"}}
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get one of the authenticated user's live transactions with its category",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Get a transaction",
                "parameters": [{"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Transaction", "schema": {"$ref": "#/definitions/response.Body"}},
                    "404": {"description": "Transaction not found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Patch one of the authenticated user's live transactions",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Update a transaction",
                "parameters": [
                    {"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateTransactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Transaction updated", "schema": {"$ref": "#/definitions/response.Body"}},
                    "404": {"description": "Transaction not found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string", "maxLength": 255, "example": "alice@example.com"},
                "name": {"type": "string", "maxLength": 100, "example": "Alice"},
                "password": {"type": "string", "maxLength": 72, "example": "s3cret-pass"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "s3cret-pass"}
            }
        },
        "handlers.ProfileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 100, "example": "Alice Smith"},
                "picture": {"type": "string", "example": "https://example.com/alice.png"}
            }
        },
        "handlers.CreateCategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "icon": {"type": "string", "example": "food.png"},
                "name": {"type": "string", "maxLength": 100, "example": "Food"},
                "type": {"type": "string", "enum": ["income", "expense"], "example": "expense"},
                "user_id": {"type": "string"}
            }
        },
        "handlers.UpdateCategoryRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 100, "example": "Groceries"},
                "picture": {"type": "string", "example": "groceries.png"},
                "type": {"type": "string", "enum": ["income", "expense"], "example": "expense"}
            }
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "minimum": 0, "example": 45000},
                "budget_id": {"type": "string"},
                "category_id": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string", "example": "Lunch with friends"},
                "spent_at": {"type": "string"},
                "wallet_id": {"type": "string"}
            }
        },
        "handlers.UpdateTransactionRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "minimum": 0},
                "budget_id": {"type": "string"},
                "category_id": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "spent_at": {"type": "string"},
                "wallet_id": {"type": "string"}
            }
        },
        "handlers.DeleteRequest": {
            "type": "object",
            "required": ["ids"],
            "properties": {
                "ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.Body": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {"type": "boolean"}
            }
        },
        "response.TokenBody": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {"type": "boolean"},
                "token": {"type": "string"},
                "type": {"type": "string", "example": "Bearer"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "message": {},
                "success": {"type": "boolean"}
            }
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Dompet API",
	Description:      "Dompet is a personal finance backend for tracking categories and transactions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
