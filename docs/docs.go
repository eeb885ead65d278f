// Package docs holds the swagger document for the API. Regenerate with
// `swag init -g cmd/pizza-api/main.go` after changing handler annotations.
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
        "/api/pizzas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pizzas"],
                "summary": "List pizzas with their size prices",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Pizza"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/pizza-of-the-day": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pizzas"],
                "summary": "Pizza of the day",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.Pizza"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List all orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/order": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order by query id",
                "parameters": [
                    {"type": "integer", "description": "Order ID", "name": "id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Receipt"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order",
                "parameters": [
                    {"description": "Cart", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/order.CreateOrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/past-orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Recent orders, 20 per page, newest first",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page (1-based)", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/past-order/{orderId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get a past order",
                "parameters": [
                    {"type": "integer", "description": "Order ID", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Receipt"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/contact": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit the contact form",
                "parameters": [
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/contact.Message"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.Pizza": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "bbq_ckn"},
                "name": {"type": "string", "example": "The Barbecue Chicken Pizza"},
                "category": {"type": "string", "example": "Chicken"},
                "description": {"type": "string"},
                "image": {"type": "string", "example": "/public/pizzas/bbq_ckn.webp"},
                "sizes": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "contact.Message": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Ada"},
                "email": {"type": "string", "example": "ada@example.com"},
                "message": {"type": "string", "example": "Do you deliver on Sundays?"}
            }
        },
        "httpx.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "order not found"}
            }
        },
        "order.CartLine": {
            "type": "object",
            "properties": {
                "pizza": {"type": "object", "properties": {"id": {"type": "string", "example": "bbq_ckn"}}},
                "size": {"type": "string", "example": "M"}
            }
        },
        "order.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "cart": {"type": "array", "items": {"$ref": "#/definitions/order.CartLine"}}
            }
        },
        "order.CreateOrderResponse": {
            "type": "object",
            "properties": {
                "orderId": {"type": "integer", "example": 21351}
            }
        },
        "order.Order": {
            "type": "object",
            "properties": {
                "orderId": {"type": "integer"},
                "date": {"type": "string", "example": "2024-05-01"},
                "time": {"type": "string", "example": "18:30:00"}
            }
        },
        "order.Item": {
            "type": "object",
            "properties": {
                "pizzaTypeId": {"type": "string"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "size": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "number"},
                "total": {"type": "number"},
                "image": {"type": "string"}
            }
        },
        "order.Receipt": {
            "type": "object",
            "properties": {
                "order": {
                    "type": "object",
                    "properties": {
                        "orderId": {"type": "integer"},
                        "date": {"type": "string"},
                        "time": {"type": "string"},
                        "total": {"type": "number"}
                    }
                },
                "orderItems": {"type": "array", "items": {"$ref": "#/definitions/order.Item"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pizza API",
	Description:      "Menu, pizza of the day, orders and contact form for the pizza storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
