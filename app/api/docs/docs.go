// Package docs registers the swagger document served at /swagger/*.
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
        "/card/render": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/html"],
                "tags": ["card"],
                "summary": "Render a card from a supplied token record",
                "parameters": [
                    {
                        "description": "token record",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/card.TokenRecord"}
                    }
                ],
                "responses": {
                    "200": {"description": "html fragment", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/delivery.JsonResponse"}}
                }
            }
        },
        "/card/{chainId}/{contract}/{tokenId}": {
            "get": {
                "produces": ["text/html"],
                "tags": ["card"],
                "summary": "Render the card of a token",
                "parameters": [
                    {"type": "integer", "description": "chain id", "name": "chainId", "in": "path", "required": true},
                    {"type": "string", "description": "contract address", "name": "contract", "in": "path", "required": true},
                    {"type": "string", "description": "token id", "name": "tokenId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "html fragment", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/delivery.JsonResponse"}}
                }
            }
        },
        "/card/{chainId}/{contract}/{tokenId}/view": {
            "get": {
                "produces": ["application/json"],
                "tags": ["card"],
                "summary": "Get the display tree of a token card",
                "parameters": [
                    {"type": "integer", "description": "chain id", "name": "chainId", "in": "path", "required": true},
                    {"type": "string", "description": "contract address", "name": "contract", "in": "path", "required": true},
                    {"type": "string", "description": "token id", "name": "tokenId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/delivery.JsonResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/card.View"}}}
                            ]
                        }
                    },
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/delivery.JsonResponse"}}
                }
            }
        },
        "/card/{chainId}/{contract}/{tokenId}/cache": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["card"],
                "summary": "Drop the cached card of a token",
                "description": "Other replicas may serve their local copy for up to card.localCacheTtl.",
                "parameters": [
                    {"type": "integer", "description": "chain id", "name": "chainId", "in": "path", "required": true},
                    {"type": "string", "description": "contract address", "name": "contract", "in": "path", "required": true},
                    {"type": "string", "description": "token id", "name": "tokenId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/delivery.JsonResponse"}}
                }
            }
        }
    },
    "definitions": {
        "card.Image": {
            "type": "object",
            "properties": {
                "class": {"type": "string"},
                "src": {"type": "string"}
            }
        },
        "card.TokenMetadata": {
            "type": "object",
            "properties": {
                "image": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "card.TokenRecord": {
            "type": "object",
            "properties": {
                "metadata": {"$ref": "#/definitions/card.TokenMetadata"},
                "owner": {"type": "string"}
            }
        },
        "card.View": {
            "type": "object",
            "properties": {
                "class": {"type": "string"},
                "image": {"$ref": "#/definitions/card.Image"},
                "ownerLabel": {"type": "string"},
                "ownerLine": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "delivery.JsonResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "status": {"type": "string"}
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
	Title:            "NFT Card API",
	Description:      "Renders NFT cards as html fragments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
