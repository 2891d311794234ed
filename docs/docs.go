// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/form": {
            "get": {
                "produces": ["application/json"],
                "summary": "Current form state for the session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/form.View"}}}
            }
        },
        "/form/place": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Replace the form with a selected place",
                "parameters": [{"description": "place from the autocomplete widget", "name": "place", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Place"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.View"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/form/fields/{field}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Edit one field",
                "parameters": [{"type": "string", "description": "field name", "name": "field", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.View"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/form/fields/{field}/touch": {
            "post": {
                "produces": ["application/json"],
                "summary": "Mark a field as visited",
                "parameters": [{"type": "string", "description": "field name", "name": "field", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.View"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/form/submit": {
            "post": {
                "produces": ["application/json"],
                "summary": "Validate and submit the form",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.AddressRecord"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "object", "additionalProperties": {"type": "string"}}}}
                }
            }
        },
        "/api/decompose": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Decompose a place into an address record",
                "parameters": [{"description": "place from the autocomplete widget", "name": "place", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Place"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AddressRecord"}}}
            }
        },
        "/api/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Check an address record",
                "parameters": [{"description": "address", "name": "address", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddressRecord"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/addresses": {
            "get": {
                "produces": ["application/json"],
                "summary": "Search submitted addresses",
                "parameters": [
                    {"type": "string", "description": "full-text query", "name": "q", "in": "query"},
                    {"type": "integer", "description": "max results", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Submission"}}}}
            }
        },
        "/addresses/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Load one submitted address",
                "parameters": [{"type": "string", "description": "submission id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Submission"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.AddressRecord": {
            "type": "object",
            "properties": {
                "addressLine1": {"type": "string"},
                "addressLine2": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "postcode": {"type": "string"},
                "country": {"type": "string"}
            }
        },
        "models.PlaceComponent": {
            "type": "object",
            "properties": {
                "long_name": {"type": "string"},
                "short_name": {"type": "string"},
                "types": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Place": {
            "type": "object",
            "properties": {
                "address_components": {"type": "array", "items": {"$ref": "#/definitions/models.PlaceComponent"}},
                "formatted_address": {"type": "string"}
            }
        },
        "models.Submission": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "address": {"$ref": "#/definitions/models.AddressRecord"},
                "submitted_at": {"type": "string"}
            }
        },
        "form.View": {
            "type": "object",
            "properties": {
                "values": {"$ref": "#/definitions/models.AddressRecord"},
                "touched": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "visible_errors": {"type": "object", "additionalProperties": {"type": "string"}}
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
	Title:            "Address Autocomplete API",
	Description:      "Address form backed by Places autocomplete: decomposition, validation and submission.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
