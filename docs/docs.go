// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/accommodations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accommodations"],
                "summary": "List accommodation offers",
                "parameters": [
                    {"type": "integer", "description": "Minimum number of guests", "name": "capacity", "in": "query"},
                    {"type": "string", "description": "Region", "name": "location.region", "in": "query"},
                    {"type": "string", "description": "City", "name": "location.city", "in": "query"},
                    {"type": "integer", "description": "Zero-based page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "size", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "field[,asc|desc]", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AccommodationPageResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/api/accommodations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accommodations"],
                "summary": "Get an accommodation offer",
                "parameters": [{"type": "integer", "description": "Offer ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AccommodationResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/api/accommodations/{region}/{city}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accommodations"],
                "summary": "List accommodation offers in a city",
                "parameters": [
                    {"type": "string", "description": "Region", "name": "region", "in": "path", "required": true},
                    {"type": "string", "description": "City", "name": "city", "in": "path", "required": true},
                    {"type": "integer", "description": "Minimum number of guests", "name": "capacity", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AccommodationPageResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/api/secure/accommodations": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accommodations"],
                "summary": "Create an accommodation offer",
                "parameters": [{"description": "Offer definition", "name": "offer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.AccommodationDefinition"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.AccommodationResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/api/secure/accommodations/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["accommodations"],
                "summary": "Update an accommodation offer",
                "parameters": [
                    {"type": "integer", "description": "Offer ID", "name": "id", "in": "path", "required": true},
                    {"description": "Offer definition", "name": "offer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.AccommodationDefinition"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["accommodations"],
                "summary": "Deactivate an accommodation offer",
                "parameters": [{"type": "integer", "description": "Offer ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/transport": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transport"],
                "summary": "List transport offers",
                "parameters": [
                    {"type": "string", "description": "Origin region", "name": "origin.region", "in": "query"},
                    {"type": "string", "description": "Origin city", "name": "origin.city", "in": "query"},
                    {"type": "string", "description": "Destination region", "name": "destination.region", "in": "query"},
                    {"type": "string", "description": "Destination city", "name": "destination.city", "in": "query"},
                    {"type": "integer", "description": "Minimum number of seats", "name": "capacity", "in": "query"},
                    {"type": "string", "description": "Day of the ride, YYYY-MM-DD", "name": "transportDate", "in": "query"},
                    {"type": "integer", "description": "Zero-based page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "size", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "field[,asc|desc]", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TransportPageResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/api/transport/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transport"],
                "summary": "Get a transport offer",
                "parameters": [{"type": "integer", "description": "Offer ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TransportResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/api/secure/transport": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transport"],
                "summary": "Create a transport offer",
                "parameters": [{"description": "Offer definition", "name": "offer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.TransportDefinition"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.TransportResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/api/secure/transport/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["transport"],
                "summary": "Update a transport offer",
                "parameters": [
                    {"type": "integer", "description": "Offer ID", "name": "id", "in": "path", "required": true},
                    {"description": "Offer definition", "name": "offer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.TransportDefinition"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["transport"],
                "summary": "Deactivate a transport offer",
                "parameters": [{"type": "integer", "description": "Offer ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "domain.Location": {
            "type": "object",
            "properties": {"region": {"type": "string"}, "city": {"type": "string"}}
        },
        "domain.Violation": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "domain.AccommodationDefinition": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "location": {"$ref": "#/definitions/domain.Location"},
                "guests": {"type": "integer"},
                "lengthOfStay": {"type": "string", "enum": ["WEEK_1", "WEEK_2", "MONTH_1", "MONTH_2", "MONTH_3", "LONGER"]}
            }
        },
        "domain.AccommodationOffer": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "status": {"type": "string", "enum": ["ACTIVE", "INACTIVE"]},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "createdDate": {"type": "string"},
                "modifiedDate": {"type": "string"},
                "location": {"$ref": "#/definitions/domain.Location"},
                "guests": {"type": "integer"},
                "lengthOfStay": {"type": "string"}
            }
        },
        "domain.TransportDefinition": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "origin": {"$ref": "#/definitions/domain.Location"},
                "destination": {"$ref": "#/definitions/domain.Location"},
                "capacity": {"type": "integer"},
                "transportDate": {"type": "string", "example": "2022-03-21"}
            }
        },
        "domain.TransportOffer": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "status": {"type": "string", "enum": ["ACTIVE", "INACTIVE"]},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "createdDate": {"type": "string"},
                "modifiedDate": {"type": "string"},
                "origin": {"$ref": "#/definitions/domain.Location"},
                "destination": {"$ref": "#/definitions/domain.Location"},
                "capacity": {"type": "integer"},
                "transportDate": {"type": "string"}
            }
        },
        "controllers.AccommodationResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.AccommodationOffer"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.AccommodationPageResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "content": {"type": "array", "items": {"$ref": "#/definitions/domain.AccommodationOffer"}},
                        "totalElements": {"type": "integer"},
                        "totalPages": {"type": "integer"},
                        "pageNumber": {"type": "integer"},
                        "pageSize": {"type": "integer"}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.TransportResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.TransportOffer"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.TransportPageResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "content": {"type": "array", "items": {"$ref": "#/definitions/domain.TransportOffer"}},
                        "totalElements": {"type": "integer"},
                        "totalPages": {"type": "integer"},
                        "pageNumber": {"type": "integer"},
                        "pageSize": {"type": "integer"}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/domain.Violation"}}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {"data": {}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pomoc UA offers API",
	Description:      "Accommodation and transport offers for people fleeing the war in Ukraine.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
