package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Mashkanta Admin API",
        "description": "Admin dashboard backend: meeting scheduling, availability and calendar views",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Meetings", "description": "Meeting scheduling and listing"},
        {"name": "Availability", "description": "Weekly template, date exceptions, agent capacity"},
        {"name": "Calendar", "description": "Rendered day, week and month views"},
        {"name": "Holidays", "description": "Built-in holiday table"}
    ],
    "paths": {
        "/meetings": {
            "get": {
                "tags": ["Meetings"],
                "summary": "List meetings",
                "parameters": [
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"},
                    {"name": "user_id", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Meetings"],
                "summary": "Schedule a meeting",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleMeetingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Rejected by the scheduling rules", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/meetings/{id}": {
            "delete": {
                "tags": ["Meetings"],
                "summary": "Delete meeting",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/availability": {
            "get": {
                "tags": ["Availability"],
                "summary": "Get the availability configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Availability"],
                "summary": "Replace the weekly availability template",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/exceptions": {
            "post": {
                "tags": ["Availability"],
                "summary": "Add a date exception",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExceptionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/exceptions/{id}": {
            "delete": {
                "tags": ["Availability"],
                "summary": "Remove a date exception",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/calendar/day": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Day view with overlap layout",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar/day/export": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Export a day's schedule as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF document"}
                }
            }
        },
        "/calendar/week": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Week view anchored on a date",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar/month": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Month view with per-day counts",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/holidays": {
            "get": {
                "tags": ["Holidays"],
                "summary": "List the known holidays",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ScheduleMeetingRequest": {
            "type": "object",
            "required": ["user_id", "title", "date", "start_time", "end_time"],
            "properties": {
                "user_id": {"type": "string"},
                "title": {"type": "string"},
                "date": {"type": "string", "example": "2025-06-15"},
                "start_time": {"type": "string", "example": "10:00"},
                "end_time": {"type": "string", "example": "11:00"},
                "notes": {"type": "string"}
            }
        },
        "TimeRange": {
            "type": "object",
            "properties": {
                "start": {"type": "string", "example": "09:00"},
                "end": {"type": "string", "example": "17:00"}
            }
        },
        "AvailabilityDay": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "ranges": {"type": "array", "items": {"$ref": "#/definitions/TimeRange"}}
            }
        },
        "UpdateAvailabilityRequest": {
            "type": "object",
            "required": ["week", "agent_count"],
            "properties": {
                "week": {"type": "array", "items": {"$ref": "#/definitions/AvailabilityDay"}},
                "agent_count": {"type": "integer", "minimum": 1},
                "block_holidays": {"type": "boolean"}
            }
        },
        "CreateExceptionRequest": {
            "type": "object",
            "required": ["date", "type"],
            "properties": {
                "date": {"type": "string", "example": "2025-03-12"},
                "type": {"type": "string", "enum": ["block", "open"]},
                "all_day": {"type": "boolean"},
                "ranges": {"type": "array", "items": {"$ref": "#/definitions/TimeRange"}},
                "reason": {"type": "string"}
            }
        },
        "Meeting": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "title": {"type": "string"},
                "starts_at": {"type": "string"},
                "ends_at": {"type": "string"},
                "status": {"type": "string"},
                "notes": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
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
