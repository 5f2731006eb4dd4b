package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable API",
        "description": "Constraint-based weekly timetable placement service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Admin authentication"},
        {"name": "Settings", "description": "Grid dimensions"},
        {"name": "Instructors", "description": "Instructor roster and availability"},
        {"name": "Courses", "description": "Course roster and constraints"},
        {"name": "Timetable", "description": "Placement engine"},
        {"name": "Transfer", "description": "Workspace import/export"},
        {"name": "Export", "description": "Rendered downloads"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate the admin account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Return the authenticated identity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Get grid settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Update grid settings",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors": {
            "get": {
                "tags": ["Instructors"],
                "summary": "List instructors",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Instructors"],
                "summary": "Create instructor",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateInstructorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors/{id}": {
            "get": {
                "tags": ["Instructors"],
                "summary": "Get instructor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Instructors"],
                "summary": "Rename instructor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateInstructorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Instructors"],
                "summary": "Delete instructor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/instructors/{id}/availability": {
            "put": {
                "tags": ["Instructors"],
                "summary": "Replace availability grid",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/courses/sort-preview": {
            "get": {
                "tags": ["Courses"],
                "summary": "Preview scheduling order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Get the stored schedule",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Timetable"],
                "summary": "Clear the stored schedule",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/timetable/generate": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Run the placement engine",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/transfer/export": {
            "get": {
                "tags": ["Transfer"],
                "summary": "Export the workspace as a document",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Document"}}
                }
            }
        },
        "/transfer/import": {
            "post": {
                "tags": ["Transfer"],
                "summary": "Replace the workspace from a document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Document"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/export/csv": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the timetable as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/export/pdf": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the timetable as PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "Settings": {
            "type": "object",
            "properties": {
                "days": {"type": "array", "items": {"type": "string"}},
                "startHour": {"type": "integer"},
                "endHour": {"type": "integer"}
            }
        },
        "Instructor": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "availability": {
                    "type": "array",
                    "items": {"type": "array", "items": {"type": "boolean"}}
                },
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "title": {"type": "string"},
                "instructorId": {"type": "string"},
                "sessionsPerWeek": {"type": "integer"},
                "duration": {"type": "integer"},
                "earliestHour": {"type": "integer"},
                "latestHour": {"type": "integer"},
                "preferredDays": {"type": "array", "items": {"type": "string"}},
                "notes": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Placement": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "courseId": {"type": "string"},
                "instructorId": {"type": "string"},
                "day": {"type": "string"},
                "startHour": {"type": "integer"},
                "duration": {"type": "integer"}
            }
        },
        "UnscheduledEntry": {
            "type": "object",
            "properties": {
                "courseId": {"type": "string"},
                "remaining": {"type": "integer"},
                "reason": {"type": "string"}
            }
        },
        "Schedule": {
            "type": "object",
            "properties": {
                "placements": {"type": "array", "items": {"$ref": "#/definitions/Placement"}},
                "unscheduled": {"type": "array", "items": {"$ref": "#/definitions/UnscheduledEntry"}}
            }
        },
        "Document": {
            "type": "object",
            "properties": {
                "version": {"type": "integer"},
                "settings": {"$ref": "#/definitions/Settings"},
                "instructors": {"type": "array", "items": {"$ref": "#/definitions/Instructor"}},
                "courses": {"type": "array", "items": {"$ref": "#/definitions/Course"}},
                "schedule": {"$ref": "#/definitions/Schedule"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "startHour": {"type": "integer"},
                "endHour": {"type": "integer"}
            },
            "required": ["startHour", "endHour"]
        },
        "CreateInstructorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "availability": {
                    "type": "array",
                    "items": {"type": "array", "items": {"type": "boolean"}}
                }
            },
            "required": ["name"]
        },
        "UpdateInstructorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            },
            "required": ["name"]
        },
        "UpdateAvailabilityRequest": {
            "type": "object",
            "properties": {
                "availability": {
                    "type": "array",
                    "items": {"type": "array", "items": {"type": "boolean"}}
                }
            },
            "required": ["availability"]
        },
        "CourseRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "title": {"type": "string"},
                "instructorId": {"type": "string"},
                "sessionsPerWeek": {"type": "integer"},
                "duration": {"type": "integer"},
                "earliestHour": {"type": "integer"},
                "latestHour": {"type": "integer"},
                "preferredDays": {"type": "array", "items": {"type": "string"}},
                "notes": {"type": "string"}
            },
            "required": ["code", "title", "sessionsPerWeek", "duration"]
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
