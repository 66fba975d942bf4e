// Package docs registers the swagger description served at /swagger.
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
        "/auth/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange the owner passphrase for a bearer token",
                "parameters": [
                    {"description": "Passphrase", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.tokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.tokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/calendar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Sunday-aligned month grid with stored progress",
                "parameters": [
                    {"type": "integer", "description": "Defaults to the current year", "name": "year", "in": "query"},
                    {"type": "integer", "description": "1-12, defaults to the current month", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CalendarMonth"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/habits": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "List habits in display order",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["habits"],
                "summary": "Replace the whole habit list",
                "parameters": [
                    {"description": "Complete list", "name": "habits", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Add a habit at the end of the list",
                "parameters": [
                    {"description": "New habit", "name": "habit", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createHabitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/habits/order": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Store a new display order",
                "parameters": [
                    {"description": "Every habit id exactly once", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.reorderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/habits/setup": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Whether onboarding has produced at least one habit",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.setupStatusResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "First-run onboarding, replaces the list with the named habits",
                "parameters": [
                    {"description": "Habits to start with", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.setupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/habits/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Fetch one habit",
                "parameters": [
                    {"type": "string", "description": "Habit id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Rename or recolor a habit",
                "parameters": [
                    {"type": "string", "description": "Habit id", "name": "id", "in": "path", "required": true},
                    {"description": "New values, empty color or icon keep the old ones", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateHabitRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "delete": {
                "tags": ["habits"],
                "summary": "Remove a habit, its day records are kept",
                "parameters": [
                    {"type": "string", "description": "Habit id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Channel support, permission and reminder state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.NotificationStatus"}}
                }
            }
        },
        "/notifications/permission": {
            "post": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Request permission and switch notifications on",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.permissionResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/notifications/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Stored notification settings, defaults when unset",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NotificationSettings"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Persist settings and arm or cancel the daily reminder",
                "parameters": [
                    {"description": "Settings", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.NotificationSettings"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NotificationSettings"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/notifications/test": {
            "post": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Send the sample notification",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/progress": {
            "get": {
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Every stored day record",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.DayProgress"}}}
                }
            }
        },
        "/progress/{date}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "One day reconciled against the current habits",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DayView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Store the completion map of a day",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "path", "required": true},
                    {"description": "Habit id to completed", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.setProgressRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DayProgress"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/progress/{date}/toggle": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Mark one habit done or not done on a day",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "path", "required": true},
                    {"description": "Habit and new state", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.toggleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DayView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/stats/heatmap": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "The last 30 days, oldest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.HeatmapCell"}}}
                }
            }
        },
        "/stats/monthly": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Daily series and summary of a month",
                "parameters": [
                    {"type": "integer", "description": "Defaults to the current year", "name": "year", "in": "query"},
                    {"type": "integer", "description": "1-12, defaults to the current month", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.MonthlyReport"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/stats/streaks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Current streak of every habit",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.HabitStreak"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.CalendarDay": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "day": {"type": "integer"},
                "weekday": {"type": "integer"},
                "in_month": {"type": "boolean"},
                "is_today": {"type": "boolean"},
                "progress": {"type": "integer"},
                "recorded": {"type": "boolean"}
            }
        },
        "domain.CalendarMonth": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "month_name": {"type": "string"},
                "days": {"type": "array", "items": {"$ref": "#/definitions/domain.CalendarDay"}}
            }
        },
        "domain.DailyPoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "day": {"type": "integer"},
                "progress": {"type": "integer"}
            }
        },
        "domain.DayProgress": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "habits": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "progress": {"type": "integer"}
            }
        },
        "domain.DayView": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "habits": {"type": "array", "items": {"$ref": "#/definitions/domain.HabitCheck"}},
                "completed_count": {"type": "integer"},
                "total": {"type": "integer"},
                "progress": {"type": "integer"},
                "recorded": {"type": "boolean"}
            }
        },
        "domain.Habit": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"},
                "icon": {"type": "string"}
            }
        },
        "domain.HabitCheck": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"},
                "icon": {"type": "string"},
                "completed": {"type": "boolean"}
            }
        },
        "domain.HabitStreak": {
            "type": "object",
            "properties": {
                "habit_id": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"},
                "icon": {"type": "string"},
                "streak": {"type": "integer"}
            }
        },
        "domain.HeatmapCell": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "day": {"type": "integer"},
                "progress": {"type": "integer"}
            }
        },
        "domain.MonthlyReport": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "month_name": {"type": "string"},
                "daily": {"type": "array", "items": {"$ref": "#/definitions/domain.DailyPoint"}},
                "summary": {"$ref": "#/definitions/domain.MonthlySummary"}
            }
        },
        "domain.MonthlySummary": {
            "type": "object",
            "properties": {
                "total_days": {"type": "integer"},
                "avg_progress": {"type": "integer"},
                "best_day": {"$ref": "#/definitions/domain.DayProgress"},
                "worst_day": {"$ref": "#/definitions/domain.DayProgress"},
                "perfect_days": {"type": "integer"}
            }
        },
        "domain.NotificationSettings": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "dailyReminder": {"type": "boolean"},
                "reminderTime": {"type": "string"},
                "completionNotification": {"type": "boolean"}
            }
        },
        "http.createHabitRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Drink water"},
                "color": {"type": "string", "example": "#3b82f6"},
                "icon": {"type": "string", "example": "💧"}
            }
        },
        "http.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "habit name cannot be empty"}
            }
        },
        "http.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "test notification sent"}
            }
        },
        "http.permissionResponse": {
            "type": "object",
            "properties": {
                "granted": {"type": "boolean"},
                "settings": {"$ref": "#/definitions/domain.NotificationSettings"}
            }
        },
        "http.reorderRequest": {
            "type": "object",
            "required": ["ids"],
            "properties": {
                "ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.setProgressRequest": {
            "type": "object",
            "required": ["habits"],
            "properties": {
                "habits": {"type": "object", "additionalProperties": {"type": "boolean"}}
            }
        },
        "http.setupRequest": {
            "type": "object",
            "required": ["habits"],
            "properties": {
                "habits": {"type": "array", "items": {"$ref": "#/definitions/http.createHabitRequest"}}
            }
        },
        "http.setupStatusResponse": {
            "type": "object",
            "properties": {
                "complete": {"type": "boolean"}
            }
        },
        "http.toggleRequest": {
            "type": "object",
            "required": ["habit_id"],
            "properties": {
                "habit_id": {"type": "string"},
                "completed": {"type": "boolean", "example": true}
            }
        },
        "http.tokenRequest": {
            "type": "object",
            "required": ["passphrase"],
            "properties": {
                "passphrase": {"type": "string"}
            }
        },
        "http.tokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "http.updateHabitRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Read 20 pages"},
                "color": {"type": "string", "example": "#8b5cf6"},
                "icon": {"type": "string", "example": "📖"}
            }
        },
        "services.NotificationStatus": {
            "type": "object",
            "properties": {
                "supported": {"type": "boolean"},
                "permission": {"type": "string"},
                "reminder_active": {"type": "boolean"},
                "settings": {"$ref": "#/definitions/domain.NotificationSettings"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Kanso Calendar API",
	Description:      "Daily habit checklist with progress history, streaks, monthly reports and reminders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
