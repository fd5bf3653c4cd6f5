// Package docs registers the Swagger document served under /swagger.
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
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admins": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "List admins", "responses": {"200": {"description": "Admins fetched successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "Create a new admin", "responses": {"201": {"description": "Admin created successfully"}}}
        },
        "/admins/login": {
            "post": {"tags": ["auth"], "summary": "Admin login", "responses": {"200": {"description": "Login successful"}}}
        },
        "/admins/search": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "Search admins by name", "responses": {"200": {"description": "Admins searched successfully"}}}
        },
        "/admins/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "Get admin by ID", "responses": {"200": {"description": "Admin fetched successfully"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "Update an admin", "responses": {"200": {"description": "Admin updated successfully"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "Delete an admin", "responses": {"200": {"description": "Admin deleted successfully"}}}
        },
        "/teachers": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["teachers"], "summary": "List teachers", "responses": {"200": {"description": "Teachers fetched successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["teachers"], "summary": "Create a new teacher", "responses": {"201": {"description": "Teacher created successfully"}}}
        },
        "/teachers/login": {
            "post": {"tags": ["auth"], "summary": "Teacher login", "responses": {"200": {"description": "Login successful"}}}
        },
        "/teachers/search": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["teachers"], "summary": "Search teachers by name", "responses": {"200": {"description": "Teachers searched successfully"}}}
        },
        "/teachers/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["teachers"], "summary": "Get teacher by ID", "responses": {"200": {"description": "Teacher fetched successfully"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["teachers"], "summary": "Update a teacher", "responses": {"200": {"description": "Teacher updated successfully"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["teachers"], "summary": "Delete a teacher", "responses": {"200": {"description": "Teacher deleted successfully"}}}
        },
        "/students": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "List students", "responses": {"200": {"description": "Students fetched successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Create a new student", "responses": {"201": {"description": "Student created successfully"}}}
        },
        "/students/search": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Search students by name", "responses": {"200": {"description": "Students searched successfully"}}}
        },
        "/students/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Get student by ID", "responses": {"200": {"description": "Student fetched successfully"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Update a student", "responses": {"200": {"description": "Student updated successfully"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Delete a student", "responses": {"200": {"description": "Student deleted successfully"}}}
        },
        "/students/{id}/teacher": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Remove a student's teacher", "responses": {"200": {"description": "Teacher removed successfully"}}}
        },
        "/students/{id}/teacher/{teacherId}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Assign a teacher to a student", "responses": {"200": {"description": "Teacher assigned successfully"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
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
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "SchoolHub API",
	Description:      "School management API for admins, teachers and students",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
