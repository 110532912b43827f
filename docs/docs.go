// Package docs registers the hand-maintained OpenAPI document served by the
// swagger UI at /docs/. Kept in sync with the handler annotations by hand —
// the API surface is small enough that codegen is not worth the build step.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/games/{gameID}/timeline": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get game timeline",
                "description": "Display-ordered event timeline with period/half markers, running scores, and correlated highlight clips.",
                "parameters": [
                    {"type": "string", "name": "gameID", "in": "path", "required": true, "description": "Game identifier"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Game not found"},
                    "502": {"description": "Feed unavailable"}
                }
            }
        },
        "/games/{gameID}/highlights": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get goal highlights",
                "description": "Every goal in chronological order with its optional correlated clip reference.",
                "parameters": [
                    {"type": "string", "name": "gameID", "in": "path", "required": true, "description": "Game identifier"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Game not found"},
                    "502": {"description": "Feed unavailable"}
                }
            }
        },
        "/games/{gameID}/score": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get game score",
                "description": "Running-score-derived box score with provider fallbacks.",
                "parameters": [
                    {"type": "string", "name": "gameID", "in": "path", "required": true, "description": "Game identifier"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Game not found"},
                    "502": {"description": "Feed unavailable"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Matchfeed API",
	Description:      "Match event timelines, running scores, and highlight clip correlation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
