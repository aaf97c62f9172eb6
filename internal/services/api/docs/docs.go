// Package docs holds the OpenAPI document for the tweetscore api.
// Keep it in step with the @Router annotations on the handlers.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/prediction/suicide": {
            "post": {
                "tags": ["Prediction"],
                "summary": "Score a tweet and persist the result",
                "operationId": "predictSuicide",
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {"$ref": "#/components/schemas/TweetRequest"}
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "Persisted prediction",
                        "content": {
                            "application/json": {
                                "schema": {"$ref": "#/components/schemas/PredictionResponse"}
                            }
                        }
                    },
                    "422": {
                        "description": "Validation Error",
                        "content": {
                            "application/json": {
                                "schema": {"$ref": "#/components/schemas/HTTPValidationError"}
                            }
                        }
                    }
                }
            }
        },
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Liveness with model status",
                "operationId": "metaHealth",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/HealthResponse"}}}
                    }
                }
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness probe with dependency checks",
                "operationId": "metaReady",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ReadyResponse"}}}
                    }
                }
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "operationId": "metaVersion",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/BuildInfo"}}}
                    }
                }
            }
        },
        "/meta/model": {
            "get": {
                "tags": ["Meta"],
                "summary": "Loaded model artifact",
                "operationId": "metaModel",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ModelInfo"}}}
                    }
                }
            }
        }
    },
    "components": {
        "schemas": {
            "TweetRequest": {
                "type": "object",
                "required": ["tweet"],
                "properties": {
                    "tweet": {"type": "string", "maxLength": 255, "example": "I can't take this anymore"}
                }
            },
            "PredictionResponse": {
                "type": "object",
                "required": ["id", "tweet", "prediction"],
                "properties": {
                    "id": {"type": "integer", "format": "int64", "example": 42},
                    "tweet": {"type": "string", "example": "I can't take this anymore"},
                    "prediction": {"type": "number", "format": "double", "nullable": true, "example": 0.87}
                }
            },
            "ValidationError": {
                "type": "object",
                "required": ["loc", "msg", "type"],
                "properties": {
                    "loc": {"type": "array", "items": {"oneOf": [{"type": "string"}, {"type": "integer"}]}},
                    "msg": {"type": "string"},
                    "type": {"type": "string"}
                }
            },
            "HTTPValidationError": {
                "type": "object",
                "properties": {
                    "detail": {"type": "array", "items": {"$ref": "#/components/schemas/ValidationError"}}
                }
            },
            "HealthResponse": {
                "type": "object",
                "properties": {
                    "ok": {"type": "boolean"},
                    "service": {"type": "string"},
                    "model_loaded": {"type": "boolean"},
                    "started": {"type": "string", "format": "date-time"},
                    "now": {"type": "string", "format": "date-time"}
                }
            },
            "ReadyCheck": {
                "type": "object",
                "properties": {
                    "name": {"type": "string"},
                    "status": {"type": "string", "enum": ["ok", "fail", "skipped", "unknown"]},
                    "error": {"type": "string"}
                }
            },
            "ReadyResponse": {
                "type": "object",
                "properties": {
                    "status": {"type": "string", "enum": ["ok", "degraded", "fail"]},
                    "checks": {"type": "array", "items": {"$ref": "#/components/schemas/ReadyCheck"}},
                    "now": {"type": "string", "format": "date-time"}
                }
            },
            "BuildInfo": {
                "type": "object",
                "properties": {
                    "service": {"type": "string"},
                    "version": {"type": "string"},
                    "commit": {"type": "string"},
                    "date": {"type": "string"},
                    "go": {"type": "string"}
                }
            },
            "ModelInfo": {
                "type": "object",
                "properties": {
                    "loaded": {"type": "boolean"},
                    "name": {"type": "string"},
                    "format": {"type": "string"},
                    "path": {"type": "string"},
                    "ngram_max": {"type": "integer"},
                    "features": {"type": "integer"},
                    "threshold": {"type": "number"},
                    "error": {"type": "string"}
                }
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
	Title:            "tweetscore API",
	Description:      "Scores tweets for suicide risk and stores every prediction.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
