// Package swagger holds the OpenAPI document of the HTTP API, in the format written by swag init.
package swagger

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
        "/orthology/check": {
            "post": {
                "description": "Reconciles the uploaded files in upload order and reports gene families whose genes were mapped differently by earlier files.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json",
                    "text/plain"
                ],
                "tags": [
                    "orthology"
                ],
                "summary": "Check Orthology Mapping Files",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Mapping files, in processing order",
                        "name": "files",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Response format (json or text)",
                        "name": "format",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Run Summary",
                        "schema": {
                            "$ref": "#/definitions/orthology.RunSummary"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/orthology/runs": {
            "get": {
                "description": "Lists the most recent reconciliation runs with per-file counts.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orthology"
                ],
                "summary": "List Runs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Maximum number of runs",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Runs",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/orthology.RunRecord"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "History Disabled",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "orthology.RunFileRecord": {
            "type": "object",
            "properties": {
                "file": {
                    "type": "string"
                },
                "inconsistent_families": {
                    "type": "integer"
                },
                "position": {
                    "type": "integer"
                },
                "total_families": {
                    "type": "integer"
                }
            }
        },
        "orthology.RunRecord": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "files": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/orthology.RunFileRecord"
                    }
                },
                "id": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                }
            }
        },
        "orthology.RunSummary": {
            "type": "object",
            "properties": {
                "reports": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reconcile.FileReport"
                    }
                },
                "run_id": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "started_at": {
                    "type": "string"
                }
            }
        },
        "reconcile.FamilySummary": {
            "type": "object",
            "properties": {
                "family_id": {
                    "type": "string"
                },
                "gene_count": {
                    "type": "integer"
                }
            }
        },
        "reconcile.FileReport": {
            "type": "object",
            "properties": {
                "file": {
                    "type": "string"
                },
                "groups": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reconcile.MagnitudeGroup"
                    }
                },
                "inconsistent_families": {
                    "type": "integer"
                },
                "total_families": {
                    "type": "integer"
                }
            }
        },
        "reconcile.MagnitudeGroup": {
            "type": "object",
            "properties": {
                "families": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reconcile.FamilySummary"
                    }
                },
                "magnitude": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Orthology Check API",
	Description:      "Consistency checks for sequences of orthology mapping files.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
