// Package docs registers the OpenAPI description served under /swagger.
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
        "/companies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List the company catalog",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Company"}}}}
            }
        },
        "/regions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List catalog regions",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/risk/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["risk"],
                "summary": "List risk questions",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.RiskQuestion"}}}}
            }
        },
        "/sectors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List catalog sectors",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/sessions": {
            "post": {
                "description": "Creates a session on the welcome screen, optionally with portfolio basics",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Start a wizard session",
                "parameters": [{"description": "Optional basics", "name": "body", "in": "body", "required": false, "schema": {"$ref": "#/definitions/models.CreateSessionRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.StateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/sessions/{session_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Get session state",
                "parameters": [{"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Removes the stored state and its snapshot",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Delete a session",
                "parameters": [{"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/sessions/{session_id}/advance": {
            "post": {
                "description": "Refused with warning W3001 while the current step is incomplete",
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Move to the next step",
                "parameters": [{"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/allocations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["allocation"],
                "summary": "List allocations",
                "parameters": [{"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AllocationsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/sessions/{session_id}/allocations/{company_id}/lock": {
            "post": {
                "description": "Locked allocations are skipped by rebalance and refuse direct edits",
                "produces": ["application/json"],
                "tags": ["allocation"],
                "summary": "Lock or unlock an allocation",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/sessions/{session_id}/allocations/{company_id}/percentage": {
            "put": {
                "description": "Amount and whole shares are derived; locked allocations are left unchanged (W1001)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["allocation"],
                "summary": "Allocate a percentage",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true},
                    {"description": "Percentage 0..100", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PercentageRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/allocations/{company_id}/shares": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["allocation"],
                "summary": "Allocate a share count",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true},
                    {"description": "Shares", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SharesRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/answers/{question_id}": {
            "put": {
                "description": "Scores outside 1..5 or unknown questions are ignored with a warning",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["risk"],
                "summary": "Answer a risk question",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "description": "Question ID", "name": "question_id", "in": "path", "required": true},
                    {"description": "Score", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AnswerRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/basics": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Set portfolio name and investment amount",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"description": "Basics", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.BasicsRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/companies": {
            "get": {
                "description": "Applies the session's exclusions and filters, then search, sort and pagination",
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "List candidate companies",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "description": "Case-insensitive search over name, ticker, sector, region", "name": "search", "in": "query"},
                    {"type": "string", "description": "name|sector|region|marketCap|price|dividend|volatility", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc|desc", "name": "direction", "in": "query"},
                    {"type": "integer", "description": "Page (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 10)", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CompanyPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/sessions/{session_id}/distribute": {
            "post": {
                "description": "Resets every allocation, including locked ones",
                "produces": ["application/json"],
                "tags": ["allocation"],
                "summary": "Split the investment equally",
                "parameters": [{"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/exclusions/{sector}": {
            "post": {
                "description": "Excluding a sector deselects its companies and drops their allocations",
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Exclude or re-admit a sector",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "description": "Sector", "name": "sector", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/filters": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Merge filter criteria",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.FilterPatch"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/goto": {
            "post": {
                "description": "Steps beyond one past the furthest visited step are clamped (warning W3002)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Jump to a step",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"description": "Target step (-1..4)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.GoToRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/rebalance": {
            "post": {
                "produces": ["application/json"],
                "tags": ["allocation"],
                "summary": "Rebalance around locked allocations",
                "parameters": [{"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/reset": {
            "post": {
                "description": "Returns the session to the welcome screen with default basics",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Start over",
                "parameters": [{"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/sessions/{session_id}/retreat": {
            "post": {
                "description": "Warning W3003 when already on the welcome screen",
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Move to the previous step",
                "parameters": [{"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/sessions/{session_id}/selection/{company_id}": {
            "post": {
                "description": "At 20 selected companies further selections are ignored with warning W2001",
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Select or deselect a company",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StateResponse"}}}
            }
        },
        "/sessions/{session_id}/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["summary"],
                "summary": "Review the portfolio",
                "parameters": [{"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SummaryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.AllocationEntry": {
            "type": "object",
            "properties": {
                "company": {"$ref": "#/definitions/models.Company"},
                "allocation": {"$ref": "#/definitions/models.CompanyAllocation"},
                "invested": {"type": "number"}
            }
        },
        "models.AllocationTotals": {
            "type": "object",
            "properties": {
                "allocated_percentage": {"type": "number"},
                "allocated_amount": {"type": "number"},
                "remaining_percentage": {"type": "number"},
                "remaining_amount": {"type": "number"}
            }
        },
        "models.AllocationsResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "investment_amount": {"type": "number"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/models.AllocationEntry"}},
                "totals": {"$ref": "#/definitions/models.AllocationTotals"}
            }
        },
        "models.AnswerRequest": {
            "type": "object",
            "required": ["score"],
            "properties": {"score": {"type": "integer"}}
        },
        "models.BasicsRequest": {
            "type": "object",
            "required": ["investment_amount"],
            "properties": {"portfolio_name": {"type": "string"}, "investment_amount": {"type": "number"}}
        },
        "models.BreakdownItem": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "percentage": {"type": "number"},
                "amount": {"type": "number"},
                "companies": {"type": "integer"}
            }
        },
        "models.Company": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "ticker": {"type": "string"},
                "sector": {"type": "string"},
                "region": {"type": "string"},
                "market_cap": {"type": "number"},
                "price": {"type": "number"},
                "dividend_yield": {"type": "number"},
                "volatility": {"type": "number"}
            }
        },
        "models.CompanyAllocation": {
            "type": "object",
            "properties": {
                "companyId": {"type": "string"},
                "percentage": {"type": "number"},
                "shares": {"type": "integer"},
                "amount": {"type": "number"},
                "isLocked": {"type": "boolean"}
            }
        },
        "models.CompanyPage": {
            "type": "object",
            "properties": {
                "companies": {"type": "array", "items": {"$ref": "#/definitions/models.Company"}},
                "page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "models.CreateSessionRequest": {
            "type": "object",
            "properties": {"portfolio_name": {"type": "string"}, "investment_amount": {"type": "number"}}
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "message": {"type": "string"}}
        },
        "models.FilterPatch": {
            "type": "object",
            "properties": {
                "sectors": {"type": "array", "items": {"type": "string"}},
                "regions": {"type": "array", "items": {"type": "string"}},
                "market_cap_range": {"type": "array", "items": {"type": "number"}},
                "min_dividend": {"type": "number"},
                "max_volatility": {"type": "number"}
            }
        },
        "models.GoToRequest": {
            "type": "object",
            "required": ["step"],
            "properties": {"step": {"type": "integer"}}
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "models.PercentageRequest": {
            "type": "object",
            "required": ["percentage"],
            "properties": {"percentage": {"type": "number"}}
        },
        "models.RiskOption": {
            "type": "object",
            "properties": {"score": {"type": "integer"}, "text": {"type": "string"}}
        },
        "models.RiskQuestion": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "question": {"type": "string"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/models.RiskOption"}}
            }
        },
        "models.SharesRequest": {
            "type": "object",
            "required": ["shares"],
            "properties": {"shares": {"type": "integer"}}
        },
        "models.StateResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "state": {"type": "object"},
                "can_advance": {"type": "boolean"},
                "totals": {"$ref": "#/definitions/models.AllocationTotals"},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/models.Warning"}}
            }
        },
        "models.SummaryResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "portfolio_name": {"type": "string"},
                "investment_amount": {"type": "number"},
                "risk_profile": {"type": "string"},
                "profile_description": {"type": "string"},
                "fully_allocated": {"type": "boolean"},
                "holdings": {"type": "array", "items": {"$ref": "#/definitions/models.AllocationEntry"}},
                "by_sector": {"type": "array", "items": {"$ref": "#/definitions/models.BreakdownItem"}},
                "by_region": {"type": "array", "items": {"$ref": "#/definitions/models.BreakdownItem"}},
                "totals": {"$ref": "#/definitions/models.AllocationTotals"},
                "invested": {"type": "number"},
                "cash_residue": {"type": "number"}
            }
        },
        "models.Warning": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        }
    }
}`


// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portfolio Wizard API",
	Description:      "Guided portfolio construction: basics, risk questionnaire, company selection, allocation and summary.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
