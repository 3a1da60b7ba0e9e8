package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverInfoPayload is the body of the info://server resource.
type serverInfoPayload struct {
	ServerName  string   `json:"server_name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
}

// serverInfoResource defines the server metadata resource.
func serverInfoResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "server_info",
		Title:       "Server Info",
		Description: "Server name, version, and available tools",
		MIMEType:    "application/json",
		URI:         "info://server",
	}
}

// serverInfoResourceHandler returns static server metadata.
func serverInfoResourceHandler() mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := serverInfoResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		payload := serverInfoPayload{
			ServerName:  serverName,
			Version:     serverVersion,
			Description: "Expense tracking data service exposed over MCP",
			Tools: []string{
				"add_expense",
				"list_expenses",
				"update_expense",
				"delete_expense",
				"get_expense_summary",
			},
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal server info: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
