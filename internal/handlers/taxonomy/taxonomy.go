// Package taxonomy exposes the category taxonomy file as a readable MCP
// resource.
package taxonomy

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/carson-networks/expense-server/internal/taxonomy"
)

// CategoriesResource defines the readable taxonomy resource.
func CategoriesResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "expense_categories",
		Title:       "Expense Categories",
		Description: "Category taxonomy for expense records",
		MIMEType:    "application/json",
		URI:         "expenses://categories",
	}
}

// CategoriesResourceHandler serves the taxonomy file verbatim on every read.
func CategoriesResourceHandler(provider *taxonomy.Provider) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := CategoriesResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		data, err := provider.Read(ctx)
		if err != nil {
			return nil, err
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
