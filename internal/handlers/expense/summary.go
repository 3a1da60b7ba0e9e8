package expense

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/carson-networks/expense-server/internal/service"
)

// SummaryInput is the MCP tool input for get_expense_summary. The summary
// always covers all stored expenses.
type SummaryInput struct{}

// CategoryTotal is one (category, subcategory) subtotal in the summary.
type CategoryTotal struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Total       float64 `json:"total"`
}

// SummaryOutput is the structured result for get_expense_summary.
type SummaryOutput struct {
	Success    bool            `json:"success"`
	Total      float64         `json:"total"`
	ByCategory []CategoryTotal `json:"by_category"`
	Message    string          `json:"message,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// SummaryTool defines the MCP tool schema for the expense summary.
func SummaryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_expense_summary",
		Description: "Returns the grand total and per-category breakdown of all expenses",
	}
}

// SummaryHandler executes a get_expense_summary invocation.
func SummaryHandler(svc *service.ExpenseService) mcp.ToolHandlerFor[SummaryInput, SummaryOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SummaryInput) (*mcp.CallToolResult, SummaryOutput, error) {
		summary, err := svc.Summarize(ctx)
		if err != nil {
			kind, message := failureFields(err)
			return nil, SummaryOutput{Error: kind, Message: message}, nil
		}

		byCategory := make([]CategoryTotal, len(summary.ByCategory))
		for i, entry := range summary.ByCategory {
			byCategory[i] = CategoryTotal{
				Category:    entry.Category,
				Subcategory: entry.Subcategory,
				Total:       entry.Total.InexactFloat64(),
			}
		}

		return nil, SummaryOutput{
			Success:    true,
			Total:      summary.Total.InexactFloat64(),
			ByCategory: byCategory,
		}, nil
	}
}
