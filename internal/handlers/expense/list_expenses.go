package expense

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListExpensesInput is the MCP tool input for list_expenses.
type ListExpensesInput struct {
	StartDate string `json:"start_date,omitempty" jsonschema:"inclusive lower date bound in YYYY-MM-DD form"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"inclusive upper date bound in YYYY-MM-DD form"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum rows to return, defaults to 100, capped at 1000"`
}

// ListExpensesOutput is the structured result for list_expenses.
type ListExpensesOutput struct {
	Success  bool      `json:"success"`
	Count    int       `json:"count"`
	Expenses []Expense `json:"expenses"`
	Message  string    `json:"message,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// ListExpensesTool defines the MCP tool schema for listing expenses.
func ListExpensesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_expenses",
		Description: "Lists expenses in an inclusive date range, most recent first",
	}
}

// ListExpensesHandler executes a list_expenses invocation.
func ListExpensesHandler(svc *service.ExpenseService) mcp.ToolHandlerFor[ListExpensesInput, ListExpensesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListExpensesInput) (*mcp.CallToolResult, ListExpensesOutput, error) {
		rows, err := svc.ListExpenses(ctx, input.StartDate, input.EndDate, input.Limit)
		if err != nil {
			kind, message := failureFields(err)
			return nil, ListExpensesOutput{Error: kind, Message: message}, nil
		}

		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("expenseCount", len(rows))
		}

		expenses := make([]Expense, len(rows))
		for i, row := range rows {
			expenses[i] = fromService(row)
		}

		return nil, ListExpensesOutput{
			Success:  true,
			Count:    len(expenses),
			Expenses: expenses,
		}, nil
	}
}
