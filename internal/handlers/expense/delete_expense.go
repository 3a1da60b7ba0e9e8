package expense

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/carson-networks/expense-server/internal/service"
)

// DeleteExpenseInput is the MCP tool input for delete_expense.
type DeleteExpenseInput struct {
	ID int64 `json:"id" jsonschema:"id of the expense to delete"`
}

// DeleteExpenseOutput is the structured result for delete_expense.
type DeleteExpenseOutput struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DeleteExpenseTool defines the MCP tool schema for deleting expenses.
func DeleteExpenseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_expense",
		Description: "Deletes an expense by id",
	}
}

// DeleteExpenseHandler executes a delete_expense invocation.
func DeleteExpenseHandler(svc *service.ExpenseService) mcp.ToolHandlerFor[DeleteExpenseInput, DeleteExpenseOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteExpenseInput) (*mcp.CallToolResult, DeleteExpenseOutput, error) {
		if err := svc.DeleteExpense(ctx, input.ID); err != nil {
			kind, message := failureFields(err)
			return nil, DeleteExpenseOutput{Error: kind, Message: message}, nil
		}

		return nil, DeleteExpenseOutput{
			Success: true,
			ID:      input.ID,
			Message: fmt.Sprintf("expense %d deleted", input.ID),
		}, nil
	}
}
