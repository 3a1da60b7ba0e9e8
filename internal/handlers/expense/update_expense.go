package expense

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/service"
)

// UpdateExpenseInput is the MCP tool input for update_expense. Absent fields
// leave the stored values untouched.
type UpdateExpenseInput struct {
	ID            int64    `json:"id" jsonschema:"id of the expense to update"`
	Date          *string  `json:"date,omitempty" jsonschema:"new date in YYYY-MM-DD form"`
	Amount        *float64 `json:"amount,omitempty" jsonschema:"new amount, must be >= 0"`
	Currency      *string  `json:"currency,omitempty" jsonschema:"new 3-letter currency code"`
	Category      *string  `json:"category,omitempty" jsonschema:"new category"`
	Subcategory   *string  `json:"subcategory,omitempty" jsonschema:"new subcategory"`
	PaymentMethod *string  `json:"payment_method,omitempty" jsonschema:"new payment method"`
	Merchant      *string  `json:"merchant,omitempty" jsonschema:"new merchant name"`
	Notes         *string  `json:"notes,omitempty" jsonschema:"new notes"`
}

// UpdateExpenseOutput is the structured result for update_expense.
type UpdateExpenseOutput struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UpdateExpenseTool defines the MCP tool schema for partial expense updates.
func UpdateExpenseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_expense",
		Description: "Updates the supplied fields of an existing expense",
	}
}

// UpdateExpenseHandler executes an update_expense invocation.
func UpdateExpenseHandler(svc *service.ExpenseService) mcp.ToolHandlerFor[UpdateExpenseInput, UpdateExpenseOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateExpenseInput) (*mcp.CallToolResult, UpdateExpenseOutput, error) {
		update := service.ExpenseUpdate{
			Date:          input.Date,
			Currency:      input.Currency,
			Category:      input.Category,
			Subcategory:   input.Subcategory,
			PaymentMethod: input.PaymentMethod,
			Merchant:      input.Merchant,
			Notes:         input.Notes,
		}
		if input.Amount != nil {
			amount := decimal.NewFromFloat(*input.Amount)
			update.Amount = &amount
		}

		if err := svc.UpdateExpense(ctx, input.ID, update); err != nil {
			kind, message := failureFields(err)
			return nil, UpdateExpenseOutput{Error: kind, Message: message}, nil
		}

		return nil, UpdateExpenseOutput{
			Success: true,
			ID:      input.ID,
			Message: fmt.Sprintf("expense %d updated", input.ID),
		}, nil
	}
}
