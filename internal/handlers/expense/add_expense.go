package expense

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/service"
)

// AddExpenseInput is the MCP tool input for add_expense.
type AddExpenseInput struct {
	Date          string  `json:"date" jsonschema:"expense date in YYYY-MM-DD form"`
	Amount        float64 `json:"amount" jsonschema:"expense amount, must be >= 0"`
	Category      string  `json:"category" jsonschema:"expense category"`
	Subcategory   string  `json:"subcategory,omitempty" jsonschema:"optional subcategory"`
	PaymentMethod string  `json:"payment_method,omitempty" jsonschema:"optional payment method"`
	Merchant      string  `json:"merchant,omitempty" jsonschema:"optional merchant name"`
	Notes         string  `json:"notes,omitempty" jsonschema:"optional free-form notes"`
	Currency      string  `json:"currency,omitempty" jsonschema:"3-letter currency code, defaults to USD"`
}

// AddExpenseOutput is the structured result for add_expense.
type AddExpenseOutput struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AddExpenseTool defines the MCP tool schema for recording expenses.
func AddExpenseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_expense",
		Description: "Records a new expense",
	}
}

// AddExpenseHandler executes an add_expense invocation.
func AddExpenseHandler(svc *service.ExpenseService) mcp.ToolHandlerFor[AddExpenseInput, AddExpenseOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddExpenseInput) (*mcp.CallToolResult, AddExpenseOutput, error) {
		id, err := svc.CreateExpense(ctx, service.ExpenseCreate{
			Date:          input.Date,
			Amount:        decimal.NewFromFloat(input.Amount),
			Currency:      input.Currency,
			Category:      input.Category,
			Subcategory:   input.Subcategory,
			PaymentMethod: input.PaymentMethod,
			Merchant:      input.Merchant,
			Notes:         input.Notes,
		})
		if err != nil {
			kind, message := failureFields(err)
			return nil, AddExpenseOutput{Error: kind, Message: message}, nil
		}

		return nil, AddExpenseOutput{
			Success: true,
			ID:      id,
			Message: fmt.Sprintf("expense %d recorded", id),
		}, nil
	}
}
