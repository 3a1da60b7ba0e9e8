package service

import (
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
}

// NewService creates a Service reading from storage and dispatching writes
// through the operator.
func NewService(store *storage.Storage, op *operator.OperatorDelegator) *Service {
	return &Service{
		Expense: NewExpenseService(store, op),
	}
}
