package repository

import (
	"context"

	"mealmate/internal/domain/entity"
)

// PaymentRepository is append-only: payment records are never updated or
// deleted.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) (*entity.InsertResult, error)
	ListAll(ctx context.Context) ([]entity.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]entity.Payment, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
