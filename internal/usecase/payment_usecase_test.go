package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"mealmate/internal/domain/entity"
	"mealmate/pkg/errors"
)

type fakePaymentRepo struct {
	payments  []entity.Payment
	createErr error
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) (*entity.InsertResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.payments = append(f.payments, *payment)
	return &entity.InsertResult{InsertedID: "payment-id"}, nil
}

func (f *fakePaymentRepo) ListAll(ctx context.Context) ([]entity.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) ListByEmail(ctx context.Context, email string) ([]entity.Payment, error) {
	out := make([]entity.Payment, 0)
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, p := range f.payments {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeIntentService struct {
	lastPrice float64
}

func (f *fakeIntentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	f.lastPrice = price
	return "cs_test_secret", nil
}

func TestPaymentRecordWritesBadgeThenPayment(t *testing.T) {
	paymentRepo := &fakePaymentRepo{}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := NewPaymentUseCase(paymentRepo, userRepo, &fakeIntentService{})

	res, err := uc.Record(context.Background(), &entity.Payment{
		Email: "a@b.c",
		Badge: "Gold",
		Price: 20,
	})

	assert.NoError(t, err)
	assert.Equal(t, "payment-id", res.Payment.InsertedID)
	assert.Equal(t, int64(1), res.BadgeUpdate.UpsertedCount, "badge upsert creates missing user")
	assert.Equal(t, []string{"a@b.c:Gold"}, userRepo.badgeUpserts)
	assert.Len(t, paymentRepo.payments, 1)
}

func TestPaymentRecordBadgeStaysAppliedOnInsertFailure(t *testing.T) {
	paymentRepo := &fakePaymentRepo{createErr: errors.Internal("store down", nil)}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := NewPaymentUseCase(paymentRepo, userRepo, &fakeIntentService{})

	_, err := uc.Record(context.Background(), &entity.Payment{
		Email: "a@b.c",
		Badge: "Gold",
	})

	assert.Error(t, err)
	// No rollback across collections: the badge write already landed.
	assert.Equal(t, []string{"a@b.c:Gold"}, userRepo.badgeUpserts)
	assert.Empty(t, paymentRepo.payments)
}

func TestPaymentCreateIntentDelegates(t *testing.T) {
	intents := &fakeIntentService{}
	uc := NewPaymentUseCase(&fakePaymentRepo{}, &fakeUserRepo{users: map[string]*entity.User{}}, intents)

	secret, err := uc.CreateIntent(context.Background(), 12.5)

	assert.NoError(t, err)
	assert.Equal(t, "cs_test_secret", secret)
	assert.Equal(t, 12.5, intents.lastPrice)
}

func TestPaymentHasPaid(t *testing.T) {
	paymentRepo := &fakePaymentRepo{payments: []entity.Payment{{Email: "paid@b.c"}}}
	uc := NewPaymentUseCase(paymentRepo, &fakeUserRepo{users: map[string]*entity.User{}}, &fakeIntentService{})

	paid, err := uc.HasPaid(context.Background(), "paid@b.c")
	assert.NoError(t, err)
	assert.True(t, paid)

	unpaid, err := uc.HasPaid(context.Background(), "free@b.c")
	assert.NoError(t, err)
	assert.False(t, unpaid)
}
