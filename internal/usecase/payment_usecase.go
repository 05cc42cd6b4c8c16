package usecase

import (
	"context"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
	"mealmate/internal/domain/service"
)

type PaymentUseCase struct {
	paymentRepo   repository.PaymentRepository
	userRepo      repository.UserRepository
	intentService service.PaymentIntentService
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	intentService service.PaymentIntentService,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo:   paymentRepo,
		userRepo:      userRepo,
		intentService: intentService,
	}
}

func (uc *PaymentUseCase) CreateIntent(ctx context.Context, price float64) (string, error) {
	return uc.intentService.CreateIntent(ctx, price)
}

// RecordResult exposes both halves of the payment dual write so the caller
// can observe each outcome. There is no cross-collection transaction: a badge
// update that lands before a failed insert stays applied.
type RecordResult struct {
	Payment     *entity.InsertResult `json:"result"`
	BadgeUpdate *entity.UpdateResult `json:"user_update"`
}

func (uc *PaymentUseCase) Record(ctx context.Context, payment *entity.Payment) (*RecordResult, error) {
	badgeUpdate, err := uc.userRepo.UpsertBadgeByEmail(ctx, payment.Email, payment.Badge)
	if err != nil {
		return nil, err
	}

	res, err := uc.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	return &RecordResult{Payment: res, BadgeUpdate: badgeUpdate}, nil
}

func (uc *PaymentUseCase) History(ctx context.Context) ([]entity.Payment, error) {
	return uc.paymentRepo.ListAll(ctx)
}

func (uc *PaymentUseCase) HistoryByEmail(ctx context.Context, email string) ([]entity.Payment, error) {
	return uc.paymentRepo.ListByEmail(ctx, email)
}

func (uc *PaymentUseCase) HasPaid(ctx context.Context, email string) (bool, error) {
	return uc.paymentRepo.ExistsByEmail(ctx, email)
}
