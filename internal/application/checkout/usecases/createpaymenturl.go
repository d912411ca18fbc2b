package usecases

import (
	"context"
	"fmt"
	"strings"

	"bookstore/internal/application/checkout/dto"
	"bookstore/internal/domain/cart"
	"bookstore/internal/domain/shared/services"
	"bookstore/internal/infrastructure/vnpay"
	"bookstore/internal/shared/biztime"
	apperrors "bookstore/internal/shared/errors"
	"bookstore/internal/shared/logger"
)

// CreatePaymentURLCommand contains data for initiating a payment attempt.
type CreatePaymentURLCommand struct {
	UserID          uint
	ShippingAddress string
	BankCode        string
	ClientIP        string
}

type CreatePaymentURLUseCase struct {
	cartRepo    cart.Repository
	gateway     PaymentGateway
	intentStore PaymentIntentStore
	refGen      services.PaymentReferenceGenerator
	logger      logger.Interface
}

func NewCreatePaymentURLUseCase(
	cartRepo cart.Repository,
	gateway PaymentGateway,
	intentStore PaymentIntentStore,
	refGen services.PaymentReferenceGenerator,
	logger logger.Interface,
) *CreatePaymentURLUseCase {
	return &CreatePaymentURLUseCase{
		cartRepo:    cartRepo,
		gateway:     gateway,
		intentStore: intentStore,
		refGen:      refGen,
		logger:      logger,
	}
}

// Execute reads the user's cart, records a payment intent keyed by a fresh
// transaction reference and returns the signed redirect URL. No order row
// exists until a verified successful callback settles the attempt.
func (uc *CreatePaymentURLUseCase) Execute(ctx context.Context, cmd CreatePaymentURLCommand) (*dto.PaymentURLDTO, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	if strings.TrimSpace(cmd.ShippingAddress) == "" {
		return nil, apperrors.NewValidationError("shipping address is required")
	}

	items, err := uc.cartRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("cart is empty")
	}

	total := cart.Total(items)
	txnRef := uc.refGen.Generate()
	createdAt := biztime.NowUTC()

	intent := &PaymentIntent{
		TxnRef:          txnRef,
		UserID:          cmd.UserID,
		ShippingAddress: strings.TrimSpace(cmd.ShippingAddress),
		AmountVND:       total.Amount(),
		OrderInfo:       buildOrderInfo(items),
		CreatedAt:       createdAt,
	}
	if err := uc.intentStore.Save(ctx, intent, uc.gateway.ExpireWindow()); err != nil {
		return nil, fmt.Errorf("failed to save payment intent: %w", err)
	}

	paymentURL, err := uc.gateway.BuildPaymentURL(vnpay.PaymentRequest{
		TxnRef:    txnRef,
		AmountVND: total.Amount(),
		OrderInfo: intent.OrderInfo,
		ClientIP:  cmd.ClientIP,
		BankCode:  cmd.BankCode,
		CreatedAt: createdAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build payment URL: %w", err)
	}

	uc.logger.Infow("payment URL created",
		"user_id", cmd.UserID,
		"txn_ref", txnRef,
		"amount", total.Amount(),
		"item_count", len(items),
	)

	return &dto.PaymentURLDTO{
		PaymentURL: paymentURL,
		TxnRef:     txnRef,
		Amount:     total.Amount(),
		Currency:   total.Currency(),
		ExpiresAt:  createdAt.Add(uc.gateway.ExpireWindow()),
	}, nil
}

func buildOrderInfo(items []*cart.Item) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.ProductName())
	}
	return fmt.Sprintf("Thanh toan don hang: %s", strings.Join(names, ", "))
}
