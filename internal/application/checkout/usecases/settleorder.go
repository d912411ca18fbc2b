package usecases

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"bookstore/internal/application/checkout/dto"
	"bookstore/internal/domain/cart"
	"bookstore/internal/domain/order"
	vo "bookstore/internal/domain/order/valueobjects"
	"bookstore/internal/infrastructure/vnpay"
	"bookstore/internal/shared/biztime"
	apperrors "bookstore/internal/shared/errors"
	"bookstore/internal/shared/goroutine"
	"bookstore/internal/shared/logger"
)

// settleTimeout bounds one settlement attempt end to end, including the
// database transaction. The gateway retries IPN deliveries, so giving up
// is safe.
const settleTimeout = 15 * time.Second

type SettleOrderUseCase struct {
	orderRepo   order.Repository
	cartRepo    cart.Repository
	gateway     PaymentGateway
	intentStore PaymentIntentStore
	txManager   TxManager
	publisher   OrderEventPublisher // Optional
	logger      logger.Interface
}

func NewSettleOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	gateway PaymentGateway,
	intentStore PaymentIntentStore,
	txManager TxManager,
	logger logger.Interface,
) *SettleOrderUseCase {
	return &SettleOrderUseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		gateway:     gateway,
		intentStore: intentStore,
		txManager:   txManager,
		logger:      logger,
	}
}

// SetEventPublisher sets the settled-order publisher (optional dependency injection)
func (uc *SettleOrderUseCase) SetEventPublisher(publisher OrderEventPublisher) {
	uc.publisher = publisher
}

// Execute processes one gateway callback, return redirect and IPN alike.
// An order is created exactly once per successful authentic callback:
// the unique payment reference absorbs duplicate deliveries and races, and
// nothing is persisted for failed, cancelled or inauthentic callbacks.
func (uc *SettleOrderUseCase) Execute(ctx context.Context, query url.Values) (*dto.SettlementDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, settleTimeout)
	defer cancel()

	result := uc.gateway.ParseCallback(query)
	if !result.IsAuthentic {
		uc.logger.Warnw("rejected inauthentic payment callback",
			"txn_ref", result.TxnRef,
			"response_code", result.ResponseCode,
		)
		return nil, apperrors.NewValidationError("invalid payment callback signature")
	}

	// Duplicate delivery: the reference already settled an order.
	existing, err := uc.orderRepo.FindByPaymentReference(ctx, result.TxnRef)
	if err != nil {
		return nil, fmt.Errorf("failed to check for settled order: %w", err)
	}
	if existing != nil {
		uc.logger.Infow("payment reference already settled",
			"txn_ref", result.TxnRef,
			"order_no", existing.OrderNo(),
		)
		return &dto.SettlementDTO{
			Settled:        true,
			AlreadySettled: true,
			ResponseCode:   result.ResponseCode,
			Message:        result.Message,
			Order:          dto.OrderToDTO(existing),
		}, nil
	}

	if !result.IsSuccessful() {
		uc.logger.Infow("payment attempt did not succeed",
			"txn_ref", result.TxnRef,
			"response_code", result.ResponseCode,
			"message", result.Message,
		)
		uc.discardIntent(ctx, result.TxnRef)
		return &dto.SettlementDTO{
			Settled:      false,
			ResponseCode: result.ResponseCode,
			Message:      result.Message,
		}, nil
	}

	intent, err := uc.intentStore.Get(ctx, result.TxnRef)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment intent: %w", err)
	}
	if intent == nil {
		uc.logger.Warnw("no payment intent for successful callback",
			"txn_ref", result.TxnRef,
		)
		return nil, apperrors.NewNotFoundError("payment intent expired or unknown")
	}

	settled, err := uc.settle(ctx, intent, result)
	if err != nil {
		return nil, err
	}

	uc.discardIntent(ctx, result.TxnRef)
	uc.publishSettled(settled)

	return &dto.SettlementDTO{
		Settled:      true,
		ResponseCode: result.ResponseCode,
		Message:      result.Message,
		Order:        dto.OrderToDTO(settled),
	}, nil
}

func (uc *SettleOrderUseCase) settle(
	ctx context.Context,
	intent *PaymentIntent,
	result *vnpay.CallbackResult,
) (*order.Order, error) {
	items, err := uc.cartRepo.FindByUserID(ctx, intent.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for settlement: %w", err)
	}
	if len(items) == 0 {
		uc.logger.Errorw("cart empty at settlement time",
			"txn_ref", intent.TxnRef,
			"user_id", intent.UserID,
		)
		return nil, apperrors.NewConflictError("cart is empty, nothing to settle")
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		li, err := order.NewLineItem(item.ProductID(), item.ProductName(), item.Quantity(), item.UnitPrice())
		if err != nil {
			return nil, fmt.Errorf("invalid cart line for product %d: %w", item.ProductID(), err)
		}
		lineItems = append(lineItems, li)
	}

	// The recomputed cart total is authoritative. The gateway-echoed amount
	// is only cross-checked for the audit trail.
	total := cart.Total(items)
	gatewayAmount := vo.NewMoney(result.AmountVND, total.Currency())
	if !total.Equals(gatewayAmount) {
		uc.logger.Warnw("gateway amount differs from recomputed total",
			"txn_ref", intent.TxnRef,
			"recomputed_total", total.Amount(),
			"gateway_amount", gatewayAmount.Amount(),
		)
	}

	paidAt := result.PayDate
	if paidAt.IsZero() {
		paidAt = biztime.NowUTC()
	}
	payment, err := order.NewPaymentRecord(
		vo.PaymentMethodVNPay,
		total,
		intent.TxnRef,
		result.TransactionNo,
		result.BankCode,
		paidAt,
		result.RawParams,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment record: %w", err)
	}

	settled, err := order.NewSettledOrder(intent.UserID, intent.ShippingAddress, lineItems, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to build order: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.CreateSettled(txCtx, settled); err != nil {
			return err
		}
		return uc.cartRepo.ClearByUserID(txCtx, intent.UserID)
	})
	if err != nil {
		// A concurrent delivery of the same reference won the race. The
		// unique index makes this loss benign: return the winner's order.
		if apperrors.IsDuplicateError(err) {
			winner, findErr := uc.orderRepo.FindByPaymentReference(ctx, intent.TxnRef)
			if findErr == nil && winner != nil {
				uc.logger.Infow("lost settlement race, returning existing order",
					"txn_ref", intent.TxnRef,
					"order_no", winner.OrderNo(),
				)
				return winner, nil
			}
		}
		return nil, fmt.Errorf("failed to persist settled order: %w", err)
	}

	uc.logger.Infow("order settled",
		"order_no", settled.OrderNo(),
		"txn_ref", intent.TxnRef,
		"user_id", intent.UserID,
		"total", total.Amount(),
	)
	return settled, nil
}

func (uc *SettleOrderUseCase) discardIntent(ctx context.Context, txnRef string) {
	if err := uc.intentStore.Delete(ctx, txnRef); err != nil {
		uc.logger.Warnw("failed to delete payment intent", "txn_ref", txnRef, "error", err)
	}
}

func (uc *SettleOrderUseCase) publishSettled(settled *order.Order) {
	if uc.publisher == nil {
		return
	}
	event := OrderSettledEvent{
		OrderID:          settled.ID(),
		OrderNo:          settled.OrderNo(),
		UserID:           settled.UserID(),
		Total:            settled.Total().Amount(),
		Currency:         settled.Total().Currency(),
		PaymentReference: settled.Payment().Reference(),
		TransactionNo:    settled.Payment().TransactionNo(),
		SettledAt:        settled.Payment().PaidAt(),
	}
	goroutine.SafeGo(uc.logger, "publish-order-settled", func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uc.publisher.PublishOrderSettled(pubCtx, event); err != nil {
			uc.logger.Warnw("failed to publish order settled event",
				"order_no", event.OrderNo,
				"error", err,
			)
		}
	})
}
