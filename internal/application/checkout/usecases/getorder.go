package usecases

import (
	"context"
	"fmt"

	"bookstore/internal/application/checkout/dto"
	"bookstore/internal/domain/order"
	apperrors "bookstore/internal/shared/errors"
	"bookstore/internal/shared/logger"
)

// GetOrderCommand identifies one order for one user.
type GetOrderCommand struct {
	UserID  uint
	OrderID uint
}

type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, cmd GetOrderCommand) (*dto.OrderDTO, error) {
	if cmd.UserID == 0 || cmd.OrderID == 0 {
		return nil, apperrors.NewValidationError("user ID and order ID are required")
	}

	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if o == nil || o.UserID() != cmd.UserID {
		// Hide other users' orders behind the same not-found answer.
		return nil, apperrors.NewNotFoundError("order not found")
	}
	return dto.OrderToDTO(o), nil
}
