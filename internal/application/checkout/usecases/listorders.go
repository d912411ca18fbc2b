package usecases

import (
	"context"
	"fmt"

	"bookstore/internal/application/checkout/dto"
	"bookstore/internal/domain/order"
	apperrors "bookstore/internal/shared/errors"
	"bookstore/internal/shared/logger"
)

// ListOrdersCommand contains pagination for a user's order history.
type ListOrdersCommand struct {
	UserID   uint
	Page     int
	PageSize int
}

type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, cmd ListOrdersCommand) (*dto.OrderListDTO, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 20
	}

	offset := (cmd.Page - 1) * cmd.PageSize
	orders, total, err := uc.orderRepo.ListByUserID(ctx, cmd.UserID, offset, cmd.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	out := make([]*dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderToDTO(o))
	}
	return &dto.OrderListDTO{
		Orders:   out,
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
