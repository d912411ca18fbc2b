package usecases

import (
	"context"
	"fmt"

	"bookstore/internal/application/checkout/dto"
	"bookstore/internal/domain/cart"
	vo "bookstore/internal/domain/order/valueobjects"
	apperrors "bookstore/internal/shared/errors"
	"bookstore/internal/shared/logger"
)

// AddCartItemCommand contains data for adding a product to the cart.
// Adding a product already in the cart replaces its quantity.
type AddCartItemCommand struct {
	UserID      uint
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   int64
}

type AddCartItemUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewAddCartItemUseCase(cartRepo cart.Repository, logger logger.Interface) *AddCartItemUseCase {
	return &AddCartItemUseCase{cartRepo: cartRepo, logger: logger}
}

func (uc *AddCartItemUseCase) Execute(ctx context.Context, cmd AddCartItemCommand) (*dto.CartDTO, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}

	existing, err := uc.cartRepo.FindByUserAndProduct(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to check cart: %w", err)
	}

	if existing != nil {
		if err := existing.UpdateQuantity(cmd.Quantity); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.cartRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	} else {
		item, err := cart.NewItem(cmd.UserID, cmd.ProductID, cmd.ProductName, cmd.Quantity, vo.NewMoney(cmd.UnitPrice, "VND"))
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.cartRepo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	}

	return uc.cartView(ctx, cmd.UserID)
}

func (uc *AddCartItemUseCase) cartView(ctx context.Context, userID uint) (*dto.CartDTO, error) {
	items, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return dto.CartToDTO(items), nil
}

// RemoveCartItemCommand identifies one cart line to remove.
type RemoveCartItemCommand struct {
	UserID    uint
	ProductID uint
}

type RemoveCartItemUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewRemoveCartItemUseCase(cartRepo cart.Repository, logger logger.Interface) *RemoveCartItemUseCase {
	return &RemoveCartItemUseCase{cartRepo: cartRepo, logger: logger}
}

func (uc *RemoveCartItemUseCase) Execute(ctx context.Context, cmd RemoveCartItemCommand) error {
	if cmd.UserID == 0 || cmd.ProductID == 0 {
		return apperrors.NewValidationError("user ID and product ID are required")
	}
	if err := uc.cartRepo.DeleteByUserAndProduct(ctx, cmd.UserID, cmd.ProductID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

type GetCartUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewGetCartUseCase(cartRepo cart.Repository, logger logger.Interface) *GetCartUseCase {
	return &GetCartUseCase{cartRepo: cartRepo, logger: logger}
}

func (uc *GetCartUseCase) Execute(ctx context.Context, userID uint) (*dto.CartDTO, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	items, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return dto.CartToDTO(items), nil
}
