package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	checkoutUsecases "bookstore/internal/application/checkout/usecases"
	"bookstore/internal/interfaces/http/middleware"
	"bookstore/internal/shared/logger"
	"bookstore/internal/shared/utils"
)

type CartHandler struct {
	addItemUC    *checkoutUsecases.AddCartItemUseCase
	removeItemUC *checkoutUsecases.RemoveCartItemUseCase
	getCartUC    *checkoutUsecases.GetCartUseCase
	logger       logger.Interface
}

func NewCartHandler(
	addItemUC *checkoutUsecases.AddCartItemUseCase,
	removeItemUC *checkoutUsecases.RemoveCartItemUseCase,
	getCartUC *checkoutUsecases.GetCartUseCase,
	logger logger.Interface,
) *CartHandler {
	return &CartHandler{
		addItemUC:    addItemUC,
		removeItemUC: removeItemUC,
		getCartUC:    getCartUC,
		logger:       logger,
	}
}

type AddCartItemRequest struct {
	ProductID   uint   `json:"product_id" binding:"required" validate:"required,gt=0"`
	ProductName string `json:"product_name" binding:"required" validate:"required,min=1,max=255"`
	Quantity    int    `json:"quantity" binding:"required" validate:"required,gte=1"`
	UnitPrice   int64  `json:"unit_price" binding:"required" validate:"required,gte=1"`
}

// @Summary		Add cart item
// @Description	Add a product to the cart, or replace its quantity
// @Tags			cart
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			item	body		AddCartItemRequest					true	"Cart item"
// @Success		200		{object}	utils.APIResponse{data=dto.CartDTO}	"Updated cart"
// @Failure		400		{object}	utils.APIResponse					"Bad request"
// @Failure		401		{object}	utils.APIResponse					"Unauthorized"
// @Router			/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addItemUC.Execute(c.Request.Context(), checkoutUsecases.AddCartItemCommand{
		UserID:      userID,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		h.logger.Warnw("failed to add cart item", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "cart updated", result)
}

// @Summary		Remove cart item
// @Description	Remove a product from the cart
// @Tags			cart
// @Produce		json
// @Security		Bearer
// @Param			productId	path		int					true	"Product ID"
// @Success		204			{object}	nil					"Removed"
// @Failure		401			{object}	utils.APIResponse	"Unauthorized"
// @Router			/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil || productID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := h.removeItemUC.Execute(c.Request.Context(), checkoutUsecases.RemoveCartItemCommand{
		UserID:    userID,
		ProductID: uint(productID),
	}); err != nil {
		h.logger.Warnw("failed to remove cart item", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// @Summary		Get cart
// @Description	Get the caller's cart with its recomputed total
// @Tags			cart
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse{data=dto.CartDTO}	"Cart"
// @Failure		401	{object}	utils.APIResponse					"Unauthorized"
// @Router			/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getCartUC.Execute(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to get cart", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "cart retrieved", result)
}
