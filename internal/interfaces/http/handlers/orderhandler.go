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

type OrderHandler struct {
	listOrdersUC *checkoutUsecases.ListOrdersUseCase
	getOrderUC   *checkoutUsecases.GetOrderUseCase
	logger       logger.Interface
}

func NewOrderHandler(
	listOrdersUC *checkoutUsecases.ListOrdersUseCase,
	getOrderUC *checkoutUsecases.GetOrderUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		listOrdersUC: listOrdersUC,
		getOrderUC:   getOrderUC,
		logger:       logger,
	}
}

// @Summary		List orders
// @Description	List the caller's orders, newest first
// @Tags			orders
// @Produce		json
// @Security		Bearer
// @Param			page		query		int										false	"Page number"
// @Param			page_size	query		int										false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=dto.OrderListDTO}	"Orders"
// @Failure		401			{object}	utils.APIResponse						"Unauthorized"
// @Router			/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listOrdersUC.Execute(c.Request.Context(), checkoutUsecases.ListOrdersCommand{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.logger.Errorw("failed to list orders", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "orders retrieved", result)
}

// @Summary		Get order
// @Description	Get one of the caller's orders by ID
// @Tags			orders
// @Produce		json
// @Security		Bearer
// @Param			id	path		int									true	"Order ID"
// @Success		200	{object}	utils.APIResponse{data=dto.OrderDTO}	"Order"
// @Failure		401	{object}	utils.APIResponse					"Unauthorized"
// @Failure		404	{object}	utils.APIResponse					"Not found"
// @Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID")
		return
	}

	result, err := h.getOrderUC.Execute(c.Request.Context(), checkoutUsecases.GetOrderCommand{
		UserID:  userID,
		OrderID: uint(orderID),
	})
	if err != nil {
		h.logger.Warnw("failed to get order", "error", err, "user_id", userID, "order_id", orderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order retrieved", result)
}
