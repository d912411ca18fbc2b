package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutUsecases "bookstore/internal/application/checkout/usecases"
	"bookstore/internal/interfaces/http/middleware"
	"bookstore/internal/shared/logger"
	"bookstore/internal/shared/utils"
)

type CheckoutHandler struct {
	createPaymentURLUC *checkoutUsecases.CreatePaymentURLUseCase
	settleOrderUC      *checkoutUsecases.SettleOrderUseCase
	logger             logger.Interface
}

func NewCheckoutHandler(
	createPaymentURLUC *checkoutUsecases.CreatePaymentURLUseCase,
	settleOrderUC *checkoutUsecases.SettleOrderUseCase,
	logger logger.Interface,
) *CheckoutHandler {
	return &CheckoutHandler{
		createPaymentURLUC: createPaymentURLUC,
		settleOrderUC:      settleOrderUC,
		logger:             logger,
	}
}

type CreatePaymentURLRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required" validate:"required,min=1,max=500"`
	BankCode        string `json:"bank_code" validate:"omitempty,max=20"`
}

// @Summary		Create VNPay payment URL
// @Description	Build a signed VNPay redirect URL for the caller's cart
// @Tags			checkout
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			checkout	body		CreatePaymentURLRequest						true	"Checkout data"
// @Success		200			{object}	utils.APIResponse{data=dto.PaymentURLDTO}	"Payment URL created"
// @Failure		400			{object}	utils.APIResponse							"Bad request"
// @Failure		401			{object}	utils.APIResponse							"Unauthorized"
// @Failure		500			{object}	utils.APIResponse							"Internal server error"
// @Router			/checkout/vnpay [post]
func (h *CheckoutHandler) CreatePaymentURL(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreatePaymentURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("failed to bind checkout request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPaymentURLUC.Execute(c.Request.Context(), checkoutUsecases.CreatePaymentURLCommand{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		BankCode:        req.BankCode,
		ClientIP:        c.ClientIP(),
	})
	if err != nil {
		h.logger.Errorw("failed to create payment URL", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment URL created", result)
}

// @Summary		VNPay return callback
// @Description	Verify the return redirect from VNPay and settle the order
// @Tags			checkout
// @Produce		json
// @Success		200	{object}	utils.APIResponse{data=dto.SettlementDTO}	"Callback processed"
// @Failure		400	{object}	utils.APIResponse							"Invalid callback"
// @Failure		404	{object}	utils.APIResponse							"Unknown payment attempt"
// @Router			/checkout/vnpay-return [get]
func (h *CheckoutHandler) VNPayReturn(c *gin.Context) {
	result, err := h.settleOrderUC.Execute(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.logger.Warnw("vnpay return processing failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// ipnResponse is the acknowledgement body VNPay's IPN delivery expects.
type ipnResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

// @Summary		VNPay IPN callback
// @Description	Server-to-server settlement notification from VNPay
// @Tags			checkout
// @Produce		json
// @Success		200	{object}	ipnResponse	"Acknowledgement"
// @Router			/checkout/vnpay-ipn [get]
func (h *CheckoutHandler) VNPayIPN(c *gin.Context) {
	result, err := h.settleOrderUC.Execute(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		// IPN answers use the gateway's own code table so it stops retrying
		// permanently-failed deliveries.
		h.logger.Warnw("vnpay ipn processing failed", "error", err)
		c.JSON(http.StatusOK, ipnResponse{RspCode: "97", Message: "Invalid signature or unknown order"})
		return
	}

	if result.AlreadySettled {
		c.JSON(http.StatusOK, ipnResponse{RspCode: "02", Message: "Order already confirmed"})
		return
	}
	c.JSON(http.StatusOK, ipnResponse{RspCode: "00", Message: "Confirm success"})
}
