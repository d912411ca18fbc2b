package vnpay

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"bookstore/internal/shared/biztime"
	"bookstore/internal/shared/config"
)

// minorUnitFactor scales VND to the gateway's amount unit: the gateway
// expects the amount multiplied by 100.
const minorUnitFactor = 100

const defaultOrderType = "other"

// PaymentRequest describes one payment attempt to redirect a buyer for.
type PaymentRequest struct {
	TxnRef    string
	AmountVND int64
	OrderInfo string
	ClientIP  string
	BankCode  string
	CreatedAt time.Time
}

// CallbackResult is the outcome of parsing and verifying a return/IPN
// request. Nothing in it may be trusted unless IsAuthentic is true.
type CallbackResult struct {
	IsAuthentic   bool
	TxnRef        string
	AmountVND     int64
	TransactionNo string
	BankCode      string
	ResponseCode  string
	Message       string
	OrderInfo     string
	PayDate       time.Time
	RawParams     map[string]string
}

// IsSuccessful reports whether the callback is both authentic and carries
// the gateway's success code.
func (r *CallbackResult) IsSuccessful() bool {
	return r.IsAuthentic && r.ResponseCode == ResponseCodeSuccess
}

// Client builds signed payment URLs and verifies gateway callbacks. The
// builder and the verifier share one canonical encoding, so the signing
// base string is identical on both paths.
type Client struct {
	cfg    config.VNPayConfig
	signer *Signer
}

func NewClient(cfg config.VNPayConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	signer, err := NewSigner(cfg.HashSecret)
	if err != nil {
		return nil, err
	}
	return &Client{cfg: cfg, signer: signer}, nil
}

// ExpireWindow is how long a built payment URL stays payable.
func (c *Client) ExpireWindow() time.Duration {
	return time.Duration(c.cfg.ExpireMinutes) * time.Minute
}

// BuildPaymentURL assembles, signs and returns the redirect URL for one
// payment attempt. Timestamps are rendered in the gateway's timezone wall
// clock; the amount is scaled to the gateway's minor unit.
func (c *Client) BuildPaymentURL(req PaymentRequest) (string, error) {
	if req.TxnRef == "" {
		return "", fmt.Errorf("transaction reference is required")
	}
	if req.AmountVND <= 0 {
		return "", fmt.Errorf("amount must be positive")
	}

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = biztime.NowUTC()
	}
	expiresAt := createdAt.Add(c.ExpireWindow())

	p := NewParams()
	p.Set(paramVersion, c.cfg.Version)
	p.Set(paramCommand, "pay")
	p.Set(paramTmnCode, c.cfg.TmnCode)
	p.Set(paramAmount, strconv.FormatInt(req.AmountVND*minorUnitFactor, 10))
	p.Set(paramCurrCode, c.cfg.CurrencyCode)
	p.Set(paramTxnRef, req.TxnRef)
	p.Set(paramOrderInfo, SanitizeOrderInfo(req.OrderInfo))
	p.Set(paramOrderType, defaultOrderType)
	p.Set(paramLocale, c.cfg.Locale)
	p.Set(paramReturnURL, c.cfg.ReturnURL)
	p.Set(paramIPAddr, NormalizeClientIP(req.ClientIP))
	p.Set(paramCreateDate, biztime.FormatCompact(createdAt))
	p.Set(paramExpireDate, biztime.FormatCompact(expiresAt))
	p.Set(paramBankCode, req.BankCode)

	query := p.CanonicalQuery()
	hash := c.signer.Sign(query)

	return c.cfg.BaseURL + "?" + query + "&" + paramSecureHash + "=" + hash, nil
}

// ParseCallback verifies a return or IPN request. The secure hash fields
// are removed before re-encoding the remaining vnp_ parameters with the
// same canonical form used at signing time. Any structural defect, missing
// hash, malformed amount or missing response code, yields an inauthentic
// result rather than an error the caller might mistake for transport
// failure.
func (c *Client) ParseCallback(query url.Values) *CallbackResult {
	p := ParamsFromQuery(query)

	result := &CallbackResult{
		TxnRef:        p.Get(paramTxnRef),
		TransactionNo: p.Get(paramTransactionNo),
		BankCode:      p.Get(paramBankCode),
		ResponseCode:  p.Get(paramResponseCode),
		OrderInfo:     p.Get(paramOrderInfo),
		RawParams:     p.All(),
	}
	result.Message = ResponseCodeMessage(result.ResponseCode)

	receivedHash := p.Get(paramSecureHash)
	p.Delete(paramSecureHash)
	p.Delete(paramSecureHashType)

	if receivedHash == "" || p.Len() == 0 {
		return result
	}
	if !c.signer.Verify(p.CanonicalQuery(), receivedHash) {
		return result
	}
	if result.TxnRef == "" || result.ResponseCode == "" {
		return result
	}

	rawAmount := p.Get(paramAmount)
	minor, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil || minor < 0 {
		return result
	}
	result.AmountVND = minor / minorUnitFactor

	if payDate := p.Get("vnp_PayDate"); payDate != "" {
		if t, err := biztime.ParseCompact(payDate); err == nil {
			result.PayDate = t
		}
	}

	result.IsAuthentic = true
	return result
}
