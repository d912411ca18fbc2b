package vnpay

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/shared/config"
)

func testVNPayConfig() config.VNPayConfig {
	return config.VNPayConfig{
		BaseURL:       "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		TmnCode:       "DEMOV210",
		HashSecret:    "RAOEXHYVSDDIIENYWSLDIIZTANRUAXNG",
		ReturnURL:     "https://bookstore.example.com/api/v1/checkout/vnpay-return",
		Version:       "2.1.0",
		Locale:        "vn",
		CurrencyCode:  "VND",
		ExpireMinutes: 15,
	}
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(testVNPayConfig())
	require.NoError(t, err)
	return client
}

func TestNewClient_RejectsIncompleteConfig(t *testing.T) {
	cfg := testVNPayConfig()
	cfg.HashSecret = ""

	client, err := NewClient(cfg)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestClient_BuildPaymentURL(t *testing.T) {
	client := newTestClient(t)

	rawURL, err := client.BuildPaymentURL(PaymentRequest{
		TxnRef:    "1700000000000000000",
		AmountVND: 150000,
		OrderInfo: "Thanh toan don hang",
		ClientIP:  "203.0.113.7",
		CreatedAt: time.Date(2026, 8, 29, 3, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "sandbox.vnpayment.vn", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "15000000", query.Get("vnp_Amount"), "amount must be scaled by 100")
	assert.Equal(t, "1700000000000000000", query.Get("vnp_TxnRef"))
	assert.Equal(t, "pay", query.Get("vnp_Command"))
	assert.Equal(t, "DEMOV210", query.Get("vnp_TmnCode"))
	assert.Equal(t, "VND", query.Get("vnp_CurrCode"))
	assert.Equal(t, "203.0.113.7", query.Get("vnp_IpAddr"))
	assert.NotEmpty(t, query.Get("vnp_SecureHash"))
	assert.Empty(t, query.Get("vnp_BankCode"), "optional empty params must not appear")

	// Asia/Ho_Chi_Minh is UTC+7; expiry is create + 15 minutes.
	assert.Equal(t, "20260829100000", query.Get("vnp_CreateDate"))
	assert.Equal(t, "20260829101500", query.Get("vnp_ExpireDate"))
}

func TestClient_BuildPaymentURL_Validation(t *testing.T) {
	client := newTestClient(t)

	_, err := client.BuildPaymentURL(PaymentRequest{TxnRef: "", AmountVND: 1000})
	assert.Error(t, err)

	_, err = client.BuildPaymentURL(PaymentRequest{TxnRef: "x", AmountVND: 0})
	assert.Error(t, err)

	_, err = client.BuildPaymentURL(PaymentRequest{TxnRef: "x", AmountVND: -500})
	assert.Error(t, err)
}

// buildCallbackQuery fabricates a signed callback the way the gateway
// produces one: the signature covers the sorted vnp_ params minus the two
// hash fields.
func buildCallbackQuery(t *testing.T, client *Client, mutate func(*Params)) url.Values {
	t.Helper()

	p := NewParams()
	p.Set(paramTmnCode, "DEMOV210")
	p.Set(paramTxnRef, "1700000000000000000")
	p.Set(paramAmount, "15000000")
	p.Set(paramResponseCode, "00")
	p.Set("vnp_TransactionStatus", "00")
	p.Set(paramTransactionNo, "14687878")
	p.Set(paramBankCode, "NCB")
	p.Set(paramOrderInfo, "Thanh toan don hang")
	p.Set("vnp_PayDate", "20260829100512")
	if mutate != nil {
		mutate(p)
	}

	hash := client.signer.Sign(p.CanonicalQuery())

	query := url.Values{}
	for k, v := range p.All() {
		query.Set(k, v)
	}
	query.Set(paramSecureHash, hash)
	return query
}

func TestClient_ParseCallback_Authentic(t *testing.T) {
	client := newTestClient(t)

	result := client.ParseCallback(buildCallbackQuery(t, client, nil))

	assert.True(t, result.IsAuthentic)
	assert.True(t, result.IsSuccessful())
	assert.Equal(t, "1700000000000000000", result.TxnRef)
	assert.Equal(t, int64(150000), result.AmountVND, "amount must be scaled back from minor units")
	assert.Equal(t, "14687878", result.TransactionNo)
	assert.Equal(t, "NCB", result.BankCode)
	assert.Equal(t, "00", result.ResponseCode)
	assert.False(t, result.PayDate.IsZero())
}

func TestClient_ParseCallback_UppercaseHashVerifies(t *testing.T) {
	client := newTestClient(t)

	query := buildCallbackQuery(t, client, nil)
	query.Set(paramSecureHash, strings.ToUpper(query.Get(paramSecureHash)))

	result := client.ParseCallback(query)
	assert.True(t, result.IsAuthentic)
}

func TestClient_ParseCallback_SecureHashTypeIgnored(t *testing.T) {
	client := newTestClient(t)

	query := buildCallbackQuery(t, client, nil)
	query.Set(paramSecureHashType, "HMACSHA512")

	result := client.ParseCallback(query)
	assert.True(t, result.IsAuthentic, "hash type field must not enter the signed set")
}

func TestClient_ParseCallback_Tampered(t *testing.T) {
	client := newTestClient(t)

	tests := []struct {
		name   string
		mutate func(url.Values)
	}{
		{
			name: "amount changed after signing",
			mutate: func(q url.Values) {
				q.Set("vnp_Amount", "100")
			},
		},
		{
			name: "response code changed after signing",
			mutate: func(q url.Values) {
				q.Set("vnp_ResponseCode", "24")
			},
		},
		{
			name: "hash removed",
			mutate: func(q url.Values) {
				q.Del("vnp_SecureHash")
			},
		},
		{
			name: "hash malformed",
			mutate: func(q url.Values) {
				q.Set("vnp_SecureHash", "zz-not-hex")
			},
		},
		{
			name: "extra signed-looking param injected",
			mutate: func(q url.Values) {
				q.Set("vnp_CardType", "ATM")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := buildCallbackQuery(t, client, nil)
			tt.mutate(query)

			result := client.ParseCallback(query)
			assert.False(t, result.IsAuthentic)
			assert.False(t, result.IsSuccessful())
		})
	}
}

func TestClient_ParseCallback_MalformedPayload(t *testing.T) {
	client := newTestClient(t)

	t.Run("missing txn ref", func(t *testing.T) {
		query := buildCallbackQuery(t, client, func(p *Params) {
			p.Delete(paramTxnRef)
		})
		result := client.ParseCallback(query)
		assert.False(t, result.IsAuthentic)
	})

	t.Run("missing response code", func(t *testing.T) {
		query := buildCallbackQuery(t, client, func(p *Params) {
			p.Delete(paramResponseCode)
		})
		result := client.ParseCallback(query)
		assert.False(t, result.IsAuthentic)
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		query := buildCallbackQuery(t, client, func(p *Params) {
			p.Set(paramAmount, "fifteen million")
		})
		result := client.ParseCallback(query)
		assert.False(t, result.IsAuthentic)
	})

	t.Run("empty query", func(t *testing.T) {
		result := client.ParseCallback(url.Values{})
		assert.False(t, result.IsAuthentic)
	})
}

func TestClient_ParseCallback_FailureCodeIsAuthenticButNotSuccessful(t *testing.T) {
	client := newTestClient(t)

	query := buildCallbackQuery(t, client, func(p *Params) {
		p.Set(paramResponseCode, "24")
	})

	result := client.ParseCallback(query)
	assert.True(t, result.IsAuthentic)
	assert.False(t, result.IsSuccessful())
	assert.Equal(t, "24", result.ResponseCode)
	assert.NotEmpty(t, result.Message)
}

func TestClient_BuildThenParseRoundTrip(t *testing.T) {
	client := newTestClient(t)

	rawURL, err := client.BuildPaymentURL(PaymentRequest{
		TxnRef:    "1700000000000000001",
		AmountVND: 99000,
		OrderInfo: "Thanh toán đơn hàng số 42",
		ClientIP:  "2001:db8::1",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	query := parsed.Query()

	// Re-encode the signed set exactly as the verifier does and check the
	// embedded hash against it: signing and verification share one encoder.
	p := ParamsFromQuery(query)
	hash := p.Get("vnp_SecureHash")
	p.Delete("vnp_SecureHash")
	assert.True(t, client.signer.Verify(p.CanonicalQuery(), hash),
		"a URL we sign must verify under the same canonical encoding")

	assert.Equal(t, "9900000", query.Get("vnp_Amount"))
	assert.Equal(t, "127.0.0.1", query.Get("vnp_IpAddr"), "IPv6 collapses to loopback")
	assert.NotContains(t, query.Get("vnp_OrderInfo"), "á", "diacritics are folded")
}
