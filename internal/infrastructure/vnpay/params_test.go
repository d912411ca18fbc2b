package vnpay

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_CanonicalQuery(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Params)
		expected string
	}{
		{
			name: "sorts keys in byte order",
			setup: func(p *Params) {
				p.Set("vnp_TxnRef", "123")
				p.Set("vnp_Amount", "100")
				p.Set("vnp_Command", "pay")
			},
			expected: "vnp_Amount=100&vnp_Command=pay&vnp_TxnRef=123",
		},
		{
			name: "url-encodes values",
			setup: func(p *Params) {
				p.Set("vnp_OrderInfo", "Thanh toan don hang")
				p.Set("vnp_ReturnUrl", "https://shop.example.com/return?a=1")
			},
			expected: "vnp_OrderInfo=Thanh+toan+don+hang&vnp_ReturnUrl=https%3A%2F%2Fshop.example.com%2Freturn%3Fa%3D1",
		},
		{
			name: "excludes empty values",
			setup: func(p *Params) {
				p.Set("vnp_TxnRef", "123")
				p.Set("vnp_BankCode", "")
			},
			expected: "vnp_TxnRef=123",
		},
		{
			name:     "empty set renders empty string",
			setup:    func(p *Params) {},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams()
			tt.setup(p)
			assert.Equal(t, tt.expected, p.CanonicalQuery())
		})
	}
}

func TestParams_CanonicalQueryIsStable(t *testing.T) {
	p := NewParams()
	p.Set("vnp_Version", "2.1.0")
	p.Set("vnp_Amount", "15000000")
	p.Set("vnp_TmnCode", "DEMO")

	first := p.CanonicalQuery()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.CanonicalQuery())
	}
}

func TestParamsFromQuery(t *testing.T) {
	query := url.Values{}
	query.Set("vnp_TxnRef", "1700000000000000000")
	query.Set("vnp_ResponseCode", "00")
	query.Set("unrelated", "ignored")
	query.Set("vnp_Empty", "")

	p := ParamsFromQuery(query)

	assert.Equal(t, "1700000000000000000", p.Get("vnp_TxnRef"))
	assert.Equal(t, "00", p.Get("vnp_ResponseCode"))
	assert.False(t, p.Has("unrelated"))
	assert.False(t, p.Has("vnp_Empty"))
	assert.Equal(t, 2, p.Len())
}
