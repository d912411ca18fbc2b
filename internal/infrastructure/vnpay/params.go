package vnpay

import (
	"net/url"
	"sort"
	"strings"
)

// Gateway parameter names. The gateway sorts and signs on the raw names,
// so these must match the wire format exactly.
const (
	paramVersion        = "vnp_Version"
	paramCommand        = "vnp_Command"
	paramTmnCode        = "vnp_TmnCode"
	paramAmount         = "vnp_Amount"
	paramCurrCode       = "vnp_CurrCode"
	paramTxnRef         = "vnp_TxnRef"
	paramOrderInfo      = "vnp_OrderInfo"
	paramOrderType      = "vnp_OrderType"
	paramLocale         = "vnp_Locale"
	paramReturnURL      = "vnp_ReturnUrl"
	paramIPAddr         = "vnp_IpAddr"
	paramCreateDate     = "vnp_CreateDate"
	paramExpireDate     = "vnp_ExpireDate"
	paramBankCode       = "vnp_BankCode"
	paramTransactionNo  = "vnp_TransactionNo"
	paramResponseCode   = "vnp_ResponseCode"
	paramSecureHash     = "vnp_SecureHash"
	paramSecureHashType = "vnp_SecureHashType"
)

// Params is an ordered-on-demand parameter set for gateway requests and
// callbacks. Both the payment URL builder and the callback verifier encode
// through the same CanonicalQuery, so a URL we sign always verifies against
// itself.
type Params struct {
	values map[string]string
}

func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set stores a parameter. Empty values are dropped so they never reach the
// signing base string.
func (p *Params) Set(key, value string) {
	if key == "" || value == "" {
		return
	}
	p.values[key] = value
}

func (p *Params) Get(key string) string {
	return p.values[key]
}

func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

func (p *Params) Delete(key string) {
	delete(p.values, key)
}

func (p *Params) Len() int {
	return len(p.values)
}

// All returns a copy of the underlying key/value pairs.
func (p *Params) All() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// CanonicalQuery renders the parameters as url-encoded key=value pairs,
// sorted by key in byte order and joined with "&". This single form is both
// the signing base string and the query string of the payment URL.
func (p *Params) CanonicalQuery() string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[k]))
	}
	return b.String()
}

// ParamsFromQuery builds a parameter set from decoded query values, keeping
// only vnp_-prefixed names the way the gateway defines the signed set.
func ParamsFromQuery(query url.Values) *Params {
	p := NewParams()
	for key := range query {
		if strings.HasPrefix(key, "vnp_") {
			p.Set(key, query.Get(key))
		}
	}
	return p
}
