package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
)

// Signer computes and checks HMAC-SHA512 signatures over canonical query
// strings. The secret never leaves this struct; callers log parameters, not
// signing material.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, fmt.Errorf("hash secret is required")
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign returns the lowercase hex HMAC-SHA512 of data.
func (s *Signer) Sign(data string) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches data. The comparison is
// case-insensitive on the hex digits and constant time on the MAC bytes;
// malformed hex never verifies.
func (s *Signer) Verify(data, signature string) bool {
	got, err := hex.DecodeString(strings.ToLower(signature))
	if err != nil {
		return false
	}
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(data))
	return hmac.Equal(mac.Sum(nil), got)
}
