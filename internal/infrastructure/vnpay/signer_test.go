package vnpay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 4231 test case 2 for HMAC-SHA-512.
const (
	rfc4231Key  = "Jefe"
	rfc4231Data = "what do ya want for nothing?"
	rfc4231MAC  = "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea250554" +
		"9758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737"
)

func TestNewSigner_EmptySecret(t *testing.T) {
	signer, err := NewSigner("")
	assert.Error(t, err)
	assert.Nil(t, signer)
}

func TestSigner_Sign(t *testing.T) {
	signer, err := NewSigner(rfc4231Key)
	require.NoError(t, err)

	mac := signer.Sign(rfc4231Data)

	assert.Equal(t, rfc4231MAC, mac)
	assert.Equal(t, strings.ToLower(mac), mac, "signature must be lowercase hex")
}

func TestSigner_Verify(t *testing.T) {
	signer, err := NewSigner(rfc4231Key)
	require.NoError(t, err)

	tests := []struct {
		name      string
		data      string
		signature string
		want      bool
	}{
		{
			name:      "valid lowercase signature",
			data:      rfc4231Data,
			signature: rfc4231MAC,
			want:      true,
		},
		{
			name:      "valid uppercase signature",
			data:      rfc4231Data,
			signature: strings.ToUpper(rfc4231MAC),
			want:      true,
		},
		{
			name:      "tampered data",
			data:      rfc4231Data + "x",
			signature: rfc4231MAC,
			want:      false,
		},
		{
			name:      "malformed hex",
			data:      rfc4231Data,
			signature: "not-hex",
			want:      false,
		},
		{
			name:      "truncated signature",
			data:      rfc4231Data,
			signature: rfc4231MAC[:64],
			want:      false,
		},
		{
			name:      "empty signature",
			data:      rfc4231Data,
			signature: "",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, signer.Verify(tt.data, tt.signature))
		})
	}
}

func TestSigner_DifferentSecretsDisagree(t *testing.T) {
	a, err := NewSigner("secret-a")
	require.NoError(t, err)
	b, err := NewSigner("secret-b")
	require.NoError(t, err)

	data := "vnp_Amount=15000000&vnp_TxnRef=1"
	assert.True(t, a.Verify(data, a.Sign(data)))
	assert.False(t, b.Verify(data, a.Sign(data)))
}
