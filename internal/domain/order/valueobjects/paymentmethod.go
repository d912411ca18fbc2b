package valueobjects

import "fmt"

type PaymentMethod string

const (
	PaymentMethodVNPay PaymentMethod = "vnpay"
)

func NewPaymentMethod(method string) (PaymentMethod, error) {
	pm := PaymentMethod(method)
	if !pm.IsValid() {
		return "", fmt.Errorf("invalid payment method: %s", method)
	}
	return pm, nil
}

func (pm PaymentMethod) IsValid() bool {
	return pm == PaymentMethodVNPay
}

func (pm PaymentMethod) String() string {
	return string(pm)
}
