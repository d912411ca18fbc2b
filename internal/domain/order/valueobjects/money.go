package valueobjects

import "fmt"

// Money is an amount of currency held as a whole number of dong. VND has no
// circulating subunit, but the payment provider requires amounts expressed as
// an integer count of hundredths, so the gateway conversion multiplies by 100
// exactly once at the wire boundary.
type Money struct {
	amount   int64
	currency string
}

const gatewayMinorUnitFactor = 100

func NewMoney(amount int64, currency string) Money {
	if currency == "" {
		currency = "VND"
	}
	return Money{
		amount:   amount,
		currency: currency,
	}
}

// NewMoneyFromGatewayAmount converts a provider minor-unit amount (hundredths
// of a dong) back into Money.
func NewMoneyFromGatewayAmount(minorUnits int64, currency string) Money {
	return NewMoney(minorUnits/gatewayMinorUnitFactor, currency)
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

// GatewayAmount returns the amount in the provider's minor units (x100).
// The provider is never sent a decimal fraction.
func (m Money) GatewayAmount() int64 {
	return m.amount * gatewayMinorUnitFactor
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount, currency: m.currency}
}

func (m Money) MultiplyQuantity(qty int) Money {
	return Money{amount: m.amount * int64(qty), currency: m.currency}
}

func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
