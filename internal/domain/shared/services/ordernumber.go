package services

import (
	"fmt"

	"bookstore/internal/shared/biztime"
)

type OrderNumberGenerator interface {
	Generate(prefix string) string
}

type DefaultOrderNumberGenerator struct{}

func NewOrderNumberGenerator() OrderNumberGenerator {
	return &DefaultOrderNumberGenerator{}
}

func (g *DefaultOrderNumberGenerator) Generate(prefix string) string {
	now := biztime.NowUTC()
	return fmt.Sprintf("%s%s%06d",
		prefix,
		now.Format("20060102150405"),
		now.Nanosecond()%1000000,
	)
}

// PaymentReferenceGenerator produces the vnp_TxnRef for an outbound payment
// attempt. References must be unique per attempt; a nanosecond timestamp
// distinguishes attempts even when the same buyer retries immediately.
type PaymentReferenceGenerator interface {
	Generate() string
}

type DefaultPaymentReferenceGenerator struct{}

func NewPaymentReferenceGenerator() PaymentReferenceGenerator {
	return &DefaultPaymentReferenceGenerator{}
}

func (g *DefaultPaymentReferenceGenerator) Generate() string {
	return fmt.Sprintf("%d", biztime.NowUTC().UnixNano())
}
