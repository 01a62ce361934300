package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentUPI        PaymentMethod = "upi"
	PaymentNetBanking PaymentMethod = "net_banking"
)

type PaymentOption struct {
	Code   string
	Method PaymentMethod
	Label  string
}

// PaymentOptions is the fixed menu offered at the payment stage.
var PaymentOptions = []PaymentOption{
	{Code: "1", Method: PaymentCreditCard, Label: "Credit Card"},
	{Code: "2", Method: PaymentDebitCard, Label: "Debit Card"},
	{Code: "3", Method: PaymentUPI, Label: "UPI"},
	{Code: "4", Method: PaymentNetBanking, Label: "Net Banking"},
}

func ParsePaymentMethod(input string) (PaymentMethod, error) {
	code := strings.TrimSpace(input)
	if code == "" {
		return "", ErrEmptyInput
	}

	opt, ok := lo.Find(PaymentOptions, func(o PaymentOption) bool {
		return o.Code == code
	})
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, code)
	}

	return opt.Method, nil
}

func (m PaymentMethod) Label() string {
	opt, ok := lo.Find(PaymentOptions, func(o PaymentOption) bool {
		return o.Method == m
	})
	if !ok {
		return string(m)
	}
	return opt.Label
}
