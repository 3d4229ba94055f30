package paymentControllers

import (
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// ProviderOrder is the payment-intent issued by Razorpay, echoed back
// to the client verbatim.
type ProviderOrder struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"` // Minor units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Provider creates payment-intents with the gateway. Amounts are
// already scaled to minor units by the caller.
type Provider interface {
	CreateOrder(amountMinor int, currency, receipt string) (*ProviderOrder, error)
}

// getRazorpayConfig reads the server-held credentials. The secret never
// leaves this package.
func getRazorpayConfig() (keyID, keySecret string, err error) {
	keyID = os.Getenv("RAZORPAY_KEY_ID")
	keySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return "", "", fmt.Errorf("razorpay configuration missing")
	}
	return keyID, keySecret, nil
}

type razorpayProvider struct{}

// NewRazorpayProvider returns the production gateway client.
func NewRazorpayProvider() Provider {
	return razorpayProvider{}
}

func (razorpayProvider) CreateOrder(amountMinor int, currency, receipt string) (*ProviderOrder, error) {
	keyID, keySecret, err := getRazorpayConfig()
	if err != nil {
		return nil, err
	}

	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(30) // seconds

	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %v", err)
	}

	id, _ := order["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay returned empty order id")
	}

	out := &ProviderOrder{
		ID:       id,
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	}
	// Trust the provider's echo when present
	if a, ok := order["amount"].(float64); ok {
		out.Amount = int(a)
	}
	if cur, ok := order["currency"].(string); ok && cur != "" {
		out.Currency = cur
	}
	return out, nil
}
