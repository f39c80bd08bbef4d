package utils

import (
	"encoding/json"
	"log"
	"time"

	"holistica/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Methods that go through the external gateway; the rest (transferencia,
// efectivo) are recorded directly.
var gatewayMethods = map[string]bool{
	"online":  true,
	"stripe":  true,
	"paypal":  true,
	"tarjeta": true,
}

type gatewayChargeResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// ChargeGateway runs a simulated charge against the configured payment
// gateway and returns a payment reference plus the raw gateway response.
// The charge never blocks a sale: when the gateway is not configured or
// unreachable, a locally generated reference is returned instead.
func ChargeGateway(method string, amount float64, email string) (string, []byte) {
	if !gatewayMethods[method] || config.AppConfig.PaymentGatewayURL == "" {
		return uuid.NewString(), nil
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetBody(map[string]interface{}{
			"method": method,
			"amount": amount,
			"email":  email,
		}).
		Post(config.AppConfig.PaymentGatewayURL + "/charges")
	if err != nil || resp.StatusCode() != 200 {
		log.Printf("Payment gateway unavailable, falling back to local reference: %v", err)
		return uuid.NewString(), nil
	}

	var charge gatewayChargeResponse
	if err := json.Unmarshal(resp.Body(), &charge); err != nil || charge.Reference == "" {
		log.Printf("Invalid gateway response, falling back to local reference: %v", err)
		return uuid.NewString(), nil
	}

	return charge.Reference, resp.Body()
}
