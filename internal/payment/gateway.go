package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/staylodge/staylodge-backend/internal/booking"
)

// GatewayClient talks to the payment gateway's transaction API. It
// implements booking.PaymentGateway.
type GatewayClient struct {
	baseURL    string
	serverKey  string
	httpClient *http.Client
}

func NewGatewayClient(baseURL, serverKey string) *GatewayClient {
	return &GatewayClient{
		baseURL:   baseURL,
		serverKey: serverKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type createTransactionRequest struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	CustomerDetails struct {
		FirstName string `json:"first_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"customer_details"`
	Expiry struct {
		Unit     string `json:"unit"`
		Duration int    `json:"duration"`
	} `json:"expiry"`
}

type createTransactionResponse struct {
	Token        string   `json:"token"`
	ErrorMessage []string `json:"error_messages"`
}

// CreateTransaction registers the order with the gateway and returns the
// payment page token.
func (g *GatewayClient) CreateTransaction(ctx context.Context, orderUID string, grossAmount int64, customer booking.CustomerDetails, expiry time.Duration) (string, error) {
	var payload createTransactionRequest
	payload.TransactionDetails.OrderID = orderUID
	payload.TransactionDetails.GrossAmount = grossAmount
	payload.CustomerDetails.FirstName = customer.FullName
	payload.CustomerDetails.Email = customer.Email
	payload.CustomerDetails.Phone = customer.PhoneNumber
	payload.Expiry.Unit = "minutes"
	payload.Expiry.Duration = int(expiry.Minutes())

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal transaction request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/snap/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build transaction request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	// The gateway authenticates with the server key as a basic-auth username.
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(g.serverKey+":")))

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read gateway response failed: %w", err)
	}

	var result createTransactionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decode gateway response failed: %w", err)
	}

	if resp.StatusCode >= 300 || result.Token == "" {
		return "", fmt.Errorf("gateway rejected transaction (status %d): %v", resp.StatusCode, result.ErrorMessage)
	}

	return result.Token, nil
}
