package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const defaultPaymentEndpoint = "https://api.stripe.com/v1/payment_intents"

// CreatePaymentIntent asks the payment processor to prepare a card charge and
// returns the client secret the frontend needs to complete it.
func CreatePaymentIntent(amount int64) (string, error) {
	secretKey := os.Getenv("PAYMENT_SECRET_KEY")
	if secretKey == "" {
		return "", errors.New("payment secret key not set")
	}

	endpoint := os.Getenv("PAYMENT_API_URL")
	if endpoint == "" {
		endpoint = defaultPaymentEndpoint
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return "", errors.New("payment processor returned error status")
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", err
	}

	if cs, ok := resp["client_secret"].(string); ok && cs != "" {
		return cs, nil
	}

	return "", errors.New("no client_secret returned from payment processor")
}
