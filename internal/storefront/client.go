package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flash_sale_back_end/internal/models"
)

const DefaultAPIURL = "http://localhost:8080"

var ErrRequestFailed = errors.New("requête API échouée")

// Client appelle l'API de la boutique
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if httpClient == nil {
		// le checkout peut attendre jusqu'à 4 s de latence simulée
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type productsEnvelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    []models.Product `json:"data"`
}

type orderEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    models.OrderSummary `json:"data"`
	Error   string              `json:"error"`
}

func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}

	var env productsEnvelope
	if err := c.do(req, http.StatusOK, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, env.Message)
	}
	return env.Data, nil
}

func (c *Client) PlaceOrder(ctx context.Context, checkout models.CheckoutRequest) (models.OrderSummary, error) {
	payload, err := json.Marshal(checkout)
	if err != nil {
		return models.OrderSummary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return models.OrderSummary{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var env orderEnvelope
	if err := c.do(req, http.StatusCreated, &env); err != nil {
		return models.OrderSummary{}, err
	}
	if !env.Success || env.Data.OrderID == "" {
		return models.OrderSummary{}, fmt.Errorf("%w: %s", ErrRequestFailed, env.Message)
	}
	return env.Data, nil
}

func (c *Client) do(req *http.Request, want int, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode != want {
		return fmt.Errorf("%w: %s %s -> %d", ErrRequestFailed, req.Method, req.URL.Path, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: réponse illisible: %v", ErrRequestFailed, err)
	}
	return nil
}
