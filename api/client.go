// Package api is the typed client for the Worklane marketplace REST
// API. Every screen in the client is a view over these endpoints;
// business logic lives entirely server-side.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/worklane/worklane-go/config"
)

// TokenSource supplies the bearer token for authenticated requests. A
// nil source or an empty token sends unauthenticated requests.
type TokenSource func() (string, error)

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return func() (string, error) { return token, nil }
}

// Error is a non-2xx response from the API. The backend has no
// standardized error body, so Message is best-effort.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return e.Message
}

// Client is the Worklane API client. All services share its base URL,
// HTTP client, and token source.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource

	Auth           *AuthService
	Profile        *ProfileService
	Tasks          *TaskService
	Finance        *FinanceService
	PaymentMethods *PaymentMethodService
	Budgets        *BudgetService
	Goals          *GoalService
	AI             *AIService
	KYC            *KYCService
	TwoFactor      *TwoFactorService
	Escrow         *EscrowService
	Chats          *ChatService
	Reviews        *ReviewService
}

// New creates an API client. The timeout bounds every request,
// including the body read; zero falls back to a 30s default.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}

	c.Auth = &AuthService{c}
	c.Profile = &ProfileService{c}
	c.Tasks = &TaskService{c}
	c.Finance = &FinanceService{c}
	c.PaymentMethods = &PaymentMethodService{c}
	c.Budgets = &BudgetService{c}
	c.Goals = &GoalService{c}
	c.AI = &AIService{c}
	c.KYC = &KYCService{c}
	c.TwoFactor = &TwoFactorService{c}
	c.Escrow = &EscrowService{c}
	c.Chats = &ChatService{c}
	c.Reviews = &ReviewService{c}

	return c
}

// NewFromConfig creates an API client from loaded configuration.
func NewFromConfig(cfg *config.Config, tokens TokenSource) *Client {
	return New(cfg.APIBaseURL, cfg.RequestTimeout, tokens)
}

// errorBody is the best-effort shape of server error responses.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues a JSON request and decodes the response into out when out
// is non-nil. Non-2xx statuses become *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(req); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// upload issues a multipart request with one file part plus string
// fields, used by the KYC document upload.
func (c *Client) upload(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := c.authorize(req); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens()
	if err != nil {
		return fmt.Errorf("failed to resolve access token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var parsed errorBody
	message := ""
	if json.Unmarshal(raw, &parsed) == nil {
		switch {
		case parsed.Detail != "":
			message = parsed.Detail
		case parsed.Message != "":
			message = parsed.Message
		case parsed.Error != "":
			message = parsed.Error
		}
	}

	return &Error{Status: resp.StatusCode, Message: message}
}
