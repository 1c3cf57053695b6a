package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
)

type Config struct {
	LoginURL     string
	InstanceURL  string
	APIVersion   string
	ClientID     string
	ClientSecret string
	UpdatePath   string
	Timeout      time.Duration
}

// Client talks to the Salesforce REST API. It fetches a fresh token for
// every operation; nothing is cached or retried.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: timeout}}
}

// Token exchanges the client credentials for a bearer token.
func (c *Client) Token(ctx context.Context) (*Token, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	endpoint := strings.TrimRight(c.cfg.LoginURL, "/") + "/services/oauth2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &appErrors.CRMError{Op: "token", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tr tokenResponse
	if err := c.do(req, "token", &tr); err != nil {
		log.Println("[CRM] ❌ token exchange failed:", err)
		return nil, err
	}
	if tr.AccessToken == "" {
		return nil, &appErrors.CRMError{Op: "token", Err: fmt.Errorf("empty access token")}
	}

	instance := c.cfg.InstanceURL
	if instance == "" {
		instance = tr.InstanceURL
	}
	return &Token{AccessToken: tr.AccessToken, InstanceURL: strings.TrimRight(instance, "/")}, nil
}

// Query runs soql and decodes the response envelope into out.
func (c *Client) Query(ctx context.Context, token *Token, soql string, out any) error {
	endpoint := fmt.Sprintf("%s/services/data/%s/query?q=%s", token.InstanceURL, c.cfg.APIVersion, url.QueryEscape(soql))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &appErrors.CRMError{Op: "query", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/json")

	if err := c.do(req, "query", out); err != nil {
		log.Println("[CRM] ❌ query failed:", err)
		return err
	}
	return nil
}

// Update posts the edited fields to the fixed update endpoint.
func (c *Client) Update(ctx context.Context, token *Token, payload UpdatePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &appErrors.CRMError{Op: "update", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, token.InstanceURL+c.cfg.UpdatePath, bytes.NewReader(body))
	if err != nil {
		return &appErrors.CRMError{Op: "update", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, "update", nil); err != nil {
		log.Println("[CRM] ❌ update failed:", err)
		return err
	}
	return nil
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &appErrors.CRMError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &appErrors.CRMError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &appErrors.CRMError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &appErrors.CRMError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
