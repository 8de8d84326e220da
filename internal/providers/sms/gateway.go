package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Config struct {
	GatewayURL string
	AuthToken  string
	Sender     string
	Timeout    time.Duration
}

// GatewayProvider posts messages to an HTTP SMS gateway. The payload shape
// follows the common gateway convention: {"to","from","message"}.
type GatewayProvider struct {
	cfg    Config
	client *http.Client
}

func NewGateway(cfg Config) *GatewayProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &GatewayProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *GatewayProvider) Send(ctx context.Context, to string, message string) error {
	if p.cfg.GatewayURL == "" {
		return fmt.Errorf("sms gateway url is not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"to":      to,
		"from":    p.cfg.Sender,
		"message": message,
	})
	if err != nil {
		return fmt.Errorf("encode sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.cfg.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.AuthToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
