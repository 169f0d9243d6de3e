package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Email is one outbound message. ReplyTo carries the contact-form sender so
// the owner can answer directly.
type Email struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer delivers a single email. Failures surface immediately; no retry.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	Html    string   `json:"html,omitempty"`
}

// resendEmailResponse represents the response from the Resend API
type resendEmailResponse struct {
	ID string `json:"id"`
}

// resendErrorResponse represents an error response from the Resend API
type resendErrorResponse struct {
	Message string `json:"message"`
}

// ResendMailer sends email through the Resend REST API.
type ResendMailer struct {
	apiKey    string
	fromEmail string
	client    *http.Client
}

// NewResendMailer builds a mailer from Resend credentials. Returns an error
// when credentials are missing so the caller can run without a mailer and
// fail only on the contact endpoint.
func NewResendMailer(apiKey, fromEmail string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("RESEND_API_KEY is required")
	}
	if fromEmail == "" {
		return nil, errors.New("RESEND_FROM_EMAIL is required")
	}
	return &ResendMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Send delivers one email through Resend.
func (m *ResendMailer) Send(ctx context.Context, email Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := resendEmailRequest{
		From:    m.fromEmail,
		To:      email.To,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Text:    email.Text,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp resendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse resendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}
