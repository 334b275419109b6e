package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"time"

	"logistics/internal/pkg/config"
)

const smsRequestTimeout = 5 * time.Second

type smtpSendFn func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Gateway delivers customer notifications over plain SMTP and an HTTP SMS
// provider. Both channels are fire-and-forget from the caller's point of
// view: the consumer logs failures and moves on.
type Gateway struct {
	smtpAddr   string
	smtpFrom   string
	smsGateway string
	smsToken   string

	httpClient httpDoer
	sendMail   smtpSendFn
}

func New(cfg *config.Notify) *Gateway {
	return &Gateway{
		smtpAddr:   fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		smtpFrom:   cfg.SMTPFrom,
		smsGateway: cfg.SMSGateway,
		smsToken:   cfg.SMSToken,
		httpClient: &http.Client{Timeout: smsRequestTimeout},
		sendMail:   smtp.SendMail,
	}
}

func (g *Gateway) SendEmail(_ context.Context, to, subject, body string) error {
	msg := []byte("From: " + g.smtpFrom + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := g.sendMail(g.smtpAddr, nil, g.smtpFrom, []string{to}, msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}

type smsRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (g *Gateway) SendSMS(ctx context.Context, phone, message string) error {
	payload, err := json.Marshal(smsRequest{
		Phone:   phone,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("marshal sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.smsGateway, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.smsToken)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sms to %s: %w", phone, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("send sms to %s: gateway returned %d", phone, resp.StatusCode)
	}

	return nil
}
