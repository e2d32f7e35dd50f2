// Package notify delivers best-effort SMS notices to customers.
package notify

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"favour_express/internal/config"
)

// Sender is the SMS transport capability. Send returns false on any
// transport failure; it never panics or blocks the caller beyond the
// client timeout.
type Sender interface {
	Send(phoneNumber, message string) bool
}

// Client posts to the bulk-SMS HTTP API.
type Client struct {
	httpClient *http.Client
	url        string
	user       string
	password   string
	senderID   string
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		url:        cfg.SMSAPIURL,
		user:       cfg.SMSUser,
		password:   cfg.SMSPassword,
		senderID:   cfg.SMSSenderID,
	}
}

func (c *Client) Send(phoneNumber, message string) bool {
	payload := map[string]string{
		"user":     c.user,
		"password": c.password,
		"senderid": c.senderID,
		"sms":      message,
		"mobiles":  phoneNumber,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
