// Package whatsapp delivers outbound notifications to requesters through the
// Fonnte WhatsApp gateway. Delivery is strictly best effort and at most once:
// the send is dispatched on its own goroutine, the remote outcome is only
// logged, and a lost message never blocks or fails the complaint transition
// that triggered it.
package whatsapp

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	defaultAPIURL = "https://api.fonnte.com/send"

	// countryCode is prepended by the gateway for numbers without one.
	countryCode = "62"
)

// Notifier is the outbound messaging contract the lifecycle service depends
// on. Implementations must never block the caller on network I/O.
type Notifier interface {
	Send(phone, message string)
}

// Client talks to the Fonnte HTTP API.
type Client struct {
	APIURL     string
	Token      string
	HTTPClient *http.Client
}

// NewClient returns a gateway client with a bounded request timeout.
func NewClient(token string) *Client {
	return &Client{
		APIURL: defaultAPIURL,
		Token:  token,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send dispatches the message asynchronously and returns immediately. An
// empty destination is a silent no-op.
func (c *Client) Send(phone, message string) {
	if phone == "" {
		return
	}
	go c.deliver(phone, message)
}

func (c *Client) deliver(phone, message string) {
	payload, err := json.Marshal(map[string]string{
		"target":      phone,
		"message":     message,
		"countryCode": countryCode,
	})
	if err != nil {
		log.Printf("ERROR: Failed to encode WhatsApp payload for %s: %v", phone, err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, c.APIURL, bytes.NewReader(payload))
	if err != nil {
		log.Printf("ERROR: Failed to build WhatsApp request for %s: %v", phone, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to send WhatsApp message to %s: %v", phone, err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	log.Printf("WhatsApp gateway responded %d for %s: %s", resp.StatusCode, phone, body)
}
