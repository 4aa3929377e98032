package helpers

import (
	"net/http"
	"time"
)

const (
	DefaultClientTimeout       = 5 * time.Second
	DefaultMaxIdleConnsPerHost = 20
)

// NewHTTPClient returns a client sized for the poller pool talking to the
// provisioner and metric source.
func NewHTTPClient(timeout time.Duration, maxIdleConnsPerHost int) *http.Client {
	if timeout <= 0 {
		timeout = DefaultClientTimeout
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if maxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = maxIdleConnsPerHost
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
