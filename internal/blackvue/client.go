// SPDX-License-Identifier: MIT

// Package blackvue talks to a BlackVue dashcam over its plaintext HTTP API.
package blackvue

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client interacts with a dashcam at a fixed address.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the dashcam at the given address (IP or host
// name, no scheme).
func New(address string) *Client {
	return &Client{
		base: "http://" + strings.Trim(address, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithTimeout overrides the default HTTP client timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.http.Timeout = d
	return c
}

// BaseURL returns the base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.base
}

// List fetches the dashcam's file index and returns the recording
// filenames in the order the device reported them.
func (c *Client) List(ctx context.Context) ([]string, error) {
	res, err := c.get(ctx, "/blackvue_vod.cgi", "list")
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	body, err := decodeBody(res)
	if err != nil {
		return nil, &DeviceError{Sentinel: ErrBadResponse, Operation: "list", Err: err}
	}

	return parseListing(body), nil
}

// Download fetches Record/<filename> from the dashcam and streams the body
// into w. It does not verify anything about the content.
func (c *Client) Download(ctx context.Context, filename string, w io.Writer) error {
	res, err := c.get(ctx, "/Record/"+url.PathEscape(filename), "download")
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	if _, err := io.Copy(w, res.Body); err != nil {
		return fmt.Errorf("download %s: %w", filename, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, operation string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, &DeviceError{Sentinel: ErrUnreachable, Operation: operation, Err: err}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &DeviceError{Sentinel: ErrUnreachable, Operation: operation, Err: err}
	}

	if res.StatusCode != http.StatusOK {
		_ = res.Body.Close()
		return nil, &DeviceError{Sentinel: ErrBadStatus, Operation: operation, Status: res.StatusCode}
	}
	return res, nil
}
