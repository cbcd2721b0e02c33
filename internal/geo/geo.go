// Package geo resolves an approximate location for the current network
// connection. It stands in for the original design's device geolocation:
// the ideas view uses it only when the user gives no free-text location.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "http://ip-api.com"

// Resolver looks up the caller's coarse location from their public IP.
type Resolver struct {
	client *resty.Client
}

// NewResolver creates a Resolver against the public ip-api.com service.
func NewResolver() *Resolver {
	return &Resolver{client: resty.New().SetBaseURL(defaultBaseURL)}
}

// NewResolverWithBaseURL creates a Resolver against a custom endpoint.
// Used by tests.
func NewResolverWithBaseURL(baseURL string) *Resolver {
	return &Resolver{client: resty.New().SetBaseURL(baseURL)}
}

type lookupResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
	Country    string `json:"country"`
}

// Locate returns a "City, Region, Country" string for the current
// connection, suitable as a location query for idea discovery.
func (r *Resolver) Locate(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.client.R().
		SetContext(ctx).
		Get("/json")
	if err != nil {
		return "", fmt.Errorf("geolocation lookup: %w", err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("geolocation lookup: status %d", res.StatusCode())
	}

	var body lookupResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", fmt.Errorf("geolocation lookup: parse response: %w", err)
	}
	if body.Status != "success" {
		return "", fmt.Errorf("geolocation lookup: %s", body.Message)
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{body.City, body.RegionName, body.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("geolocation lookup: empty location")
	}
	return strings.Join(parts, ", "), nil
}
