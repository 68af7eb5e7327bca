package graphhopper

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://graphhopper.com/api/1"

// Client implements Geocoder and DirectionsProvider against the GraphHopper
// web API. Every operation is a single request; nothing is cached or retried.
//
// The client is safe for concurrent use.
type Client struct {
	session        *http.Client
	apiKey         string
	baseURL        string
	geocodeTimeout time.Duration
	routeTimeout   time.Duration
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.session = h }
}

// WithTimeouts bounds geocoding and routing calls separately.
func WithTimeouts(geocode, route time.Duration) Option {
	return func(c *Client) {
		if geocode > 0 {
			c.geocodeTimeout = geocode
		}
		if route > 0 {
			c.routeTimeout = route
		}
	}
}

func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("graphhopper api key is empty")
	}

	c := &Client{
		session:        &http.Client{},
		apiKey:         apiKey,
		baseURL:        DefaultBaseURL,
		geocodeTimeout: 10 * time.Second,
		routeTimeout:   15 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
