package graphhopper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"route-planner-service/internal/domain"
	"strings"
)

// httpStatusError carries a non-200 response. Message and Hints are taken from
// GraphHopper's error body when it can be decoded.
type httpStatusError struct {
	Code    int
	Message string
	Hints   []string
	Body    string
}

type errorBody struct {
	Message string `json:"message"`
	Hints   []struct {
		Message string `json:"message"`
	} `json:"hints"`
}

func (c *Client) newRequest(ctx context.Context, path string, q url.Values) (*http.Request, error) {
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do sends req and decodes a 200 body into out. Failures come back as
// *domain.Error: transport problems (timeouts included) as network errors,
// non-200 as upstream errors, undecodable bodies as protocol errors.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.session.Do(req)
	if err != nil {
		return domain.Errorf(domain.KindNetwork, "%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Errorf(domain.KindUpstream, "%s: %w", req.URL.Path, readStatusError(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTransportErr(req.Context(), err) {
			return domain.Errorf(domain.KindNetwork, "%s: read response: %w", req.URL.Path, err)
		}
		return domain.Errorf(domain.KindProtocol, "%s: decode response: %w", req.URL.Path, err)
	}

	return nil
}

// isTransportErr reports whether a body read failed because the connection or
// the request deadline gave out, rather than because the JSON was malformed.
func isTransportErr(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}

func readStatusError(resp *http.Response) *httpStatusError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	he := &httpStatusError{
		Code: resp.StatusCode,
		Body: strings.TrimSpace(string(b)),
	}

	var eb errorBody
	if json.Unmarshal(b, &eb) == nil {
		he.Message = eb.Message
		for _, h := range eb.Hints {
			if h.Message != "" && h.Message != eb.Message {
				he.Hints = append(he.Hints, h.Message)
			}
		}
	}

	return he
}

func (e *httpStatusError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if len(e.Hints) > 0 {
		detail += " (hints: " + strings.Join(e.Hints, "; ") + ")"
	}
	return fmt.Sprintf("status %d: %s", e.Code, detail)
}
