// Package repox is a client for the REPOX digital-library management REST API.
// It wraps the resource hierarchy exposed by a REPOX instance (aggregators,
// providers, datasets, records, mappings and scheduled harvests); all state
// lives on the remote service.
package repox

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	logger "github.com/Financial-Times/go-logger"
	metrics "github.com/rcrowley/go-metrics"
)

const (
	restRoot = "/repox/rest"

	contentTypeJSON = "application/json"
	contentTypeXML  = "application/xml"
)

var (
	ErrInvalidStatus    = errors.New("invalid status response")
	ErrInvalidWeekday   = errors.New("not a valid day of the week")
	ErrInvalidFrequency = errors.New("not a valid harvest frequency")
)

// Client talks to a single REPOX instance. It holds only connection
// configuration, so a single instance is safe for concurrent use.
type Client struct {
	endpoint   string
	username   string
	password   string
	httpClient *http.Client
	registry   metrics.Registry
}

// NewClient validates the instance URL and returns a client rooted at its
// Swagger REST endpoint. Credentials are sent as HTTP Basic auth on every call.
func NewClient(repoxURL string, username string, password string) (*Client, error) {
	u, err := url.Parse(repoxURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("repox url %q has no scheme or host", repoxURL)
	}
	return &Client{
		endpoint:   strings.TrimSuffix(repoxURL, "/") + restRoot,
		username:   username,
		password:   password,
		httpClient: http.DefaultClient,
		registry:   metrics.DefaultRegistry,
	}, nil
}

func (c *Client) String() string {
	return fmt.Sprintf("REPOX connection instance based on %s", c.endpoint)
}

// Healthcheck reports whether the REPOX REST endpoint is reachable and
// accepting our credentials.
func (c *Client) Healthcheck() fthealth.Check {
	return fthealth.Check{
		Name:             "REPOX instance is accessible",
		BusinessImpact:   "Aggregators, providers and datasets cannot be managed",
		ID:               "repox-rest-check",
		Severity:         3,
		PanicGuide:       "Check that the REPOX url is correct and the service is up.",
		TechnicalSummary: "The REPOX Swagger REST endpoint did not answer with a 200.",
		Timeout:          10 * time.Second,
		Checker: func() (string, error) {
			_, status, err := c.makeRequest("GET", "/aggregators/options", nil, "")
			if err != nil {
				errMsg := "failed to request aggregator options from REPOX"
				return errMsg, errors.New(errMsg)
			}
			if status != http.StatusOK {
				errMsg := "bad status from REPOX aggregator options"
				return errMsg, errors.New(errMsg)
			}
			return "", nil
		},
	}
}

func (c *Client) makeRequest(method string, path string, body []byte, contentType string) ([]byte, int, error) {
	req, err := http.NewRequest(method, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.SetBasicAuth(c.username, c.password)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.GetOrRegisterTimer("repox.api."+strings.ToLower(method), c.registry).UpdateSince(start)
	if err != nil {
		return nil, 0, err
	}

	defer resp.Body.Close()
	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return respBody, resp.StatusCode, nil
}

// getJSON fetches path and decodes a 200 response into out.
func (c *Client) getJSON(path string, out interface{}) error {
	respBody, status, err := c.makeRequest("GET", path, nil, "")
	if err != nil {
		logger.WithError(err).WithField("path", path).Error("Could not reach REPOX")
		return err
	}
	if status != http.StatusOK {
		logger.WithField("path", path).WithField("status", status).Error("Unexpected status from REPOX")
		return ErrInvalidStatus
	}
	return unmarshalBody(respBody, out)
}

// getResult fetches path and unwraps the string under the "result" envelope
// key used by several REPOX endpoints.
func (c *Client) getResult(path string) (string, error) {
	var envelope resultEnvelope
	if err := c.getJSON(path, &envelope); err != nil {
		return "", err
	}
	return envelope.Result, nil
}

// writeStatus issues a write request and hands back the raw HTTP status code.
// Interpreting the code (409 exists, 404 not found, 400/406 invalid) is the
// caller's job; a non-2xx answer is not an error on this channel.
func (c *Client) writeStatus(method string, path string, body []byte, contentType string) (int, error) {
	_, status, err := c.makeRequest(method, path, body, contentType)
	if err != nil {
		logger.WithError(err).WithField("path", path).Error("Could not reach REPOX")
		return 0, err
	}
	return status, nil
}
