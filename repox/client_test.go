package repox

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gopkg.in/jarcoal/httpmock.v1"
)

func TestNewClient_RejectsBadURL(t *testing.T) {
	_, err := NewClient("not-a-url", "admin", "admin")
	assert.Error(t, err)

	_, err = NewClient("http://localhost:8080", "admin", "admin")
	assert.NoError(t, err)
}

func TestClient_String(t *testing.T) {
	client, err := NewClient("http://localhost:8080", "admin", "admin")
	assert.NoError(t, err)
	assert.Equal(t, "REPOX connection instance based on http://localhost:8080/repox/rest", client.String())
}

type HealthcheckTestSuite struct {
	suite.Suite
	client *Client
}

func (suite *HealthcheckTestSuite) SetupTest() {
	httpmock.Reset()
	client, err := NewClient("http://localhost", "admin", "admin")
	suite.Nil(err)
	suite.client = client
}

func (suite *HealthcheckTestSuite) TestHealthcheck_Success() {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/repox/rest/aggregators/options",
		httpmock.NewStringResponder(200, `{}`),
	)

	msg, err := suite.client.Healthcheck().Checker()
	suite.Nil(err)
	suite.Equal("", msg)
}

func (suite *HealthcheckTestSuite) TestHealthcheck_FailsOnNon200() {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/repox/rest/aggregators/options",
		httpmock.NewStringResponder(401, `{}`),
	)

	msg, err := suite.client.Healthcheck().Checker()
	suite.NotNil(err)
	suite.Contains(msg, "bad status")
}

func (suite *HealthcheckTestSuite) TestHealthcheck_FailsOnClientError() {
	msg, err := suite.client.Healthcheck().Checker()
	suite.NotNil(err)
	suite.Contains(msg, "failed to request")
}

func (suite *HealthcheckTestSuite) TestRequestsCarryBasicAuth() {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/repox/rest/aggregators",
		func(req *http.Request) (*http.Response, error) {
			username, password, ok := req.BasicAuth()
			suite.True(ok)
			suite.Equal("admin", username)
			suite.Equal("admin", password)
			return httpmock.NewStringResponse(200, `[]`), nil
		},
	)

	_, err := suite.client.ListAggregators()
	suite.Nil(err)
}

func TestHealthcheckTestSuite(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	suite.Run(t, new(HealthcheckTestSuite))
}
