package repox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gopkg.in/jarcoal/httpmock.v1"
)

type ReportsTestSuite struct {
	suite.Suite
	client *Client
}

func (suite *ReportsTestSuite) SetupTest() {
	httpmock.Reset()
	client, err := NewClient("http://localhost", "admin", "admin")
	suite.Nil(err)
	suite.client = client
}

func (suite *ReportsTestSuite) registerDatasets(providerID string, sets string) {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/repox/rest/datasets?providerId="+providerID,
		httpmock.NewStringResponder(200, sets),
	)
}

func (suite *ReportsTestSuite) registerResult(path string, result string) {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/repox/rest"+path,
		httpmock.NewStringResponder(200, `{"result": "`+result+`"}`),
	)
}

func (suite *ReportsTestSuite) TestCountRecordsFromProvider() {
	suite.registerDatasets("utcr0", `[
		{"dataSource": {"id": "coll1"}},
		{"dataSource": {"id": "coll2"}},
		{"dataSource": {"id": "coll3"}}
	]`)
	suite.registerResult("/datasets/coll1/count", "100")
	suite.registerResult("/datasets/coll2/count", "250")
	suite.registerResult("/datasets/coll3/count", "7")

	total, err := suite.client.CountRecordsFromProvider("utcr0")
	suite.Nil(err)
	suite.Equal(357, total)
}

func (suite *ReportsTestSuite) TestRecentlyIngestedSets_SortedMostRecentFirst() {
	suite.registerDatasets("utcr0", `[
		{"dataSource": {"id": "older"}},
		{"dataSource": {"id": "newest"}},
		{"dataSource": {"id": "never"}}
	]`)
	suite.registerResult("/datasets/older/date", "11/02/2018 10:00:00")
	suite.registerResult("/datasets/newest/date", "12/14/2018 08:56:32")
	suite.registerResult("/datasets/never/date", "")

	sets, err := suite.client.RecentlyIngestedSets("utcr0", time.Time{})
	suite.Nil(err)
	suite.Len(sets, 2)
	suite.Equal("newest", sets[0].DatasetID)
	suite.Equal("older", sets[1].DatasetID)
}

func (suite *ReportsTestSuite) TestRecentlyIngestedSets_CutoffFiltersOldSets() {
	suite.registerDatasets("utcr0", `[
		{"dataSource": {"id": "older"}},
		{"dataSource": {"id": "newest"}}
	]`)
	suite.registerResult("/datasets/older/date", "11/02/2018 10:00:00")
	suite.registerResult("/datasets/newest/date", "12/14/2018 08:56:32")

	since := time.Date(2018, 12, 1, 0, 0, 0, 0, time.UTC)
	sets, err := suite.client.RecentlyIngestedSets("utcr0", since)
	suite.Nil(err)
	suite.Len(sets, 1)
	suite.Equal("newest", sets[0].DatasetID)
}

func (suite *ReportsTestSuite) TestRecentlyIngestedSetsByAggregator() {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/repox/rest/providers?aggregatorId=dltn",
		httpmock.NewStringResponder(200, `[{"id": "utcr0"}, {"id": "utkr0"}]`),
	)
	suite.registerDatasets("utcr0", `[{"dataSource": {"id": "utc_set"}}]`)
	suite.registerDatasets("utkr0", `[{"dataSource": {"id": "utk_set"}}]`)
	suite.registerResult("/datasets/utc_set/date", "11/02/2018 10:00:00")
	suite.registerResult("/datasets/utk_set/date", "12/14/2018 08:56:32")

	sets, err := suite.client.RecentlyIngestedSetsByAggregator("dltn", time.Time{})
	suite.Nil(err)
	suite.Len(sets, 2)
	suite.Equal("utk_set", sets[0].DatasetID)
	suite.Equal("utc_set", sets[1].DatasetID)
}

func (suite *ReportsTestSuite) TestCountRecordsFromProvider_AbortsOnFailedLookup() {
	suite.registerDatasets("utcr0", `[
		{"dataSource": {"id": "coll1"}},
		{"dataSource": {"id": "missing"}}
	]`)
	suite.registerResult("/datasets/coll1/count", "100")
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/repox/rest/datasets/missing/count",
		httpmock.NewStringResponder(404, ""),
	)

	_, err := suite.client.CountRecordsFromProvider("utcr0")
	suite.NotNil(err)
}

func TestReportsTestSuite(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	suite.Run(t, new(ReportsTestSuite))
}
