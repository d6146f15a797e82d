package repox

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/jarcoal/httpmock.v1"
)

type MappingsTestSuite struct {
	suite.Suite
	client *Client
}

func (suite *MappingsTestSuite) SetupTest() {
	httpmock.Reset()
	client, err := NewClient("http://localhost", "admin", "admin")
	suite.Nil(err)
	suite.client = client
}

func (suite *MappingsTestSuite) TestGetMapping() {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/repox/rest/mappings/UTKMODSrepaired",
		httpmock.NewStringResponder(200, `{"id": "UTKMODSrepaired", "description": "UTK MODS modified for DLTN MODS",
			"sourceSchemaId": "oai_mods", "destinationSchemaId": "MODS", "stylesheet": "utkmodstomods.xsl",
			"sourceSchemaVersion": "3.5", "versionTwo": true}`),
	)

	mapping, err := suite.client.GetMapping("UTKMODSrepaired")
	suite.Nil(err)
	suite.Equal("oai_mods", mapping.SourceSchemaID)
	suite.Equal("MODS", mapping.DestinationSchemaID)
	suite.True(mapping.VersionTwo)
}

func (suite *MappingsTestSuite) TestAddMapping() {
	var submitted Mapping
	httpmock.RegisterResponder(
		"POST",
		"http://localhost/repox/rest/mappings",
		func(req *http.Request) (*http.Response, error) {
			body, _ := ioutil.ReadAll(req.Body)
			suite.Nil(json.Unmarshal(body, &submitted))
			return httpmock.NewStringResponse(201, ""), nil
		},
	)

	status, err := suite.client.AddMapping(Mapping{
		ID:                  "UTKMODSrepaired",
		Description:         "UTK MODS modified for DLTN MODS",
		SourceSchemaID:      "oai_mods",
		DestinationSchemaID: "MODS",
		Stylesheet:          "utkmodstomods.xsl",
		SourceSchemaVersion: "3.5",
		VersionTwo:          true,
	})
	suite.Nil(err)
	suite.Equal(201, status)
	suite.Equal("utkmodstomods.xsl", submitted.Stylesheet)
}

func (suite *MappingsTestSuite) TestMappingOptions() {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/repox/rest/mappings/options",
		httpmock.NewStringResponder(200, `{"option": [{"description": "[GET] Gets a mapping."}]}`),
	)

	options, err := suite.client.MappingOptions()
	suite.Nil(err)
	suite.Contains(string(options), "Gets a mapping")
}

func TestMappingsTestSuite(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	suite.Run(t, new(MappingsTestSuite))
}
