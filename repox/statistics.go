package repox

import (
	"encoding/xml"

	logger "github.com/Financial-Times/go-logger"
)

// Statistics summarizes a whole REPOX instance. The service sends it as an
// XML fragment wrapped in a JSON envelope under the result key.
type Statistics struct {
	XMLName                  xml.Name                  `xml:"repox-statistics"`
	GenerationDate           string                    `xml:"generationDate,attr"`
	DataSourcesIDExtracted   int                       `xml:"dataSourcesIdExtracted"`
	DataSourcesIDGenerated   int                       `xml:"dataSourcesIdGenerated"`
	DataSourcesIDProvided    int                       `xml:"dataSourcesIdProvided"`
	Aggregators              int                       `xml:"aggregators"`
	DataProviders            int                       `xml:"dataProviders"`
	DataSourcesOAI           int                       `xml:"dataSourcesOai"`
	DataSourcesZ3950         int                       `xml:"dataSourcesZ3950"`
	DataSourcesDirectory     int                       `xml:"dataSourcesDirectoryImporter"`
	MetadataFormatStatistics []MetadataFormatStatistic `xml:"dataSourcesMetadataFormats>dataSourcesMetadataFormat"`
	RecordsAvgDataSource     float64                   `xml:"recordsAvgDataSource"`
	RecordsAvgDataProvider   float64                   `xml:"recordsAvgDataProvider"`
	CountryRecords           []CountryRecords          `xml:"countriesRecords>countryRecords"`
	RecordsTotal             int                       `xml:"recordsTotal"`
}

// MetadataFormatStatistic counts the data sources and records using one
// metadata format.
type MetadataFormatStatistic struct {
	MetadataFormat string `xml:"metadataFormat"`
	DataSources    int    `xml:"dataSources"`
	Records        int    `xml:"records"`
}

// CountryRecords counts the records attributed to one country.
type CountryRecords struct {
	Country string `xml:"country,attr"`
	Records int    `xml:"records"`
}

// Statistics returns instance-wide statistics, parsed out of the service's
// XML-in-JSON envelope.
func (c *Client) Statistics() (Statistics, error) {
	var statistics Statistics
	result, err := c.getResult("/statistics")
	if err != nil {
		return statistics, err
	}
	if err := xml.Unmarshal([]byte(result), &statistics); err != nil {
		logger.WithError(err).Error("Could not parse REPOX statistics XML")
		return Statistics{}, err
	}
	return statistics, nil
}
