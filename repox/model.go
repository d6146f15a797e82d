package repox

import (
	"encoding/json"
	"time"

	logger "github.com/Financial-Times/go-logger"
)

// Aggregator is a top-level organizational grouping of data providers.
type Aggregator struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameCode string `json:"nameCode"`
	Homepage string `json:"homepage"`
}

// Provider is an institution contributing one or more datasets.
type Provider struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	CountryCode  string `json:"countryCode"`
	Description  string `json:"description"`
	NameCode     string `json:"nameCode"`
	Homepage     string `json:"homepage"`
	ProviderType string `json:"providerType"`
	Email        string `json:"email"`
}

// ProviderTypes is the fixed enumeration REPOX accepts for a provider's type.
// Anything else submitted on an update silently keeps the stored value.
var ProviderTypes = []string{
	"ARCHIVE",
	"MUSEUM",
	"LIBRARY",
	"AUDIO_VISUAL_ARCHIVE",
	"RESEARCH_EDUCATIONAL",
	"CROSS_SECTOR",
	"PUBLISHER",
	"PRIVATE",
	"AGGREGATOR",
	"UNKNOWN",
}

// Dataset is a harvestable collection of metadata records under a provider.
type Dataset struct {
	ContainerType string     `json:"containerType"`
	DataSource    DataSource `json:"dataSource"`
	Name          string     `json:"name"`
	NameCode      string     `json:"nameCode"`
}

// DataSource describes where a dataset's records come from. OAI sets and
// directory-importer sets share this shape; fields the service never sent are
// left out of the replacement payload again. The nested record-id policy and
// retrieve strategy are kept raw so a full-replace update round-trips them
// untouched.
type DataSource struct {
	ID               string          `json:"id"`
	DataSetType      string          `json:"dataSetType"`
	Schema           string          `json:"schema"`
	Namespace        string          `json:"namespace"`
	Description      string          `json:"description"`
	MetadataFormat   string          `json:"metadataFormat"`
	IsSample         bool            `json:"isSample"`
	ExportDir        string          `json:"exportDir"`
	MarcFormat       string          `json:"marcFormat,omitempty"`
	OAISourceURL     string          `json:"oaiSourceURL,omitempty"`
	OAISet           string          `json:"oaiSet,omitempty"`
	SourcesDirPath   string          `json:"sourcesDirPath,omitempty"`
	RecordXPath      string          `json:"recordXPath,omitempty"`
	IsoVariant       string          `json:"isoVariant,omitempty"`
	RecordIDPolicy   json.RawMessage `json:"recordIdPolicy,omitempty"`
	RetrieveStrategy json.RawMessage `json:"retrieveStrategy,omitempty"`
}

// ScheduledTask is a scheduled harvest of a dataset. The id is assigned by
// the service; outgoing schedules leave it empty.
type ScheduledTask struct {
	ID        string `json:"id"`
	TaskType  string `json:"taskType"`
	Frequency string `json:"frequency"`
	XMonths   int    `json:"xmonths"`
	Time      string `json:"time"`
	Date      string `json:"date"`
}

// Mapping is an XSLT-based transform between metadata schemas.
type Mapping struct {
	ID                  string `json:"id"`
	Description         string `json:"description"`
	SourceSchemaID      string `json:"sourceSchemaId"`
	DestinationSchemaID string `json:"destinationSchemaId"`
	Stylesheet          string `json:"stylesheet"`
	SourceSchemaVersion string `json:"sourceSchemaVersion"`
	VersionTwo          bool   `json:"versionTwo"`
}

// AggregatorUpdate carries the fields an aggregator update may override.
// Nil fields keep the value currently stored by the service.
type AggregatorUpdate struct {
	Name     *string
	NameCode *string
	Homepage *string
}

// ProviderUpdate carries the fields a provider update may override.
// Nil fields keep the value currently stored by the service.
type ProviderUpdate struct {
	Name         *string
	Country      *string
	CountryCode  *string
	Description  *string
	NameCode     *string
	Homepage     *string
	ProviderType *string
	Email        *string
}

// OAIDatasetUpdate carries the fields an OAI dataset update may override.
// Nil fields keep the stored value. Setting MetadataFormat to a known format
// also rewrites the schema and namespace from the format table; an unknown
// format leaves all three untouched.
type OAIDatasetUpdate struct {
	ExportDir      *string
	MetadataFormat *string
	Description    *string
	IsSample       *bool
	OAISourceURL   *string
	OAISet         *string
	Name           *string
	NameCode       *string
}

// DirDatasetUpdate carries the fields a directory-importer dataset update may
// override. Nil fields keep the stored value.
type DirDatasetUpdate struct {
	ExportDir      *string
	MetadataFormat *string
	Description    *string
	IsSample       *bool
	SourcesDirPath *string
	RecordXPath    *string
	Name           *string
	NameCode       *string
}

// HarvestSchedule describes a harvest to be scheduled for a dataset. Zero
// values are filled in by ScheduleHarvest: frequency ONCE, time now+15m,
// date today, and one month for XMONTHLY schedules.
type HarvestSchedule struct {
	Frequency   string
	Time        string
	Date        string
	XMonths     int
	Incremental bool
}

// IngestedSet pairs a dataset with the time its records were last ingested.
type IngestedSet struct {
	DatasetID  string
	LastIngest time.Time
}

// Options is the raw option document REPOX serves for a resource family.
type Options = json.RawMessage

// String returns a pointer to v, for populating update structs.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to v, for populating update structs.
func Bool(v bool) *bool {
	return &v
}

type resultEnvelope struct {
	Result string `json:"result"`
}

func unmarshalBody(body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		logger.WithError(err).Error("Could not decode REPOX response body")
		return err
	}
	return nil
}
