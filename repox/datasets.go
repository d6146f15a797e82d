package repox

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ListDatasets returns every dataset under a provider with its metadata.
func (c *Client) ListDatasets(providerID string) ([]Dataset, error) {
	var datasets []Dataset
	if err := c.getJSON("/datasets?providerId="+providerID, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

// DatasetIDs returns the data-source identifiers of every dataset under a
// provider.
func (c *Client) DatasetIDs(providerID string) ([]string, error) {
	datasets, err := c.ListDatasets(providerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(datasets))
	for _, dataset := range datasets {
		ids = append(ids, dataset.DataSource.ID)
	}
	return ids, nil
}

// GetDataset returns the dataset with the given id.
func (c *Client) GetDataset(datasetID string) (Dataset, error) {
	var dataset Dataset
	err := c.getJSON("/datasets/"+datasetID, &dataset)
	return dataset, err
}

// LastIngestDate returns the date a dataset's records were last ingested, as
// the service formats it (MM/DD/YYYY HH:MM:SS).
func (c *Client) LastIngestDate(datasetID string) (string, error) {
	return c.getResult("/datasets/" + datasetID + "/date")
}

// RecordCount returns the number of records in a dataset. The service sends
// the count as a quoted string; it is parsed here.
func (c *Client) RecordCount(datasetID string) (int, error) {
	result, err := c.getResult("/datasets/" + datasetID + "/count")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(result))
}

// CreateDataset creates a dataset under a provider and returns the HTTP
// status code.
func (c *Client) CreateDataset(providerID string, dataset Dataset) (int, error) {
	body, err := json.Marshal(dataset)
	if err != nil {
		return 0, err
	}
	return c.writeStatus("POST", "/datasets?providerId="+providerID, body, contentTypeJSON)
}

// ExportDataset writes a dataset's records to its configured exportDir on the
// REPOX host and returns the HTTP status code. The service is known to answer
// 200 even when the export directory is not writable.
func (c *Client) ExportDataset(datasetID string) (int, error) {
	return c.writeStatus("POST", "/datasets/"+datasetID+"/export", nil, contentTypeJSON)
}

// CopyDataset copies an existing dataset to a new id within the same
// provider and returns the HTTP status code.
func (c *Client) CopyDataset(datasetID string, newDatasetID string) (int, error) {
	return c.writeStatus("POST", "/datasets/"+datasetID+"?newDatasetId="+newDatasetID, nil, contentTypeJSON)
}

// UpdateOAIDataset overlays the supplied fields onto an OAI dataset's current
// state and submits the result as a full replacement, returning the HTTP
// status code. A recognized MetadataFormat rewrites the schema and namespace
// from the format table along with the format itself; an unrecognized format
// leaves all three as stored.
func (c *Client) UpdateOAIDataset(datasetID string, update OAIDatasetUpdate) (int, error) {
	current, err := c.GetDataset(datasetID)
	if err != nil {
		return 0, err
	}
	applyFormat(&current.DataSource, update.MetadataFormat)
	if update.ExportDir != nil {
		current.DataSource.ExportDir = *update.ExportDir
	}
	if update.Description != nil {
		current.DataSource.Description = *update.Description
	}
	if update.IsSample != nil {
		current.DataSource.IsSample = *update.IsSample
	}
	if update.OAISourceURL != nil {
		current.DataSource.OAISourceURL = *update.OAISourceURL
	}
	if update.OAISet != nil {
		current.DataSource.OAISet = *update.OAISet
	}
	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.NameCode != nil {
		current.NameCode = *update.NameCode
	}
	return c.replaceDataset(datasetID, current)
}

// UpdateDirDataset overlays the supplied fields onto a directory-importer
// dataset's current state and submits the result as a full replacement,
// returning the HTTP status code. Format handling matches UpdateOAIDataset.
func (c *Client) UpdateDirDataset(datasetID string, update DirDatasetUpdate) (int, error) {
	current, err := c.GetDataset(datasetID)
	if err != nil {
		return 0, err
	}
	applyFormat(&current.DataSource, update.MetadataFormat)
	if update.ExportDir != nil {
		current.DataSource.ExportDir = *update.ExportDir
	}
	if update.Description != nil {
		current.DataSource.Description = *update.Description
	}
	if update.IsSample != nil {
		current.DataSource.IsSample = *update.IsSample
	}
	if update.SourcesDirPath != nil {
		current.DataSource.SourcesDirPath = *update.SourcesDirPath
	}
	if update.RecordXPath != nil {
		current.DataSource.RecordXPath = *update.RecordXPath
	}
	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.NameCode != nil {
		current.NameCode = *update.NameCode
	}
	return c.replaceDataset(datasetID, current)
}

// DeleteDataset deletes a dataset and returns the HTTP status code.
func (c *Client) DeleteDataset(datasetID string) (int, error) {
	return c.writeStatus("DELETE", "/datasets/"+datasetID, nil, "")
}

func (c *Client) replaceDataset(datasetID string, dataset Dataset) (int, error) {
	body, err := json.Marshal(dataset)
	if err != nil {
		return 0, err
	}
	return c.writeStatus("PUT", "/datasets/"+datasetID, body, contentTypeJSON)
}

// applyFormat rewrites the data source's metadata format, schema and
// namespace together when the requested format is in the lookup table.
func applyFormat(source *DataSource, metadataFormat *string) {
	if metadataFormat == nil {
		return
	}
	format := LookupMetadataFormat(*metadataFormat)
	if format.Schema == "" {
		return
	}
	source.MetadataFormat = *metadataFormat
	source.Schema = format.Schema
	source.Namespace = format.Namespace
}
