package repox

import (
	"encoding/json"
	"net/http"

	logger "github.com/Financial-Times/go-logger"
)

// DeletedRecordMessage is returned by GetRecord when the service answers
// without usable record metadata, most commonly for an OAI record whose
// status is deleted.
const DeletedRecordMessage = "REPOX Error: This is a generic error and is thrown when Repox can't find a matching " +
	"metadata.  This can be caused by an OAI record with the status of deleted."

// GetRecord returns the metadata XML fragment of a record, addressed by its
// OAI identifier. When the response body carries no result key — the
// service's way of signaling a deleted or unknown record — the fixed
// DeletedRecordMessage is returned instead of a decode error.
func (c *Client) GetRecord(recordID string) (string, error) {
	respBody, status, err := c.makeRequest("GET", "/records?recordId="+recordID, nil, "")
	if err != nil {
		logger.WithError(err).WithField("recordId", recordID).Error("Could not get record")
		return "", err
	}
	if status != http.StatusOK {
		logger.WithField("recordId", recordID).WithField("status", status).Error("Could not get record, invalid status")
		return "", ErrInvalidStatus
	}
	var envelope struct {
		Result *string `json:"result"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil || envelope.Result == nil {
		return DeletedRecordMessage, nil
	}
	return *envelope.Result, nil
}

// DeleteRecord marks a record as deleted and returns the HTTP status code.
// The live service has been seen answering 200 without deleting anything;
// the documented contract is kept but is unverified against a real backend.
func (c *Client) DeleteRecord(recordID string) (int, error) {
	_, status, err := c.makeRequest("GET", "/records?recordId="+recordID+"&type=delete", nil, "")
	if err != nil {
		logger.WithError(err).WithField("recordId", recordID).Error("Could not delete record")
		return 0, err
	}
	return status, nil
}

// AddRecord uploads a record's metadata XML into a dataset and returns the
// HTTP status code. Unverified against a real backend.
func (c *Client) AddRecord(datasetID string, recordID string, xmlRecord string) (int, error) {
	path := "/records?datasetId=" + datasetID + "&recordId=" + recordID
	return c.writeStatus("POST", path, []byte(xmlRecord), contentTypeXML)
}

// RecordOptions returns the option document for the records resource.
func (c *Client) RecordOptions() (Options, error) {
	var options Options
	err := c.getJSON("/records/options", &options)
	return options, err
}
