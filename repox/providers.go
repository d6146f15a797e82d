package repox

import (
	"encoding/json"

	logger "github.com/Financial-Times/go-logger"
)

// ListProviders returns every provider under an aggregator with its metadata.
func (c *Client) ListProviders(aggregatorID string) ([]Provider, error) {
	var providers []Provider
	if err := c.getJSON("/providers?aggregatorId="+aggregatorID, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// ProviderIDs returns the identifiers of every provider under an aggregator.
func (c *Client) ProviderIDs(aggregatorID string) ([]string, error) {
	providers, err := c.ListProviders(aggregatorID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(providers))
	for _, provider := range providers {
		ids = append(ids, provider.ID)
	}
	return ids, nil
}

// GetProvider returns the provider with the given id.
func (c *Client) GetProvider(providerID string) (Provider, error) {
	var provider Provider
	err := c.getJSON("/providers/"+providerID, &provider)
	return provider, err
}

// CreateProvider creates a provider under an aggregator and returns the HTTP
// status code. REPOX answers 400 or 406 when required fields are missing.
func (c *Client) CreateProvider(aggregatorID string, provider Provider) (int, error) {
	body, err := json.Marshal(provider)
	if err != nil {
		return 0, err
	}
	return c.writeStatus("POST", "/providers?aggregatorId="+aggregatorID, body, contentTypeJSON)
}

// UpdateProvider overlays the supplied fields onto the provider's current
// state and submits the result as a full replacement, returning the HTTP
// status code. A ProviderType outside the known enumeration is not submitted:
// the stored value is kept and the call proceeds.
func (c *Client) UpdateProvider(providerID string, update ProviderUpdate) (int, error) {
	current, err := c.GetProvider(providerID)
	if err != nil {
		return 0, err
	}
	current.ID = providerID
	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.Country != nil {
		current.Country = *update.Country
	}
	if update.CountryCode != nil {
		current.CountryCode = *update.CountryCode
	}
	if update.Description != nil {
		current.Description = *update.Description
	}
	if update.NameCode != nil {
		current.NameCode = *update.NameCode
	}
	if update.Homepage != nil {
		current.Homepage = *update.Homepage
	}
	if update.ProviderType != nil {
		if isProviderType(*update.ProviderType) {
			current.ProviderType = *update.ProviderType
		} else {
			logger.WithField("providerType", *update.ProviderType).
				Info("Unknown provider type, keeping the stored value")
		}
	}
	if update.Email != nil {
		current.Email = *update.Email
	}
	body, err := json.Marshal(current)
	if err != nil {
		return 0, err
	}
	return c.writeStatus("PUT", "/providers/"+providerID, body, contentTypeJSON)
}

// AssignProviderToAggregator moves a provider to another aggregator. The
// service requires the provider's full metadata alongside the new owner, so
// the current state is fetched and re-submitted. Returns the HTTP status code.
func (c *Client) AssignProviderToAggregator(providerID string, aggregatorID string) (int, error) {
	current, err := c.GetProvider(providerID)
	if err != nil {
		return 0, err
	}
	body, err := json.Marshal(current)
	if err != nil {
		return 0, err
	}
	return c.writeStatus("PUT", "/providers/"+providerID+"?newAggregatorId="+aggregatorID, body, contentTypeJSON)
}

// DeleteProvider deletes a provider and returns the HTTP status code.
func (c *Client) DeleteProvider(providerID string) (int, error) {
	return c.writeStatus("DELETE", "/providers/"+providerID, nil, "")
}

func isProviderType(providerType string) bool {
	for _, known := range ProviderTypes {
		if providerType == known {
			return true
		}
	}
	return false
}
