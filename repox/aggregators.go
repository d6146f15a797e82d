package repox

import "encoding/json"

// ListAggregators returns every aggregator on this instance with its
// metadata.
func (c *Client) ListAggregators() ([]Aggregator, error) {
	var aggregators []Aggregator
	if err := c.getJSON("/aggregators", &aggregators); err != nil {
		return nil, err
	}
	return aggregators, nil
}

// AggregatorIDs returns the identifiers of every aggregator on this instance.
func (c *Client) AggregatorIDs() ([]string, error) {
	aggregators, err := c.ListAggregators()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(aggregators))
	for _, aggregator := range aggregators {
		ids = append(ids, aggregator.ID)
	}
	return ids, nil
}

// GetAggregator returns the aggregator with the given id.
func (c *Client) GetAggregator(aggregatorID string) (Aggregator, error) {
	var aggregator Aggregator
	err := c.getJSON("/aggregators/"+aggregatorID, &aggregator)
	return aggregator, err
}

// AggregatorOptions returns the option document for the aggregators resource.
func (c *Client) AggregatorOptions() (Options, error) {
	var options Options
	err := c.getJSON("/aggregators/options", &options)
	return options, err
}

// CreateAggregator creates an aggregator and returns the HTTP status code.
// An empty nameCode defaults to the aggregator id.
func (c *Client) CreateAggregator(aggregatorID, name, nameCode, homepage string) (int, error) {
	if nameCode == "" {
		nameCode = aggregatorID
	}
	body, err := json.Marshal(Aggregator{
		ID:       aggregatorID,
		Name:     name,
		NameCode: nameCode,
		Homepage: homepage,
	})
	if err != nil {
		return 0, err
	}
	return c.writeStatus("POST", "/aggregators", body, contentTypeJSON)
}

// UpdateAggregator overlays the supplied fields onto the aggregator's current
// state and submits the result as a full replacement. REPOX only accepts
// whole-resource PUTs, so fields the caller leaves nil are re-submitted with
// their stored values. Returns the HTTP status code.
func (c *Client) UpdateAggregator(aggregatorID string, update AggregatorUpdate) (int, error) {
	current, err := c.GetAggregator(aggregatorID)
	if err != nil {
		return 0, err
	}
	current.ID = aggregatorID
	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.NameCode != nil {
		current.NameCode = *update.NameCode
	}
	if update.Homepage != nil {
		current.Homepage = *update.Homepage
	}
	body, err := json.Marshal(current)
	if err != nil {
		return 0, err
	}
	return c.writeStatus("PUT", "/aggregators/"+aggregatorID, body, contentTypeJSON)
}

// DeleteAggregator deletes an aggregator and returns the HTTP status code.
func (c *Client) DeleteAggregator(aggregatorID string) (int, error) {
	return c.writeStatus("DELETE", "/aggregators/"+aggregatorID, nil, "")
}
