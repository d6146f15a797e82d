package repox

import "encoding/json"

// GetMapping returns the mapping with the given id.
func (c *Client) GetMapping(mappingID string) (Mapping, error) {
	var mapping Mapping
	err := c.getJSON("/mappings/"+mappingID, &mapping)
	return mapping, err
}

// MappingOptions returns the option document for the mappings resource.
func (c *Client) MappingOptions() (Options, error) {
	var options Options
	err := c.getJSON("/mappings/options", &options)
	return options, err
}

// AddMapping registers a schema mapping and returns the HTTP status code.
func (c *Client) AddMapping(mapping Mapping) (int, error) {
	body, err := json.Marshal(mapping)
	if err != nil {
		return 0, err
	}
	return c.writeStatus("POST", "/mappings", body, contentTypeJSON)
}
