package repox

import (
	"sort"
	"time"

	logger "github.com/Financial-Times/go-logger"
)

// ingestDateLayout is how the service formats last-ingest dates. It differs
// from the DD/MM/YYYY layout used when writing schedules.
const ingestDateLayout = "01/02/2006 15:04:05"

// CountRecordsFromProvider sums the record counts of every dataset under a
// provider. Lookups are sequential; the first failing dataset aborts the sum.
func (c *Client) CountRecordsFromProvider(providerID string) (int, error) {
	ids, err := c.DatasetIDs(providerID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, id := range ids {
		count, err := c.RecordCount(id)
		if err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

// RecentlyIngestedSets returns the datasets of a provider paired with their
// last-ingest times, most recent first. A zero since keeps every dataset;
// otherwise datasets last ingested before since are dropped. Datasets that
// have never been ingested carry no usable date and are skipped.
func (c *Client) RecentlyIngestedSets(providerID string, since time.Time) ([]IngestedSet, error) {
	sets, err := c.collectIngestedSets(providerID, since)
	if err != nil {
		return nil, err
	}
	sortIngestedSets(sets)
	return sets, nil
}

// RecentlyIngestedSetsByAggregator returns the datasets of every provider
// under an aggregator paired with their last-ingest times, most recent first,
// optionally cut off at since.
func (c *Client) RecentlyIngestedSetsByAggregator(aggregatorID string, since time.Time) ([]IngestedSet, error) {
	providerIDs, err := c.ProviderIDs(aggregatorID)
	if err != nil {
		return nil, err
	}
	var sets []IngestedSet
	for _, providerID := range providerIDs {
		providerSets, err := c.collectIngestedSets(providerID, since)
		if err != nil {
			return nil, err
		}
		sets = append(sets, providerSets...)
	}
	sortIngestedSets(sets)
	return sets, nil
}

func (c *Client) collectIngestedSets(providerID string, since time.Time) ([]IngestedSet, error) {
	ids, err := c.DatasetIDs(providerID)
	if err != nil {
		return nil, err
	}
	var sets []IngestedSet
	for _, id := range ids {
		date, err := c.LastIngestDate(id)
		if err != nil {
			return nil, err
		}
		ingested, err := time.Parse(ingestDateLayout, date)
		if err != nil {
			logger.WithField("dataset", id).WithField("date", date).Info("Skipping set without a usable ingest date")
			continue
		}
		if !since.IsZero() && ingested.Before(since) {
			continue
		}
		sets = append(sets, IngestedSet{DatasetID: id, LastIngest: ingested})
	}
	return sets, nil
}

// sortIngestedSets orders sets most recent first; ties keep fetch order.
func sortIngestedSets(sets []IngestedSet) {
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].LastIngest.After(sets[j].LastIngest)
	})
}
