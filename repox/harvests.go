package repox

import (
	"encoding/json"
	"net/http"
	"time"

	logger "github.com/Financial-Times/go-logger"
)

const (
	scheduleTimeLayout = "15:04"
	scheduleDateLayout = "02/01/2006"

	taskTypeScheduled = "SCHEDULED"
)

var harvestFrequencies = []string{"ONCE", "DAILY", "WEEKLY", "XMONTHLY"}

// weekdays in schedule rotation order, Monday first.
var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// now is swapped out by tests that pin the scheduling clock.
var now = time.Now

// StartHarvest starts a harvest of a dataset and returns the HTTP status
// code. When sample is true only a subset of records is harvested.
func (c *Client) StartHarvest(datasetID string, sample bool) (int, error) {
	harvestType := "full"
	if sample {
		harvestType = "sample"
	}
	return c.writeStatus("POST", "/datasets/"+datasetID+"/harvest/start?type="+harvestType, nil, "")
}

// ScheduleHarvest schedules a recurring or one-off harvest of a dataset and
// returns the HTTP status code. An empty frequency means ONCE; an empty time
// defaults to fifteen minutes from now, an empty date to today, and an
// XMONTHLY schedule without a month interval runs monthly. A frequency
// outside ONCE/DAILY/WEEKLY/XMONTHLY fails before any request is made,
// answering on the legacy status channel with ErrInvalidFrequency underneath.
func (c *Client) ScheduleHarvest(datasetID string, schedule HarvestSchedule) (int, error) {
	if schedule.Frequency == "" {
		schedule.Frequency = "ONCE"
	}
	if !isHarvestFrequency(schedule.Frequency) {
		logger.WithField("frequency", schedule.Frequency).Error("Cannot schedule harvest with unknown frequency")
		return http.StatusInternalServerError, ErrInvalidFrequency
	}
	current := now()
	if schedule.Time == "" {
		schedule.Time = current.Add(15 * time.Minute).Format(scheduleTimeLayout)
	}
	if schedule.Date == "" {
		schedule.Date = current.Format(scheduleDateLayout)
	}
	if schedule.Frequency == "XMONTHLY" && schedule.XMonths == 0 {
		schedule.XMonths = 1
	}
	return c.postSchedule(datasetID, schedule)
}

// ScheduleWeeklyHarvest schedules a WEEKLY harvest of a dataset on the next
// occurrence of the named day and returns the HTTP status code. The day must
// be a canonical English day name; anything else fails before any request is
// made, answering on the legacy status channel with ErrInvalidWeekday
// underneath. When the named day is today the harvest is scheduled a full
// week ahead, never later today. An empty time defaults to fifteen minutes
// from now.
func (c *Client) ScheduleWeeklyHarvest(datasetID string, dayOfWeek string, at string) (int, error) {
	offset := weekdayOffset(dayOfWeek)
	if offset == 0 {
		logger.WithField("day", dayOfWeek).Error("Cannot schedule weekly harvest on unknown day")
		return http.StatusInternalServerError, ErrInvalidWeekday
	}
	current := now()
	if at == "" {
		at = current.Add(15 * time.Minute).Format(scheduleTimeLayout)
	}
	return c.postSchedule(datasetID, HarvestSchedule{
		Frequency: "WEEKLY",
		Time:      at,
		Date:      current.AddDate(0, 0, offset).Format(scheduleDateLayout),
	})
}

// ScheduledHarvests returns the scheduled harvest tasks of a dataset.
func (c *Client) ScheduledHarvests(datasetID string) ([]ScheduledTask, error) {
	var tasks []ScheduledTask
	if err := c.getJSON("/datasets/"+datasetID+"/harvest/schedules", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeleteScheduledHarvest removes a scheduled harvest task from a dataset and
// returns the HTTP status code.
func (c *Client) DeleteScheduledHarvest(datasetID string, taskID string) (int, error) {
	return c.writeStatus("DELETE", "/datasets/"+datasetID+"/harvest/schedules/"+taskID, nil, "")
}

// HarvestStatus returns the state of a dataset's current or last harvest.
func (c *Client) HarvestStatus(datasetID string) (string, error) {
	return c.getResult("/datasets/" + datasetID + "/harvest/status")
}

// LastHarvestLog returns the log of a dataset's last harvest as a string of
// XML.
func (c *Client) LastHarvestLog(datasetID string) (string, error) {
	return c.getResult("/datasets/" + datasetID + "/harvest/log")
}

// RunningHarvests returns the service's message about currently running
// harvests. The endpoint has historically answered 405 on live instances.
func (c *Client) RunningHarvests() (string, error) {
	body, _, err := c.makeRequest("GET", "/datasets/harvest", nil, "")
	if err != nil {
		logger.WithError(err).Error("Could not list running harvests")
		return "", err
	}
	return string(body), nil
}

// CancelHarvest cancels a dataset's running harvest and returns the HTTP
// status code.
func (c *Client) CancelHarvest(datasetID string) (int, error) {
	return c.writeStatus("DELETE", "/datasets/"+datasetID+"/harvest/cancel", nil, "")
}

func (c *Client) postSchedule(datasetID string, schedule HarvestSchedule) (int, error) {
	incremental := "false"
	if schedule.Incremental {
		incremental = "true"
	}
	body, err := json.Marshal(ScheduledTask{
		TaskType:  taskTypeScheduled,
		Frequency: schedule.Frequency,
		XMonths:   schedule.XMonths,
		Time:      schedule.Time,
		Date:      schedule.Date,
	})
	if err != nil {
		return 0, err
	}
	return c.writeStatus("POST", "/datasets/"+datasetID+"/harvest/schedule?incremental="+incremental, body, contentTypeJSON)
}

func isHarvestFrequency(frequency string) bool {
	for _, known := range harvestFrequencies {
		if frequency == known {
			return true
		}
	}
	return false
}

// weekdayOffset returns how many days ahead the next occurrence of dayOfWeek
// is, rotating the week so that today comes first. A rotation offset of zero
// means today and is treated as a full week ahead, so a schedule never lands
// in the past. Unknown day names return 0.
func weekdayOffset(dayOfWeek string) int {
	today := int(now().Weekday()+6) % 7 // Monday-first index
	for i, name := range weekdays {
		if name == dayOfWeek {
			offset := (i - today + 7) % 7
			if offset == 0 {
				offset = 7
			}
			return offset
		}
	}
	return 0
}
