package persistence

import (
	"encoding/json"

	"github.com/wintertask/orchestrator/internal/filelock"
	"github.com/wintertask/orchestrator/internal/models"
)

// AppendTimelineEvent appends a task or decision event to a goal's
// timeline file, creating the goal's project directory on first use.
func (p Paths) AppendTimelineEvent(goalID string, event models.TimelineEvent) error {
	return filelock.LockAndModify(p.TimelinePath(goalID), func(current []byte) ([]byte, error) {
		var events []models.TimelineEvent
		if len(current) > 0 {
			if err := json.Unmarshal(current, &events); err != nil {
				return nil, err
			}
		}
		events = append(events, event)
		return json.MarshalIndent(events, "", "  ")
	})
}

// ReadTimeline returns every event recorded for a goal, in append
// order, or an empty slice if the goal has no timeline yet.
func (p Paths) ReadTimeline(goalID string) ([]models.TimelineEvent, error) {
	var events []models.TimelineEvent
	if err := readJSONFile(p.TimelinePath(goalID), &events); err != nil {
		return nil, err
	}
	return events, nil
}
