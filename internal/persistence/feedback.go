package persistence

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wintertask/orchestrator/internal/filelock"
	"github.com/wintertask/orchestrator/internal/models"
)

// WriteFeedbackItem appends a task-level feedback item to the
// feedback queue under a single exclusive lock.
func (p Paths) WriteFeedbackItem(item models.FeedbackItem) error {
	return filelock.LockAndModify(p.FeedbackQueuePath(), func(current []byte) ([]byte, error) {
		var queue []models.FeedbackItem
		if len(current) > 0 {
			if err := json.Unmarshal(current, &queue); err != nil {
				return nil, err
			}
		}
		queue = append(queue, item)
		return json.MarshalIndent(queue, "", "  ")
	})
}

// LoadFeedbackQueue returns every pending feedback item, or an empty
// slice if the queue file does not exist.
func (p Paths) LoadFeedbackQueue() ([]models.FeedbackItem, error) {
	var queue []models.FeedbackItem
	if err := readJSONFile(p.FeedbackQueuePath(), &queue); err != nil {
		return nil, err
	}
	return queue, nil
}

// ReplaceFeedbackQueue atomically overwrites the feedback queue,
// typically with the unprocessed remainder after a drain pass.
func (p Paths) ReplaceFeedbackQueue(queue []models.FeedbackItem) error {
	data, err := json.MarshalIndent(queue, "", "  ")
	if err != nil {
		return err
	}
	return filelock.LockAndWrite(p.FeedbackQueuePath(), data)
}

// WritePlanFeedbackItem appends a critic's plan-level rejection to
// the plan feedback queue under a single exclusive lock.
func (p Paths) WritePlanFeedbackItem(item models.PlanFeedbackItem) error {
	return filelock.LockAndModify(p.PlanFeedbackQueuePath(), func(current []byte) ([]byte, error) {
		var queue []models.PlanFeedbackItem
		if len(current) > 0 {
			if err := json.Unmarshal(current, &queue); err != nil {
				return nil, err
			}
		}
		queue = append(queue, item)
		return json.MarshalIndent(queue, "", "  ")
	})
}

// LoadPlanFeedbackQueue returns every pending plan feedback item.
func (p Paths) LoadPlanFeedbackQueue() ([]models.PlanFeedbackItem, error) {
	var queue []models.PlanFeedbackItem
	if err := readJSONFile(p.PlanFeedbackQueuePath(), &queue); err != nil {
		return nil, err
	}
	return queue, nil
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
