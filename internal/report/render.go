// Package report renders a goal's timeline as Markdown and provides a
// structural validator for Documentation-capability agent output. The
// kernel and the demo agents do not call the validator themselves.
package report

import (
	"fmt"
	"strings"

	"github.com/wintertask/orchestrator/internal/models"
)

// RenderTimeline produces a Markdown report of a goal's execution
// timeline: a heading, then one bullet per task or decision event in
// the order they were recorded.
func RenderTimeline(goalID string, events []models.TimelineEvent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Goal %s\n\n", goalID)

	if len(events) == 0 {
		sb.WriteString("_No recorded activity._\n")
		return sb.String()
	}

	for _, event := range events {
		switch event.Type {
		case models.TimelineEventTask:
			fmt.Fprintf(&sb, "- **Task** `%s` (%s) → %s", event.TaskID, event.TaskType, event.Status)
			if event.AgentID != "" {
				fmt.Fprintf(&sb, " _(agent: %s)_", event.AgentID)
			}
			sb.WriteString("\n")
		case models.TimelineEventDecision:
			fmt.Fprintf(&sb, "- **Decision** `%s`: %s", event.ID, event.Summary)
			if event.MadeBy != "" {
				fmt.Fprintf(&sb, " _(by: %s)_", event.MadeBy)
			}
			sb.WriteString("\n")
		default:
			fmt.Fprintf(&sb, "- (unrecognized event type %q)\n", event.Type)
		}
	}

	return sb.String()
}
