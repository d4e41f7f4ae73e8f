package slackapp

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/slack-app-home/internal/metrics"
	"github.com/DIMO-Network/slack-app-home/internal/views"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

var reAddAction = regexp.MustCompile(`add_`)

// HandleActions handles interactive component payloads on POST /slack/actions. The
// route must be behind signature verification.
func (s *Controller) HandleActions(c *fiber.Ctx) error {
	raw := c.FormValue("payload")
	if raw == "" {
		return richerrors.Error{
			ExternalMsg: "Missing payload",
			Err:         errors.New("payload form field is empty"),
			Code:        fiber.StatusBadRequest,
		}
	}
	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(raw), &callback); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	metrics.InboundEvents.WithLabelValues("actions", interactionLabel(callback.Type)).Inc()

	s.handleInteraction(c.UserContext(), zerolog.Ctx(c.UserContext()), &callback, firstActionID([]byte(raw)))
	return c.SendString("")
}

// handleInteraction opens the note modal for add actions and schedules the home re-render
// for submissions. Anything else is ignored.
func (s *Controller) handleInteraction(ctx context.Context, logger *zerolog.Logger, callback *slack.InteractionCallback, actionID string) {
	if reAddAction.MatchString(actionID) {
		s.openNoteModal(ctx, logger, callback.TriggerID)
		return
	}

	if callback.Type == slack.InteractionTypeViewSubmission {
		detached := context.WithoutCancel(ctx)
		userID := callback.User.ID
		view := callback.View
		// the submission is acknowledged before the home tab is re-rendered
		s.async(func() {
			sub := submissionFromView(view, s.now())
			s.publishHome(detached, &s.logger, userID, &sub)
		})
		return
	}

	logger.Debug().Str("type", string(callback.Type)).Str("action_id", actionID).Msg("Ignoring interaction")
}

// actionIDs reads action ids straight from the payload. slack-go files actions without a
// block_id under attachment actions, which carry no action_id.
type actionIDs struct {
	Actions []struct {
		ActionID string `json:"action_id"`
	} `json:"actions"`
}

func firstActionID(raw []byte) string {
	var ids actionIDs
	if err := json.Unmarshal(raw, &ids); err != nil || len(ids.Actions) == 0 {
		return ""
	}
	return ids.Actions[0].ActionID
}

var knownInteractions = map[slack.InteractionType]struct{}{
	slack.InteractionTypeBlockActions:       {},
	slack.InteractionTypeViewSubmission:     {},
	slack.InteractionTypeViewClosed:         {},
	slack.InteractionTypeShortcut:           {},
	slack.InteractionTypeMessageAction:      {},
	slack.InteractionTypeDialogSubmission:   {},
	slack.InteractionTypeBlockSuggestion:    {},
	slack.InteractionTypeInteractionMessage: {},
}

// interactionLabel keeps arbitrary sender-supplied types out of metric labels.
func interactionLabel(t slack.InteractionType) string {
	if _, ok := knownInteractions[t]; ok {
		return string(t)
	}
	return "unknown"
}

// submissionFromView reads the note modal inputs out of a submitted view.
func submissionFromView(view slack.View, at time.Time) views.Submission {
	var note, color string
	if view.State != nil {
		values := view.State.Values
		note = values[views.NoteBlockID][views.NoteActionID].Value
		color = values[views.ColorBlockID][views.ColorActionID].SelectedOption.Value
	}
	return views.NewSubmission(note, color, at)
}
