// Package views renders the Block Kit documents shown on the app home tab and in the note modal.
package views

import (
	"time"

	"github.com/google/uuid"
	"github.com/slack-go/slack"
)

// Document is a rendered view: the surface it targets and its ordered blocks.
type Document struct {
	Surface    slack.ViewType
	Title      string
	Submit     string
	CallbackID string
	Blocks     slack.Blocks
}

// HomeTabRequest converts the document into a views.publish payload.
func (d Document) HomeTabRequest() slack.HomeTabViewRequest {
	return slack.HomeTabViewRequest{
		Type:       slack.VTHomeTab,
		Blocks:     d.Blocks,
		CallbackID: d.CallbackID,
	}
}

// ModalRequest converts the document into a views.open payload.
func (d Document) ModalRequest() slack.ModalViewRequest {
	req := slack.ModalViewRequest{
		Type:       slack.VTModal,
		Title:      plainText(d.Title),
		Blocks:     d.Blocks,
		CallbackID: d.CallbackID,
	}
	if d.Submit != "" {
		req.Submit = plainText(d.Submit)
	}
	return req
}

// Submission is a note captured from the modal. It only lives for one render.
type Submission struct {
	ID        string
	Timestamp time.Time
	Note      string
	Color     string
}

// NewSubmission stamps a note with a fresh id and the given time.
func NewSubmission(note, color string, at time.Time) Submission {
	return Submission{
		ID:        uuid.NewString(),
		Timestamp: at,
		Note:      note,
		Color:     color,
	}
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}
