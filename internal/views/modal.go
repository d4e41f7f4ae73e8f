package views

import "github.com/slack-go/slack"

// Block and action ids of the note modal inputs. Submissions are read back from
// view.state.values[block][action].
const (
	NoteBlockID   = "note01"
	NoteActionID  = "content"
	ColorBlockID  = "note02"
	ColorActionID = "color"

	NoteModalCallbackID = "note_modal"
)

// NoteColors are the selectable note colors, in display order.
var NoteColors = []string{"yellow", "blue", "green", "pink"}

// NoteModal renders the "create a stickie note" form.
func NoteModal() Document {
	content := slack.NewPlainTextInputBlockElement(plainText("Take a note..."), NoteActionID)
	content.Multiline = true

	options := make([]*slack.OptionBlockObject, 0, len(NoteColors))
	for _, color := range NoteColors {
		options = append(options, slack.NewOptionBlockObject(color, plainText(color), nil))
	}
	colors := slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, plainText("Select a color"), ColorActionID, options...)

	return Document{
		Surface:    slack.VTModal,
		Title:      "Create a stickie note",
		Submit:     "Create",
		CallbackID: NoteModalCallbackID,
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewInputBlock(NoteBlockID, plainText("Note"), nil, content),
			slack.NewInputBlock(ColorBlockID, plainText("Color"), nil, colors),
		}},
	}
}
