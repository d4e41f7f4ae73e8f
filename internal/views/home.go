package views

import (
	"fmt"

	"github.com/slack-go/slack"
)

const (
	// AddNoteActionID is the action id of the home tab button that opens the note modal.
	AddNoteActionID = "add_note"

	homeCallbackID  = "home_view"
	timestampLayout = "Jan 2, 2006 3:04 PM MST"

	docsText   = "Learn how home tabs can be more useful and interactive <https://api.slack.com/surfaces/tabs/using|*in the documentation*>."
	footerText = "Psssst this home tab was designed using <https://api.slack.com/tools/block-kit-builder|*Block Kit Builder*>"
)

var colorEmoji = map[string]string{
	"yellow": ":large_yellow_square:",
	"blue":   ":large_blue_square:",
	"green":  ":large_green_square:",
	"pink":   ":cherry_blossom:",
}

// Home renders the app home tab for userID. When sub is non-nil the note is appended
// below the footer.
func Home(userID string, sub *Submission) Document {
	blocks := []slack.Block{
		slack.NewSectionBlock(markdown(fmt.Sprintf("*Welcome home, <@%s> :house:*", userID)), nil, nil, slack.SectionBlockOptionBlockID("welcome")),
		slack.NewActionBlock("home_actions",
			slack.NewButtonBlockElement(AddNoteActionID, "add_note", plainText("Add a Stickie")).WithStyle(slack.StylePrimary),
		),
		slack.NewSectionBlock(markdown(docsText), nil, nil, slack.SectionBlockOptionBlockID("docs")),
		slack.NewDividerBlock(),
		slack.NewContextBlock("footer", markdown(footerText)),
	}
	if sub != nil {
		blocks = append(blocks, noteBlocks(*sub)...)
	}

	return Document{
		Surface:    slack.VTHomeTab,
		CallbackID: homeCallbackID,
		Blocks:     slack.Blocks{BlockSet: blocks},
	}
}

func noteBlocks(sub Submission) []slack.Block {
	emoji, ok := colorEmoji[sub.Color]
	if !ok {
		emoji = ":memo:"
	}
	meta := fmt.Sprintf("%s *%s* | %s", emoji, sub.Color, sub.Timestamp.Format(timestampLayout))
	return []slack.Block{
		slack.NewDividerBlock(),
		slack.NewSectionBlock(plainText(sub.Note), nil, nil, slack.SectionBlockOptionBlockID("note_"+sub.ID)),
		slack.NewContextBlock("note_meta_"+sub.ID, markdown(meta)),
	}
}
