package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
)

// participantsView builds the ephemeral paginated participant list
func participantsView(page *domain.ParticipantPage) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	description := MsgNoParticipants
	if len(page.Items) > 0 {
		var b strings.Builder
		for i, p := range page.Items {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%d. <@%s> - <t:%d:f>", page.Offset()+i+1, p.UserID, p.JoinTime/1000)
		}
		description = b.String()
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf(TitleParticipantsFmt, formatCount(page.Total)),
		Description: description,
		Color:       ColorParticipants,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d/%d", page.Page+1, page.TotalPages),
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    LabelPrev,
					Style:    discordgo.PrimaryButton,
					CustomID: participantsCustomID(participantsActionPrv, page.GiveawayID, page.Page),
					Disabled: !page.HasPrev(),
				},
				discordgo.Button{
					Label:    LabelNext,
					Style:    discordgo.PrimaryButton,
					CustomID: participantsCustomID(participantsActionNxt, page.GiveawayID, page.Page),
					Disabled: !page.HasNext(),
				},
				discordgo.Button{
					Label:    LabelClose,
					Style:    discordgo.DangerButton,
					CustomID: CustomIDParticipantsExit,
				},
			},
		},
	}
	return embed, components
}

// participantsCustomID encodes the page the view is currently showing
func participantsCustomID(action, giveawayID string, page int) string {
	return participantsIDPrefix + customIDSeparator + action + customIDSeparator +
		giveawayID + customIDSeparator + strconv.Itoa(page)
}

// parseParticipantsCustomID decodes "participants_<action>_<giveawayID>_<page>"
func parseParticipantsCustomID(customID string) (action, giveawayID string, page int, err error) {
	parts := strings.Split(customID, customIDSeparator)
	if len(parts) < 4 || parts[0] != participantsIDPrefix {
		return "", "", 0, fmt.Errorf("malformed participants custom id %q", customID)
	}
	action = parts[1]
	if action != participantsActionPrv && action != participantsActionNxt {
		return "", "", 0, fmt.Errorf("unknown participants action %q", action)
	}

	last := len(parts) - 1
	page, err = strconv.Atoi(parts[last])
	if err != nil {
		return "", "", 0, fmt.Errorf("malformed participants page %q: %w", parts[last], err)
	}
	giveawayID = strings.Join(parts[2:last], customIDSeparator)
	if giveawayID == "" {
		return "", "", 0, fmt.Errorf("missing giveaway id in %q", customID)
	}
	return action, giveawayID, page, nil
}
