package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/giveaway"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

var countPrinter = message.NewPrinter(language.English)

// formatCount renders n with thousands separators
func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// Renderer draws giveaways into Discord messages
type Renderer struct {
	session Session
	guilds  *guildCache
	now     func() time.Time
}

var _ giveaway.Presenter = (*Renderer)(nil)

// NewRenderer creates a Renderer on top of session
func NewRenderer(session Session) *Renderer {
	return &Renderer{
		session: session,
		guilds:  newGuildCache(session),
		now:     time.Now,
	}
}

// Announce posts the initial giveaway message with a zero participant count
func (r *Renderer) Announce(ctx context.Context, g *domain.Giveaway) (string, error) {
	embed := r.activeEmbed(ctx, g, TitleNewGiveaway)
	msg, err := r.session.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: giveawayButtons(0, false),
	})
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%w: %v", domain.ErrChannelUnavailable, err)
		}
		return "", fmt.Errorf("send announcement: %w", err)
	}
	return msg.ID, nil
}

// Render edits the giveaway message so it matches persisted state.
// An unresolvable channel or message returns the matching domain error and leaves the message untouched.
func (r *Renderer) Render(ctx context.Context, g *domain.Giveaway, participantCount int) error {
	channel, err := r.session.Channel(g.ChannelID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrChannelUnavailable, err)
	}
	if g.MessageID == "" {
		return domain.ErrMessageUnavailable
	}
	if _, err := r.session.ChannelMessage(channel.ID, g.MessageID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMessageUnavailable, err)
	}

	if g.GuildID == "" {
		g.GuildID = channel.GuildID
	}

	var embed *discordgo.MessageEmbed
	if g.Ended {
		embed = r.endedEmbed(ctx, g)
	} else {
		embed = r.activeEmbed(ctx, g, TitleGiveaway)
	}

	components := giveawayButtons(participantCount, g.Ended)
	edit := &discordgo.MessageEdit{
		ID:         g.MessageID,
		Channel:    channel.ID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	}
	if _, err := r.session.ChannelMessageEditComplex(edit); err != nil {
		return fmt.Errorf("edit giveaway message: %w", err)
	}
	return nil
}

// AnnounceWinners posts the winners announcement for an ended giveaway
func (r *Renderer) AnnounceWinners(ctx context.Context, g *domain.Giveaway) error {
	description := fmt.Sprintf("🎁 **Prize:** %s\n👑 **Winners:** %s\n%s",
		g.Prize, mentionList(g.Winners), MsgCongratulate)
	return r.sendAnnouncement(ctx, g, TitleGiveawayWinners, ColorActive, description)
}

// AnnounceReroll posts the reroll announcement naming the new winners
func (r *Renderer) AnnounceReroll(ctx context.Context, g *domain.Giveaway) error {
	description := fmt.Sprintf("🎁 **Prize:** %s\n👑 **New Winners:** %s\n%s",
		g.Prize, mentionList(g.Winners), MsgCongratulateRe)
	return r.sendAnnouncement(ctx, g, TitleGiveawayReroll, ColorReroll, description)
}

func (r *Renderer) sendAnnouncement(ctx context.Context, g *domain.Giveaway, title string, color int, description string) error {
	embed := r.baseEmbed(ctx, g, title, color, description)
	if _, err := r.session.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	}); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %v", domain.ErrChannelUnavailable, err)
		}
		return fmt.Errorf("send announcement: %w", err)
	}
	return nil
}

func (r *Renderer) activeEmbed(ctx context.Context, g *domain.Giveaway, title string) *discordgo.MessageEmbed {
	description := fmt.Sprintf(
		"🎁 **Prize:** %s\n📝 **Description:** %s\n🎯 **Winners:** %d\n⏱️ **Ends:** <t:%d:R>\n👑 **Hosted By:** <@%s>",
		g.Prize, g.Description, g.WinnersCount, g.EndTime, g.CreatorID)
	return r.baseEmbed(ctx, g, title, ColorActive, description)
}

func (r *Renderer) endedEmbed(ctx context.Context, g *domain.Giveaway) *discordgo.MessageEmbed {
	winners := MsgNoWinners
	if len(g.Winners) > 0 {
		winners = mentionList(g.Winners)
	}
	description := fmt.Sprintf(
		"🎁 **Prize:** %s\n🎯 **Winners:** %s\n📝 **Description:** %s\n👑 **Hosted By:** <@%s>",
		g.Prize, winners, g.Description, g.CreatorID)
	return r.baseEmbed(ctx, g, TitleGiveawayEnded, ColorEnded, description)
}

func (r *Renderer) baseEmbed(ctx context.Context, g *domain.Giveaway, title string, color int, description string) *discordgo.MessageEmbed {
	info, err := r.guilds.lookup(g.GuildID)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgGuildLookupFailed, "guild_id", g.GuildID, "error", err)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    info.Name,
			IconURL: info.IconURL,
		},
		Timestamp: r.now().Format(time.RFC3339),
	}
}

// giveawayButtons builds the join/view row. Ended giveaways keep the row but disable it.
func giveawayButtons(participantCount int, ended bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    fmt.Sprintf(LabelJoinFmt, formatCount(participantCount)),
					Style:    discordgo.PrimaryButton,
					CustomID: CustomIDJoin,
					Disabled: ended,
				},
				discordgo.Button{
					Label:    LabelViewParticipants,
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDViewParticipants,
					Disabled: ended,
				},
			},
		},
	}
}

func mentionList(userIDs []string) string {
	mentions := make([]string, len(userIDs))
	for i, id := range userIDs {
		mentions[i] = "<@" + id + ">"
	}
	return strings.Join(mentions, ", ")
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
