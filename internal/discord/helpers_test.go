package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// fakeSession records outbound Discord calls. Func fields override the default replies.
type fakeSession struct {
	mu sync.Mutex

	ChannelFunc        func(channelID string) (*discordgo.Channel, error)
	GuildFunc          func(guildID string) (*discordgo.Guild, error)
	ChannelMessageFunc func(channelID, messageID string) (*discordgo.Message, error)
	SendFunc           func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)
	EditFunc           func(m *discordgo.MessageEdit) (*discordgo.Message, error)
	RespondFunc        func(resp *discordgo.InteractionResponse) error
	CommandsFunc       func(appID, guildID string) ([]*discordgo.ApplicationCommand, error)

	Sent          []*discordgo.MessageSend
	Edits         []*discordgo.MessageEdit
	Responses     []*discordgo.InteractionResponse
	ResponseEdits []*discordgo.WebhookEdit
	Overwrites    [][]*discordgo.ApplicationCommand
	OverwriteIDs  []string // guild id of each overwrite
	CommandFetch  int
	GuildCalls    int
}

var _ Session = (*fakeSession)(nil)

func newFakeSession() *fakeSession {
	return &fakeSession{}
}

func (f *fakeSession) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.ChannelFunc != nil {
		return f.ChannelFunc(channelID)
	}
	return &discordgo.Channel{ID: channelID, GuildID: testGuildID}, nil
}

func (f *fakeSession) Guild(guildID string, _ ...discordgo.RequestOption) (*discordgo.Guild, error) {
	f.mu.Lock()
	f.GuildCalls++
	f.mu.Unlock()
	if f.GuildFunc != nil {
		return f.GuildFunc(guildID)
	}
	return &discordgo.Guild{ID: guildID, Name: testGuildName}, nil
}

func (f *fakeSession) ChannelMessage(channelID, messageID string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.ChannelMessageFunc != nil {
		return f.ChannelMessageFunc(channelID, messageID)
	}
	return &discordgo.Message{ID: messageID, ChannelID: channelID}, nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	f.Sent = append(f.Sent, data)
	f.mu.Unlock()
	if f.SendFunc != nil {
		return f.SendFunc(channelID, data)
	}
	return &discordgo.Message{ID: testMessageID, ChannelID: channelID}, nil
}

func (f *fakeSession) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	f.Edits = append(f.Edits, m)
	f.mu.Unlock()
	if f.EditFunc != nil {
		return f.EditFunc(m)
	}
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	f.Responses = append(f.Responses, resp)
	f.mu.Unlock()
	if f.RespondFunc != nil {
		return f.RespondFunc(resp)
	}
	return nil
}

func (f *fakeSession) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ResponseEdits = append(f.ResponseEdits, edit)
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ApplicationCommands(appID, guildID string, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.mu.Lock()
	f.CommandFetch++
	f.mu.Unlock()
	if f.CommandsFunc != nil {
		return f.CommandsFunc(appID, guildID)
	}
	return nil, nil
}

func (f *fakeSession) ApplicationCommandBulkOverwrite(_ string, guildID string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Overwrites = append(f.Overwrites, commands)
	f.OverwriteIDs = append(f.OverwriteIDs, guildID)
	return commands, nil
}

// lastResponse returns the most recent interaction response, or nil
func (f *fakeSession) lastResponse() *discordgo.InteractionResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Responses) == 0 {
		return nil
	}
	return f.Responses[len(f.Responses)-1]
}

// lastEditEmbed returns the first embed of the most recent deferred-reply edit, or nil
func (f *fakeSession) lastEditEmbed() *discordgo.MessageEmbed {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.ResponseEdits) == 0 {
		return nil
	}
	edit := f.ResponseEdits[len(f.ResponseEdits)-1]
	if edit.Embeds == nil || len(*edit.Embeds) == 0 {
		return nil
	}
	return (*edit.Embeds)[0]
}

const (
	testGuildID   = "guild-1"
	testGuildName = "Test Guild"
	testChannelID = "channel-1"
	testMessageID = "message-1"
	testAdminID   = "admin-1"
	testUserID    = "user-1"
)

func adminMember() *discordgo.Member {
	return &discordgo.Member{
		User:        &discordgo.User{ID: testAdminID, Username: "Admin"},
		Permissions: discordgo.PermissionAdministrator,
	}
}

func regularMember() *discordgo.Member {
	return &discordgo.Member{
		User: &discordgo.User{ID: testUserID, Username: "User"},
	}
}

// createCommandInteraction builds a /giveaway <sub> invocation
func createCommandInteraction(member *discordgo.Member, sub string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: testChannelID,
			GuildID:   testGuildID,
			Member:    member,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: CommandGiveaway,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name:    sub,
						Type:    discordgo.ApplicationCommandOptionSubCommand,
						Options: options,
					},
				},
			},
		},
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// intOpt mirrors the gateway, which decodes integer options as float64
func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

// createComponentInteraction builds a button press on the given message
func createComponentInteraction(member *discordgo.Member, customID string, message *discordgo.Message) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			ChannelID: testChannelID,
			GuildID:   testGuildID,
			Member:    member,
			Message:   message,
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
		},
	}
}

// buttonsOf flattens the buttons of every action row
func buttonsOf(components []discordgo.MessageComponent) []discordgo.Button {
	var buttons []discordgo.Button
	for _, c := range components {
		row, ok := c.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if b, ok := inner.(discordgo.Button); ok {
				buttons = append(buttons, b)
			}
		}
	}
	return buttons
}
