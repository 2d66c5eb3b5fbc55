package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/giveaway"
)

func TestGiveawayCommand_Definition(t *testing.T) {
	cmd, _ := GiveawayCommand(&MockService{})

	assert.Equal(t, CommandGiveaway, cmd.Name)
	require.NotNil(t, cmd.DefaultMemberPermissions)
	assert.Equal(t, int64(discordgo.PermissionAdministrator), *cmd.DefaultMemberPermissions)

	names := make([]string, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		assert.Equal(t, discordgo.ApplicationCommandOptionSubCommand, opt.Type)
		names = append(names, opt.Name)
	}
	assert.Equal(t, []string{SubcommandStart, SubcommandReroll, SubcommandEnd}, names)

	start := cmd.Options[0]
	require.Len(t, start.Options, 4)
	assert.False(t, start.Options[3].Required, "description is optional")
}

func TestGiveawayCommand_RequiresAdmin(t *testing.T) {
	svc := &MockService{}
	s := newFakeSession()
	_, handler := GiveawayCommand(svc)

	for _, sub := range []string{SubcommandStart, SubcommandReroll, SubcommandEnd} {
		t.Run(sub, func(t *testing.T) {
			err := handler(t.Context(), s, createCommandInteraction(regularMember(), sub))
			require.NoError(t, err)

			resp := s.lastResponse()
			require.NotNil(t, resp)
			assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
			assert.Equal(t, MsgAdminRequiredCommand, resp.Data.Content)
			assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
		})
	}
	svc.AssertExpectations(t)
}

func TestGiveawayCommand_Start(t *testing.T) {
	svc := &MockService{}
	s := newFakeSession()
	_, handler := GiveawayCommand(svc)

	svc.On("Start", mock.Anything, giveaway.StartRequest{
		ChannelID:   testChannelID,
		GuildID:     testGuildID,
		CreatorID:   testAdminID,
		Duration:    "1h",
		Winners:     2,
		Prize:       "Nitro",
		Description: "",
	}).Return(&domain.Giveaway{ID: "1700000000000"}, nil)

	i := createCommandInteraction(adminMember(), SubcommandStart,
		stringOpt(OptionDuration, "1h"),
		intOpt(OptionWinners, 2),
		stringOpt(OptionPrize, "Nitro"),
	)
	require.NoError(t, handler(t.Context(), s, i))

	require.Len(t, s.Responses, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, s.Responses[0].Type)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, s.Responses[0].Data.Flags)

	embed := s.lastEditEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, fmt.Sprintf(MsgStartedFmt, "1700000000000"), embed.Description)
	assert.Equal(t, ColorSuccess, embed.Color)
	svc.AssertExpectations(t)
}

func TestGiveawayCommand_StartValidationFailure(t *testing.T) {
	svc := &MockService{}
	s := newFakeSession()
	_, handler := GiveawayCommand(svc)

	svc.On("Start", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: winners must be at least 1", domain.ErrInvalidInput))

	i := createCommandInteraction(adminMember(), SubcommandStart,
		stringOpt(OptionDuration, "1h"),
		intOpt(OptionWinners, 0),
		stringOpt(OptionPrize, "Nitro"),
	)
	require.NoError(t, handler(t.Context(), s, i))

	embed := s.lastEditEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, "❌ Failed to start giveaway: invalid input: winners must be at least 1", embed.Description)
	assert.Equal(t, ColorFailure, embed.Color)
}

func TestGiveawayCommand_End(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockService{}
		s := newFakeSession()
		_, handler := GiveawayCommand(svc)
		svc.On("EndByMessage", mock.Anything, testMessageID).Return(&domain.Giveaway{ID: "42", Ended: true}, nil)

		require.NoError(t, handler(t.Context(), s, createCommandInteraction(adminMember(), SubcommandEnd, stringOpt(OptionMessageID, testMessageID))))

		assert.Equal(t, fmt.Sprintf(MsgEndedFmt, "42"), s.lastEditEmbed().Description)
		svc.AssertExpectations(t)
	})

	t.Run("already ended", func(t *testing.T) {
		svc := &MockService{}
		s := newFakeSession()
		_, handler := GiveawayCommand(svc)
		svc.On("EndByMessage", mock.Anything, testMessageID).Return(nil, domain.ErrGiveawayNotActive)

		require.NoError(t, handler(t.Context(), s, createCommandInteraction(adminMember(), SubcommandEnd, stringOpt(OptionMessageID, testMessageID))))

		assert.Equal(t, "❌ Failed to end giveaway: "+domain.ErrMsgGiveawayNotActive, s.lastEditEmbed().Description)
	})
}

func TestGiveawayCommand_Reroll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockService{}
		s := newFakeSession()
		_, handler := GiveawayCommand(svc)
		svc.On("RerollByMessage", mock.Anything, testMessageID, 3).Return(&domain.Giveaway{ID: "42", Ended: true}, nil)

		i := createCommandInteraction(adminMember(), SubcommandReroll, stringOpt(OptionMessageID, testMessageID), intOpt(OptionWinners, 3))
		require.NoError(t, handler(t.Context(), s, i))

		assert.Equal(t, fmt.Sprintf(MsgRerolledFmt, "42"), s.lastEditEmbed().Description)
		svc.AssertExpectations(t)
	})

	t.Run("internal error hides detail", func(t *testing.T) {
		svc := &MockService{}
		s := newFakeSession()
		_, handler := GiveawayCommand(svc)
		svc.On("RerollByMessage", mock.Anything, testMessageID, 1).Return(nil, errors.New("db: connection reset"))

		i := createCommandInteraction(adminMember(), SubcommandReroll, stringOpt(OptionMessageID, testMessageID), intOpt(OptionWinners, 1))
		err := handler(t.Context(), s, i)

		require.Error(t, err)
		assert.Equal(t, "❌ Failed to reroll giveaway: "+MsgGenericError, s.lastEditEmbed().Description)
	})
}
