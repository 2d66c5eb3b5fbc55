package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingHandler(calls *[]string, name string) InteractionHandler {
	return func(context.Context, Session, *discordgo.InteractionCreate) error {
		*calls = append(*calls, name)
		return nil
	}
}

func TestCommandRegistry(t *testing.T) {
	registry := NewCommandRegistry()
	var calls []string

	registry.Register(&discordgo.ApplicationCommand{Name: "test", Description: "Test command"}, recordingHandler(&calls, "command"))
	registry.RegisterComponent(CustomIDParticipantsExit, recordingHandler(&calls, "close"))
	registry.RegisterComponentPrefix(CustomIDParticipantsNext, recordingHandler(&calls, "next"))

	assert.NotNil(t, registry.Commands["test"])
	assert.NotNil(t, registry.Handlers["test"])

	s := newFakeSession()
	ctx := context.Background()

	command := createCommandInteraction(adminMember(), "sub")
	command.Data = discordgo.ApplicationCommandInteractionData{Name: "test"}
	registry.Handle(ctx, s, command)
	registry.Handle(ctx, s, createComponentInteraction(adminMember(), CustomIDParticipantsExit, nil))
	registry.Handle(ctx, s, createComponentInteraction(adminMember(), "participants_next_1_0", nil))
	registry.Handle(ctx, s, createComponentInteraction(adminMember(), "unknown_button", nil))

	assert.Equal(t, []string{"command", "close", "next"}, calls)
}

func TestCommandRegistry_HandlerErrorDoesNotPanic(t *testing.T) {
	registry := NewCommandRegistry()
	registry.RegisterComponent(CustomIDJoin, func(context.Context, Session, *discordgo.InteractionCreate) error {
		return errors.New("boom")
	})

	assert.NotPanics(t, func() {
		registry.Handle(context.Background(), newFakeSession(), createComponentInteraction(regularMember(), CustomIDJoin, nil))
	})
}

func TestCommandsEqual(t *testing.T) {
	cmd, _ := GiveawayCommand(&MockService{})
	other, _ := GiveawayCommand(&MockService{})

	assert.True(t, commandsEqual([]*discordgo.ApplicationCommand{cmd}, []*discordgo.ApplicationCommand{other}))
	assert.False(t, commandsEqual(nil, []*discordgo.ApplicationCommand{other}))

	t.Run("description changed", func(t *testing.T) {
		changed, _ := GiveawayCommand(&MockService{})
		changed.Description = "Something else"
		assert.False(t, commandEqual(cmd, changed))
	})

	t.Run("nested option changed", func(t *testing.T) {
		changed, _ := GiveawayCommand(&MockService{})
		changed.Options[0].Options[0].Required = false
		assert.False(t, commandEqual(cmd, changed))
	})

	t.Run("permissions dropped", func(t *testing.T) {
		changed, _ := GiveawayCommand(&MockService{})
		changed.DefaultMemberPermissions = nil
		assert.False(t, commandEqual(cmd, changed))
	})
}

func TestSyncCommands(t *testing.T) {
	desired, _ := GiveawayCommand(&MockService{})
	ctx := context.Background()

	t.Run("unchanged skips overwrite", func(t *testing.T) {
		s := newFakeSession()
		existing, _ := GiveawayCommand(&MockService{})
		s.CommandsFunc = func(string, string) ([]*discordgo.ApplicationCommand, error) {
			return []*discordgo.ApplicationCommand{existing}, nil
		}

		require.NoError(t, syncCommands(ctx, s, "app", "", []*discordgo.ApplicationCommand{desired}, false))
		assert.Empty(t, s.Overwrites)
	})

	t.Run("changed overwrites in guild", func(t *testing.T) {
		s := newFakeSession()

		require.NoError(t, syncCommands(ctx, s, "app", testGuildID, []*discordgo.ApplicationCommand{desired}, false))
		require.Len(t, s.Overwrites, 1)
		assert.Equal(t, testGuildID, s.OverwriteIDs[0])
	})

	t.Run("force skips fetch", func(t *testing.T) {
		s := newFakeSession()

		require.NoError(t, syncCommands(ctx, s, "app", "", []*discordgo.ApplicationCommand{desired}, true))
		assert.Equal(t, 0, s.CommandFetch)
		assert.Len(t, s.Overwrites, 1)
	})

	t.Run("fetch failure", func(t *testing.T) {
		s := newFakeSession()
		s.CommandsFunc = func(string, string) ([]*discordgo.ApplicationCommand, error) {
			return nil, errors.New("unauthorized")
		}

		assert.Error(t, syncCommands(ctx, s, "app", "", []*discordgo.ApplicationCommand{desired}, false))
		assert.Empty(t, s.Overwrites)
	})
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, isAdmin(createComponentInteraction(adminMember(), CustomIDJoin, nil)))
	assert.False(t, isAdmin(createComponentInteraction(regularMember(), CustomIDJoin, nil)))
	assert.False(t, isAdmin(createComponentInteraction(nil, CustomIDJoin, nil)))
}

func TestGetInteractionUser(t *testing.T) {
	guild := createComponentInteraction(regularMember(), CustomIDJoin, nil)
	assert.Equal(t, testUserID, getInteractionUser(guild).ID)

	dm := createComponentInteraction(nil, CustomIDJoin, nil)
	dm.User = &discordgo.User{ID: "dm-user"}
	assert.Equal(t, "dm-user", getInteractionUser(dm).ID)

	assert.NotNil(t, getInteractionUser(createComponentInteraction(nil, CustomIDJoin, nil)))
}
