package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type guildInfo struct {
	Name    string
	IconURL string
}

// guildCache memoizes guild names for embed footers so every render does not cost a REST call
type guildCache struct {
	session Session
	cache   *expirable.LRU[string, guildInfo]
}

func newGuildCache(session Session) *guildCache {
	return &guildCache{
		session: session,
		cache:   expirable.NewLRU[string, guildInfo](guildCacheSize, nil, guildCacheTTL),
	}
}

func (c *guildCache) lookup(guildID string) (guildInfo, error) {
	if guildID == "" {
		return guildInfo{Name: FooterDefault}, nil
	}
	if info, ok := c.cache.Get(guildID); ok {
		return info, nil
	}

	g, err := c.session.Guild(guildID)
	if err != nil {
		return guildInfo{Name: FooterDefault}, err
	}

	info := guildInfo{Name: g.Name}
	if g.Icon != "" {
		info.IconURL = discordgo.EndpointGuildIcon(g.ID, g.Icon)
	}
	c.cache.Add(guildID, info)
	return info, nil
}
