package selectors

import (
	"slices"

	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg/memo"
	"github.com/akinalp/chanview/store"
)

// IsCurrentChannelMuted, seçili kanalın sessize alınıp alınmadığı
// (mark_unread = mention).
func IsCurrentChannelMuted(s *store.State) bool {
	member := getMyChannelMemberships(s)[getCurrentChannelID(s)]
	return member != nil && member.NotifyProps.MarkUnread == models.MarkUnreadMention
}

// IsCurrentChannelArchived, seçili kanal arşivlenmiş mi?
func IsCurrentChannelArchived(s *store.State) bool {
	ch := GetChannel(s, getCurrentChannelID(s))
	return ch != nil && ch.IsDeleted()
}

// IsCurrentChannelDefault, seçili kanal town-square mi?
func IsCurrentChannelDefault(s *store.State) bool {
	ch := GetChannel(s, getCurrentChannelID(s))
	return ch != nil && ch.Name == models.DefaultChannelName
}

func IsManuallyUnread(s *store.State, channelID string) bool {
	return s.ChannelsSection().ManuallyUnread[channelID]
}

func GetChannelModerations(s *store.State, channelID string) []models.ChannelModeration {
	return s.ChannelsSection().Moderations[channelID]
}

func GetChannelMemberCountsByGroup(s *store.State, channelID string) map[string]models.ChannelMemberCountByGroup {
	return s.ChannelsSection().MemberCountsByGroup[channelID]
}

// GetCategoriesForTeam, takımın kategorileri, sidebar sırasında.
func GetCategoriesForTeam(s *store.State, teamID string) []*models.ChannelCategory {
	cats := s.CategoriesSection()
	order := cats.OrderByTeam[teamID]

	out := make([]*models.ChannelCategory, 0, len(order))
	for _, id := range order {
		if c := cats.ByID[id]; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// IsFavoriteChannel, kanal mevcut takımın favoriler kategorisinde mi?
// Takım için kategori yüklenmemişse favorite_channel tercihine bakılır.
func IsFavoriteChannel(s *store.State, channelID string) bool {
	categories := GetCategoriesForTeam(s, getCurrentTeamID(s))
	if len(categories) == 0 {
		p := s.Preferences[models.PreferenceKey(models.PreferenceCategoryFavoriteChannel, channelID)]
		return p != nil && p.Value == "true"
	}

	for _, c := range categories {
		if c.Type == models.CategoryTypeFavorites {
			return slices.Contains(c.ChannelIDs, channelID)
		}
	}
	return false
}

// MakeGetChannelsForCategory, kategori alan ve kendi cache'ine sahip bir
// selector üretir. Kanallar kategorinin channel_ids sırasında döner;
// DM/GM'ler tamamlanır, store'da olmayan ID'ler atlanır.
func MakeGetChannelsForCategory() func(s *store.State, category *models.ChannelCategory) []*models.Channel {
	return memo.SelectArg3(
		func(_ *store.State, c *models.ChannelCategory) []string { return c.ChannelIDs },
		memo.IgnoreArg[*store.State, *models.ChannelCategory](getAllChannels),
		memo.IgnoreArg[*store.State, *models.ChannelCategory](getDirectContext),
		func(_ *models.ChannelCategory, ids []string, channels map[string]*models.Channel, dc *directContext) []*models.Channel {
			out := make([]*models.Channel, 0, len(ids))
			for _, id := range ids {
				if ch := channels[id]; ch != nil {
					out = append(out, dc.complete(ch))
				}
			}
			return out
		},
	)
}
