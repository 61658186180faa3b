package selectors

import (
	"maps"
	"slices"
	"strings"

	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg/memo"
	"github.com/akinalp/chanview/store"
)

// ChannelWithProfiles, bir GM kanalı ve diğer üyelerinin profilleri.
type ChannelWithProfiles struct {
	Channel  *models.Channel
	Profiles []*models.User
}

// GetChannel, store'daki ham kanal kaydını döner; yoksa nil.
// DM/GM kanalları tamamlanmaz — görünen ad için MakeGetChannel kullanılır.
func GetChannel(s *store.State, channelID string) *models.Channel {
	return getAllChannels(s)[channelID]
}

// MakeGetChannel, kendi cache'ine sahip bir kanal selector'ı üretir.
// Açık/özel kanallar için store'daki kayıt, DM/GM için tamamlanmış
// kopya döner. Liste satırı başına bir örnek oluşturulmalıdır.
func MakeGetChannel() func(s *store.State, channelID string) *models.Channel {
	return memo.SelectArg2(
		func(s *store.State, id string) *models.Channel { return getAllChannels(s)[id] },
		memo.IgnoreArg[*store.State, string](getDirectContext),
		func(_ string, ch *models.Channel, dc *directContext) *models.Channel {
			if ch == nil {
				return nil
			}
			return dc.complete(ch)
		},
	)
}

var getCurrentChannel = memo.Select2(
	func(s *store.State) *models.Channel { return getAllChannels(s)[getCurrentChannelID(s)] },
	getDirectContext,
	func(ch *models.Channel, dc *directContext) *models.Channel {
		if ch == nil {
			return nil
		}
		return dc.complete(ch)
	},
)

// GetCurrentChannel, seçili kanalı (DM/GM ise tamamlanmış olarak) döner.
func GetCurrentChannel(s *store.State) *models.Channel {
	return getCurrentChannel(s)
}

// GetChannelByName, verilen ada sahip ilk kanalı döner (ID sırasına göre).
func GetChannelByName(s *store.State, name string) *models.Channel {
	channels := getAllChannels(s)
	for _, id := range slices.Sorted(maps.Keys(channels)) {
		if ch := channels[id]; ch != nil && ch.Name == name {
			return ch
		}
	}
	return nil
}

// channelsForIDs, index'teki sırayla kanalları toplar ve görünen ada göre sıralar.
// Eşit görünen adlarda ada, o da eşitse index sırasına bakılır (stable sort).
func channelsForIDs(channels map[string]*models.Channel, ids []string, locale string) []*models.Channel {
	out := make([]*models.Channel, 0, len(ids))
	for _, id := range ids {
		if ch := channels[id]; ch != nil {
			out = append(out, ch)
		}
	}
	sortChannelsByDisplayName(out, locale)
	return out
}

func sortChannelsByDisplayName(channels []*models.Channel, locale string) {
	coll := newCollator(locale)
	slices.SortStableFunc(channels, func(a, b *models.Channel) int {
		if c := coll.CompareString(a.DisplayName, b.DisplayName); c != 0 {
			return c
		}
		return coll.CompareString(a.Name, b.Name)
	})
}

var getChannelsInCurrentTeam = memo.Select3(
	getAllChannels,
	getCurrentTeamChannelIDs,
	GetCurrentUserLocale,
	channelsForIDs,
)

// GetChannelsInCurrentTeam, mevcut takımın kanalları, görünen ada göre sıralı.
func GetChannelsInCurrentTeam(s *store.State) []*models.Channel {
	return getChannelsInCurrentTeam(s)
}

// MakeGetChannelsInTeam, takım ID'si alan ve kendi cache'ine sahip bir
// selector üretir.
func MakeGetChannelsInTeam() func(s *store.State, teamID string) []*models.Channel {
	return memo.SelectArg3(
		memo.IgnoreArg[*store.State, string](getAllChannels),
		func(s *store.State, teamID string) []string { return getChannelsInTeam(s)[teamID] },
		memo.IgnoreArg[*store.State, string](GetCurrentUserLocale),
		func(_ string, channels map[string]*models.Channel, ids []string, locale string) []*models.Channel {
			return channelsForIDs(channels, ids, locale)
		},
	)
}

// getDirectChannels, takımsız index'teki DM/GM kanalları, tamamlanmış
// ve index sırasında.
var getDirectChannels = memo.Select3(
	getAllChannels,
	getTeamlessChannelIDs,
	getDirectContext,
	func(channels map[string]*models.Channel, ids []string, dc *directContext) []*models.Channel {
		out := make([]*models.Channel, 0, len(ids))
		for _, id := range ids {
			ch := channels[id]
			if ch == nil || !ch.IsDirectOrGroup() {
				continue
			}
			out = append(out, dc.complete(ch))
		}
		return out
	},
)

var getMyChannels = memo.Select3(
	getChannelsInCurrentTeam,
	getMyChannelMemberships,
	getDirectChannels,
	func(inTeam []*models.Channel, members map[string]*models.ChannelMembership, direct []*models.Channel) []*models.Channel {
		out := make([]*models.Channel, 0, len(inTeam)+len(direct))
		for _, ch := range slices.Concat(inTeam, direct) {
			if _, ok := members[ch.ID]; ok {
				out = append(out, ch)
			}
		}
		return out
	},
)

// GetMyChannels, kullanıcının mevcut takımda üye olduğu kanallar ve
// ardından üye olduğu DM/GM kanalları (tamamlanmış). Ayrılınan DM'ler listelenmez.
func GetMyChannels(s *store.State) []*models.Channel {
	return getMyChannels(s)
}

// GetMembersInCurrentChannel, seçili kanalın üyelik kayıtları (kullanıcı ID → üyelik).
func GetMembersInCurrentChannel(s *store.State) map[string]*models.ChannelMembership {
	return s.ChannelsSection().MembersInChannel[getCurrentChannelID(s)]
}

var getOtherChannels = memo.SelectArg2(
	memo.IgnoreArg[*store.State, bool](getChannelsInCurrentTeam),
	memo.IgnoreArg[*store.State, bool](getMyChannelMemberships),
	func(includeArchived bool, inTeam []*models.Channel, members map[string]*models.ChannelMembership) []*models.Channel {
		out := make([]*models.Channel, 0)
		for _, ch := range inTeam {
			if ch.Type != models.ChannelTypeOpen {
				continue
			}
			if _, ok := members[ch.ID]; ok {
				continue
			}
			if !includeArchived && ch.IsDeleted() {
				continue
			}
			out = append(out, ch)
		}
		return out
	},
)

// GetOtherChannels, mevcut takımda kullanıcının üye olmadığı açık kanallar
// (katılınabilir kanallar). includeArchived false ise arşivlenmiş kanallar atlanır.
func GetOtherChannels(s *store.State, includeArchived bool) []*models.Channel {
	return getOtherChannels(s, includeArchived)
}

func channelsNameMap(channels map[string]*models.Channel, ids []string) map[string]*models.Channel {
	out := make(map[string]*models.Channel, len(ids))
	for _, id := range ids {
		if ch := channels[id]; ch != nil {
			out[ch.Name] = ch
		}
	}
	return out
}

var getChannelsNameMapInCurrentTeam = memo.Select2(getAllChannels, getCurrentTeamChannelIDs, channelsNameMap)

// GetChannelsNameMapInCurrentTeam, mevcut takımdaki kanallar, ada göre.
func GetChannelsNameMapInCurrentTeam(s *store.State) map[string]*models.Channel {
	return getChannelsNameMapInCurrentTeam(s)
}

var getChannelsNameMapInTeam = memo.SelectArg2(
	memo.IgnoreArg[*store.State, string](getAllChannels),
	func(s *store.State, teamID string) []string { return getChannelsInTeam(s)[teamID] },
	func(_ string, channels map[string]*models.Channel, ids []string) map[string]*models.Channel {
		return channelsNameMap(channels, ids)
	},
)

// GetChannelsNameMapInTeam, verilen takımdaki kanallar, ada göre.
func GetChannelsNameMapInTeam(s *store.State, teamID string) map[string]*models.Channel {
	return getChannelsNameMapInTeam(s, teamID)
}

var getChannelNameToDisplayNameMap = memo.Select2(
	getAllChannels,
	getCurrentTeamChannelIDs,
	func(channels map[string]*models.Channel, ids []string) map[string]string {
		out := make(map[string]string, len(ids))
		for _, id := range ids {
			if ch := channels[id]; ch != nil {
				out[ch.Name] = ch.DisplayName
			}
		}
		return out
	},
	memo.WithResultEqual(func(prev, next map[string]string) bool { return maps.Equal(prev, next) }),
)

// GetChannelNameToDisplayNameMap, mevcut takımda kanal adı → görünen ad.
// Sadece bir ad veya görünen ad değiştiğinde yeni map döner; last_post_at
// gibi diğer alanlardaki değişiklikler önceki referansı korur.
func GetChannelNameToDisplayNameMap(s *store.State) map[string]string {
	return getChannelNameToDisplayNameMap(s)
}

var getGroupChannels = memo.Select1(getDirectChannels, func(direct []*models.Channel) []*models.Channel {
	out := make([]*models.Channel, 0)
	for _, ch := range direct {
		if ch.IsGroup() {
			out = append(out, ch)
		}
	}
	return out
})

// GetGroupChannels, takımsız index'teki GM kanalları, tamamlanmış olarak.
func GetGroupChannels(s *store.State) []*models.Channel {
	return getGroupChannels(s)
}

var getDirectAndGroupChannels = memo.Select2(
	getAllChannels,
	getDirectContext,
	func(channels map[string]*models.Channel, dc *directContext) []*models.Channel {
		out := make([]*models.Channel, 0)
		if dc.currentUserID == "" {
			return out
		}
		for _, id := range slices.Sorted(maps.Keys(channels)) {
			if ch := channels[id]; ch != nil && ch.IsDirectOrGroup() {
				out = append(out, dc.complete(ch))
			}
		}
		sortChannelsByDisplayName(out, dc.locale)
		return out
	},
)

// GetDirectAndGroupChannels, store'daki bütün DM/GM kanalları, tamamlanmış
// ve görünen ada göre sıralı (eşitlikte ID sırası). Oturum yoksa boş liste.
func GetDirectAndGroupChannels(s *store.State) []*models.Channel {
	return getDirectAndGroupChannels(s)
}

var getChannelsWithUserProfiles = memo.Select2(
	getGroupChannels,
	getDirectContext,
	func(groups []*models.Channel, dc *directContext) []ChannelWithProfiles {
		out := make([]ChannelWithProfiles, 0, len(groups))
		for _, ch := range groups {
			var profiles []*models.User
			for id := range dc.profilesInChannel[ch.ID] {
				if id == dc.currentUserID {
					continue
				}
				if user := dc.profiles[id]; user != nil {
					profiles = append(profiles, user)
				}
			}
			// Önce byte sırası: collator'a göre eşit adlar hep aynı sırada kalır
			slices.SortFunc(profiles, func(a, b *models.User) int {
				return strings.Compare(a.Username, b.Username)
			})
			coll := newCollator(dc.locale)
			slices.SortStableFunc(profiles, func(a, b *models.User) int {
				return coll.CompareString(a.Username, b.Username)
			})
			out = append(out, ChannelWithProfiles{Channel: ch, Profiles: profiles})
		}
		return out
	},
)

// GetChannelsWithUserProfiles, her GM kanalı ile diğer üyelerin profilleri.
func GetChannelsWithUserProfiles(s *store.State) []ChannelWithProfiles {
	return getChannelsWithUserProfiles(s)
}

func sliceEqual(prev, next []string) bool { return slices.Equal(prev, next) }

var getChannelIDsInCurrentTeam = memo.Select1(
	getCurrentTeamChannelIDs,
	func(ids []string) []string { return slices.Clone(ids) },
	memo.WithResultEqual(sliceEqual),
)

// GetChannelIDsInCurrentTeam, mevcut takımın kanal ID'leri, index sırasında.
func GetChannelIDsInCurrentTeam(s *store.State) []string {
	return getChannelIDsInCurrentTeam(s)
}

var getChannelIDsForCurrentTeam = memo.Select2(
	getCurrentTeamChannelIDs,
	getTeamlessChannelIDs,
	func(inTeam, teamless []string) []string {
		return slices.Concat(inTeam, teamless)
	},
	memo.WithResultEqual(sliceEqual),
)

// GetChannelIDsForCurrentTeam, mevcut takımın kanal ID'leri ve ardından DM/GM ID'leri.
func GetChannelIDsForCurrentTeam(s *store.State) []string {
	return getChannelIDsForCurrentTeam(s)
}
