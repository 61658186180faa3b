package selectors

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg/memo"
	"github.com/akinalp/chanview/store"
)

var getMyTeams = memo.Select3(
	getTeams,
	getTeamMemberships,
	GetCurrentUserLocale,
	func(teams map[string]*models.Team, members map[string]*models.TeamMembership, locale string) []*models.Team {
		out := make([]*models.Team, 0, len(members))
		for _, id := range slices.Sorted(maps.Keys(members)) {
			if team := teams[id]; team != nil && team.DeleteAt == 0 {
				out = append(out, team)
			}
		}

		coll := newCollator(locale)
		slices.SortStableFunc(out, func(a, b *models.Team) int {
			if c := coll.CompareString(a.DisplayName, b.DisplayName); c != 0 {
				return c
			}
			return coll.CompareString(a.Name, b.Name)
		})
		return out
	},
)

// GetMyTeams, kullanıcının üye olduğu ve silinmemiş takımlar, görünen ada göre sıralı.
func GetMyTeams(s *store.State) []*models.Team {
	return getMyTeams(s)
}

// firstMemberChannel, takımın sıralı kanallarından üye olunan ve
// arşivlenmemiş ilkini döner. skipDefault ise town-square atlanır.
func firstMemberChannel(
	channels map[string]*models.Channel,
	ids []string,
	members map[string]*models.ChannelMembership,
	locale string,
	skipDefault bool,
) *models.Channel {
	for _, ch := range channelsForIDs(channels, ids, locale) {
		if _, ok := members[ch.ID]; !ok || ch.IsDeleted() {
			continue
		}
		if skipDefault && ch.Name == models.DefaultChannelName {
			continue
		}
		return ch
	}
	return nil
}

// getMyFirstChannelForTeams, takım kanallarını index'ten değil kanalın
// team_id alanından toplar; index'i yüklenmemiş takımlar da bulunur.
var getMyFirstChannelForTeams = memo.Select4(
	getMyTeams,
	getAllChannels,
	getMyChannelMemberships,
	GetCurrentUserLocale,
	func(
		teams []*models.Team,
		channels map[string]*models.Channel,
		members map[string]*models.ChannelMembership,
		locale string,
	) map[string]*models.Channel {
		inTeam := make(map[string][]string)
		for _, id := range slices.Sorted(maps.Keys(channels)) {
			if ch := channels[id]; ch != nil && ch.TeamID != "" {
				inTeam[ch.TeamID] = append(inTeam[ch.TeamID], id)
			}
		}

		out := make(map[string]*models.Channel, len(teams))
		for _, team := range teams {
			if ch := firstMemberChannel(channels, inTeam[team.ID], members, locale, false); ch != nil {
				out[team.ID] = ch
			}
		}
		return out
	},
)

// GetMyFirstChannelForTeams, takım ID'si → o takımda görünen ada göre ilk üye olunan kanal.
func GetMyFirstChannelForTeams(s *store.State) map[string]*models.Channel {
	return getMyFirstChannelForTeams(s)
}

// PermissionGatedServerVersion, yetki tabanlı yönlendirmenin desteklendiği
// ilk sunucu versiyonu.
const PermissionGatedServerVersion = "4.9.0"

// IsMinimumServerVersion, "4.9.0", "5.12" veya "5.3.0.5.3.0.abc123.false" gibi
// sunucu versiyonunun en az minimum kadar olup olmadığını döner.
// Parse edilemeyen veya boş versiyon desteklenmiyor sayılır.
func IsMinimumServerVersion(version, minimum string) bool {
	v, ok := canonicalVersion(version)
	if !ok {
		return false
	}
	m, ok := canonicalVersion(minimum)
	if !ok {
		return false
	}
	return semver.Compare(v, m) >= 0
}

// canonicalVersion, ilk üç bileşeni "vMAJOR.MINOR.PATCH" formatına çevirir.
// Eksik minor/patch 0 sayılır: "5.12" → "v5.12.0".
func canonicalVersion(version string) (string, bool) {
	parts := strings.SplitN(strings.TrimPrefix(version, "v"), ".", 4)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	v := "v" + strings.Join(parts, ".")
	return v, semver.IsValid(v)
}

// GetRedirectChannelNameForTeam, kullanıcının takıma girerken açılacak
// kanalın adını seçer:
//
//  1. Sunucu yetki tabanlı yönlendirmeyi desteklemiyorsa → town-square
//  2. Takımda join_public_channels yetkisi varsa → town-square
//  3. town-square'in üyesiyse → town-square
//  4. Aksi halde görünen ada göre üye olunan ilk kanal (eşitlikte index sırası)
//
// Hiçbiri yoksa town-square döner.
func GetRedirectChannelNameForTeam(s *store.State, teamID string) string {
	if !IsMinimumServerVersion(s.GeneralSection().ServerVersion, PermissionGatedServerVersion) {
		return models.DefaultChannelName
	}
	if HaveITeamPermission(s, teamID, models.PermJoinPublicChannels) {
		return models.DefaultChannelName
	}

	channels := getAllChannels(s)
	ids := getChannelsInTeam(s)[teamID]
	members := getMyChannelMemberships(s)

	for _, id := range ids {
		ch := channels[id]
		if ch == nil || ch.Name != models.DefaultChannelName {
			continue
		}
		if _, ok := members[id]; ok {
			return models.DefaultChannelName
		}
	}

	if ch := firstMemberChannel(channels, ids, members, GetCurrentUserLocale(s), true); ch != nil {
		return ch.Name
	}
	return models.DefaultChannelName
}

// GetRedirectChannelNameForCurrentTeam, mevcut takım için GetRedirectChannelNameForTeam.
func GetRedirectChannelNameForCurrentTeam(s *store.State) string {
	return GetRedirectChannelNameForTeam(s, getCurrentTeamID(s))
}
