package selectors

import (
	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg/memo"
	"github.com/akinalp/chanview/store"
)

// UnreadStatus, bir kanal/takım kümesinin okunmamış durumu.
//
// MentionCount > 0 ise durum sayısaldır (badge'de sayı gösterilir);
// aksi halde sadece HasUnread bayrağı anlamlıdır.
type UnreadStatus struct {
	MentionCount int  `json:"mention_count"`
	HasUnread    bool `json:"has_unread"`
}

// IsCount, durumun sayısal (mention sayısı) mı yoksa sadece bayrak mı olduğunu döner.
func (u UnreadStatus) IsCount() bool {
	return u.MentionCount > 0
}

// UnreadMeta, view'ın ihtiyaç duyduğu sadeleştirilmiş okunmamış bilgisi.
type UnreadMeta struct {
	IsUnread           bool `json:"is_unread"`
	UnreadMentionCount int  `json:"unread_mention_count"`
}

// BasicUnreadMeta, UnreadStatus'tan {isUnread, unreadMentionCount} türetir.
// Sayısal durum (mention > 0) her zaman okunmamıştır.
func BasicUnreadMeta(u UnreadStatus) UnreadMeta {
	if u.IsCount() {
		return UnreadMeta{IsUnread: true, UnreadMentionCount: u.MentionCount}
	}
	return UnreadMeta{IsUnread: u.HasUnread}
}

// unreadTotals, toplama sırasında biriken değerler.
type unreadTotals struct {
	mentions int
	unread   bool
}

func (t unreadTotals) status() UnreadStatus {
	return UnreadStatus{MentionCount: t.mentions, HasUnread: t.unread || t.mentions > 0}
}

// channelUnread, tek bir kanalın katkısını hesaplar.
//
//   - arşivlenmiş kanallar katkı vermez
//   - karşı tarafı bilinmeyen veya deaktive edilmiş DM'ler katkı vermez
//   - mark_unread=mention ise mesaj sayısı farkı yok sayılır, sadece mention'lar sayılır
func channelUnread(
	ch *models.Channel,
	member *models.ChannelMembership,
	counts map[string]*models.MessageCount,
	users map[string]*models.User,
	currentUserID string,
) (unreadTotals, bool) {
	if ch == nil || member == nil || ch.IsDeleted() {
		return unreadTotals{}, false
	}
	if ch.IsDirect() {
		teammate := users[models.TeammateIDFromChannelName(currentUserID, ch.Name)]
		if teammate == nil || teammate.IsDeactivated() {
			return unreadTotals{}, false
		}
	}

	t := unreadTotals{mentions: member.MentionCount, unread: member.MentionCount > 0}
	if member.NotifyProps.MarkUnread != models.MarkUnreadMention {
		if c := counts[ch.ID]; c != nil && c.Total > member.MsgCount {
			t.unread = true
		}
	}
	return t, true
}

var getUnreadStatusInCurrentTeam = memo.Select6(
	getCurrentChannelID,
	getMyChannels,
	getMyChannelMemberships,
	getMessageCounts,
	getUsers,
	getCurrentUserID,
	func(
		currentChannelID string,
		channels []*models.Channel,
		members map[string]*models.ChannelMembership,
		counts map[string]*models.MessageCount,
		users map[string]*models.User,
		currentUserID string,
	) UnreadStatus {
		var total unreadTotals
		for _, ch := range channels {
			if ch.ID == currentChannelID {
				continue
			}
			t, ok := channelUnread(ch, members[ch.ID], counts, users, currentUserID)
			if !ok {
				continue
			}
			total.mentions += t.mentions
			total.unread = total.unread || t.unread
		}
		return total.status()
	},
)

// GetUnreadStatusInCurrentTeam, mevcut takımdaki kanallarım ve DM/GM'lerim
// için okunmamış durumu. Seçili kanal hesaba katılmaz.
func GetUnreadStatusInCurrentTeam(s *store.State) UnreadStatus {
	return getUnreadStatusInCurrentTeam(s)
}

// getChannelUnreadTotals, mevcut takımdaki ve takımsız kanallardaki üyeliklerin toplamı.
var getChannelUnreadTotals = memo.Select6(
	getAllChannels,
	getMyChannelMemberships,
	getMessageCounts,
	getUsers,
	getCurrentUserID,
	getCurrentTeamID,
	func(
		channels map[string]*models.Channel,
		members map[string]*models.ChannelMembership,
		counts map[string]*models.MessageCount,
		users map[string]*models.User,
		currentUserID string,
		currentTeamID string,
	) unreadTotals {
		var total unreadTotals
		for channelID, member := range members {
			ch := channels[channelID]
			if ch == nil || (ch.TeamID != "" && ch.TeamID != currentTeamID) {
				continue
			}
			t, ok := channelUnread(ch, member, counts, users, currentUserID)
			if !ok {
				continue
			}
			total.mentions += t.mentions
			total.unread = total.unread || t.unread
		}
		return total
	},
)

var getUnreadStatus = memo.Select4(
	getChannelUnreadTotals,
	getTeams,
	getTeamMemberships,
	getCurrentTeamID,
	func(
		total unreadTotals,
		teams map[string]*models.Team,
		teamMembers map[string]*models.TeamMembership,
		currentTeamID string,
	) UnreadStatus {
		// Diğer takımların kanal detayı yüklü olmayabilir — takım üyeliğindeki toplamlar kullanılır
		for teamID, tm := range teamMembers {
			if teamID == currentTeamID {
				continue
			}
			team := teams[teamID]
			if team == nil || team.DeleteAt != 0 {
				continue
			}
			total.mentions += tm.MentionCount
			total.unread = total.unread || tm.MsgCount > 0
		}
		return total.status()
	},
)

// GetUnreadStatus, bütün takımlar için okunmamış durumu: mevcut takımın
// ve DM/GM kanallarının üyelikleri ile diğer takımların üyelik toplamları.
func GetUnreadStatus(s *store.State) UnreadStatus {
	return getUnreadStatus(s)
}

// GetChannelUnreadMeta, tek bir kanalın okunmamış bilgisi.
func GetChannelUnreadMeta(s *store.State, channelID string) UnreadMeta {
	t, ok := channelUnread(
		getAllChannels(s)[channelID],
		getMyChannelMemberships(s)[channelID],
		getMessageCounts(s),
		getUsers(s),
		getCurrentUserID(s),
	)
	if !ok {
		return UnreadMeta{}
	}
	return BasicUnreadMeta(t.status())
}

// CountCurrentChannelUnreadMessages, seçili kanalda okunmamış mesaj sayısı.
// Üyelik yoksa 0.
func CountCurrentChannelUnreadMessages(s *store.State) int64 {
	channelID := getCurrentChannelID(s)
	member := getMyChannelMemberships(s)[channelID]
	if member == nil {
		return 0
	}

	var total int64
	if c := getMessageCounts(s)[channelID]; c != nil {
		total = c.Total
	}
	return max(total-member.MsgCount, 0)
}
