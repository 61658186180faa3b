package selectors

import (
	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/store"
)

// Test verisi:
//
//	t1: c1 town-square, c2 off-topic, c3 private, c4 joinable (üye değil), c5 archived (üye değil)
//	t2: c6 (üye), t3: silinmiş takım
//	DM: d1 (me–bob), d2 (me–dave, dave deaktive); GM: g1 (me, bob, carol)
const (
	meID    = "u1"
	bobID   = "u2"
	carolID = "u3"
	daveID  = "u4"
)

var (
	dmBob  = models.DirectChannelName(meID, bobID)
	dmDave = models.DirectChannelName(meID, daveID)
)

func dispatchAll(s *store.State, actions ...store.Action) *store.State {
	st := store.New(s, nil)
	for _, a := range actions {
		st.Dispatch(a)
	}
	return st.State()
}

func member(channelID string, mentions int, msgCount int64, markUnread models.MarkUnread) *models.ChannelMembership {
	return &models.ChannelMembership{
		ChannelID:    channelID,
		UserID:       meID,
		Roles:        "channel_user",
		MentionCount: mentions,
		MsgCount:     msgCount,
		NotifyProps:  models.ChannelNotifyProps{MarkUnread: markUnread},
	}
}

func baseState() *store.State {
	return dispatchAll(store.NewState(),
		store.SetCurrentUser{UserID: meID},
		store.ReceivedProfiles{Profiles: []*models.User{
			{ID: meID, Username: "me", Locale: "en", Roles: "system_user"},
			{ID: bobID, Username: "bob", FirstName: "Bob", LastName: "Builder"},
			{ID: carolID, Username: "carol"},
			{ID: daveID, Username: "dave", DeleteAt: 500},
		}},
		store.ReceivedTeams{Teams: []*models.Team{
			{ID: "t1", Name: "team-one", DisplayName: "Team One"},
			{ID: "t2", Name: "team-two", DisplayName: "Team Two"},
			{ID: "t3", Name: "team-gone", DisplayName: "Gone", DeleteAt: 42},
		}},
		store.SelectTeam{TeamID: "t1"},
		store.ReceivedChannels{Channels: []*models.Channel{
			{ID: "c1", TeamID: "t1", Type: models.ChannelTypeOpen, Name: models.DefaultChannelName, DisplayName: "Town Square"},
			{ID: "c2", TeamID: "t1", Type: models.ChannelTypeOpen, Name: "off-topic", DisplayName: "Off-Topic"},
			{ID: "c3", TeamID: "t1", Type: models.ChannelTypePrivate, Name: "private", DisplayName: "Private"},
			{ID: "c4", TeamID: "t1", Type: models.ChannelTypeOpen, Name: "joinable", DisplayName: "Joinable"},
			{ID: "c5", TeamID: "t1", Type: models.ChannelTypeOpen, Name: "archived", DisplayName: "Archived", DeleteAt: 100},
			{ID: "c6", TeamID: "t2", Type: models.ChannelTypeOpen, Name: "t2-general", DisplayName: "General"},
			{ID: dmBob, Type: models.ChannelTypeDirect, Name: dmBob, DisplayName: dmBob},
			{ID: dmDave, Type: models.ChannelTypeDirect, Name: dmDave, DisplayName: dmDave},
			{ID: "g1", Type: models.ChannelTypeGroup, Name: "g1-name", DisplayName: "bob, carol, me"},
		}},
		store.ReceivedProfilesInChannel{ChannelID: "g1", UserIDs: []string{meID, bobID, carolID}},
		store.ReceivedStatuses{Statuses: map[string]string{bobID: string(models.UserStatusOnline)}},
		store.ReceivedMyChannelMembers{Members: []*models.ChannelMembership{
			member("c1", 0, 10, models.MarkUnreadAll),
			member("c2", 0, 10, models.MarkUnreadAll),
			member("c3", 0, 3, models.MarkUnreadMention),
			member("c6", 9, 0, models.MarkUnreadAll),
			member(dmBob, 2, 0, models.MarkUnreadAll),
			member(dmDave, 5, 0, models.MarkUnreadAll),
			member("g1", 1, 0, models.MarkUnreadAll),
		}},
		store.ReceivedMessageCounts{Totals: map[string]int64{
			"c1": 10, "c2": 12, "c3": 5, "c6": 1, dmBob: 2, dmDave: 5, "g1": 1,
		}},
		store.ReceivedMyTeamMembers{Members: []*models.TeamMembership{
			{TeamID: "t1", UserID: meID, Roles: "team_user"},
			{TeamID: "t2", UserID: meID, Roles: "team_user", MentionCount: 4, MsgCount: 1},
			{TeamID: "t3", UserID: meID, Roles: "team_user", MentionCount: 100, MsgCount: 100},
		}},
		store.SelectChannel{ChannelID: "c1"},
	)
}

func channelIDs(channels []*models.Channel) []string {
	out := make([]string, 0, len(channels))
	for _, ch := range channels {
		out = append(out, ch.ID)
	}
	return out
}
