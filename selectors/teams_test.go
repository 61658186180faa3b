package selectors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/store"
)

func withRoles(s *store.State, roles ...*models.Role) *store.State {
	return dispatchAll(s, store.ReceivedRoles{Roles: roles})
}

func TestIsMinimumServerVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"", false},
		{"4.8.1", false},
		{"4.9.0", true},
		{"4.10.0", true},
		{"5.3.0.5.3.0.abc123.false", true},
		{"v4.9.2", true},
		{"garbage", false},
		{"4.9", true},
		{"4.8", false},
		{"5", true},
		{"5.12", true},
		{"4.x", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMinimumServerVersion(tt.version, PermissionGatedServerVersion))
		})
	}
}

func TestGetRedirectChannelNameForTeam(t *testing.T) {
	teamUser := &models.Role{Name: "team_user"}
	teamUserCanJoin := &models.Role{Name: "team_user", Permissions: []string{models.PermJoinPublicChannels}}

	t.Run("old server always lands on the default channel", func(t *testing.T) {
		s := dispatchAll(withRoles(baseState(), teamUser),
			store.LeaveChannel{ChannelID: "c1"},
			store.ReceivedServerVersion{Version: "4.8.0"},
		)
		assert.Equal(t, models.DefaultChannelName, GetRedirectChannelNameForTeam(s, "t1"))

		s = dispatchAll(s, store.ReceivedServerVersion{Version: ""})
		assert.Equal(t, models.DefaultChannelName, GetRedirectChannelNameForTeam(s, "t1"))
	})

	t.Run("join permission lands on the default channel", func(t *testing.T) {
		s := dispatchAll(withRoles(baseState(), teamUserCanJoin),
			store.LeaveChannel{ChannelID: "c1"},
			store.ReceivedServerVersion{Version: "4.9.0"},
		)
		assert.Equal(t, models.DefaultChannelName, GetRedirectChannelNameForTeam(s, "t1"))
	})

	t.Run("town-square member lands on the default channel", func(t *testing.T) {
		s := dispatchAll(withRoles(baseState(), teamUser),
			store.ReceivedServerVersion{Version: "4.9.0"},
		)
		assert.Equal(t, models.DefaultChannelName, GetRedirectChannelNameForTeam(s, "t1"))
	})

	t.Run("otherwise first joined channel by display name", func(t *testing.T) {
		s := dispatchAll(withRoles(baseState(), teamUser),
			store.LeaveChannel{ChannelID: "c1"},
			store.ReceivedServerVersion{Version: "5.0.0"},
		)
		assert.Equal(t, "off-topic", GetRedirectChannelNameForTeam(s, "t1"))
		assert.Equal(t, "off-topic", GetRedirectChannelNameForCurrentTeam(s))
		assert.Equal(t, "t2-general", GetRedirectChannelNameForTeam(s, "t2"))
	})

	t.Run("short server version is padded", func(t *testing.T) {
		s := dispatchAll(withRoles(baseState(), teamUser),
			store.LeaveChannel{ChannelID: "c1"},
			store.ReceivedServerVersion{Version: "5.12"},
		)
		assert.Equal(t, "off-topic", GetRedirectChannelNameForTeam(s, "t1"))
	})

	t.Run("no joined channels falls back to the default", func(t *testing.T) {
		s := dispatchAll(withRoles(baseState(), teamUser),
			store.LeaveChannel{ChannelID: "c6"},
			store.ReceivedServerVersion{Version: "5.0.0"},
		)
		assert.Equal(t, models.DefaultChannelName, GetRedirectChannelNameForTeam(s, "t2"))
	})
}

func TestGetMyTeams(t *testing.T) {
	s := baseState()

	teams := GetMyTeams(s)
	ids := make([]string, 0, len(teams))
	for _, team := range teams {
		ids = append(ids, team.ID)
	}
	assert.Equal(t, []string{"t1", "t2"}, ids)
}

func TestGetMyFirstChannelForTeams(t *testing.T) {
	s := baseState()

	first := GetMyFirstChannelForTeams(s)
	assert.Equal(t, "c2", first["t1"].ID)
	assert.Equal(t, "c6", first["t2"].ID)
	assert.NotContains(t, first, "t3")
}

func TestGetMyFirstChannelForTeams_WithoutTeamIndex(t *testing.T) {
	s := baseState()
	channels := *s.Channels
	channels.ChannelsInTeam = nil
	unindexed := *s
	unindexed.Channels = &channels

	first := GetMyFirstChannelForTeams(&unindexed)
	assert.Equal(t, "c2", first["t1"].ID)
	assert.Equal(t, "c6", first["t2"].ID)
}

func TestCanManageAnyChannelMembersInCurrentTeam(t *testing.T) {
	s := withRoles(baseState(),
		&models.Role{Name: "channel_user"},
		&models.Role{Name: "team_user"},
		&models.Role{Name: "system_user"},
	)
	assert.False(t, CanManageAnyChannelMembersInCurrentTeam(s))

	// c3 özel kanal — özel kanal yetkisi gerekir
	privateAdmin := dispatchAll(withRoles(s, &models.Role{
		Name:        "channel_admin",
		Permissions: []string{models.PermManagePrivateChannelMembers},
	}), store.ReceivedMyChannelMembers{Members: []*models.ChannelMembership{{
		ChannelID: "c3", UserID: meID, Roles: "channel_user channel_admin",
	}}})
	assert.True(t, CanManageAnyChannelMembersInCurrentTeam(privateAdmin))

	// Aynı yetki başka takımdaki kanalda geçerli değil
	elsewhere := dispatchAll(withRoles(s, &models.Role{
		Name:        "channel_admin",
		Permissions: []string{models.PermManagePublicChannelMembers},
	}), store.ReceivedMyChannelMembers{Members: []*models.ChannelMembership{{
		ChannelID: "c6", UserID: meID, Roles: "channel_admin",
	}}})
	assert.False(t, CanManageAnyChannelMembersInCurrentTeam(elsewhere))

	teamAdmin := withRoles(s, &models.Role{
		Name:        "team_user",
		Permissions: []string{models.PermManagePublicChannelMembers},
	})
	assert.True(t, CanManageAnyChannelMembersInCurrentTeam(teamAdmin))
}

func TestHaveIChannelPermission(t *testing.T) {
	s := withRoles(baseState(), &models.Role{Name: "system_user", Permissions: []string{models.PermManageSystem}})
	assert.True(t, HaveISystemPermission(s, models.PermJoinPublicChannels))
	assert.True(t, HaveIChannelPermission(s, "t1", "c2", models.PermManagePublicChannelMembers))

	plain := withRoles(baseState(), &models.Role{Name: "system_user"})
	assert.False(t, HaveIChannelPermission(plain, "t1", "c2", models.PermManagePublicChannelMembers))
}
