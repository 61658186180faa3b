package store

import (
	"maps"
	"slices"

	"github.com/akinalp/chanview/models"
)

// Action, store'a gönderilen bir değişiklik isteği.
//
// reduce eski snapshot'ı değiştirmeden yeni bir snapshot döner.
// Değişmeyen bölümler ve map'ler paylaşılır (structural sharing);
// sadece dokunulan path'ler yeni referans alır.
type Action interface {
	Type() string
	reduce(s *State) *State
}

// ─── Cursor action'ları ───

// SetCurrentUser, oturumdaki kullanıcıyı belirler.
type SetCurrentUser struct{ UserID string }

func (SetCurrentUser) Type() string { return "users/set_current_user" }

func (a SetCurrentUser) reduce(s *State) *State {
	if s.UsersSection().CurrentUserID == a.UserID {
		return s
	}
	return withUsers(s, func(u *UsersState) { u.CurrentUserID = a.UserID })
}

// SelectTeam, aktif takımı değiştirir.
type SelectTeam struct{ TeamID string }

func (SelectTeam) Type() string { return "teams/select_team" }

func (a SelectTeam) reduce(s *State) *State {
	if s.TeamsSection().CurrentTeamID == a.TeamID {
		return s
	}
	return withTeams(s, func(t *TeamsState) { t.CurrentTeamID = a.TeamID })
}

// SelectChannel, aktif kanalı değiştirir. Boş ID "kanal seçili değil" demektir.
type SelectChannel struct{ ChannelID string }

func (SelectChannel) Type() string { return "channels/select_channel" }

func (a SelectChannel) reduce(s *State) *State {
	if s.ChannelsSection().CurrentChannelID == a.ChannelID {
		return s
	}
	return withChannels(s, func(c *ChannelsState) { c.CurrentChannelID = a.ChannelID })
}

// ─── Channel action'ları ───

// ReceivedChannels, kanalları ekler/günceller ve takım index'lerine yeni ID'leri ekler.
type ReceivedChannels struct{ Channels []*models.Channel }

func (ReceivedChannels) Type() string { return "channels/received_channels" }

func (a ReceivedChannels) reduce(s *State) *State {
	if len(a.Channels) == 0 {
		return s
	}
	return withChannels(s, func(c *ChannelsState) {
		c.Channels = cloneMap(c.Channels)
		c.ChannelsInTeam = cloneMap(c.ChannelsInTeam)

		touched := make(map[string]bool)
		for _, ch := range a.Channels {
			if ch == nil {
				continue
			}
			c.Channels[ch.ID] = ch

			ids := c.ChannelsInTeam[ch.TeamID]
			if slices.Contains(ids, ch.ID) {
				continue
			}
			if !touched[ch.TeamID] {
				// Eski slice'ın backing array'ine append yapılmasın
				ids = slices.Clone(ids)
				touched[ch.TeamID] = true
			}
			c.ChannelsInTeam[ch.TeamID] = append(ids, ch.ID)
		}
	})
}

// ReceivedChannelDeleted, kanalı arşivlenmiş olarak işaretler.
type ReceivedChannelDeleted struct {
	ChannelID string
	DeleteAt  int64
}

func (ReceivedChannelDeleted) Type() string { return "channels/received_channel_deleted" }

func (a ReceivedChannelDeleted) reduce(s *State) *State {
	ch, ok := s.ChannelsSection().Channels[a.ChannelID]
	if !ok || ch == nil || ch.DeleteAt == a.DeleteAt {
		return s
	}
	return withChannels(s, func(c *ChannelsState) {
		updated := *ch
		updated.DeleteAt = a.DeleteAt
		c.Channels = cloneMap(c.Channels)
		c.Channels[a.ChannelID] = &updated
	})
}

// ReceivedMyChannelMembers, mevcut kullanıcının kanal üyeliklerini ekler/günceller.
type ReceivedMyChannelMembers struct{ Members []*models.ChannelMembership }

func (ReceivedMyChannelMembers) Type() string { return "channels/received_my_channel_members" }

func (a ReceivedMyChannelMembers) reduce(s *State) *State {
	if len(a.Members) == 0 {
		return s
	}
	return withChannels(s, func(c *ChannelsState) {
		c.MyMembers = cloneMap(c.MyMembers)
		for _, m := range a.Members {
			c.MyMembers[m.ChannelID] = m
		}
	})
}

// LeaveChannel, mevcut kullanıcının kanal üyeliğini siler.
type LeaveChannel struct{ ChannelID string }

func (LeaveChannel) Type() string { return "channels/leave_channel" }

func (a LeaveChannel) reduce(s *State) *State {
	if _, ok := s.ChannelsSection().MyMembers[a.ChannelID]; !ok {
		return s
	}
	return withChannels(s, func(c *ChannelsState) {
		c.MyMembers = cloneMap(c.MyMembers)
		delete(c.MyMembers, a.ChannelID)
	})
}

// ReceivedChannelMembers, bir kanalın üye listesini değiştirir.
type ReceivedChannelMembers struct {
	ChannelID string
	Members   []*models.ChannelMembership
}

func (ReceivedChannelMembers) Type() string { return "channels/received_channel_members" }

func (a ReceivedChannelMembers) reduce(s *State) *State {
	return withChannels(s, func(c *ChannelsState) {
		members := make(map[string]*models.ChannelMembership, len(a.Members))
		for _, m := range a.Members {
			members[m.UserID] = m
		}
		c.MembersInChannel = cloneMap(c.MembersInChannel)
		c.MembersInChannel[a.ChannelID] = members
	})
}

// ReceivedMessageCounts, kanal ID'si → toplam mesaj sayısı.
type ReceivedMessageCounts struct{ Totals map[string]int64 }

func (ReceivedMessageCounts) Type() string { return "channels/received_message_counts" }

func (a ReceivedMessageCounts) reduce(s *State) *State {
	if len(a.Totals) == 0 {
		return s
	}
	return withChannels(s, func(c *ChannelsState) {
		c.MessageCounts = cloneMap(c.MessageCounts)
		for id, total := range a.Totals {
			c.MessageCounts[id] = &models.MessageCount{Total: total}
		}
	})
}

// SetManuallyUnread, kullanıcının kanalı elle okunmamış işaretlemesini kaydeder.
type SetManuallyUnread struct {
	ChannelID string
	Unread    bool
}

func (SetManuallyUnread) Type() string { return "channels/set_manually_unread" }

func (a SetManuallyUnread) reduce(s *State) *State {
	if s.ChannelsSection().ManuallyUnread[a.ChannelID] == a.Unread {
		return s
	}
	return withChannels(s, func(c *ChannelsState) {
		c.ManuallyUnread = cloneMap(c.ManuallyUnread)
		if a.Unread {
			c.ManuallyUnread[a.ChannelID] = true
		} else {
			delete(c.ManuallyUnread, a.ChannelID)
		}
	})
}

// ReceivedChannelModerations, kanalın moderasyon ayarlarını kaydeder.
type ReceivedChannelModerations struct {
	ChannelID   string
	Moderations []models.ChannelModeration
}

func (ReceivedChannelModerations) Type() string { return "channels/received_channel_moderations" }

func (a ReceivedChannelModerations) reduce(s *State) *State {
	return withChannels(s, func(c *ChannelsState) {
		c.Moderations = cloneMap(c.Moderations)
		c.Moderations[a.ChannelID] = a.Moderations
	})
}

// ReceivedMemberCountsByGroup, kanaldaki grup bazlı üye sayılarını kaydeder.
type ReceivedMemberCountsByGroup struct {
	ChannelID string
	Counts    []models.ChannelMemberCountByGroup
}

func (ReceivedMemberCountsByGroup) Type() string { return "channels/received_member_counts_by_group" }

func (a ReceivedMemberCountsByGroup) reduce(s *State) *State {
	return withChannels(s, func(c *ChannelsState) {
		byGroup := make(map[string]models.ChannelMemberCountByGroup, len(a.Counts))
		for _, cnt := range a.Counts {
			byGroup[cnt.GroupID] = cnt
		}
		c.MemberCountsByGroup = cloneMap(c.MemberCountsByGroup)
		c.MemberCountsByGroup[a.ChannelID] = byGroup
	})
}

// ─── User action'ları ───

// ReceivedProfiles, kullanıcı profillerini ekler/günceller.
type ReceivedProfiles struct{ Profiles []*models.User }

func (ReceivedProfiles) Type() string { return "users/received_profiles" }

func (a ReceivedProfiles) reduce(s *State) *State {
	if len(a.Profiles) == 0 {
		return s
	}
	return withUsers(s, func(u *UsersState) {
		u.Profiles = cloneMap(u.Profiles)
		for _, p := range a.Profiles {
			u.Profiles[p.ID] = p
		}
	})
}

// ReceivedProfilesInChannel, kanala üye kullanıcı ID'lerini ekler.
type ReceivedProfilesInChannel struct {
	ChannelID string
	UserIDs   []string
}

func (ReceivedProfilesInChannel) Type() string { return "users/received_profiles_in_channel" }

func (a ReceivedProfilesInChannel) reduce(s *State) *State {
	return withUsers(s, func(u *UsersState) {
		set := cloneMap(u.ProfilesInChannel[a.ChannelID])
		for _, id := range a.UserIDs {
			set[id] = struct{}{}
		}
		u.ProfilesInChannel = cloneMap(u.ProfilesInChannel)
		u.ProfilesInChannel[a.ChannelID] = set
	})
}

// ReceivedStatuses, kullanıcı ID'si → presence durumu.
type ReceivedStatuses struct{ Statuses map[string]string }

func (ReceivedStatuses) Type() string { return "users/received_statuses" }

func (a ReceivedStatuses) reduce(s *State) *State {
	if len(a.Statuses) == 0 {
		return s
	}
	return withUsers(s, func(u *UsersState) {
		u.Statuses = cloneMap(u.Statuses)
		maps.Copy(u.Statuses, a.Statuses)
	})
}

// ─── Team action'ları ───

type ReceivedTeams struct{ Teams []*models.Team }

func (ReceivedTeams) Type() string { return "teams/received_teams" }

func (a ReceivedTeams) reduce(s *State) *State {
	if len(a.Teams) == 0 {
		return s
	}
	return withTeams(s, func(t *TeamsState) {
		t.Teams = cloneMap(t.Teams)
		for _, team := range a.Teams {
			t.Teams[team.ID] = team
		}
	})
}

type ReceivedMyTeamMembers struct{ Members []*models.TeamMembership }

func (ReceivedMyTeamMembers) Type() string { return "teams/received_my_team_members" }

func (a ReceivedMyTeamMembers) reduce(s *State) *State {
	if len(a.Members) == 0 {
		return s
	}
	return withTeams(s, func(t *TeamsState) {
		t.MyMembers = cloneMap(t.MyMembers)
		for _, m := range a.Members {
			t.MyMembers[m.TeamID] = m
		}
	})
}

// ─── Opsiyonel bölümler ───

type ReceivedRoles struct{ Roles []*models.Role }

func (ReceivedRoles) Type() string { return "roles/received_roles" }

func (a ReceivedRoles) reduce(s *State) *State {
	if len(a.Roles) == 0 {
		return s
	}
	next := *s
	next.Roles = cloneMap(s.Roles)
	for _, r := range a.Roles {
		next.Roles[r.Name] = r
	}
	return &next
}

type ReceivedPreferences struct{ Preferences []*models.Preference }

func (ReceivedPreferences) Type() string { return "preferences/received_preferences" }

func (a ReceivedPreferences) reduce(s *State) *State {
	if len(a.Preferences) == 0 {
		return s
	}
	next := *s
	next.Preferences = cloneMap(s.Preferences)
	for _, p := range a.Preferences {
		next.Preferences[models.PreferenceKey(p.Category, p.Name)] = p
	}
	return &next
}

// ReceivedConfig, client config'ini tamamen değiştirir.
type ReceivedConfig struct{ Config map[string]string }

func (ReceivedConfig) Type() string { return "general/received_config" }

func (a ReceivedConfig) reduce(s *State) *State {
	general := *s.GeneralSection()
	general.Config = maps.Clone(a.Config)
	next := *s
	next.General = &general
	return &next
}

type ReceivedServerVersion struct{ Version string }

func (ReceivedServerVersion) Type() string { return "general/received_server_version" }

func (a ReceivedServerVersion) reduce(s *State) *State {
	if s.GeneralSection().ServerVersion == a.Version {
		return s
	}
	general := *s.GeneralSection()
	general.ServerVersion = a.Version
	next := *s
	next.General = &general
	return &next
}

// ReceivedCategories, bir takımın sidebar kategorilerini ve sırasını değiştirir.
type ReceivedCategories struct {
	TeamID     string
	Categories []*models.ChannelCategory
}

func (ReceivedCategories) Type() string { return "channel_categories/received_categories" }

func (a ReceivedCategories) reduce(s *State) *State {
	cats := *s.CategoriesSection()
	cats.ByID = cloneMap(cats.ByID)
	cats.OrderByTeam = cloneMap(cats.OrderByTeam)

	order := make([]string, 0, len(a.Categories))
	for _, c := range a.Categories {
		cats.ByID[c.ID] = c
		order = append(order, c.ID)
	}
	cats.OrderByTeam[a.TeamID] = order

	next := *s
	next.Categories = &cats
	return &next
}

// ─── Helpers ───

func withChannels(s *State, fn func(c *ChannelsState)) *State {
	section := *s.ChannelsSection()
	fn(&section)
	next := *s
	next.Channels = &section
	return &next
}

func withUsers(s *State, fn func(u *UsersState)) *State {
	section := *s.UsersSection()
	fn(&section)
	next := *s
	next.Users = &section
	return &next
}

func withTeams(s *State, fn func(t *TeamsState)) *State {
	section := *s.TeamsSection()
	fn(&section)
	next := *s
	next.Teams = &section
	return &next
}

// cloneMap, maps.Clone gibi davranır ama nil yerine boş map döner —
// clone'dan sonra hemen yazılacağı için.
func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return make(map[K]V)
	}
	return maps.Clone(m)
}
