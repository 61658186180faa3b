// Package store, normalize edilmiş client-side entity store'unun immutable
// snapshot tipini ve tek mutasyon noktası olan Store'u barındırır.
//
// Snapshot kuralı: bir State ve onun içindeki hiçbir map/slice yerinde
// değiştirilmez. Her değişiklik yeni bir map (copy-on-write) ve yeni bölüm
// pointer'ları üretir. Böylece herhangi bir path'in referansı değişmediyse
// o path'teki veri de değişmemiştir — memoization bu garantiye dayanır.
package store

import (
	"fmt"

	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg"
)

// State, store'un bir anlık görüntüsü.
//
// Channels, Users ve Teams zorunlu bölümlerdir; diğerleri nil olabilir
// ve boş olarak okunur.
type State struct {
	Channels    *ChannelsState                `json:"channels"`
	Users       *UsersState                   `json:"users"`
	Teams       *TeamsState                   `json:"teams"`
	Roles       map[string]*models.Role       `json:"roles,omitempty"`       // Rol adı → rol
	Preferences map[string]*models.Preference `json:"preferences,omitempty"` // PreferenceKey → tercih
	General     *GeneralState                 `json:"general,omitempty"`
	Categories  *CategoriesState              `json:"categories,omitempty"`
}

// ChannelsState, kanallar ve mevcut kullanıcının kanal üyelikleri.
type ChannelsState struct {
	CurrentChannelID string `json:"current_channel_id"`

	Channels map[string]*models.Channel `json:"channels"`

	// ChannelsInTeam, takım ID'si → sıralı kanal ID listesi.
	// "" anahtarı takımsız kanalları (DM/GM) tutar.
	ChannelsInTeam map[string][]string `json:"channels_in_team"`

	MyMembers        map[string]*models.ChannelMembership            `json:"my_members"`
	MembersInChannel map[string]map[string]*models.ChannelMembership `json:"members_in_channel"`
	MessageCounts    map[string]*models.MessageCount                 `json:"message_counts"`

	ManuallyUnread      map[string]bool                                         `json:"manually_unread,omitempty"`
	Moderations         map[string][]models.ChannelModeration                   `json:"moderations,omitempty"`
	MemberCountsByGroup map[string]map[string]models.ChannelMemberCountByGroup `json:"member_counts_by_group,omitempty"`
}

// UsersState, profiller ve presence.
type UsersState struct {
	CurrentUserID string                  `json:"current_user_id"`
	Profiles      map[string]*models.User `json:"profiles"`

	// ProfilesInChannel, kanal ID'si → üye kullanıcı ID seti.
	ProfilesInChannel map[string]map[string]struct{} `json:"profiles_in_channel"`
	Statuses          map[string]string              `json:"statuses"`
}

// TeamsState, takımlar ve mevcut kullanıcının takım üyelikleri.
type TeamsState struct {
	CurrentTeamID string                            `json:"current_team_id"`
	Teams         map[string]*models.Team           `json:"teams"`
	MyMembers     map[string]*models.TeamMembership `json:"my_members"`
}

// GeneralState, sunucu config'i ve versiyonu.
type GeneralState struct {
	Config        map[string]string `json:"config"`
	ServerVersion string            `json:"server_version"`
}

// CategoriesState, sidebar kategorileri.
type CategoriesState struct {
	ByID        map[string]*models.ChannelCategory `json:"by_id"`
	OrderByTeam map[string][]string                `json:"order_by_team"` // Takım ID → kategori ID sırası
}

// Opsiyonel bölümler eksikse bu sabit boş değerler döner.
// Her çağrıda aynı pointer dönmesi memoization için önemli.
var (
	emptyGeneral    = &GeneralState{}
	emptyCategories = &CategoriesState{}
)

// NewState, bütün bölümleri boş map'lerle başlatılmış bir snapshot döner.
func NewState() *State {
	return &State{
		Channels: &ChannelsState{
			Channels:         map[string]*models.Channel{},
			ChannelsInTeam:   map[string][]string{},
			MyMembers:        map[string]*models.ChannelMembership{},
			MembersInChannel: map[string]map[string]*models.ChannelMembership{},
			MessageCounts:    map[string]*models.MessageCount{},
		},
		Users: &UsersState{
			Profiles:          map[string]*models.User{},
			ProfilesInChannel: map[string]map[string]struct{}{},
			Statuses:          map[string]string{},
		},
		Teams: &TeamsState{
			Teams:     map[string]*models.Team{},
			MyMembers: map[string]*models.TeamMembership{},
		},
		Roles:       map[string]*models.Role{},
		Preferences: map[string]*models.Preference{},
		General:     &GeneralState{Config: map[string]string{}},
		Categories: &CategoriesState{
			ByID:        map[string]*models.ChannelCategory{},
			OrderByTeam: map[string][]string{},
		},
	}
}

// ChannelsSection, zorunlu channels bölümünü döner; yoksa panic atar.
func (s *State) ChannelsSection() *ChannelsState {
	if s.Channels == nil {
		panic(missingSection("channels"))
	}
	return s.Channels
}

// UsersSection, zorunlu users bölümünü döner; yoksa panic atar.
func (s *State) UsersSection() *UsersState {
	if s.Users == nil {
		panic(missingSection("users"))
	}
	return s.Users
}

// TeamsSection, zorunlu teams bölümünü döner; yoksa panic atar.
func (s *State) TeamsSection() *TeamsState {
	if s.Teams == nil {
		panic(missingSection("teams"))
	}
	return s.Teams
}

func (s *State) GeneralSection() *GeneralState {
	if s.General == nil {
		return emptyGeneral
	}
	return s.General
}

func (s *State) CategoriesSection() *CategoriesState {
	if s.Categories == nil {
		return emptyCategories
	}
	return s.Categories
}

func missingSection(name string) error {
	return fmt.Errorf("%w: %s", pkg.ErrMissingSection, name)
}
