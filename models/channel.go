package models

import (
	"fmt"
	"strings"
)

// ChannelType, kanalın türünü temsil eder.
// Go'da enum yerine typed constant kullanılır — UserStatus ile aynı pattern.
type ChannelType string

const (
	ChannelTypeOpen    ChannelType = "O" // Takımdaki herkesin katılabildiği açık kanal
	ChannelTypePrivate ChannelType = "P" // Davetle girilen özel kanal
	ChannelTypeDirect  ChannelType = "D" // İki kişilik DM — team_id her zaman boş
	ChannelTypeGroup   ChannelType = "G" // Küçük grup mesajı (GM) — team_id her zaman boş
)

// DefaultChannelName, her takımda bulunan iyi bilinen varsayılan kanalın adıdır.
const DefaultChannelName = "town-square"

// MarkUnread, kullanıcının bir kanal için "okunmamış" tanımını belirler.
type MarkUnread string

const (
	MarkUnreadAll     MarkUnread = "all"     // Her yeni mesaj okunmamış sayılır
	MarkUnreadMention MarkUnread = "mention" // Sadece mention'lar sayılır (kanal sessize alınmış)
)

// Channel, normalize store'daki tek bir kanal kaydıdır.
//
// TeamID boş string ise kanal takımsızdır (DM veya GM).
// TeammateID ve Status sadece "tamamlanmış" DM kopyalarında doldurulur —
// store'daki ham kayıtlarda her zaman boştur.
type Channel struct {
	ID          string      `json:"id"`
	TeamID      string      `json:"team_id"`
	Type        ChannelType `json:"type"`
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	DeleteAt    int64       `json:"delete_at"`
	LastPostAt  int64       `json:"last_post_at"`

	TeammateID string `json:"teammate_id,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (c *Channel) IsDirect() bool  { return c.Type == ChannelTypeDirect }
func (c *Channel) IsGroup() bool   { return c.Type == ChannelTypeGroup }
func (c *Channel) IsDeleted() bool { return c.DeleteAt != 0 }

// IsDirectOrGroup, kanalın takımsız (DM/GM) bir kanal olup olmadığını döner.
func (c *Channel) IsDirectOrGroup() bool {
	return c.IsDirect() || c.IsGroup()
}

// Validate, kaydedilmeden önce kanalın tutarlılığını kontrol eder.
// DM/GM kanalları bir takıma ait olamaz.
func (c *Channel) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("channel id is required")
	}
	switch c.Type {
	case ChannelTypeOpen, ChannelTypePrivate:
	case ChannelTypeDirect, ChannelTypeGroup:
		if c.TeamID != "" {
			return fmt.Errorf("channel %s: direct and group channels cannot belong to a team", c.ID)
		}
	default:
		return fmt.Errorf("channel %s: unknown channel type %q", c.ID, c.Type)
	}
	return nil
}

// ChannelNotifyProps, kanal üyeliğine ait bildirim tercihleri.
type ChannelNotifyProps struct {
	MarkUnread MarkUnread `json:"mark_unread"`
}

// ChannelMembership, mevcut kullanıcının bir kanaldaki üyelik kaydıdır.
// Kayıt yoksa kullanıcı o kanalın üyesi değildir.
type ChannelMembership struct {
	ChannelID    string             `json:"channel_id"`
	UserID       string             `json:"user_id"`
	Roles        string             `json:"roles"` // Boşlukla ayrılmış rol adları
	MentionCount int                `json:"mention_count"`
	MsgCount     int64              `json:"msg_count"`
	NotifyProps  ChannelNotifyProps `json:"notify_props"`
}

// MessageCount, bir kanaldaki toplam mesaj sayısı.
// Üyelikteki MsgCount ile farkı okunmamış mesaj sayısını verir.
type MessageCount struct {
	Total int64 `json:"total"`
}

// ChannelModeration, kanal bazlı moderasyon ayarının rollere göre durumu.
type ChannelModeration struct {
	Name  string          `json:"name"`
	Roles map[string]bool `json:"roles"`
}

// ChannelMemberCountByGroup, bir grubun kanaldaki üye sayısı.
type ChannelMemberCountByGroup struct {
	GroupID                     string `json:"group_id"`
	ChannelMemberCount          int    `json:"channel_member_count"`
	ChannelMemberTimezonesCount int    `json:"channel_member_timezones_count"`
}

// DirectChannelName, iki kullanıcı arasındaki DM kanalının adını üretir.
// ID'ler sıralanır, böylece (a,b) ve (b,a) aynı adı verir: "a__b".
func DirectChannelName(userID, otherUserID string) string {
	if userID > otherUserID {
		userID, otherUserID = otherUserID, userID
	}
	return userID + "__" + otherUserID
}

// TeammateIDFromChannelName, DM kanal adından karşı tarafın ID'sini çıkarır.
// Kendine DM ("me__me") durumunda kullanıcının kendi ID'si döner.
// Ad "a__b" formatında değilse boş string döner.
func TeammateIDFromChannelName(currentUserID, channelName string) string {
	first, second, ok := strings.Cut(channelName, "__")
	if !ok {
		return ""
	}
	if first == currentUserID {
		return second
	}
	return first
}
