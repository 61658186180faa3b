package models

// CategoryType, sidebar kategorisinin türü.
type CategoryType string

const (
	CategoryTypeFavorites      CategoryType = "favorites"
	CategoryTypeChannels       CategoryType = "channels"
	CategoryTypeDirectMessages CategoryType = "direct_messages"
	CategoryTypeCustom         CategoryType = "custom"
)

// ChannelCategory, bir takım içinde kanalları gruplar ("Favorites" gibi).
// ChannelIDs sırası sidebar'daki gösterim sırasıdır.
type ChannelCategory struct {
	ID          string       `json:"id"`
	TeamID      string       `json:"team_id"`
	Type        CategoryType `json:"type"`
	DisplayName string       `json:"display_name"`
	ChannelIDs  []string     `json:"channel_ids"`
}
