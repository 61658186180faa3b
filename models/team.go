package models

// Team, bir takım kaydı. DeleteAt != 0 ise takım silinmiştir ve
// okunmamış toplamlarına katılmaz.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	DeleteAt    int64  `json:"delete_at"`
}

// TeamMembership, mevcut kullanıcının takım üyeliği.
//
// MentionCount ve MsgCount takım genelindeki toplamlardır — başka takımların
// kanal detayları yüklenmemiş olabileceği için cross-team rollup bu alanlara düşer.
type TeamMembership struct {
	TeamID       string `json:"team_id"`
	UserID       string `json:"user_id"`
	Roles        string `json:"roles"`
	MentionCount int    `json:"mention_count"`
	MsgCount     int64  `json:"msg_count"`
}
