package models

import "strings"

// UserStatus, kullanıcının presence durumu.
type UserStatus string

const (
	UserStatusOnline  UserStatus = "online"
	UserStatusAway    UserStatus = "away"
	UserStatusDND     UserStatus = "dnd"
	UserStatusOffline UserStatus = "offline" // Status bilgisi yoksa varsayılan
)

// User, store'daki kullanıcı profili.
// DeleteAt > 0 ise hesap deaktive edilmiştir.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname"`
	Locale    string `json:"locale"`
	DeleteAt  int64  `json:"delete_at"`
	Roles     string `json:"roles"` // Sistem rolleri, boşlukla ayrılmış
}

// IsDeactivated, hesabın kapatılıp kapatılmadığını döner.
func (u *User) IsDeactivated() bool {
	return u.DeleteAt > 0
}

// FullName, "Ad Soyad" formatında tam adı döner. İkisi de boşsa boş string.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// TeammateNameDisplay, kullanıcı adlarının arayüzde nasıl gösterileceği.
const (
	ShowUsername         = "username"
	ShowNicknameFullName = "nickname_full_name"
	ShowFullName         = "full_name"
)
