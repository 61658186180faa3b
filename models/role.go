package models

import (
	"slices"
	"strings"
)

// Permission adları. Bitfield yerine sunucunun döndüğü string isimler
// kullanılır — roller yetki listesini isim olarak taşır.
const (
	PermJoinPublicChannels          = "join_public_channels"
	PermManagePublicChannelMembers  = "manage_public_channel_members"
	PermManagePrivateChannelMembers = "manage_private_channel_members"
	PermManageSystem                = "manage_system"
)

// Role, bir rolün adı ve sahip olduğu yetkiler.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// Has, rolün belirli bir yetkiye sahip olup olmadığını kontrol eder.
// manage_system her şeye izin verir (admin bypass).
func (r *Role) Has(perm string) bool {
	if r == nil {
		return false
	}
	return slices.Contains(r.Permissions, perm) || slices.Contains(r.Permissions, PermManageSystem)
}

// SplitRoles, "system_user system_admin" gibi boşlukla ayrılmış rol
// string'ini isim listesine böler. Boş parçalar atlanır.
func SplitRoles(roles string) []string {
	return strings.Fields(roles)
}
