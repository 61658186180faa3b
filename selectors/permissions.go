package selectors

import (
	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg/memo"
	"github.com/akinalp/chanview/store"
)

// hasPermissionInRoles, rol adlarından herhangi biri yetkiyi veriyor mu?
// Store'da olmayan roller yetki vermez.
func hasPermissionInRoles(roles map[string]*models.Role, roleNames []string, perm string) bool {
	for _, name := range roleNames {
		if roles[name].Has(perm) {
			return true
		}
	}
	return false
}

func systemRoles(user *models.User) []string {
	if user == nil {
		return nil
	}
	return models.SplitRoles(user.Roles)
}

func teamRoles(members map[string]*models.TeamMembership, teamID string) []string {
	if m := members[teamID]; m != nil {
		return models.SplitRoles(m.Roles)
	}
	return nil
}

func channelRoles(members map[string]*models.ChannelMembership, channelID string) []string {
	if m := members[channelID]; m != nil {
		return models.SplitRoles(m.Roles)
	}
	return nil
}

// HaveISystemPermission, kullanıcının sistem rollerinden biri yetkiyi veriyor mu?
func HaveISystemPermission(s *store.State, perm string) bool {
	return hasPermissionInRoles(getRoles(s), systemRoles(GetCurrentUser(s)), perm)
}

// HaveITeamPermission, sistem rolleri veya verilen takımdaki üyelik rolleri yetkiyi veriyor mu?
func HaveITeamPermission(s *store.State, teamID, perm string) bool {
	roles := getRoles(s)
	if hasPermissionInRoles(roles, systemRoles(GetCurrentUser(s)), perm) {
		return true
	}
	return hasPermissionInRoles(roles, teamRoles(getTeamMemberships(s), teamID), perm)
}

// HaveIChannelPermission, sistem, takım veya kanal üyeliği rolleri yetkiyi veriyor mu?
func HaveIChannelPermission(s *store.State, teamID, channelID, perm string) bool {
	if HaveITeamPermission(s, teamID, perm) {
		return true
	}
	return hasPermissionInRoles(getRoles(s), channelRoles(getMyChannelMemberships(s), channelID), perm)
}

// manageMembersPermission, kanal türüne göre üye yönetimi yetkisinin adı.
func manageMembersPermission(ch *models.Channel) (string, bool) {
	switch ch.Type {
	case models.ChannelTypeOpen:
		return models.PermManagePublicChannelMembers, true
	case models.ChannelTypePrivate:
		return models.PermManagePrivateChannelMembers, true
	}
	return "", false
}

var canManageAnyChannelMembersInCurrentTeam = memo.Select6(
	getMyChannelMemberships,
	getAllChannels,
	getCurrentTeamID,
	GetCurrentUser,
	getTeamMemberships,
	getRoles,
	func(
		myMembers map[string]*models.ChannelMembership,
		channels map[string]*models.Channel,
		teamID string,
		user *models.User,
		teamMembers map[string]*models.TeamMembership,
		roles map[string]*models.Role,
	) bool {
		base := append(systemRoles(user), teamRoles(teamMembers, teamID)...)

		for channelID := range myMembers {
			ch := channels[channelID]
			if ch == nil || ch.TeamID != teamID {
				continue
			}
			perm, ok := manageMembersPermission(ch)
			if !ok {
				continue
			}
			if hasPermissionInRoles(roles, base, perm) ||
				hasPermissionInRoles(roles, channelRoles(myMembers, channelID), perm) {
				return true
			}
		}
		return false
	},
)

// CanManageAnyChannelMembersInCurrentTeam, mevcut takımda üye olunan
// kanallardan en az birinde üye yönetimi yetkisi var mı?
func CanManageAnyChannelMembersInCurrentTeam(s *store.State) bool {
	return canManageAnyChannelMembersInCurrentTeam(s)
}
