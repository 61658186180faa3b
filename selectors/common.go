// Package selectors, normalize store snapshot'ından view'a hazır kanal
// verisi türeten saf fonksiyonları barındırır: kanal listeleri, DM/GM
// görünen adları, okunmamış durumları, yetki kontrolleri ve takıma
// girişte açılacak kanal.
//
// Snapshot'ı okuyan fonksiyonların çoğu pkg/memo ile memoize edilmiştir.
// Aynı snapshot path'leri için aynı sonuç referansı döner.
//
// Eksik profil, üyelik veya kanal kayıtları hata değildir — "katkı yok"
// olarak atlanır. Zorunlu bir snapshot bölümü yoksa (channels, users,
// teams) fonksiyonlar pkg.ErrMissingSection ile panic atar.
package selectors

import (
	"slices"
	"strings"
	"sync"

	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg/i18n"
	"github.com/akinalp/chanview/pkg/memo"
	"github.com/akinalp/chanview/store"
)

// Collator, locale'e duyarlı string karşılaştırması yapan dış yetenek.
// *collate.Collator bu interface'i karşılar.
type Collator interface {
	CompareString(a, b string) int
}

var (
	collatorMu      sync.RWMutex
	collatorFactory = func(locale string) Collator { return i18n.NewCollator(locale) }
)

// SetCollatorFactory, sıralamada kullanılan collator üreticisini değiştirir
// ve öncekini döner. Memoize edilmiş sonuçlar bir sonraki yeniden
// hesaplamaya kadar eski collator ile sıralanmış kalır.
func SetCollatorFactory(f func(locale string) Collator) (previous func(locale string) Collator) {
	collatorMu.Lock()
	defer collatorMu.Unlock()

	previous = collatorFactory
	collatorFactory = f
	return previous
}

// newCollator, her sıralama için yeni bir collator döner — collator'lar
// goroutine'ler arasında paylaşılmaz.
func newCollator(locale string) Collator {
	collatorMu.RLock()
	defer collatorMu.RUnlock()

	return collatorFactory(locale)
}

// ─── Snapshot input'ları ───
//
// Bu fonksiyonlar memoize edilmez; selector'ların input'u olarak
// snapshot'taki bir path'in referansını döner.

func getAllChannels(s *store.State) map[string]*models.Channel {
	return s.ChannelsSection().Channels
}

func getChannelsInTeam(s *store.State) map[string][]string {
	return s.ChannelsSection().ChannelsInTeam
}

func getMyChannelMemberships(s *store.State) map[string]*models.ChannelMembership {
	return s.ChannelsSection().MyMembers
}

func getMessageCounts(s *store.State) map[string]*models.MessageCount {
	return s.ChannelsSection().MessageCounts
}

func getCurrentChannelID(s *store.State) string {
	return s.ChannelsSection().CurrentChannelID
}

func getCurrentUserID(s *store.State) string {
	return s.UsersSection().CurrentUserID
}

func getUsers(s *store.State) map[string]*models.User {
	return s.UsersSection().Profiles
}

func getProfilesInChannel(s *store.State) map[string]map[string]struct{} {
	return s.UsersSection().ProfilesInChannel
}

func getUserStatuses(s *store.State) map[string]string {
	return s.UsersSection().Statuses
}

func getCurrentTeamID(s *store.State) string {
	return s.TeamsSection().CurrentTeamID
}

func getTeams(s *store.State) map[string]*models.Team {
	return s.TeamsSection().Teams
}

func getTeamMemberships(s *store.State) map[string]*models.TeamMembership {
	return s.TeamsSection().MyMembers
}

func getRoles(s *store.State) map[string]*models.Role {
	return s.Roles
}

// getCurrentTeamChannelIDs, mevcut takımın id-index slice'ı.
// Başka takımın index'i değişse bile bu slice'ın referansı değişmez.
// Takım seçili değilse nil — "" anahtarı DM/GM index'idir, takım değil.
func getCurrentTeamChannelIDs(s *store.State) []string {
	teamID := getCurrentTeamID(s)
	if teamID == "" {
		return nil
	}
	return getChannelsInTeam(s)[teamID]
}

// getTeamlessChannelIDs, DM/GM kanallarının id-index slice'ı ("" anahtarı).
func getTeamlessChannelIDs(s *store.State) []string {
	return getChannelsInTeam(s)[""]
}

// GetCurrentUser, oturumdaki kullanıcının profilini döner; yoksa nil.
func GetCurrentUser(s *store.State) *models.User {
	return getUsers(s)[getCurrentUserID(s)]
}

// GetCurrentUserLocale, mevcut kullanıcının locale'i; bilinmiyorsa varsayılan dil.
func GetCurrentUserLocale(s *store.State) string {
	if u := GetCurrentUser(s); u != nil && u.Locale != "" {
		return u.Locale
	}
	return i18n.DefaultLanguage
}

// GetTeammateNameDisplaySetting, kullanıcı adlarının nasıl gösterileceği.
// Öncelik: kullanıcı tercihi → sunucu config'i → username.
func GetTeammateNameDisplaySetting(s *store.State) string {
	key := models.PreferenceKey(models.PreferenceCategoryDisplaySettings, models.PreferenceNameNameFormat)
	if p := s.Preferences[key]; p != nil && p.Value != "" {
		return p.Value
	}
	if v := s.GeneralSection().Config["TeammateNameDisplay"]; v != "" {
		return v
	}
	return models.ShowUsername
}

// DisplayUsername, kullanıcıyı verilen ayara göre gösterir. Seçilen alan
// boşsa username'e düşer.
func DisplayUsername(user *models.User, setting string) string {
	if user == nil {
		return ""
	}
	switch setting {
	case models.ShowNicknameFullName:
		if user.Nickname != "" {
			return user.Nickname
		}
		if name := user.FullName(); name != "" {
			return name
		}
	case models.ShowFullName:
		if name := user.FullName(); name != "" {
			return name
		}
	}
	return user.Username
}

// ─── DM/GM tamamlama ───

// directContext, DM/GM kanallarını tamamlamak için gereken her şey.
// Tek bir memoize edilmiş referans olarak taşınır: alanlardan biri
// değişmedikçe aynı pointer döner.
type directContext struct {
	currentUserID     string
	profiles          map[string]*models.User
	profilesInChannel map[string]map[string]struct{}
	statuses          map[string]string
	nameDisplay       string
	locale            string
}

var getDirectContext = memo.Select6(
	getCurrentUserID,
	getUsers,
	getProfilesInChannel,
	getUserStatuses,
	GetTeammateNameDisplaySetting,
	GetCurrentUserLocale,
	func(userID string, profiles map[string]*models.User, inChannel map[string]map[string]struct{},
		statuses map[string]string, nameDisplay, locale string) *directContext {
		return &directContext{
			currentUserID:     userID,
			profiles:          profiles,
			profilesInChannel: inChannel,
			statuses:          statuses,
			nameDisplay:       nameDisplay,
			locale:            locale,
		}
	},
)

// complete, DM/GM kanalının view kopyasını üretir; diğer türleri olduğu gibi döner.
// Store'daki kayıt hiçbir zaman değiştirilmez.
func (dc *directContext) complete(ch *models.Channel) *models.Channel {
	switch ch.Type {
	case models.ChannelTypeDirect:
		return dc.completeDirect(ch)
	case models.ChannelTypeGroup:
		return dc.completeGroup(ch)
	}
	return ch
}

func (dc *directContext) completeDirect(ch *models.Channel) *models.Channel {
	out := *ch
	out.TeammateID = models.TeammateIDFromChannelName(dc.currentUserID, ch.Name)

	out.Status = dc.statuses[out.TeammateID]
	if out.Status == "" {
		out.Status = string(models.UserStatusOffline)
	}

	if teammate := dc.profiles[out.TeammateID]; teammate != nil {
		out.DisplayName = DisplayUsername(teammate, dc.nameDisplay)
	}
	return &out
}

func (dc *directContext) completeGroup(ch *models.Channel) *models.Channel {
	names := dc.groupMemberNames(ch)
	if len(names) == 0 {
		return ch
	}

	// Üye seti map — önce byte sırası, collator'a göre eşit isimler hep aynı sırada kalsın
	slices.Sort(names)
	coll := newCollator(dc.locale)
	slices.SortStableFunc(names, coll.CompareString)

	out := *ch
	out.DisplayName = joinNames(names)
	return &out
}

// groupMemberNames, GM'deki diğer üyelerin görünen adları.
// Üye listesi yüklenmemişse sunucunun yazdığı display_name'deki
// kullanıcı adlarına düşer.
func (dc *directContext) groupMemberNames(ch *models.Channel) []string {
	var names []string

	if memberIDs, ok := dc.profilesInChannel[ch.ID]; ok {
		for id := range memberIDs {
			if id == dc.currentUserID {
				continue
			}
			user := dc.profiles[id]
			if user == nil || user.IsDeactivated() {
				continue
			}
			names = append(names, DisplayUsername(user, dc.nameDisplay))
		}
		return names
	}

	var currentUsername string
	if me := dc.profiles[dc.currentUserID]; me != nil {
		currentUsername = me.Username
	}
	for _, username := range splitNames(ch.DisplayName) {
		if username == currentUsername {
			continue
		}
		names = append(names, username)
	}
	return names
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

// splitNames, "ali, veli" formatındaki GM display_name'ini böler.
func splitNames(displayName string) []string {
	var names []string
	for _, part := range strings.Split(displayName, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
