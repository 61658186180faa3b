// Package insights, kullanıcının aktivite özetini gösteren ekranın
// oturum durumunu tutar: filtre (benim / takımın) ve zaman aralığı.
//
// Oturum açıldığında aktif kanal seçimi temizlenir — insights ekranı
// bir kanal değildir ve okunmamış sayaçları seçili kanalı atlamamalı.
package insights

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/akinalp/chanview/pkg"
	"github.com/akinalp/chanview/pkg/i18n"
	"github.com/akinalp/chanview/store"
)

// FilterType, özetin kimin aktivitesini kapsadığı.
type FilterType string

const (
	FilterMy   FilterType = "my"
	FilterTeam FilterType = "team"
)

// TimeFrame, özetin kapsadığı zaman aralığı.
type TimeFrame string

const (
	TimeFrameToday  TimeFrame = "today"
	TimeFrame7Days  TimeFrame = "7_day"
	TimeFrame28Days TimeFrame = "28_day"
)

// TimeFrames, seçilebilir aralıklar, menüde gösterim sırasıyla.
func TimeFrames() []TimeFrame {
	return []TimeFrame{TimeFrameToday, TimeFrame7Days, TimeFrame28Days}
}

// Since, aralığın başlangıcını döner. Aralıklar gün başından sayılır:
// "today" bugünün 00:00'ı, "7_day" altı gün öncesinin 00:00'ı.
func (tf TimeFrame) Since(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch tf {
	case TimeFrame7Days:
		return day.AddDate(0, 0, -6)
	case TimeFrame28Days:
		return day.AddDate(0, 0, -27)
	}
	return day
}

// Session, açık bir insights ekranının durumu. Goroutine-safe.
type Session struct {
	mu        sync.RWMutex
	filter    FilterType
	timeFrame TimeFrame

	localizer *i18n.Localizer
}

// Open, yeni bir oturum başlatır ve aktif kanal seçimini temizler.
// Varsayılanlar: kendi aktivitem, son 7 gün.
func Open(d store.Dispatcher, locale string) *Session {
	d.Dispatch(store.SelectChannel{ChannelID: ""})

	return &Session{
		filter:    FilterMy,
		timeFrame: TimeFrame7Days,
		localizer: i18n.NewLocalizer(locale),
	}
}

func (s *Session) Filter() FilterType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *Session) SetFilterMy() { s.setFilter(FilterMy) }

func (s *Session) SetFilterTeam() { s.setFilter(FilterTeam) }

func (s *Session) setFilter(f FilterType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

func (s *Session) TimeFrame() TimeFrame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeFrame
}

// SetTimeFrame, aralığı değiştirir. Bilinmeyen aralık ErrBadRequest döner
// ve mevcut seçim korunur.
func (s *Session) SetTimeFrame(tf TimeFrame) error {
	if !slices.Contains(TimeFrames(), tf) {
		return fmt.Errorf("%w: unknown time frame %q", pkg.ErrBadRequest, tf)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeFrame = tf
	return nil
}

// TimeFrameLabel, seçili aralığın yerelleştirilmiş adı.
func (s *Session) TimeFrameLabel() string {
	return s.localizer.T("insights.timeFrame." + string(s.TimeFrame()))
}

// FilterLabel, seçili filtrenin yerelleştirilmiş adı.
func (s *Session) FilterLabel() string {
	return s.localizer.T("insights.filter." + string(s.Filter()))
}

// Heading, ekran başlığı: "My insights · Last 7 days".
func (s *Session) Heading() string {
	return s.localizer.TWithParams("insights.heading", map[string]string{
		"filter":    s.FilterLabel(),
		"timeFrame": s.TimeFrameLabel(),
	})
}
