// Package usage, bir kotanın yüzde kullanımını seviyelere ayırır
// (ok, warn, danger, exceeded) ve gösterge çubuğunun doluluk oranını hesaplar.
package usage

import (
	"math"

	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg/i18n"
)

// Thresholds, her seviyenin başladığı yüzde. Değerler artan sırada olmalı.
type Thresholds struct {
	OK       float64
	Warn     float64
	Danger   float64
	Exceeded float64
}

// DefaultThresholds: %100 tam kota sayılır, aşım %100'ün üstüdür.
var DefaultThresholds = Thresholds{
	OK:       0,
	Warn:     40,
	Danger:   80,
	Exceeded: 100.0000001,
}

type Level string

const (
	LevelNone     Level = ""
	LevelOK       Level = "ok"
	LevelWarn     Level = "warn"
	LevelDanger   Level = "danger"
	LevelExceeded Level = "exceeded"
)

// exceededFill, aşımda çubuğun dolu gösterildiği oran.
const exceededFill = 0.91

// Classify, yüzdenin hangi seviyeye düştüğünü döner.
// OK eşiğinin altı LevelNone'dır.
func (t Thresholds) Classify(percent float64) Level {
	switch {
	case percent >= t.Exceeded:
		return LevelExceeded
	case percent >= t.Danger:
		return LevelDanger
	case percent >= t.Warn:
		return LevelWarn
	case percent >= t.OK:
		return LevelOK
	}
	return LevelNone
}

// Indicator, seviyenin gösterge rengi olarak kullanılan presence durumu.
// Aşım, danger ile değil warn ile aynı renktedir.
func (l Level) Indicator() models.UserStatus {
	switch l {
	case LevelOK:
		return models.UserStatusOnline
	case LevelWarn, LevelExceeded:
		return models.UserStatusAway
	case LevelDanger:
		return models.UserStatusDND
	}
	return ""
}

// Label, seviyenin yerelleştirilmiş açıklaması.
func (l Level) Label(loc *i18n.Localizer) string {
	if l == LevelNone {
		return ""
	}
	return loc.T("usage." + string(l))
}

// Bar, bir kullanım göstergesinin hesaplanmış hali.
type Bar struct {
	Percent float64 // 0'a kırpılmış yüzde
	Level   Level
	Fill    float64 // 0..1 arası doluluk oranı
}

func (b Bar) Exceeded() bool { return b.Level == LevelExceeded }

// Measure, yüzdeyi verilen eşiklere göre ölçer; thresholds nil ise
// DefaultThresholds kullanılır. Negatif veya NaN yüzde 0 sayılır.
func Measure(percent float64, thresholds *Thresholds) Bar {
	t := DefaultThresholds
	if thresholds != nil {
		t = *thresholds
	}

	if math.IsNaN(percent) || percent < 0 {
		percent = 0
	}

	level := t.Classify(percent)
	fill := math.Min(1, percent/100)
	if level == LevelExceeded {
		fill = exceededFill
	}

	return Bar{Percent: percent, Level: level, Fill: fill}
}
