// Package i18n, çoklu dil desteği sağlar: çeviri metinleri ve
// locale'e duyarlı string karşılaştırması (collation).
//
// Kullanım:
//
//	localizer := i18n.NewLocalizer("tr")
//	label := localizer.T("insights.timeFrame.today")
//	// → "Bugün"
package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// SupportedLanguages — çevirisi bulunan dil kodları.
var SupportedLanguages = []string{"en", "tr"}

// DefaultLanguage — varsayılan dil.
const DefaultLanguage = "en"

// translations: map[lang]map[key]value. Load ile bir kere yüklenir, sonra sadece okunur.
var (
	translations map[string]map[string]string
	loadOnce     sync.Once
)

// Load, çeviri dosyalarını fs.FS'ten yükler (en.json, tr.json).
// Program ömrü boyunca sadece ilk çağrı çalışır (sync.Once).
func Load(localesFS fs.FS) error {
	var loadErr error

	loadOnce.Do(func() {
		loaded := make(map[string]map[string]string)

		for _, lang := range SupportedLanguages {
			fileName := lang + ".json"

			data, err := fs.ReadFile(localesFS, fileName)
			if err != nil {
				loadErr = fmt.Errorf("failed to read translation file %s: %w", fileName, err)
				return
			}

			// Nested JSON → flat key: {"insights": {"title": "..."}} → "insights.title"
			var nested map[string]any
			if err := json.Unmarshal(data, &nested); err != nil {
				loadErr = fmt.Errorf("failed to parse translation file %s: %w", fileName, err)
				return
			}

			flat := make(map[string]string)
			flattenMap("", nested, flat)
			loaded[lang] = flat

			zap.L().Named("i18n").Info("translations loaded",
				zap.String("language", lang),
				zap.Int("keys", len(flat)),
			)
		}

		translations = loaded
	})

	return loadErr
}

// Localizer, belirli bir dil için çeviri yapar.
type Localizer struct {
	lang string
}

// NewLocalizer, verilen locale için Localizer oluşturur.
// "tr-TR" gibi bölgeli locale'ler dil koduna indirgenir; desteklenmeyen
// diller varsayılana düşer.
func NewLocalizer(locale string) *Localizer {
	return &Localizer{lang: DetectLanguage(locale)}
}

// Lang, localizer'ın kullandığı dil kodunu döner.
func (l *Localizer) Lang() string { return l.lang }

// T, anahtarın çevirisini döner.
// Dilde yoksa İngilizce'ye, orada da yoksa anahtarın kendisine düşer.
func (l *Localizer) T(key string) string {
	if msg, ok := translations[l.lang][key]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// TWithParams, {{param}} yer tutucularını değerlerle değiştirerek çevirir.
func (l *Localizer) TWithParams(key string, params map[string]string) string {
	msg := l.T(key)
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{{"+k+"}}", v)
	}
	return msg
}

// DetectLanguage, "tr-TR,tr;q=0.9,en;q=0.8" veya "pt_BR" gibi bir locale
// listesinden desteklenen ilk dili seçer.
func DetectLanguage(locales string) string {
	for _, part := range strings.Split(locales, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		// "tr-TR" / "pt_BR" → "tr" / "pt"
		lang, _, _ = strings.Cut(lang, "-")
		lang, _, _ = strings.Cut(lang, "_")
		lang = strings.ToLower(lang)

		if slices.Contains(SupportedLanguages, lang) {
			return lang
		}
	}
	return DefaultLanguage
}

// flattenMap, nested JSON'u "dot notation" key'lere dönüştürür.
func flattenMap(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flattenMap(key, val, dst)
		}
	}
}
