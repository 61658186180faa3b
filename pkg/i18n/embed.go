package i18n

import (
	"embed"
	"io/fs"
)

// embeddedLocales, locales/ altındaki çeviri dosyaları — binary'ye gömülür.
//
//go:embed locales/*.json
var embeddedLocales embed.FS

// EmbeddedLocales, gömülü çeviri dosyalarını locales/ kökünden açan bir fs.FS döner.
func EmbeddedLocales() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		// Sabit path — sadece derleme hatası durumunda olabilir
		panic(err)
	}
	return sub
}
