package i18n

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewCollator, verilen locale için büyük/küçük harf ve aksan duyarsız,
// sayıları sayısal değerine göre sıralayan bir collator döner
// ("kanal 2" < "kanal 10").
//
// Locale parse edilemezse varsayılan dile düşer.
//
// *collate.Collator goroutine-safe DEĞİLDİR — her sıralama işlemi kendi
// collator'ını oluşturmalıdır.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Make(DefaultLanguage)
	}
	return collate.New(tag, collate.Loose, collate.Numeric)
}
