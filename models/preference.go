package models

// Preference kategorileri ve isimleri.
const (
	PreferenceCategoryDisplaySettings = "display_settings"
	PreferenceNameNameFormat          = "name_format"
	PreferenceCategoryFavoriteChannel = "favorite_channel"
)

// Preference, kullanıcının tek bir tercih kaydı.
// Store'da "category--name" anahtarıyla tutulur (bkz. PreferenceKey).
type Preference struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

// PreferenceKey, tercih map'i için birleşik anahtar üretir.
func PreferenceKey(category, name string) string {
	return category + "--" + name
}
