package i18n

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizer(t *testing.T) {
	require.NoError(t, Load(EmbeddedLocales()))

	tr := NewLocalizer("tr-TR")
	assert.Equal(t, "tr", tr.Lang())
	assert.Equal(t, "Bugün", tr.T("insights.timeFrame.today"))

	en := NewLocalizer("de")
	assert.Equal(t, "en", en.Lang())
	assert.Equal(t, "Last 7 days", en.T("insights.timeFrame.7_day"))

	assert.Equal(t, "missing.key", en.T("missing.key"))
	assert.Equal(t, "My insights · Today", en.TWithParams("insights.heading", map[string]string{
		"filter":    en.T("insights.filter.my"),
		"timeFrame": en.T("insights.timeFrame.today"),
	}))
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "tr", DetectLanguage("tr-TR,tr;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", DetectLanguage("fr,de"))
	assert.Equal(t, "en", DetectLanguage(""))
	assert.Equal(t, "tr", DetectLanguage("TR_tr"))
}

func sortWith(locale string, names []string) []string {
	out := slices.Clone(names)
	coll := NewCollator(locale)
	slices.SortStableFunc(out, coll.CompareString)
	return out
}

func TestNewCollator_LocaleOrdering(t *testing.T) {
	assert.Equal(t, []string{"ä", "z"}, sortWith("de", []string{"z", "ä"}))
	assert.Equal(t, []string{"z", "ä"}, sortWith("sv", []string{"z", "ä"}))
}

func TestNewCollator_CaseInsensitiveAndNumeric(t *testing.T) {
	coll := NewCollator("en")
	assert.Equal(t, 0, coll.CompareString("Channel", "channel"))
	assert.Equal(t, []string{"channel 2", "channel 10"}, sortWith("en", []string{"channel 10", "channel 2"}))
}

func TestNewCollator_InvalidLocaleFallsBack(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, sortWith("!!", []string{"b", "a"}))
}
