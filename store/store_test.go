package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/akinalp/chanview/models"
)

func TestDispatch_StructuralSharing(t *testing.T) {
	st := New(nil, nil)
	st.Dispatch(SetCurrentUser{UserID: "u1"})
	st.Dispatch(ReceivedChannels{Channels: []*models.Channel{
		{ID: "c1", TeamID: "t1", Type: models.ChannelTypeOpen, Name: "town-square"},
	}})
	before := st.State()

	after := st.Dispatch(ReceivedStatuses{Statuses: map[string]string{"u2": "online"}})

	require.NotSame(t, before, after)
	assert.Same(t, before.Channels, after.Channels)
	assert.Same(t, before.Teams, after.Teams)
	assert.NotSame(t, before.Users, after.Users)
	assert.Equal(t, "u1", after.Users.CurrentUserID)

	// Eski snapshot değişmez
	assert.Empty(t, before.Users.Statuses)
	assert.Equal(t, "online", after.Users.Statuses["u2"])
}

func TestReceivedChannels_DoesNotAliasOldIndex(t *testing.T) {
	st := New(nil, nil)
	first := st.Dispatch(ReceivedChannels{Channels: []*models.Channel{
		{ID: "c1", TeamID: "t1", Type: models.ChannelTypeOpen},
		{ID: "c2", TeamID: "t1", Type: models.ChannelTypeOpen},
	}})
	oldIDs := first.Channels.ChannelsInTeam["t1"]

	second := st.Dispatch(ReceivedChannels{Channels: []*models.Channel{
		{ID: "c3", TeamID: "t1", Type: models.ChannelTypeOpen},
		{ID: "c1", TeamID: "t1", Type: models.ChannelTypeOpen, DisplayName: "updated"},
	}})

	assert.Equal(t, []string{"c1", "c2"}, oldIDs)
	assert.Equal(t, []string{"c1", "c2", "c3"}, second.Channels.ChannelsInTeam["t1"])
	assert.Empty(t, first.Channels.Channels["c1"].DisplayName)
	assert.Equal(t, "updated", second.Channels.Channels["c1"].DisplayName)
}

func TestDispatch_NoChangeKeepsSnapshot(t *testing.T) {
	st := New(nil, nil)
	st.Dispatch(SelectTeam{TeamID: "t1"})
	version := st.Version()

	calls := 0
	st.Subscribe(func(*State) { calls++ })

	before := st.State()
	assert.Same(t, before, st.Dispatch(SelectTeam{TeamID: "t1"}))
	assert.Same(t, before, st.Dispatch(LeaveChannel{ChannelID: "unknown"}))
	assert.Same(t, before, st.Dispatch(ReceivedProfiles{}))
	assert.Equal(t, version, st.Version())
	assert.Zero(t, calls)
}

func TestSubscribe(t *testing.T) {
	st := New(nil, nil)

	var seen []*State
	unsubscribe := st.Subscribe(func(s *State) { seen = append(seen, s) })

	s1 := st.Dispatch(SelectChannel{ChannelID: "c1"})
	s2 := st.Dispatch(SelectChannel{ChannelID: "c2"})
	require.Len(t, seen, 2)
	assert.Same(t, s1, seen[0])
	assert.Same(t, s2, seen[1])

	unsubscribe()
	st.Dispatch(SelectChannel{ChannelID: "c3"})
	assert.Len(t, seen, 2)
	assert.Equal(t, int64(3), st.Version())
}

func TestSubscribe_ListenerMayDispatch(t *testing.T) {
	st := New(nil, nil)
	st.Subscribe(func(s *State) {
		if s.Channels.CurrentChannelID == "c1" {
			st.Dispatch(SelectChannel{ChannelID: "c2"})
		}
	})

	st.Dispatch(SelectChannel{ChannelID: "c1"})
	assert.Equal(t, "c2", st.State().Channels.CurrentChannelID)
}

func TestDispatch_Concurrent(t *testing.T) {
	st := New(nil, nil)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Dispatch(ReceivedProfiles{Profiles: []*models.User{{ID: string(rune('a' + i%26)) + "-user"}}})
			_ = st.State()
		}()
	}
	wg.Wait()

	assert.Len(t, st.State().Users.Profiles, 26)
}

func TestDispatch_LogsAction(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	st := New(nil, zap.New(core))

	st.Dispatch(SelectTeam{TeamID: "t1"})

	entries := logs.FilterMessage("action dispatched").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "store", entries[0].LoggerName)
	assert.Equal(t, "teams/select_team", entries[0].ContextMap()["action"])
}

func TestMissingSectionPanics(t *testing.T) {
	s := &State{}

	assert.PanicsWithError(t, "missing state section: users", func() { s.UsersSection() })
	assert.PanicsWithError(t, "missing state section: teams", func() { s.TeamsSection() })
	assert.NotPanics(t, func() {
		assert.Empty(t, s.GeneralSection().ServerVersion)
		assert.Empty(t, s.CategoriesSection().ByID)
	})
}

func TestReceivedConfig_CopiesInput(t *testing.T) {
	cfg := map[string]string{"TeammateNameDisplay": "full_name"}
	s := New(nil, nil).Dispatch(ReceivedConfig{Config: cfg})

	cfg["TeammateNameDisplay"] = "username"
	assert.Equal(t, "full_name", s.General.Config["TeammateNameDisplay"])
}

func TestReceivedCategories(t *testing.T) {
	s := New(nil, nil).Dispatch(ReceivedCategories{TeamID: "t1", Categories: []*models.ChannelCategory{
		{ID: "fav", TeamID: "t1", Type: models.CategoryTypeFavorites},
		{ID: "chan", TeamID: "t1", Type: models.CategoryTypeChannels},
	}})

	assert.Equal(t, []string{"fav", "chan"}, s.Categories.OrderByTeam["t1"])
	assert.Len(t, s.Categories.ByID, 2)
}
