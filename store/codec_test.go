package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg"
)

func sampleState() *State {
	st := New(nil, nil)
	for _, a := range []Action{
		SetCurrentUser{UserID: "u1"},
		SelectTeam{TeamID: "t1"},
		ReceivedChannels{Channels: []*models.Channel{
			{ID: "c1", TeamID: "t1", Type: models.ChannelTypeOpen, Name: "town-square", DisplayName: "Town Square"},
			{ID: "u1__u2", Type: models.ChannelTypeDirect, Name: "u1__u2"},
		}},
		ReceivedMyChannelMembers{Members: []*models.ChannelMembership{
			{ChannelID: "c1", UserID: "u1", MentionCount: 2, MsgCount: 4},
		}},
		ReceivedProfilesInChannel{ChannelID: "c1", UserIDs: []string{"u1", "u2"}},
		SetManuallyUnread{ChannelID: "c1", Unread: true},
		ReceivedRoles{Roles: []*models.Role{{Name: "team_user", Permissions: []string{models.PermJoinPublicChannels}}}},
		ReceivedServerVersion{Version: "5.0.0"},
	} {
		st.Dispatch(a)
	}
	return st.State()
}

func TestEncodeDecodeSections(t *testing.T) {
	original := sampleState()

	payloads, err := EncodeSections(original)
	require.NoError(t, err)
	assert.Contains(t, payloads, SectionChannels)
	assert.Contains(t, payloads, SectionGeneral)

	restored, err := DecodeSections(payloads)
	require.NoError(t, err)

	if diff := cmp.Diff(original, restored); diff != "" {
		t.Errorf("restored state mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSections_MissingRequired(t *testing.T) {
	payloads, err := EncodeSections(sampleState())
	require.NoError(t, err)

	delete(payloads, SectionUsers)
	_, err = DecodeSections(payloads)
	assert.ErrorIs(t, err, pkg.ErrMissingSection)
	assert.ErrorContains(t, err, "users")

	payloads[SectionUsers] = []byte("null")
	_, err = DecodeSections(payloads)
	assert.ErrorIs(t, err, pkg.ErrMissingSection)
}

func TestDecodeSections_OptionalSectionsDefaultEmpty(t *testing.T) {
	s := &State{Channels: &ChannelsState{}, Users: &UsersState{}, Teams: &TeamsState{}}
	payloads, err := EncodeSections(s)
	require.NoError(t, err)
	assert.Len(t, payloads, 3)

	payloads["future_section"] = []byte(`{"x":1}`)
	restored, err := DecodeSections(payloads)
	require.NoError(t, err)
	assert.NotNil(t, restored.Roles)
	assert.Nil(t, restored.General)
	assert.Empty(t, restored.GeneralSection().ServerVersion)
}
