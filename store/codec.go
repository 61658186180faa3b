package store

import (
	"encoding/json"
	"fmt"

	"github.com/akinalp/chanview/models"
)

// Snapshot bölüm adları — kalıcı saklamada her bölüm ayrı bir payload'dır.
const (
	SectionChannels    = "channels"
	SectionUsers       = "users"
	SectionTeams       = "teams"
	SectionRoles       = "roles"
	SectionPreferences = "preferences"
	SectionGeneral     = "general"
	SectionCategories  = "categories"
)

// requiredSections, decode'da eksik olamayacak bölümler.
var requiredSections = []string{SectionChannels, SectionUsers, SectionTeams}

// EncodeSections, snapshot'ı bölüm adı → JSON payload olarak döner.
// nil opsiyonel bölümler yazılmaz.
func EncodeSections(s *State) (map[string][]byte, error) {
	sections := map[string]any{
		SectionChannels: s.ChannelsSection(),
		SectionUsers:    s.UsersSection(),
		SectionTeams:    s.TeamsSection(),
	}
	if s.Roles != nil {
		sections[SectionRoles] = s.Roles
	}
	if s.Preferences != nil {
		sections[SectionPreferences] = s.Preferences
	}
	if s.General != nil {
		sections[SectionGeneral] = s.General
	}
	if s.Categories != nil {
		sections[SectionCategories] = s.Categories
	}

	out := make(map[string][]byte, len(sections))
	for name, v := range sections {
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode section %s: %w", name, err)
		}
		out[name] = payload
	}
	return out, nil
}

// DecodeSections, EncodeSections çıktısından snapshot'ı yeniden kurar.
// Zorunlu bölümlerden biri yoksa ErrMissingSection döner; bilinmeyen
// bölümler yok sayılır.
func DecodeSections(payloads map[string][]byte) (*State, error) {
	for _, name := range requiredSections {
		if _, ok := payloads[name]; !ok {
			return nil, missingSection(name)
		}
	}

	s := &State{}
	targets := map[string]any{
		SectionChannels:    &s.Channels,
		SectionUsers:       &s.Users,
		SectionTeams:       &s.Teams,
		SectionRoles:       &s.Roles,
		SectionPreferences: &s.Preferences,
		SectionGeneral:     &s.General,
		SectionCategories:  &s.Categories,
	}

	for name, payload := range payloads {
		target, ok := targets[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(payload, target); err != nil {
			return nil, fmt.Errorf("failed to decode section %s: %w", name, err)
		}
	}

	// "null" payload zorunlu bölümü nil bırakır
	if s.Channels == nil || s.Users == nil || s.Teams == nil {
		return nil, missingSection(firstNil(s))
	}
	if s.Roles == nil {
		s.Roles = map[string]*models.Role{}
	}
	if s.Preferences == nil {
		s.Preferences = map[string]*models.Preference{}
	}
	return s, nil
}

func firstNil(s *State) string {
	switch {
	case s.Channels == nil:
		return SectionChannels
	case s.Users == nil:
		return SectionUsers
	}
	return SectionTeams
}
