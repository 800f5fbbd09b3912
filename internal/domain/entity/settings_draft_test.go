package entity

import (
	"testing"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
)

func newTestDraft() *SettingsDraft {
	return NewSettingsDraft(
		uuid.New(),
		Profile{DisplayName: "Jane Doe", Handle: "jane"},
		DefaultNotificationPreferences(),
		valueobject.DefaultLocale(),
		valueobject.DefaultTheme(),
	)
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestSettingsDraft_FreshDraftIsClean(t *testing.T) {
	draft := newTestDraft()

	if draft.HasAnyChanges() {
		t.Error("freshly loaded draft should have no changes")
	}
	for _, domain := range []Domain{DomainProfile, DomainPreferences, DomainInterface} {
		if draft.IsDirty(domain) {
			t.Errorf("%s should not be dirty on a fresh draft", domain)
		}
	}
}

func TestSettingsDraft_StageProfile_MarksDirty(t *testing.T) {
	draft := newTestDraft()

	draft.StageProfile(ProfilePatch{DisplayName: strptr("John Doe")})

	if !draft.IsDirty(DomainProfile) {
		t.Error("profile should be dirty after a real edit")
	}
	if draft.IsDirty(DomainPreferences) {
		t.Error("preferences should be unaffected by a profile edit")
	}
	if !draft.HasAnyChanges() {
		t.Error("HasAnyChanges should report the profile edit")
	}
}

func TestSettingsDraft_TrimOnlyEditIsNotDirty(t *testing.T) {
	draft := newTestDraft()

	draft.StageProfile(ProfilePatch{DisplayName: strptr("Jane Doe   ")})

	if draft.IsDirty(DomainProfile) {
		t.Error("appending trailing spaces should not mark the profile dirty")
	}
	if draft.HasAnyChanges() {
		t.Error("HasAnyChanges should remain false for trim-only edits")
	}
}

func TestSettingsDraft_StagePreferences_AppliesCoupling(t *testing.T) {
	draft := newTestDraft()

	draft.StagePreferences(boolptr(false), nil)

	prefs := draft.Preferences()
	if prefs.Alert {
		t.Error("alert should follow system off")
	}
	if prefs.General {
		t.Error("general must stay forced off")
	}
	if !draft.IsDirty(DomainPreferences) {
		t.Error("preferences should be dirty after toggling system off")
	}
}

func TestSettingsDraft_PendingInterfaceCountsAsChange(t *testing.T) {
	draft := newTestDraft()

	en, _ := valueobject.NewLocale("en")
	draft.SelectLocale(en)

	if !draft.IsDirty(DomainInterface) {
		t.Error("a pending locale selection should count as an interface change")
	}
	if !draft.HasAnyChanges() {
		t.Error("HasAnyChanges should include pending locale/theme selections")
	}

	localeChanged, themeChanged := draft.ApplyInterface()
	if !localeChanged || themeChanged {
		t.Errorf("expected only the locale to change, got locale=%v theme=%v", localeChanged, themeChanged)
	}
	if draft.HasAnyChanges() {
		t.Error("applying the selection should clear the pending state")
	}
	if !draft.AppliedLocale().Equals(en) {
		t.Error("applied baseline should move to the selected locale")
	}
}

func TestSettingsDraft_CommitProfile_ClearsDirty(t *testing.T) {
	draft := newTestDraft()
	draft.StageProfile(ProfilePatch{DisplayName: strptr("John Doe")})

	draft.CommitProfile(draft.SavePlan().Profile)

	if draft.IsDirty(DomainProfile) {
		t.Error("profile should not be dirty after its snapshot was committed")
	}
	if draft.ProfileSnapshot().DisplayName != "John Doe" {
		t.Error("snapshot should reflect the committed value")
	}
}

func TestSettingsDraft_RestoreSnapshot_LocalRevert(t *testing.T) {
	draft := newTestDraft()
	draft.StageProfile(ProfilePatch{DisplayName: strptr("John Doe")})
	draft.StagePreferences(boolptr(false), nil)

	if err := draft.RestoreSnapshot(DomainProfile); err != nil {
		t.Fatalf("restore profile: %v", err)
	}
	if draft.IsDirty(DomainProfile) {
		t.Error("profile should be clean after restore to snapshot")
	}
	if !draft.IsDirty(DomainPreferences) {
		t.Error("restoring profile should not touch preferences")
	}

	if err := draft.RestoreSnapshot(DomainPreferences); err != nil {
		t.Fatalf("restore preferences: %v", err)
	}
	if draft.HasAnyChanges() {
		t.Error("draft should be fully clean after restoring both domains")
	}
}

func TestSettingsDraft_RestoreSnapshot_RejectedWhileSaving(t *testing.T) {
	draft := newTestDraft()
	draft.StageProfile(ProfilePatch{DisplayName: strptr("John Doe")})

	if !draft.BeginSave() {
		t.Fatal("BeginSave should succeed on an idle draft")
	}
	defer draft.EndSave()

	if err := draft.RestoreSnapshot(DomainProfile); err != ErrSaveInProgress {
		t.Errorf("expected ErrSaveInProgress, got %v", err)
	}
}

func TestSettingsDraft_BeginSave_Gate(t *testing.T) {
	draft := newTestDraft()

	if !draft.BeginSave() {
		t.Fatal("first BeginSave should succeed")
	}
	if draft.BeginSave() {
		t.Error("re-entrant BeginSave must be refused")
	}

	draft.EndSave()
	if !draft.BeginSave() {
		t.Error("BeginSave should succeed again after EndSave")
	}
}

func TestSettingsDraft_SavePlan_TrimsAndNormalizes(t *testing.T) {
	draft := newTestDraft()
	draft.StageProfile(ProfilePatch{DisplayName: strptr("  John Doe  ")})
	draft.StagePreferences(boolptr(false), nil)

	plan := draft.SavePlan()

	if !plan.ProfileDirty || !plan.PreferencesDirty {
		t.Fatalf("both domains should be dirty in the plan: %+v", plan)
	}
	if plan.Profile.DisplayName != "John Doe" {
		t.Errorf("plan should carry the trimmed payload, got %q", plan.Profile.DisplayName)
	}
	if plan.Preferences.Alert != plan.Preferences.System || plan.Preferences.General {
		t.Errorf("plan payload must satisfy the coupling rules: %+v", plan.Preferences)
	}
}

func TestSettingsDraft_OverridePreferences_RoundTrip(t *testing.T) {
	draft := newTestDraft()
	draft.StagePreferences(boolptr(false), boolptr(false))

	prevEdit, prevSnap := draft.PreferencesState()
	wasDirty := draft.IsDirty(DomainPreferences)

	defaults := DefaultNotificationPreferences()
	draft.OverridePreferences(defaults, defaults)
	if draft.IsDirty(DomainPreferences) {
		t.Error("optimistic apply should leave the domain clean")
	}

	// simulated remote failure: roll back to the exact pre-call state
	draft.OverridePreferences(prevEdit, prevSnap)
	if draft.Preferences() != prevEdit {
		t.Error("edit state should be rolled back to the pre-call value")
	}
	if draft.IsDirty(DomainPreferences) != wasDirty {
		t.Error("dirty flag should be restored to its pre-call value")
	}
}

func TestSettingsDraft_ReconcileProfile_KeepsPendingEdits(t *testing.T) {
	draft := newTestDraft()
	draft.StageProfile(ProfilePatch{DisplayName: strptr("John Doe")})

	fetched := draft.ProfileSnapshot()
	fetched.AvatarURL = "https://media.example.vn/avatars/new.png"
	draft.ReconcileProfile(fetched)

	if draft.Profile().AvatarURL != fetched.AvatarURL {
		t.Error("avatar reference should be reflected into the edit state")
	}
	if draft.Profile().DisplayName != "John Doe" {
		t.Error("pending display-name edit must survive reconciliation")
	}
	if !draft.IsDirty(DomainProfile) {
		t.Error("the pending edit should still read as dirty after reconciliation")
	}
}
