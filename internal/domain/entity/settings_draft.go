package entity

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
)

var (
	ErrSaveInProgress      = errors.New("a save is already in progress")
	ErrDomainNotRestorable = errors.New("domain does not support this restore operation")
)

// ProfilePatch はプロフィール編集状態への部分適用を表します
type ProfilePatch struct {
	DisplayName  *string
	Handle       *string
	ExternalCode *string
	Bio          *string
}

// SavePlan は保存処理の対象を表します
// ダーティなドメインのコミットペイロードと、保留中のローカル適用を含みます
type SavePlan struct {
	ProfileDirty     bool
	PreferencesDirty bool
	Profile          Profile
	Preferences      NotificationPreferences
	LocalePending    bool
	ThemePending     bool
	Locale           valueobject.Locale
	Theme            valueobject.Theme
}

// Empty は保存対象がひとつもないかを判定します
func (p SavePlan) Empty() bool {
	return !p.ProfileDirty && !p.PreferencesDirty && !p.LocalePending && !p.ThemePending
}

// SettingsDraft は設定画面のユーザーごとの編集セッションを表します
//
// ドメインごとの編集状態・スナップショット・保留中のロケール/テーマ選択と
// 保存中フラグを保持します。スナップショットはバックエンドと一致することが
// 確認できた最後の値であり、ダーティ判定の基準になります。
// スナップショットの更新はコミット成功後に限られます（restore defaults の
// 楽観適用は例外で、失敗時の明示的なロールバックを伴います）。
//
// mutex は単一UIイベントループの代わりにアクセスを直列化します。
// 保存の再入抑止は仕様どおり saving フラグのみで行います。
type SettingsDraft struct {
	mu sync.Mutex

	userID uuid.UUID

	// 編集状態
	profile     Profile
	preferences NotificationPreferences

	// スナップショット
	profileSnapshot     Profile
	preferencesSnapshot NotificationPreferences

	// インターフェース状態（ネットワークコミットではなくローカル適用）
	selectedLocale valueobject.Locale
	appliedLocale  valueobject.Locale
	selectedTheme  valueobject.Theme
	appliedTheme   valueobject.Theme

	saving    bool
	updatedAt time.Time
}

// NewSettingsDraft は取得済みのバックエンド状態からドラフトを作成します
// 編集状態とスナップショットは同一値で初期化され、通知設定は結合ルールを
// 適用した状態で保持されます
func NewSettingsDraft(
	userID uuid.UUID,
	profile Profile,
	preferences NotificationPreferences,
	locale valueobject.Locale,
	theme valueobject.Theme,
) *SettingsDraft {
	normalized := preferences.Normalize()
	if locale.IsZero() {
		locale = valueobject.DefaultLocale()
	}
	if theme.IsZero() {
		theme = valueobject.DefaultTheme()
	}

	return &SettingsDraft{
		userID:              userID,
		profile:             profile,
		preferences:         normalized,
		profileSnapshot:     profile,
		preferencesSnapshot: normalized,
		selectedLocale:      locale,
		appliedLocale:       locale,
		selectedTheme:       theme,
		appliedTheme:        theme,
		updatedAt:           time.Now(),
	}
}

// UserID はドラフトの所有者を返します
func (d *SettingsDraft) UserID() uuid.UUID {
	return d.userID
}

// Profile はプロフィールの編集状態を返します
func (d *SettingsDraft) Profile() Profile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profile
}

// Preferences は通知設定の編集状態を返します
func (d *SettingsDraft) Preferences() NotificationPreferences {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.preferences
}

// ProfileSnapshot はプロフィールのスナップショットを返します
func (d *SettingsDraft) ProfileSnapshot() Profile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profileSnapshot
}

// PreferencesSnapshot は通知設定のスナップショットを返します
func (d *SettingsDraft) PreferencesSnapshot() NotificationPreferences {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.preferencesSnapshot
}

// SelectedLocale は選択中のロケールを返します
func (d *SettingsDraft) SelectedLocale() valueobject.Locale {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selectedLocale
}

// AppliedLocale は適用済みのロケールを返します
func (d *SettingsDraft) AppliedLocale() valueobject.Locale {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.appliedLocale
}

// SelectedTheme は選択中のテーマを返します
func (d *SettingsDraft) SelectedTheme() valueobject.Theme {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selectedTheme
}

// AppliedTheme は適用済みのテーマを返します
func (d *SettingsDraft) AppliedTheme() valueobject.Theme {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.appliedTheme
}

// StageProfile はプロフィール編集状態へ部分適用します
func (d *SettingsDraft) StageProfile(patch ProfilePatch) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if patch.DisplayName != nil {
		d.profile.DisplayName = *patch.DisplayName
	}
	if patch.Handle != nil {
		d.profile.Handle = *patch.Handle
	}
	if patch.ExternalCode != nil {
		d.profile.ExternalCode = *patch.ExternalCode
	}
	if patch.Bio != nil {
		d.profile.Bio = *patch.Bio
	}
	d.updatedAt = time.Now()
}

// StagePreferences は通知設定のトグルを適用します
// system の変更は alert に伝播し、general は常に false に強制されます
func (d *SettingsDraft) StagePreferences(system, instructor *bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if system != nil {
		d.preferences.System = *system
	}
	if instructor != nil {
		d.preferences.Instructor = *instructor
	}
	d.preferences = d.preferences.Normalize()
	d.updatedAt = time.Now()
}

// SelectLocale はロケールの選択を保留状態として記録します
func (d *SettingsDraft) SelectLocale(locale valueobject.Locale) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selectedLocale = locale
	d.updatedAt = time.Now()
}

// SelectTheme はテーマの選択を保留状態として記録します
func (d *SettingsDraft) SelectTheme(theme valueobject.Theme) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selectedTheme = theme
	d.updatedAt = time.Now()
}

// IsDirty はドメインの編集状態がスナップショットと異なるかを判定します
func (d *SettingsDraft) IsDirty(domain Domain) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isDirtyLocked(domain)
}

func (d *SettingsDraft) isDirtyLocked(domain Domain) bool {
	switch domain {
	case DomainProfile:
		return !d.profile.Equal(d.profileSnapshot)
	case DomainPreferences:
		return !d.preferences.Equal(d.preferencesSnapshot)
	case DomainInterface:
		return !d.selectedLocale.Equals(d.appliedLocale) || !d.selectedTheme.Equals(d.appliedTheme)
	default:
		// アバターは即時コミットされるため編集バッファを持たない
		return false
	}
}

// HasAnyChanges は未保存の変更がひとつでもあるかを判定します
func (d *SettingsDraft) HasAnyChanges() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isDirtyLocked(DomainProfile) ||
		d.isDirtyLocked(DomainPreferences) ||
		d.isDirtyLocked(DomainInterface)
}

// BeginSave は保存中フラグを立てます
// 既に保存中の場合は false を返し、呼び出しは無視されるべきです
func (d *SettingsDraft) BeginSave() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.saving {
		return false
	}
	d.saving = true
	return true
}

// EndSave は保存中フラグを解除します
func (d *SettingsDraft) EndSave() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.saving = false
}

// Saving は保存中かどうかを返します
func (d *SettingsDraft) Saving() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saving
}

// SavePlan は現時点の保存対象を返します
// プロフィールはトリム済み、通知設定は結合ルール適用済みのペイロードです
func (d *SettingsDraft) SavePlan() SavePlan {
	d.mu.Lock()
	defer d.mu.Unlock()

	return SavePlan{
		ProfileDirty:     d.isDirtyLocked(DomainProfile),
		PreferencesDirty: d.isDirtyLocked(DomainPreferences),
		Profile:          d.profile.Trimmed(),
		Preferences:      d.preferences.Normalize(),
		LocalePending:    !d.selectedLocale.Equals(d.appliedLocale),
		ThemePending:     !d.selectedTheme.Equals(d.appliedTheme),
		Locale:           d.selectedLocale,
		Theme:            d.selectedTheme,
	}
}

// CommitProfile はプロフィールのコミット成功をスナップショットへ反映します
// 編集状態には触れません。保存中に打鍵された編集はそのまま残り、
// 次のダーティ判定で検出されます
func (d *SettingsDraft) CommitProfile(committed Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profileSnapshot = committed
	d.updatedAt = time.Now()
}

// CommitPreferences は通知設定のコミット成功をスナップショットへ反映します
func (d *SettingsDraft) CommitPreferences(committed NotificationPreferences) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preferencesSnapshot = committed.Normalize()
	d.updatedAt = time.Now()
}

// ApplyInterface は保留中のロケール/テーマを適用済みに昇格させます
// 戻り値は実際に変化があったかどうかです
func (d *SettingsDraft) ApplyInterface() (localeChanged, themeChanged bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.selectedLocale.Equals(d.appliedLocale) {
		d.appliedLocale = d.selectedLocale
		localeChanged = true
	}
	if !d.selectedTheme.Equals(d.appliedTheme) {
		d.appliedTheme = d.selectedTheme
		themeChanged = true
	}
	if localeChanged || themeChanged {
		d.updatedAt = time.Now()
	}
	return localeChanged, themeChanged
}

// RestoreSnapshot はドメインの編集状態をスナップショットに巻き戻します
// ローカル操作のみでネットワーク呼び出しは行いません
func (d *SettingsDraft) RestoreSnapshot(domain Domain) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.saving {
		return ErrSaveInProgress
	}

	switch domain {
	case DomainProfile:
		d.profile = d.profileSnapshot
	case DomainPreferences:
		d.preferences = d.preferencesSnapshot
	case DomainInterface:
		d.selectedLocale = d.appliedLocale
		d.selectedTheme = d.appliedTheme
	default:
		return ErrDomainNotRestorable
	}
	d.updatedAt = time.Now()
	return nil
}

// PreferencesState は通知設定の編集状態とスナップショットを返します
// restore defaults の楽観適用前に退避するために使います
func (d *SettingsDraft) PreferencesState() (edit, snapshot NotificationPreferences) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.preferences, d.preferencesSnapshot
}

// OverridePreferences は通知設定の編集状態とスナップショットを同時に書き換えます
// restore defaults の楽観適用とそのロールバック専用の操作です
func (d *SettingsDraft) OverridePreferences(edit, snapshot NotificationPreferences) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preferences = edit
	d.preferencesSnapshot = snapshot
	d.updatedAt = time.Now()
}

// ReconcileProfile はアバターコミット後の再取得結果でスナップショットを整合させます
// 編集中の他フィールドはそのまま残し、アバター参照のみ編集状態へ反映します
func (d *SettingsDraft) ReconcileProfile(fetched Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profileSnapshot = fetched
	d.profile.AvatarURL = fetched.AvatarURL
	d.updatedAt = time.Now()
}

// UpdatedAt は最終更新時刻を返します
func (d *SettingsDraft) UpdatedAt() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updatedAt
}
