// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"testing"
	"time"

	"github.com/MKhiriev/secure-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// ─────────────────────────────────────────────────────────────
// lockout
// ─────────────────────────────────────────────────────────────

func TestLockout_Check(t *testing.T) {
	l := Lockout{Threshold: 5, Cooloff: time.Hour}
	future := now.Add(time.Minute)
	past := now.Add(-time.Second)

	tests := []struct {
		name string
		p    models.SecurityProfile
		want LockStatus
	}{
		{name: "no lock", p: models.SecurityProfile{FailedAttempts: 4}, want: Unlocked},
		{name: "lock in the future", p: models.SecurityProfile{LockedUntil: &future}, want: Locked},
		{name: "lock in the past", p: models.SecurityProfile{LockedUntil: &past}, want: LockLapsed},
		{name: "lock ending now", p: models.SecurityProfile{LockedUntil: &now}, want: LockLapsed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Check(tt.p, now))
		})
	}
}

func TestLockout_ThresholdAndDeadline(t *testing.T) {
	l := Lockout{Threshold: 5, Cooloff: time.Hour}

	assert.False(t, l.ReachesThreshold(4))
	assert.True(t, l.ReachesThreshold(5))
	assert.True(t, l.ReachesThreshold(6))
	assert.Equal(t, now.Add(time.Hour), l.Deadline(now))
}

// ─────────────────────────────────────────────────────────────
// password
// ─────────────────────────────────────────────────────────────

func TestPassword_Validate(t *testing.T) {
	p := Password{MinLength: 12, HistoryCount: 5, ExpiryDays: 90}

	tests := []struct {
		name     string
		password string
		username string
		want     []string
	}{
		{name: "strong", password: "Str0ng!Pass123", username: "alice"},
		{name: "too short", password: "Sh0rt!a", want: []string{"password must be at least 12 characters long"}},
		{name: "no upper", password: "str0ng!pass123", want: []string{msgNoUpper}},
		{name: "no lower", password: "STR0NG!PASS123", want: []string{msgNoLower}},
		{name: "no digit", password: "Strong!Password", want: []string{msgNoDigit}},
		{name: "no special", password: "Str0ngPass1234", want: []string{msgNoSpecial}},
		{name: "underscore is not special", password: "Str0ng_Pass123", want: []string{msgNoSpecial}},
		{name: "common", password: "Administrator1!", want: []string{msgCommon}},
		{name: "contains username", password: "Alice!Secure99", username: "alice", want: []string{msgSimilarToUser}},
		{
			name:     "several violations",
			password: "abc",
			want: []string{
				"password must be at least 12 characters long",
				msgNoUpper, msgNoDigit, msgNoSpecial,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Validate(tt.password, tt.username))
		})
	}
}

func TestIsCommonPassword_CaseInsensitive(t *testing.T) {
	assert.True(t, IsCommonPassword("PASSWORD123"))
	assert.True(t, IsCommonPassword(" qwerty "))
	assert.False(t, IsCommonPassword("Str0ng!Pass123"))
}

func TestPassword_IsExpired(t *testing.T) {
	p := Password{ExpiryDays: 90}

	fresh := models.SecurityProfile{PasswordChangedAt: now.Add(-89 * 24 * time.Hour)}
	old := models.SecurityProfile{PasswordChangedAt: now.Add(-91 * 24 * time.Hour)}
	forced := models.SecurityProfile{PasswordChangedAt: now, ForcePasswordChange: true}

	assert.False(t, p.IsExpired(fresh, now))
	assert.True(t, p.IsExpired(old, now))
	assert.True(t, p.IsExpired(forced, now))
	assert.Equal(t, now.Add(90*24*time.Hour), p.ExpiresAt(models.SecurityProfile{PasswordChangedAt: now}))
}

func TestPassword_Strength(t *testing.T) {
	p := Password{MinLength: 12}

	strong := p.Strength("Str0ng!Pass123")
	assert.Equal(t, 100, strong.Score)
	assert.Equal(t, StrengthStrong, strong.Strength)
	assert.True(t, strong.Valid)
	assert.Equal(t, []string{"Password is strong!"}, strong.Feedback)

	weak := p.Strength("password12")
	assert.Equal(t, 55, weak.Score)
	assert.Equal(t, StrengthWeak, weak.Strength)
	assert.False(t, weak.Valid)
	assert.Contains(t, weak.Feedback, "Add uppercase letters")

	mid := p.Strength("Password12")
	assert.Equal(t, 75, mid.Score)
	assert.Equal(t, StrengthMedium, mid.Strength)
	assert.NotEmpty(t, mid.Errors)
}

// ─────────────────────────────────────────────────────────────
// rbac
// ─────────────────────────────────────────────────────────────

func TestNoteLimit_Boundary(t *testing.T) {
	assert.True(t, NoteLimit(models.TierFree, 49).Allowed)

	at := NoteLimit(models.TierFree, 50)
	assert.False(t, at.Allowed)
	assert.Equal(t, int64(50), at.Limit)
	assert.Equal(t, int64(50), at.Current)
	assert.Equal(t, "You have 50/50 notes", at.Message)

	assert.True(t, NoteLimit(models.TierPro, 999).Allowed)
	assert.False(t, NoteLimit(models.TierPro, 1000).Allowed)
}

func TestNoteLimit_UnknownTierIsFree(t *testing.T) {
	got := NoteLimit("", 50)
	assert.False(t, got.Allowed)
	assert.Equal(t, models.TierFree, got.Tier)
}

func TestUploadSize(t *testing.T) {
	assert.True(t, UploadSize(models.TierFree, 5).Allowed)

	over := UploadSize(models.TierFree, 5.5)
	assert.False(t, over.Allowed)
	assert.Equal(t, int64(5), over.LimitMB)
	assert.Equal(t, "File size 5.5MB exceeds limit of 5MB for FREE tier", over.Message)

	assert.True(t, UploadSize(models.TierEnterprise, 4999).Allowed)
}

func TestLimitsFor_ReturnsCopy(t *testing.T) {
	l := LimitsFor(models.TierPro)
	l.Features[0] = "changed"
	assert.Equal(t, FeatureBasicNotes, LimitsFor(models.TierPro).Features[0])
	assert.Equal(t, LimitsFor(models.TierFree), LimitsFor("GOLD"))
}

func TestRolePredicates(t *testing.T) {
	tests := []struct {
		tier                         models.Tier
		staff                        bool
		free, pro, enterprise, admin bool
	}{
		{tier: models.TierFree, free: true},
		{tier: models.TierPro, pro: true},
		{tier: models.TierEnterprise, pro: true, enterprise: true},
		{tier: models.TierFree, staff: true, pro: true, enterprise: true, admin: true},
		{tier: "", free: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.free, IsFree(tt.tier, tt.staff))
			assert.Equal(t, tt.pro, IsProOrHigher(tt.tier, tt.staff))
			assert.Equal(t, tt.enterprise, IsEnterprise(tt.tier, tt.staff))
			assert.Equal(t, tt.admin, IsAdmin(tt.tier, tt.staff))
		})
	}
}

func TestHasFeature(t *testing.T) {
	assert.True(t, HasFeature(models.TierFree, FeatureTextOnly))
	assert.False(t, HasFeature(models.TierFree, FeatureFileUploads))
	assert.True(t, HasFeature(models.TierEnterprise, FeatureTeamManagement))
	assert.False(t, HasFeature(models.TierPro, FeatureTeamManagement))
}

func TestEvaluate_FirstDenyWins(t *testing.T) {
	s := Subject{AccountID: 1, Tier: models.TierFree}

	var calls []string
	track := func(name string, d Decision) Guard {
		return func(Subject) Decision {
			calls = append(calls, name)
			return d
		}
	}

	d := Evaluate(s,
		track("a", Allow()),
		track("b", Deny("b denied")),
		track("c", Deny("c denied")),
	)
	assert.False(t, d.Allowed)
	assert.Equal(t, "b denied", d.Reason)
	assert.Equal(t, []string{"a", "b"}, calls)

	assert.True(t, Evaluate(s).Allowed)
}

func TestGuards(t *testing.T) {
	free := Subject{Tier: models.TierFree}
	pro := Subject{Tier: models.TierPro}
	staff := Subject{Tier: models.TierFree, IsStaff: true}

	assert.False(t, RequireAdmin()(pro).Allowed)
	assert.True(t, RequireAdmin()(staff).Allowed)

	assert.False(t, RequireTier(models.TierPro)(free).Allowed)
	assert.True(t, RequireTier(models.TierPro)(pro).Allowed)
	assert.False(t, RequireTier(models.TierEnterprise)(pro).Allowed)
	assert.True(t, RequireTier(models.TierEnterprise)(staff).Allowed)

	d := RequireAPIAccess()(free)
	assert.False(t, d.Allowed)
	assert.Equal(t, "API access not available for FREE tier", d.Reason)
	assert.True(t, RequireAPIAccess()(pro).Allowed)

	assert.False(t, RequireFeature(FeatureFileUploads)(free).Allowed)
	assert.True(t, RequireFeature(FeatureFileUploads)(pro).Allowed)
}

// ─────────────────────────────────────────────────────────────
// transaction
// ─────────────────────────────────────────────────────────────

func TestValidateTransition(t *testing.T) {
	allowed := [][2]models.TransactionStatus{
		{models.TransactionPending, models.TransactionProcessing},
		{models.TransactionPending, models.TransactionCancelled},
		{models.TransactionProcessing, models.TransactionCompleted},
		{models.TransactionProcessing, models.TransactionFailed},
		{models.TransactionCompleted, models.TransactionRefunded},
	}
	for _, tr := range allowed {
		require.NoError(t, ValidateTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]models.TransactionStatus{
		{models.TransactionPending, models.TransactionCompleted},
		{models.TransactionPending, models.TransactionPending},
		{models.TransactionCompleted, models.TransactionCompleted},
		{models.TransactionCompleted, models.TransactionProcessing},
		{models.TransactionFailed, models.TransactionProcessing},
		{models.TransactionRefunded, models.TransactionCompleted},
		{models.TransactionCancelled, models.TransactionPending},
	}
	for _, tr := range rejected {
		assert.ErrorIs(t, ValidateTransition(tr[0], tr[1]), ErrInvalidTransition, "%s -> %s", tr[0], tr[1])
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.TransactionPending))
	assert.False(t, IsTerminal(models.TransactionProcessing))
	assert.True(t, IsTerminal(models.TransactionCompleted))
	assert.True(t, IsTerminal(models.TransactionCancelled))
}

// ─────────────────────────────────────────────────────────────
// plans
// ─────────────────────────────────────────────────────────────

func TestPlanByID(t *testing.T) {
	pro, ok := PlanByID("pro")
	require.True(t, ok)
	assert.Equal(t, models.TierPro, pro.Tier)
	assert.Equal(t, int64(59900), pro.Price)
	assert.Equal(t, CurrencyNPR, pro.Currency)

	ent, ok := PlanByID("enterprise")
	require.True(t, ok)
	assert.Equal(t, int64(199900), ent.Price)

	_, ok = PlanByID("free")
	assert.False(t, ok)
}

func TestPlans_ReturnsCopy(t *testing.T) {
	p := Plans()
	p[0].Price = 1

	again, _ := PlanByID(p[0].ID)
	assert.Equal(t, int64(59900), again.Price)
}

func TestCanPurchase(t *testing.T) {
	pro, _ := PlanByID("pro")
	ent, _ := PlanByID("enterprise")

	assert.True(t, CanPurchase(models.TierFree, pro))
	assert.True(t, CanPurchase(models.TierPro, ent))
	assert.False(t, CanPurchase(models.TierPro, pro))
	assert.False(t, CanPurchase(models.TierEnterprise, pro))
	assert.True(t, CanPurchase("", pro), "unknown tier counts as FREE")
}
