// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/secure-notes/models"
)

// Feature names.
const (
	FeatureBasicNotes         = "basic_notes"
	FeatureTextOnly           = "text_only"
	FeatureFileUploads        = "file_uploads"
	FeatureAdvancedSearch     = "advanced_search"
	FeatureAPIAccess          = "api_access"
	FeatureTeamManagement     = "team_management"
	FeatureCustomIntegrations = "custom_integrations"
)

var tierLimits = map[models.Tier]models.TierLimits{
	models.TierFree: {
		MaxNotes:    50,
		MaxUploadMB: 5,
		APIAccess:   false,
		Features:    []string{FeatureBasicNotes, FeatureTextOnly},
	},
	models.TierPro: {
		MaxNotes:    1000,
		MaxUploadMB: 500,
		APIAccess:   true,
		Features:    []string{FeatureBasicNotes, FeatureFileUploads, FeatureAdvancedSearch, FeatureAPIAccess},
	},
	models.TierEnterprise: {
		MaxNotes:    999999,
		MaxUploadMB: 5000,
		APIAccess:   true,
		Features: []string{
			FeatureBasicNotes, FeatureFileUploads, FeatureAdvancedSearch, FeatureAPIAccess,
			FeatureTeamManagement, FeatureCustomIntegrations,
		},
	},
}

// EffectiveTier maps unknown or empty tiers to FREE.
func EffectiveTier(tier models.Tier) models.Tier {
	if _, ok := tierLimits[tier]; ok {
		return tier
	}
	return models.TierFree
}

// LimitsFor returns the quota row of tier. Unknown tiers get FREE limits.
// The returned Features slice is a copy.
func LimitsFor(tier models.Tier) models.TierLimits {
	l := tierLimits[EffectiveTier(tier)]
	l.Features = slices.Clone(l.Features)
	return l
}

// HasFeature reports whether tier includes feature.
func HasFeature(tier models.Tier, feature string) bool {
	return slices.Contains(tierLimits[EffectiveTier(tier)].Features, feature)
}

// NoteLimit decides whether one more note fits into the tier quota.
func NoteLimit(tier models.Tier, current int64) models.NoteLimit {
	tier = EffectiveTier(tier)
	limit := tierLimits[tier].MaxNotes
	return models.NoteLimit{
		Allowed: current < limit,
		Current: current,
		Limit:   limit,
		Tier:    tier,
		Message: fmt.Sprintf("You have %d/%d notes", current, limit),
	}
}

// UploadSize decides whether a file of sizeMB may be uploaded.
func UploadSize(tier models.Tier, sizeMB float64) models.UploadCheck {
	tier = EffectiveTier(tier)
	limit := tierLimits[tier].MaxUploadMB
	allowed := sizeMB <= float64(limit)

	msg := fmt.Sprintf("File upload allowed (%gMB / %dMB)", sizeMB, limit)
	if !allowed {
		msg = fmt.Sprintf("File size %gMB exceeds limit of %dMB for %s tier", sizeMB, limit, tier)
	}

	return models.UploadCheck{
		Allowed: allowed,
		SizeMB:  sizeMB,
		LimitMB: limit,
		Tier:    tier,
		Message: msg,
	}
}

// Role predicates. Staff accounts satisfy every elevated predicate.

func IsFree(tier models.Tier, isStaff bool) bool {
	return !isStaff && EffectiveTier(tier) == models.TierFree
}

func IsProOrHigher(tier models.Tier, isStaff bool) bool {
	return isStaff || EffectiveTier(tier).Rank() >= models.TierPro.Rank()
}

func IsEnterprise(tier models.Tier, isStaff bool) bool {
	return isStaff || EffectiveTier(tier) == models.TierEnterprise
}

func IsAdmin(_ models.Tier, isStaff bool) bool {
	return isStaff
}

// CanUseAPI reports whether the tier grants API access.
func CanUseAPI(tier models.Tier, isStaff bool) bool {
	return isStaff || tierLimits[EffectiveTier(tier)].APIAccess
}

// Subject is what guards judge: the authenticated account with its tier.
type Subject struct {
	AccountID int64
	Tier      models.Tier
	IsStaff   bool
}

// Decision is the verdict of a guard. Reason is empty when Allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the positive decision.
func Allow() Decision { return Decision{Allowed: true} }

// Deny returns a negative decision with reason.
func Deny(reason string) Decision { return Decision{Reason: reason} }

// Guard is a permission predicate evaluated before a protected operation.
type Guard func(Subject) Decision

// Evaluate runs guards in order and returns the first denial, or Allow if
// every guard passes.
func Evaluate(s Subject, guards ...Guard) Decision {
	for _, g := range guards {
		if d := g(s); !d.Allowed {
			return d
		}
	}
	return Allow()
}

// RequireAdmin allows staff only.
func RequireAdmin() Guard {
	return func(s Subject) Decision {
		if IsAdmin(s.Tier, s.IsStaff) {
			return Allow()
		}
		return Deny("administrator role required")
	}
}

// RequireTier allows accounts whose tier ranks at least min. Staff always
// pass.
func RequireTier(min models.Tier) Guard {
	return func(s Subject) Decision {
		if s.IsStaff || EffectiveTier(s.Tier).Rank() >= min.Rank() {
			return Allow()
		}
		return Deny(fmt.Sprintf("%s tier or higher required", min))
	}
}

// RequireAPIAccess allows tiers with API access.
func RequireAPIAccess() Guard {
	return func(s Subject) Decision {
		if CanUseAPI(s.Tier, s.IsStaff) {
			return Allow()
		}
		return Deny("API access not available for " + string(EffectiveTier(s.Tier)) + " tier")
	}
}

// RequireFeature allows tiers that include feature.
func RequireFeature(feature string) Guard {
	return func(s Subject) Decision {
		if s.IsStaff || HasFeature(s.Tier, feature) {
			return Allow()
		}
		return Deny("feature " + feature + " not available for " + string(EffectiveTier(s.Tier)) + " tier")
	}
}
