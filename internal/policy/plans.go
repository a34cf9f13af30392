// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"slices"

	"github.com/MKhiriev/secure-notes/models"
)

// CurrencyNPR is the currency of every plan. Prices are in paisa.
const CurrencyNPR = "NPR"

var plans = []models.Plan{
	{ID: "pro", Name: "Pro", Tier: models.TierPro, Price: 59900, Currency: CurrencyNPR},
	{ID: "enterprise", Name: "Enterprise", Tier: models.TierEnterprise, Price: 199900, Currency: CurrencyNPR},
}

// Plans returns the purchasable plans, cheapest first.
func Plans() []models.Plan {
	return slices.Clone(plans)
}

// PlanByID looks a plan up by its id.
func PlanByID(id string) (models.Plan, bool) {
	i := slices.IndexFunc(plans, func(p models.Plan) bool { return p.ID == id })
	if i < 0 {
		return models.Plan{}, false
	}
	return plans[i], true
}

// CanPurchase reports whether a plan is an upgrade over the current tier.
func CanPurchase(current models.Tier, plan models.Plan) bool {
	return plan.Tier.Rank() > EffectiveTier(current).Rank()
}
