package recommend

import (
	"sort"

	"kalyx/models"
)

// Scoring weights. Contributions accumulate independently per criterion;
// a strain whose total stays at or below zero is dropped from the result.
// Exceeding the THC ceiling is the only penalty: too much psychoactive
// content disqualifies, too little CBD merely earns no bonus.
const (
	weightEffectIntensity   = 10
	weightConditionEfficacy = 15
	bonusTHCWithinLimit     = 20
	penaltyTHCOverLimit     = -30
	bonusCBDAtLeast         = 25
	bonusGeneticsMatch      = 15
	bonusPerPharmacy        = 5
)

// DefaultTopLimit bounds TopForCondition when the caller supplies no
// limit of their own.
const DefaultTopLimit = 5

// Score ranks strains against the preferences. It is a pure function
// over the snapshot: no I/O, no shared state, deterministic for
// identical input, safe for concurrent use. Strains scoring zero or
// below are omitted; the result is ordered by descending score, and the
// stable sort keeps the incoming catalog order for equal scores.
func Score(prefs Preferences, strains []models.Strain) []Recommendation {
	results := make([]Recommendation, 0, len(strains))
	for i := range strains {
		if rec, ok := evaluate(prefs, &strains[i]); ok {
			results = append(results, rec)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

func evaluate(prefs Preferences, strain *models.Strain) (Recommendation, bool) {
	rec := Recommendation{
		StrainID:           strain.ID,
		Name:               strain.Name,
		Genetics:           strain.Genetics,
		THCContent:         strain.THCContent,
		CBDContent:         strain.CBDContent,
		Description:        strain.Description,
		MatchingEffects:    []string{},
		MatchingConditions: []string{},
		Pharmacies:         offersFrom(strain.Availability),
	}

	score := 0
	score += matchEffects(&rec, prefs.Effects, strain.Effects)
	score += matchConditions(&rec, prefs.Conditions, strain.Conditions)
	score += scorePotency(prefs, strain)
	score += scoreGenetics(prefs.Genetics, strain.Genetics)
	score += scoreAvailability(prefs.Location, rec.Pharmacies)

	if score <= 0 {
		return Recommendation{}, false
	}

	rec.Score = score
	return rec, true
}

// matchEffects adds intensity-weighted points for every strain effect the
// caller asked for. Requested names are deduplicated, so repeating a name
// in the preferences cannot double-count a link.
func matchEffects(rec *Recommendation, wanted []string, links []models.StrainEffect) int {
	if len(wanted) == 0 || len(links) == 0 {
		return 0
	}

	requested := stringSet(wanted)
	total := 0
	for _, link := range links {
		if link.Effect == nil {
			continue
		}
		if _, ok := requested[link.Effect.Name]; !ok {
			continue
		}
		total += link.Intensity * weightEffectIntensity
		rec.MatchingEffects = append(rec.MatchingEffects, link.Effect.Name)
	}
	return total
}

func matchConditions(rec *Recommendation, wanted []string, links []models.StrainCondition) int {
	if len(wanted) == 0 || len(links) == 0 {
		return 0
	}

	requested := stringSet(wanted)
	total := 0
	for _, link := range links {
		if link.Condition == nil {
			continue
		}
		if _, ok := requested[link.Condition.Name]; !ok {
			continue
		}
		total += link.Efficacy * weightConditionEfficacy
		rec.MatchingConditions = append(rec.MatchingConditions, link.Condition.Name)
	}
	return total
}

// scorePotency applies the THC ceiling and CBD floor. Both criteria stay
// silent when the caller set no threshold or the strain has no recorded
// value, so strains without lab data are never punished for the gap.
func scorePotency(prefs Preferences, strain *models.Strain) int {
	score := 0

	if prefs.MaxTHC != nil && strain.THCContent != nil {
		if *strain.THCContent <= *prefs.MaxTHC {
			score += bonusTHCWithinLimit
		} else {
			score += penaltyTHCOverLimit
		}
	}

	if prefs.MinCBD != nil && strain.CBDContent != nil && *strain.CBDContent >= *prefs.MinCBD {
		score += bonusCBDAtLeast
	}

	return score
}

func scoreGenetics(wanted, actual models.Genetics) int {
	if wanted == "" || wanted != actual {
		return 0
	}
	return bonusGeneticsMatch
}

// scoreAvailability rewards each outlet carrying the strain, counting
// only the links that survived the caller's city narrowing. Like the
// other criteria it stays silent when its preference field is absent:
// without a location the outlet list is informational and earns nothing,
// so a catalog full of stocked strains still ranks empty for empty
// preferences.
func scoreAvailability(loc *Location, offers []PharmacyOffer) int {
	if loc == nil {
		return 0
	}
	return len(offers) * bonusPerPharmacy
}

func offersFrom(links []models.PharmacyStrain) []PharmacyOffer {
	offers := make([]PharmacyOffer, 0, len(links))
	for _, link := range links {
		offer := PharmacyOffer{
			PharmacyID: link.PharmacyID,
			InStock:    link.InStock,
			Price:      link.Price,
		}
		if link.Pharmacy != nil {
			offer.Name = link.Pharmacy.Name
			offer.City = link.Pharmacy.City
		}
		offers = append(offers, offer)
	}
	return offers
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
