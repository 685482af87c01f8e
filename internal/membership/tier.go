package membership

import (
	"fmt"
	"strings"
)

// Tier is a closed membership level. Levels are totally ordered:
// free < premium < pro < elite.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
	TierPro     Tier = "pro"
	TierElite   Tier = "elite"
)

var tierRank = map[Tier]int{
	TierFree:    0,
	TierPremium: 1,
	TierPro:     2,
	TierElite:   3,
}

func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tier %q", s)
	}
	return t, nil
}

func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

func (t Tier) Rank() int {
	return tierRank[t]
}

// AtLeast reports whether t ranks at or above min.
func (t Tier) AtLeast(min Tier) bool {
	return tierRank[t] >= tierRank[min]
}

// Above reports whether t strictly outranks other.
func (t Tier) Above(other Tier) bool {
	return tierRank[t] > tierRank[other]
}

// CodePrefix is the human-readable key code prefix. Cosmetic only: tier is
// always read from the stored key, never parsed back out of the code.
func (t Tier) CodePrefix() string {
	return strings.ToUpper(string(t)[:3])
}
