package membership

// Entitlements is the static per-tier capability bundle. A nil limit means
// unlimited.
type Entitlements struct {
	WeeklyWorkoutLimit  *int `json:"weekly_workout_limit,omitempty"`
	ExerciseLibrarySize int  `json:"exercise_library_size"`
	GoalLimit           *int `json:"goal_limit,omitempty"`

	GymCard           bool `json:"gym_card"`
	GymAnalytics      bool `json:"gym_analytics"`
	BasicFitnessSync  bool `json:"basic_fitness_sync"`
	FullFitnessSync   bool `json:"full_fitness_sync"`
	AdvancedAnalytics bool `json:"advanced_analytics"`
}

var catalog = map[Tier]Entitlements{
	TierFree: {
		WeeklyWorkoutLimit:  limit(5),
		ExerciseLibrarySize: 20,
		GoalLimit:           limit(1),
	},
	TierPremium: {
		ExerciseLibrarySize: 100,
		GoalLimit:           limit(5),
		GymCard:             true,
		BasicFitnessSync:    true,
	},
	TierPro: {
		ExerciseLibrarySize: 500,
		GoalLimit:           limit(10),
		GymCard:             true,
		GymAnalytics:        true,
		BasicFitnessSync:    true,
		FullFitnessSync:     true,
		AdvancedAnalytics:   true,
	},
	TierElite: {
		ExerciseLibrarySize: 10000,
		GymCard:             true,
		GymAnalytics:        true,
		BasicFitnessSync:    true,
		FullFitnessSync:     true,
		AdvancedAnalytics:   true,
	},
}

// CatalogFor returns the capability bundle for a tier. Unknown tiers fall
// back to the free bundle.
func CatalogFor(t Tier) Entitlements {
	if e, ok := catalog[t]; ok {
		return e
	}
	return catalog[TierFree]
}

func limit(n int) *int {
	return &n
}
