package domain

// Targets are daily calorie and macro goals.
type Targets struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Maintenance baseline every adjustment is applied to.
var baseTargets = Targets{Calories: 2000, Protein: 150, Carbs: 250, Fat: 67}

var goalAdjustments = map[Goal]Targets{
	GoalBuildMuscle:        {Calories: 500, Protein: 50},
	GoalLoseWeight:         {Calories: -500, Protein: 25},
	GoalImprovePerformance: {Calories: 250, Carbs: 50},
	GoalMaintainFitness:    {},
}

// Frequency never moves carbs or fat.
var frequencyAdjustments = map[TrainingFrequency]Targets{
	FrequencyTwoToThree: {Calories: 200, Protein: 25},
	FrequencyFourToFive: {Calories: 400, Protein: 50},
	FrequencySixPlus:    {Calories: 600, Protein: 75},
}

func (t Targets) add(o Targets) Targets {
	return Targets{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
	}
}

// DefaultTargets derives starting daily targets from a goal and training
// frequency. Results are not clamped.
func DefaultTargets(goal Goal, freq TrainingFrequency) Targets {
	return baseTargets.add(goalAdjustments[goal]).add(frequencyAdjustments[freq])
}
