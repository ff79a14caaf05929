package mastery

// Level is a discrete difficulty label for content selection.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// SelectDifficulty maps a mastery value to a difficulty label.
// Pure threshold map, no side effects.
func SelectDifficulty(mastery float64) Level {
	switch {
	case mastery < 0.5:
		return LevelBeginner
	case mastery < 0.75:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}
