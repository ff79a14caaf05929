package competency

// Competency represents a single unit of curriculum in the prerequisite graph.
type Competency struct {
	ID            string
	Name          string
	Description   string
	Level         int // Curriculum level, 1 (foundations) to 3 (advanced)
	Difficulty    int // Intrinsic difficulty, 1 (easy) to 5 (hard)
	EstimatedMins int
	Keywords      []string
	Prerequisites []string
	Objectives    []string
}

// DifficultyValue maps the 1-5 difficulty to the [0,1] scale used by the
// mastery and rating models.
func (c Competency) DifficultyValue() float64 {
	d := c.Difficulty
	if d < 1 {
		d = 1
	}
	if d > 5 {
		d = 5
	}
	return float64(d-1) / 4.0
}
