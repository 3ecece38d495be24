package models

// MockTest is a single recorded practice exam. Tests are never mutated after creation.
type MockTest struct {
	ID             string `json:"id"`
	Date           string `json:"date"` // YYYY-MM-DD format
	TargetScore    int    `json:"targetScore"`
	ActualScore    int    `json:"actualScore"`
	PhysicsScore   int    `json:"physicsScore"`
	ChemistryScore int    `json:"chemistryScore"`
	BiologyScore   int    `json:"biologyScore"`
	TimeTaken      int    `json:"timeTaken"` // minutes
	NegativeMarks  int    `json:"negativeMarks"`
	GuessMarks     int    `json:"guessMarks"`
	SillyMistakes  int    `json:"sillyMistakes"`
}
