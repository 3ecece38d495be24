package models

// Profile is the student's setup record. At most one exists and edits replace it wholesale.
type Profile struct {
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Location        string `json:"location"`
	DateOfBirth     string `json:"dateOfBirth"` // YYYY-MM-DD format
	AttemptNumber   string `json:"attemptNumber"`
	TargetScore     int    `json:"targetScore"`
	PhysicsTarget   int    `json:"physicsTarget"`
	ChemistryTarget int    `json:"chemistryTarget"`
	BiologyTarget   int    `json:"biologyTarget"`
	DreamCollege    string `json:"dreamCollege"`
	LifeGoal        string `json:"lifeGoal"`
	Hobbies         string `json:"hobbies"`
}
