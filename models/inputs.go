package models

// AnimalCreateInput carries the user-supplied fields for a new animal.
type AnimalCreateInput struct {
	Crotal    string  `json:"crotal"`
	Sex       Sex     `json:"sex"`
	Species   string  `json:"species"`
	BirthDate *string `json:"birthDate,omitempty"`
	IsFounder bool    `json:"isFounder"`
	FatherID  *string `json:"fatherId,omitempty"`
	MotherID  *string `json:"motherId,omitempty"`
}

// AnimalUpdateInput carries a partial update: nil fields are left unchanged.
type AnimalUpdateInput struct {
	Crotal    *string `json:"crotal,omitempty"`
	Species   *string `json:"species,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	IsFounder *bool   `json:"isFounder,omitempty"`
	FatherID  *string `json:"fatherId,omitempty"`
	MotherID  *string `json:"motherId,omitempty"`
}

type BreedingCreateInput struct {
	MaleID       string    `json:"maleId"`
	FemaleID     string    `json:"femaleId"`
	ProjectedCOI float64   `json:"projectedCoi"`
	RiskLevel    RiskLevel `json:"riskLevel"`
	BreedingDate *string   `json:"breedingDate,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
}

type BreedingUpdateInput struct {
	BreedingDate *string `json:"breedingDate,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	OffspringID  *string `json:"offspringId,omitempty"`
}

type HealthRecordCreateInput struct {
	AnimalID    string  `json:"animalId"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Notes       *string `json:"notes,omitempty"`
	NextDueDate *string `json:"nextDueDate,omitempty"`
	Completed   bool    `json:"completed"`
}

type HealthRecordUpdateInput struct {
	Type        *string `json:"type,omitempty"`
	Date        *string `json:"date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	NextDueDate *string `json:"nextDueDate,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type ProductionRecordCreateInput struct {
	AnimalID     string   `json:"animalId"`
	Type         string   `json:"type"`
	Date         string   `json:"date"`
	Value        float64  `json:"value"`
	Unit         string   `json:"unit"`
	QualityScore *float64 `json:"qualityScore,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

type ProductionRecordUpdateInput struct {
	Date         *string  `json:"date,omitempty"`
	Value        *float64 `json:"value,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
	QualityScore *float64 `json:"qualityScore,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}
