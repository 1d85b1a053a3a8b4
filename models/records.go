package models

// RecordSyncStatus marks how a locally stored record relates to the server
// copy.
type RecordSyncStatus string

const (
	RecordSynced   RecordSyncStatus = "SYNCED"
	RecordPending  RecordSyncStatus = "PENDING"
	RecordConflict RecordSyncStatus = "CONFLICT"
	RecordDeleted  RecordSyncStatus = "DELETED"
)

// Sex of an animal.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// RiskLevel classifies the inbreeding risk of a planned breeding.
type RiskLevel string

const (
	RiskGreen  RiskLevel = "GREEN"
	RiskYellow RiskLevel = "YELLOW"
	RiskRed    RiskLevel = "RED"
)

// Animal is one tracked animal of the herd. Timestamps travel as the
// server's ISO strings; BirthDate and DeletedAt are nil when unset.
type Animal struct {
	ID          string           `json:"id"`
	Crotal      string           `json:"crotal"`
	Sex         Sex              `json:"sex"`
	Species     string           `json:"species"`
	BirthDate   *string          `json:"birthDate"`
	IsFounder   bool             `json:"isFounder"`
	FatherID    *string          `json:"fatherId"`
	MotherID    *string          `json:"motherId"`
	UserID      string           `json:"userId"`
	SyncStatus  RecordSyncStatus `json:"syncStatus"`
	SyncVersion int64            `json:"syncVersion"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
	DeletedAt   *string          `json:"deletedAt"`
}

// Breeding is a planned or completed pairing of two animals.
type Breeding struct {
	ID           string           `json:"id"`
	MaleID       string           `json:"maleId"`
	FemaleID     string           `json:"femaleId"`
	ProjectedCOI float64          `json:"projectedCOI"`
	RiskLevel    RiskLevel        `json:"riskLevel"`
	OffspringID  *string          `json:"offspringId"`
	BreedingDate *string          `json:"breedingDate"`
	Notes        *string          `json:"notes"`
	UserID       string           `json:"userId"`
	SyncStatus   RecordSyncStatus `json:"syncStatus"`
	SyncVersion  int64            `json:"syncVersion"`
	CreatedAt    string           `json:"createdAt"`
	UpdatedAt    string           `json:"updatedAt"`
	DeletedAt    *string          `json:"deletedAt"`
}

// HealthRecord is a health event (vaccination, deworming, checkup, ...) for
// one animal.
type HealthRecord struct {
	ID          string           `json:"id"`
	AnimalID    string           `json:"animalId"`
	Type        string           `json:"type"`
	Date        string           `json:"date"`
	Notes       *string          `json:"notes"`
	NextDueDate *string          `json:"nextDueDate"`
	Completed   bool             `json:"completed"`
	UserID      string           `json:"userId"`
	SyncStatus  RecordSyncStatus `json:"syncStatus"`
	SyncVersion int64            `json:"syncVersion"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
	DeletedAt   *string          `json:"deletedAt"`
}

// ProductionRecord is a measured production value (weight, wool, milk, ...)
// for one animal.
type ProductionRecord struct {
	ID           string           `json:"id"`
	AnimalID     string           `json:"animalId"`
	Type         string           `json:"type"`
	Date         string           `json:"date"`
	Value        float64          `json:"value"`
	Unit         string           `json:"unit"`
	QualityScore *float64         `json:"qualityScore"`
	Notes        *string          `json:"notes"`
	UserID       string           `json:"userId"`
	SyncStatus   RecordSyncStatus `json:"syncStatus"`
	SyncVersion  int64            `json:"syncVersion"`
	CreatedAt    string           `json:"createdAt"`
	UpdatedAt    string           `json:"updatedAt"`
	DeletedAt    *string          `json:"deletedAt"`
}
