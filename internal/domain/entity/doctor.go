package entity

import "github.com/google/uuid"

// Doctor represents a roster member available for assignment.
// Specialties is a comma/whitespace separated list of terms, e.g.
// "cardiology, internal medicine".
type Doctor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Specialties string    `gorm:"type:text;not null" json:"specialties"`
	Active      bool      `gorm:"not null;default:true;index" json:"active"`
}

func (Doctor) TableName() string {
	return "doctors"
}
