package breeders

import "time"

// Sex define el sexo del reproductor.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Breeder representa un reproductor del programa de cría. Los vínculos
// familiares (SireCode/DamCode/MateCode) son referencias débiles por código,
// no por id: los códigos los escribe una persona y pueden no resolver.
type Breeder struct {
	ID   string
	Code string // único, insensible a mayúsculas y espacios

	Name string
	Sex  Sex // male, female, unknown

	SireCode string // código del padre (opcional)
	DamCode  string // código de la madre (opcional)
	MateCode string // pareja actual; solo tiene sentido para hembras

	ThumbnailURL string
	SeriesID     string
	Notes        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
