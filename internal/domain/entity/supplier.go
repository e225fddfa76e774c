package entity

import "time"

// Supplier representa un proveedor de la farmacia.
type Supplier struct {
	ID         string
	CompanyID  string
	Name       string
	Laboratory string // laboratorio que distribuye, opcional
	Phone      string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
