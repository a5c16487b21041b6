package model

import (
	"estetica/shared/model"
	"time"
)

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID        = "id"
	FieldName      = "name"
	FieldCPF       = "cpf"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldBirthDate = "birth_date"
	FieldStatus    = "status"
	FieldLastVisit = "last_visit"
	FieldNotes     = "notes"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Client struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	CPF       string     `db:"cpf"`
	Email     string     `db:"email"`
	Phone     string     `db:"phone"`
	BirthDate *time.Time `db:"birth_date"`
	Status    string     `db:"status"`
	LastVisit *time.Time `db:"last_visit"`
	Notes     string     `db:"notes"`
	model.Metadata
}
