package dto

import (
	"estetica/internal/domains/client/model"
	"estetica/shared"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	gModel "estetica/shared/model"
	"estetica/shared/timezone"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	Name      string `json:"name"       validate:"required,max=150"`
	CPF       string `json:"cpf"        validate:"omitempty,len=11"`
	Email     string `json:"email"      validate:"omitempty,email,max=100"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
	BirthDate string `json:"birth_date" validate:"omitempty"`
	Notes     string `json:"notes"      validate:"omitempty"`
}

func (c *CreateClientRequest) ToModel(user string) (model.Client, error) {
	client := model.Client{
		ID:     uuid.NewString(),
		Name:   c.Name,
		CPF:    c.CPF,
		Email:  c.Email,
		Phone:  c.Phone,
		Status: model.StatusActive,
		Notes:  c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.BirthDate != "" {
		birthDate, err := timezone.Parse(constant.DateOnlyFormat, c.BirthDate)
		if err != nil {
			return model.Client{}, err
		}

		client.BirthDate = &birthDate
	}

	return client, nil
}

type UpdateClientRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=150"`
	Email  string `db:"email"  json:"email"  validate:"omitempty,email,max=100"`
	Phone  string `db:"phone"  json:"phone"  validate:"omitempty,max=20"`
	Status string `db:"status" json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Notes  string `db:"notes"  json:"notes"  validate:"omitempty"`
}

type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date,omitempty"`
	Status    string `json:"status"`
	LastVisit string `json:"last_visit,omitempty"`
	Notes     string `json:"notes"`
	gDto.Metadata
}

func (r *ClientResponse) FromModel(model model.Client) {
	r.ID = model.ID
	r.Name = model.Name
	r.CPF = model.CPF
	r.Email = model.Email
	r.Phone = model.Phone
	r.Status = model.Status
	r.Notes = model.Notes

	if model.BirthDate != nil {
		r.BirthDate = model.BirthDate.Format(constant.DateOnlyFormat)
	}

	if model.LastVisit != nil {
		r.LastVisit = model.LastVisit.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}
