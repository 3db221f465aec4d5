package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

// CondominioService manages condominium records.
type CondominioService struct {
	db *gorm.DB
}

// NewCondominioService constructs a CondominioService.
func NewCondominioService(db *gorm.DB) *CondominioService {
	return &CondominioService{db: db}
}

// Create persists a new condominium with a globally unique name.
func (s *CondominioService) Create(condominio *models.Condominio) (*models.Condominio, error) {
	if condominio == nil {
		return nil, errs.NewBadRequestError("condomínio não pode ser nulo")
	}
	if condominio.Nome == "" {
		return nil, errs.NewBadRequestError("nome do condomínio não pode ser nulo ou vazio")
	}
	if condominio.Endereco == "" {
		return nil, errs.NewBadRequestError("endereço do condomínio não pode ser nulo ou vazio")
	}

	var existing models.Condominio
	err := s.db.First(&existing, "nome = ?", condominio.Nome).Error
	if err == nil {
		return nil, errs.NewAlreadyExistsError("Condomínio", "nome", condominio.Nome)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(condominio).Error; err != nil {
		return nil, err
	}
	return condominio, nil
}

// List returns all condominiums.
func (s *CondominioService) List() ([]models.Condominio, error) {
	var condominios []models.Condominio
	if err := s.db.Find(&condominios).Error; err != nil {
		return nil, err
	}
	return condominios, nil
}

// Get returns a condominium by ID.
func (s *CondominioService) Get(id uuid.UUID) (*models.Condominio, error) {
	var condominio models.Condominio
	if err := s.db.First(&condominio, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "Condomínio", id)
	}
	return &condominio, nil
}

// Update applies the non-zero fields of input to an existing condominium.
func (s *CondominioService) Update(id uuid.UUID, input *models.Condominio) (*models.Condominio, error) {
	condominio, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Nome != "" {
		var existing models.Condominio
		err := s.db.First(&existing, "nome = ?", input.Nome).Error
		if err == nil && existing.ID != id {
			return nil, errs.NewAlreadyExistsError("Condomínio", "nome", input.Nome)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		condominio.Nome = input.Nome
	}

	if input.Endereco != "" {
		condominio.Endereco = input.Endereco
	}
	if input.Cep != "" {
		condominio.Cep = input.Cep
	}
	if input.Cidade != "" {
		condominio.Cidade = input.Cidade
	}
	if input.Estado != "" {
		condominio.Estado = input.Estado
	}
	if input.Telefone != "" {
		condominio.Telefone = input.Telefone
	}
	if input.Email != "" {
		condominio.Email = input.Email
	}

	if err := s.db.Save(condominio).Error; err != nil {
		return nil, err
	}
	return condominio, nil
}

// Delete removes a condominium unless it still owns lockers.
func (s *CondominioService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var armarios int64
	if err := s.db.Model(&models.Armario{}).Where("condominio_id = ?", id).Count(&armarios).Error; err != nil {
		return err
	}
	if armarios > 0 {
		return errs.NewRelatedResourceError("condomínio", "armários")
	}

	return s.db.Delete(&models.Condominio{}, "id = ?", id).Error
}
