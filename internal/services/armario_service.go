package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

// ArmarioService manages locker records.
type ArmarioService struct {
	db *gorm.DB
}

// NewArmarioService constructs an ArmarioService.
func NewArmarioService(db *gorm.DB) *ArmarioService {
	return &ArmarioService{db: db}
}

// Create persists a new locker. The identification must be unique within the
// condominium.
func (s *ArmarioService) Create(armario *models.Armario) (*models.Armario, error) {
	if armario == nil {
		return nil, errs.NewBadRequestError("armário não pode ser nulo")
	}
	if armario.Identificacao == "" {
		return nil, errs.NewBadRequestError("identificação do armário não pode ser nula ou vazia")
	}
	if armario.CondominioID == uuid.Nil {
		return nil, errs.NewBadRequestError("condomínio é obrigatório")
	}

	var condominio models.Condominio
	if err := s.db.First(&condominio, "id = ?", armario.CondominioID).Error; err != nil {
		return nil, asNotFound(err, "Condomínio", armario.CondominioID)
	}

	var existing models.Armario
	err := s.db.First(&existing, "identificacao = ? AND condominio_id = ?", armario.Identificacao, condominio.ID).Error
	if err == nil {
		return nil, errs.NewAlreadyExistsError("Armário", "identificação", armario.Identificacao)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(armario).Error; err != nil {
		return nil, err
	}
	return armario, nil
}

// List returns all lockers.
func (s *ArmarioService) List() ([]models.Armario, error) {
	var armarios []models.Armario
	if err := s.db.Find(&armarios).Error; err != nil {
		return nil, err
	}
	return armarios, nil
}

// ListByCondominio returns the lockers of a condominium.
func (s *ArmarioService) ListByCondominio(condominioID uuid.UUID) ([]models.Armario, error) {
	if err := ensureExists(s.db, &models.Condominio{}, "Condomínio", condominioID); err != nil {
		return nil, err
	}
	var armarios []models.Armario
	if err := s.db.Find(&armarios, "condominio_id = ?", condominioID).Error; err != nil {
		return nil, err
	}
	return armarios, nil
}

// Get returns a locker by ID.
func (s *ArmarioService) Get(id uuid.UUID) (*models.Armario, error) {
	var armario models.Armario
	if err := s.db.First(&armario, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "Armário", id)
	}
	return &armario, nil
}

// Update applies the non-zero fields of input to an existing locker,
// re-checking identification uniqueness within the condominium.
func (s *ArmarioService) Update(id uuid.UUID, input *models.Armario) (*models.Armario, error) {
	armario, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Identificacao != "" {
		condominioID := armario.CondominioID
		if input.CondominioID != uuid.Nil {
			condominioID = input.CondominioID
		}

		var existing models.Armario
		err := s.db.First(&existing, "identificacao = ? AND condominio_id = ?", input.Identificacao, condominioID).Error
		if err == nil && existing.ID != id {
			return nil, errs.NewAlreadyExistsError("Armário", "identificação", input.Identificacao)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		armario.Identificacao = input.Identificacao
	}

	if input.CondominioID != uuid.Nil {
		var condominio models.Condominio
		if err := s.db.First(&condominio, "id = ?", input.CondominioID).Error; err != nil {
			return nil, asNotFound(err, "Condomínio", input.CondominioID)
		}
		armario.CondominioID = condominio.ID
	}

	if input.Localizacao != "" {
		armario.Localizacao = input.Localizacao
	}
	if input.Descricao != "" {
		armario.Descricao = input.Descricao
	}

	if err := s.db.Save(armario).Error; err != nil {
		return nil, err
	}
	return armario, nil
}

// SetAtivo toggles the locker's active flag.
func (s *ArmarioService) SetAtivo(id uuid.UUID, ativo bool) (*models.Armario, error) {
	armario, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(armario).Update("ativo", ativo).Error; err != nil {
		return nil, err
	}
	armario.Ativo = ativo
	return armario, nil
}

// Delete removes a locker unless it still owns compartments.
func (s *ArmarioService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var compartimentos int64
	if err := s.db.Model(&models.Compartimento{}).Where("armario_id = ?", id).Count(&compartimentos).Error; err != nil {
		return err
	}
	if compartimentos > 0 {
		return errs.NewRelatedResourceError("armário", "compartimentos")
	}

	return s.db.Delete(&models.Armario{}, "id = ?", id).Error
}
