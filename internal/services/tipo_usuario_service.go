package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

// TipoUsuarioService manages user type records.
type TipoUsuarioService struct {
	db *gorm.DB
}

// NewTipoUsuarioService constructs a TipoUsuarioService.
func NewTipoUsuarioService(db *gorm.DB) *TipoUsuarioService {
	return &TipoUsuarioService{db: db}
}

// Create persists a new user type with a unique name.
func (s *TipoUsuarioService) Create(tipo *models.TipoUsuario) (*models.TipoUsuario, error) {
	if tipo == nil {
		return nil, errs.NewBadRequestError("tipo de usuário não pode ser nulo")
	}
	if tipo.Nome == "" {
		return nil, errs.NewBadRequestError("nome do tipo de usuário não pode ser nulo ou vazio")
	}

	var existing models.TipoUsuario
	err := s.db.First(&existing, "nome = ?", tipo.Nome).Error
	if err == nil {
		return nil, errs.NewAlreadyExistsError("Tipo de usuário", "nome", tipo.Nome)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(tipo).Error; err != nil {
		return nil, err
	}
	return tipo, nil
}

// List returns all user types.
func (s *TipoUsuarioService) List() ([]models.TipoUsuario, error) {
	var tipos []models.TipoUsuario
	if err := s.db.Find(&tipos).Error; err != nil {
		return nil, err
	}
	return tipos, nil
}

// Get returns a user type by ID.
func (s *TipoUsuarioService) Get(id uuid.UUID) (*models.TipoUsuario, error) {
	var tipo models.TipoUsuario
	if err := s.db.First(&tipo, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "Tipo de usuário", id)
	}
	return &tipo, nil
}

// Update applies the non-zero fields of input to an existing user type.
func (s *TipoUsuarioService) Update(id uuid.UUID, input *models.TipoUsuario) (*models.TipoUsuario, error) {
	tipo, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Nome != "" {
		var existing models.TipoUsuario
		err := s.db.First(&existing, "nome = ?", input.Nome).Error
		if err == nil && existing.ID != id {
			return nil, errs.NewAlreadyExistsError("Tipo de usuário", "nome", input.Nome)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		tipo.Nome = input.Nome
	}

	if input.Descricao != "" {
		tipo.Descricao = input.Descricao
	}

	if err := s.db.Save(tipo).Error; err != nil {
		return nil, err
	}
	return tipo, nil
}

// Delete removes a user type unless users still reference it.
func (s *TipoUsuarioService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var usuarios int64
	if err := s.db.Model(&models.Usuario{}).Where("tipo_usuario_id = ?", id).Count(&usuarios).Error; err != nil {
		return err
	}
	if usuarios > 0 {
		return errs.NewRelatedResourceError("tipo de usuário", "usuários")
	}

	return s.db.Delete(&models.TipoUsuario{}, "id = ?", id).Error
}
