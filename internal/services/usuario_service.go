package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/utils"
)

// UsuarioService manages user accounts.
type UsuarioService struct {
	db *gorm.DB
}

// NewUsuarioService constructs a UsuarioService.
func NewUsuarioService(db *gorm.DB) *UsuarioService {
	return &UsuarioService{db: db}
}

// Create persists a new user. The email must be unique, the user type must
// exist, the password is stored hashed and the account starts active.
func (s *UsuarioService) Create(usuario *models.Usuario, senha string) (*models.Usuario, error) {
	if usuario == nil {
		return nil, errs.NewBadRequestError("usuário não pode ser nulo")
	}
	if usuario.Email == "" {
		return nil, errs.NewBadRequestError("email não pode ser nulo ou vazio")
	}
	if senha == "" {
		return nil, errs.NewBadRequestError("senha não pode ser nula ou vazia")
	}
	if usuario.TipoUsuarioID == uuid.Nil {
		return nil, errs.NewBadRequestError("tipo de usuário é obrigatório")
	}

	var existing models.Usuario
	err := s.db.First(&existing, "email = ?", usuario.Email).Error
	if err == nil {
		return nil, errs.NewAlreadyExistsError("Usuário", "email", usuario.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var tipo models.TipoUsuario
	if err := s.db.First(&tipo, "id = ?", usuario.TipoUsuarioID).Error; err != nil {
		return nil, asNotFound(err, "Tipo de usuário", usuario.TipoUsuarioID)
	}

	senhaHash, err := utils.HashPassword(senha)
	if err != nil {
		return nil, err
	}

	usuario.SenhaHash = senhaHash
	usuario.Ativo = true
	if err := s.db.Create(usuario).Error; err != nil {
		return nil, err
	}
	usuario.TipoUsuario = &tipo
	return usuario, nil
}

// Authenticate verifies credentials and returns the user with its type
// loaded. It fails with BadRequest on wrong credentials without revealing
// which part was wrong.
func (s *UsuarioService) Authenticate(email, senha string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.db.Preload("TipoUsuario").First(&usuario, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewBadRequestError("credenciais inválidas")
		}
		return nil, err
	}

	if !usuario.Ativo {
		return nil, errs.NewBadRequestError("usuário desativado")
	}
	if !utils.CheckPassword(usuario.SenhaHash, senha) {
		return nil, errs.NewBadRequestError("credenciais inválidas")
	}
	return &usuario, nil
}

// List returns all users.
func (s *UsuarioService) List() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := s.db.Preload("TipoUsuario").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

// ListAtivos returns only active users.
func (s *UsuarioService) ListAtivos() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := s.db.Preload("TipoUsuario").Find(&usuarios, "ativo = ?", true).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

// Get returns a user by ID.
func (s *UsuarioService) Get(id uuid.UUID) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.db.Preload("TipoUsuario").First(&usuario, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "Usuário", id)
	}
	return &usuario, nil
}

// Update applies the non-zero fields of input to an existing user,
// re-checking email uniqueness and re-hashing a supplied password.
func (s *UsuarioService) Update(id uuid.UUID, input *models.Usuario, senha string) (*models.Usuario, error) {
	usuario, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" {
		var existing models.Usuario
		err := s.db.First(&existing, "email = ?", input.Email).Error
		if err == nil && existing.ID != id {
			return nil, errs.NewAlreadyExistsError("Usuário", "email", input.Email)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		usuario.Email = input.Email
	}

	if input.TipoUsuarioID != uuid.Nil {
		var tipo models.TipoUsuario
		if err := s.db.First(&tipo, "id = ?", input.TipoUsuarioID).Error; err != nil {
			return nil, asNotFound(err, "Tipo de usuário", input.TipoUsuarioID)
		}
		usuario.TipoUsuarioID = tipo.ID
		usuario.TipoUsuario = &tipo
	}

	if input.Nome != "" {
		usuario.Nome = input.Nome
	}
	if input.Telefone != "" {
		usuario.Telefone = input.Telefone
	}
	if senha != "" {
		senhaHash, err := utils.HashPassword(senha)
		if err != nil {
			return nil, err
		}
		usuario.SenhaHash = senhaHash
	}

	if err := s.db.Save(usuario).Error; err != nil {
		return nil, err
	}
	return usuario, nil
}

// SetAtivo activates or deactivates an account.
func (s *UsuarioService) SetAtivo(id uuid.UUID, ativo bool) (*models.Usuario, error) {
	usuario, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Usuario{}).Where("id = ?", id).Update("ativo", ativo).Error; err != nil {
		return nil, err
	}
	usuario.Ativo = ativo
	return usuario, nil
}

// Delete removes a user account.
func (s *UsuarioService) Delete(id uuid.UUID) error {
	if err := ensureExists(s.db, &models.Usuario{}, "Usuário", id); err != nil {
		return err
	}
	return s.db.Delete(&models.Usuario{}, "id = ?", id).Error
}
