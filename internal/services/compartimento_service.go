package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

// CompartimentoService owns compartment records, their occupancy flag and
// their access codes.
type CompartimentoService struct {
	db *gorm.DB
}

// NewCompartimentoService constructs a CompartimentoService.
func NewCompartimentoService(db *gorm.DB) *CompartimentoService {
	return &CompartimentoService{db: db}
}

// Create persists a new compartment. The number must be unique within the
// locker; an access code is generated when none is supplied.
func (s *CompartimentoService) Create(compartimento *models.Compartimento) (*models.Compartimento, error) {
	if compartimento == nil {
		return nil, errs.NewBadRequestError("compartimento não pode ser nulo")
	}
	if compartimento.Numero == "" {
		return nil, errs.NewBadRequestError("número do compartimento não pode ser nulo ou vazio")
	}
	if compartimento.ArmarioID == uuid.Nil {
		return nil, errs.NewBadRequestError("armário é obrigatório")
	}

	var armario models.Armario
	if err := s.db.First(&armario, "id = ?", compartimento.ArmarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("Armário", "id", compartimento.ArmarioID)
		}
		return nil, err
	}

	var existing models.Compartimento
	err := s.db.First(&existing, "numero = ? AND armario_id = ?", compartimento.Numero, armario.ID).Error
	if err == nil {
		return nil, errs.NewAlreadyExistsError("Compartimento", "número", compartimento.Numero)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if compartimento.CodigoAcesso == "" {
		code, err := gerarCodigoAcesso()
		if err != nil {
			return nil, err
		}
		compartimento.CodigoAcesso = code
	}

	if err := s.db.Create(compartimento).Error; err != nil {
		return nil, err
	}
	return compartimento, nil
}

// List returns all compartments.
func (s *CompartimentoService) List() ([]models.Compartimento, error) {
	var compartimentos []models.Compartimento
	if err := s.db.Find(&compartimentos).Error; err != nil {
		return nil, err
	}
	return compartimentos, nil
}

// ListByArmario returns the compartments of a locker.
func (s *CompartimentoService) ListByArmario(armarioID uuid.UUID) ([]models.Compartimento, error) {
	if err := ensureExists(s.db, &models.Armario{}, "Armário", armarioID); err != nil {
		return nil, err
	}

	var compartimentos []models.Compartimento
	if err := s.db.Find(&compartimentos, "armario_id = ?", armarioID).Error; err != nil {
		return nil, err
	}
	return compartimentos, nil
}

// ListByOcupado filters compartments by occupancy.
func (s *CompartimentoService) ListByOcupado(ocupado bool) ([]models.Compartimento, error) {
	var compartimentos []models.Compartimento
	if err := s.db.Find(&compartimentos, "ocupado = ?", ocupado).Error; err != nil {
		return nil, err
	}
	return compartimentos, nil
}

// Get returns a compartment by ID.
func (s *CompartimentoService) Get(id uuid.UUID) (*models.Compartimento, error) {
	var compartimento models.Compartimento
	if err := s.db.First(&compartimento, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("Compartimento", "id", id)
		}
		return nil, err
	}
	return &compartimento, nil
}

// Update applies the non-zero fields of input to an existing compartment,
// re-checking number uniqueness within the (possibly new) locker.
func (s *CompartimentoService) Update(id uuid.UUID, input *models.Compartimento) (*models.Compartimento, error) {
	compartimento, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Numero != "" {
		armarioID := compartimento.ArmarioID
		if input.ArmarioID != uuid.Nil {
			armarioID = input.ArmarioID
		}

		var existing models.Compartimento
		err := s.db.First(&existing, "numero = ? AND armario_id = ?", input.Numero, armarioID).Error
		if err == nil && existing.ID != id {
			return nil, errs.NewAlreadyExistsError("Compartimento", "número", input.Numero)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		compartimento.Numero = input.Numero
	}

	if input.ArmarioID != uuid.Nil {
		var armario models.Armario
		if err := s.db.First(&armario, "id = ?", input.ArmarioID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NewNotFoundError("Armário", "id", input.ArmarioID)
			}
			return nil, err
		}
		compartimento.ArmarioID = armario.ID
	}

	if input.Tamanho != "" {
		compartimento.Tamanho = input.Tamanho
	}
	if input.CodigoAcesso != "" {
		compartimento.CodigoAcesso = input.CodigoAcesso
	}

	if err := s.db.Save(compartimento).Error; err != nil {
		return nil, err
	}
	return compartimento, nil
}

// Delete removes a compartment unless deliveries reference it.
func (s *CompartimentoService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var entregas int64
	if err := s.db.Model(&models.Entrega{}).Where("compartimento_id = ?", id).Count(&entregas).Error; err != nil {
		return err
	}
	if entregas > 0 {
		return errs.NewRelatedResourceError("compartimento", "entregas")
	}

	return s.db.Delete(&models.Compartimento{}, "id = ?", id).Error
}

// SetOccupied sets the occupancy flag. Related deliveries and reservations
// are the caller's responsibility.
func (s *CompartimentoService) SetOccupied(id uuid.UUID, ocupado bool) (*models.Compartimento, error) {
	compartimento, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(compartimento).Update("ocupado", ocupado).Error; err != nil {
		return nil, err
	}
	compartimento.Ocupado = ocupado
	return compartimento, nil
}

// RegenerateAccessCode assigns a fresh random 6-digit code.
func (s *CompartimentoService) RegenerateAccessCode(id uuid.UUID) (*models.Compartimento, error) {
	compartimento, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	code, err := gerarCodigoAcesso()
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(compartimento).Update("codigo_acesso", code).Error; err != nil {
		return nil, err
	}
	compartimento.CodigoAcesso = code
	return compartimento, nil
}

// occupyCompartimento flips ocupado false→true atomically. A concurrent
// allocation that wins the race leaves zero affected rows here, so the
// loser fails instead of double-booking the compartment.
func occupyCompartimento(tx *gorm.DB, id uuid.UUID) error {
	res := tx.Model(&models.Compartimento{}).
		Where("id = ? AND ocupado = ?", id, false).
		Update("ocupado", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewBadRequestError("o compartimento selecionado já está ocupado")
	}
	return nil
}

// releaseCompartimento clears the occupancy flag.
func releaseCompartimento(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&models.Compartimento{}).
		Where("id = ?", id).
		Update("ocupado", false).Error
}

// rotateCodigoAcesso assigns a fresh access code inside a workflow transaction.
func rotateCodigoAcesso(tx *gorm.DB, id uuid.UUID) error {
	code, err := gerarCodigoAcesso()
	if err != nil {
		return err
	}
	return tx.Model(&models.Compartimento{}).
		Where("id = ?", id).
		Update("codigo_acesso", code).Error
}

// gerarCodigoAcesso returns a random decimal code in [100000, 999999].
func gerarCodigoAcesso() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", 100000+n.Int64()), nil
}
