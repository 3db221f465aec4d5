package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/utils"
)

// ReservaService implements the reservation workflow: booking a compartment
// for a future window, cancellation and completion, each keeping the
// occupancy flag consistent inside a single transaction.
type ReservaService struct {
	db *gorm.DB
}

// NewReservaService constructs a ReservaService.
func NewReservaService(db *gorm.DB) *ReservaService {
	return &ReservaService{db: db}
}

// Create books a free compartment for a future window and confirms the
// reservation.
func (s *ReservaService) Create(reserva *models.Reserva) (*models.Reserva, error) {
	if reserva == nil {
		return nil, errs.NewBadRequestError("reserva não pode ser nula")
	}
	if reserva.DataInicio.IsZero() {
		return nil, errs.NewBadRequestError("data de início não pode ser nula")
	}
	if reserva.DataFim.IsZero() {
		return nil, errs.NewBadRequestError("data de fim não pode ser nula")
	}
	if reserva.CompartimentoID == uuid.Nil {
		return nil, errs.NewBadRequestError("compartimento é obrigatório")
	}
	if reserva.UsuarioID == uuid.Nil {
		return nil, errs.NewBadRequestError("usuário é obrigatório")
	}
	if reserva.DataInicio.After(reserva.DataFim) {
		return nil, errs.NewBadRequestError("data de início não pode ser posterior à data de fim")
	}
	if reserva.DataInicio.Before(time.Now()) {
		return nil, errs.NewBadRequestError("data de início não pode ser no passado")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var compartimento models.Compartimento
		if err := tx.First(&compartimento, "id = ?", reserva.CompartimentoID).Error; err != nil {
			return asNotFound(err, "Compartimento", reserva.CompartimentoID)
		}

		var usuario models.Usuario
		if err := tx.First(&usuario, "id = ?", reserva.UsuarioID).Error; err != nil {
			return asNotFound(err, "Usuário", reserva.UsuarioID)
		}

		if compartimento.Ocupado {
			return errs.NewBadRequestError("o compartimento selecionado está ocupado")
		}

		if err := occupyCompartimento(tx, compartimento.ID); err != nil {
			return err
		}

		reserva.Status = models.ReservaConfirmada
		return tx.Create(reserva).Error
	})
	if err != nil {
		return nil, err
	}
	return reserva, nil
}

// Cancel cancels a pending or confirmed reservation and frees the
// compartment.
func (s *ReservaService) Cancel(id uuid.UUID) (*models.Reserva, error) {
	var reserva models.Reserva
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reserva, "id = ?", id).Error; err != nil {
			return asNotFound(err, "Reserva", id)
		}

		if !reserva.Status.PodeSerCancelada() {
			return errs.NewBadRequestError("esta reserva não pode ser cancelada")
		}

		reserva.Status = models.ReservaCancelada
		if err := tx.Save(&reserva).Error; err != nil {
			return err
		}
		return releaseCompartimento(tx, reserva.CompartimentoID)
	})
	if err != nil {
		return nil, err
	}
	return &reserva, nil
}

// Complete concludes a confirmed reservation and frees the compartment.
func (s *ReservaService) Complete(id uuid.UUID) (*models.Reserva, error) {
	var reserva models.Reserva
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reserva, "id = ?", id).Error; err != nil {
			return asNotFound(err, "Reserva", id)
		}

		if !reserva.Status.PodeSerConcluida() {
			return errs.NewBadRequestError("esta reserva não pode ser concluída")
		}

		reserva.Status = models.ReservaConcluida
		if err := tx.Save(&reserva).Error; err != nil {
			return err
		}
		return releaseCompartimento(tx, reserva.CompartimentoID)
	})
	if err != nil {
		return nil, err
	}
	return &reserva, nil
}

// Get returns a reservation by ID.
func (s *ReservaService) Get(id uuid.UUID) (*models.Reserva, error) {
	var reserva models.Reserva
	if err := s.db.First(&reserva, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "Reserva", id)
	}
	return &reserva, nil
}

// List returns a page of reservations, newest window first.
func (s *ReservaService) List(p utils.Pagination) ([]models.Reserva, error) {
	var reservas []models.Reserva
	if err := s.db.Order("data_inicio DESC").Offset(p.Offset).Limit(p.Limit).Find(&reservas).Error; err != nil {
		return nil, err
	}
	return reservas, nil
}

// ListByCompartimento returns the reservations of a compartment.
func (s *ReservaService) ListByCompartimento(compartimentoID uuid.UUID) ([]models.Reserva, error) {
	if err := ensureExists(s.db, &models.Compartimento{}, "Compartimento", compartimentoID); err != nil {
		return nil, err
	}
	var reservas []models.Reserva
	if err := s.db.Find(&reservas, "compartimento_id = ?", compartimentoID).Error; err != nil {
		return nil, err
	}
	return reservas, nil
}

// ListByUsuario returns the reservations requested by a user.
func (s *ReservaService) ListByUsuario(usuarioID uuid.UUID) ([]models.Reserva, error) {
	if err := ensureExists(s.db, &models.Usuario{}, "Usuário", usuarioID); err != nil {
		return nil, err
	}
	var reservas []models.Reserva
	if err := s.db.Find(&reservas, "usuario_id = ?", usuarioID).Error; err != nil {
		return nil, err
	}
	return reservas, nil
}

// ListByStatus filters reservations by status.
func (s *ReservaService) ListByStatus(status models.StatusReserva) ([]models.Reserva, error) {
	var reservas []models.Reserva
	if err := s.db.Find(&reservas, "status = ?", status).Error; err != nil {
		return nil, err
	}
	return reservas, nil
}

// ListByPeriodo returns reservations starting within [inicio, fim].
func (s *ReservaService) ListByPeriodo(inicio, fim time.Time) ([]models.Reserva, error) {
	var reservas []models.Reserva
	if err := s.db.Where("data_inicio BETWEEN ? AND ?", inicio, fim).Find(&reservas).Error; err != nil {
		return nil, err
	}
	return reservas, nil
}
