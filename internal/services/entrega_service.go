package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/utils"
)

// EntregaService implements the delivery workflow: registering a delivery
// into a free compartment, processing the pickup against the compartment's
// access code, and cancellation. Every mutation runs in a single transaction
// so a delivery is never observable without its occupancy side effect.
type EntregaService struct {
	db *gorm.DB
}

// NewEntregaService constructs an EntregaService.
func NewEntregaService(db *gorm.DB) *EntregaService {
	return &EntregaService{db: db}
}

// Register stores a new delivery and marks the target compartment occupied.
// The courier must hold the Entregador or Administrador role.
func (s *EntregaService) Register(entrega *models.Entrega) (*models.Entrega, error) {
	if entrega == nil {
		return nil, errs.NewBadRequestError("entrega não pode ser nula")
	}
	if entrega.CodigoRastreio == "" {
		return nil, errs.NewBadRequestError("código de rastreio não pode ser nulo ou vazio")
	}
	if entrega.CompartimentoID == uuid.Nil {
		return nil, errs.NewBadRequestError("compartimento é obrigatório")
	}
	if entrega.EntregadorID == uuid.Nil {
		return nil, errs.NewBadRequestError("entregador é obrigatório")
	}
	if entrega.DestinatarioID == uuid.Nil {
		return nil, errs.NewBadRequestError("destinatário é obrigatório")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Entrega
		err := tx.First(&existing, "codigo_rastreio = ?", entrega.CodigoRastreio).Error
		if err == nil {
			return errs.NewAlreadyExistsError("Entrega", "código de rastreio", entrega.CodigoRastreio)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var compartimento models.Compartimento
		if err := tx.First(&compartimento, "id = ?", entrega.CompartimentoID).Error; err != nil {
			return asNotFound(err, "Compartimento", entrega.CompartimentoID)
		}
		if compartimento.Ocupado {
			return errs.NewBadRequestError("o compartimento selecionado já está ocupado")
		}

		var entregador models.Usuario
		if err := tx.Preload("TipoUsuario").First(&entregador, "id = ?", entrega.EntregadorID).Error; err != nil {
			return asNotFound(err, "Entregador", entrega.EntregadorID)
		}

		var destinatario models.Usuario
		if err := tx.First(&destinatario, "id = ?", entrega.DestinatarioID).Error; err != nil {
			return asNotFound(err, "Destinatário", entrega.DestinatarioID)
		}

		role, ok := models.RoleFromTipoUsuario(entregador.TipoUsuario.Nome)
		if !ok || !role.PodeRegistrarEntrega() {
			return errs.NewBadRequestError("o usuário não tem permissão para registrar entregas")
		}

		// The guarded update is what actually claims the compartment; a
		// concurrent Register racing past the read above loses here.
		if err := occupyCompartimento(tx, compartimento.ID); err != nil {
			return err
		}

		entrega.DataEntrega = time.Now()
		entrega.Status = models.EntregaEntregue
		return tx.Create(entrega).Error
	})
	if err != nil {
		return nil, err
	}
	return entrega, nil
}

// RegisterPickup completes a delivery: the supplied code must match the
// compartment's current access code exactly. On success the compartment is
// freed and its code rotated.
func (s *EntregaService) RegisterPickup(id uuid.UUID, codigoAcesso string) (*models.Entrega, error) {
	var entrega models.Entrega
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entrega, "id = ?", id).Error; err != nil {
			return asNotFound(err, "Entrega", id)
		}

		if !entrega.Status.PodeSerRetirada() {
			return errs.NewBadRequestError("esta entrega não está disponível para retirada")
		}

		var compartimento models.Compartimento
		if err := tx.First(&compartimento, "id = ?", entrega.CompartimentoID).Error; err != nil {
			return asNotFound(err, "Compartimento", entrega.CompartimentoID)
		}
		if compartimento.CodigoAcesso != codigoAcesso {
			return errs.NewBadRequestError("código de acesso inválido")
		}

		now := time.Now()
		entrega.DataRetirada = &now
		entrega.Status = models.EntregaRetirada
		if err := tx.Save(&entrega).Error; err != nil {
			return err
		}

		if err := releaseCompartimento(tx, compartimento.ID); err != nil {
			return err
		}
		return rotateCodigoAcesso(tx, compartimento.ID)
	})
	if err != nil {
		return nil, err
	}
	return &entrega, nil
}

// Cancel cancels a delivery that has not yet been picked up. When the
// delivery was already in the compartment, the compartment is freed.
func (s *EntregaService) Cancel(id uuid.UUID) (*models.Entrega, error) {
	var entrega models.Entrega
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entrega, "id = ?", id).Error; err != nil {
			return asNotFound(err, "Entrega", id)
		}

		if !entrega.Status.PodeSerCancelada() {
			return errs.NewBadRequestError("esta entrega não pode ser cancelada")
		}

		estavaNoCompartimento := entrega.Status == models.EntregaEntregue
		entrega.Status = models.EntregaCancelada
		if err := tx.Save(&entrega).Error; err != nil {
			return err
		}

		if estavaNoCompartimento {
			return releaseCompartimento(tx, entrega.CompartimentoID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entrega, nil
}

// Get returns a delivery by ID.
func (s *EntregaService) Get(id uuid.UUID) (*models.Entrega, error) {
	var entrega models.Entrega
	if err := s.db.First(&entrega, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "Entrega", id)
	}
	return &entrega, nil
}

// GetByCodigoRastreio returns a delivery by its tracking code.
func (s *EntregaService) GetByCodigoRastreio(codigo string) (*models.Entrega, error) {
	var entrega models.Entrega
	if err := s.db.First(&entrega, "codigo_rastreio = ?", codigo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("Entrega", "código de rastreio", codigo)
		}
		return nil, err
	}
	return &entrega, nil
}

// List returns a page of deliveries, newest first.
func (s *EntregaService) List(p utils.Pagination) ([]models.Entrega, error) {
	var entregas []models.Entrega
	if err := s.db.Order("data_entrega DESC").Offset(p.Offset).Limit(p.Limit).Find(&entregas).Error; err != nil {
		return nil, err
	}
	return entregas, nil
}

// ListByCompartimento returns the deliveries of a compartment.
func (s *EntregaService) ListByCompartimento(compartimentoID uuid.UUID) ([]models.Entrega, error) {
	if err := ensureExists(s.db, &models.Compartimento{}, "Compartimento", compartimentoID); err != nil {
		return nil, err
	}
	var entregas []models.Entrega
	if err := s.db.Find(&entregas, "compartimento_id = ?", compartimentoID).Error; err != nil {
		return nil, err
	}
	return entregas, nil
}

// ListByEntregador returns the deliveries registered by a courier.
func (s *EntregaService) ListByEntregador(entregadorID uuid.UUID) ([]models.Entrega, error) {
	if err := ensureExists(s.db, &models.Usuario{}, "Entregador", entregadorID); err != nil {
		return nil, err
	}
	var entregas []models.Entrega
	if err := s.db.Find(&entregas, "entregador_id = ?", entregadorID).Error; err != nil {
		return nil, err
	}
	return entregas, nil
}

// ListByDestinatario returns the deliveries addressed to a user.
func (s *EntregaService) ListByDestinatario(destinatarioID uuid.UUID) ([]models.Entrega, error) {
	if err := ensureExists(s.db, &models.Usuario{}, "Destinatário", destinatarioID); err != nil {
		return nil, err
	}
	var entregas []models.Entrega
	if err := s.db.Find(&entregas, "destinatario_id = ?", destinatarioID).Error; err != nil {
		return nil, err
	}
	return entregas, nil
}

// ListByStatus filters deliveries by status.
func (s *EntregaService) ListByStatus(status models.StatusEntrega) ([]models.Entrega, error) {
	var entregas []models.Entrega
	if err := s.db.Find(&entregas, "status = ?", status).Error; err != nil {
		return nil, err
	}
	return entregas, nil
}

// ListByPeriodo returns deliveries whose delivery time falls in [inicio, fim].
func (s *EntregaService) ListByPeriodo(inicio, fim time.Time) ([]models.Entrega, error) {
	var entregas []models.Entrega
	if err := s.db.Where("data_entrega BETWEEN ? AND ?", inicio, fim).Find(&entregas).Error; err != nil {
		return nil, err
	}
	return entregas, nil
}
