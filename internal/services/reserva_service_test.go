package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

func novaReserva(f fixtures) *models.Reserva {
	return &models.Reserva{
		DataInicio:      time.Now().Add(time.Hour),
		DataFim:         time.Now().Add(24 * time.Hour),
		CompartimentoID: f.Compartimento.ID,
		UsuarioID:       f.Cliente.ID,
	}
}

func TestReservaCreate(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservaService(db)

	reserva, err := svc.Create(novaReserva(f))
	require.NoError(t, err)
	assert.Equal(t, models.ReservaConfirmada, reserva.Status)

	compartimento := reloadCompartimento(t, db, &f)
	assert.True(t, compartimento.Ocupado)
}

func TestReservaCreateValidations(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservaService(db)

	t.Run("inicio posterior ao fim", func(t *testing.T) {
		reserva := novaReserva(f)
		reserva.DataInicio = time.Now().Add(48 * time.Hour)
		reserva.DataFim = time.Now().Add(24 * time.Hour)
		_, err := svc.Create(reserva)
		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("inicio posterior ao fim mesmo com referencias invalidas", func(t *testing.T) {
		// The window check runs before any lookup, so it wins even when
		// the compartment and user do not exist.
		reserva := &models.Reserva{
			DataInicio:      time.Now().Add(48 * time.Hour),
			DataFim:         time.Now().Add(24 * time.Hour),
			CompartimentoID: uuid.New(),
			UsuarioID:       uuid.New(),
		}
		_, err := svc.Create(reserva)
		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("inicio no passado", func(t *testing.T) {
		reserva := novaReserva(f)
		reserva.DataInicio = time.Now().Add(-time.Hour)
		_, err := svc.Create(reserva)
		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("datas nulas", func(t *testing.T) {
		reserva := novaReserva(f)
		reserva.DataInicio = time.Time{}
		_, err := svc.Create(reserva)
		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("compartimento inexistente", func(t *testing.T) {
		reserva := novaReserva(f)
		reserva.CompartimentoID = uuid.New()
		_, err := svc.Create(reserva)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		reserva := novaReserva(f)
		reserva.UsuarioID = uuid.New()
		_, err := svc.Create(reserva)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	compartimento := reloadCompartimento(t, db, &f)
	assert.False(t, compartimento.Ocupado)
}

func TestReservaCreateCompartimentoOcupado(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservaService(db)

	_, err := svc.Create(novaReserva(f))
	require.NoError(t, err)

	_, err = svc.Create(novaReserva(f))
	assert.ErrorIs(t, err, errs.ErrBadRequest)

	var count int64
	require.NoError(t, db.Model(&models.Reserva{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestReservaCancel(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservaService(db)

	reserva, err := svc.Create(novaReserva(f))
	require.NoError(t, err)

	cancelada, err := svc.Cancel(reserva.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservaCancelada, cancelada.Status)

	compartimento := reloadCompartimento(t, db, &f)
	assert.False(t, compartimento.Ocupado)

	// A cancelled reservation is terminal.
	_, err = svc.Cancel(reserva.ID)
	assert.ErrorIs(t, err, errs.ErrBadRequest)
	_, err = svc.Complete(reserva.ID)
	assert.ErrorIs(t, err, errs.ErrBadRequest)
}

func TestReservaComplete(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservaService(db)

	reserva, err := svc.Create(novaReserva(f))
	require.NoError(t, err)

	concluida, err := svc.Complete(reserva.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservaConcluida, concluida.Status)

	compartimento := reloadCompartimento(t, db, &f)
	assert.False(t, compartimento.Ocupado)

	_, err = svc.Cancel(reserva.ID)
	assert.ErrorIs(t, err, errs.ErrBadRequest)
}

func TestReservaNotFound(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	svc := NewReservaService(db)

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.Cancel(uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.Complete(uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestReservaListings(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservaService(db)

	reserva, err := svc.Create(novaReserva(f))
	require.NoError(t, err)

	porCompartimento, err := svc.ListByCompartimento(f.Compartimento.ID)
	require.NoError(t, err)
	assert.Len(t, porCompartimento, 1)

	porUsuario, err := svc.ListByUsuario(f.Cliente.ID)
	require.NoError(t, err)
	assert.Len(t, porUsuario, 1)

	confirmadas, err := svc.ListByStatus(models.ReservaConfirmada)
	require.NoError(t, err)
	assert.Len(t, confirmadas, 1)

	periodo, err := svc.ListByPeriodo(reserva.DataInicio.Add(-time.Hour), reserva.DataInicio.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, periodo, 1)

	_, err = svc.ListByUsuario(uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.ListByCompartimento(uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
