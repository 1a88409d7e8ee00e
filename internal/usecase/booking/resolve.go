package booking

import (
	"context"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
	"github.com/BruksfildServices01/restaurant-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ResolveBookingInput struct {
	UserID    uint
	FirstName string

	Date string // YYYY-MM-DD
	Slot int
}

// ======================================================
// USE CASE
// ======================================================

// ResolveBooking aplica a política de uma reserva ativa por usuário por dia:
// a primeira requisição cria a linha, as seguintes para o mesmo dia apenas
// atualizam nome e horário (upsert). Conflito de horário entre usuários
// distintos não é verificado.
type ResolveBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewResolveBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *ResolveBooking {
	return &ResolveBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute devolve a reserva persistida e true quando uma linha nova foi criada.
func (uc *ResolveBooking) Execute(
	ctx context.Context,
	in ResolveBookingInput,
) (*models.Booking, bool, error) {

	// --------------------------------------------------
	// 1️⃣ Horário dentro da faixa de atendimento
	// --------------------------------------------------
	slot, err := domain.ValidateSlot(in.Slot)
	if err != nil {
		return nil, false, err
	}

	// --------------------------------------------------
	// 2️⃣ Data obrigatória, no fuso do restaurante
	// --------------------------------------------------
	if in.Date == "" {
		return nil, false, httperr.ErrBusiness("missing_date")
	}

	parsed, err := timezone.ParseDate(in.Date, uc.tz)
	if err != nil {
		return nil, false, httperr.ErrBusiness("invalid_date")
	}
	date := parsed.Format("2006-01-02")

	// --------------------------------------------------
	// 3️⃣ Upsert por (usuário, dia) sob lock de linha
	// --------------------------------------------------
	var result models.Booking
	var created bool

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		existing, err := tx.FindByUserAndDateForUpdate(ctx, in.UserID, date)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.FirstName = in.FirstName
			existing.ReservationSlot = slot

			if err := tx.Update(ctx, existing); err != nil {
				return err
			}

			result = *existing
			created = false
			return nil
		}

		b := models.Booking{
			UserID:          in.UserID,
			FirstName:       in.FirstName,
			ReservationDate: date,
			ReservationSlot: slot,
		}

		if err := tx.Create(ctx, &b); err != nil {
			return err
		}

		result = b
		created = true
		return nil
	})

	if err != nil {
		return nil, false, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	action := "booking_updated"
	if created {
		action = "booking_created"
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   action,
		Entity:   "booking",
		EntityID: &result.ID,
		Metadata: map[string]any{
			"date": date,
			"slot": slot,
		},
	})

	return &result, created, nil
}
