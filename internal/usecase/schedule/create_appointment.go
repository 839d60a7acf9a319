package schedule

import (
	"context"
	"strconv"

	"github.com/2025renato/agenda-pet-api/internal/audit"
	"github.com/2025renato/agenda-pet-api/internal/domain/scheduling"
	"github.com/2025renato/agenda-pet-api/internal/httperr"
	"github.com/2025renato/agenda-pet-api/internal/models"
	"github.com/2025renato/agenda-pet-api/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID string

	Day     string
	Hour    string
	Service string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment percorre o workflow de agendamento de ponta a ponta:
// cliente → dia → hora/serviço → confirmação.
type CreateAppointment struct {
	clients      *store.ClientStore
	appointments *store.AppointmentStore
	audit        *audit.Dispatcher
}

func NewCreateAppointment(
	clients *store.ClientStore,
	appointments *store.AppointmentStore,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		clients:      clients,
		appointments: appointments,
		audit:        audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Cliente selecionado
	// --------------------------------------------------
	clients, err := uc.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	var client *models.Client
	for i := range clients {
		if clients[i].ID == in.ClientID {
			client = &clients[i]
			break
		}
	}
	if client == nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// --------------------------------------------------
	// 2. Workflow guiado até a confirmação
	// --------------------------------------------------
	wf := scheduling.New()

	if err := wf.SelectClient(client); err != nil {
		return nil, err
	}
	if err := wf.SelectDay(in.Day); err != nil {
		return nil, err
	}
	if err := wf.SelectTimeAndService(in.Hour, in.Service); err != nil {
		return nil, err
	}

	ap, err := wf.Confirm(ctx, uc.appointments)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: strconv.FormatInt(ap.ID, 10),
		Metadata: map[string]any{
			"cliente": ap.ClientName,
			"dia":     ap.Day,
			"hora":    ap.Hour,
		},
	})

	return ap, nil
}
