package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/2025renato/agenda-pet-api/internal/httperr"
	"github.com/2025renato/agenda-pet-api/internal/models"
	"github.com/2025renato/agenda-pet-api/internal/store"
	"github.com/2025renato/agenda-pet-api/internal/validators"
)

// Workflow coleta cliente → dia → hora/serviço → confirmação e entrega o
// agendamento pronto ao AppointmentStore. Cada guarda que recusa deixa o
// estado exatamente onde estava.
type Workflow struct {
	state State

	client  models.Client
	day     string
	hour    string
	service string

	now func() time.Time
}

func New() *Workflow {
	return &Workflow{
		state: StateSelectingClient,
		now:   time.Now,
	}
}

func (w *Workflow) State() State {
	return w.state
}

// ======================================================
// 1. CLIENTE
// ======================================================

// SelectClient exige um cliente já escolhido por quem chama; a seleção em
// si (lista, busca) fica fora do workflow.
func (w *Workflow) SelectClient(client *models.Client) error {
	if err := requireState(w.state, StateSelectingClient); err != nil {
		return err
	}
	if client == nil || strings.TrimSpace(client.Name) == "" {
		return httperr.ErrBusiness("client_required")
	}

	w.client = *client
	w.state = StateSelectingDay
	return nil
}

// ======================================================
// 2. DIA
// ======================================================

// SelectDay aceita apenas datas de hoje em diante, comparadas à meia-noite
// no fuso local.
func (w *Workflow) SelectDay(day string) error {
	if err := requireState(w.state, StateSelectingDay); err != nil {
		return err
	}
	if strings.TrimSpace(day) == "" {
		return httperr.ErrBusiness("day_required")
	}

	chosen, err := validators.ParseDay(day)
	if err != nil {
		return httperr.ErrBusiness("invalid_day")
	}
	if !validators.IsTodayOrLater(chosen, w.now()) {
		return httperr.ErrBusiness("day_in_past")
	}

	w.day = day
	w.state = StateSelectingTimeAndService
	return nil
}

// ======================================================
// 3. HORA E SERVIÇO
// ======================================================

func (w *Workflow) SelectTimeAndService(hour, service string) error {
	if err := requireState(w.state, StateSelectingTimeAndService); err != nil {
		return err
	}
	if strings.TrimSpace(service) == "" {
		return httperr.ErrBusiness("service_required")
	}
	if strings.TrimSpace(hour) == "" {
		return httperr.ErrBusiness("hour_required")
	}
	if !validators.IsHour(hour) {
		return httperr.ErrBusiness("invalid_hour")
	}

	w.hour = hour
	w.service = service
	w.state = StateConfirmingDetails
	return nil
}

// ======================================================
// 4. CONFIRMAÇÃO
// ======================================================

// Confirm persiste via AppointmentStore. Se a escrita falhar, o estado
// continua em confirmação e o erro sobe; confirmado, o workflow termina.
func (w *Workflow) Confirm(ctx context.Context, appointments *store.AppointmentStore) (*models.Appointment, error) {
	if err := requireState(w.state, StateConfirmingDetails); err != nil {
		return nil, err
	}

	ap, err := appointments.Create(ctx, w.client.Name, w.client.PetName, w.day, w.hour, w.service)
	if err != nil {
		return nil, err
	}

	w.state = StateCommitted
	return ap, nil
}
