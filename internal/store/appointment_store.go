package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/2025renato/agenda-pet-api/internal/kvstore"
	"github.com/2025renato/agenda-pet-api/internal/models"
)

// ======================================================
// APPOINTMENT STORE
// ======================================================

// AppointmentStore é o dono exclusivo da lista de agendamentos persistida
// na chave "usuarios" (nome herdado do app mobile). Mesma disciplina do
// ClientStore: leitura e regravação da lista inteira.
type AppointmentStore struct {
	kv  kvstore.Store
	now func() time.Time
}

func NewAppointmentStore(kv kvstore.Store) *AppointmentStore {
	return &AppointmentStore{
		kv:  kv,
		now: time.Now,
	}
}

// AppointmentMatch identifica um agendamento pelos cinco campos visíveis,
// para a tela do dia, onde as linhas são reindexadas e o id original não
// está disponível.
type AppointmentMatch struct {
	ClientName string `json:"cliente"`
	PetName    string `json:"pet"`
	Service    string `json:"servico"`
	Day        string `json:"dia"`
	Hour       string `json:"hora"`
}

// ======================================================
// LIST
// ======================================================

func (s *AppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	data, err := s.kv.Get(ctx, kvstore.AppointmentsKey)
	if err == kvstore.ErrKeyNotFound {
		return []models.Appointment{}, nil
	}
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		log.Printf("appointment store: invalid payload at %q, treating as empty list: %v", kvstore.AppointmentsKey, err)
		return []models.Appointment{}, nil
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}

// ======================================================
// CREATE
// ======================================================

// Create grava um novo agendamento no fim da lista e o devolve. Dia, hora
// e serviço chegam já validados pelo workflow de agendamento; nome e pet
// são copiados do cliente selecionado.
func (s *AppointmentStore) Create(ctx context.Context, clientName, petName, day, hour, service string) (*models.Appointment, error) {
	appointments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	ap := models.Appointment{
		ID:         s.nextID(appointments),
		ClientName: clientName,
		PetName:    petName,
		Day:        day,
		Hour:       hour,
		Service:    service,
	}

	appointments = append(appointments, ap)
	if err := s.persist(ctx, appointments); err != nil {
		return nil, err
	}
	return &ap, nil
}

// ======================================================
// DELETE
// ======================================================

// Delete remove por id; id inexistente não é erro.
func (s *AppointmentStore) Delete(ctx context.Context, id int64) error {
	appointments, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := appointments[:0]
	for _, ap := range appointments {
		if ap.ID != id {
			kept = append(kept, ap)
		}
	}

	return s.persist(ctx, kept)
}

// DeleteByMatch remove os agendamentos iguais ao match nos cinco campos.
func (s *AppointmentStore) DeleteByMatch(ctx context.Context, m AppointmentMatch) error {
	appointments, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := appointments[:0]
	for _, ap := range appointments {
		if ap.ClientName == m.ClientName &&
			ap.PetName == m.PetName &&
			ap.Service == m.Service &&
			ap.Day == m.Day &&
			ap.Hour == m.Hour {
			continue
		}
		kept = append(kept, ap)
	}

	return s.persist(ctx, kept)
}

// ======================================================
// FILTERS (PUROS, SEM IO)
// ======================================================

// FilterByDay devolve os agendamentos do dia, na ordem original, cada um
// com índice local da sequência e completed=false. O flag é transitório:
// recarregar a visão sempre volta para falso.
func (s *AppointmentStore) FilterByDay(appointments []models.Appointment, day string) []models.DayAppointment {
	out := make([]models.DayAppointment, 0, len(appointments))
	for _, ap := range appointments {
		if ap.Day != day {
			continue
		}
		out = append(out, models.DayAppointment{
			Appointment: ap,
			Index:       len(out),
			Completed:   false,
		})
	}
	return out
}

// FilterByClientName devolve os agendamentos com o nome exato do cliente.
func (s *AppointmentStore) FilterByClientName(appointments []models.Appointment, name string) []models.Appointment {
	out := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if ap.ClientName == name {
			out = append(out, ap)
		}
	}
	return out
}

// ======================================================
// HELPERS
// ======================================================

func (s *AppointmentStore) persist(ctx context.Context, appointments []models.Appointment) error {
	data, err := json.Marshal(appointments)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.AppointmentsKey, data)
}

// nextID deriva o id do relógio em milissegundos e salta para depois do
// maior id existente, então criações no mesmo milissegundo não colidem.
func (s *AppointmentStore) nextID(appointments []models.Appointment) int64 {
	id := s.now().UnixMilli()
	for _, ap := range appointments {
		if ap.ID >= id {
			id = ap.ID + 1
		}
	}
	return id
}
