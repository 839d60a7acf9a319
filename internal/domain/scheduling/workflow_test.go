package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/2025renato/agenda-pet-api/internal/httperr"
	"github.com/2025renato/agenda-pet-api/internal/kvstore"
	"github.com/2025renato/agenda-pet-api/internal/models"
	"github.com/2025renato/agenda-pet-api/internal/store"
	"github.com/2025renato/agenda-pet-api/internal/validators"
)

func ana() *models.Client {
	return &models.Client{ID: "1", Name: "Ana", Phone: "123", Address: "Rua A", PetName: "Rex"}
}

func day(offset int) string {
	return validators.FormatDay(time.Now().AddDate(0, 0, offset))
}

func TestWorkflow_RequiresClientBeforeDay(t *testing.T) {
	wf := New()

	err := wf.SelectDay(day(1))
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
	require.Equal(t, StateSelectingClient, wf.State())

	err = wf.SelectClient(nil)
	require.True(t, httperr.IsBusiness(err, "client_required"))
	require.Equal(t, StateSelectingClient, wf.State())

	require.NoError(t, wf.SelectClient(ana()))
	require.Equal(t, StateSelectingDay, wf.State())
}

func TestWorkflow_RejectsYesterday_StateUnchanged(t *testing.T) {
	wf := New()
	require.NoError(t, wf.SelectClient(ana()))

	err := wf.SelectDay(day(-1))
	require.True(t, httperr.IsBusiness(err, "day_in_past"))
	require.Equal(t, StateSelectingDay, wf.State())

	// hoje passa
	require.NoError(t, wf.SelectDay(day(0)))
	require.Equal(t, StateSelectingTimeAndService, wf.State())
}

func TestWorkflow_DayGuards(t *testing.T) {
	tests := []struct {
		name string
		day  string
		code string
	}{
		{"empty day", "", "day_required"},
		{"garbage day", "amanha", "invalid_day"},
		{"wrong format", "01/06/2031", "invalid_day"},
		{"yesterday", day(-1), "day_in_past"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := New()
			require.NoError(t, wf.SelectClient(ana()))

			err := wf.SelectDay(tt.day)
			require.True(t, httperr.IsBusiness(err, tt.code), "want %s, got %v", tt.code, err)
			require.Equal(t, StateSelectingDay, wf.State())
		})
	}
}

func TestWorkflow_RequiresHourAndService(t *testing.T) {
	wf := New()
	require.NoError(t, wf.SelectClient(ana()))
	require.NoError(t, wf.SelectDay(day(1)))

	err := wf.SelectTimeAndService("10:00", "")
	require.True(t, httperr.IsBusiness(err, "service_required"))
	require.Equal(t, StateSelectingTimeAndService, wf.State())

	err = wf.SelectTimeAndService("", "Banho")
	require.True(t, httperr.IsBusiness(err, "hour_required"))

	err = wf.SelectTimeAndService("25:99", "Banho")
	require.True(t, httperr.IsBusiness(err, "invalid_hour"))

	require.NoError(t, wf.SelectTimeAndService("10:00", "Banho"))
	require.Equal(t, StateConfirmingDetails, wf.State())
}

func TestWorkflow_Confirm_PersistsAndTerminates(t *testing.T) {
	appointments := store.NewAppointmentStore(kvstore.NewMemoryStore())
	ctx := context.Background()

	wf := New()
	require.NoError(t, wf.SelectClient(ana()))
	require.NoError(t, wf.SelectDay(day(1)))
	require.NoError(t, wf.SelectTimeAndService("10:00", "Banho"))

	ap, err := wf.Confirm(ctx, appointments)
	require.NoError(t, err)
	require.Equal(t, StateCommitted, wf.State())
	require.Equal(t, "Ana", ap.ClientName)
	require.Equal(t, "Rex", ap.PetName)
	require.Equal(t, "Banho", ap.Service)

	list, err := appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// workflow terminado não confirma de novo
	_, err = wf.Confirm(ctx, appointments)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

// failingKV aceita leituras mas recusa qualquer escrita.
type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) {
	return nil, kvstore.ErrKeyNotFound
}

func (failingKV) Set(context.Context, string, []byte) error {
	return errors.New("storage unavailable")
}

func TestWorkflow_ConfirmStorageFailure_StaysInConfirming(t *testing.T) {
	appointments := store.NewAppointmentStore(failingKV{})

	wf := New()
	require.NoError(t, wf.SelectClient(ana()))
	require.NoError(t, wf.SelectDay(day(1)))
	require.NoError(t, wf.SelectTimeAndService("10:00", "Banho"))

	_, err := wf.Confirm(context.Background(), appointments)
	require.Error(t, err)
	require.Equal(t, StateConfirmingDetails, wf.State())

	// com o armazenamento de volta, a mesma confirmação prossegue
	ok := store.NewAppointmentStore(kvstore.NewMemoryStore())
	_, err = wf.Confirm(context.Background(), ok)
	require.NoError(t, err)
	require.Equal(t, StateCommitted, wf.State())
}
