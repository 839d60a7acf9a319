package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/2025renato/agenda-pet-api/internal/httperr"
	"github.com/2025renato/agenda-pet-api/internal/kvstore"
	"github.com/2025renato/agenda-pet-api/internal/models"
)

func anaInput() ClientInput {
	return ClientInput{
		Name:    "Ana",
		Phone:   "123",
		Address: "Rua A",
		PetName: "Rex",
	}
}

func TestClientStore_SaveWithoutID_GeneratesIDAndAppends(t *testing.T) {
	s := NewClientStore(kvstore.NewMemoryStore())
	ctx := context.Background()

	client, err := s.Save(ctx, anaInput())
	require.NoError(t, err)
	require.NotEmpty(t, client.ID)

	clients, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, "Ana", clients[0].Name)
	require.Equal(t, "123", clients[0].Phone)
	require.Equal(t, "Rua A", clients[0].Address)
	require.Equal(t, "Rex", clients[0].PetName)
}

func TestClientStore_SaveWithID_UpdatesInPlacePreservingOrder(t *testing.T) {
	s := NewClientStore(kvstore.NewMemoryStore())
	ctx := context.Background()

	ana, err := s.Save(ctx, anaInput())
	require.NoError(t, err)

	_, err = s.Save(ctx, ClientInput{Name: "Bruno", Phone: "456", Address: "Rua B", PetName: "Mel"})
	require.NoError(t, err)

	updated := anaInput()
	updated.ID = ana.ID
	updated.Phone = "999"

	_, err = s.Save(ctx, updated)
	require.NoError(t, err)

	clients, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	require.Equal(t, ana.ID, clients[0].ID)
	require.Equal(t, "999", clients[0].Phone)
	require.Equal(t, "Bruno", clients[1].Name)
}

func TestClientStore_RepeatedSaveSameID_DoesNotGrowList(t *testing.T) {
	s := NewClientStore(kvstore.NewMemoryStore())
	ctx := context.Background()

	ana, err := s.Save(ctx, anaInput())
	require.NoError(t, err)

	same := anaInput()
	same.ID = ana.ID

	for i := 0; i < 3; i++ {
		_, err = s.Save(ctx, same)
		require.NoError(t, err)
	}

	clients, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestClientStore_SaveBlankField_RefusedWithoutPersisting(t *testing.T) {
	s := NewClientStore(kvstore.NewMemoryStore())
	ctx := context.Background()

	in := anaInput()
	in.Phone = "   "

	_, err := s.Save(ctx, in)
	require.True(t, httperr.IsBusiness(err, "missing_required_fields"))

	clients, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, clients)
}

func TestClientStore_GeneratedIDsUnique_EvenWithFrozenClock(t *testing.T) {
	s := NewClientStore(kvstore.NewMemoryStore())
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	ctx := context.Background()

	a, err := s.Save(ctx, anaInput())
	require.NoError(t, err)

	b, err := s.Save(ctx, ClientInput{Name: "Bruno", Phone: "456", Address: "Rua B", PetName: "Mel"})
	require.NoError(t, err)

	require.NotEqual(t, a.ID, b.ID)
}

func TestClientStore_DeleteMissingID_LeavesListUnchanged(t *testing.T) {
	s := NewClientStore(kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := s.Save(ctx, anaInput())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "nao-existe"))

	clients, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestClientStore_Delete_RemovesClient(t *testing.T) {
	s := NewClientStore(kvstore.NewMemoryStore())
	ctx := context.Background()

	ana, err := s.Save(ctx, anaInput())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, ana.ID))

	clients, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, clients)
}

func TestClientStore_Search(t *testing.T) {
	s := NewClientStore(kvstore.NewMemoryStore())

	clients := []models.Client{
		{ID: "1", Name: "Ana", PetName: "Rex"},
		{ID: "2", Name: "Bruno", PetName: "Mel"},
		{ID: "3", Name: "Carla", PetName: "Theodoro"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all in order", "", []string{"1", "2", "3"}},
		{"matches client name", "bruno", []string{"2"}},
		{"matches pet name", "rex", []string{"1"}},
		{"case insensitive", "ANA", []string{"1"}},
		{"substring across entries", "e", []string{"1", "2", "3"}},
		{"no match", "zebra", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Search(clients, tt.query)

			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			if tt.want == nil {
				require.Empty(t, ids)
				return
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestClientStore_List_CorruptPayloadTreatedAsEmpty(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, kvstore.ClientsKey, []byte("{isto nao e json")))

	s := NewClientStore(kv)

	clients, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, clients)

	// um save em seguida descarta o conteúdo corrompido
	_, err = s.Save(ctx, anaInput())
	require.NoError(t, err)

	clients, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}
