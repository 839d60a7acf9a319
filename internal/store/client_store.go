package store

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/2025renato/agenda-pet-api/internal/httperr"
	"github.com/2025renato/agenda-pet-api/internal/kvstore"
	"github.com/2025renato/agenda-pet-api/internal/models"
)

// ======================================================
// CLIENT STORE
// ======================================================

// ClientStore é o dono exclusivo da lista de clientes persistida na chave
// "@Clientes". A lista inteira é lida e regravada a cada mutação.
type ClientStore struct {
	kv  kvstore.Store
	now func() time.Time
}

func NewClientStore(kv kvstore.Store) *ClientStore {
	return &ClientStore{
		kv:  kv,
		now: time.Now,
	}
}

type ClientInput struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
	PetName string `json:"pet"`
}

// ======================================================
// LIST
// ======================================================

// List devolve a lista completa. Chave ausente ou JSON inválido viram
// lista vazia, nunca erro: o registro corrompido é descartado no próximo
// save.
func (s *ClientStore) List(ctx context.Context) ([]models.Client, error) {
	data, err := s.kv.Get(ctx, kvstore.ClientsKey)
	if err == kvstore.ErrKeyNotFound {
		return []models.Client{}, nil
	}
	if err != nil {
		return nil, err
	}

	var clients []models.Client
	if err := json.Unmarshal(data, &clients); err != nil {
		log.Printf("client store: invalid payload at %q, treating as empty list: %v", kvstore.ClientsKey, err)
		return []models.Client{}, nil
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}

// ======================================================
// SAVE (CREATE OU UPDATE)
// ======================================================

// Save cria (sem id) ou atualiza (com id) um cliente e regrava a lista.
// Atualização preserva a posição original na lista; id desconhecido vira
// append com o próprio id.
func (s *ClientStore) Save(ctx context.Context, in ClientInput) (*models.Client, error) {
	if isBlank(in.Name) || isBlank(in.Phone) || isBlank(in.Address) || isBlank(in.PetName) {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	clients, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	client := models.Client{
		ID:      in.ID,
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		PetName: in.PetName,
	}

	replaced := false
	if client.ID != "" {
		for i := range clients {
			if clients[i].ID == client.ID {
				clients[i] = client
				replaced = true
				break
			}
		}
	} else {
		client.ID = s.nextID(clients)
	}

	if !replaced {
		clients = append(clients, client)
	}

	if err := s.persist(ctx, clients); err != nil {
		return nil, err
	}
	return &client, nil
}

// ======================================================
// DELETE
// ======================================================

// Delete remove o cliente com o id dado; id inexistente não é erro.
// Agendamentos antigos do cliente não são tocados.
func (s *ClientStore) Delete(ctx context.Context, id string) error {
	clients, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	return s.persist(ctx, kept)
}

// ======================================================
// SEARCH
// ======================================================

// Search filtra por substring, sem caso, no nome do cliente ou do pet.
// Consulta vazia devolve a entrada inalterada. Função pura, sem IO.
func (s *ClientStore) Search(clients []models.Client, query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients
	}

	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.PetName), q) {
			out = append(out, c)
		}
	}
	return out
}

// ======================================================
// HELPERS
// ======================================================

func (s *ClientStore) persist(ctx context.Context, clients []models.Client) error {
	data, err := json.Marshal(clients)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.ClientsKey, data)
}

// nextID deriva o id do relógio (milissegundos Unix em texto) e avança
// até não colidir com nenhum id já presente.
func (s *ClientStore) nextID(clients []models.Client) string {
	id := s.now().UnixMilli()
	for taken(clients, strconv.FormatInt(id, 10)) {
		id++
	}
	return strconv.FormatInt(id, 10)
}

func taken(clients []models.Client, id string) bool {
	for _, c := range clients {
		if c.ID == id {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
