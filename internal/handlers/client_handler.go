package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2025renato/agenda-pet-api/internal/audit"
	"github.com/2025renato/agenda-pet-api/internal/httperr"
	"github.com/2025renato/agenda-pet-api/internal/httpresp"
	"github.com/2025renato/agenda-pet-api/internal/store"
)

type ClientHandler struct {
	clients *store.ClientStore
	audit   *audit.Dispatcher
}

func NewClientHandler(clients *store.ClientStore, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{
		clients: clients,
		audit:   audit,
	}
}

// ======================================================
// LIST (COM BUSCA OPCIONAL)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao carregar clientes.")
		return
	}

	httpresp.List(c, h.clients.Search(clients, c.Query("query")))
}

// ======================================================
// SAVE (CREATE OU UPDATE)
// ======================================================

func (h *ClientHandler) Save(c *gin.Context) {
	var in store.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	creating := in.ID == ""

	client, err := h.clients.Save(c.Request.Context(), in)
	if err != nil {
		if httperr.IsBusiness(err, "missing_required_fields") {
			httperr.BadRequest(c, "missing_required_fields", "Por favor, preencha todos os campos.")
			return
		}
		httperr.Internal(c, "failed_to_save_client", "Erro ao salvar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_saved",
		Entity:   "client",
		EntityID: client.ID,
	})

	if creating {
		httpresp.Created(c, client)
		return
	}
	httpresp.OK(c, client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}
