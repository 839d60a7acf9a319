package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/2025renato/agenda-pet-api/internal/audit"
	"github.com/2025renato/agenda-pet-api/internal/httperr"
	"github.com/2025renato/agenda-pet-api/internal/httpresp"
	"github.com/2025renato/agenda-pet-api/internal/store"
	ucSchedule "github.com/2025renato/agenda-pet-api/internal/usecase/schedule"
	"github.com/2025renato/agenda-pet-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	appointments *store.AppointmentStore
	createUC     *ucSchedule.CreateAppointment
	audit        *audit.Dispatcher
	now          func() string
}

func NewAppointmentHandler(
	appointments *store.AppointmentStore,
	createUC *ucSchedule.CreateAppointment,
	audit *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		createUC:     createUC,
		audit:        audit,
		now:          validators.Today,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Service  string `json:"service" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.appointments.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

// ListByDay é a tela "agendamentos de hoje": sem ?date= usa o dia atual.
// Cada item sai com índice da sequência e completed=false.
func (h *AppointmentHandler) ListByDay(c *gin.Context) {
	day := c.Query("date")
	if day == "" {
		day = h.now()
	} else if _, err := validators.ParseDay(day); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	appointments, err := h.appointments.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.List(c, h.appointments.FilterByDay(appointments, day))
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		httperr.BadRequest(c, "missing_name", "Nome do cliente obrigatório.")
		return
	}

	appointments, err := h.appointments.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.List(c, h.appointments.FilterByClientName(appointments, name))
}

// ======================================================
// CREATE (VIA WORKFLOW)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucSchedule.CreateAppointmentInput{
		ClientID: req.ClientID,
		Day:      req.Date,
		Hour:     req.Time,
		Service:  req.Service,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func writeScheduleError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "failed_to_create_appointment", "Não foi possível salvar o agendamento.")
		return
	}

	switch code {
	case "client_not_found":
		httperr.NotFound(c, code, "Cliente não encontrado.")
	case "day_required":
		httperr.BadRequest(c, code, "Selecione uma data para continuar!")
	case "invalid_day":
		httperr.BadRequest(c, code, "Data inválida.")
	case "day_in_past":
		httperr.BadRequest(c, code, "Escolha uma data igual ou posterior a hoje!")
	case "service_required":
		httperr.BadRequest(c, code, "Selecione um serviço!")
	case "hour_required":
		httperr.BadRequest(c, code, "Selecione um horário para continuar!")
	case "invalid_hour":
		httperr.BadRequest(c, code, "Horário inválido.")
	default:
		httperr.BadRequest(c, code, "Agendamento recusado.")
	}
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.appointments.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Não foi possível excluir o agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: c.Param("id"),
	})

	c.Status(http.StatusNoContent)
}

// DeleteByMatch atende a tela do dia, que reindexa as linhas e perde o id
// original: a exclusão casa pelos cinco campos visíveis.
func (h *AppointmentHandler) DeleteByMatch(c *gin.Context) {
	var match store.AppointmentMatch
	if err := c.ShouldBindJSON(&match); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.appointments.DeleteByMatch(c.Request.Context(), match); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Não foi possível excluir o agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		Metadata: match,
	})

	c.Status(http.StatusNoContent)
}
