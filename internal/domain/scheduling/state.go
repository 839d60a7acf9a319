package scheduling

import "github.com/2025renato/agenda-pet-api/internal/httperr"

// ===============================
// Workflow State
// ===============================

type State string

const (
	StateSelectingClient         State = "selecting_client"
	StateSelectingDay            State = "selecting_day"
	StateSelectingTimeAndService State = "selecting_time_and_service"
	StateConfirmingDetails       State = "confirming_details"
	StateCommitted               State = "committed"
)

// ===============================
// Guards
// ===============================

// requireState recusa a operação fora do passo esperado. O fluxo é linear
// e sem transição para trás; abandonar o workflow é papel de quem chama.
func requireState(current, expected State) error {
	if current != expected {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
