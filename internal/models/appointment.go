package models

// Agendamento de banho e tosa. O vínculo com o cliente é por cópia de
// nome/pet, não por id: renomear ou excluir um cliente não altera
// agendamentos já gravados.
type Appointment struct {
	ID         int64  `json:"id"`
	ClientName string `json:"cliente"`
	PetName    string `json:"pet"`
	Day        string `json:"dia"`  // YYYY-MM-DD
	Hour       string `json:"hora"` // HH:MM
	Service    string `json:"servico"`
}

// DayAppointment é a visão "agendamentos do dia": cada registro recebe um
// índice local da sequência e um flag completed, nunca persistidos.
type DayAppointment struct {
	Appointment
	Index     int  `json:"index"`
	Completed bool `json:"completed"`
}
