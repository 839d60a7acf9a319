package scheduling

// Catálogo fixo do pet shop, igual ao que os pickers do app mostram.
// O workflow não restringe a esses valores; a tela é quem limita.

func Services() []string {
	return []string{"Banho", "Tosa", "Cortar unha"}
}

// Hours é a grade de horários de atendimento, de hora em hora, sem o
// meio-dia (pausa de almoço).
func Hours() []string {
	return []string{
		"09:00", "10:00", "11:00",
		"13:00", "14:00", "15:00", "16:00",
		"17:00", "18:00", "19:00", "20:00", "21:00",
	}
}
