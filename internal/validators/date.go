package validators

import "time"

const (
	DayLayout  = "2006-01-02"
	HourLayout = "15:04"
)

// ParseDay interpreta uma data YYYY-MM-DD no fuso local do dispositivo.
func ParseDay(day string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, day, time.Local)
}

// IsHour valida um horário HH:MM.
func IsHour(hour string) bool {
	_, err := time.Parse(HourLayout, hour)
	return err == nil
}

// Midnight trunca para a meia-noite local.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsTodayOrLater compara a data escolhida com hoje na granularidade de
// meia-noite: ontem é recusado, hoje e qualquer dia futuro passam.
func IsTodayOrLater(day time.Time, now time.Time) bool {
	return !Midnight(day).Before(Midnight(now))
}

// FormatDay devolve a data no formato gravado nos agendamentos.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// Today é a data de hoje no fuso local, pronta para comparar com o campo
// dia dos agendamentos.
func Today() string {
	return FormatDay(time.Now())
}
