package entity

import "time"

// Contract vincula una empresa a un plan con ventana de vigencia.
type Contract struct {
	ID              int64
	CompanyID       int64
	Plan            int
	TermDays        int // tempo de vigência
	StartDate       time.Time
	EndDate         time.Time
	LastPaymentDate *time.Time
	Paid            bool
	Active          bool
}

// planSeats cantidad máxima de usuarios por plan.
var planSeats = map[int]int{
	1: 1,
	2: 3,
	3: 5,
	4: 10,
	5: 25,
}

// PlanSeatLimit devuelve cuántos usuarios admite el plan. ok=false si el plan no existe.
func PlanSeatLimit(plan int) (limit int, ok bool) {
	limit, ok = planSeats[plan]
	return limit, ok
}

// ContractWindow calcula inicio y término a partir del día de referencia y la duración en días.
func ContractWindow(today time.Time, termDays int) (start, end time.Time) {
	start = DateOnly(today)
	return start, start.AddDate(0, 0, termDays)
}

// CoversDate informa si el contrato está activo y vigente en la fecha dada.
func (c *Contract) CoversDate(day time.Time) bool {
	d := DateOnly(day)
	return c.Active && !d.Before(c.StartDate) && !d.After(c.EndDate)
}

// DateOnly trunca a medianoche UTC conservando año/mes/día.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
