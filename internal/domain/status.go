package domain

import "fmt"

// PayoutStatus представляет статус выплаты
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "PENDING"
	PayoutStatusCompleted PayoutStatus = "COMPLETED"
	PayoutStatusRejected  PayoutStatus = "REJECTED"
)

// Treatment представляет визуальное оформление статуса
type Treatment string

const (
	TreatmentWarning Treatment = "warning"
	TreatmentSuccess Treatment = "success"
	TreatmentDanger  Treatment = "danger"
)

// StatusPresentation описывает, как показывать статус выплаты
type StatusPresentation struct {
	Label     string    `json:"label"`
	Treatment Treatment `json:"treatment"`
	Deletable bool      `json:"deletable"`
	Terminal  bool      `json:"terminal"`
}

var statusPresentations = map[PayoutStatus]StatusPresentation{
	PayoutStatusPending:   {Label: "Pending", Treatment: TreatmentWarning, Deletable: true},
	PayoutStatusCompleted: {Label: "Completed", Treatment: TreatmentSuccess, Terminal: true},
	PayoutStatusRejected:  {Label: "Rejected", Treatment: TreatmentDanger, Terminal: true},
}

// Valid проверяет, что статус известен
func (s PayoutStatus) Valid() bool {
	_, ok := statusPresentations[s]
	return ok
}

// Presentation возвращает оформление статуса.
// Для неизвестного статуса возвращается ErrUnknownStatus, значения по умолчанию нет.
func (s PayoutStatus) Presentation() (StatusPresentation, error) {
	p, ok := statusPresentations[s]
	if !ok {
		return StatusPresentation{}, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return p, nil
}

// CanTransition проверяет допустимость перехода между статусами.
// Из PENDING можно перейти только в COMPLETED или REJECTED, оба конечные.
func CanTransition(from, to PayoutStatus) bool {
	return from == PayoutStatusPending && (to == PayoutStatusCompleted || to == PayoutStatusRejected)
}
