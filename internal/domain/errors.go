package domain

import "errors"

// Ошибки мерчантов и выплат
var (
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrPayoutNotFound   = errors.New("payout not found")
	ErrUnknownStatus    = errors.New("unknown payout status")
)

// Ошибки чтения и команд
var (
	ErrSuperseded      = errors.New("request superseded by a newer one")
	ErrCommandInFlight = errors.New("command already in flight")

	// ErrCommandUnconfirmed означает, что сервис выплат принял команду (2xx),
	// но ее результат прочитать не удалось. Повторять команду нельзя.
	ErrCommandUnconfirmed = errors.New("payout accepted by the ledger but its response could not be read, refresh before resubmitting")
)
