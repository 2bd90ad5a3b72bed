package service

import (
	"fmt"
	"net/http"
)

// CommandError представляет отказ внешнего сервиса в выполнении команды.
// Message передается оператору без изменений.
type CommandError struct {
	StatusCode int
	Message    string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Rejected сообщает, что сервис отклонил команду (4xx), а не упал
func (e *CommandError) Rejected() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// QueryError представляет ошибку чтения данных
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
