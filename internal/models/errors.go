package models

import "errors"

var (
	// ErrNormalization - запись из хранилища не соответствует ожидаемой форме
	ErrNormalization = errors.New("normalization error")
	// ErrNotFound - запись с таким идентификатором отсутствует
	ErrNotFound = errors.New("not found")
	// ErrCollaborator - ошибка внешнего хранилища (сеть, БД, кеш)
	ErrCollaborator = errors.New("collaborator error")
	// ErrInvalidArgument - запрос содержит значение вне допустимого набора
	ErrInvalidArgument = errors.New("invalid argument")
)
