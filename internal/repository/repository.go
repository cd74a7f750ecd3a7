package repository

import "errors"

// ErrNotFound возвращается из GetByID, если запись отсутствует
var ErrNotFound = errors.New("record not found")
