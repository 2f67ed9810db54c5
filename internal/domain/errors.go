package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrConflict          = errors.New("conflicto de concurrencia, reintente el comando")
	ErrPersistence       = errors.New("almacenamiento no disponible")
	ErrTotalMismatch     = errors.New("el total del pedido no coincide con sus ítems")
)
