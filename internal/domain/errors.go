package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores del motor de ingreso de mercancía.
	ErrInvalidQuantity         = errors.New("cantidad canónica inválida")
	ErrUndefinedPackagingLevel = errors.New("nivel de empaque no definido para el producto")
	ErrMissingRequiredField    = errors.New("campo obligatorio faltante")
	ErrEmptyCart               = errors.New("el carrito de ingreso está vacío")
	ErrCartSubmitting          = errors.New("el ingreso ya está siendo confirmado")
)
