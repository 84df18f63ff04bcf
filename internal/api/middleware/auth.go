package middleware

import (
	"context"
	"net/http"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
)

type staffIDKey struct{}

// HeaderStaffID заголовок идентификации сотрудника back-office
const HeaderStaffID = "X-Staff-ID"

// Auth проверяет наличие заголовка X-Staff-ID и кладет его значение в контекст
// Аутентификацию как таковую выполняет шлюз перед сервисом, здесь только
// идентификация для журнала отправок
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID := r.Header.Get(HeaderStaffID)
		if staffID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "falta el encabezado X-Staff-ID")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext возвращает ID сотрудника, положенный Auth middleware
func StaffIDFromContext(ctx context.Context) string {
	staffID, _ := ctx.Value(staffIDKey{}).(string)
	return staffID
}
