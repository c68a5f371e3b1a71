package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/logging"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// Session returns middleware that resolves the session cookie named
// cookieName into an authenticated caller. It obtains a fresh access token
// (refreshing first when needed), stores it for outbound backend calls via
// httpclient.WithAccessToken and stores the principal via auth.WithPrincipal.
//
// Requests without a usable session get a 401 problem response and the
// cookie is cleared. A session in refresh cooldown gets a 429 with
// Retry-After.
func Session(store ports.SessionStore, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ck, err := r.Cookie(cookieName)
			if err != nil || ck.Value == "" {
				dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
				return
			}
			ctx := r.Context()

			token, err := store.AccessToken(ctx, ck.Value)
			if err != nil {
				rejectSession(w, r, cookieName, err)
				return
			}
			info, err := store.Get(ck.Value)
			if err != nil {
				rejectSession(w, r, cookieName, err)
				return
			}

			ctx = httpclient.WithAccessToken(ctx, token)
			ctx = auth.WithPrincipal(ctx, auth.Principal{SessionID: info.ID, User: info.User})
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(
				slog.String("user_id", info.User.ID),
			))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectSession(w http.ResponseWriter, r *http.Request, cookieName string, err error) {
	if errors.Is(err, domain.ErrUnauthenticated) {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	} else {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "session token unavailable",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	dto.WriteErrorResponse(w, r, err)
}
