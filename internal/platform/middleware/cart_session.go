// Copyright (c) 2026 Featherworks. All rights reserved.

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/featherworks/aviary/internal/platform/constants"
	"github.com/featherworks/aviary/internal/platform/ctxutil"
)

// CartSession guarantees that every request carries an anonymous cart
// session ID.
//
// The ID lives in a long-lived cookie. A missing or empty cookie gets a
// fresh UUIDv7 so that a first "add to cart" lands in a stable session.
// The ID is injected into the request context for the cart handlers.
func CartSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			sessionID := ""
			if cookie, err := request.Cookie(constants.CartSessionCookie); err == nil {
				sessionID = cookie.Value
			}

			if sessionID == "" {
				uuidV7, err := uuid.NewV7()
				if err != nil {
					sessionID = uuid.New().String()
				} else {
					sessionID = uuidV7.String()
				}

				http.SetCookie(writer, &http.Cookie{
					Name:     constants.CartSessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(constants.CartSessionTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := ctxutil.WithCartSession(request.Context(), sessionID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
