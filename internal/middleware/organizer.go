package middleware

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ContextKey string

const OrganizerIDKey ContextKey = "organizerID"

const organizerSessionKey = "organizerID"

// LoadOrganizer gives every browser session a stable organizer id and puts it
// on the request context. Tournaments belong to the organizer that created
// them.
func LoadOrganizer(sessionManager *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(sessionManager.GetString(r.Context(), organizerSessionKey))
			if err != nil {
				id = uuid.New()
				sessionManager.Put(r.Context(), organizerSessionKey, id.String())
				logrus.WithField("organizer", id).Debug("new organizer session")
			}

			ctx := WithOrganizerID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithOrganizerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, OrganizerIDKey, id)
}

func GetOrganizerID(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(OrganizerIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	id, ok := val.(uuid.UUID)
	return id, ok
}
