package views

import (
	"context"

	"github.com/AdamBeresnev/padel-rounds/internal/middleware"
	"github.com/google/uuid"
)

func GetOrganizerID(ctx context.Context) uuid.UUID {
	id, _ := middleware.GetOrganizerID(ctx)
	return id
}
