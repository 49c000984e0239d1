// Package handlers contains the HTTP route handlers for the starter API.
// Each handler performs exactly one unit of work against the database pool and
// returns either a JSON body or an *ErrorResponse.
//
// The pool is injected once through Handler rather than read from a global, so tests
// can hand in their own database and clock.
package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
)

// Handler holds the dependencies shared by every route.
type Handler struct {
	DB  *gorm.DB         // Shared pool handle; each query checks out a connection and returns it
	Now func() time.Time // Clock used for response timestamps
}

// New returns a Handler using db and the wall clock.
func New(db *gorm.DB) *Handler {
	return &Handler{DB: db, Now: time.Now}
}

// Register adds the API operations to api. huma derives the OpenAPI document
// from these registrations, so paths, tags and response types here are the public contract.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "health-check",
		Method:        http.MethodGet,
		Path:          "/api/v1/health",
		Summary:       "Health check",
		Description:   "Runs a trivial query against the database to confirm the service is live.",
		Tags:          []string{"health"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusInternalServerError},
	}, h.Health)

	huma.Register(api, huma.Operation{
		OperationID:   "db-demo",
		Method:        http.MethodPost,
		Path:          "/api/v1/db-demo",
		Summary:       "Database demo",
		Description:   "Inserts a demo record and returns the ten most recent records, newest first.",
		Tags:          []string{"database"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusInternalServerError},
	}, h.DemoInsertAndList)
}

func (h *Handler) now() time.Time {
	return h.Now().UTC()
}
