package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/trentd187/fiber-starter/internal/apperr"
	"github.com/trentd187/fiber-starter/internal/models"
)

// DemoSuccessMessage is the message returned by a successful demo call.
const DemoSuccessMessage = "Database demo successful"

// DemoRecord is one row of the demo table as returned by the API.
// It serializes as a two-element array, [id, name], rather than an object.
type DemoRecord struct {
	ID   int64
	Name string
}

// MarshalJSON encodes the record as [id, name].
func (r DemoRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.ID, r.Name})
}

// UnmarshalJSON decodes a [id, name] pair.
func (r *DemoRecord) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &r.ID); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &r.Name)
}

// Schema describes the [id, name] tuple for the OpenAPI document, since huma would
// otherwise document the Go struct as an object.
func (DemoRecord) Schema(huma.Registry) *huma.Schema {
	two := 2
	return &huma.Schema{
		Type:        huma.TypeArray,
		Description: "A demo record as an [id, name] pair",
		MinItems:    &two,
		MaxItems:    &two,
		Items: &huma.Schema{
			OneOf: []*huma.Schema{
				{Type: huma.TypeInteger, Format: "int64"},
				{Type: huma.TypeString},
			},
		},
	}
}

// DbDemoResponse is the body of POST /api/v1/db-demo.
type DbDemoResponse struct {
	Message   string       `json:"message" example:"Database demo successful" doc:"Outcome of the demo"`
	Records   []DemoRecord `json:"records" doc:"Up to ten most recent records, newest first"`
	Timestamp time.Time    `json:"timestamp" doc:"Current UTC time"`
}

// DbDemoOutput wraps DbDemoResponse for huma.
type DbDemoOutput struct {
	Body DbDemoResponse
}

// DemoInsertAndList handles POST /api/v1/db-demo.
//
// It runs two independent statements: insert a placeholder record, then read back the
// newest models.DemoRecordLimit rows. They are not wrapped in a transaction, so under
// concurrent calls the read may already include rows inserted by other requests.
func (h *Handler) DemoInsertAndList(ctx context.Context, _ *struct{}) (*DbDemoOutput, error) {
	db := h.DB.WithContext(ctx)

	if err := db.Create(&models.Demo{Name: models.DemoPlaceholderName}).Error; err != nil {
		return nil, Respond(apperr.Wrap(apperr.KindInfrastructure, err, "failed to insert demo record"))
	}

	var rows []models.Demo
	if err := db.Order("id DESC").Limit(models.DemoRecordLimit).Find(&rows).Error; err != nil {
		return nil, Respond(apperr.Wrap(apperr.KindInfrastructure, err, "failed to fetch demo records"))
	}

	// make (not var) so an empty result encodes as [] instead of null
	records := make([]DemoRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, DemoRecord{ID: row.ID, Name: row.Name})
	}

	return &DbDemoOutput{Body: DbDemoResponse{
		Message:   DemoSuccessMessage,
		Records:   records,
		Timestamp: h.now(),
	}}, nil
}
