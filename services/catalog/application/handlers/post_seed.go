package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ghuser/plantcatalog/pkg/errhttp"
	"github.com/ghuser/plantcatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/plantcatalog/pkg/validator"
	appsvcs "github.com/ghuser/plantcatalog/services/catalog/application/services"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

const (
	msgSeeded          = "Database seeded successfully"
	msgSeedBodyInvalid = `Seed body must be an array of plants or {"plants": [...]}`
	msgEntryNotObject  = "Plant entry must be a JSON object"
)

// SeedRequest documents the object form of the seed body. A bare array of
// CreatePlantRequest is accepted as well.
type SeedRequest struct {
	Plants []CreatePlantRequest `json:"plants"`
} // @name SeedRequest

// SeedResponse is returned on a successful seed.
type SeedResponse struct {
	Message string `json:"message" example:"Database seeded successfully"`
	Count   int    `json:"count"   example:"14"`
} // @name SeedResponse

// seedBody holds the raw entries of either body form.
type seedBody struct {
	entries []json.RawMessage
}

func (b *seedBody) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, jsonNull):
		return nil
	case len(data) > 0 && data[0] == '[':
		return json.Unmarshal(data, &b.entries)
	case len(data) > 0 && data[0] == '{':
		var obj struct {
			Plants []json.RawMessage `json:"plants"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return &pkgvalidator.DecodeError{Field: "plants", Message: msgSeedBodyInvalid}
		}
		b.entries = obj.Plants
		return nil
	default:
		return &pkgvalidator.DecodeError{Message: msgSeedBodyInvalid}
	}
}

// PostSeedHandler handles POST /seed requests.
type PostSeedHandler struct {
	svc  *appsvcs.Services
	errw *errhttp.Writer
}

// NewPostSeedHandler returns a PostSeedHandler backed by the given services.
func NewPostSeedHandler(svc *appsvcs.Services, errw *errhttp.Writer) *PostSeedHandler {
	return &PostSeedHandler{svc: svc, errw: errw}
}

// Execute appends a batch of plants to the catalog.
//
//	@Summary		Seed catalog
//	@Description	Appends plants in one batch. An empty body seeds the built-in sample catalog. One invalid entry rejects the whole batch. Requires the admin key.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		AdminKey
//	@Param			request	body		SeedRequest	false	"Plants to add"
//	@Success		201		{object}	SeedResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/seed [post]
func (h *PostSeedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var body seedBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		status, msg, fields := pkgvalidator.DescribeDecodeError(err)
		pkgvalidator.WriteError(w, status, msg, fields)
		return
	}

	inputs := make([]models.NewPlantParams, len(body.entries))
	for i, raw := range body.entries {
		params, msg, fields := decodeSeedEntry(i, raw)
		if msg != "" {
			pkgvalidator.WriteError(w, http.StatusBadRequest, msg, fields)
			return
		}
		inputs[i] = params
	}

	count, err := h.svc.Plant.Seed(r.Context(), inputs)
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, SeedResponse{Message: msgSeeded, Count: count})
}

// decodeSeedEntry decodes and validates one batch entry. On failure it
// returns a message and field map prefixed with the entry's position.
func decodeSeedEntry(i int, raw json.RawMessage) (models.NewPlantParams, string, map[string]string) {
	var req CreatePlantRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		_, msg, fields := pkgvalidator.DescribeDecodeError(err)
		if msg == pkgvalidator.MsgBodyNotObject {
			msg = msgEntryNotObject
		}
		return models.NewPlantParams{}, entryMessage(i, msg), entryFields(i, fields)
	}
	if err := pkgvalidator.Validate(&req); err != nil {
		msg, fields := pkgvalidator.Messages(&req, err)
		if msg == "" {
			msg = pkgvalidator.MsgValidationFailed
		}
		return models.NewPlantParams{}, entryMessage(i, msg), entryFields(i, fields)
	}
	return req.toParams(), "", nil
}

func entryMessage(i int, msg string) string {
	return fmt.Sprintf("plants[%d]: %s", i, msg)
}

func entryFields(i int, fields map[string]string) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[fmt.Sprintf("plants[%d].%s", i, k)] = v
	}
	return out
}
