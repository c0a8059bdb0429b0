package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/plantcatalog/pkg/validator"
)

type sampleStruct struct {
	Name  string `validate:"required,min=1,max=10"`
	Image string `validate:"omitempty,url"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Name: "hello"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	err := pkgvalidator.Validate(&sampleStruct{})
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_url(t *testing.T) {
	err := pkgvalidator.Validate(&sampleStruct{Name: "ok", Image: "not a url"})
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Image"] != "Must be a valid URL" {
		t.Errorf("unexpected Image message: %q", m["Image"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	err := pkgvalidator.Validate(&sampleStruct{Name: "12345678901"}) // 11 chars > max=10
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "Maximum length is 10" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type flexNumber struct {
	Set   bool
	Value float64
}

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return &pkgvalidator.DecodeError{Field: "price", Message: "Price must be a number"}
	}
	f.Set = true
	return nil
}

type plantReq struct {
	Name  string     `json:"name"  validate:"notblank,max=255" errmsg:"Plant name is required"`
	Price flexNumber `json:"price" validate:"required"         errmsg:"Price is required"`
}

func post(body string) (*httptest.ResponseRecorder, *http.Request) {
	r := httptest.NewRequest(http.MethodPost, "/api/plants", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return httptest.NewRecorder(), r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("body is not JSON: %v (%s)", err, w.Body.String())
	}
	return m
}

func TestValidateRequest_valid(t *testing.T) {
	w, r := post(`{"name":"Fern","price":349}`)

	req, ok := pkgvalidator.ValidateRequest[plantReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Fern" || req.Price.Value != 349 {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"malformed JSON", `{bad json`, http.StatusBadRequest, "Invalid JSON"},
		{"array body", `[1,2]`, http.StatusBadRequest, "Request body must be a JSON object"},
		{"empty body reports missing name", ``, http.StatusBadRequest, "Plant name is required"},
		{"blank name", `{"name":"   ","price":1}`, http.StatusBadRequest, "Plant name is required"},
		{"name wrong type", `{"name":5,"price":1}`, http.StatusBadRequest, "Invalid value for field name"},
		{"missing price", `{"name":"Fern"}`, http.StatusBadRequest, "Price is required"},
		{"null price", `{"name":"Fern","price":null}`, http.StatusBadRequest, "Price is required"},
		{"bad price", `{"name":"Fern","price":"cheap"}`, http.StatusBadRequest, "Price must be a number"},
		{"name reported before price", `{}`, http.StatusBadRequest, "Plant name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, r := post(tt.body)
			if _, ok := pkgvalidator.ValidateRequest[plantReq](w, r); ok {
				t.Fatal("expected ok=false")
			}
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if got := decodeBody(t, w)["error"]; got != tt.wantError {
				t.Errorf("error: got %q, want %q", got, tt.wantError)
			}
		})
	}
}

func TestValidateRequest_FieldsMap(t *testing.T) {
	w, r := post(`{}`)
	pkgvalidator.ValidateRequest[plantReq](w, r)

	fields, ok := decodeBody(t, w)["fields"].(map[string]any)
	if !ok {
		t.Fatalf("expected fields object, got %s", w.Body.String())
	}
	if fields["name"] != "Plant name is required" || fields["price"] != "Price is required" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestValidateRequest_BodyTooLarge(t *testing.T) {
	w, r := post(`{"name":"` + strings.Repeat("a", 64) + `"}`)
	r.Body = http.MaxBytesReader(w, r.Body, 16)

	if _, ok := pkgvalidator.ValidateRequest[plantReq](w, r); ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
}
