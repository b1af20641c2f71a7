package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/buildestate/backend/cmd/config"
	"github.com/buildestate/backend/constant"
	appointmentappmocks "github.com/buildestate/backend/mocks/application/appointment"
	userappmocks "github.com/buildestate/backend/mocks/application/user"
	"github.com/buildestate/backend/model"
	"github.com/buildestate/backend/transport"
	cerr "github.com/buildestate/backend/utils/errors"
)

func newTestRouter(rh *transport.RestHandler, devBypass bool) http.Handler {
	cfg := &config.Config{
		Environment: "test",
		Auth:        config.AuthConfig{DevBypass: devBypass},
	}
	return transport.NewTransport(cfg, rh)
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response body %q: %v", rec.Body.String(), err)
	}
	return envelope
}

func assertSuccessFlag(t *testing.T, envelope map[string]interface{}, want bool) {
	t.Helper()
	got, ok := envelope["success"].(bool)
	if !ok {
		t.Fatalf("envelope %v has no boolean success field", envelope)
	}
	if got != want {
		t.Fatalf("success = %v, want %v", got, want)
	}
}

func TestRegister_Envelope(t *testing.T) {
	t.Run("duplicate email keeps the stable error shape", func(t *testing.T) {
		userApp := userappmocks.NewUserApp(t)
		userApp.
			On("Register", mock.Anything, mock.MatchedBy(func(req *model.RegisterRequest) bool {
				return req.Email == "ana@example.com"
			})).
			Return(nil, cerr.SetCustomError(constant.ErrEmailRegistered)).
			Once()

		router := newTestRouter(&transport.RestHandler{UserApp: userApp}, false)

		rec := postJSON(t, router, "/api/users/register", map[string]string{
			"name":     "Ana",
			"email":    "ana@example.com",
			"password": "secret123",
		})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		envelope := decodeEnvelope(t, rec)
		assertSuccessFlag(t, envelope, false)
		if envelope["message"] != "Email already registered" {
			t.Fatalf("message = %v, want Email already registered", envelope["message"])
		}
	})

	t.Run("valid registration answers 201 with the token", func(t *testing.T) {
		userApp := userappmocks.NewUserApp(t)
		userApp.
			On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Return(&model.AuthResponse{
				Token: "jwt-token",
				User:  model.UserSummary{Name: "Ana", Email: "ana@example.com"},
			}, nil).
			Once()

		router := newTestRouter(&transport.RestHandler{UserApp: userApp}, false)

		rec := postJSON(t, router, "/api/users/register", map[string]string{
			"name":     "Ana",
			"email":    "ana@example.com",
			"password": "secret123",
		})

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
		}
		envelope := decodeEnvelope(t, rec)
		assertSuccessFlag(t, envelope, true)
		data, _ := envelope["data"].(map[string]interface{})
		if data == nil || data["token"] != "jwt-token" {
			t.Fatalf("data = %v, want token jwt-token", envelope["data"])
		}
	})

	t.Run("malformed email is rejected before the application layer", func(t *testing.T) {
		router := newTestRouter(&transport.RestHandler{UserApp: userappmocks.NewUserApp(t)}, false)

		rec := postJSON(t, router, "/api/users/register", map[string]string{
			"name":     "Ana",
			"email":    "not-an-email",
			"password": "secret123",
		})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		assertSuccessFlag(t, decodeEnvelope(t, rec), false)
	})
}

func TestScheduleViewing_SlotFlow(t *testing.T) {
	appointmentApp := appointmentappmocks.NewAppointmentApp(t)

	matchSlot := mock.MatchedBy(func(req *model.ScheduleViewingRequest) bool {
		return req.PropertyID == 1 && req.Date == "2026-09-10" && req.Time == "10:00"
	})

	appointmentApp.
		On("Schedule", mock.Anything, uint64(0), matchSlot).
		Return(&model.AppointmentResponse{
			LegacyID:   5,
			ID:         5,
			PropertyID: 1,
			Status:     string(constant.AppointmentStatusPending),
		}, nil).
		Once()
	appointmentApp.
		On("Schedule", mock.Anything, uint64(0), matchSlot).
		Return(nil, cerr.SetCustomError(constant.ErrSlotTaken)).
		Once()

	// dev bypass stands in for a logged-in session
	router := newTestRouter(&transport.RestHandler{AppointmentApp: appointmentApp}, true)

	body := map[string]any{
		"propertyId": 1,
		"date":       "2026-09-10",
		"time":       "10:00",
	}

	rec := postJSON(t, router, "/api/appointments/schedule", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first booking status = %d, want %d", rec.Code, http.StatusCreated)
	}
	envelope := decodeEnvelope(t, rec)
	assertSuccessFlag(t, envelope, true)
	data, _ := envelope["data"].(map[string]interface{})
	if data == nil || data["status"] != string(constant.AppointmentStatusPending) {
		t.Fatalf("data = %v, want status pending", envelope["data"])
	}

	rec = postJSON(t, router, "/api/appointments/schedule", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second booking status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	envelope = decodeEnvelope(t, rec)
	assertSuccessFlag(t, envelope, false)
	if envelope["message"] != "This time slot is already booked" {
		t.Fatalf("message = %v, want This time slot is already booked", envelope["message"])
	}
}
