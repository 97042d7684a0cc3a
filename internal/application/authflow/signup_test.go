package authflow

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-lion/access-hub/internal/domain/profile"
)

func TestSignUp_ClientValidation(t *testing.T) {
	var posted bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		posted = true
	})

	client, _ := testBackend(t, mux)
	service := NewSignUpService(client, nil)

	errs := service.Submit(context.Background(), SignUpForm{
		UserID: "12a",
		Email:  "not-an-email",
		Role:   "admin",
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs, profile.FieldStudentID)
	assert.Contains(t, errs, profile.FieldDisplayName)
	assert.Contains(t, errs, profile.FieldEmail)
	assert.Contains(t, errs, profile.FieldRole)
	assert.False(t, posted, "an invalid form is never sent to the backend")
}

func TestSignUp_ShortNumericIDIsAccepted(t *testing.T) {
	// Account identifiers only need to be numeric; the 8-digit campus rule
	// applies later, on the student profile form.
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	client, _ := testBackend(t, mux)
	service := NewSignUpService(client, nil)

	errs := service.Submit(context.Background(), SignUpForm{
		UserID:      "12",
		DisplayName: "Sam",
		Email:       "sam@fhda.edu",
		Role:        "student",
	})
	assert.Nil(t, errs)
}

func TestSignUp_BackendFieldErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detail": []map[string]interface{}{
				{"loc": []interface{}{"body", "email"}, "msg": "email already registered"},
			},
		})
	})

	client, _ := testBackend(t, mux)
	service := NewSignUpService(client, nil)

	errs := service.Submit(context.Background(), SignUpForm{
		UserID:      "12",
		DisplayName: "Sam",
		Email:       "sam@fhda.edu",
		Role:        "student",
	})
	require.NotNil(t, errs)
	assert.Equal(t, "email already registered", errs[profile.FieldEmail])
	assert.Len(t, errs, 1, "only the field the backend named is marked")
}

func TestSignUp_OpaqueBackendFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "", http.StatusInternalServerError)
	})

	client, _ := testBackend(t, mux)
	service := NewSignUpService(client, nil)

	errs := service.Submit(context.Background(), SignUpForm{
		UserID:      "12",
		DisplayName: "Sam",
		Email:       "sam@fhda.edu",
		Role:        "tutor",
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs[profile.FieldRole], "Registration failed")
}
