package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-lion/access-hub/internal/domain/profile"
	"github.com/owl-lion/access-hub/internal/domain/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, session.TokenStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := session.NewInMemoryTokenStore()
	return NewClient(ClientConfig{BaseURL: server.URL, Tokens: tokens}), tokens
}

func TestClient_BearerTokenReadAtCallTime(t *testing.T) {
	var seen []string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"user_id": "1", "role": "student"})
	})

	client, tokens := newTestClient(t, mux)
	ctx := context.Background()

	// No token yet: the Authorization header is present but empty.
	_, _, err := client.Me(ctx)
	require.NoError(t, err)

	// A token set after construction is picked up by the very next call.
	tokens.Set("first")
	_, _, err = client.Me(ctx)
	require.NoError(t, err)

	tokens.Set("second")
	_, _, err = client.Me(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer first", "Bearer second"}, seen)
}

func TestClient_Login_DoesNotStoreToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "fresh-token",
			"user_id":      "42",
			"role":         "student",
		})
	})

	client, tokens := newTestClient(t, mux)

	result, err := client.Login(context.Background(), "abc123", "http://localhost:3000")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", result.AccessToken)
	assert.Equal(t, "42", result.UserID)
	assert.Equal(t, session.RoleStudent, result.Role)

	_, ok := tokens.Get()
	assert.False(t, ok, "storing the token is the auth flow's job, not the client's")
}

func TestClient_Register_MapsValidationDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detail": []map[string]interface{}{
				{"loc": []interface{}{"body", "email"}, "msg": "invalid"},
				{"loc": []interface{}{}, "msg": "orphan message"},      // malformed: no loc
				{"loc": []interface{}{"body", float64(3)}, "msg": "x"}, // malformed: non-string leaf
			},
		})
	})

	client, _ := newTestClient(t, mux)

	err := client.Register(context.Background(), SignUp{
		UserID: "12", DisplayName: "Sam", Email: "bad", Role: session.RoleStudent,
	})
	require.Error(t, err)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, map[string]string{"email": "invalid"}, validation.Fields,
		"malformed detail entries are skipped")
}

func TestClient_UnrecognizableDetailDegradesToAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "not a list"}`))
	})

	client, _ := newTestClient(t, mux)

	err := client.Register(context.Background(), SignUp{UserID: "12", Role: session.RoleTutor})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
}

func TestClient_SaveStudent_RoundTripsProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students/12345678", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		var dto StudentDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		assert.Equal(t, "12345678", dto.StudentID)
		assert.Equal(t, "Dyslexia", dto.PrimaryDisability)
		require.Len(t, dto.Availability, 1)
		assert.Equal(t, "Monday", dto.Availability[0].Day)

		json.NewEncoder(w).Encode(dto)
	})

	client, _ := newTestClient(t, mux)

	saved, err := client.SaveStudent(context.Background(), profile.StudentProfile{
		StudentID:         "12345678",
		DisplayName:       "Jordan",
		PrimaryDisability: profile.Dyslexia,
		Availability: []profile.Availability{
			{Day: profile.Monday, StartTime: "09:00", EndTime: "11:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, profile.CampusID("12345678"), saved.StudentID)
	assert.Equal(t, profile.Dyslexia, saved.PrimaryDisability)
}

func TestClient_GetStudent_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students/99999999", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "student not found"})
	})

	client, _ := newTestClient(t, mux)

	_, err := client.GetStudent(context.Background(), "99999999")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "student not found", apiErr.Message)
}

func TestClient_ListStudents_EmptyRoster(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	client, _ := newTestClient(t, mux)

	roster, err := client.ListStudents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, roster)
	assert.Empty(t, roster, "an empty roster is a valid result")
}
