package handlers

import (
	"net/http"
	"strings"
	"testing"

	"eventvote/internal/models"
)

func TestAdminLogin(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		name string
		body models.AdminAuthRequest
		want int
	}{
		{"valid", models.AdminAuthRequest{Email: "admin@example.com", Password: testAdminPassword}, http.StatusOK},
		{"wrong password", models.AdminAuthRequest{Email: "admin@example.com", Password: "x"}, http.StatusUnauthorized},
		{"wrong email", models.AdminAuthRequest{Email: "root@example.com", Password: testAdminPassword}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, makeRequest(http.MethodPost, "/api/admin/auth", tt.body, nil))
			assertStatus(t, w, tt.want)

			var resp struct {
				Success bool `json:"success"`
			}
			decodeJSON(t, w, &resp)
			if resp.Success != (tt.want == http.StatusOK) {
				t.Errorf("Expected success %t, got %t", tt.want == http.StatusOK, resp.Success)
			}
		})
	}
}

func TestUploadSignature(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, makeRequest(http.MethodPost, "/api/admin/cloudinary-signature",
		models.UploadSignatureRequest{Filename: "../../crown.png"}, adminHeaders()))
	assertStatus(t, w, http.StatusOK)

	var resp models.UploadSignatureResponse
	decodeJSON(t, w, &resp)
	if len(resp.Signature) != 40 {
		t.Errorf("Expected a 40 character hex signature, got %q", resp.Signature)
	}
	if resp.CloudName != "demo-cloud" || resp.APIKey != "key-123" || resp.Timestamp == 0 {
		t.Errorf("Unexpected response %+v", resp)
	}
	if !strings.HasPrefix(resp.PublicID, "voting_app/") || !strings.HasSuffix(resp.PublicID, "_crown.png") {
		t.Errorf("Unexpected public id %q", resp.PublicID)
	}

	w = serve(r, makeRequest(http.MethodPost, "/api/admin/cloudinary-signature", map[string]string{}, adminHeaders()))
	assertStatus(t, w, http.StatusBadRequest)
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, makeRequest(http.MethodGet, "/health", nil, nil))
	assertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected OK, got %q", w.Body.String())
	}
}
