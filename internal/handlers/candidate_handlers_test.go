package handlers

import (
	"net/http"
	"testing"

	"eventvote/internal/models"
)

func TestCandidates(t *testing.T) {
	r, _ := setupRouter(t)
	a := createCandidate(t, r, "anne", models.CategoryQueen)
	b := createCandidate(t, r, "bea", models.CategoryQueen)
	k := createCandidate(t, r, "karl", models.CategoryKing)

	t.Run("Test list is ranked and uncached", func(t *testing.T) {
		serve(r, makeRequest(http.MethodPost, "/api/vote",
			models.CastVoteRequest{CandidateID: b.ID.Hex(), Category: models.CategoryQueen}, nil))

		w := serve(r, makeRequest(http.MethodGet, "/api/candidates?category=queen", nil, nil))
		assertStatus(t, w, http.StatusOK)
		if w.Header().Get("Cache-Control") == "" {
			t.Error("Expected Cache-Control header")
		}
		var queens []models.Candidate
		decodeJSON(t, w, &queens)
		if len(queens) != 2 || queens[0].ID != b.ID {
			t.Errorf("Expected bea to lead the queens, got %+v", queens)
		}

		all := listCandidates(t, r, "")
		if len(all) != 3 {
			t.Errorf("Expected 3 candidates, got %d", len(all))
		}
	})

	t.Run("Test empty category lists nothing", func(t *testing.T) {
		r, _ := setupRouter(t)
		w := serve(r, makeRequest(http.MethodGet, "/api/candidates?category=king", nil, nil))
		assertStatus(t, w, http.StatusOK)
		if w.Body.String() != "[]" {
			t.Errorf("Expected an empty array, got %s", w.Body.String())
		}
	})

	t.Run("Test create requires fields and admin", func(t *testing.T) {
		w := serve(r, makeRequest(http.MethodPost, "/api/admin/candidates",
			map[string]string{"name": "x"}, adminHeaders()))
		assertStatus(t, w, http.StatusBadRequest)

		w = serve(r, makeRequest(http.MethodPost, "/api/admin/candidates",
			models.CreateCandidateRequest{Name: "x", Image: "i", CloudinaryID: "c", Category: models.CategoryKing}, nil))
		assertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("Test bulk delete validation", func(t *testing.T) {
		w := serve(r, makeRequest(http.MethodPost, "/api/admin/candidates/bulk-delete",
			models.BulkDeleteRequest{IDs: []string{}}, adminHeaders()))
		assertStatus(t, w, http.StatusBadRequest)

		w = serve(r, makeRequest(http.MethodPost, "/api/admin/candidates/bulk-delete",
			models.BulkDeleteRequest{IDs: []string{"nope"}}, adminHeaders()))
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("Test bulk delete", func(t *testing.T) {
		w := serve(r, makeRequest(http.MethodPost, "/api/admin/candidates/bulk-delete",
			models.BulkDeleteRequest{IDs: []string{a.ID.Hex(), b.ID.Hex()}}, adminHeaders()))
		assertStatus(t, w, http.StatusOK)

		var resp models.BulkDeleteResponse
		decodeJSON(t, w, &resp)
		if !resp.Success || resp.DeletedCount != 2 {
			t.Errorf("Expected 2 deleted, got %+v", resp)
		}
	})

	t.Run("Test delete one", func(t *testing.T) {
		w := serve(r, makeRequest(http.MethodDelete, "/api/admin/candidates", nil, adminHeaders()))
		assertStatus(t, w, http.StatusBadRequest)

		w = serve(r, makeRequest(http.MethodDelete, "/api/admin/candidates?id="+k.ID.Hex(), nil, adminHeaders()))
		assertStatus(t, w, http.StatusOK)

		if all := listCandidates(t, r, ""); len(all) != 0 {
			t.Errorf("Expected no candidates left, got %d", len(all))
		}
	})
}
