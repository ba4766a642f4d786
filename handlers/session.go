package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/restro-cart/utils"
)

// CreateTableSession mints a table-scoped token. In production the
// gateway calls this after resolving a scanned QR code to a tenant and
// table.
func CreateTableSession(w http.ResponseWriter, r *http.Request) {
	type request struct {
		TenantID uuid.UUID `json:"tenant_id"`
		TableID  uuid.UUID `json:"table_id"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.TenantID == uuid.Nil || req.TableID == uuid.Nil {
		http.Error(w, "tenant_id and table_id are required", http.StatusBadRequest)
		return
	}

	token, err := utils.GenerateTableToken(req.TenantID, req.TableID)
	if err != nil {
		logrus.Printf("failed to generate table token, error: %v", err)
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"access_token": token,
	})
}
