package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/restro-cart/cart"
	"github.com/ray-remotestate/restro-cart/middlewares"
	"github.com/ray-remotestate/restro-cart/models"
)

var cartService *cart.Service

// InitCart hands the wired service to this package; main calls it once
// before the router starts serving.
func InitCart(svc *cart.Service) {
	cartService = svc
}

func GetCart(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKeyFromSession(w, r)
	if !ok {
		return
	}

	c, err := cartService.GetCart(r.Context(), key)
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func AddCartLine(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKeyFromSession(w, r)
	if !ok {
		return
	}

	type request struct {
		MenuItemID uuid.UUID         `json:"menuItemId"`
		Name       string            `json:"name"`
		Quantity   int               `json:"quantity"`
		UnitPrice  float64           `json:"unitPrice"`
		Modifiers  []models.Modifier `json:"modifiers"`
		Notes      string            `json:"notes"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.MenuItemID == uuid.Nil {
		http.Error(w, "menuItemId is required", http.StatusBadRequest)
		return
	}

	c, err := cartService.AddLine(r.Context(), key, cart.AddLineInput{
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		Modifiers:  req.Modifiers,
		Notes:      req.Notes,
	})
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func UpdateCartLineQuantity(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKeyFromSession(w, r)
	if !ok {
		return
	}
	itemKey := mux.Vars(r)["itemKey"]

	type request struct {
		Quantity int `json:"quantity"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	c, err := cartService.UpdateQuantity(r.Context(), key, itemKey, req.Quantity)
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func RemoveCartLine(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKeyFromSession(w, r)
	if !ok {
		return
	}
	itemKey := mux.Vars(r)["itemKey"]

	c, err := cartService.RemoveLine(r.Context(), key, itemKey)
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func ClearCart(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKeyFromSession(w, r)
	if !ok {
		return
	}

	if err := cartService.Clear(r.Context(), key); err != nil {
		writeCartError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func cartKeyFromSession(w http.ResponseWriter, r *http.Request) (cart.Key, bool) {
	claims, err := middlewares.GetTableSession(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return cart.Key{}, false
	}
	return cart.Key{TenantID: claims.TenantID, TableID: claims.TableID}, true
}

func writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrQuantityInvalid), errors.Is(err, cart.ErrPriceInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, cart.ErrLineNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, cart.ErrItemUnavailable):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, cart.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logrus.Printf("cart operation failed, error: %v", err)
		http.Error(w, "cart temporarily unavailable", http.StatusBadGateway)
	}
}
