package inventory

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"gemtrade/barcode"
	"gemtrade/database"
	"gemtrade/loader"
	"gemtrade/logger"
	"gemtrade/model"
	"gemtrade/money"
	"gemtrade/respond"
)

// Handler serves GET (list) and POST (create) on /api/inventory.
func Handler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if r.Method == http.MethodGet {
			items, err := database.GetAllInventory(db)
			if err != nil {
				respond.StoreError(w, "inventory", err)
				return
			}
			respond.JSON(w, http.StatusOK, items)
			return
		}

		var item model.InventoryItem
		if !respond.Decode(w, r, &item) {
			return
		}
		if err := validate(&item); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := database.CreateInventory(db, &item); err != nil {
			respond.StoreError(w, "inventory item", err)
			return
		}
		logger.Info("inventory item created", "id", item.ID, "sku", item.SKU)
		respond.JSON(w, http.StatusCreated, item)
	}
}

func UpdateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost, http.MethodPut) {
			return
		}
		var item model.InventoryItem
		if !respond.Decode(w, r, &item) {
			return
		}
		if item.ID == "" {
			respond.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := validate(&item); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := database.UpdateInventory(db, item); err != nil {
			respond.StoreError(w, "inventory item", err)
			return
		}
		respond.JSON(w, http.StatusOK, item)
	}
}

func DeleteHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodDelete, http.MethodPost) {
			return
		}
		id, ok := respond.PathID(w, r, "/api/inventory/delete/")
		if !ok {
			return
		}
		if err := database.DeleteInventory(db, id); err != nil {
			respond.StoreError(w, "inventory item", err)
			return
		}
		respond.Message(w, "deleted")
	}
}

// ByCodeHandler resolves a scanned stock label to its inventory item.
func ByCodeHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := respond.PathID(w, r, "/api/inventory/by_code/")
		if !ok {
			return
		}
		label, err := barcode.Parse(code)
		if err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		item, err := database.GetInventoryBySKU(db, label.SKU)
		if err != nil {
			respond.StoreError(w, "inventory item", err)
			return
		}
		if item == nil {
			respond.Error(w, fmt.Sprintf("no stone with SKU %s", label.SKU), http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, item)
	}
}

// ImportHandler takes a multipart "file" field and an optional "encoding".
func ImportHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost) {
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			respond.Error(w, "failed to read uploaded file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		result, err := loader.ImportInventoryCSV(db, file, r.FormValue("encoding"))
		if err != nil {
			if errors.Is(err, loader.ErrInvalidUpload) {
				respond.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			respond.StoreError(w, "inventory import", err)
			return
		}
		respond.JSON(w, http.StatusOK, result)
	}
}

func validate(item *model.InventoryItem) error {
	item.Type = strings.TrimSpace(item.Type)
	item.SKU = strings.ToUpper(strings.TrimSpace(item.SKU))
	if item.Type == "" {
		return errors.New("type is required")
	}
	fields := []struct{ name, value string }{
		{"carat", item.Carat},
		{"quantity", item.Quantity},
		{"pricePerCarat", item.PricePerCarat},
		{"sellingPrice", item.SellingPrice},
	}
	for _, f := range fields {
		if err := money.CheckAmount(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}
