package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestInventoryFlow_ProductsStockAndOrders(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "inventory@test.com", "password123")

	// Step 1: Create a product
	rec := app.request("POST", "/api/v1/products",
		`{"name":"House Blend 1kg","type":"physical","price":"24.50","category":"coffee"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	product := parseJSON(t, rec)["product"].(map[string]interface{})
	productID := product["id"].(string)

	// Step 2: Create its inventory record
	rec = app.request("POST", "/api/v1/inventory",
		fmt.Sprintf(`{"product_id":%q,"quantity":120,"min_stock":20,"max_stock":300,"unit_cost":"9.75","location":"Main warehouse"}`, productID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 3: A second record for the same product is rejected
	rec = app.request("POST", "/api/v1/inventory",
		fmt.Sprintf(`{"product_id":%q,"quantity":5}`, productID), token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 4: Create a supplier and a purchase order against it
	rec = app.request("POST", "/api/v1/suppliers",
		`{"name":"Green Bean Importers","contact_name":"Sam Ortiz","email":"sam@greenbean.test"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	supplier := parseJSON(t, rec)["supplier"].(map[string]interface{})
	supplierID := supplier["id"].(string)

	rec = app.request("POST", "/api/v1/purchase-orders",
		fmt.Sprintf(`{"supplier_id":%q,"order_number":"PO-1001","total_amount":"1170","order_date":"2026-04-01T00:00:00Z"}`, supplierID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	order := parseJSON(t, rec)["purchase_order"].(map[string]interface{})
	if order["status"] != "pending" {
		t.Errorf("expected default status pending, got %v", order["status"])
	}

	// Step 5: An order against an unknown supplier fails
	rec = app.request("POST", "/api/v1/purchase-orders",
		`{"supplier_id":"00000000-0000-7000-8000-000000000000","order_number":"PO-1002","total_amount":"10","order_date":"2026-04-01T00:00:00Z"}`, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestInvoiceAndGoalFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "invoices@test.com", "password123")

	// Invoices default to draft
	rec := app.request("POST", "/api/v1/invoices",
		`{"invoice_number":"INV-2026-001","customer_name":"Corner Cafe","amount":"450","issue_date":"2026-04-01T00:00:00Z","due_date":"2026-04-30T00:00:00Z"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	invoice := parseJSON(t, rec)["invoice"].(map[string]interface{})
	if invoice["status"] != "draft" {
		t.Errorf("expected default status draft, got %v", invoice["status"])
	}
	invoiceID := invoice["id"].(string)

	// Mark it paid
	rec = app.request("PUT", "/api/v1/invoices/"+invoiceID,
		`{"invoice_number":"INV-2026-001","customer_name":"Corner Cafe","amount":"450","status":"paid","issue_date":"2026-04-01T00:00:00Z","due_date":"2026-04-30T00:00:00Z"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	invoice = parseJSON(t, rec)["invoice"].(map[string]interface{})
	if invoice["status"] != "paid" {
		t.Errorf("expected status paid, got %v", invoice["status"])
	}

	// Goals track progress toward a target
	rec = app.request("POST", "/api/v1/goals",
		`{"title":"Emergency fund","target_amount":"10000","current_amount":"2500"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Balance sheet items split by type
	for _, body := range []string{
		`{"title":"Espresso machine","amount":"5400","type":"ASSET"}`,
		`{"title":"Equipment loan","amount":"3200","type":"LIABILITY"}`,
	} {
		rec = app.request("POST", "/api/v1/balance-sheet", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}
	rec = app.request("GET", "/api/v1/balance-sheet", "", token)
	items := parseJSON(t, rec)["items"].([]interface{})
	if len(items) != 2 {
		t.Errorf("expected 2 balance sheet items, got %d", len(items))
	}
}
