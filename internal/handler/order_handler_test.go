package handler

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/EvaneiWFreitas/sisManutencao/internal/entity"
	"github.com/EvaneiWFreitas/sisManutencao/internal/repository"
	"github.com/EvaneiWFreitas/sisManutencao/internal/service"
	"github.com/EvaneiWFreitas/sisManutencao/internal/testutil"
	"github.com/gin-gonic/gin"
)

var protocolPattern = regexp.MustCompile(`^TS\d{8}$`)

func setupAPI(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil)
	h := NewHandlers(services)

	router := testutil.SetupRouter()
	v1 := router.Group("/api/v1")
	v1.POST("/requests", h.Order.Submit)
	v1.GET("/requests/:protocol", h.Order.Track)
	admin := v1.Group("/admin")
	admin.GET("/orders", h.Order.List)
	admin.PUT("/orders/:protocol/status", h.Order.SetStatus)
	admin.DELETE("/orders/:protocol", h.Order.Delete)
	admin.GET("/dashboard", h.Admin.Dashboard)
	admin.GET("/clients", h.Admin.Clients)
	admin.GET("/reports", h.Admin.Reports)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func submitOrder(t *testing.T, env *testutil.TestEnv, overrides map[string]interface{}) string {
	t.Helper()
	body := map[string]interface{}{
		"name":          "Maria Silva",
		"phone":         "11999999999",
		"email":         "maria@example.com",
		"equipmentType": "notebook",
		"brand":         "Dell",
		"problem":       "Não liga",
	}
	for k, v := range overrides {
		body[k] = v
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	return data["protocolNumber"].(string)
}

func TestSubmitAndTrack(t *testing.T) {
	env := setupAPI(t)

	protocol := submitOrder(t, env, nil)
	if !protocolPattern.MatchString(protocol) {
		t.Fatalf("protocol %q does not match TS<year><nnnn>", protocol)
	}

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/requests/"+protocol, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %v", resp)
	}
	order := resp["data"].(map[string]interface{})
	if order["protocol_number"] != protocol || order["status"] != entity.StatusPending {
		t.Fatalf("unexpected tracked order: %v", order)
	}
}

func TestSubmitMissingRequiredField(t *testing.T) {
	env := setupAPI(t)

	body := map[string]interface{}{
		"name":          "Maria Silva",
		"equipmentType": "notebook",
		"problem":       "Não liga",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["error"] != "Campo obrigatório: phone" {
		t.Fatalf("unexpected error message: %v", resp)
	}
}

func TestTrackUnknownProtocol(t *testing.T) {
	env := setupAPI(t)

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/requests/TS20990001", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["error"] != "Protocolo não encontrado" {
		t.Fatalf("unexpected error message: %v", resp)
	}
}

func TestSetStatusFlow(t *testing.T) {
	env := setupAPI(t)
	protocol := submitOrder(t, env, nil)

	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/admin/orders/"+protocol+"/status",
		gin.H{"status": entity.StatusInProgress})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	order := resp["data"].(map[string]interface{})
	if order["status"] != entity.StatusInProgress {
		t.Fatalf("expected in_progress, got %v", order["status"])
	}

	// unrecognized value
	w = testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/admin/orders/"+protocol+"/status",
		gin.H{"status": "done"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}

	// unknown protocol
	w = testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/admin/orders/TS20990001/status",
		gin.H{"status": entity.StatusCompleted})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown protocol, got %d", w.Code)
	}
}

func TestDeleteOrder(t *testing.T) {
	env := setupAPI(t)
	protocol := submitOrder(t, env, nil)

	w := testutil.DoRequest(env.Router, http.MethodDelete, "/api/v1/admin/orders/"+protocol, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/requests/"+protocol, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, http.MethodDelete, "/api/v1/admin/orders/"+protocol, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeated delete, got %d", w.Code)
	}
}

func TestListOrdersWithFilters(t *testing.T) {
	env := setupAPI(t)

	p1 := submitOrder(t, env, nil)
	submitOrder(t, env, map[string]interface{}{
		"name": "João Souza", "phone": "11888888888", "equipmentType": "desktop", "brand": "Positivo",
	})
	p3 := submitOrder(t, env, map[string]interface{}{
		"name": "Ana Costa", "phone": "11777777777", "equipmentType": "notebook", "brand": "Lenovo",
	})
	testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/admin/orders/"+p3+"/status",
		gin.H{"status": entity.StatusCompleted})

	// no filters: everything, most recent first
	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/admin/orders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	orders := resp["data"].([]interface{})
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	newest := orders[0].(map[string]interface{})
	if newest["protocol_number"] != p3 {
		t.Fatalf("expected %s first, got %v", p3, newest["protocol_number"])
	}

	// status filter
	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/admin/orders?status=pending", nil)
	resp = testutil.ParseResponse(w)
	orders = resp["data"].([]interface{})
	if len(orders) != 2 {
		t.Fatalf("expected 2 pending orders, got %d", len(orders))
	}

	// conjunction of status and equipment
	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/admin/orders?status=pending&equipment_type=notebook", nil)
	resp = testutil.ParseResponse(w)
	orders = resp["data"].([]interface{})
	if len(orders) != 1 {
		t.Fatalf("expected 1 pending notebook order, got %d", len(orders))
	}
	if orders[0].(map[string]interface{})["protocol_number"] != p1 {
		t.Fatalf("expected %s, got %v", p1, orders[0])
	}

	// label-aware search
	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/admin/orders?search=computador", nil)
	resp = testutil.ParseResponse(w)
	orders = resp["data"].([]interface{})
	if len(orders) != 1 {
		t.Fatalf("expected 1 order matching the desktop label, got %d", len(orders))
	}
}

func TestListOrdersPaginated(t *testing.T) {
	env := setupAPI(t)
	for i := 0; i < 3; i++ {
		submitOrder(t, env, nil)
	}

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/admin/orders?page=1&size=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected 2 items on page 1, got %d", len(items))
	}
	if data["total"].(float64) != 3 || data["total_pages"].(float64) != 2 {
		t.Fatalf("unexpected pagination envelope: %v", data)
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/admin/orders?page=3&size=2", nil)
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	items = data["items"].([]interface{})
	if len(items) != 0 {
		t.Fatalf("expected an empty page past the end, got %d items", len(items))
	}
}
