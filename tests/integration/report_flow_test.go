package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

// seedMonth creates one income and two expenses dated in the current month so
// the period-sensitive reports have something to aggregate.
func seedMonth(t *testing.T, app *testApp, token string) {
	t.Helper()
	now := time.Now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	createTransaction(t, app, token, fmt.Sprintf(
		`{"description":"Salary","amount":2000,"kind":"income","category":"Salary","date":%q}`,
		first.Format(time.DateOnly)))
	createTransaction(t, app, token, fmt.Sprintf(
		`{"description":"Groceries","amount":150,"kind":"expense","category":"Food","date":%q}`,
		first.Format(time.DateOnly)))
	createTransaction(t, app, token, fmt.Sprintf(
		`{"description":"Bus pass","amount":50,"kind":"expense","category":"Transport","date":%q}`,
		first.Format(time.DateOnly)))
}

func TestReportFlow_SummaryAndMonthly(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "reports@test.com", "password123")
	seedMonth(t, app, token)

	rec := app.request("GET", "/api/v1/reports/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_income"].(float64) != 2000 {
		t.Errorf("expected income 2000, got %v", summary["total_income"])
	}
	if summary["total_expenses"].(float64) != 200 {
		t.Errorf("expected expenses 200, got %v", summary["total_expenses"])
	}
	if summary["total_balance"].(float64) != 1800 {
		t.Errorf("expected balance 1800, got %v", summary["total_balance"])
	}

	rec = app.request("GET", "/api/v1/reports/monthly", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("monthly failed: %d %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)["report"].(map[string]interface{})
	current := report["current_month"].(map[string]interface{})
	if current["income"].(float64) != 2000 || current["expenses"].(float64) != 200 {
		t.Errorf("unexpected current month: %v", current)
	}
	if report["previous_closing_balance"].(float64) != 0 {
		t.Errorf("expected zero carried-in balance, got %v", report["previous_closing_balance"])
	}
}

func TestReportFlow_BreakdownAndTrend(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "trend@test.com", "password123")
	seedMonth(t, app, token)

	rec := app.request("GET", "/api/v1/reports/category-breakdown", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("breakdown failed: %d %s", rec.Code, rec.Body.String())
	}
	breakdown := parseJSON(t, rec)["breakdown"].(map[string]interface{})
	if breakdown["Food"].(float64) != 150 {
		t.Errorf("expected Food 150, got %v", breakdown["Food"])
	}
	if _, ok := breakdown["Salary"]; ok {
		t.Error("income category leaked into the expense breakdown")
	}

	rec = app.request("GET", "/api/v1/reports/category-trend?top_n=1", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("trend failed: %d %s", rec.Code, rec.Body.String())
	}
	trend := parseJSON(t, rec)["trend"].([]interface{})
	if len(trend) != 1 {
		t.Fatalf("expected 1 trend month, got %d", len(trend))
	}
	series := trend[0].(map[string]interface{})["series"].(map[string]interface{})
	if series["Food"].(float64) != 150 {
		t.Errorf("expected top series Food 150, got %v", series)
	}
	if series["Other"].(float64) != 50 {
		t.Errorf("expected Transport folded into Other, got %v", series)
	}
}

func TestReportFlow_BalanceHistoryAndHeatmap(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "history@test.com", "password123")
	seedMonth(t, app, token)

	rec := app.request("GET", "/api/v1/reports/balance-history", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("history failed: %d %s", rec.Code, rec.Body.String())
	}
	history := parseJSON(t, rec)["history"].([]interface{})
	if len(history) == 0 {
		t.Fatal("expected history points")
	}
	last := history[len(history)-1].(map[string]interface{})
	if last["balance"].(float64) != 1800 {
		t.Errorf("expected final balance 1800, got %v", last["balance"])
	}

	rec = app.request("GET", "/api/v1/reports/expense-heatmap", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("heatmap failed: %d %s", rec.Code, rec.Body.String())
	}
	heatmap := parseJSON(t, rec)["heatmap"].([]interface{})
	if len(heatmap)%7 != 0 {
		t.Errorf("expected whole weeks, got %d cells", len(heatmap))
	}
}

func TestReportFlow_RecurringViews(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "recurring@test.com", "password123")

	createTransaction(t, app, token,
		`{"description":"Streaming","amount":10,"kind":"expense","category":"Entertainment","date":"2024-01-15","is_recurring":true,"frequency":"monthly"}`)
	createTransaction(t, app, token,
		`{"description":"Gym","amount":5,"kind":"expense","category":"Health","date":"2024-01-03","is_recurring":true,"frequency":"weekly"}`)

	rec := app.request("GET", "/api/v1/recurring/projection", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("projection failed: %d %s", rec.Code, rec.Body.String())
	}
	projection := parseJSON(t, rec)["projection"].(map[string]interface{})
	if projection["monthly_cost"].(float64) != 30 {
		t.Errorf("expected monthly cost 30 (10 + 5*4), got %v", projection["monthly_cost"])
	}
	if projection["annual_cost"].(float64) != 360 {
		t.Errorf("expected annual cost 360, got %v", projection["annual_cost"])
	}
	if projection["active_count"].(float64) != 2 {
		t.Errorf("expected 2 active, got %v", projection["active_count"])
	}

	rec = app.request("GET", "/api/v1/recurring/upcoming", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("upcoming failed: %d %s", rec.Code, rec.Body.String())
	}
	bills := parseJSON(t, rec)["bills"].([]interface{})
	if len(bills) != 2 {
		t.Fatalf("expected 2 bills, got %d", len(bills))
	}
	first := bills[0].(map[string]interface{})
	second := bills[1].(map[string]interface{})
	if first["days_until"].(float64) > second["days_until"].(float64) {
		t.Error("bills not sorted by days until due")
	}
}

func TestReportFlow_RequiresAuth(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{
		"/api/v1/reports/summary",
		"/api/v1/reports/monthly",
		"/api/v1/reports/category-breakdown",
		"/api/v1/reports/category-trend",
		"/api/v1/reports/balance-history",
		"/api/v1/reports/expense-heatmap",
		"/api/v1/recurring/upcoming",
		"/api/v1/recurring/projection",
	} {
		rec := app.request("GET", path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, rec.Code)
		}
	}
}
