package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"testing"
	"time"

	"commerce-admin/internal/domain"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var testDB *sql.DB

func setupTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "testdb"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:15",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	connStr := "postgres://" + dbUser + ":" + dbPwd + "@" + dbHost + ":" + dbPort.Port() + "/" + dbName + "?sslmode=disable"
	testDB, err = sql.Open("pgx", connStr)
	if err != nil {
		return dbContainer.Terminate, err
	}

	_, err = testDB.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			key VARCHAR(100) PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return dbContainer.Terminate, err
	}

	_, err = testDB.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			key VARCHAR(100) PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	teardown, err := setupTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
}

func TestCollectionRepository_PutGetRoundTrip(t *testing.T) {
	repo := NewCollectionRepository(testDB)
	ctx := context.Background()

	payload := json.RawMessage(`[{"id":"product-1","name":"Wireless Headphones"}]`)
	if err := repo.Put(ctx, KeyProducts, payload); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := repo.Get(ctx, KeyProducts)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	var want, have []map[string]interface{}
	if err := json.Unmarshal(payload, &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(got, &have); err != nil {
		t.Fatalf("stored payload is not valid JSON: %v", err)
	}
	if len(have) != len(want) || have[0]["id"] != want[0]["id"] {
		t.Errorf("round trip mismatch: got %v, want %v", have, want)
	}
}

func TestCollectionRepository_PutOverwrites(t *testing.T) {
	repo := NewCollectionRepository(testDB)
	ctx := context.Background()

	if err := repo.Put(ctx, KeyCampaigns, json.RawMessage(`[{"id":"campaign-1"}]`)); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := repo.Put(ctx, KeyCampaigns, json.RawMessage(`[]`)); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, err := repo.Get(ctx, KeyCampaigns)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(got, &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("expected overwrite to empty array, got %d items", len(items))
	}
}

func TestCollectionRepository_GetMissingKey(t *testing.T) {
	repo := NewCollectionRepository(testDB)

	_, err := repo.Get(context.Background(), "ecommerce_dashboard_nonexistent")
	if err != ErrCollectionNotFound {
		t.Errorf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestCollectionRepository_Delete(t *testing.T) {
	repo := NewCollectionRepository(testDB)
	ctx := context.Background()

	if err := repo.Put(ctx, KeyContent, json.RawMessage(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Delete(ctx, KeyContent); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.Get(ctx, KeyContent); err != ErrCollectionNotFound {
		t.Errorf("expected ErrCollectionNotFound after delete, got %v", err)
	}
}

func TestProductRepository_ListDegradesOnCorruptPayload(t *testing.T) {
	collections := NewCollectionRepository(testDB)
	repo := NewProductRepository(collections, zap.NewNop())
	ctx := context.Background()

	// JSONB accepts any valid JSON, including shapes the repository cannot
	// decode into a product slice.
	if err := collections.Put(ctx, KeyProducts, json.RawMessage(`{"not":"an array"}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List should not fail on corrupt payload: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty fallback, got %d products", len(products))
	}
}

func TestProductRepository_CRUD(t *testing.T) {
	collections := NewCollectionRepository(testDB)
	repo := NewProductRepository(collections, zap.NewNop())
	ctx := context.Background()

	if err := repo.Replace(ctx, []domain.Product{}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	product := domain.Product{ID: "product-1", Name: "Smart Watch", Category: "Electronics", Price: 199.99, Cost: 120}
	if err := repo.Add(ctx, product); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	found, err := repo.FindByID(ctx, "product-1")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Name != "Smart Watch" {
		t.Errorf("expected Smart Watch, got %s", found.Name)
	}

	product.Price = 149.99
	if err := repo.Update(ctx, product); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	found, err = repo.FindByID(ctx, "product-1")
	if err != nil {
		t.Fatalf("FindByID after update failed: %v", err)
	}
	if found.Price != 149.99 {
		t.Errorf("expected updated price 149.99, got %v", found.Price)
	}

	if err := repo.Delete(ctx, "product-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, "product-1"); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "product-1"); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound on double delete, got %v", err)
	}
}

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	repo := NewSessionRepository(testDB)
	ctx := context.Background()

	user := &domain.User{ID: "admin@example.com", Email: "admin@example.com", Name: "Admin", Role: domain.RoleAdmin}
	if err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Email != user.Email || got.Role != domain.RoleAdmin {
		t.Errorf("session mismatch: got %+v", got)
	}

	// Saving again replaces the single session slot.
	other := &domain.User{ID: "ops@example.com", Email: "ops@example.com", Name: "Ops", Role: domain.RoleAdmin}
	if err := repo.Save(ctx, other); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	got, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get after replace failed: %v", err)
	}
	if got.Email != other.Email {
		t.Errorf("expected replaced session, got %s", got.Email)
	}

	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(ctx); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
