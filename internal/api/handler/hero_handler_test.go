package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/herovault/hero-api/internal/api/middleware"
	"github.com/herovault/hero-api/internal/core/domain"
	"github.com/herovault/hero-api/internal/core/ports"
)

type stubHeroService struct {
	listFn   func(ctx context.Context, ownerID string) ([]domain.Hero, error)
	createFn func(ctx context.Context, input ports.CreateHeroInput) (*domain.Hero, error)
	updateFn func(ctx context.Context, input ports.UpdateHeroInput) (*domain.Hero, error)
	deleteFn func(ctx context.Context, id int64, ownerID string) error
}

func (s *stubHeroService) ListHeroes(ctx context.Context, ownerID string) ([]domain.Hero, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubHeroService) CreateHero(ctx context.Context, input ports.CreateHeroInput) (*domain.Hero, error) {
	return s.createFn(ctx, input)
}

func (s *stubHeroService) UpdateHero(ctx context.Context, input ports.UpdateHeroInput) (*domain.Hero, error) {
	return s.updateFn(ctx, input)
}

func (s *stubHeroService) DeleteHero(ctx context.Context, id int64, ownerID string) error {
	return s.deleteFn(ctx, id, ownerID)
}

// newHeroContext builds an echo context with the validator installed and the
// session identity already resolved, mirroring a request that passed the
// Session middleware.
func newHeroContext(t *testing.T, method, target, body, ownerID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ownerID != "" {
		c.Set(middleware.ContextOwnerID, ownerID)
	}
	return c, rec
}

func httpError(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestHeroHandler_List_Success(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubHeroService{
		listFn: func(ctx context.Context, ownerID string) ([]domain.Hero, error) {
			if ownerID != "user-a" {
				t.Fatalf("unexpected owner id %q", ownerID)
			}
			return []domain.Hero{
				{ID: 1, OwnerID: "user-a", Name: "Atlas", Style: "Tank", Health: 5000, Damage: 40, Resistance: 3.5, CreatedAt: created, UpdatedAt: created},
			}, nil
		},
	}
	c, rec := newHeroContext(t, http.MethodGet, "/api/heroes", "", "user-a")

	if err := NewHeroHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	heroes, ok := resp["heroes"]
	if !ok || len(heroes) != 1 {
		t.Fatalf("expected one hero in envelope, got %+v", resp)
	}
	if heroes[0]["name"] != "Atlas" || heroes[0]["ownerId"] != "user-a" {
		t.Fatalf("unexpected hero payload: %+v", heroes[0])
	}
}

func TestHeroHandler_List_EmptyIsNotNull(t *testing.T) {
	stub := &stubHeroService{
		listFn: func(ctx context.Context, ownerID string) ([]domain.Hero, error) {
			return nil, nil
		},
	}
	c, rec := newHeroContext(t, http.MethodGet, "/api/heroes", "", "user-a")

	if err := NewHeroHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"heroes":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestHeroHandler_List_NoIdentity(t *testing.T) {
	stub := &stubHeroService{
		listFn: func(ctx context.Context, ownerID string) ([]domain.Hero, error) {
			t.Fatal("service must not be called without identity")
			return nil, nil
		},
	}
	c, _ := newHeroContext(t, http.MethodGet, "/api/heroes", "", "")

	err := NewHeroHandler(stub).List(c)
	he := httpError(t, err)
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

const atlasBody = `{"name":"Atlas","style":"Tank","health":5000,"damage":40,"resistance":3.5}`

func TestHeroHandler_Create_Success(t *testing.T) {
	stub := &stubHeroService{
		createFn: func(ctx context.Context, input ports.CreateHeroInput) (*domain.Hero, error) {
			if input.OwnerID != "user-a" {
				t.Fatalf("unexpected owner id %q", input.OwnerID)
			}
			if input.Name != "Atlas" || input.Style != "Tank" || input.Health != 5000 || input.Damage != 40 || input.Resistance != 3.5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			now := time.Now().UTC()
			return &domain.Hero{ID: 7, OwnerID: input.OwnerID, Name: input.Name, Style: input.Style,
				Health: input.Health, Damage: input.Damage, Resistance: input.Resistance, CreatedAt: now, UpdatedAt: now}, nil
		},
	}
	c, rec := newHeroContext(t, http.MethodPost, "/api/heroes", atlasBody, "user-a")

	if err := NewHeroHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	hero := resp["hero"]
	if hero["id"] != float64(7) || hero["name"] != "Atlas" || hero["health"] != float64(5000) {
		t.Fatalf("unexpected hero payload: %+v", hero)
	}
}

func TestHeroHandler_Create_CoercesNumericPayload(t *testing.T) {
	stub := &stubHeroService{
		createFn: func(ctx context.Context, input ports.CreateHeroInput) (*domain.Hero, error) {
			if input.Health != 5000 || input.Damage != 40 {
				t.Fatalf("expected truncated ints, got health=%d damage=%d", input.Health, input.Damage)
			}
			return &domain.Hero{ID: 1}, nil
		},
	}
	body := `{"name":"Atlas","style":"Tank","health":5000.9,"damage":40.2,"resistance":3.5}`
	c, rec := newHeroContext(t, http.MethodPost, "/api/heroes", body, "user-a")

	if err := NewHeroHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestHeroHandler_Create_ValidationMessages(t *testing.T) {
	longName := strings.Repeat("n", 51)
	longStyle := strings.Repeat("s", 256)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"style":"Tank","health":5000,"damage":40,"resistance":3.5}`, "All fields are required"},
		{"empty name", `{"name":"","style":"Tank","health":5000,"damage":40,"resistance":3.5}`, "All fields are required"},
		{"missing health", `{"name":"Atlas","style":"Tank","damage":40,"resistance":3.5}`, "All fields are required"},
		{"missing damage", `{"name":"Atlas","style":"Tank","health":5000,"resistance":3.5}`, "All fields are required"},
		{"missing resistance", `{"name":"Atlas","style":"Tank","health":5000,"damage":40}`, "All fields are required"},
		{"presence beats length", `{"name":"` + longName + `","style":"Tank","damage":40,"resistance":3.5}`, "All fields are required"},
		{"name too long", `{"name":"` + longName + `","style":"Tank","health":5000,"damage":40,"resistance":3.5}`, "Hero name must be 50 characters or less"},
		{"style too long", `{"name":"Atlas","style":"` + longStyle + `","health":5000,"damage":40,"resistance":3.5}`, "Hero style must be 255 characters or less"},
		{"health too low", `{"name":"Atlas","style":"Tank","health":999,"damage":40,"resistance":3.5}`, "Hero health must be at least 1000"},
		{"health zero", `{"name":"Atlas","style":"Tank","health":0,"damage":40,"resistance":3.5}`, "Hero health must be at least 1000"},
		{"damage too high", `{"name":"Atlas","style":"Tank","health":5000,"damage":101,"resistance":3.5}`, "Hero damage must be 100 or less"},
		{"resistance too high", `{"name":"Atlas","style":"Tank","health":5000,"damage":40,"resistance":10.5}`, "Hero resistance must be between 0.0 and 10.0"},
		{"resistance negative", `{"name":"Atlas","style":"Tank","health":5000,"damage":40,"resistance":-0.1}`, "Hero resistance must be between 0.0 and 10.0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubHeroService{
				createFn: func(ctx context.Context, input ports.CreateHeroInput) (*domain.Hero, error) {
					t.Fatal("service must not be called for invalid input")
					return nil, nil
				},
			}
			c, _ := newHeroContext(t, http.MethodPost, "/api/heroes", tc.body, "user-a")

			err := NewHeroHandler(stub).Create(c)
			he := httpError(t, err)
			if he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", he.Code)
			}
			if he.Message != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, he.Message)
			}
		})
	}
}

func TestHeroHandler_Create_NoLowerBoundOnDamage(t *testing.T) {
	for _, body := range []string{
		`{"name":"Atlas","style":"Tank","health":5000,"damage":0,"resistance":3.5}`,
		`{"name":"Atlas","style":"Tank","health":5000,"damage":-25,"resistance":3.5}`,
		`{"name":"Atlas","style":"Tank","health":5000,"damage":40,"resistance":0}`,
		`{"name":"Atlas","style":"Tank","health":5000,"damage":40,"resistance":10}`,
	} {
		stub := &stubHeroService{
			createFn: func(ctx context.Context, input ports.CreateHeroInput) (*domain.Hero, error) {
				return &domain.Hero{ID: 1}, nil
			},
		}
		c, rec := newHeroContext(t, http.MethodPost, "/api/heroes", body, "user-a")

		if err := NewHeroHandler(stub).Create(c); err != nil {
			t.Fatalf("body %s: unexpected error: %v", body, err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("body %s: expected 201, got %d", body, rec.Code)
		}
	}
}

func TestHeroHandler_Create_ServiceErrorPropagates(t *testing.T) {
	storeErr := errors.New("store unreachable")
	stub := &stubHeroService{
		createFn: func(ctx context.Context, input ports.CreateHeroInput) (*domain.Hero, error) {
			return nil, storeErr
		},
	}
	c, _ := newHeroContext(t, http.MethodPost, "/api/heroes", atlasBody, "user-a")

	if err := NewHeroHandler(stub).Create(c); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestHeroHandler_Update_Success(t *testing.T) {
	stub := &stubHeroService{
		updateFn: func(ctx context.Context, input ports.UpdateHeroInput) (*domain.Hero, error) {
			if input.ID != 7 || input.OwnerID != "user-a" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Hero{ID: 7, OwnerID: "user-a", Name: input.Name, Style: input.Style,
				Health: input.Health, Damage: input.Damage, Resistance: input.Resistance}, nil
		},
	}
	body := `{"id":7,"name":"Atlas","style":"Bruiser","health":6000,"damage":55,"resistance":4.5}`
	c, rec := newHeroContext(t, http.MethodPut, "/api/heroes", body, "user-a")

	if err := NewHeroHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"style":"Bruiser"`) {
		t.Fatalf("expected updated style in response, got %s", rec.Body.String())
	}
}

func TestHeroHandler_Update_MissingID(t *testing.T) {
	stub := &stubHeroService{
		updateFn: func(ctx context.Context, input ports.UpdateHeroInput) (*domain.Hero, error) {
			t.Fatal("service must not be called without an id")
			return nil, nil
		},
	}
	c, _ := newHeroContext(t, http.MethodPut, "/api/heroes", atlasBody, "user-a")

	err := NewHeroHandler(stub).Update(c)
	he := httpError(t, err)
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
	if he.Message != "Hero ID is required" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestHeroHandler_Update_IDCheckedBeforeValidation(t *testing.T) {
	stub := &stubHeroService{}
	// Invalid payload and missing id: the id failure must win.
	c, _ := newHeroContext(t, http.MethodPut, "/api/heroes", `{"health":1}`, "user-a")

	err := NewHeroHandler(stub).Update(c)
	he := httpError(t, err)
	if he.Message != "Hero ID is required" {
		t.Fatalf("expected id message first, got %v", he.Message)
	}
}

func TestHeroHandler_Update_ValidatesLikeCreate(t *testing.T) {
	stub := &stubHeroService{
		updateFn: func(ctx context.Context, input ports.UpdateHeroInput) (*domain.Hero, error) {
			t.Fatal("service must not be called for invalid input")
			return nil, nil
		},
	}
	body := `{"id":7,"name":"Atlas","style":"Tank","health":999,"damage":40,"resistance":3.5}`
	c, _ := newHeroContext(t, http.MethodPut, "/api/heroes", body, "user-a")

	err := NewHeroHandler(stub).Update(c)
	he := httpError(t, err)
	if he.Code != http.StatusBadRequest || he.Message != "Hero health must be at least 1000" {
		t.Fatalf("unexpected error: code=%d message=%v", he.Code, he.Message)
	}
}

func TestHeroHandler_Update_NotFoundPropagates(t *testing.T) {
	stub := &stubHeroService{
		updateFn: func(ctx context.Context, input ports.UpdateHeroInput) (*domain.Hero, error) {
			return nil, domain.ErrHeroNotFound
		},
	}
	body := `{"id":999,"name":"Atlas","style":"Tank","health":5000,"damage":40,"resistance":3.5}`
	c, _ := newHeroContext(t, http.MethodPut, "/api/heroes", body, "user-a")

	if err := NewHeroHandler(stub).Update(c); !errors.Is(err, domain.ErrHeroNotFound) {
		t.Fatalf("expected ErrHeroNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestHeroHandler_Delete_Success(t *testing.T) {
	stub := &stubHeroService{
		deleteFn: func(ctx context.Context, id int64, ownerID string) error {
			if id != 7 || ownerID != "user-a" {
				t.Fatalf("unexpected args: id=%d owner=%q", id, ownerID)
			}
			return nil
		},
	}
	c, rec := newHeroContext(t, http.MethodDelete, "/api/heroes?id=7", "", "user-a")

	if err := NewHeroHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Hero deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHeroHandler_Delete_MissingID(t *testing.T) {
	for _, target := range []string{"/api/heroes", "/api/heroes?id=abc"} {
		stub := &stubHeroService{
			deleteFn: func(ctx context.Context, id int64, ownerID string) error {
				t.Fatal("service must not be called without a valid id")
				return nil
			},
		}
		c, _ := newHeroContext(t, http.MethodDelete, target, "", "user-a")

		err := NewHeroHandler(stub).Delete(c)
		he := httpError(t, err)
		if he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, he.Code)
		}
		if he.Message != "Hero ID is required" {
			t.Fatalf("%s: unexpected message: %v", target, he.Message)
		}
	}
}

func TestHeroHandler_Delete_NotFoundPropagates(t *testing.T) {
	stub := &stubHeroService{
		deleteFn: func(ctx context.Context, id int64, ownerID string) error {
			return domain.ErrHeroNotFound
		},
	}
	c, _ := newHeroContext(t, http.MethodDelete, "/api/heroes?id=999", "", "user-a")

	if err := NewHeroHandler(stub).Delete(c); !errors.Is(err, domain.ErrHeroNotFound) {
		t.Fatalf("expected ErrHeroNotFound, got %v", err)
	}
}
