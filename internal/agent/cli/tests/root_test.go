package tests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/agent/api"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/agent/cli"
	serverapi "github.com/IvanChernomyrdin/go-users-items-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
	h "github.com/IvanChernomyrdin/go-users-items-api/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/repository"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/service"
)

// newTestServer поднимает настоящий роутер поверх in-memory хранилищ.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc := service.NewServices(service.Repositories{
		Users: repository.NewUsersRepository(),
		Items: repository.NewItemsRepository(),
	})
	srv := httptest.NewServer(h.NewRouter(serverapi.NewHandler(svc, nil), h.Options{}))
	t.Cleanup(srv.Close)
	return srv
}

// run выполняет root-команду с аргументами и возвращает stdout.
func run(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd("test", "today")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--server", serverURL}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := cli.NewRootCmd("v", "d")

	for _, name := range []string{"users", "items", "version"} {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected subcommand %q", name)
		}
	}

	f := cmd.PersistentFlags().Lookup("server")
	if f == nil || f.DefValue != cli.DefaultServerURL {
		t.Fatalf("expected --server default %q, got %+v", cli.DefaultServerURL, f)
	}
}

func TestUsers_CreateGetUpdateDelete(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, srv.URL, "users", "create", "--name", "Ann", "--email", "ann@x.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var u models.User
	if err := json.Unmarshal([]byte(out), &u); err != nil {
		t.Fatalf("decode create output %q: %v", out, err)
	}
	if u.ID != 1 || u.Name != "Ann" || u.Email != "ann@x.com" || u.CreatedAt == "" {
		t.Fatalf("unexpected user: %+v", u)
	}

	out, err = run(t, srv.URL, "users", "update", "1", "--email", "anna@x.com")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &u); err != nil {
		t.Fatalf("decode update output: %v", err)
	}
	if u.Name != "Ann" || u.Email != "anna@x.com" {
		t.Fatalf("expected only email changed, got %+v", u)
	}

	out, err = run(t, srv.URL, "users", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var users []models.User
	if err := json.Unmarshal([]byte(out), &users); err != nil || len(users) != 1 {
		t.Fatalf("expected one user, got %q (%v)", out, err)
	}

	out, err = run(t, srv.URL, "users", "delete", "1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "deleted user 1") {
		t.Fatalf("unexpected delete output %q", out)
	}

	_, err = run(t, srv.URL, "users", "get", "1")
	if err == nil || !strings.Contains(err.Error(), "User not found") {
		t.Fatalf("expected User not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "user 1 does not exist") {
		t.Fatalf("expected id in not found message, got %v", err)
	}
}

func TestItems_Get_Missing(t *testing.T) {
	srv := newTestServer(t)

	_, err := run(t, srv.URL, "items", "get", "7")
	if err == nil || err.Error() != "item 7 does not exist: 404: Item not found" {
		t.Fatalf("unexpected error %v", err)
	}

	// "1/2" уходит одним экранированным сегментом /api/items/{id}
	_, err = run(t, srv.URL, "items", "get", "1/2")
	if !api.IsNotFound(err) {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestUsers_Create_MissingEmail(t *testing.T) {
	srv := newTestServer(t)

	_, err := run(t, srv.URL, "users", "create", "--name", "Ann")
	if err == nil || err.Error() != "400: Name and email are required" {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUsers_Update_NoFlags(t *testing.T) {
	srv := newTestServer(t)

	if _, err := run(t, srv.URL, "users", "create", "--name", "Ann", "--email", "a@x"); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := run(t, srv.URL, "users", "update", "1")
	if err == nil || !strings.Contains(err.Error(), "At least one field (name or email) must be provided") {
		t.Fatalf("expected no-fields error, got %v", err)
	}
}

func TestItems_ZeroPrice_DefaultCategory_Filter(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, srv.URL, "items", "create",
		"--name", "Freebie", "--description", "promo", "--price", "0")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var it models.Item
	if err := json.Unmarshal([]byte(out), &it); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if it.Price != 0 || it.Category != "uncategorized" {
		t.Fatalf("unexpected item: %+v", it)
	}

	if _, err := run(t, srv.URL, "items", "create",
		"--name", "Book", "--description", "Go", "--price", "39.99", "--category", "books"); err != nil {
		t.Fatalf("create book: %v", err)
	}

	out, err = run(t, srv.URL, "items", "list", "--category", "books")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var items []models.Item
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Book" {
		t.Fatalf("expected only the book, got %+v", items)
	}

	out, err = run(t, srv.URL, "items", "update", "2", "--price", "0")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &it); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if it.Price != 0 || it.Name != "Book" {
		t.Fatalf("expected price reset to 0, got %+v", it)
	}
}

func TestItems_Create_NoPrice(t *testing.T) {
	srv := newTestServer(t)

	_, err := run(t, srv.URL, "items", "create", "--name", "n", "--description", "d")
	if err == nil || !strings.Contains(err.Error(), "Name, description, and price are required") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestItems_Delete_Twice(t *testing.T) {
	srv := newTestServer(t)

	if _, err := run(t, srv.URL, "items", "create",
		"--name", "n", "--description", "d", "--price", "1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := run(t, srv.URL, "items", "delete", "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err := run(t, srv.URL, "items", "delete", "1")
	if err == nil || !strings.Contains(err.Error(), "Item not found") {
		t.Fatalf("expected Item not found, got %v", err)
	}
}

func TestCommands_UseInjectedClient(t *testing.T) {
	srv := newTestServer(t)

	orig := cli.NewAPIClient
	t.Cleanup(func() { cli.NewAPIClient = orig })

	var gotURL string
	cli.NewAPIClient = func(baseURL string) *api.Client {
		gotURL = baseURL
		return orig(srv.URL)
	}

	if _, err := run(t, "http://ignored.example", "items", "list"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotURL != "http://ignored.example" {
		t.Fatalf("expected --server passed to client factory, got %q", gotURL)
	}
}
