package dsn

import "testing"

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "")
	if got := FromEnv(); got != "" {
		t.Fatalf("expected empty dsn without DB_HOST, got %q", got)
	}

	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "backoffice")
	t.Setenv("DB_SSLMODE", "")

	want := "host=db port=5432 user=app password=secret dbname=backoffice sslmode=disable"
	if got := FromEnv(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
