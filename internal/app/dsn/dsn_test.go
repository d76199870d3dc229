package dsn

import "testing"

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "servicedesk")

	want := "host=localhost port=5433 user=postgres password=secret dbname=servicedesk sslmode=disable"
	if got := FromEnv(); got != want {
		t.Errorf("FromEnv() = %q, want %q", got, want)
	}
}

func TestFromEnvDefaultPort(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASS", "p")
	t.Setenv("DB_NAME", "n")

	want := "host=db port=5432 user=u password=p dbname=n sslmode=disable"
	if got := FromEnv(); got != want {
		t.Errorf("FromEnv() = %q, want %q", got, want)
	}
}

func TestFromEnvMissingHost(t *testing.T) {
	t.Setenv("DB_HOST", "")
	if got := FromEnv(); got != "" {
		t.Errorf("FromEnv() = %q, want empty when DB_HOST unset", got)
	}
}
