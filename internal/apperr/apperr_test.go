package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"message only", New(KindConfiguration, "DATABASE_URL cannot be empty"), "DATABASE_URL cannot be empty"},
		{"with cause", Wrap(KindInfrastructure, errors.New("disk full"), "failed to run migrations"), "failed to run migrations: disk full"},
		{
			"nested",
			Wrap(KindInternal, Wrap(KindInfrastructure, errors.New("closed"), "database connection failed"), "health check failed"),
			"health check failed: database connection failed: closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(KindInfrastructure, nil, "unused"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error", errors.New("boom"), KindInternal},
		{"configuration", New(KindConfiguration, "missing"), KindConfiguration},
		{"infrastructure", Wrap(KindInfrastructure, errors.New("x"), "connect"), KindInfrastructure},
		{"fmt wrapped", fmt.Errorf("startup: %w", New(KindConfiguration, "missing")), KindConfiguration},
		{"outermost wins", Wrap(KindInternal, New(KindInfrastructure, "inner"), "outer"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAndUnwrap(t *testing.T) {
	cause := errors.New("no such table: demo")
	err := Wrap(KindInfrastructure, cause, "failed to fetch demo records")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !Is(err, KindInfrastructure) {
		t.Error("Is(err, KindInfrastructure) = false, want true")
	}
	if Is(err, KindConfiguration) {
		t.Error("Is(err, KindConfiguration) = true, want false")
	}
}

func TestKindString(t *testing.T) {
	for kind, want := range map[Kind]string{
		KindInternal:       "internal",
		KindConfiguration:  "configuration",
		KindInfrastructure: "infrastructure",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
