package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

func TestClientService_Create(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	client, err := svc.Create(context.Background(), ports.CreateClientInput{
		Name:  "  Acme Kitchens  ",
		Email: " billing@acme.test ",
		Phone: "555-0101",
		Notes: "net 30",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if client.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if client.Name != "Acme Kitchens" {
		t.Fatalf("name not trimmed: %q", client.Name)
	}
	if client.Email != "billing@acme.test" {
		t.Fatalf("email not trimmed: %q", client.Email)
	}
}

func TestClientService_Create_MissingName(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateClientInput{Name: "   "})
	var missing *domain.MissingValueError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingValueError, got %v", err)
	}
	if missing.Column != "name" {
		t.Fatalf("expected column name, got %q", missing.Column)
	}
	if len(repo.clients) != 0 {
		t.Fatalf("no client should be stored, got %d", len(repo.clients))
	}
}

func TestClientService_List(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	for _, name := range []string{"Acme", "Baker & Sons"} {
		if _, err := svc.Create(context.Background(), ports.CreateClientInput{Name: name}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	summaries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
}
