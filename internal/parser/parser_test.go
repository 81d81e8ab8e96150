package parser_test

import (
	"errors"
	"testing"

	"github.com/saadjs/dietman/internal/parser"
)

func TestPrepareInputKeywordOnly(t *testing.T) {
	t.Parallel()
	keyword, description, err := parser.PrepareInput("  Exit  ")
	if err != nil {
		t.Fatalf("prepare input: %v", err)
	}
	if keyword != "exit" {
		t.Fatalf("expected lowercased keyword %q, got %q", "exit", keyword)
	}
	if description != "" {
		t.Fatalf("expected empty description, got %q", description)
	}
}

func TestPrepareInputKeywordAndDescription(t *testing.T) {
	t.Parallel()
	keyword, description, err := parser.PrepareInput("SET-NAME   John Doe")
	if err != nil {
		t.Fatalf("prepare input: %v", err)
	}
	if keyword != "set-name" {
		t.Fatalf("expected keyword %q, got %q", "set-name", keyword)
	}
	if description != "John Doe" {
		t.Fatalf("expected trimmed description %q, got %q", "John Doe", description)
	}
}

func TestParseDescriptionLastFieldAbsorbsRest(t *testing.T) {
	t.Parallel()
	fields, err := parser.ParseDescription("monday morning chicken rice -- 500", 3)
	if err != nil {
		t.Fatalf("parse description: %v", err)
	}
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d: %v", len(fields), fields)
	}
	if fields[0] != "monday" || fields[1] != "morning" {
		t.Fatalf("unexpected leading fields: %v", fields)
	}
	if fields[2] != "chicken rice -- 500" {
		t.Fatalf("expected last field to absorb the remainder verbatim, got %q", fields[2])
	}
}

func TestParseDescriptionExactFieldCount(t *testing.T) {
	t.Parallel()
	fields, err := parser.ParseDescription("Alice 25 Female 165 60 55", 6)
	if err != nil {
		t.Fatalf("parse description: %v", err)
	}
	if len(fields) != 6 {
		t.Fatalf("expected 6 fields, got %d: %v", len(fields), fields)
	}
	if fields[5] != "55" {
		t.Fatalf("expected final field %q, got %q", "55", fields[5])
	}
}

func TestParseDescriptionTooFewTokens(t *testing.T) {
	t.Parallel()
	if _, err := parser.ParseDescription("monday", 2); !errors.Is(err, parser.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}
