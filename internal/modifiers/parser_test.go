package modifiers_test

import (
	"errors"
	"strings"
	"testing"

	"tglauncher/internal/faults"
	"tglauncher/internal/modifiers"
)

func TestParseFragmentSimplePairs(t *testing.T) {
	content := []byte(`# events below
small_mod = 1

other = yes
no_equals_line
`)
	blocks, err := modifiers.ParseFragment(content)
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].ID != "small_mod" || blocks[0].Body != "1" || blocks[0].Line != 2 {
		t.Fatalf("unexpected first block: %+v", blocks[0])
	}
	if blocks[1].ID != "other" || blocks[1].Body != "yes" {
		t.Fatalf("unexpected second block: %+v", blocks[1])
	}
}

func TestParseFragmentBracedBlock(t *testing.T) {
	content := []byte(`war_exhaustion = {
	icon = 10
	nested = { factor = 0.5 }
}
plain = 2
`)
	blocks, err := modifiers.ParseFragment(content)
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	body := blocks[0].Body
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
		t.Fatalf("braced body not captured: %q", body)
	}
	if !strings.Contains(body, "nested = { factor = 0.5 }") {
		t.Fatalf("nested block lost: %q", body)
	}
	if blocks[1].ID != "plain" {
		t.Fatalf("block after braced body lost: %+v", blocks[1])
	}
}

func TestParseFragmentCRLF(t *testing.T) {
	content := []byte("a = {\r\n\ticon = 1\r\n}\r\nb = 2\r\n")
	blocks, err := modifiers.ParseFragment(content)
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	if len(blocks) != 2 || blocks[1].ID != "b" {
		t.Fatalf("unexpected blocks: %+v", blocks)
	}
	if strings.Contains(blocks[0].Body, "\r") {
		t.Fatalf("carriage returns leaked into body: %q", blocks[0].Body)
	}
}

func TestParseFragmentUnbalancedBraces(t *testing.T) {
	content := []byte("fine = 1\nbroken = {\n\ticon = 2\n")
	_, err := modifiers.ParseFragment(content)
	if !errors.Is(err, faults.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken") || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error should name the block and line: %v", err)
	}
}
