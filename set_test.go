package jsonbuild

import (
	"testing"

	"github.com/tidwall/gjson"
)

// TestSetBasic tests one-shot writes against JSON text.
func TestSetBasic(t *testing.T) {
	doc, err := Set(nil, "$.user.firstName", "John")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	doc, err = Set(doc, "user.lastName", "Doe")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if got := gjson.GetBytes(doc, "user.firstName").String(); got != "John" {
		t.Errorf("Expected John, got %q", got)
	}
	if got := gjson.GetBytes(doc, "user.lastName").String(); got != "Doe" {
		t.Errorf("Expected Doe, got %q", got)
	}
}

// TestSetAppend tests the [*] marker against JSON text.
func TestSetAppend(t *testing.T) {
	doc, err := Set(nil, "$.user.friends[*]", "Marco")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	doc, err = Set(doc, "$.user.friends[*]", "Polo")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	friends := gjson.GetBytes(doc, "user.friends").Array()
	if len(friends) != 2 {
		t.Fatalf("Expected 2 elements, got %d in %s", len(friends), doc)
	}
	if friends[0].String() != "Marco" || friends[1].String() != "Polo" {
		t.Errorf("Unexpected append order: %s", doc)
	}
}

// TestSetEmbeddedJSON tests that embedded object text lands structured.
func TestSetEmbeddedJSON(t *testing.T) {
	doc, err := Set(nil, "$.details.social[*]", `{"facebook":"url"}`)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := gjson.GetBytes(doc, "details.social.0.facebook").String(); got != "url" {
		t.Errorf("Expected structured element, got %s", doc)
	}

	if _, err := Set(nil, "$.bad", "{broken"); err == nil {
		t.Error("Expected error for malformed embedded JSON")
	}
}

// TestSetNullAndMap tests null storage and mapping re-encoding over text.
func TestSetNullAndMap(t *testing.T) {
	doc, err := Set(nil, "$.gone", nil)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v := gjson.GetBytes(doc, "gone")
	if !v.Exists() || v.Type != gjson.Null {
		t.Errorf("Expected explicit null, got %s", doc)
	}

	doc, err = Set(doc, "$.nested", map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := gjson.GetBytes(doc, "nested.k").String(); got != "v" {
		t.Errorf("Expected mapping stored structured, got %s", doc)
	}
}

// TestTextDelete tests one-shot deletes, including unresolved paths.
func TestTextDelete(t *testing.T) {
	doc, err := Set(nil, "$.user.firstName", "John")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	doc, err = Set(doc, "$.user.lastName", "Doe")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	doc, err = Delete(doc, "$.user.firstName")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if gjson.GetBytes(doc, "user.firstName").Exists() {
		t.Error("firstName still present after delete")
	}
	if !gjson.GetBytes(doc, "user.lastName").Exists() {
		t.Error("Sibling removed by delete")
	}

	same, err := Delete(doc, "$.no.such.path")
	if err != nil {
		t.Fatalf("Delete of absent path failed: %v", err)
	}
	if string(same) != string(doc) {
		t.Errorf("Delete of absent path changed the document: %s vs %s", same, doc)
	}
}

// TestSetBuilderParity tests that the text API and the Builder agree on
// the canonical scenarios.
func TestSetBuilderParity(t *testing.T) {
	var doc []byte
	var err error
	steps := []struct {
		path  string
		value any
	}{
		{"$.user.firstName", "John"},
		{"$.user.lastName", "Doe"},
		{"$.user.friends[*]", "Marco"},
		{"$.user.friends[*]", "Polo"},
		{"$.user.details.social[*]", `{"facebook":"url"}`},
	}

	b := New()
	for _, step := range steps {
		if doc, err = Set(doc, step.path, step.value); err != nil {
			t.Fatalf("Set %s failed: %v", step.path, err)
		}
		if _, err = b.Put(step.path, step.value); err != nil {
			t.Fatalf("Put %s failed: %v", step.path, err)
		}
	}

	node, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	built, err := gjsonCodec{}.Encode(node)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if string(Compact(doc)) != string(Compact(built)) {
		t.Errorf("Text API and builder disagree:\ntext:    %s\nbuilder: %s", doc, built)
	}
}

// TestEscapeKey tests literal addressing of keys with path syntax in them.
func TestEscapeKey(t *testing.T) {
	doc, err := Set(nil, "$.config.a*b", "wild")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := gjson.GetBytes(doc, `config.a\*b`).String(); got != "wild" {
		t.Errorf("Expected literal key write, got %s", doc)
	}

	if got := escapeKey("plain"); got != "plain" {
		t.Errorf("Plain key changed: %q", got)
	}
	if got := escapeKey("a*b?c"); got != `a\*b\?c` {
		t.Errorf("Unexpected escaping: %q", got)
	}
}
