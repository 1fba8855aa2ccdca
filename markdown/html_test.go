package markdown

import (
	"strings"
	"testing"
)

func TestHTMLConvert(t *testing.T) {
	converter := NewHTMLConverter()

	got, err := converter.Convert("# Hello\n\nSome *emphasis* here.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(got, `<h1 id="hello">Hello</h1>`) {
		t.Errorf("Expected heading with anchor, got:\n%s", got)
	}
	if !strings.Contains(got, "<em>emphasis</em>") {
		t.Errorf("Expected emphasis markup, got:\n%s", got)
	}
}

func TestHTMLConvertTable(t *testing.T) {
	converter := NewHTMLConverter()

	md := "| a | b |\n| --- | --- |\n| 1 | 2 |"
	got, err := converter.Convert(md)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(got, "<table>") {
		t.Errorf("Expected a table element, got:\n%s", got)
	}
}

func TestHTMLConvertPage(t *testing.T) {
	converter := NewHTMLConverter()

	got, err := converter.ConvertPage("body text", "Q&A Notes")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("Expected a full page document, got:\n%s", got)
	}
	if !strings.Contains(got, "<title>Q&amp;A Notes</title>") {
		t.Errorf("Expected escaped title, got:\n%s", got)
	}
	if !strings.Contains(got, "<p>body text</p>") {
		t.Errorf("Expected rendered body, got:\n%s", got)
	}

	fallback, err := converter.ConvertPage("x", "  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(fallback, "<title>Document</title>") {
		t.Errorf("Expected fallback title, got:\n%s", fallback)
	}
}

func TestHTMLConvertPageDirection(t *testing.T) {
	converter := NewHTMLConverter()

	ltr, err := converter.ConvertPage("# Hello\n\nPlain paragraph.", "Notes")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(ltr, "<html>") {
		t.Errorf("Expected no dir attribute for left-to-right text, got:\n%s", ltr)
	}

	rtl, err := converter.ConvertPage("# שלום\n\nפסקה ראשונה.", "Notes")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(rtl, `<html dir="rtl">`) {
		t.Errorf("Expected dir attribute for right-to-left text, got:\n%s", rtl)
	}
}
