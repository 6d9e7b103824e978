package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle("legal")
	if err != nil {
		t.Fatalf("LoadStyle(legal): %v", err)
	}
	for _, want := range []string{"Times New Roman", ".company-info", ".back-link"} {
		if !strings.Contains(css, want) {
			t.Errorf("legal style missing %q", want)
		}
	}
}

func TestLoadStyle_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadStyle("nonexistent")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("got %v, want ErrStyleNotFound", err)
	}
}

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	tmpl, err := LoadTemplate("page")
	if err != nil {
		t.Fatalf("LoadTemplate(page): %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "{{.Title}}", "{{.Organization}}", "company-info"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("page template missing %q", want)
		}
	}
}

func TestLoadTemplate_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadTemplate("nonexistent")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("got %v, want ErrTemplateNotFound", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	invalid := []string{"", "../legal", "styles/legal", `c:\legal`, "a/../b"}
	for _, name := range invalid {
		if _, err := LoadStyle(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle(%q) = %v, want ErrInvalidAssetName", name, err)
		}
	}
}
