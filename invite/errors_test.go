package invite

import (
	"context"
	"testing"

	errorslib "github.com/goliatone/go-errors"
)

func TestAsGoErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		category errorslib.Category
		code     string
	}{
		{NewError(KindValidation, "bad input", nil), errorslib.CategoryValidation, "validation"},
		{NewError(KindMissingField, "name is required", nil), errorslib.CategoryValidation, "missing_field"},
		{NewError(KindUnknownTemplate, "no such template", nil), errorslib.CategoryNotFound, "unknown_template"},
		{NewError(KindAsset, "logo missing", nil), errorslib.CategoryInternal, "asset_unavailable"},
		{NewError(KindBackend, "browser crashed", nil), errorslib.CategoryInternal, "render_backend"},
		{NewError(KindDecode, "payload corrupt", nil), errorslib.CategoryOperation, "payload_decode"},
		{context.DeadlineExceeded, errorslib.CategoryOperation, "timeout"},
		{context.Canceled, errorslib.CategoryOperation, "canceled"},
		{NewError(KindInternal, "boom", nil), errorslib.CategoryInternal, "internal"},
	}

	for _, tc := range cases {
		mapped := AsGoError(tc.err)
		if mapped == nil {
			t.Fatalf("expected mapping for %v", tc.err)
		}
		if mapped.Category != tc.category {
			t.Fatalf("expected category %s, got %s", tc.category, mapped.Category)
		}
		if mapped.TextCode != tc.code {
			t.Fatalf("expected text code %s, got %s", tc.code, mapped.TextCode)
		}
	}
}

func TestKindFromError(t *testing.T) {
	if got := KindFromError(nil); got != "" {
		t.Fatalf("expected empty kind for nil, got %s", got)
	}
	if got := KindFromError(NewError(KindUnknownTemplate, "nope", nil)); got != KindUnknownTemplate {
		t.Fatalf("expected unknown_template, got %s", got)
	}
	if got := KindFromError(context.DeadlineExceeded); got != KindTimeout {
		t.Fatalf("expected timeout, got %s", got)
	}
}
