package element

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddFilter(t *testing.T) {
	el := Must(New("email", nil))

	if el.Filters() != nil {
		t.Fatalf("fresh element Filters = %v, want nil", el.Filters())
	}

	el.AddFilter("trim")
	if got := el.Filters(); got != "trim" {
		t.Fatalf("after first add Filters = %v, want %q", got, "trim")
	}

	el.AddFilter("lower")
	want := []string{"trim", "lower"}
	if diff := cmp.Diff(want, el.Filters()); diff != "" {
		t.Fatalf("after second add (-want +got):\n%s", diff)
	}

	el.AddFilter("striptags")
	want = []string{"trim", "lower", "striptags"}
	if diff := cmp.Diff(want, el.Filters()); diff != "" {
		t.Fatalf("after third add (-want +got):\n%s", diff)
	}
}

func TestSetFilters(t *testing.T) {
	t.Run("single string", func(t *testing.T) {
		el := Must(New("email", nil))
		if err := el.SetFilters("trim"); err != nil {
			t.Fatalf("SetFilters: %v", err)
		}
		if got := el.Filters(); got != "trim" {
			t.Fatalf("Filters = %v", got)
		}
	})

	t.Run("string slice", func(t *testing.T) {
		el := Must(New("email", nil))
		if err := el.SetFilters([]string{"trim", "lower"}); err != nil {
			t.Fatalf("SetFilters: %v", err)
		}
		if diff := cmp.Diff([]string{"trim", "lower"}, el.Filters()); diff != "" {
			t.Fatalf("Filters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("any slice of strings", func(t *testing.T) {
		el := Must(New("email", nil))
		if err := el.SetFilters([]any{"trim", "lower"}); err != nil {
			t.Fatalf("SetFilters: %v", err)
		}
		if diff := cmp.Diff([]string{"trim", "lower"}, el.Filters()); diff != "" {
			t.Fatalf("Filters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("replaces previous filters", func(t *testing.T) {
		el := Must(New("email", nil))
		el.AddFilter("trim")
		el.AddFilter("lower")
		if err := el.SetFilters("upper"); err != nil {
			t.Fatalf("SetFilters: %v", err)
		}
		if got := el.Filters(); got != "upper" {
			t.Fatalf("Filters = %v, want %q", got, "upper")
		}
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		el := Must(New("email", nil))
		el.AddFilter("trim")

		for _, bad := range []any{nil, 42, map[string]any{}, []any{"trim", 1}, []int{1}} {
			if err := el.SetFilters(bad); !errors.Is(err, ErrInvalidFilters) {
				t.Fatalf("SetFilters(%v) error = %v, want ErrInvalidFilters", bad, err)
			}
		}

		if got := el.Filters(); got != "trim" {
			t.Fatalf("rejected SetFilters must leave state unchanged, got %v", got)
		}
	})

	t.Run("does not alias input or output", func(t *testing.T) {
		el := Must(New("email", nil))
		src := []string{"trim"}
		if err := el.SetFilters(src); err != nil {
			t.Fatalf("SetFilters: %v", err)
		}
		src[0] = "changed"

		got := el.Filters().([]string)
		if got[0] != "trim" {
			t.Fatal("SetFilters must copy the incoming slice")
		}
		got[0] = "mutated"
		if el.Filters().([]string)[0] != "trim" {
			t.Fatal("Filters must return a copy")
		}
	})
}

func TestFilterNames(t *testing.T) {
	el := Must(New("email", nil))
	if el.FilterNames() != nil {
		t.Fatal("FilterNames on unset filters should be nil")
	}

	el.AddFilter("trim")
	if diff := cmp.Diff([]string{"trim"}, el.FilterNames()); diff != "" {
		t.Fatalf("single filter (-want +got):\n%s", diff)
	}

	el.AddFilter("lower")
	if diff := cmp.Diff([]string{"trim", "lower"}, el.FilterNames()); diff != "" {
		t.Fatalf("filter list (-want +got):\n%s", diff)
	}
}
