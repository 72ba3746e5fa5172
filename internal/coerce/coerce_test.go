package coerce

import "testing"

func TestToString(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: ""},
		{name: "string", input: "hello", want: "hello"},
		{name: "bytes", input: []byte("raw"), want: "raw"},
		{name: "int", input: 42, want: "42"},
		{name: "float", input: 1.5, want: "1.5"},
		{name: "bool", input: true, want: "true"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := ToString(tc.input); got != tc.want {
				t.Fatalf("ToString(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestToFloat64(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "int", input: 7, want: 7},
		{name: "int64", input: int64(-3), want: -3},
		{name: "uint", input: uint(9), want: 9},
		{name: "float32", input: float32(2.5), want: 2.5},
		{name: "string number", input: " 3.25 ", want: 3.25},
		{name: "string garbage", input: "abc", want: 0},
		{name: "bool true", input: true, want: 1},
		{name: "nil", input: nil, want: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := ToFloat64(tc.input); got != tc.want {
				t.Fatalf("ToFloat64(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "nil", input: nil, want: true},
		{name: "blank string", input: "", want: true},
		{name: "whitespace string", input: "   ", want: true},
		{name: "zero int", input: 0, want: false},
		{name: "false", input: false, want: false},
		{name: "zero string", input: "0", want: false},
		{name: "empty slice", input: []any{}, want: true},
		{name: "value", input: "x", want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := IsEmpty(tc.input); got != tc.want {
				t.Fatalf("IsEmpty(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "nil", input: nil, want: false},
		{name: "false", input: false, want: false},
		{name: "true", input: true, want: true},
		{name: "blank string", input: "", want: false},
		{name: "zero string", input: "0", want: false},
		{name: "nonzero string", input: "yes", want: true},
		{name: "zero int", input: 0, want: false},
		{name: "nonzero int", input: 3, want: true},
		{name: "zero float", input: 0.0, want: false},
		{name: "empty slice", input: []string{}, want: false},
		{name: "filled slice", input: []string{"a"}, want: true},
		{name: "empty map", input: map[string]any{}, want: false},
		{name: "struct value", input: struct{}{}, want: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Truthy(tc.input); got != tc.want {
				t.Fatalf("Truthy(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestLooseEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "one nil", a: nil, b: "", want: false},
		{name: "int vs string", a: 1, b: "1", want: true},
		{name: "float vs string", a: 1.5, b: "1.5", want: true},
		{name: "mismatch", a: "a", b: "b", want: false},
		{name: "bool vs string", a: true, b: "true", want: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := LooseEqual(tc.a, tc.b); got != tc.want {
				t.Fatalf("LooseEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestStringSlice(t *testing.T) {
	t.Run("string slice", func(t *testing.T) {
		got, ok := StringSlice([]string{"a", "b"})
		if !ok || len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Fatalf("StringSlice([]string) = %v, %v", got, ok)
		}
	})

	t.Run("any slice of strings", func(t *testing.T) {
		got, ok := StringSlice([]any{"a", "b"})
		if !ok || len(got) != 2 {
			t.Fatalf("StringSlice([]any) = %v, %v", got, ok)
		}
	})

	t.Run("mixed any slice", func(t *testing.T) {
		if _, ok := StringSlice([]any{"a", 1}); ok {
			t.Fatal("expected mixed slice to be rejected")
		}
	})

	t.Run("not a slice", func(t *testing.T) {
		if _, ok := StringSlice("a"); ok {
			t.Fatal("expected scalar to be rejected")
		}
	})

	t.Run("copy does not alias", func(t *testing.T) {
		src := []string{"a"}
		got, _ := StringSlice(src)
		got[0] = "changed"
		if src[0] != "a" {
			t.Fatal("StringSlice must copy its input")
		}
	})
}
