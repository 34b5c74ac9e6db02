package catalog

import (
	"encoding/json"
	"testing"
)

func TestFlexStringUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
		want string
	}{
		{
			name: "string value",
			json: `"5000"`,
			want: "5000",
		},
		{
			name: "number value",
			json: `5000`,
			want: "5000",
		},
		{
			name: "placeholder dash",
			json: `"-"`,
			want: "-",
		},
		{
			name: "null",
			json: `null`,
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f flexString
			if err := json.Unmarshal([]byte(tt.json), &f); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.json, err)
			}
			if string(f) != tt.want {
				t.Errorf("got %q, want %q", string(f), tt.want)
			}
		})
	}
}

func TestFlexStringInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value flexString
		want  *int
	}{
		{
			name:  "numeric string",
			value: "4",
			want:  intPtr(4),
		},
		{
			name:  "placeholder dash is absent",
			value: "-",
			want:  nil,
		},
		{
			name:  "empty string is absent",
			value: "",
			want:  nil,
		},
		{
			name:  "non-numeric text is absent",
			value: "无",
			want:  nil,
		},
		{
			name:  "surrounding whitespace is tolerated",
			value: " 6000 ",
			want:  intPtr(6000),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.value.Int()
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Int() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("Int() = %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestFlexStringsUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
		want []string
	}{
		{
			name: "array of strings",
			json: `["斩","特"]`,
			want: []string{"斩", "特"},
		},
		{
			name: "single string",
			json: `"打"`,
			want: []string{"打"},
		},
		{
			name: "null",
			json: `null`,
			want: nil,
		},
		{
			name: "empty string",
			json: `""`,
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f flexStrings
			if err := json.Unmarshal([]byte(tt.json), &f); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.json, err)
			}
			if len(f) != len(tt.want) {
				t.Fatalf("got %v, want %v", f, tt.want)
			}
			for i := range f {
				if f[i] != tt.want[i] {
					t.Errorf("element %d: got %q, want %q", i, f[i], tt.want[i])
				}
			}
		})
	}
}

// intPtr is a test helper for optional int literals.
func intPtr(n int) *int {
	return &n
}
