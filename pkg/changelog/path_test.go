package changelog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{
			name: "empty path",
			path: nil,
			want: "",
		},
		{
			name: "single key",
			path: Path{{Key: "user"}},
			want: "user",
		},
		{
			name: "nested keys",
			path: Path{{Key: "user"}, {Key: "name"}},
			want: "user.name",
		},
		{
			name: "index under key",
			path: Path{{Key: "items"}, {Index: 1, IsIndex: true}},
			want: "items.[1]",
		},
		{
			name: "root index",
			path: Path{{Index: 0, IsIndex: true}},
			want: "[0]",
		},
		{
			name: "index then key",
			path: Path{{Key: "users"}, {Index: 2, IsIndex: true}, {Key: "email"}},
			want: "users.[2].email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	paths := []string{
		"",
		"user",
		"user.name",
		"items.[1]",
		"[0]",
		"users.[2].email",
		"a.b.c.[10].d",
	}

	for _, s := range paths {
		parsed, err := ParsePath(s)
		if err != nil {
			t.Fatalf("ParsePath(%q) returned error: %v", s, err)
		}
		if got := parsed.String(); got != s {
			t.Errorf("round trip of %q produced %q", s, got)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []string{
		"a..b",
		".leading",
		"trailing.",
		"items.[x]",
		"items.[]",
	}

	for _, s := range tests {
		if _, err := ParsePath(s); err == nil {
			t.Errorf("ParsePath(%q) expected error, got nil", s)
		}
	}
}

func TestPathChildDoesNotAlias(t *testing.T) {
	base := Path{{Key: "root"}}
	a := base.Child(Segment{Key: "a"})
	b := base.Child(Segment{Key: "b"})

	if diff := cmp.Diff(Path{{Key: "root"}, {Key: "a"}}, a); diff != "" {
		t.Errorf("child a mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Path{{Key: "root"}, {Key: "b"}}, b); diff != "" {
		t.Errorf("child b mismatch (-want +got):\n%s", diff)
	}
}
