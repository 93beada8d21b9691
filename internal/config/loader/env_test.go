package loader

import (
	"errors"
	"reflect"
	"testing"
)

func environ(vars ...string) func() []string {
	return func() []string { return vars }
}

func TestEnvLoader_Load(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix, WithEnviron(environ(
		"CALC_BOUNDS_MIN=-5",
		"CALC_BOUNDS_MIN_ENABLED=false",
		"CALC_FORMAT_MAX_FRACTION_DIGITS=2",
		"CALC_FORMAT_PLACEHOLDER=",
		"HOME=/root",
		"CALC_=ignored",
	)))

	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[string]any{
		"bounds.min":               "-5",
		"bounds.minEnabled":        "false",
		"format.maxFractionDigits": "2",
		"format.placeholder":       "",
	}
	if flat := Flatten(got); !reflect.DeepEqual(flat, want) {
		t.Errorf("Load() = %v, want %v", flat, want)
	}
}

func TestEnvLoader_DotEnv(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile(".env", "CALC_FORMAT_STYLE=currency\nCALC_FORMAT_LOCALE=de-DE\n# comment\n")

	l := NewEnvLoader(DefaultEnvPrefix,
		WithEnvFS(memfs),
		WithDotEnv(".env"),
		WithEnviron(environ("CALC_FORMAT_LOCALE=fr-FR")),
	)

	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[string]any{
		"format.style":  "currency",
		"format.locale": "fr-FR",
	}
	if flat := Flatten(got); !reflect.DeepEqual(flat, want) {
		t.Errorf("Load() = %v, want %v", flat, want)
	}
}

func TestEnvLoader_DotEnvMissing(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix,
		WithEnvFS(NewMemFS()),
		WithDotEnv(".env"),
		WithEnviron(environ()),
	)
	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want empty", got)
	}
}

func TestEnvLoader_DotEnvInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile(".env", "CALC_FORMAT_STYLE='unterminated\n")
	l := NewEnvLoader(DefaultEnvPrefix, WithEnvFS(memfs), WithDotEnv(".env"), WithEnviron(environ()))

	_, err := l.Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("Load() error = %v, want *ParseError", err)
	}
}

func TestEnvLoader_Mapping(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix,
		WithMapping(map[string]string{"LC_MONETARY": "format.locale"}),
		WithEnviron(environ("LC_MONETARY=ja-JP")),
	)
	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v := Flatten(got)["format.locale"]; v != "ja-JP" {
		t.Errorf("format.locale = %v, want ja-JP", v)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix)

	tests := []struct {
		env  string
		want string
	}{
		{"CALC_BOUNDS_MIN", "bounds.min"},
		{"CALC_BOUNDS_MAX_ENABLED", "bounds.maxEnabled"},
		{"CALC_DIALOG_ORDER_OF_OPERATIONS_APPLIED", "dialog.orderOfOperationsApplied"},
		{"CALC_FORMAT_GROUP__SIZE", "format.groupSize"},
		{"CALC_SECTION", "section"},
	}

	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}
