package commands

import (
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"add Buy milk", []string{"add", "Buy", "milk"}},
		{"add   Buy\tmilk ", []string{"add", "Buy", "milk"}},
		{`add "Buy  milk"`, []string{"add", "Buy  milk"}},
		{`add 'say "hi"'`, []string{"add", `say "hi"`}},
		{`add pre"fix  ed"`, []string{"add", "prefix  ed"}},
		{`add ""`, []string{"add", ""}},
	}

	for _, tt := range tests {
		got, err := splitLine(tt.line)
		if err != nil {
			t.Errorf("splitLine(%q): unexpected error: %v", tt.line, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitLine(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSplitLine_Unterminated(t *testing.T) {
	if _, err := splitLine(`add "Buy milk`); err == nil {
		t.Error("expected an error for an unterminated quote")
	}
}
