package errs

import "testing"

func TestParseErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "line-only",
			err:  New(3, "Invalid indent space"),
			want: "3: Invalid indent space",
		},
		{
			name: "with row",
			err:  NewAt(7, 12, "Out of range integer value"),
			want: "7 12: Out of range integer value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrorIsError(t *testing.T) {
	var err error = New(1, "boom")
	if err.Error() != "1: boom" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
