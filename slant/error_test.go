package slant

import "testing"

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "custom message wins",
			err:  Error{Message: "boom"},
			want: "boom",
		},
		{
			name: "wrong vertex count",
			err: Error{
				Scope:     GivensScope,
				Structure: ScopeStructure,
				Condition: WrongVertexCountCondition,
				Values:    ErrorData{3, 9},
			},
			want: "Invalid givens: Decoded to 3 vertices, expected 9",
		},
		{
			name: "loop would form",
			err: Error{
				Scope:     BoardScope,
				Structure: ScopeStructure,
				Condition: LoopWouldFormCondition,
				Values:    ErrorData{Slash, Cell{X: 1, Y: 2}},
			},
			want: "Invalid board operation: Placing 1 at {1 2 0} would close a loop",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Fatalf("Error() = %q, want %q", got, c.want)
			}
		})
	}
}
