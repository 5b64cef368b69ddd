package internal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) ([]Stmt, error) {
	t.Helper()
	tokens, err := Scan([]byte(source))
	require.NoError(t, err)
	return Parse(tokens)
}

func TestParseTree(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3;", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3;", "(* (group (+ 1 2)) 3)"},
		{"1 - 2 - 3;", "(- (- 1 2) 3)"},
		{"8 / 4 / 2;", "(/ (/ 8 4) 2)"},
		{"-!x;", "(- (! x))"},
		{"1 < 2 == 3 >= 4;", "(== (< 1 2) (>= 3 4))"},
		{"a or b and c;", "(or a (and b c))"},
		{"a and b or c;", "(or (and a b) c)"},
		{"a = b = 1;", "(= a (= b 1))"},
		{"a = 1 or 2;", "(= a (or 1 2))"},
		{`print "hi";`, `(print "hi")`},
		{"print true != nil;", "(print (!= true nil))"},
		{"var x;", "(var x)"},
		{"var x = 1.5;", "(var x 1.5)"},
		{"{ var x = 1; print x; }", "(scope (var x 1) (print x))"},
		{"{}", "(scope)"},
		{"if (a) print 1;", "(if a (print 1))"},
		{"if (a) print 1; else print 2;", "(if a (print 1) (print 2))"},
		{"while (i < 3) i = i + 1;", "(while (< i 3) (= i (+ i 1)))"},
		{
			"for (var i = 0; i < 3; i = i + 1) print i;",
			"(scope (var i 0) (while (< i 3) (scope (print i) (= i (+ i 1)))))",
		},
		{"for (;;) print 1;", "(while true (print 1))"},
	}

	for _, tt := range tests {
		stmts, err := parseSource(t, tt.source)
		require.NoError(t, err, tt.source)
		if diff := cmp.Diff(tt.want+"\n", PrintTree(stmts)); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.source, diff)
		}
	}
}

func TestParseStatements(t *testing.T) {
	stmts, err := parseSource(t, "var a = 1;\nprint a;\n{ a = 2; }\n")
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	v, ok := stmts[0].(*varStmt)
	require.True(t, ok)
	require.Equal(t, "a", v.name.Lexeme)
	require.Equal(t, 1, v.name.Line)

	p, ok := stmts[1].(*printStmt)
	require.True(t, ok)
	require.Equal(t, 2, p.keyword.Line)

	b, ok := stmts[2].(*blockStmt)
	require.True(t, ok)
	require.Len(t, b.stmts, 1)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []*ParseError
	}{
		{
			name:   "missing expression",
			source: "print ;",
			want:   []*ParseError{{Msg: msgExpectExpr, Line: 1}},
		},
		{
			name:   "missing semicolon at end of input",
			source: "print 1\n",
			want:   []*ParseError{{Msg: msgExpectSemiAfterVal, Line: 2}},
		},
		{
			name:   "unclosed group",
			source: "print (1 + 2;",
			want:   []*ParseError{{Msg: msgExpectRightParen, Line: 1}},
		},
		{
			name:   "unclosed block",
			source: "{ print 1;",
			want:   []*ParseError{{Msg: msgExpectRightBrace, Line: 1}},
		},
		{
			name:   "var without name",
			source: "var 1 = 2;",
			want:   []*ParseError{{Msg: msgExpectVarName, Line: 1}},
		},
		{
			name:   "if without paren",
			source: "if a) print 1;",
			want:   []*ParseError{{Msg: msgExpectParenAfterIf, Line: 1}},
		},
		{
			name:   "invalid assignment target",
			source: "var a = 1;\n(a) = 2;",
			want:   []*ParseError{{Msg: msgInvalidAssignTarget, Line: 2}},
		},
		{
			name:   "recovers and reports every statement",
			source: "print ;\nvar = 1;\nprint 2;\nprint (3;",
			want: []*ParseError{
				{Msg: msgExpectExpr, Line: 1},
				{Msg: msgExpectVarName, Line: 2},
				{Msg: msgExpectRightParen, Line: 4},
			},
		},
		{
			name:   "recovers at a statement keyword",
			source: "1 + \nwhile (true) print 1;\n1 2;",
			want: []*ParseError{
				{Msg: msgExpectExpr, Line: 2},
				{Msg: msgExpectSemiAfterExpr, Line: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := parseSource(t, tt.source)
			require.Nil(t, stmts)
			require.Error(t, err)

			var list ErrorList
			require.True(t, errors.As(err, &list))
			got := make([]*ParseError, 0, len(list))
			for _, e := range list {
				parseErr, ok := e.(*ParseError)
				require.True(t, ok, "unexpected error type %T", e)
				got = append(got, parseErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseWithoutEOF(t *testing.T) {
	stmts, err := Parse([]Token{
		{Kind: PRINT, Lexeme: "print", Line: 1},
		{Kind: NUMBER, Lexeme: "1", Literal: loxNumber(1), Line: 1},
		{Kind: SEMICOLON, Lexeme: ";", Line: 1},
	})
	require.NoError(t, err)
	require.Equal(t, "(print 1)\n", PrintTree(stmts))

	stmts, err = Parse(nil)
	require.NoError(t, err)
	require.Empty(t, stmts)
}
