// ==============================================================================================
// FILE: ast/ast_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for AST nodes.
//          Verifies that complex, nested structures (functions, calls, if/else)
//          are assembled and stringified correctly.
// ==============================================================================================

package ast

import (
	"testing"

	"eloquence/token"
)

// TestFunctionAndCallIntegration verifies the structure of a function definition
// combined with a function call.
func TestFunctionAndCallIntegration(t *testing.T) {
	// Construct: fn(x) { return x }
	fn := &FunctionLiteral{
		Token:      token.Token{Type: token.FUNCTION, Literal: "fn"},
		Parameters: []*Identifier{{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"}},
		Body: &BlockStatement{
			Token:      token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []Statement{&ReturnStatement{Token: token.Token{Type: token.RETURN, Literal: "return"}, ReturnValue: &Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"}}},
		},
	}

	// Construct: <func>(5)
	call := &CallExpression{
		Token:     token.Token{Type: token.LPAREN, Literal: "("},
		Function:  fn,
		Arguments: []Expression{&IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "5"}, Value: 5}},
	}

	expectedCall := "fn(x) { return x; }(5)"
	if call.String() != expectedCall {
		t.Fatalf("expected %s, got %s", expectedCall, call.String())
	}
}

// TestIfElseIntegration verifies the structure of an if/else expression.
func TestIfElseIntegration(t *testing.T) {
	// Construct: if(x < y) { x } else { y }
	ie := &IfExpression{
		Token: token.Token{Type: token.IF, Literal: "if"},
		Condition: &InfixExpression{
			Token:    token.Token{Type: token.LT, Literal: "<"},
			Left:     &Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"},
			Operator: "<",
			Right:    &Identifier{Token: token.Token{Type: token.IDENT, Literal: "y"}, Value: "y"},
		},
		Consequence: &BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []Statement{
				&ExpressionStatement{Expression: &Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"}},
			},
		},
		Alternative: &BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []Statement{
				&ExpressionStatement{Expression: &Identifier{Token: token.Token{Type: token.IDENT, Literal: "y"}, Value: "y"}},
			},
		},
	}

	expected := "if(x < y) { x }else { y }"
	if ie.String() != expected {
		t.Fatalf("expected %s, got %s", expected, ie.String())
	}
}

// TestProgramStringIntegration verifies that a Program node correctly concatenates
// multiple statements into a coherent source string.
func TestProgramStringIntegration(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name:  &Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"},
				Value: &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "10"}, Value: 10},
			},
			&ExpressionStatement{
				Expression: &Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"},
			},
		},
	}

	expected := "let x = 10;x"
	if prog.String() != expected {
		t.Fatalf("expected %s, got %s", expected, prog.String())
	}
}

// TestForExpressionIntegration verifies the structure of a for-in loop over an
// array literal.
func TestForExpressionIntegration(t *testing.T) {
	// Construct: for b in [1, 2] { b }
	fe := &ForExpression{
		Token:     token.Token{Type: token.FOR, Literal: "for"},
		Parameter: &Identifier{Token: token.Token{Type: token.IDENT, Literal: "b"}, Value: "b"},
		Array: &ArrayLiteral{
			Token: token.Token{Type: token.LBRACKET, Literal: "["},
			Elements: []Expression{
				&IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "1"}, Value: 1},
				&IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "2"}, Value: 2},
			},
		},
		Body: &BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []Statement{
				&ExpressionStatement{Expression: &Identifier{Token: token.Token{Type: token.IDENT, Literal: "b"}, Value: "b"}},
			},
		},
	}

	expected := "for b in [1, 2] { b }"
	if fe.String() != expected {
		t.Fatalf("expected %s, got %s", expected, fe.String())
	}
}
