package internal

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

type lexer struct {
	source  []byte
	start   int
	current int
	line    int

	tokens []Token

	state *interpreterState
}

var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Scan converts source into tokens. The whole input is always consumed; if
// anything could not be scanned, every LexError is returned as an ErrorList
// and no tokens are returned.
func Scan(source []byte) ([]Token, error) {
	l := &lexer{
		source: source,
		line:   1,
		state:  &interpreterState{},
	}
	return l.scan()
}

func (l *lexer) scan() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}

	if err := l.state.err(); err != nil {
		return nil, err
	}

	l.tokens = append(l.tokens, Token{
		Kind: EOF,
		Line: l.line,
	})
	return l.tokens, nil
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(LEFT_PAREN, nil)
	case ')':
		l.emit(RIGHT_PAREN, nil)
	case '{':
		l.emit(LEFT_BRACE, nil)
	case '}':
		l.emit(RIGHT_BRACE, nil)
	case ',':
		l.emit(COMMA, nil)
	case '.':
		l.emit(DOT, nil)
	case '-':
		l.emit(MINUS, nil)
	case '+':
		l.emit(PLUS, nil)
	case ';':
		l.emit(SEMICOLON, nil)
	case '*':
		l.emit(STAR, nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(SLASH, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(BANG_EQUAL, nil)
		} else {
			l.emit(BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(EQUAL_EQUAL, nil)
		} else {
			l.emit(EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(LESS_EQUAL, nil)
		} else {
			l.emit(LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(GREATER_EQUAL, nil)
		} else {
			l.emit(GREATER, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.unexpected()
		}
	}
}

// unexpected reports the character starting at l.start, decoding it as UTF-8
// so a multi-byte character yields a single error.
func (l *lexer) unexpected() {
	r, size := utf8.DecodeRune(l.source[l.start:])
	l.current = l.start + size
	l.state.setError(&LexError{
		Char: r,
		Msg:  msgUnexpectedChar,
		Line: l.line,
	})
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.state.setError(&LexError{
			Char: noChar,
			Msg:  msgUnterminatedStr,
			Line: l.line,
		})
		return
	}

	// Consume ending "
	l.advance()

	literal := string(l.source[l.start+1 : l.current-1])
	l.emit(STRING, loxString(literal))
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A trailing '.' stays in the input to be scanned as DOT
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// Out of range numerals become ±Inf, only malformed ones are errors
	literal, err := strconv.ParseFloat(string(l.source[l.start:l.current]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		l.state.setError(&LexError{
			Char: noChar,
			Msg:  msgInvalidNumber,
			Line: l.line,
		})
		return
	}

	l.emit(NUMBER, loxNumber(literal))
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := string(l.source[l.start:l.current])

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = IDENTIFIER
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) emit(kind TokenType, literal Value) {
	l.tokens = append(l.tokens, Token{
		Kind:    kind,
		Lexeme:  string(l.source[l.start:l.current]),
		Literal: literal,
		Line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
