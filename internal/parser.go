package internal

// parser stores parser data
type parser struct {
	tokens  []Token
	current int

	state *interpreterState
}

// Parse turns a token stream into statements. A syntax error does not stop
// the parse: the parser skips to the next statement boundary and carries on,
// so every ParseError is returned together as an ErrorList.
func Parse(tokens []Token) ([]Stmt, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: EOF, Line: line})
	}
	p := &parser{
		tokens: tokens,
		state:  &interpreterState{},
	}
	stmts := p.parse()
	if err := p.state.err(); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *parser) parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		st := p.parseStmt()
		// A declaration that failed to parse yields nil
		if st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts
}

func (p *parser) parseStmt() (s Stmt) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			p.state.setError(err)
			p.synchronize()
			s = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() Stmt {
	if p.match(VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() Stmt {
	name := p.consume(IDENTIFIER, msgExpectVarName)

	var init Expr
	if p.match(EQUAL) {
		init = p.expression()
	}

	p.consume(SEMICOLON, msgExpectSemiAfterVar)
	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() Stmt {
	if p.match(FOR) {
		return p.forLoop()
	}
	if p.match(IF) {
		return p.ifStmt()
	}
	if p.match(PRINT) {
		return p.printStmt()
	}
	if p.match(WHILE) {
		return p.while()
	}
	if p.match(LEFT_BRACE) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

// forLoop desugars a classic for into a while wrapped in blocks
func (p *parser) forLoop() Stmt {
	keyword := p.previous()
	p.consume(LEFT_PAREN, msgExpectParenFor)

	var init Stmt
	if p.match(SEMICOLON) {
		init = nil
	} else if p.match(VAR) {
		init = p.varDeclaration()
	} else {
		init = p.expressionStmt()
	}

	var cond Expr
	if !p.check(SEMICOLON) {
		cond = p.expression()
	}
	p.consume(SEMICOLON, msgExpectSemiAfterCond)

	var inc Expr
	if !p.check(RIGHT_PAREN) {
		inc = p.expression()
	}
	p.consume(RIGHT_PAREN, msgExpectParenForEnd)

	body := p.statement()

	if inc != nil {
		body = &blockStmt{stmts: []Stmt{body, &expressionStmt{expression: inc}}}
	}
	if cond == nil {
		cond = &literalExpr{value: loxBool(true)}
	}
	body = &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
	if init != nil {
		body = &blockStmt{stmts: []Stmt{init, body}}
	}
	return body
}

func (p *parser) ifStmt() Stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	p.consume(LEFT_PAREN, msgExpectParenAfterIf)
	st.condition = p.expression()
	p.consume(RIGHT_PAREN, msgExpectParenAfterCnd)

	st.thenBranch = p.statement()
	if p.match(ELSE) {
		st.elseBranch = p.statement()
	}

	return st
}

func (p *parser) printStmt() Stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(SEMICOLON, msgExpectSemiAfterVal)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) while() Stmt {
	keyword := p.previous()
	p.consume(LEFT_PAREN, msgExpectParenWhile)
	cond := p.expression()
	p.consume(RIGHT_PAREN, msgExpectParenAfterCnd)
	body := p.statement()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

func (p *parser) block() []Stmt {
	stmts := make([]Stmt, 0)
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(RIGHT_BRACE, msgExpectRightBrace)
	return stmts
}

func (p *parser) expressionStmt() Stmt {
	expr := p.expression()
	p.consume(SEMICOLON, msgExpectSemiAfterExpr)
	return &expressionStmt{
		expression: expr,
	}
}

func (p *parser) expression() Expr {
	return p.assignment()
}

func (p *parser) assignment() Expr {
	expr := p.or()
	if p.match(EQUAL) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		}

		// Reported without unwinding: the parser is not confused
		p.state.setError(&ParseError{
			Msg:  msgInvalidAssignTarget,
			Line: equal.Line,
		})
	}
	return expr
}

func (p *parser) or() Expr {
	expr := p.and()
	for p.match(OR) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() Expr {
	expr := p.equality()
	for p.match(AND) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() Expr {
	expr := p.comparison()
	for p.match(BANG_EQUAL, EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() Expr {
	expr := p.term()
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() Expr {
	expr := p.factor()
	for p.match(MINUS, PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() Expr {
	expr := p.unary()
	for p.match(SLASH, STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() Expr {
	if p.match(BANG, MINUS) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(NUMBER, STRING) {
		return &literalExpr{value: p.previous().Literal}
	}
	if p.match(FALSE) {
		return &literalExpr{value: loxBool(false)}
	}
	if p.match(TRUE) {
		return &literalExpr{value: loxBool(true)}
	}
	if p.match(NIL) {
		return &literalExpr{value: nilValue}
	}
	if p.match(IDENTIFIER) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(LEFT_PAREN) {
		expr := p.expression()
		p.consume(RIGHT_PAREN, msgExpectRightParen)
		return &groupingExpr{expression: expr}
	}

	p.fatalError(msgExpectExpr, p.peek())
	return nil
}

func (p *parser) fatalError(msg string, tk Token) {
	panic(&ParseError{
		Msg:  msg,
		Line: tk.Line,
	})
}

func (p *parser) consume(tk TokenType, msg string) Token {
	if p.check(tk) {
		return p.advance()
	}

	p.fatalError(msg, p.peek())
	return Token{}
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == token
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Kind == EOF
}

// synchronize discards tokens until the start of the next statement
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == SEMICOLON {
			return
		}

		switch p.peek().Kind {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		default:
		}

		p.advance()
	}
}
