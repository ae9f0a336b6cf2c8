package grammar

import "github.com/dekarrin/earleycst/internal/lex"

// Surface mirrors the Rust-like surface language's full grammar (spec §6):
// items, statements, a twelve-level expression precedence ladder, patterns,
// and types. It is built once at package init from the literal production
// table below and is never mutated afterward.
//
// Production order within each nonterminal matters: it is the tie-break the
// tree builder uses whenever more than one production could complete the
// same span (spec §4.3). The order in which nonterminals are added does not.
var Surface = buildSurfaceGrammar()

func p(syms ...Symbol) Production {
	return Production{Symbols: syms}
}

func buildSurfaceGrammar() *Grammar {
	rules := map[string][]Production{}

	add := func(nt string, prods ...Production) {
		rules[nt] = append(rules[nt], prods...)
	}

	// --- Items -----------------------------------------------------------

	add("Items",
		p(NT("Items"), NT("Item")),
		p(),
	)
	add("Item",
		p(NT("Function")),
		p(NT("Struct")),
		p(NT("Enumeration")),
		p(NT("ConstantItem")),
		p(NT("Trait")),
		p(NT("Implementation")),
		p(NT("UseDeclaration")),
		p(NT("Module")),
	)

	// --- Function ----------------------------------------------------------

	add("Function",
		p(NT("OptVis"), NT("OptConst"), Kw("fn"), Id(), Pn("("), NT("OptFnParams"), Pn(")"), NT("OptRetType"), NT("BlockOrSemi")),
	)
	add("OptVis",
		p(Kw("pub")),
		p(),
	)
	add("OptConst",
		p(Kw("const")),
		p(),
	)
	add("BlockOrSemi",
		p(NT("BlockExpression")),
		p(Pn(";")),
	)
	add("OptFnParams",
		p(NT("FnParams")),
		p(),
	)
	add("FnParams",
		p(NT("FnParam"), Pn(","), NT("FnParams")),
		p(NT("FnParam")),
	)
	add("FnParam",
		p(NT("SelfParam")),
		p(NT("Pattern"), Pn(":"), NT("Type")),
	)
	add("SelfParam",
		p(NT("ShorthandSelf")),
		p(NT("TypedSelf")),
	)
	add("ShorthandSelf",
		p(Pn("&"), Kw("mut"), Kw("self")),
		p(Pn("&"), Kw("self")),
		p(Kw("mut"), Kw("self")),
		p(Kw("self")),
	)
	add("TypedSelf",
		p(Kw("mut"), Kw("self"), Pn(":"), NT("Type")),
		p(Kw("self"), Pn(":"), NT("Type")),
	)
	add("OptRetType",
		p(Pn("->"), NT("Type")),
		p(),
	)

	// --- Struct ------------------------------------------------------------

	add("Struct",
		p(Kw("struct"), Id(), Pn("{"), NT("OptStructFields"), Pn("}")),
		p(Kw("struct"), Id(), Pn("("), NT("OptTupleFields"), Pn(")"), Pn(";")),
		p(Kw("struct"), Id(), Pn(";")),
	)
	add("OptStructFields",
		p(NT("StructFields")),
		p(),
	)
	add("StructFields",
		p(NT("StructField"), Pn(","), NT("StructFields")),
		p(NT("StructField"), Pn(",")),
		p(NT("StructField")),
	)
	add("StructField",
		p(NT("OptVis"), Id(), Pn(":"), NT("Type")),
	)
	add("OptTupleFields",
		p(NT("TupleFields")),
		p(),
	)
	add("TupleFields",
		p(NT("Type"), Pn(","), NT("TupleFields")),
		p(NT("Type")),
	)

	// --- Enumeration ---------------------------------------------------------

	add("Enumeration",
		p(Kw("enum"), Id(), Pn("{"), NT("OptEnumVariants"), Pn("}")),
	)
	add("OptEnumVariants",
		p(NT("EnumVariants")),
		p(),
	)
	add("EnumVariants",
		p(NT("EnumVariant"), Pn(","), NT("EnumVariants")),
		p(NT("EnumVariant"), Pn(",")),
		p(NT("EnumVariant")),
	)
	add("EnumVariant",
		p(Id(), Pn("("), NT("OptTupleFields"), Pn(")")),
		p(Id(), Pn("{"), NT("OptStructFields"), Pn("}")),
		p(Id()),
	)

	// --- Const / Trait / Impl / Use / Module ------------------------------

	add("ConstantItem",
		p(Kw("const"), Id(), Pn(":"), NT("Type"), Pn("="), NT("Expression"), Pn(";")),
	)
	add("Trait",
		p(Kw("trait"), Id(), Pn("{"), NT("OptTraitItems"), Pn("}")),
	)
	add("OptTraitItems",
		p(NT("TraitItems")),
		p(),
	)
	add("TraitItems",
		p(NT("TraitItem"), NT("TraitItems")),
		p(NT("TraitItem")),
	)
	add("TraitItem",
		p(NT("Function")),
	)
	add("Implementation",
		p(Kw("impl"), NT("Type"), Kw("for"), NT("Type"), Pn("{"), NT("OptImplItems"), Pn("}")),
		p(Kw("impl"), NT("Type"), Pn("{"), NT("OptImplItems"), Pn("}")),
	)
	add("OptImplItems",
		p(NT("ImplItems")),
		p(),
	)
	add("ImplItems",
		p(NT("ImplItem"), NT("ImplItems")),
		p(NT("ImplItem")),
	)
	add("ImplItem",
		p(NT("Function")),
	)
	add("UseDeclaration",
		p(Kw("use"), NT("UsePath"), Pn(";")),
	)
	add("UsePath",
		p(Id(), Pn("::"), NT("UsePath")),
		p(Id()),
	)
	add("Module",
		p(Kw("mod"), Id(), Pn("{"), NT("Items"), Pn("}")),
		p(Kw("mod"), Id(), Pn(";")),
	)

	// --- Statements --------------------------------------------------------

	add("Statement",
		p(NT("LetStatement")),
		p(NT("ItemStatement")),
		p(NT("ExpressionStatement")),
		p(Pn(";")),
	)
	add("LetStatement",
		p(Kw("let"), NT("Pattern"), Pn(":"), NT("Type"), Pn("="), NT("Expression"), Pn(";")),
		p(Kw("let"), NT("Pattern"), Pn(":"), NT("Type"), Pn(";")),
		p(Kw("let"), NT("Pattern"), Pn("="), NT("Expression"), Pn(";")),
	)
	add("ItemStatement",
		p(NT("Item")),
	)
	add("ExpressionStatement",
		p(NT("ExpressionWithBlock")),
		p(NT("Expression"), Pn(";")),
	)
	add("StatementList",
		p(NT("Statement"), NT("StatementList")),
		p(),
	)
	add("BlockExpression",
		p(Pn("{"), NT("StatementList"), NT("OptTailExpression"), Pn("}")),
	)
	add("OptTailExpression",
		p(NT("Expression")),
		p(),
	)

	// --- Expression precedence ladder --------------------------------------
	//
	// lazy-or -> lazy-and -> comparison -> or -> xor -> and -> shift ->
	// additive -> multiplicative -> type-cast -> unary -> postfix -> basic
	// (spec §1). Binary-operator levels are right-recursive, except
	// comparison, which is non-associative (one operator between two
	// OrExpressions); the postfix level is left-recursive
	// (method/field/call/index chains).

	add("Expression",
		p(NT("FlowControlExpression")),
	)
	add("FlowControlExpression",
		p(NT("AssignmentExpression")),
		p(NT("ContinueExpression")),
		p(NT("BreakExpression")),
		p(NT("ReturnExpression")),
	)
	add("ContinueExpression",
		p(Kw("continue")),
	)
	add("BreakExpression",
		p(Kw("break"), NT("Expression")),
		p(Kw("break")),
	)
	add("ReturnExpression",
		p(Kw("return"), NT("Expression")),
		p(Kw("return")),
	)

	add("AssignmentExpression",
		p(NT("LazyOrExpression"), Pn("="), NT("AssignmentExpression")),
		p(NT("LazyOrExpression"), NT("CompoundAssignOp"), NT("AssignmentExpression")),
		p(NT("LazyOrExpression")),
	)
	add("CompoundAssignOp",
		p(Pn("+=")), p(Pn("-=")), p(Pn("*=")), p(Pn("/=")), p(Pn("%=")),
		p(Pn("&=")), p(Pn("|=")), p(Pn("^=")),
	)

	add("LazyOrExpression",
		p(NT("LazyAndExpression"), Pn("||"), NT("LazyOrExpression")),
		p(NT("LazyAndExpression")),
	)
	add("LazyAndExpression",
		p(NT("ComparisonExpression"), Pn("&&"), NT("LazyAndExpression")),
		p(NT("ComparisonExpression")),
	)
	add("ComparisonExpression",
		p(NT("OrExpression"), NT("ComparisonOp"), NT("OrExpression")),
		p(NT("OrExpression")),
	)
	add("ComparisonOp",
		p(Pn("==")), p(Pn("!=")), p(Pn("<")), p(Pn(">")), p(Pn("<=")), p(Pn(">=")),
	)
	add("OrExpression",
		p(NT("XorExpression"), Pn("|"), NT("OrExpression")),
		p(NT("XorExpression")),
	)
	add("XorExpression",
		p(NT("AndExpression"), Pn("^"), NT("XorExpression")),
		p(NT("AndExpression")),
	)
	add("AndExpression",
		p(NT("ShiftExpression"), Pn("&"), NT("AndExpression")),
		p(NT("ShiftExpression")),
	)
	add("ShiftExpression",
		p(NT("AdditiveExpression"), NT("ShiftOp"), NT("ShiftExpression")),
		p(NT("AdditiveExpression")),
	)
	add("ShiftOp",
		p(Pn("<<")), p(Pn(">>")),
	)
	add("AdditiveExpression",
		p(NT("MultiplicativeExpression"), NT("AdditiveOp"), NT("AdditiveExpression")),
		p(NT("MultiplicativeExpression")),
	)
	add("AdditiveOp",
		p(Pn("+")), p(Pn("-")),
	)
	add("MultiplicativeExpression",
		p(NT("TypeCastExpression"), NT("MultiplicativeOp"), NT("MultiplicativeExpression")),
		p(NT("TypeCastExpression")),
	)
	add("MultiplicativeOp",
		p(Pn("*")), p(Pn("/")), p(Pn("%")),
	)
	add("TypeCastExpression",
		p(NT("UnaryExpression"), Kw("as"), NT("Type")),
		p(NT("UnaryExpression")),
	)

	add("UnaryExpression",
		p(NT("PostfixExpression")),
		p(NT("BorrowExpression")),
		p(NT("DerefExpression")),
		p(NT("NegationExpression")),
	)
	add("BorrowExpression",
		p(Pn("&"), Kw("mut"), NT("UnaryExpression")),
		p(Pn("&"), NT("UnaryExpression")),
	)
	add("DerefExpression",
		p(Pn("*"), NT("UnaryExpression")),
	)
	add("NegationExpression",
		p(Pn("-"), NT("UnaryExpression")),
		p(Pn("!"), NT("UnaryExpression")),
	)

	add("PostfixExpression",
		p(NT("PostfixExpression"), Pn("."), Id(), Pn("("), NT("OptCallArgs"), Pn(")")),
		p(NT("PostfixExpression"), Pn("("), NT("OptCallArgs"), Pn(")")),
		p(NT("PostfixExpression"), Pn("["), NT("Expression"), Pn("]")),
		p(NT("PostfixExpression"), Pn("."), Id()),
		p(NT("BasicExpression")),
	)
	add("OptCallArgs",
		p(NT("CallArgs")),
		p(),
	)
	add("CallArgs",
		p(NT("Expression"), Pn(","), NT("CallArgs")),
		p(NT("Expression")),
	)

	add("BasicExpression",
		p(NT("Literal")),
		p(NT("UnderscoreExpression")),
		p(NT("GroupedExpression")),
		p(NT("ArrayExpression")),
		p(NT("StructExpression")),
		p(NT("PathExpression")),
		p(NT("ExpressionWithBlock")),
	)
	add("Literal",
		p(NT("IntegerLiteralExpr")),
		p(NT("CharLiteralExpr")),
		p(NT("StringLiteralExpr")),
		p(NT("BoolLiteralExpr")),
	)
	add("IntegerLiteralExpr", p(IntLit()))
	add("CharLiteralExpr", p(CharLit()))
	add("StringLiteralExpr", p(StrLit()))
	add("BoolLiteralExpr",
		p(Kw("true")),
		p(Kw("false")),
	)
	add("UnderscoreExpression",
		p(Lit(lex.Identifier, "_")),
	)
	add("GroupedExpression",
		p(Pn("("), NT("Expression"), Pn(")")),
	)
	add("ArrayExpression",
		p(Pn("["), NT("OptArrayElements"), Pn("]")),
	)
	add("OptArrayElements",
		p(NT("ArrayElements")),
		p(),
	)
	add("ArrayElements",
		p(NT("Expression"), Pn(","), NT("ArrayElements")),
		p(NT("Expression")),
	)
	add("PathExpression",
		p(NT("PathSegment"), Pn("::"), NT("PathExpression")),
		p(NT("PathSegment")),
	)
	add("PathSegment",
		p(Id()),
		p(Kw("Self")),
		p(Kw("self")),
	)
	add("StructExpression",
		p(Id(), Pn("{"), NT("OptStructExprFields"), Pn("}")),
	)
	add("OptStructExprFields",
		p(NT("StructExprFields")),
		p(),
	)
	add("StructExprFields",
		p(NT("StructExprField"), Pn(","), NT("StructExprFields")),
		p(NT("StructExprField")),
	)
	add("StructExprField",
		p(Id(), Pn(":"), NT("Expression")),
		p(Id()),
	)

	add("ExpressionWithBlock",
		p(NT("IfExpression")),
		p(NT("MatchExpression")),
		p(NT("LoopExpression")),
		p(NT("WhileExpression")),
		p(NT("ForExpression")),
		p(NT("BlockExpression")),
	)
	add("IfExpression",
		p(Kw("if"), NT("Expression"), NT("BlockExpression"), Kw("else"), NT("IfExpression")),
		p(Kw("if"), NT("Expression"), NT("BlockExpression"), Kw("else"), NT("BlockExpression")),
		p(Kw("if"), NT("Expression"), NT("BlockExpression")),
	)
	add("MatchExpression",
		p(Kw("match"), NT("Expression"), Pn("{"), NT("OptMatchArms"), Pn("}")),
	)
	add("OptMatchArms",
		p(NT("MatchArms")),
		p(),
	)
	add("MatchArms",
		p(NT("MatchArm"), Pn(","), NT("MatchArms")),
		p(NT("MatchArm"), Pn(",")),
		p(NT("MatchArm")),
	)
	add("MatchArm",
		p(NT("Pattern"), Pn("=>"), NT("Expression")),
	)
	add("LoopExpression",
		p(Kw("loop"), NT("BlockExpression")),
	)
	add("WhileExpression",
		p(Kw("while"), NT("Expression"), NT("BlockExpression")),
	)
	add("ForExpression",
		p(Kw("for"), NT("Pattern"), Kw("in"), NT("Expression"), NT("BlockExpression")),
	)

	// --- Patterns ------------------------------------------------------------

	add("Pattern",
		p(NT("ReferencePattern")),
		p(NT("WildcardPattern")),
		p(NT("LiteralPattern")),
		p(NT("IdentifierPattern")),
	)
	add("IdentifierPattern",
		p(NT("OptRefKw"), NT("OptMutKw"), Id()),
	)
	add("OptRefKw",
		p(Kw("ref")),
		p(),
	)
	add("OptMutKw",
		p(Kw("mut")),
		p(),
	)
	add("WildcardPattern",
		p(Lit(lex.Identifier, "_")),
	)
	add("ReferencePattern",
		p(Pn("&"), NT("Pattern")),
	)
	add("LiteralPattern",
		p(NT("IntegerLiteralExpr")),
		p(NT("CharLiteralExpr")),
		p(NT("StringLiteralExpr")),
	)

	// --- Types -----------------------------------------------------------

	add("Type",
		p(NT("UnitType")),
		p(NT("ReferenceType")),
		p(NT("ArrayType")),
		p(NT("TypePath")),
	)
	add("TypePath",
		p(NT("PathSegment"), Pn("::"), NT("TypePath")),
		p(NT("PathSegment")),
	)
	add("ReferenceType",
		p(Pn("&"), Kw("mut"), NT("Type")),
		p(Pn("&"), NT("Type")),
	)
	add("ArrayType",
		p(Pn("["), NT("Type"), Pn(";"), NT("IntegerLiteralExpr"), Pn("]")),
		p(Pn("["), NT("Type"), Pn("]")),
	)
	add("UnitType",
		p(Pn("("), Pn(")")),
	)

	g := New("Items", rules)
	if err := g.Validate(); err != nil {
		panic(err)
	}
	return g
}
