package ast

// Small free-function constructors so callers read as a sequence of
// named constructions rather than raw struct literals.

// VarUse builds a bare identifier-use expression.
func VarUse(name Ident) PureExpr { return IdentExpr{Name: name} }

// Null builds the null literal expression.
func Null() PureExpr { return NullExpr{} }

// BinExpr builds a binary expression node.
func BinExpr(op BinaryOp, left, right PureExpr) PureExpr {
	return BinaryExpr{Op: op, Left: left, Right: right}
}

// NotEqual builds `left != right`, used by the crowbar precondition/
// postcondition annotations (`i != null`, `result != null`).
func NotEqual(left, right PureExpr) PureExpr {
	return BinaryExpr{Op: OpNeq, Left: left, Right: right}
}

// DataConstrCall builds a data-constructor application.
func DataConstrCall(ctor Ident, args ...PureExpr) PureExpr {
	return DataConstrExpr{Constructor: ctor, Args: args}
}
