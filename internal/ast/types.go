package ast

// NamedType is a bare type identifier: a built-in name (Unit, Bool, Int,
// Float) or a user-written name the checker has not recognized.
type NamedType struct {
	NodeInfo
	Name string
}

func (n *NamedType) typeExprNode()  {}
func (n *NamedType) String() string { return n.Name }

// ArrayType is the "Array[T]" type-annotation syntax.
type ArrayType struct {
	NodeInfo
	Elem TypeExpr
}

func (a *ArrayType) typeExprNode()  {}
func (a *ArrayType) String() string { return "Array[" + a.Elem.String() + "]" }
