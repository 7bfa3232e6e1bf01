package ast

import (
	"bytes"
	"strings"
)

// Param is a method or constructor parameter: `T name`, optionally
// carrying annotations (e.g. a crowbar non-null precondition).
type Param struct {
	Annos Annotations
	Ty    Type
	Name  Ident
}

func (p Param) String() string {
	if len(p.Annos) == 0 {
		return p.Ty.String() + " " + p.Name.String()
	}
	return p.Annos.String() + " " + p.Ty.String() + " " + p.Name.String()
}

// FieldDecl is a class field: `T name [= init];`.
type FieldDecl struct {
	Ty   Type
	Name Ident
	Init Node // optional PureExpr/EffExpr initialiser, nil if unset
}

func (f FieldDecl) String() string {
	if f.Init == nil {
		return f.Ty.String() + " " + f.Name.String() + ";"
	}
	return f.Ty.String() + " " + f.Name.String() + " = " + f.Init.String() + ";"
}

// MethodSig is a method signature without a body: `T name(T1 x1, T2 x2)`,
// as declared inside an interface.
type MethodSig struct {
	Annos  Annotations
	RetTy  Type
	Name   Ident
	Params []Param
}

func (m MethodSig) String() string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.String()
	}
	sig := m.RetTy.String() + " " + m.Name.String() + "(" + strings.Join(params, ", ") + ")"
	if len(m.Annos) == 0 {
		return sig
	}
	return m.Annos.String() + " " + sig
}

// MethodDecl is a method signature with a body.
type MethodDecl struct {
	Sig  MethodSig
	Body Block
}

func (m MethodDecl) String() string {
	return m.Sig.String() + " " + m.Body.String()
}

// InterfaceDecl is `interface Name [extends ...] { sig; sig; }`.
type InterfaceDecl struct {
	Name    Ident
	Extends []Ident
	Sigs    []MethodSig
}

func (i InterfaceDecl) String() string {
	var out bytes.Buffer
	out.WriteString("interface ")
	out.WriteString(i.Name.String())
	if len(i.Extends) > 0 {
		parts := make([]string, len(i.Extends))
		for k, e := range i.Extends {
			parts[k] = e.String()
		}
		out.WriteString(" extends ")
		out.WriteString(strings.Join(parts, ", "))
	}
	out.WriteString(" {\n")
	for _, sig := range i.Sigs {
		out.WriteString("  ")
		out.WriteString(sig.String())
		out.WriteString(";\n")
	}
	out.WriteString("}")
	return out.String()
}

// ClassDecl is `class C[(params)] [implements I, J] { fields ... [init]
// [recover {...}] methods }`; the parameter list is omitted when empty.
type ClassDecl struct {
	Name       Ident
	Params     []Param
	Implements []Ident
	Fields     []FieldDecl
	Init       *Block
	Recover    []CaseBranch[Block]
	Methods    []MethodDecl
}

func (c ClassDecl) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(c.Name.String())
	if len(c.Params) > 0 {
		params := make([]string, len(c.Params))
		for i, p := range c.Params {
			params[i] = p.String()
		}
		out.WriteString("(")
		out.WriteString(strings.Join(params, ", "))
		out.WriteString(")")
	}
	if len(c.Implements) > 0 {
		parts := make([]string, len(c.Implements))
		for i, iface := range c.Implements {
			parts[i] = iface.String()
		}
		out.WriteString(" implements ")
		out.WriteString(strings.Join(parts, ", "))
	}
	out.WriteString(" {\n")
	for _, f := range c.Fields {
		out.WriteString("  ")
		out.WriteString(f.String())
		out.WriteString("\n")
	}
	if c.Init != nil {
		out.WriteString("  ")
		out.WriteString(c.Init.String())
		out.WriteString("\n")
	}
	if len(c.Recover) > 0 {
		out.WriteString("  recover {\n")
		for _, branch := range c.Recover {
			out.WriteString("    ")
			out.WriteString(branch.String())
			out.WriteString("\n")
		}
		out.WriteString("  }\n")
	}
	for _, m := range c.Methods {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// DataConstrParam is one field of a data constructor, e.g. the `Bool` in
// `Ensures(Bool)`.
type DataConstrParam struct {
	Ty Type
}

func (p DataConstrParam) String() string { return p.Ty.String() }

// DataConstr is one alternative of a data type, e.g. `Ensures(Bool)`.
type DataConstr struct {
	Name   Ident
	Params []DataConstrParam
}

func (c DataConstr) String() string {
	parts := make([]string, len(c.Params))
	for i, p := range c.Params {
		parts[i] = p.String()
	}
	return c.Name.String() + "(" + strings.Join(parts, ", ") + ")"
}

// DataTypeDecl is an algebraic data type declaration:
// `data Spec = ObjInv(Bool) | Ensures(Bool) | ...;`.
type DataTypeDecl struct {
	Name         Ident
	Constructors []DataConstr
}

func (d DataTypeDecl) String() string {
	parts := make([]string, len(d.Constructors))
	for i, c := range d.Constructors {
		parts[i] = c.String()
	}
	return "data " + d.Name.String() + " = " + strings.Join(parts, " | ") + ";"
}

// ModuleItem is any top-level declaration inside a module.
type ModuleItem interface {
	Node
	moduleItemNode()
}

func (InterfaceDecl) moduleItemNode() {}
func (ClassDecl) moduleItemNode()     {}
func (DataTypeDecl) moduleItemNode()  {}

// Module is the top-level compilation unit: `module NAME; item item ...`.
type Module struct {
	Name  Ident
	Items []ModuleItem
}

func (m Module) String() string {
	var out bytes.Buffer
	out.WriteString("module ")
	out.WriteString(m.Name.String())
	out.WriteString(";\n\n")
	for _, item := range m.Items {
		out.WriteString(item.String())
		out.WriteString("\n\n")
	}
	return strings.TrimRight(out.String(), "\n") + "\n"
}
