package ast

// Builder-style factories so higher layers construct nodes without
// depending on positional field order. Every builder method returns the
// receiver for chaining; Build is the terminal call.

// ModuleBuilder assembles a Module from a name and a sequence of items.
type ModuleBuilder struct {
	name  Ident
	items []ModuleItem
}

func NewModuleBuilder(name Ident) *ModuleBuilder {
	return &ModuleBuilder{name: name}
}

func (b *ModuleBuilder) AddItem(item ModuleItem) *ModuleBuilder {
	b.items = append(b.items, item)
	return b
}

func (b *ModuleBuilder) Build() Module {
	return Module{Name: b.name, Items: b.items}
}

// InterfaceBuilder assembles an InterfaceDecl.
type InterfaceBuilder struct {
	name    Ident
	extends []Ident
	sigs    []MethodSig
}

func NewInterfaceBuilder(name Ident) *InterfaceBuilder {
	return &InterfaceBuilder{name: name}
}

func (b *InterfaceBuilder) Extends(parents ...Ident) *InterfaceBuilder {
	b.extends = append(b.extends, parents...)
	return b
}

func (b *InterfaceBuilder) AddSig(sig MethodSig) *InterfaceBuilder {
	b.sigs = append(b.sigs, sig)
	return b
}

func (b *InterfaceBuilder) Build() InterfaceDecl {
	return InterfaceDecl{Name: b.name, Extends: b.extends, Sigs: b.sigs}
}

// ClassBuilder assembles a ClassDecl.
type ClassBuilder struct {
	name       Ident
	params     []Param
	implements []Ident
	fields     []FieldDecl
	init       *Block
	recover    []CaseBranch[Block]
	methods    []MethodDecl
}

func NewClassBuilder(name Ident) *ClassBuilder {
	return &ClassBuilder{name: name}
}

func (b *ClassBuilder) AddParam(p Param) *ClassBuilder {
	b.params = append(b.params, p)
	return b
}

func (b *ClassBuilder) Implements(ifaces ...Ident) *ClassBuilder {
	b.implements = append(b.implements, ifaces...)
	return b
}

func (b *ClassBuilder) AddField(f FieldDecl) *ClassBuilder {
	b.fields = append(b.fields, f)
	return b
}

func (b *ClassBuilder) WithInit(init Block) *ClassBuilder {
	b.init = &init
	return b
}

func (b *ClassBuilder) AddRecoverBranch(branch CaseBranch[Block]) *ClassBuilder {
	b.recover = append(b.recover, branch)
	return b
}

func (b *ClassBuilder) AddMethod(m MethodDecl) *ClassBuilder {
	b.methods = append(b.methods, m)
	return b
}

func (b *ClassBuilder) Build() ClassDecl {
	return ClassDecl{
		Name:       b.name,
		Params:     b.params,
		Implements: b.implements,
		Fields:     b.fields,
		Init:       b.init,
		Recover:    b.recover,
		Methods:    b.methods,
	}
}

// DataTypeBuilder assembles a DataTypeDecl.
type DataTypeBuilder struct {
	name         Ident
	constructors []DataConstr
}

func NewDataTypeBuilder(name Ident) *DataTypeBuilder {
	return &DataTypeBuilder{name: name}
}

func (b *DataTypeBuilder) AddConstructor(c DataConstr) *DataTypeBuilder {
	b.constructors = append(b.constructors, c)
	return b
}

func (b *DataTypeBuilder) Build() DataTypeDecl {
	return DataTypeDecl{Name: b.name, Constructors: b.constructors}
}

// DataConstrBuilder assembles a single DataConstr.
type DataConstrBuilder struct {
	name   Ident
	params []DataConstrParam
}

func NewDataConstrBuilder(name Ident) *DataConstrBuilder {
	return &DataConstrBuilder{name: name}
}

func (b *DataConstrBuilder) AddParam(ty Type) *DataConstrBuilder {
	b.params = append(b.params, DataConstrParam{Ty: ty})
	return b
}

func (b *DataConstrBuilder) Build() DataConstr {
	return DataConstr{Name: b.name, Params: b.params}
}

// MethodSigBuilder assembles a MethodSig.
type MethodSigBuilder struct {
	annos  Annotations
	retTy  Type
	name   Ident
	params []Param
}

func NewMethodSigBuilder(name Ident, retTy Type) *MethodSigBuilder {
	return &MethodSigBuilder{name: name, retTy: retTy}
}

func (b *MethodSigBuilder) WithAnnos(annos Annotations) *MethodSigBuilder {
	b.annos = annos
	return b
}

func (b *MethodSigBuilder) AddParam(p Param) *MethodSigBuilder {
	b.params = append(b.params, p)
	return b
}

func (b *MethodSigBuilder) Build() MethodSig {
	return MethodSig{Annos: b.annos, RetTy: b.retTy, Name: b.name, Params: b.params}
}

// BlockBuilder assembles a Block statement-by-statement.
type BlockBuilder struct {
	stmts []Stmt
}

func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

func (b *BlockBuilder) Add(s Stmt) *BlockBuilder {
	b.stmts = append(b.stmts, s)
	return b
}

func (b *BlockBuilder) Build() Block {
	return Block{Stmts: b.stmts}
}

// Ident/param/field convenience constructors for building nodes without
// going through a builder.

func NewParam(ty Type, name Ident) Param {
	return Param{Ty: ty, Name: name}
}

func NewParamWithAnnos(ty Type, name Ident, annos Annotations) Param {
	return Param{Annos: annos, Ty: ty, Name: name}
}

func NewField(ty Type, name Ident) FieldDecl {
	return FieldDecl{Ty: ty, Name: name}
}

func NewFieldWithInit(ty Type, name Ident, init Node) FieldDecl {
	return FieldDecl{Ty: ty, Name: name, Init: init}
}

func NewMethodDecl(sig MethodSig, body Block) MethodDecl {
	return MethodDecl{Sig: sig, Body: body}
}
