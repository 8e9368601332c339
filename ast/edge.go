package ast

// Edges returns child lists the engine may rewrite; every other child is left untouched
func Edges(n Node) [][]Node {
	switch actual := n.(type) {
	case *SourceFile:
		return [][]Node{actual.Parts}
	case *Fragment:
		return [][]Node{actual.Parts}
	case *ClassDecl:
		return [][]Node{actual.Members}
	case *MethodDecl:
		return [][]Node{single(actual.Body)}
	case *PropertyDecl:
		return [][]Node{single(actual.Initializer)}
	case *Block:
		return [][]Node{actual.Statements}
	}
	return nil
}

// Rebuild returns n with its edges replaced, n itself when nothing changed
func Rebuild(b *Builder, n Node, edges [][]Node) Node {
	current := Edges(n)
	if len(current) != len(edges) {
		return n
	}
	changed := false
	for i := range current {
		if !sameNodes(current[i], edges[i]) {
			changed = true
			break
		}
	}
	if !changed {
		return n
	}
	switch actual := n.(type) {
	case *SourceFile:
		return b.UpdateSourceFile(actual, edges[0])
	case *Fragment:
		return b.UpdateFragment(actual, edges[0])
	case *ClassDecl:
		return b.UpdateClassDecl(actual, actual.Decorators, actual.Name, edges[0])
	case *MethodDecl:
		return b.UpdateMethodDecl(actual, actual.Decorators, actual.Name, b.collapse(edges[0]))
	case *PropertyDecl:
		return b.UpdatePropertyDecl(actual, actual.Decorators, actual.Name, b.collapse(edges[0]))
	case *Block:
		return b.UpdateBlock(actual, edges[0])
	}
	return n
}

// Children returns all direct children of n in source order
func Children(n Node) []Node {
	var ret []Node
	add := func(nodes ...Node) {
		for _, node := range nodes {
			if node != nil {
				ret = append(ret, node)
			}
		}
	}
	switch actual := n.(type) {
	case *SourceFile:
		add(actual.Parts...)
	case *Fragment:
		add(actual.Parts...)
	case *Decorator:
		add(actual.Expression)
	case *ClassDecl:
		for _, decorator := range actual.Decorators {
			add(decorator)
		}
		if actual.Name != nil {
			add(actual.Name)
		}
		add(actual.TypeParameters, actual.Heritage)
		add(actual.Members...)
	case *MethodDecl:
		for _, decorator := range actual.Decorators {
			add(decorator)
		}
		add(actual.Name, actual.TypeParameters)
		add(actual.Parameters...)
		add(actual.ReturnType, actual.Body)
	case *PropertyDecl:
		for _, decorator := range actual.Decorators {
			add(decorator)
		}
		add(actual.Name, actual.Type, actual.Initializer)
	case *Block:
		add(actual.Statements...)
	case *ExpressionStmt:
		add(actual.Expression)
	case *ReturnStmt:
		add(actual.Expression)
	case *ArrayLiteral:
		add(actual.Elements...)
	case *ObjectLiteral:
		add(actual.Properties...)
	case *PropertyAssignment:
		add(actual.Name, actual.Initializer)
	case *ShorthandProperty:
		if actual.Name != nil {
			add(actual.Name)
		}
	case *SpreadElement:
		add(actual.Expression)
	case *ComputedName:
		add(actual.Expression)
	case *CallExpr:
		add(actual.Callee)
		add(actual.Arguments...)
	case *NewExpr:
		add(actual.Callee)
		add(actual.Arguments...)
	case *PropertyAccessExpr:
		add(actual.Expression, actual.Name)
	}
	return ret
}

// Inspect traverses the tree in depth-first order; fn returning false skips children
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, fn)
	}
}

func (b *Builder) collapse(nodes []Node) Node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	}
	return b.Fragment(nodes)
}

func single(n Node) []Node {
	if n == nil {
		return nil
	}
	return []Node{n}
}

func sameNodes(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID() != b[i].ID() {
			return false
		}
	}
	return true
}
