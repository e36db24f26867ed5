package checks

import (
	"fmt"
	"io"
	"maps"
	"reflect"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/spboyer/colcheck/dataset"
)

// DescriptionData is the value a declarative description template is
// rendered with.
type DescriptionData struct {
	Check   string
	Column  string
	Failing int
	Total   int
	Stats   dataset.Stats
}

var descriptionDataType = reflect.TypeOf(DescriptionData{})

// descriptionTemplate parses text as a template. Every field path, function
// call and comparison is checked against DescriptionData in all branches,
// so rendering cannot fail once the template is accepted. Plain text renders
// unchanged; a literal "{{" is written as {{"{{"}}.
func descriptionTemplate(name, text string) (DescribeFunc, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: check %q description: %w", ErrInvalidDefinition, name, err)
	}
	if tmpl.Tree != nil {
		v := &templateVerifier{vars: map[string]reflect.Type{"$": descriptionDataType}}
		if err := v.walk(tmpl.Tree.Root, descriptionDataType); err != nil {
			return nil, fmt.Errorf("%w: check %q description: %w", ErrInvalidDefinition, name, err)
		}
	}
	if err := tmpl.Execute(io.Discard, DescriptionData{}); err != nil {
		return nil, fmt.Errorf("%w: check %q description: %w", ErrInvalidDefinition, name, err)
	}

	return func(ds dataset.Dataset, column string, condition dataset.Mask, _ Options) (string, error) {
		data := DescriptionData{
			Check:   name,
			Column:  column,
			Failing: condition.Count(),
			Total:   condition.Len(),
		}
		if s, err := ds.Column(column); err == nil {
			data.Stats = s.Stats()
		}

		var b strings.Builder
		if err := tmpl.Execute(&b, data); err != nil {
			return "", err
		}
		return b.String(), nil
	}, nil
}

// templateVerifier statically types a template parse tree. A nil
// reflect.Type means the type of a value is not known.
type templateVerifier struct {
	vars map[string]reflect.Type
}

var stringType = reflect.TypeOf("")

func (v *templateVerifier) walk(node parse.Node, dot reflect.Type) error {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return nil
		}
		for _, child := range n.Nodes {
			if err := v.walk(child, dot); err != nil {
				return err
			}
		}
		return nil
	case *parse.TextNode, *parse.CommentNode:
		return nil
	case *parse.ActionNode:
		_, err := v.pipe(n.Pipe, dot)
		return err
	case *parse.IfNode:
		return v.branch(&n.BranchNode, dot, false)
	case *parse.WithNode:
		return v.branch(&n.BranchNode, dot, true)
	case *parse.RangeNode:
		return fmt.Errorf("range is not supported")
	case *parse.TemplateNode:
		return fmt.Errorf("template %q invocation is not supported", n.Name)
	default:
		return fmt.Errorf("unsupported template construct %q", node.String())
	}
}

func (v *templateVerifier) branch(n *parse.BranchNode, dot reflect.Type, rebind bool) error {
	saved := maps.Clone(v.vars)
	defer func() { v.vars = saved }()

	t, err := v.pipe(n.Pipe, dot)
	if err != nil {
		return err
	}
	inner := dot
	if rebind {
		inner = t
	}
	if err := v.walk(n.List, inner); err != nil {
		return err
	}
	return v.walk(n.ElseList, dot)
}

func (v *templateVerifier) pipe(p *parse.PipeNode, dot reflect.Type) (reflect.Type, error) {
	if p == nil {
		return nil, nil
	}
	var t reflect.Type
	for i, cmd := range p.Cmds {
		var err error
		t, err = v.command(cmd, dot, t, i > 0)
		if err != nil {
			return nil, err
		}
	}
	for _, decl := range p.Decl {
		v.vars[decl.Ident[0]] = t
	}
	return t, nil
}

func (v *templateVerifier) command(cmd *parse.CommandNode, dot, piped reflect.Type, hasPiped bool) (reflect.Type, error) {
	fn, ok := cmd.Args[0].(*parse.IdentifierNode)
	if !ok {
		if len(cmd.Args) > 1 || hasPiped {
			return nil, fmt.Errorf("%s is not a function and takes no arguments", cmd.Args[0])
		}
		return v.arg(cmd.Args[0], dot)
	}

	args := make([]reflect.Type, 0, len(cmd.Args))
	for _, a := range cmd.Args[1:] {
		t, err := v.arg(a, dot)
		if err != nil {
			return nil, err
		}
		args = append(args, t)
	}
	if hasPiped {
		args = append(args, piped)
	}
	return callType(fn.Ident, args)
}

func (v *templateVerifier) arg(node parse.Node, dot reflect.Type) (reflect.Type, error) {
	switch n := node.(type) {
	case *parse.DotNode:
		return dot, nil
	case *parse.FieldNode:
		return fieldType(dot, n.Ident)
	case *parse.VariableNode:
		t, ok := v.vars[n.Ident[0]]
		if !ok {
			return nil, fmt.Errorf("variable %s is not defined", n.Ident[0])
		}
		return fieldType(t, n.Ident[1:])
	case *parse.ChainNode:
		var base reflect.Type
		var err error
		if p, ok := n.Node.(*parse.PipeNode); ok {
			base, err = v.pipe(p, dot)
		} else {
			base, err = v.arg(n.Node, dot)
		}
		if err != nil {
			return nil, err
		}
		return fieldType(base, n.Field)
	case *parse.PipeNode:
		return v.pipe(n, dot)
	case *parse.StringNode:
		return stringType, nil
	case *parse.BoolNode:
		return reflect.TypeOf(true), nil
	case *parse.NumberNode:
		return numberType(n), nil
	default:
		return nil, fmt.Errorf("unsupported template argument %q", node.String())
	}
}

func fieldType(t reflect.Type, idents []string) (reflect.Type, error) {
	for _, id := range idents {
		if t == nil {
			return nil, fmt.Errorf("cannot verify field %s on a value of unknown type", id)
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("can't evaluate field %s in type %s", id, t)
		}
		f, ok := t.FieldByName(id)
		if !ok || !f.IsExported() {
			return nil, fmt.Errorf("can't evaluate field %s in type %s", id, t)
		}
		t = f.Type
	}
	return t, nil
}

// numberType mirrors how text/template types an untyped numeric constant
// passed to a function.
func numberType(n *parse.NumberNode) reflect.Type {
	hexInt := len(n.Text) > 2 && n.Text[0] == '0' && (n.Text[1] == 'x' || n.Text[1] == 'X') && !strings.ContainsAny(n.Text, "pP")
	switch {
	case n.IsFloat && !hexInt && strings.ContainsAny(n.Text, ".eEpP"):
		return reflect.TypeOf(0.0)
	case n.IsInt:
		return reflect.TypeOf(0)
	case n.IsUint:
		return reflect.TypeOf(uint(0))
	}
	return reflect.TypeOf(0.0)
}

func callType(name string, args []reflect.Type) (reflect.Type, error) {
	switch name {
	case "print", "println", "html", "js", "urlquery":
		return stringType, nil
	case "printf":
		if len(args) == 0 || args[0] == nil || args[0].Kind() != reflect.String {
			return nil, fmt.Errorf("printf needs a format string")
		}
		return stringType, nil
	case "not":
		if len(args) != 1 {
			return nil, fmt.Errorf("not takes one argument")
		}
		return reflect.TypeOf(true), nil
	case "and", "or":
		if len(args) == 0 {
			return nil, fmt.Errorf("%s needs an argument", name)
		}
		for _, a := range args[1:] {
			if a != args[0] {
				return nil, nil
			}
		}
		return args[0], nil
	case "eq", "ne", "lt", "le", "gt", "ge":
		if len(args) < 2 || (name != "eq" && len(args) != 2) {
			return nil, fmt.Errorf("%s needs two arguments", name)
		}
		class := comparisonClass(args[0])
		if class == "" || (class == "bool" && name != "eq" && name != "ne") {
			return nil, fmt.Errorf("%s cannot compare values of type %v", name, args[0])
		}
		for _, a := range args[1:] {
			if comparisonClass(a) != class {
				return nil, fmt.Errorf("%s cannot compare %v with %v", name, args[0], a)
			}
		}
		return reflect.TypeOf(true), nil
	}
	return nil, fmt.Errorf("function %q is not supported in descriptions", name)
}

func comparisonClass(t reflect.Type) string {
	if t == nil {
		return ""
	}
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "uint"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	}
	return ""
}
