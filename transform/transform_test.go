package transform_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/comptime"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/factory"
	"github.com/viant/comptime/inspector/typescript"
	"github.com/viant/comptime/literal"
	"github.com/viant/comptime/program"
	"github.com/viant/comptime/transform"
)

func parse(t *testing.T, source string) (*program.Program, *ast.SourceFile) {
	t.Helper()
	inspector := typescript.NewInspector(nil)
	file, err := inspector.InspectSource(context.Background(), "test.ts", []byte(source))
	require.Nil(t, err)
	return program.New(inspector.Arena(), file), file
}

func run(t *testing.T, plugin *transform.Plugin, source string) (*ast.SourceFile, error) {
	t.Helper()
	prog, file := parse(t, source)
	transformer, err := plugin.Pass(prog)
	require.Nil(t, err)
	return transformer(file)
}

// suffix renames a declaration by appending the decorator name
func suffix(name string) transform.Func {
	return func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
		return transform.Replaced(f.WithName(node, node.DeclName()+"_"+name)), nil
	}
}

func classes(file *ast.SourceFile) []*ast.ClassDecl {
	var ret []*ast.ClassDecl
	ast.Inspect(file, func(node ast.Node) bool {
		if class, ok := node.(*ast.ClassDecl); ok {
			ret = append(ret, class)
		}
		return true
	})
	return ret
}

func memberNames(class *ast.ClassDecl) []string {
	var ret []string
	for _, member := range class.Members {
		if decoratable, ok := ast.AsDecoratable(member); ok {
			ret = append(ret, decoratable.DeclName())
		}
	}
	return ret
}

func decoratorNames(node ast.Decoratable) []string {
	var ret []string
	for _, decorator := range node.DecoratorList() {
		ret = append(ret, decorator.Name())
	}
	return ret
}

func TestPass_Order(t *testing.T) {
	var testCases = []struct {
		description string
		source      string
		expect      []string
	}{
		{
			description: "property stack",
			source:      "class A {\n  @third @second @first foo = \"x\";\n}\n",
			expect:      []string{"foo_first_second_third"},
		},
		{
			description: "method stack",
			source:      "class A {\n  @third\n  @second\n  @first\n  foo() {}\n}\n",
			expect:      []string{"foo_first_second_third"},
		},
		{
			description: "private name stays private",
			source:      "class A {\n  @second @first #foo = 1;\n}\n",
			expect:      []string{"#foo_first_second"},
		},
	}

	for _, testCase := range testCases {
		plugin := transform.New(transform.Decorators{
			"first":  suffix("first"),
			"second": suffix("second"),
			"third":  suffix("third"),
		})
		file, err := run(t, plugin, testCase.source)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		found := classes(file)
		if !assert.Len(t, found, 1, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, memberNames(found[0]), testCase.description)
	}
}

func TestPass_ClassStack(t *testing.T) {
	plugin := transform.New(transform.Decorators{
		"first":  suffix("first"),
		"second": suffix("second"),
		"third":  suffix("third"),
	})
	file, err := run(t, plugin, "@third\n@second\n@first\nexport class Foo {}\n")
	require.Nil(t, err)
	found := classes(file)
	require.Len(t, found, 1)
	assert.Equal(t, "Foo_first_second_third", found[0].DeclName())
	assert.Empty(t, found[0].Decorators)
	assert.Equal(t, "export class Foo_first_second_third {\n}\n", ast.Print(file))
}

func TestPass_Removal(t *testing.T) {
	spied := 0
	plugin := transform.New(transform.Decorators{
		"remove": transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
			return transform.Removed(), nil
		}),
		"spy": transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
			spied++
			return transform.Unchanged(node), nil
		}),
	})

	var testCases = []struct {
		description string
		source      string
		expect      string
	}{
		{
			description: "removed member",
			source:      "class A {\n  @spy @remove a = 1;\n  b = 2;\n}\n",
			expect:      "class A {\n  b = 2;\n}\n",
		},
		{
			description: "removed class",
			source:      "const x = 1;\n@spy\n@remove\nclass A {\n  a = 1;\n}\n",
			expect:      "const x = 1;\n\n",
		},
	}
	for _, testCase := range testCases {
		file, err := run(t, plugin, testCase.source)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, ast.Print(file), testCase.description)
	}
	assert.Equal(t, 0, spied, "no decorator runs after removal")
}

func TestPass_ExpansionContinuation(t *testing.T) {
	var seen []string
	plugin := transform.New(transform.Decorators{
		"twin": transform.PropertyFunc(func(ctx *transform.Context, property *ast.PropertyDecl, f *factory.Factory) (transform.Result, error) {
			sibling := f.PropertyDecl(nil, nil, f.Identifier(property.DeclName()+"Copy"), "", nil, f.NumericLiteral("2"))
			return transform.Expanded(sibling, f.WithName(property, property.DeclName())), nil
		}),
		"observe": transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
			seen = append(seen, node.DeclName())
			return transform.Replaced(f.WithName(node, node.DeclName()+"Observed")), nil
		}),
	})
	file, err := run(t, plugin, "class A {\n  @observe @twin value = 1;\n}\n")
	require.Nil(t, err)
	assert.Equal(t, []string{"value"}, seen, "only the continuation receives remaining decorators")
	found := classes(file)
	require.Len(t, found, 1)
	assert.Equal(t, []string{"valueCopy", "valueObserved"}, memberNames(found[0]))
	assert.Equal(t, "class A {\n  valueCopy = 2;\n  valueObserved = 1;\n}\n", ast.Print(file))
}

func TestPass_ExpansionWithoutContinuation(t *testing.T) {
	spied := 0
	plugin := transform.New(transform.Decorators{
		"fresh": transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
			return transform.Expanded(
				f.PropertyDecl(nil, nil, f.Identifier("x"), "", nil, f.NumericLiteral("1")),
				f.PropertyDecl(nil, nil, f.Identifier("y"), "", nil, f.NumericLiteral("2")),
			), nil
		}),
		"spy": transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
			spied++
			return transform.Unchanged(node), nil
		}),
	})
	file, err := run(t, plugin, "class A {\n  @spy @fresh a = 0;\n}\n")
	require.Nil(t, err)
	assert.Equal(t, 0, spied, "created nodes do not continue the stack")
	assert.Equal(t, []string{"x", "y"}, memberNames(classes(file)[0]))
}

func TestPass_Stripping(t *testing.T) {
	identity := transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
		return transform.Unchanged(node), nil
	})
	plugin := transform.New(transform.Decorators{"known": identity, "other": identity})
	file, err := run(t, plugin, "class A {\n  @foreign @known @bar @other value = 1;\n  @untouched plain = 2;\n}\n")
	require.Nil(t, err)
	found := classes(file)
	require.Len(t, found, 1)
	var members []ast.Decoratable
	for _, member := range found[0].Members {
		if decoratable, ok := ast.AsDecoratable(member); ok {
			members = append(members, decoratable)
		}
	}
	require.Len(t, members, 2)
	assert.Equal(t, []string{"foreign", "bar"}, decoratorNames(members[0]), "unregistered decorators stay in order")
	assert.Equal(t, []string{"untouched"}, decoratorNames(members[1]))
	assert.Equal(t, "class A {\n  @foreign\n  @bar\n  value = 1;\n  @untouched plain = 2;\n}\n", ast.Print(file))

	again, err := run(t, plugin, ast.Print(file))
	require.Nil(t, err)
	assert.Equal(t, ast.Print(file), ast.Print(again), "stripped output is a fixed point")
}

func TestPass_Traversal(t *testing.T) {
	source := "@collect\nclass View {\n  @track title = \"a\";\n  @track count = 1;\n  other = 2;\n}\n"
	decorators := transform.Decorators{
		"track": transform.PropertyFunc(func(ctx *transform.Context, property *ast.PropertyDecl, f *factory.Factory) (transform.Result, error) {
			names := transform.UserValue(ctx, func() *[]string { return &[]string{} })
			*names = append(*names, property.DeclName())
			return transform.Unchanged(property), nil
		}),
		"collect": transform.ClassFunc(func(ctx *transform.Context, class *ast.ClassDecl, f *factory.Factory) (transform.Result, error) {
			names := transform.UserValue(ctx, func() *[]string { return &[]string{} })
			observed := f.PropertyDecl(nil, []string{"static"}, f.Identifier("observed"), "", nil, f.Strings(*names...))
			members := append([]ast.Node{observed}, class.Members...)
			return transform.Replaced(f.WithMembers(class, members...)), nil
		}),
	}

	var testCases = []struct {
		description string
		traversal   comptime.Traversal
		expect      string
	}{
		{
			description: "postorder class sees decorated members",
			traversal:   comptime.Postorder,
			expect:      "class View {\n  static observed = [\"title\", \"count\"];\n  title = \"a\";\n  count = 1;\n  other = 2;\n}\n",
		},
		{
			description: "preorder class runs first",
			traversal:   comptime.Preorder,
			expect:      "class View {\n  static observed = [];\n  title = \"a\";\n  count = 1;\n  other = 2;\n}\n",
		},
	}
	for _, testCase := range testCases {
		plugin := transform.New(decorators, comptime.Config{Traversal: testCase.traversal})
		file, err := run(t, plugin, source)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, ast.Print(file), testCase.description)
	}
}

func TestPass_Component(t *testing.T) {
	component := transform.FactoryFunc(func(args ...literal.Value) (transform.Func, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected tag name")
		}
		tagName, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("expected string tag name, got %T", args[0])
		}
		return transform.ClassFunc(func(ctx *transform.Context, class *ast.ClassDecl, f *factory.Factory) (transform.Result, error) {
			define := f.ExpressionStmt(f.CallExpr(
				f.PropertyAccessExpr(f.Identifier("customElements"), "define"),
				f.StringLiteral(tagName),
				f.Identifier(class.DeclName()),
			))
			return transform.Expanded(f.WithMembers(class, class.Members...), define), nil
		}), nil
	})
	input := transform.PropertyFunc(func(ctx *transform.Context, property *ast.PropertyDecl, f *factory.Factory) (transform.Result, error) {
		return transform.Unchanged(property), nil
	})
	plugin := transform.New(transform.Decorators{"Component": component, "input": input})
	file, err := run(t, plugin, "@Component(\"my-el\")\nexport class MyEl {\n  @input a = 1;\n}\n")
	require.Nil(t, err)
	assert.Equal(t, "export class MyEl {\n  a = 1;\n}\ncustomElements.define(\"my-el\", MyEl);\n", ast.Print(file))
}

func TestPass_LiteralArguments(t *testing.T) {
	var testCases = []struct {
		description string
		arguments   string
		expect      []literal.Value
	}{
		{description: "string", arguments: `"my-el"`, expect: []literal.Value{"my-el"}},
		{description: "single quoted", arguments: `'it\'s'`, expect: []literal.Value{"it's"}},
		{description: "template", arguments: "`t`", expect: []literal.Value{"t"}},
		{description: "regex", arguments: "/re/gi", expect: []literal.Value{literal.Regex{Pattern: "re", Flags: "gi"}}},
		{description: "bigint", arguments: "10n", expect: []literal.Value{big.NewInt(10)}},
		{description: "hex", arguments: "0x10", expect: []literal.Value{float64(16)}},
		{description: "separators", arguments: "1_000.5", expect: []literal.Value{1000.5}},
		{description: "keywords", arguments: "true, false, null, undefined", expect: []literal.Value{true, false, nil, literal.Undefined{}}},
		{description: "array", arguments: "[1, 'two', [false]]", expect: []literal.Value{[]literal.Value{float64(1), "two", []literal.Value{false}}}},
		{
			description: "object",
			arguments:   "{k: 'v', 'quoted key': 1, 2: null, nested: {tags: []}}",
			expect: []literal.Value{map[string]literal.Value{
				"k": "v", "quoted key": float64(1), "2": nil, "nested": map[string]literal.Value{"tags": []literal.Value{}},
			}},
		},
		{
			description: "mixed",
			arguments:   "/re/gi, `t`, 10n, 0x10, undefined, [1], {k: 'v'}",
			expect: []literal.Value{
				literal.Regex{Pattern: "re", Flags: "gi"}, "t", big.NewInt(10), float64(16), literal.Undefined{},
				[]literal.Value{float64(1)}, map[string]literal.Value{"k": "v"},
			},
		},
	}

	bigEqual := cmp.Comparer(func(x, y *big.Int) bool { return x.Cmp(y) == 0 })
	for _, testCase := range testCases {
		var actual []literal.Value
		capture := transform.FactoryFunc(func(args ...literal.Value) (transform.Func, error) {
			actual = args
			return func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
				return transform.Unchanged(node), nil
			}, nil
		})
		plugin := transform.New(transform.Decorators{"f": capture})
		_, err := run(t, plugin, fmt.Sprintf("class A {\n  @f(%s) a = 1;\n}\n", testCase.arguments))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if diff := cmp.Diff(testCase.expect, actual, bigEqual); diff != "" {
			t.Errorf("%s: arguments mismatch (-want +got):\n%s", testCase.description, diff)
		}
	}
}

func TestPass_Arity(t *testing.T) {
	prog, file := parse(t, "class A {\n  @tag a = 1;\n}\n")
	plugin := transform.New(transform.Decorators{"tag": suffix("tag")}, comptime.Config{Traversal: comptime.Preorder})

	var testCases = []struct {
		description string
		args        []any
		expectErr   bool
		traversal   comptime.Traversal
	}{
		{description: "no arguments", args: nil, expectErr: true},
		{description: "three arguments", args: []any{comptime.Config{}, prog, prog}, expectErr: true},
		{description: "program only", args: []any{prog}, traversal: comptime.Preorder},
		{description: "empty config placeholder", args: []any{comptime.Config{}, prog}, traversal: comptime.Preorder},
		{description: "empty map placeholder", args: []any{map[string]any{}, prog}, traversal: comptime.Preorder},
		{description: "empty struct placeholder", args: []any{struct{}{}, prog}, traversal: comptime.Preorder},
		{description: "config override", args: []any{map[string]any{"traversal": "postorder"}, prog}, traversal: comptime.Postorder},
		{description: "not a program", args: []any{"program"}, expectErr: true},
		{description: "unsupported config", args: []any{42, prog}, expectErr: true},
		{description: "unknown traversal", args: []any{comptime.Config{Traversal: "sideways"}, prog}, expectErr: true},
		{description: "non string traversal", args: []any{map[string]any{"traversal": 1}, prog}, expectErr: true},
		{description: "decoded maxVisits", args: []any{map[string]any{"traversal": "preorder", "maxVisits": float64(100)}, prog}, traversal: comptime.Preorder},
		{description: "fractional maxVisits", args: []any{map[string]any{"maxVisits": 1.5}, prog}, expectErr: true},
		{description: "text maxVisits", args: []any{map[string]any{"maxVisits": "10"}, prog}, expectErr: true},
	}
	for _, testCase := range testCases {
		transformer, err := plugin.Pass(testCase.args...)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			configErr := &comptime.ConfigurationError{}
			assert.True(t, errors.As(err, &configErr), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		rewritten, err := transformer(file)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, []string{"a_tag"}, memberNames(classes(rewritten)[0]), testCase.description)
	}

	transformer, err := plugin.Pass(map[string]any{"maxVisits": float64(1)}, prog)
	require.Nil(t, err)
	_, err = transformer(file)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "exceeded 1 node visits")

	_, err = plugin.Pass()
	configErr := &comptime.ConfigurationError{}
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, comptime.ReasonArity, configErr.Reason)
	assert.Contains(t, err.Error(), "got 0")
}

func TestPass_Errors(t *testing.T) {
	direct := suffix("direct")
	factoryFunc := transform.FactoryFunc(func(args ...literal.Value) (transform.Func, error) {
		return suffix("factory"), nil
	})
	nilFactory := transform.FactoryFunc(func(args ...literal.Value) (transform.Func, error) {
		return nil, nil
	})
	failing := transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
		return transform.Result{}, comptime.NewConfigurationError(comptime.ReasonArgument, "fail", "invalid member %s", node.DeclName())
	})
	plugin := transform.New(transform.Decorators{"direct": direct, "factory": factoryFunc, "empty": nilFactory, "fail": failing})

	var testCases = []struct {
		description string
		source      string
		reason      comptime.Reason
		contains    string
	}{
		{description: "direct called", source: "class A {\n  @direct() a = 1;\n}\n", reason: comptime.ReasonUsage, contains: "@direct()"},
		{description: "factory bare", source: "class A {\n  @factory a = 1;\n}\n", reason: comptime.ReasonUsage, contains: "must be called"},
		{description: "factory returned nothing", source: "class A {\n  @empty() a = 1;\n}\n", reason: comptime.ReasonUsage, contains: "returned no decorator"},
		{description: "non literal argument", source: "class A {\n  @factory(compute()) a = 1;\n}\n", reason: comptime.ReasonArgument, contains: "compute()"},
		{description: "computed object key", source: "class A {\n  @factory({ [key]: 1 }) a = 1;\n}\n", reason: comptime.ReasonObjectKey, contains: "[key]"},
		{description: "array hole", source: "class A {\n  @factory([1,,2]) a = 1;\n}\n", reason: comptime.ReasonArgument, contains: "array hole"},
		{description: "user error is wrapped", source: "class A {\n  @fail a = 1;\n}\n", reason: comptime.ReasonArgument, contains: "@fail"},
	}
	for _, testCase := range testCases {
		_, err := run(t, plugin, testCase.source)
		if !assert.NotNil(t, err, testCase.description) {
			continue
		}
		configErr := &comptime.ConfigurationError{}
		if assert.True(t, errors.As(err, &configErr), testCase.description) {
			assert.Equal(t, testCase.reason, configErr.Reason, testCase.description)
		}
		assert.Contains(t, err.Error(), testCase.contains, testCase.description)
	}
}

func TestPass_EmptyResult(t *testing.T) {
	noop := transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
		return transform.Result{}, nil
	})
	plugin := transform.New(transform.Decorators{"noop": noop})
	var err error
	require.NotPanics(t, func() {
		_, err = run(t, plugin, "class A {\n  @noop a = 1;\n}\n")
	})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "@noop")
	assert.Contains(t, err.Error(), "empty unchanged result")
}

func TestPass_MaxVisits(t *testing.T) {
	explode := transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
		var nodes []ast.Node
		for i := 0; i < 20; i++ {
			nodes = append(nodes, f.PropertyDecl(nil, nil, f.Identifier(fmt.Sprintf("p%d", i)), "", nil, f.NumericLiteral("0")))
		}
		return transform.Expanded(nodes...), nil
	})
	plugin := transform.New(transform.Decorators{"explode": explode}, comptime.Config{MaxVisits: 10})
	_, err := run(t, plugin, "class A {\n  @explode a = 1;\n}\n")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "exceeded 10 node visits")

	plugin = transform.New(transform.Decorators{"explode": explode})
	file, err := run(t, plugin, "class A {\n  @explode a = 1;\n}\n")
	require.Nil(t, err)
	assert.Len(t, memberNames(classes(file)[0]), 20)
}

func TestContext(t *testing.T) {
	var parentKind ast.Kind
	var typeInfo *comptime.TypeInfo
	var fileName string
	var original ast.Node
	inspect := transform.PropertyFunc(func(ctx *transform.Context, property *ast.PropertyDecl, f *factory.Factory) (transform.Result, error) {
		renamed := f.WithName(property, "renamed")
		original = ctx.Original(renamed)
		if parent := ctx.Parent(renamed); parent != nil {
			parentKind = parent.Kind()
		}
		typeInfo = ctx.TypeOf(renamed)
		fileName = ctx.File().Path
		return transform.Replaced(renamed), nil
	})
	plugin := transform.New(transform.Decorators{"inspect": inspect})
	prog, file := parse(t, "class A {\n  @inspect label: string = \"x\";\n}\n")
	transformer, err := plugin.Pass(prog)
	require.Nil(t, err)
	_, err = transformer(file)
	require.Nil(t, err)

	assert.Equal(t, ast.KindClassDecl, parentKind)
	require.NotNil(t, typeInfo)
	assert.Equal(t, &comptime.TypeInfo{Text: "string", Kind: comptime.TypeKindAnnotation}, typeInfo)
	assert.Equal(t, "test.ts", fileName)
	require.NotNil(t, original)
	assert.Equal(t, "label", original.(ast.Decoratable).DeclName())
	assert.True(t, ast.IsParseTree(original))
}

func TestContext_UserSharedAcrossFiles(t *testing.T) {
	inspector := typescript.NewInspector(nil)
	first, err := inspector.InspectSource(context.Background(), "a.ts", []byte("class A {\n  @count a = 1;\n}\n"))
	require.Nil(t, err)
	second, err := inspector.InspectSource(context.Background(), "b.ts", []byte("class B {\n  @count b = 1;\n  @count c = 1;\n}\n"))
	require.Nil(t, err)
	prog := program.New(inspector.Arena(), first, second)

	var counts []int
	count := transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
		counter := transform.UserValue(ctx, func() *int { return new(int) })
		*counter++
		counts = append(counts, *counter)
		return transform.Unchanged(node), nil
	})
	transformer, err := transform.New(transform.Decorators{"count": count}).Pass(prog)
	require.Nil(t, err)
	for _, file := range prog.Files() {
		_, err := transformer(file)
		require.Nil(t, err)
	}
	assert.Equal(t, []int{1, 2, 3}, counts)
}

type recorder struct {
	applied map[string][]transform.ResultKind
	files   []string
}

func (r *recorder) DecoratorApplied(name string, kind transform.ResultKind) {
	r.applied[name] = append(r.applied[name], kind)
}

func (r *recorder) FileTransformed(path string, _ time.Duration, _ error) {
	r.files = append(r.files, path)
}

func TestPlugin_Observer(t *testing.T) {
	observer := &recorder{applied: map[string][]transform.ResultKind{}}
	plugin := transform.New(transform.Decorators{
		"first": suffix("first"),
		"drop": transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
			return transform.Removed(), nil
		}),
	}).With(transform.WithObserver(observer))
	_, err := run(t, plugin, "class A {\n  @first a = 1;\n  @drop b = 2;\n}\n")
	require.Nil(t, err)
	assert.Equal(t, map[string][]transform.ResultKind{
		"first": {transform.KindReplaced},
		"drop":  {transform.KindRemoved},
	}, observer.applied)
	assert.Equal(t, []string{"test.ts"}, observer.files)
}
