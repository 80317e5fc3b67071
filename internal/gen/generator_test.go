package gen

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/plan"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const examplePkg = "builder-generator/examples/order"

func basic(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindBasic, Expr: name}
}

func addressDecl(dir string) *analyze.TypeDecl {
	coordinates := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: examplePkg, Name: "Coordinates"},
		Kind: analyze.TypeKindStruct,
		Expr: "Coordinates",
	}

	return &analyze.TypeDecl{
		ID:          analyze.TypeID{PkgPath: examplePkg, Name: "Address"},
		PkgName:     "order",
		Dir:         dir,
		BuilderName: "AddressBuilder",
		Properties: []analyze.PropertyInput{
			{Name: "Street", Type: basic("string")},
			{Name: "City", Type: basic("string")},
			{Name: "Location", Type: coordinates},
		},
	}
}

func mutedDecl(dir string) *analyze.TypeDecl {
	str := basic("string")
	tags := &analyze.TypeInfo{
		ID:       analyze.TypeID{PkgPath: plan.RuntimePkgPath, Name: "Set"},
		Kind:     analyze.TypeKindStruct,
		Expr:     "fb.Set[string]",
		TypeArgs: []*analyze.TypeInfo{str},
		Imports:  []analyze.Import{{Name: "fb", Path: plan.RuntimePkgPath}},
	}
	items := &analyze.TypeInfo{Kind: analyze.TypeKindSlice, Expr: "[]int", Elem: basic("int")}

	return &analyze.TypeDecl{
		ID:          analyze.TypeID{PkgPath: examplePkg, Name: "Muted"},
		PkgName:     "order",
		Dir:         dir,
		BuilderName: "MutedBuilder",
		Properties: []analyze.PropertyInput{
			{Name: "Items", Type: items},
			{Name: "Tags", Type: tags},
		},
		Overrides: []string{"AddItems", "ClearTags"},
	}
}

func TestGenerator_GenerateMatchesCheckedInFile(t *testing.T) {
	g := NewGenerator()

	file, err := g.Plan(addressDecl("../../examples/order"), nil)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "examples", "order", "address_builder.go"))
	require.NoError(t, err)

	assert.Equal(t, "address_builder.go", file.Filename)
	assert.Equal(t, string(want), string(file.Content))
}

func TestGenerator_GenerateOverrides(t *testing.T) {
	var diags diagnostic.Diagnostics

	file, err := NewGenerator().Plan(mutedDecl(t.TempDir()), &diags)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "func (b *MutedBuilder) addItems(element int) *MutedBuilder {")
	assert.Contains(t, content, "func (b *MutedBuilder) clearTags() *MutedBuilder {")
	assert.NotContains(t, content, "func (b *MutedBuilder) AddItems(")
	assert.Contains(t, content, "\t\tb.AddItems(element)\n", "multi-element mutators call the user method")
	assert.Contains(t, content, "\t*b = MutedBuilder{}\n", "Clear resets storage directly")

	assert.Len(t, diags.Infos, 2)

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	assert.NoError(t, err)
}

func TestGenerator_Options(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(WithSuffix("_gen.go"), WithOutputDir(out), WithJobs(1))

	assert.Equal(t, "line_item_gen.go", g.Filename("LineItem"))

	file, err := g.Plan(addressDecl("ignored"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "address_gen.go"), file.Path())

	defaults := NewGenerator(WithSuffix(""), WithJobs(0))
	assert.Equal(t, "address_builder.go", defaults.Filename("Address"))
	assert.Positive(t, defaults.jobs)
}

func TestGenerator_GenerateWritesUnformattedSidecar(t *testing.T) {
	dir := t.TempDir()

	spec, err := plan.Plan(addressDecl(dir), nil)
	require.NoError(t, err)

	spec.Members[0].Methods[0].Body = []string{"return b +"}

	file, err := NewGenerator().Generate(spec, dir)
	require.Error(t, err)
	require.NotNil(t, file)
	assert.Contains(t, string(file.Content), "return b +")

	sidecar, err := os.ReadFile(filepath.Join(dir, "address_builder.unformatted.txt"))
	require.NoError(t, err)
	assert.Equal(t, file.Content, sidecar)
}

func TestGenerator_GenerateAll(t *testing.T) {
	dir := t.TempDir()

	broken := &analyze.TypeDecl{
		ID:          analyze.TypeID{PkgPath: examplePkg, Name: "Broken"},
		PkgName:     "order",
		Dir:         dir,
		BuilderName: "BrokenBuilder",
		Properties: []analyze.PropertyInput{
			{Name: "Build", Type: basic("int")},
		},
	}

	var diags diagnostic.Diagnostics

	files, err := NewGenerator(WithJobs(2)).GenerateAll(context.Background(),
		[]*analyze.TypeDecl{mutedDecl(dir), broken, addressDecl(dir)}, &diags)
	require.Error(t, err, "a failing declaration is reported")
	assert.ErrorIs(t, err, plan.ErrUnsupportedType)

	var generated []string
	for _, f := range files {
		generated = append(generated, f.TypeName)
	}

	assert.Equal(t, []string{"Muted", "Address"}, generated, "the other declarations are still generated")

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "Broken", diags.Errors[0].TypeName)
	assert.Len(t, diags.Infos, 2)
}

func TestGenerator_GenerateAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files, err := NewGenerator().GenerateAll(ctx, []*analyze.TypeDecl{addressDecl(t.TempDir())}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, files)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "order")

	files := []GeneratedFile{
		{TypeName: "Address", Dir: dir, Filename: "address_builder.go", Content: []byte("package order\n")},
		{TypeName: "Muted", Dir: dir, Filename: "muted_builder.go", Content: []byte("package order\n")},
	}

	written, err := WriteFiles(files)
	require.NoError(t, err)
	assert.Equal(t, []string{files[0].Path(), files[1].Path()}, written)

	for _, f := range files {
		content, err := os.ReadFile(f.Path())
		require.NoError(t, err)
		assert.Equal(t, f.Content, content)
	}

	files[1].Content = []byte("package order\n\n// changed\n")

	written, err = WriteFiles(files)
	require.NoError(t, err)
	assert.Equal(t, []string{files[1].Path()}, written, "unchanged files are not rewritten")
}
