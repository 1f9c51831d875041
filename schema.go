// Package schema implements a JSON Schema engine built around an immutable,
// order-preserving value tree. It validates values against draft-07 style
// schemas, resolves local references, infers concrete types for ambiguous
// nodes, and reads or writes document locations addressed by JSON pointers.
package schema

import (
	"github.com/goliatone/go-schema/internal/accessor"
	"github.com/goliatone/go-schema/internal/check"
	"github.com/goliatone/go-schema/internal/config"
	"github.com/goliatone/go-schema/internal/domain"
	"github.com/goliatone/go-schema/internal/infer"
	"github.com/goliatone/go-schema/internal/logging"
	"github.com/goliatone/go-schema/internal/resolver"
	"github.com/goliatone/go-schema/internal/validation"
	"github.com/goliatone/go-schema/pkg/interfaces"
)

// Value is an immutable JSON value with ordered object keys.
type Value = domain.Value

// Kind identifies the JSON kind of a value or schema type.
type Kind = domain.Kind

// Type is a schema type declaration: any, single, nullable or union.
type Type = domain.Type

// Schema is a decoded schema node.
type Schema = domain.Schema

// SchemaMap is an ordered name-to-schema map.
type SchemaMap = domain.SchemaMap

// Dependency is a single entry of the dependencies keyword.
type Dependency = domain.Dependency

// Items is the tagged items keyword: none, single schema, or schema list.
type Items = domain.Items

// Kind values.
const (
	KindNull    = domain.KindNull
	KindBool    = domain.KindBool
	KindInteger = domain.KindInteger
	KindFloat   = domain.KindFloat
	KindString  = domain.KindString
	KindArray   = domain.KindArray
	KindObject  = domain.KindObject
)

// Value constructors.
var (
	Null   = domain.Null
	Bool   = domain.Bool
	Number = domain.Number
	String = domain.String
	Array  = domain.Array
	Object = domain.Object
)

// Type constructors.
var (
	AnyType      = domain.AnyType
	SingleType   = domain.SingleType
	NullableType = domain.NullableType
	UnionType    = domain.UnionType
)

// Schema constructors.
var (
	TrueSchema  = domain.TrueSchema
	FalseSchema = domain.FalseSchema
	Blank       = domain.Blank
)

// Codec entry points.
var (
	DecodeValue       = domain.DecodeValue
	DecodeValueString = domain.DecodeValueString
	EncodeValue       = domain.EncodeValue
	DecodeSchema      = domain.DecodeSchema
	SchemaFromValue   = domain.SchemaFromValue
	SchemaToValue     = domain.SchemaToValue
)

// Pointer helpers.
var (
	ParsePointer  = domain.ParsePointer
	FormatPointer = domain.FormatPointer
)

// Engine bundles the resolver, validator, inferencer and accessor behind a
// single entry point configured once.
type Engine struct {
	cfg    config.Config
	logger interfaces.Logger

	res *resolver.Resolver
	val *validation.Validator
	inf *infer.Inferencer
	acc *accessor.Accessor
}

// Option customizes an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	cfg      config.Config
	provider interfaces.LoggerProvider
}

// WithConfig supplies engine settings. The configuration is validated; an
// invalid one falls back to the defaults and surfaces through New.
func WithConfig(cfg config.Config) Option {
	return func(o *engineOptions) { o.cfg = cfg }
}

// WithLogger supplies a logger provider for engine diagnostics.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(o *engineOptions) { o.provider = provider }
}

// New constructs an Engine. Without options it uses the default bounds and a
// no-op logger.
func New(opts ...Option) (*Engine, error) {
	options := engineOptions{cfg: config.Default()}
	for _, opt := range opts {
		opt(&options)
	}
	if err := options.cfg.Validate(); err != nil {
		return nil, wrapConfigError(err)
	}

	res := resolver.New()
	res.MaxDepth = options.cfg.MaxResolveDepth
	val := validation.NewWith(res)
	val.MaxDepth = options.cfg.MaxValidateDepth
	inf := infer.NewWith(res, val)
	inf.MaxDepth = options.cfg.MaxResolveDepth

	return &Engine{
		cfg:    options.cfg,
		logger: logging.ModuleLogger(options.provider, ""),
		res:    res,
		val:    val,
		inf:    inf,
		acc:    accessor.NewWith(res, inf),
	}, nil
}

// Validate checks val against the schema and returns nil or the first
// failure message.
func (e *Engine) Validate(root *Schema, val Value) error {
	err := e.val.Validate(root, val)
	if err != nil {
		e.logger.Debug("validation failed", "error", err)
	}
	return err
}

// ValidateAt checks val against a node inside root.
func (e *Engine) ValidateAt(root, node *Schema, val Value) error {
	return e.val.ValidateWith(root, node, val)
}

// Collect returns every constraint violation keyed by the pointer of the
// offending location.
func (e *Engine) Collect(root *Schema, val Value) map[string]string {
	return e.val.Collect(root, val)
}

// ResolveReference resolves a "$ref" string against the root schema. It
// returns nil when the reference cannot be resolved.
func (e *Engine) ResolveReference(root *Schema, ref string) *Schema {
	return e.res.Reference(root, ref)
}

// Resolve dereferences a node's $ref, returning the node itself when it has
// none and nil when the reference cannot be resolved.
func (e *Engine) Resolve(root, node *Schema) *Schema {
	return e.res.Deref(root, node)
}

// FindProperty locates the schema governing the named property of node.
func (e *Engine) FindProperty(name string, root, node *Schema) *Schema {
	return e.res.FindProperty(name, root, node)
}

// SchemaAt walks the schema along a value pointer such as "#/user/tags/0"
// and returns the governing node, or nil when the path leaves schema-guided
// territory.
func (e *Engine) SchemaAt(root *Schema, pointer string) (*Schema, error) {
	return e.res.ForPointer(root, pointer)
}

// ImplyType determines the concrete type and governing schema for the
// document location addressed by pointer.
func (e *Engine) ImplyType(root *Schema, doc Value, pointer string) (Type, *Schema, error) {
	return e.inf.ImplyType(root, doc, pointer)
}

// CalcSubSchemaType resolves the concrete type of a single schema node,
// optionally disambiguated by the actual value at the location.
func (e *Engine) CalcSubSchemaType(actual *Value, root, node *Schema) (Type, *Schema, error) {
	return e.inf.CalcSubSchemaType(actual, root, node)
}

// Get returns the value at path. The second result reports presence.
func (e *Engine) Get(root *Schema, path string, doc Value) (Value, bool) {
	return e.acc.Get(root, path, doc)
}

// GetString returns the string at path, or "".
func (e *Engine) GetString(root *Schema, path string, doc Value) string {
	return e.acc.GetString(root, path, doc)
}

// GetInt returns the number at path truncated to int, or 0.
func (e *Engine) GetInt(root *Schema, path string, doc Value) int {
	return e.acc.GetInt(root, path, doc)
}

// GetBool returns the boolean at path, or false.
func (e *Engine) GetBool(root *Schema, path string, doc Value) bool {
	return e.acc.GetBool(root, path, doc)
}

// GetLength returns the element count, rune count, or 0 for the value at
// path.
func (e *Engine) GetLength(root *Schema, path string, doc Value) int {
	return e.acc.GetLength(root, path, doc)
}

// Set returns a new document with the value at path replaced, creating
// intermediate containers as the schema implies.
func (e *Engine) Set(root *Schema, path string, newVal, doc Value) (Value, error) {
	return e.acc.Set(root, path, newVal, doc)
}

// DefaultFor produces the typed seed value for a schema node.
func (e *Engine) DefaultFor(root, node *Schema) Value {
	return e.acc.DefaultFor(root, node)
}

// CheckDocument compiles the raw schema document with a draft-07 compiler
// and reports authoring errors.
func (e *Engine) CheckDocument(data []byte) error {
	if err := check.Document(data); err != nil {
		e.logger.Debug("schema document rejected", "error", err)
		return wrapCheckError(err)
	}
	return nil
}

// CheckKeywords reports the first keyword in a decoded schema document that
// falls outside the supported subset.
func (e *Engine) CheckKeywords(doc Value) error {
	if err := check.KeywordSubset(doc); err != nil {
		return wrapCheckError(err)
	}
	return nil
}

var defaultEngine = mustEngine()

func mustEngine() *Engine {
	e, err := New()
	if err != nil {
		panic(err)
	}
	return e
}

// Validate checks val against the schema using the default engine.
func Validate(root *Schema, val Value) error {
	return defaultEngine.Validate(root, val)
}

// Collect gathers violations using the default engine.
func Collect(root *Schema, val Value) map[string]string {
	return defaultEngine.Collect(root, val)
}

// ImplyType infers the concrete type at pointer using the default engine.
func ImplyType(root *Schema, doc Value, pointer string) (Type, *Schema, error) {
	return defaultEngine.ImplyType(root, doc, pointer)
}

// Get reads the value at path using the default engine.
func Get(root *Schema, path string, doc Value) (Value, bool) {
	return defaultEngine.Get(root, path, doc)
}

// Set writes the value at path using the default engine.
func Set(root *Schema, path string, newVal, doc Value) (Value, error) {
	return defaultEngine.Set(root, path, newVal, doc)
}
