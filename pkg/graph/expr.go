package graph

import (
	"strconv"
	"strings"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/types"
)

// Resolver resolves type expressions against a pool and a set of document
// level type names. Identical expressions resolve to the same TypeID.
type Resolver struct {
	pool  *types.Pool
	names map[string]types.TypeID
	cache map[string]types.TypeID
}

// NewResolver creates a resolver that adds types to pool.
func NewResolver(pool *types.Pool) *Resolver {
	return &Resolver{
		pool:  pool,
		names: make(map[string]types.TypeID),
		cache: make(map[string]types.TypeID),
	}
}

// ParseTypeExpr resolves a single expression into pool.
func ParseTypeExpr(pool *types.Pool, expr string) (types.TypeID, error) {
	return NewResolver(pool).Resolve(expr)
}

// Name binds a document-level name to id. Names that look like an unsigned
// integer expression, or are already bound, are rejected.
func (r *Resolver) Name(name string, id types.TypeID) error {
	if err := errors.ValidateName(name); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidType, err, "type name")
	}
	if _, ok := uintBits(name); ok {
		return errors.New(errors.ErrCodeInvalidType, "type name %q shadows an integer type", name)
	}
	if r.taken(name) {
		return errors.New(errors.ErrCodeInvalidType, "type %q already defined", name)
	}
	if !r.pool.Contains(id) {
		return errors.New(errors.ErrCodeInvalidType, "type %q refers to unknown type id %d", name, id)
	}
	r.names[name] = id
	return nil
}

// taken reports whether name is bound or names a record in the pool.
func (r *Resolver) taken(name string) bool {
	if _, ok := r.names[name]; ok {
		return true
	}
	_, ok := r.pool.Lookup(name)
	return ok
}

// Resolve parses expr and returns the matching type, adding it to the pool
// when needed.
func (r *Resolver) Resolve(expr string) (types.TypeID, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return types.Invalid, errors.New(errors.ErrCodeInvalidType, "empty type expression")
	}
	if id, ok := r.cache[expr]; ok {
		return id, nil
	}

	base, suffixes, err := splitSuffixes(expr)
	if err != nil {
		return types.Invalid, err
	}

	id, err := r.resolveBase(base)
	if err != nil {
		return types.Invalid, err
	}
	key := base
	for _, s := range suffixes {
		key += "[" + s + "]"
		if cached, ok := r.cache[key]; ok {
			id = cached
			continue
		}
		if s == "" {
			id, err = r.pool.VariableArray(id)
		} else {
			n, convErr := strconv.Atoi(s)
			if convErr != nil {
				return types.Invalid, errors.Wrap(errors.ErrCodeInvalidType, convErr, "array length in %q", expr)
			}
			id, err = r.pool.FixedArray(id, n)
		}
		if err != nil {
			return types.Invalid, err
		}
		r.cache[key] = id
	}
	r.cache[expr] = id
	return id, nil
}

func (r *Resolver) resolveBase(base string) (types.TypeID, error) {
	if id, ok := r.cache[base]; ok {
		return id, nil
	}
	if id, ok := r.names[base]; ok {
		return id, nil
	}
	if bits, ok := uintBits(base); ok {
		id, err := r.pool.UnsignedInt(bits)
		if err != nil {
			return types.Invalid, err
		}
		r.cache[base] = id
		return id, nil
	}
	if id, ok := r.pool.Lookup(base); ok {
		return id, nil
	}
	return types.Invalid, errors.New(errors.ErrCodeInvalidType, "unknown type %q", base)
}

// splitSuffixes splits "T[4][]" into "T" and ["4", ""].
func splitSuffixes(expr string) (string, []string, error) {
	i := strings.IndexByte(expr, '[')
	if i < 0 {
		return expr, nil, nil
	}
	base, rest := strings.TrimSpace(expr[:i]), expr[i:]
	if base == "" {
		return "", nil, errors.New(errors.ErrCodeInvalidType, "missing element type in %q", expr)
	}

	var suffixes []string
	for rest != "" {
		end := strings.IndexByte(rest, ']')
		if rest[0] != '[' || end < 0 {
			return "", nil, errors.New(errors.ErrCodeInvalidType, "malformed array suffix in %q", expr)
		}
		suffixes = append(suffixes, strings.TrimSpace(rest[1:end]))
		rest = strings.TrimSpace(rest[end+1:])
	}
	return base, suffixes, nil
}

// uintBits reports whether s has the form u<N> with N > 0.
func uintBits(s string) (int, bool) {
	if len(s) < 2 || s[0] != 'u' {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n <= 0 || strings.ContainsAny(s[1:], "+-") {
		return 0, false
	}
	return n, true
}
