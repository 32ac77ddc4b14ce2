// Package actions exposes the VK method namespaces (account, board, leads,
// likes, secure, wall) as a method table plus one generic dispatch call.
package actions

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vkcom/vk-cli/internal/api"
	"github.com/vkcom/vk-cli/internal/resolve"
)

// Namespace names.
const (
	NamespaceAccount = "account"
	NamespaceBoard   = "board"
	NamespaceLeads   = "leads"
	NamespaceLikes   = "likes"
	NamespaceSecure  = "secure"
	NamespaceWall    = "wall"
)

// ParamType is the documented type of a method parameter.
type ParamType string

const (
	ParamInteger ParamType = "integer"
	ParamNumber  ParamType = "number"
	ParamString  ParamType = "string"
	ParamBoolean ParamType = "boolean"
	ParamArray   ParamType = "array"
	ParamEnum    ParamType = "enum"
)

// Param documents one method parameter.
type Param struct {
	Name        string
	Type        ParamType
	Values      []string
	Description string
}

// Method is one remote API method.
type Method struct {
	Namespace string
	Name      string
	Remote    string
	Summary   string
	Params    []Param
}

// Param returns the named parameter.
func (m Method) Param(name string) (Param, bool) {
	for _, p := range m.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Dispatcher performs a method call.
type Dispatcher interface {
	Request(ctx context.Context, method, accessToken string, params map[string]any) (*api.Response, error)
}

// UnknownMethodError is returned for an operation missing from a namespace.
type UnknownMethodError struct {
	Namespace   string
	Name        string
	Suggestions []string
}

func (e *UnknownMethodError) Error() string {
	msg := fmt.Sprintf("unknown %s method %q", e.Namespace, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// All returns every method in catalog order.
func All() []Method {
	return append([]Method(nil), catalog...)
}

// Namespaces returns the namespace names in catalog order.
func Namespaces() []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range catalog {
		if !seen[m.Namespace] {
			seen[m.Namespace] = true
			names = append(names, m.Namespace)
		}
	}
	return names
}

// Methods returns the methods of one namespace.
func Methods(namespace string) []Method {
	var out []Method
	for _, m := range catalog {
		if m.Namespace == namespace {
			out = append(out, m)
		}
	}
	return out
}

// Lookup finds a method by namespace and operation name. An exact match
// wins; otherwise names are compared case-insensitively.
func Lookup(namespace, name string) (Method, bool) {
	var folded *Method
	for i, m := range catalog {
		if m.Namespace != namespace {
			continue
		}
		if m.Name == name {
			return m, true
		}
		if folded == nil && strings.EqualFold(m.Name, name) {
			folded = &catalog[i]
		}
	}
	if folded != nil {
		return *folded, true
	}
	return Method{}, false
}

// LookupRemote finds a method by its remote name, e.g. "wall.get".
func LookupRemote(remote string) (Method, bool) {
	namespace, name, ok := strings.Cut(remote, ".")
	if !ok {
		return Method{}, false
	}
	return Lookup(namespace, name)
}

// Suggest returns likely operation names in namespace for a mistyped name.
func Suggest(namespace, name string) []string {
	var names []string
	for _, m := range Methods(namespace) {
		names = append(names, m.Name)
	}
	return resolve.Suggest(name, names, 3)
}

// Namespace dispatches the operations of one method namespace.
type Namespace struct {
	name string
	d    Dispatcher
}

// Name returns the namespace name.
func (n Namespace) Name() string {
	return n.name
}

// Methods returns the namespace's methods.
func (n Namespace) Methods() []Method {
	return Methods(n.name)
}

// Call invokes operation with params, passed to the dispatcher unchanged.
func (n Namespace) Call(ctx context.Context, operation, accessToken string, params map[string]any) (*api.Response, error) {
	m, ok := Lookup(n.name, operation)
	if !ok {
		return nil, &UnknownMethodError{
			Namespace:   n.name,
			Name:        operation,
			Suggestions: Suggest(n.name, operation),
		}
	}
	return n.d.Request(ctx, m.Remote, accessToken, params)
}

// Actions groups every namespace over one dispatcher.
type Actions struct {
	Account Namespace
	Board   Namespace
	Leads   Namespace
	Likes   Namespace
	Secure  Namespace
	Wall    Namespace
}

// New creates Actions backed by d.
func New(d Dispatcher) *Actions {
	return &Actions{
		Account: Namespace{name: NamespaceAccount, d: d},
		Board:   Namespace{name: NamespaceBoard, d: d},
		Leads:   Namespace{name: NamespaceLeads, d: d},
		Likes:   Namespace{name: NamespaceLikes, d: d},
		Secure:  Namespace{name: NamespaceSecure, d: d},
		Wall:    Namespace{name: NamespaceWall, d: d},
	}
}

// Namespace returns the namespace with the given name.
func (a *Actions) Namespace(name string) (Namespace, bool) {
	switch name {
	case NamespaceAccount:
		return a.Account, true
	case NamespaceBoard:
		return a.Board, true
	case NamespaceLeads:
		return a.Leads, true
	case NamespaceLikes:
		return a.Likes, true
	case NamespaceSecure:
		return a.Secure, true
	case NamespaceWall:
		return a.Wall, true
	}
	return Namespace{}, false
}

// Coerce converts a command-line string to the documented parameter type.
// Integers, numbers and booleans are parsed, arrays split on commas, and
// enum values checked against the allowed set.
func (p Param) Coerce(raw string) (any, error) {
	switch p.Type {
	case ParamInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: expected integer, got %q", p.Name, raw)
		}
		return n, nil
	case ParamNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: expected number, got %q", p.Name, raw)
		}
		return f, nil
	case ParamBoolean:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "1", "true", "yes":
			return true, nil
		case "0", "false", "no", "":
			return false, nil
		}
		return nil, fmt.Errorf("%s: expected boolean, got %q", p.Name, raw)
	case ParamArray:
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	case ParamEnum:
		for _, v := range p.Values {
			if v == raw {
				return raw, nil
			}
		}
		return nil, api.NewValidationError(p.Name, raw, p.Values)
	}
	return raw, nil
}
