// Package codegen emits the JS fragments that bind generated values into
// the surrounding bundle, and names the runtime globals those fragments
// reference.
package codegen

import "encoding/json"

// Runtime identifiers referenced by generated fragments.
const (
	// NamespaceObjectExport is the well-known export name a concatenated
	// module's namespace object is bound to.
	NamespaceObjectExport = "__KILN_NAMESPACE_OBJECT__"
	// PublicPathRef is the runtime expression resolving the configured
	// public base path.
	PublicPathRef = "__kiln_require__.p"
	// ExportsContainer is the module exports container for standalone
	// module wrapping.
	ExportsContainer = "module.exports"
)

// ConstDecl emits a local const declaration binding name to expr.
func ConstDecl(name, expr string) string {
	return "const " + name + " = " + expr + ";"
}

// ExportsAssign emits an assignment of expr to the module exports
// container.
func ExportsAssign(expr string) string {
	return ExportsContainer + " = " + expr + ";"
}

// PublicPathConcat emits a runtime expression concatenating the public
// base path with a literal filename.
func PublicPathConcat(filename string) string {
	return PublicPathRef + " + " + JSString(filename)
}

// JSString renders s as a JS string literal. JSON string escaping is a
// subset of JS string syntax, so the JSON form is valid verbatim.
func JSString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail.
		panic(err)
	}
	return string(b)
}
