package scan

import "regexp"

// Declaration patterns for C#-style sources. Extraction is deliberately
// textual: one pass over the lines, no brace or scope tracking, no
// distinction between a declaration that spans lines and one that fits on
// one. The patterns over- and under-match in known ways; queries that rely
// on this approximation are part of the contract, so do not replace them
// with a real parser.
var (
	// namespacePattern tracks the current namespace. The namespace is
	// assumed to extend to the rest of the file; a closing brace never
	// resets it.
	namespacePattern = regexp.MustCompile(`\bnamespace\s+([A-Za-z_][\w.]*)`)

	// typePattern matches class/struct/interface/enum declarations.
	typePattern = regexp.MustCompile(`\b(?:class|struct|interface|enum)\s+([A-Za-z_]\w*)`)

	// methodPattern matches "<type> <name>(" pairs. The first group is the
	// return-type token, kept so keyword guards can reject control flow
	// like "return Foo(".
	methodPattern = regexp.MustCompile(`\b([A-Za-z_][\w<>\[\],.]*)\s+([A-Za-z_]\w*)\s*\(`)

	// propertyPattern matches "<type> <name> { get" / "{ set" accessors.
	propertyPattern = regexp.MustCompile(`\b[A-Za-z_][\w<>\[\],.]*\s+([A-Za-z_]\w*)\s*\{\s*(?:get|set)\b`)

	// fieldPattern matches access-modified field declarations ending in
	// an initializer or semicolon.
	fieldPattern = regexp.MustCompile(`\b(?:public|private|protected|internal)\s+(?:(?:static|readonly|const|volatile)\s+)*[A-Za-z_][\w<>\[\],.]*\s+([A-Za-z_]\w*)\s*[=;]`)

	// importPattern matches "using X;" style import lines.
	importPattern = regexp.MustCompile(`^\s*using\s+(?:static\s+)?([A-Za-z_][\w.]*)\s*;`)
)

// methodGuardKeywords are tokens that disqualify a methodPattern match:
// either the captured name or the token in type position being one of these
// means the line is control flow, not a declaration.
var methodGuardKeywords = map[string]bool{
	"if":        true,
	"else":      true,
	"for":       true,
	"foreach":   true,
	"while":     true,
	"switch":    true,
	"case":      true,
	"catch":     true,
	"return":    true,
	"throw":     true,
	"new":       true,
	"using":     true,
	"lock":      true,
	"await":     true,
	"in":        true,
	"namespace": true,
}

// matchMethodName extracts a method name from a line, or ok=false when the
// line does not look like a method declaration.
func matchMethodName(line string) (string, bool) {
	m := methodPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	if methodGuardKeywords[m[1]] || methodGuardKeywords[m[2]] {
		return "", false
	}
	return m[2], true
}
