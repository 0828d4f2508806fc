package scan

import "strings"

// ExtractSymbols builds a file's symbol table: name -> 1-based declaration
// lines in scan order. Type names are qualified with the current namespace;
// method, property, and field names are recorded bare. A line may feed more
// than one pattern, and every match contributes independently.
func ExtractSymbols(content string) map[string][]int {
	symbols := make(map[string][]int)
	currentNamespace := ""

	for i, line := range strings.Split(content, "\n") {
		lineNumber := i + 1

		if m := namespacePattern.FindStringSubmatch(line); m != nil {
			currentNamespace = m[1]
		}

		if m := typePattern.FindStringSubmatch(line); m != nil {
			name := m[1]
			if currentNamespace != "" {
				name = currentNamespace + "." + name
			}
			symbols[name] = append(symbols[name], lineNumber)
		}

		if name, ok := matchMethodName(line); ok {
			symbols[name] = append(symbols[name], lineNumber)
		}

		if m := propertyPattern.FindStringSubmatch(line); m != nil {
			symbols[m[1]] = append(symbols[m[1]], lineNumber)
		}

		if m := fieldPattern.FindStringSubmatch(line); m != nil {
			symbols[m[1]] = append(symbols[m[1]], lineNumber)
		}
	}

	return symbols
}

// ExtractImports returns the imported module names of a file in source
// order. Duplicates are kept.
func ExtractImports(content string) []string {
	var imports []string
	for _, line := range strings.Split(content, "\n") {
		if m := importPattern.FindStringSubmatch(line); m != nil {
			imports = append(imports, strings.TrimSpace(m[1]))
		}
	}
	return imports
}
