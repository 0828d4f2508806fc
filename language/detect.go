package language

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions is the default set of recognized source suffixes.
// Unity projects carry game code in C# (plus legacy UnityScript) and
// shader code in ShaderLab files with .cginc includes.
var DefaultExtensions = []string{".cs", ".js", ".shader", ".cginc"}

// ExtensionToLanguage maps file extensions (without dot) to language names.
var ExtensionToLanguage = map[string]string{
	"cs":      "C#",
	"csx":     "C#",
	"js":      "UnityScript",
	"shader":  "ShaderLab",
	"cginc":   "Cg/HLSL",
	"hlsl":    "Cg/HLSL",
	"compute": "Compute Shader",
	"glsl":    "GLSL",
	"asmdef":  "Assembly Definition",
	"json":    "JSON",
	"yaml":    "YAML",
	"yml":     "YAML",
	"xml":     "XML",
	"txt":     "Text",
	"md":      "Markdown",
}

// DetectLanguage returns the language name for a file path based on its extension.
// Returns "Unknown" if the extension is not recognized.
func DetectLanguage(filePath string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
	if lang, ok := ExtensionToLanguage[ext]; ok {
		return lang
	}
	return "Unknown"
}

// RecognizedSet builds a lookup set from a list of extensions (with leading dot).
// An empty list falls back to DefaultExtensions.
func RecognizedSet(extensions []string) map[string]bool {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

// IsRecognized reports whether the file path carries one of the recognized
// source extensions.
func IsRecognized(filePath string, recognized map[string]bool) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return recognized[ext]
}
