package ignore

// DefaultIgnorePatterns contains patterns that are always excluded from
// scanning. These cover Unity's generated directories plus common noise
// that is never useful for code search.
var DefaultIgnorePatterns = []string{
	// Version control
	".git",
	".svn",
	".hg",

	// Unity generated directories
	"Library",
	"Temp",
	"Obj",
	"obj",
	"Build",
	"Builds",
	"Logs",
	"UserSettings",
	"MemoryCaptures",
	"Recordings",

	// IDE / Editor
	".idea",
	".vscode",
	".vs",
	"*.swp",
	"*.swo",
	"*~",

	// OS files
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",

	// Unity metadata and serialized assets
	"*.meta",
	"*.unity",
	"*.prefab",
	"*.asset",
	"*.mat",
	"*.anim",
	"*.controller",
	"*.unitypackage",

	// Compiled / Binary
	"*.exe",
	"*.dll",
	"*.so",
	"*.dylib",
	"*.o",
	"*.a",
	"*.pdb",
	"*.mdb",

	// Archives
	"*.zip",
	"*.tar",
	"*.tar.gz",
	"*.tgz",
	"*.rar",
	"*.7z",

	// Media
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.gif",
	"*.psd",
	"*.tga",
	"*.fbx",
	"*.blend",
	"*.wav",
	"*.mp3",
	"*.ogg",
	"*.mp4",

	// Fonts
	"*.ttf",
	"*.otf",
	"*.fon",

	// Logs and caches
	"*.log",
	".cache",

	// Database files
	"*.sqlite",
	"*.sqlite3",
	"*.db",
}
