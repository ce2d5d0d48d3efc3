package config

// DefaultRiskyCalls are call prefixes that commonly raise at runtime.
var DefaultRiskyCalls = []string{
	"open",
	"json.load",
	"json.loads",
	"requests.get",
	"requests.post",
	"requests.put",
	"requests.delete",
	"urllib.request.urlopen",
	"urlopen",
	"int",
	"float",
}

// DefaultBuiltins are names that are always bound.
var DefaultBuiltins = []string{
	// constants and module attributes
	"True", "False", "None", "Ellipsis", "NotImplemented",
	"__name__", "__file__", "__doc__", "__package__", "__spec__",
	"__builtins__", "__debug__", "__import__", "__loader__",
	// functions
	"abs", "aiter", "all", "anext", "any", "ascii", "bin", "bool",
	"breakpoint", "bytearray", "bytes", "callable", "chr", "classmethod",
	"compile", "complex", "delattr", "dict", "dir", "divmod", "enumerate",
	"eval", "exec", "exit", "filter", "float", "format", "frozenset",
	"getattr", "globals", "hasattr", "hash", "help", "hex", "id", "input",
	"int", "isinstance", "issubclass", "iter", "len", "list", "locals",
	"map", "max", "memoryview", "min", "next", "object", "oct", "open",
	"ord", "pow", "print", "property", "quit", "range", "repr", "reversed",
	"round", "set", "setattr", "slice", "sorted", "staticmethod", "str",
	"sum", "super", "tuple", "type", "vars", "zip",
	// exceptions
	"BaseException", "Exception", "ArithmeticError", "AssertionError",
	"AttributeError", "BlockingIOError", "BrokenPipeError", "BufferError",
	"ConnectionError", "ConnectionRefusedError", "ConnectionResetError",
	"EOFError", "FileExistsError", "FileNotFoundError", "FloatingPointError",
	"GeneratorExit", "ImportError", "IndentationError", "IndexError",
	"InterruptedError", "IsADirectoryError", "KeyError", "KeyboardInterrupt",
	"LookupError", "MemoryError", "ModuleNotFoundError", "NameError",
	"NotADirectoryError", "NotImplementedError", "OSError", "OverflowError",
	"PermissionError", "ProcessLookupError", "RecursionError",
	"ReferenceError", "RuntimeError", "StopAsyncIteration", "StopIteration",
	"SyntaxError", "SystemError", "SystemExit", "TabError", "TimeoutError",
	"TypeError", "UnboundLocalError", "UnicodeDecodeError",
	"UnicodeEncodeError", "UnicodeError", "ValueError", "ZeroDivisionError",
	"IOError", "EnvironmentError",
	// warnings
	"Warning", "DeprecationWarning", "FutureWarning", "RuntimeWarning",
	"SyntaxWarning", "UserWarning",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logic: LogicConfig{
			InfiniteLoopWindow:  20,
			ErrorHandlingWindow: 2,
			RiskyCalls:          append([]string(nil), DefaultRiskyCalls...),
			Builtins:            append([]string(nil), DefaultBuiltins...),
		},
		Smells: SmellsConfig{
			AllowedNumbers:          []string{"24", "60", "100"},
			DuplicateMinOccurrences: 3,
			DuplicateMinLength:      20,
		},
		Practices: PracticesConfig{
			MaxLineLength:         79,
			MaxBooleanOperators:   3,
			MaxFunctionLines:      50,
			MagicStringMinLength:  10,
			MagicStringMinRepeats: 2,
		},
		Concurrency: ConcurrencyConfig{
			MaxParallel: 4,
		},
		Server: ServerConfig{
			Addr:         ":5000",
			DefaultModel: "gemini-pro",
			MaxBodyBytes: 1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
