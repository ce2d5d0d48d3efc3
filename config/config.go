package config

// Config is the root configuration structure. Every checker receives the
// values it needs from here; nothing reads ambient globals.
type Config struct {
	Logic       LogicConfig       `toml:"logic" yaml:"logic"`
	Smells      SmellsConfig      `toml:"smells" yaml:"smells"`
	Practices   PracticesConfig   `toml:"practices" yaml:"practices"`
	Concurrency ConcurrencyConfig `toml:"concurrency" yaml:"concurrency"`
	Server      ServerConfig      `toml:"server" yaml:"server"`
	Logging     LoggingConfig     `toml:"logging" yaml:"logging"`
}

// LogicConfig contains settings for the logic heuristic scanner.
type LogicConfig struct {
	// InfiniteLoopWindow is how many lines after a `while True` are searched for a break.
	InfiniteLoopWindow int `toml:"infinite_loop_window" yaml:"infinite_loop_window"`
	// ErrorHandlingWindow is how many preceding lines are searched for `try:`.
	ErrorHandlingWindow int      `toml:"error_handling_window" yaml:"error_handling_window"`
	RiskyCalls          []string `toml:"risky_calls" yaml:"risky_calls"`
	Builtins            []string `toml:"builtins" yaml:"builtins"`
}

// SmellsConfig contains settings for the code smell checks.
type SmellsConfig struct {
	AllowedNumbers          []string `toml:"allowed_numbers" yaml:"allowed_numbers"`
	DuplicateMinOccurrences int      `toml:"duplicate_min_occurrences" yaml:"duplicate_min_occurrences"`
	DuplicateMinLength      int      `toml:"duplicate_min_length" yaml:"duplicate_min_length"`
}

// PracticesConfig contains settings for the style/practice checker.
type PracticesConfig struct {
	MaxLineLength         int `toml:"max_line_length" yaml:"max_line_length"`
	MaxBooleanOperators   int `toml:"max_boolean_operators" yaml:"max_boolean_operators"`
	MaxFunctionLines      int `toml:"max_function_lines" yaml:"max_function_lines"`
	MagicStringMinLength  int `toml:"magic_string_min_length" yaml:"magic_string_min_length"`
	MagicStringMinRepeats int `toml:"magic_string_min_repeats" yaml:"magic_string_min_repeats"`
}

// ConcurrencyConfig bounds batch analysis.
type ConcurrencyConfig struct {
	MaxParallel int `toml:"max_parallel" yaml:"max_parallel"`
}

// ServerConfig contains HTTP collaborator settings.
type ServerConfig struct {
	Addr         string `toml:"addr" yaml:"addr"`
	DefaultModel string `toml:"default_model" yaml:"default_model"`
	MaxBodyBytes int64  `toml:"max_body_bytes" yaml:"max_body_bytes"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // text, json
	File   string `toml:"file" yaml:"file"`
}
