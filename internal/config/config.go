package config

// Config is the root application configuration.
type Config struct {
	Filter FilterConfig `yaml:"filter"`
	Log    LogConfig    `yaml:"log"`
}

// FilterConfig holds vocabulary extraction settings.
type FilterConfig struct {
	InputPath    string `yaml:"input_path"  env:"FILTER_INPUT_PATH"  env-default:"ecdict.csv"`
	OutputPath   string `yaml:"output_path" env:"FILTER_OUTPUT_PATH" env-default:"advanced_ielts_vocabulary.json"`
	Mode         string `yaml:"mode"        env:"FILTER_MODE"        env-default:"advanced"`
	MinFieldsRaw string `yaml:"min_fields"  env:"FILTER_MIN_FIELDS"  env-default:"word,phonetic,translation,definition,example"`
	Preview      int    `yaml:"preview"     env:"FILTER_PREVIEW"     env-default:"5"`

	// MinFields is parsed from MinFieldsRaw during validation.
	MinFields []string `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
