package plm

// Config holds configuration for the PLM OData API.
type Config struct {
	// Schema is the search schema passed to the re-index job.
	Schema string `mapstructure:"schema" default:"FSH1"`
	// ThemeConcurrency bounds parallel theme reads in multi-theme queries.
	ThemeConcurrency int `mapstructure:"theme_concurrency" default:"4"`
}
