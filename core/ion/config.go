package ion

// Config holds configuration for the ION API gateway that fronts PLM and IDM.
type Config struct {
	// APIURL is the ION API base URL (e.g., https://mingle-ionapi.eu1.inforcloudsuite.com).
	APIURL string `mapstructure:"api_url" default:"https://mingle-ionapi.eu1.inforcloudsuite.com"`
	// TenantID is the tenant path segment appended to APIURL.
	TenantID string `mapstructure:"tenant_id" default:""`
	// TimeoutSeconds bounds every upstream HTTP call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
