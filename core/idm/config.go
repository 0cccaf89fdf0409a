package idm

// Config holds configuration for IDM lookups.
type Config struct {
	// ValueListTTLSeconds is how long an entity's value lists are cached.
	// Zero disables caching.
	ValueListTTLSeconds int `mapstructure:"value_list_ttl_seconds" default:"300"`
	// ProbeEntity is the entity whose value lists the integrity check loads.
	ProbeEntity string `mapstructure:"probe_entity" default:"Theme_Attributes"`
}
