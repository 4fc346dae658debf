package cfg

type Cfg struct {
	// Application configuration
	Port string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
