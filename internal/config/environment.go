package config

// System setting keys and the values the initializer writes for them.
const (
	EnvKeySystemEnv = "HRM_SYSTEM_ENV"
	EnvKeySystemDB  = "HRM_SYSTEM_DB"

	DefaultSystemEnv = "development"
	DefaultSystemDB  = "hrm_system_db"
)

// Environment is the HRM system configuration produced at startup. It is
// handed to downstream consumers instead of having them read os.Getenv.
type Environment struct {
	SystemEnv string
	SystemDB  string
}

// EnvVar is a single key/value pair of process environment.
type EnvVar struct {
	Key   string
	Value string
}

// DefaultEnvironment returns the fixed settings written on every start.
func DefaultEnvironment() Environment {
	return Environment{
		SystemEnv: DefaultSystemEnv,
		SystemDB:  DefaultSystemDB,
	}
}

// Vars returns the settings in the order they are written.
func (e Environment) Vars() []EnvVar {
	return []EnvVar{
		{Key: EnvKeySystemEnv, Value: e.SystemEnv},
		{Key: EnvKeySystemDB, Value: e.SystemDB},
	}
}
