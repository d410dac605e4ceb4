package config

// DBConfig holds the MySQL settings used by the inquiry worker.
type DBConfig struct {
	User string
	Pass string
	Host string
	Port string
	Name string
}

func LoadDBConfig() DBConfig {
	return DBConfig{
		User: envStr("DB_USER", "root"),
		Pass: envStr("DB_PASS", ""),
		Host: envStr("DB_HOST", "localhost"),
		Port: envStr("DB_PORT", "3306"),
		Name: envStr("DB_NAME", "register_my_marriage"),
	}
}
